package jsonic

import (
	"unicode/utf8"

	"github.com/wv8/jsonic/token"
)

// Source is a push-fed, resumable CharSource: the producer calls Feed
// with arbitrarily sized byte slices (in any number of calls, of any
// size, including zero-length) and eventually Close; consumers pull
// runes one at a time via Next, which never blocks. Running out of
// buffered bytes before Close yields Pending; after Close it yields
// Eos.
//
// Source also owns a pushback buffer (Unget) so that a greedy scanner
// can return overshoot runes without the underlying producer needing
// to support seeking — it never can, since input arrives in pushed
// chunks.
type Source struct {
	buf    []byte
	off    int
	closed bool
	fail   error

	back    []rune
	backOff int
}

// NewSource returns an empty, open Source.
func NewSource() *Source {
	return &Source{}
}

// Feed appends p to the buffered input. It is an error to call Feed
// after Close or after Fail.
func (s *Source) Feed(p []byte) error {
	if s.fail != nil {
		return s.fail
	}
	if s.closed {
		return ErrClosed
	}
	if len(p) == 0 {
		return nil
	}
	s.buf = append(s.buf, p...)
	return nil
}

// Close declares that no further bytes will ever be fed. Pending reads
// past the end of buffered input become Eos after Close.
func (s *Source) Close() {
	s.closed = true
}

// Closed reports whether Close has been called.
func (s *Source) Closed() bool { return s.closed }

// Fail records a fatal I/O failure from the producer side. Every
// subsequent Next call returns that error until the Source is
// discarded; recovery is not attempted.
func (s *Source) Fail(err error) {
	if err != nil {
		s.fail = err
	}
}

// Unget prepends rs to be replayed, in order, by subsequent Next calls
// before any fresh bytes are consumed. Used by the scanner to push
// back greedy-match overshoot.
func (s *Source) Unget(rs []rune) {
	if len(rs) == 0 {
		return
	}
	rest := s.back[s.backOff:]
	merged := make([]rune, 0, len(rs)+len(rest))
	merged = append(merged, rs...)
	merged = append(merged, rest...)
	s.back = merged
	s.backOff = 0
}

// Next returns the next rune in the stream. Outcome distinguishes a
// successful read from the two non-terminal/terminal starvation
// states. err is non-nil only after Fail; once non-nil it is returned
// forever.
func (s *Source) Next() (rune, token.Outcome, error) {
	if s.fail != nil {
		return 0, token.Eos, s.fail
	}
	if s.backOff < len(s.back) {
		r := s.back[s.backOff]
		s.backOff++
		if s.backOff == len(s.back) {
			s.back = nil
			s.backOff = 0
		}
		return r, token.Char, nil
	}

	s.compact()
	b := s.buf[s.off:]
	if len(b) == 0 {
		if s.closed {
			return 0, token.Eos, nil
		}
		return 0, token.Pending, nil
	}
	if !utf8.FullRune(b) && !s.closed {
		// Might be a rune split across a chunk boundary; wait for
		// more bytes rather than mis-decoding a partial sequence.
		return 0, token.Pending, nil
	}
	r, w := utf8.DecodeRune(b)
	s.off += w
	return r, token.Char, nil
}

// compact drops already-consumed bytes once they accumulate, bounding
// memory to the unconsumed tail of the fed input (plus whatever the
// scanner has pushed back, which is itself bounded by longest-token
// overshoot).
func (s *Source) compact() {
	const keep = 0
	if s.off <= keep {
		return
	}
	n := copy(s.buf, s.buf[s.off:])
	s.buf = s.buf[:n]
	s.off = 0
}
