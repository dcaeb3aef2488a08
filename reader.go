package jsonic

import (
	"fmt"

	"github.com/wv8/jsonic/events"
	"github.com/wv8/jsonic/parser"
	"github.com/wv8/jsonic/scanner"
	"github.com/wv8/jsonic/token"
)

// Reader is the façade over the four-layer pipeline described in
// doc.go: a Source feeding a scanner.Scanner feeding a parser.Parser
// that drives h's hooks as it reduces.
type Reader struct {
	src *Source
	p   *parser.Parser
}

// NewReader returns a Reader whose parse events are delivered to h.
func NewReader(h events.Handlers) *Reader {
	src := NewSource()
	sc := scanner.New(src)
	return &Reader{src: src, p: parser.New(sc, h)}
}

// Feed appends p to the buffered input. See Source.Feed.
func (r *Reader) Feed(p []byte) error { return r.src.Feed(p) }

// Close declares that no further bytes will be fed.
func (r *Reader) Close() { r.src.Close() }

// Fail aborts the Reader with a fatal I/O error: every subsequent Step
// call returns ResultError wrapping ErrIO.
func (r *Reader) Fail(err error) { r.src.Fail(err) }

// Step advances the parse as far as the input fed so far allows.
//
// ResultPending means Step consumed everything buffered without
// reaching a decision; Feed more and call Step again. ResultOK means a
// complete value was read with no trailing content. ResultError means
// a lexical or syntax error, or content trailing a complete value; if
// err is non-nil it wraps ErrIO (a Fail'd I/O failure) or ErrInternal
// (a parser invariant violation), and the Reader must not be used
// again.
func (r *Reader) Step() (Result, error) {
	kind, err := r.p.Step()
	if err != nil {
		return ResultError, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	switch kind {
	case token.Pending:
		return ResultPending, nil
	case token.EOS:
		return ResultOK, nil
	case token.Error:
		if r.src.fail != nil {
			return ResultError, fmt.Errorf("%w: %v", ErrIO, r.src.fail)
		}
		return ResultError, nil
	default:
		return ResultError, fmt.Errorf("%w: unexpected parser result %v", ErrInternal, kind)
	}
}
