// Command jsoncat reads a JSON document from stdin in configurable
// chunks, feeding it through a jsonic.Reader as if the bytes had
// arrived piecemeal over a network connection, and prints the
// resulting tree once a complete value is read.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/wv8/jsonic"
	"github.com/wv8/jsonic/dom"
	"github.com/wv8/jsonic/token"
)

func main() {
	log.SetFlags(0)

	chunkSize := flag.Int("chunk", 4096, "bytes read from stdin per Feed call")
	flag.Parse()

	if *chunkSize <= 0 {
		log.Fatalf("jsoncat: -chunk must be positive, got %d", *chunkSize)
	}

	if err := run(os.Stdin, os.Stdout, *chunkSize); err != nil {
		log.Fatalf("jsoncat: %v", err)
	}
}

func run(in io.Reader, out io.Writer, chunkSize int) error {
	builder := &dom.Builder{}
	r := jsonic.NewReader(builder.Handlers())

	br := bufio.NewReader(in)
	buf := make([]byte, chunkSize)
	var fed strings.Builder
	eof := false

	for {
		if !eof {
			n, err := br.Read(buf)
			if n > 0 {
				fed.Write(buf[:n])
				if ferr := r.Feed(buf[:n]); ferr != nil {
					return fmt.Errorf("feed: %w", ferr)
				}
			}
			if err == io.EOF {
				eof = true
				r.Close()
			} else if err != nil {
				r.Fail(err)
			}
		}

		result, err := r.Step()
		if err != nil {
			return err
		}
		switch result {
		case jsonic.ResultPending:
			if eof {
				// Close was already delivered, and Source.Next
				// never returns Pending once closed, so this
				// cannot happen on a correct Source — surface it
				// as an invariant violation rather than retrying
				// on a condition the contract rules out.
				return fmt.Errorf("reader stayed pending after Close")
			}
			continue
		case jsonic.ResultOK:
			fmt.Fprintln(out, dom.Serialize(builder.Root()))
			return nil
		case jsonic.ResultError:
			return diagnostic(fed.String())
		}
	}
}

// diagnostic reports a parse failure against the position in fed where
// input ran out. It rebuilds a token.Tracker over everything fed so
// far to turn that rune offset into a line/column, then renders the
// offending line with token.Caret. Step is called right after each
// Feed, so the failure lies somewhere in the last chunk fed; without
// per-token position plumbing through the scanner, the position
// reported is always the end of fed, not the offset Step stopped at
// or the offending rune.
func diagnostic(fed string) error {
	runes := []rune(fed)
	tr := token.NewTracker("stdin")
	line := 1
	for i, r := range runes {
		if r == '\n' {
			line++
			tr.AddLine(token.Pos(i+1), line)
		}
	}
	pos := tr.Position(token.Pos(len(runes)))

	lines := strings.Split(fed, "\n")
	last := []rune(lines[len(lines)-1])
	return fmt.Errorf("invalid JSON at %s:\n%s", pos, token.Caret(last, len(last)+1))
}
