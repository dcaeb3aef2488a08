// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package token

import (
	"errors"
	"fmt"
)

// ErrLine is the value Tracker.AddLine panics with on an out-of-order
// call.
var ErrLine = errors.New("invalid line number")

// Position describes a line/column location, suitable for error
// messages. Column is a rune offset within the line, not a byte offset.
type Position struct {
	Name   string
	Line   int // 1-based
	Column int // 1-based
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Name, p.Line, p.Column)
}

// Tracker maps rune positions in a stream to line/column Positions. It
// is fed one newline position at a time as the stream is scanned;
// unlike db47h-lex's token.File, it does not hold a reference to the
// underlying reader, since a push-fed Source is not seekable.
type Tracker struct {
	name  string
	lines []Pos // 0-based: lines[i] = offset of line i+1
}

// NewTracker returns a new Tracker for a stream identified by name
// (used only in diagnostics; may be empty).
func NewTracker(name string) *Tracker {
	t := &Tracker{name: name}
	t.lines = append(t.lines, 0) // line 1 starts at offset 0
	return t
}

// AddLine records that a new line starts at pos. line is the 1-based
// line number; it must equal the number of previously recorded lines
// plus one, and pos must lie strictly after the previous line's start.
// A call breaking either rule panics with ErrLine.
func (t *Tracker) AddLine(pos Pos, line int) {
	l := len(t.lines)
	if (l > 0 && t.lines[l-1] >= pos) || l+1 != line {
		panic(ErrLine)
	}
	t.lines = append(t.lines, pos)
}

// Position returns the 1-based line/column for pos.
func (t *Tracker) Position(pos Pos) Position {
	i, j := 0, len(t.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(t.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	return Position{t.name, i, int(pos-t.lines[i-1]) + 1}
}
