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

// Package token defines the terminal kinds the scanner emits and the
// position/diagnostics types shared by the scanner and parser.
package token

// Kind identifies a scanner terminal.
type Kind int

// Terminal kinds. PENDING and ERROR are scanner-only signals, never
// pushed onto the parser's lookahead.
const (
	Invalid Kind = iota - 1
	LBrace
	RBrace
	LBracket
	RBracket
	Comma
	Colon
	String // carries decoded text
	Other  // carries raw text for true/false/null/number
	EOS
	Pending
	Error
)

func (k Kind) String() string {
	switch k {
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case Comma:
		return ","
	case Colon:
		return ":"
	case String:
		return "STRING"
	case Other:
		return "OTHER"
	case EOS:
		return "EOS"
	case Pending:
		return "PENDING"
	case Error:
		return "ERROR"
	default:
		return "INVALID"
	}
}

// Pos is a rune index into the stream fed to a Source, not a byte
// index.
type Pos int

// IsValid reports whether p is a valid position.
func (p Pos) IsValid() bool { return p >= 0 }
