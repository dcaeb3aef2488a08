package parser

import (
	"errors"

	"github.com/wv8/jsonic/events"
	"github.com/wv8/jsonic/scanner"
	"github.com/wv8/jsonic/token"
)

// ErrInternal marks a parse-table invariant violation: a reduce that
// would pop past the bottom of the state stack, or a goto entry
// missing where the grammar guarantees one exists. It indicates a bug
// in table.go, never a malformed document.
var ErrInternal = errors.New("parser: missing goto entry")

// Parser drives the shift/reduce/goto automaton in table.go over the
// tokens a scanner.Scanner produces, firing h's hooks as productions
// reduce. It holds every bit of state a partial parse needs, so Step
// can suspend on scanner.Pending and resume exactly where it left off.
type Parser struct {
	sc *scanner.Scanner
	h  events.Handlers

	stack []int // state stack; always has state 0 at the bottom
	la    *scanner.Token
}

// New returns a Parser reading tokens from sc and firing h's hooks.
func New(sc *scanner.Scanner, h events.Handlers) *Parser {
	return &Parser{sc: sc, h: h, stack: []int{0}}
}

// Step advances the parse as far as the buffered input allows.
// token.Pending means the scanner ran dry; call Step again once more
// input has been fed. token.EOS means a complete value was read and no
// trailing content follows. token.Error means a lexical or syntax
// error, including trailing content after an otherwise complete value.
// A non-nil error is always ErrInternal and is fatal.
func (p *Parser) Step() (token.Kind, error) {
	for {
		if p.la == nil {
			tok := p.sc.Get()
			if tok.Kind == token.Pending {
				return token.Pending, nil
			}
			if tok.Kind == token.Error {
				// A scanner-level error (lexical, or a Source
				// failure relayed through it). token.Error has no
				// corresponding table column; never index with it.
				return token.Error, nil
			}
			p.la = &tok
		}

		top := p.stack[len(p.stack)-1]
		a := pt[top][sym(p.la.Kind)]

		switch a.kind {
		case actShift:
			p.fireShift(top, *p.la)
			p.stack = append(p.stack, a.arg)
			p.la = nil

		case actReduce:
			prod := productions[a.arg]
			n := prod.n
			if n > len(p.stack)-1 {
				return token.Error, ErrInternal
			}
			p.stack = p.stack[:len(p.stack)-n]
			exposed := p.stack[len(p.stack)-1]
			g := pt[exposed][prod.lhs]
			if g.kind != actGoto {
				return token.Error, ErrInternal
			}
			p.stack = append(p.stack, g.arg)
			p.fireReduce(a.arg)

		case actAccept:
			return token.EOS, nil

		default: // actError
			return token.Error, nil
		}
	}
}

// fireShift dispatches the hooks that depend on which token was just
// consumed and which state it was shifted from — the state a STRING
// or OTHER is shifted from is what tells Key apart from ObjPrimitive
// apart from ArrPrimitive, since all three share the same post-shift
// reduce states (see table.go).
func (p *Parser) fireShift(from int, tok scanner.Token) {
	switch tok.Kind {
	case token.LBrace:
		p.h.FireObjStart()
	case token.LBracket:
		p.h.FireArrStart()
	case token.String:
		switch from {
		case 6, 14:
			p.h.FireKey(tok.Text)
		case 16:
			p.h.FireObjPrimitive(tok.Text, token.String)
		case 7, 22:
			p.h.FireArrPrimitive(tok.Text, token.String)
		}
		// from == 0: a bare top-level string value has no hook to
		// fire into; see DESIGN.md.
	case token.Other:
		switch from {
		case 16:
			p.h.FireObjPrimitive(tok.Text, token.Other)
		case 7, 22:
			p.h.FireArrPrimitive(tok.Text, token.Other)
		}
	}
}

// fireReduce fires ObjEnd/ArrEnd exactly when a production completing
// an Object or Array has just reduced.
func (p *Parser) fireReduce(prodID int) {
	switch prodID {
	case 5, 6:
		p.h.FireObjEnd()
	case 10, 11:
		p.h.FireArrEnd()
	}
}
