package dom

import (
	"strconv"
	"strings"

	"github.com/wv8/jsonic/events"
	"github.com/wv8/jsonic/token"
)

// frame tracks one open container on the builder's stack. key is only
// meaningful while node.Kind == KindObject: it holds the key most
// recently seen via a Key callback, waiting for the value that
// completes its Entry.
type frame struct {
	node *Node
	key  string
}

// Builder implements events.Handlers, attaching each value to its
// parent container the moment it is known rather than buffering and
// patching up afterward. The container stack mirrors the nesting
// depth the parser is at; popping it on ObjEnd/ArrEnd is the only
// bookkeeping a reduce needs.
type Builder struct {
	root  *Node
	stack []frame
}

// Handlers returns the events.Handlers that drive this Builder. It can
// be called once and reused across many Feed/Step cycles of the same
// parse — a Builder is not reusable across separate documents.
func (b *Builder) Handlers() events.Handlers {
	return events.Handlers{
		ObjStart:     b.objStart,
		ObjEnd:       b.objEnd,
		ArrStart:     b.arrStart,
		ArrEnd:       b.arrEnd,
		Key:          b.key,
		ObjPrimitive: b.primitive,
		ArrPrimitive: b.primitive,
	}
}

// Root returns the parsed tree. It is nil if the document was a bare
// top-level primitive (no container and no key ever reached the
// builder) or if no container has started yet. The first container is
// made the root as soon as it starts, so before parsing completes Root
// may return a partially built tree.
func (b *Builder) Root() *Node { return b.root }

func (b *Builder) objStart() {
	n := &Node{Kind: KindObject}
	b.attach(n)
	b.stack = append(b.stack, frame{node: n})
}

func (b *Builder) arrStart() {
	n := &Node{Kind: KindArray}
	b.attach(n)
	b.stack = append(b.stack, frame{node: n})
}

func (b *Builder) objEnd() { b.stack = b.stack[:len(b.stack)-1] }
func (b *Builder) arrEnd() { b.stack = b.stack[:len(b.stack)-1] }

func (b *Builder) key(text string) {
	b.stack[len(b.stack)-1].key = text
}

func (b *Builder) primitive(text string, term token.Kind) {
	b.attach(classify(text, term))
}

// attach inserts n into whatever container is currently open, or makes
// it the root if the stack is empty.
func (b *Builder) attach(n *Node) {
	if len(b.stack) == 0 {
		b.root = n
		return
	}
	top := &b.stack[len(b.stack)-1]
	switch top.node.Kind {
	case KindObject:
		top.node.Entries = append(top.node.Entries, Entry{Key: top.key, Value: n})
		top.key = ""
	case KindArray:
		top.node.Items = append(top.node.Items, n)
	}
}

// classify turns a scanner lexeme into a leaf Node. term distinguishes
// a quoted STRING (always a string, verbatim) from OTHER, which still
// needs to be told apart into true/false/null/number by its text,
// case-insensitively for the three keywords.
func classify(text string, term token.Kind) *Node {
	if term == token.String {
		return &Node{Kind: KindString, Str: text}
	}
	switch strings.ToLower(text) {
	case "true":
		return &Node{Kind: KindBool, Bool: true}
	case "false":
		return &Node{Kind: KindBool, Bool: false}
	case "null":
		return &Node{Kind: KindNull}
	}
	f, _ := strconv.ParseFloat(text, 64)
	// The scanner's number DFA only ever accepts lexemes ParseFloat
	// also accepts, so a parse failure here would mean the two
	// grammars have drifted apart, not bad input.
	return &Node{Kind: KindNumber, Num: f}
}
