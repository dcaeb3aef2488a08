// Package events defines the capability record the parser drives as it
// reduces tokens, and that the dom package's Builder fills in to
// materialize a tree.
package events

import "github.com/wv8/jsonic/token"

// Handlers is a record of optional function values rather than a
// classic interface, so that a caller implementing only a subset of
// callbacks leaves the rest as no-ops (per spec.md's "any subset may
// be left unset" requirement — a plain interface would force stub
// methods for all seven).
type Handlers struct {
	ObjStart func()
	ObjEnd   func()
	ArrStart func()
	ArrEnd   func()

	// Key fires once a quoted object key lexeme is complete.
	Key func(text string)

	// ObjPrimitive/ArrPrimitive fire for a primitive value found
	// inside an object/array respectively. term distinguishes a
	// quoted string literal (token.String) from a bare keyword or
	// number literal (token.Other), so "true" and true are never
	// conflated.
	ObjPrimitive func(text string, term token.Kind)
	ArrPrimitive func(text string, term token.Kind)
}

// FireObjStart and friends let the parser call every hook
// unconditionally without a nil check at each call site.

func (h Handlers) FireObjStart() {
	if h.ObjStart != nil {
		h.ObjStart()
	}
}

func (h Handlers) FireObjEnd() {
	if h.ObjEnd != nil {
		h.ObjEnd()
	}
}

func (h Handlers) FireArrStart() {
	if h.ArrStart != nil {
		h.ArrStart()
	}
}

func (h Handlers) FireArrEnd() {
	if h.ArrEnd != nil {
		h.ArrEnd()
	}
}

func (h Handlers) FireKey(text string) {
	if h.Key != nil {
		h.Key(text)
	}
}

func (h Handlers) FireObjPrimitive(text string, term token.Kind) {
	if h.ObjPrimitive != nil {
		h.ObjPrimitive(text, term)
	}
}

func (h Handlers) FireArrPrimitive(text string, term token.Kind) {
	if h.ArrPrimitive != nil {
		h.ArrPrimitive(text, term)
	}
}
