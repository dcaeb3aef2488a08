// Package parser drives a table-driven shift/reduce/goto automaton
// over the token stream a scanner.Scanner produces, firing semantic
// hooks through an events.Handlers as it reduces.
//
// The grammar accepted is not quite JSON: object members are written
// STRING COMMA Value, repeated and comma-separated, with no colon
// anywhere in the grammar — {"k", 1, "j", 2} rather than
// {"k": 1, "j": 2}. table.go has no Colon action in any state.
package parser

import "github.com/wv8/jsonic/token"

// sym is a grammar symbol: either a terminal (a token.Kind) or one of
// the nonterminals below, encoded past the terminal range so a single
// int can index both the action and goto halves of the table.
type sym int

// Terminal symbols mirror token.Kind directly (their numeric values
// are never compared across packages, only used as table indices).
const (
	symEOS      sym = sym(token.EOS)
	symLBrace   sym = sym(token.LBrace)
	symRBrace   sym = sym(token.RBrace)
	symLBracket sym = sym(token.LBracket)
	symRBracket sym = sym(token.RBracket)
	symComma    sym = sym(token.Comma)
	symColon    sym = sym(token.Colon)
	symString   sym = sym(token.String)
	symOther    sym = sym(token.Other)
)

const numTerminals = 9

// Nonterminal symbols are numbered past the terminal range so a
// single table can be indexed uniformly by sym.
const (
	symValue sym = numTerminals + iota
	symObject
	symArray
	symObjBody
	symArrBody
	symPair
)

const (
	numNonterminals = 6
	numSymbols      = numTerminals + numNonterminals
)

// production is one grammar rule: popping n states off the stack and
// replacing them with a goto on lhs.
type production struct {
	lhs sym
	n   int
}

// Productions, indexed by the production id used in the action table.
// Numbering mirrors the grammar comment in table.go; 0 is unused so a
// zero-value action can mean "no reduce" unambiguously.
var productions = [...]production{
	0:  {}, // unused
	1:  {symValue, 1},   // Value -> STRING
	2:  {symValue, 1},   // Value -> OTHER
	3:  {symValue, 1},   // Value -> Object
	4:  {symValue, 1},   // Value -> Array
	5:  {symObject, 2},  // Object -> LBRACE RBRACE
	6:  {symObject, 3},  // Object -> LBRACE ObjBody RBRACE
	7:  {symObjBody, 1}, // ObjBody -> Pair
	8:  {symObjBody, 3}, // ObjBody -> ObjBody COMMA Pair
	9:  {symPair, 3},    // Pair -> STRING COMMA Value
	10: {symArray, 2},   // Array -> LBRACKET RBRACKET
	11: {symArray, 3},   // Array -> LBRACKET ArrBody RBRACKET
	12: {symArrBody, 1}, // ArrBody -> Value
	13: {symArrBody, 3}, // ArrBody -> ArrBody COMMA Value
}
