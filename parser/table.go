package parser

// action is one cell of the parse table: either a shift/goto target
// state, a reduce by a production id, the accept signal, or "no
// entry" meaning a syntax error for that (state, symbol) pair.
type action struct {
	kind actionKind
	arg  int // target state for shift/goto, production id for reduce
}

type actionKind int

const (
	actError actionKind = iota
	actShift
	actGoto
	actReduce
	actAccept
)

const numStates = 24

// pt is the combined action/goto table, [state][symbol]. Terminal
// columns hold shift/reduce/accept/error; nonterminal columns hold
// goto/error. It is built in init rather than as one 24x15 literal so
// that each state's entries read as a short, checkable list next to
// the grammar rule it implements.
//
// The grammar merges several states that a naive per-context
// expansion would keep separate: "just reduced a bare Value" is the
// same state (1, 2, 4 or 5) whether that Value sits at the top level,
// inside an array, or as an object pair's right-hand side, because
// what happens next is entirely a function of whichever state sits
// below it on the stack (consulted through the goto table), not of
// how we got here. Hand-merging these is what keeps this table at 24
// states instead of the 30-some a textbook LALR generator would emit
// for the same grammar without merging.
var pt [numStates][numSymbols]action

func init() {
	shift := func(s int) action { return action{actShift, s} }
	gotoS := func(s int) action { return action{actGoto, s} }

	set := func(state int, sy sym, a action) { pt[state][sy] = a }

	// State 0: start. A bare Value here, if it ever reduces, lands at
	// state 3 waiting for EOS — see states 1/2/4/5.
	set(0, symLBrace, shift(6))
	set(0, symLBracket, shift(7))
	set(0, symString, shift(1))
	set(0, symOther, shift(2))
	set(0, symValue, gotoS(3))
	set(0, symObject, gotoS(4))
	set(0, symArray, gotoS(5))

	// States 1, 2, 4, 5: Value -> STRING | OTHER | Object | Array.
	// Shared across every calling context; see the table comment.
	reduceAll(1, 1) // Value -> STRING
	reduceAll(2, 2) // Value -> OTHER
	reduceAll(4, 3) // Value -> Object
	reduceAll(5, 4) // Value -> Array

	// State 3: Value EOS ., the only place the automaton accepts.
	set(3, symEOS, action{actAccept, 0})

	// State 6: just shifted LBRACE.
	set(6, symRBrace, shift(9))
	set(6, symString, shift(12))
	set(6, symObjBody, gotoS(10))
	set(6, symPair, gotoS(11))

	// State 7: just shifted LBRACKET.
	set(7, symRBracket, shift(18))
	set(7, symString, shift(1))
	set(7, symOther, shift(2))
	set(7, symLBrace, shift(6))
	set(7, symLBracket, shift(7))
	set(7, symValue, gotoS(20))
	set(7, symObject, gotoS(4))
	set(7, symArray, gotoS(5))
	set(7, symArrBody, gotoS(19))

	// State 8: unused; no state shifts or goes to it, and it has no
	// outgoing actions. Acceptance happens in state 3.

	// State 9: Object -> LBRACE RBRACE .
	reduceAll(9, 5)

	// State 10: LBRACE ObjBody ., or continuing with COMMA Pair.
	set(10, symRBrace, shift(13))
	set(10, symComma, shift(14))

	// State 11: ObjBody -> Pair .
	reduceAll(11, 7)

	// State 12: STRING . COMMA Value — shared by "just after LBRACE"
	// and "just after COMMA inside an ObjBody", since both leave the
	// automaton wanting exactly the same thing next: a COMMA, then a
	// Value to complete a Pair.
	set(12, symComma, shift(16))

	// State 13: Object -> LBRACE ObjBody RBRACE .
	reduceAll(13, 6)

	// State 14: ObjBody COMMA ., expecting the next Pair's key.
	set(14, symString, shift(12))
	set(14, symPair, gotoS(15))

	// State 15: ObjBody -> ObjBody COMMA Pair .
	reduceAll(15, 8)

	// State 16: STRING COMMA ., expecting the Pair's value.
	set(16, symString, shift(1))
	set(16, symOther, shift(2))
	set(16, symLBrace, shift(6))
	set(16, symLBracket, shift(7))
	set(16, symValue, gotoS(17))
	set(16, symObject, gotoS(4))
	set(16, symArray, gotoS(5))

	// State 17: Pair -> STRING COMMA Value .
	reduceAll(17, 9)

	// State 18: Array -> LBRACKET RBRACKET .
	reduceAll(18, 10)

	// State 19: LBRACKET ArrBody ., or continuing with COMMA Value.
	set(19, symRBracket, shift(21))
	set(19, symComma, shift(22))

	// State 20: ArrBody -> Value .
	reduceAll(20, 12)

	// State 21: Array -> LBRACKET ArrBody RBRACKET .
	reduceAll(21, 11)

	// State 22: ArrBody COMMA ., expecting the next element.
	set(22, symString, shift(1))
	set(22, symOther, shift(2))
	set(22, symLBrace, shift(6))
	set(22, symLBracket, shift(7))
	set(22, symValue, gotoS(23))
	set(22, symObject, gotoS(4))
	set(22, symArray, gotoS(5))

	// State 23: ArrBody -> ArrBody COMMA Value .
	reduceAll(23, 13)
}

// reduceAll marks state as an unconditional reduce by production p on
// every terminal. Every such state in this grammar contains exactly
// one complete item and no shiftable continuation, so the reduce is
// valid regardless of lookahead — there is never a shift/reduce choice
// to make here.
func reduceAll(state int, p int) {
	for sy := sym(0); sy < numTerminals; sy++ {
		pt[state][sy] = action{actReduce, p}
	}
}

// isReduceOnly reports whether state reduces on EOS, which for the
// reduceAll states means it reduces on every terminal. Step does not
// consult it: it reduces only once a lookahead token is in hand, on
// these states as on any other.
func isReduceOnly(state int) (prod int, ok bool) {
	a := pt[state][symEOS]
	if a.kind == actReduce {
		return a.arg, true
	}
	return 0, false
}
