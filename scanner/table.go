package scanner

// state is one node of the lexeme DFA. Unlike the character classes,
// states are private implementation detail: nothing outside this
// package ever sees one.
type state int

const (
	stStart state = iota

	stPunct // single delimiter char, accepting

	stStrOpen  // inside a string body
	stStrEsc   // just consumed a backslash inside a string
	stStrClose // just consumed the closing quote, accepting

	stNeg       // just consumed a leading sign ('-' or '+', both classSign)
	stIntZero   // "0", accepting; no further digit may follow directly
	stInt       // "[1-9][0-9]*", accepting
	stFracStart // "N.", accepting (a bare trailing dot is tolerated)
	stFrac      // "N.ddd", accepting
	stExpStart  // "Ne"/"NE", not yet accepting
	stExpSign   // "Ne+"/"Ne-", not yet accepting
	stExp       // "Ne[+-]?ddd", accepting

	stT1 // "t"
	stT2 // "tr"
	stT3 // "tru"

	stF1 // "f"
	stF2 // "fa"
	stF3 // "fal"
	stF4 // "fals"

	stN1 // "n"
	stN2 // "nu"
	stN3 // "nul"

	stKeywordDone // "true"/"false"/"null" complete, accepting

	numStates
)

// dead marks the absence of a transition.
const dead state = -1

// accept tags which terminal a state accepts, if any. The PUNCT and
// keyword-literal terminals are resolved to a precise token.Kind only
// at flush time, by inspecting the lexeme text: the DFA itself only
// needs to know that a full match occurred.
type accept int

const (
	acceptNone accept = iota
	acceptPunct
	acceptString
	acceptLiteral // number or keyword; both carry token.Other
)

var acceptOf = [numStates]accept{
	stPunct:       acceptPunct,
	stStrClose:    acceptString,
	stIntZero:     acceptLiteral,
	stInt:         acceptLiteral,
	stFracStart:   acceptLiteral,
	stFrac:        acceptLiteral,
	stExp:         acceptLiteral,
	stKeywordDone: acceptLiteral,
}

// trans is the transition table, [state][class] -> state, with dead
// entries left as the zero value of state (0, stStart) UNLESS
// explicitly overwritten below — so it is built programmatically
// rather than as a giant literal, to keep "no transition" distinct
// from "transitions back to stStart".
var trans [numStates][numClasses]state

func init() {
	for s := range trans {
		for c := range trans[s] {
			trans[s][c] = dead
		}
	}

	// Between tokens: blanks are absorbed in place, and every class
	// that can start a token enters it.
	trans[stStart][classBlank] = stStart
	trans[stStart][classPunct] = stPunct
	trans[stStart][classQuote] = stStrOpen
	trans[stStart][classSign] = stNeg
	trans[stStart][classZero] = stIntZero
	trans[stStart][classDigit] = stInt
	trans[stStart][classT] = stT1
	trans[stStart][classF] = stF1
	trans[stStart][classN] = stN1

	// String body.
	trans[stStrOpen][classNoSpecial] = stStrOpen
	trans[stStrOpen][classQuote] = stStrClose
	trans[stStrOpen][classBackslash] = stStrEsc
	trans[stStrEsc][classAny] = stStrOpen

	// Number.
	trans[stNeg][classZero] = stIntZero
	trans[stNeg][classDigit] = stInt
	trans[stIntZero][classDot] = stFracStart
	trans[stIntZero][classE] = stExpStart
	trans[stInt][classZero] = stInt
	trans[stInt][classDigit] = stInt
	trans[stInt][classDot] = stFracStart
	trans[stInt][classE] = stExpStart
	trans[stFracStart][classZero] = stFrac
	trans[stFracStart][classDigit] = stFrac
	trans[stFracStart][classE] = stExpStart
	trans[stFrac][classZero] = stFrac
	trans[stFrac][classDigit] = stFrac
	trans[stFrac][classE] = stExpStart
	trans[stExpStart][classSign] = stExpSign
	trans[stExpStart][classZero] = stExp
	trans[stExpStart][classDigit] = stExp
	trans[stExpSign][classZero] = stExp
	trans[stExpSign][classDigit] = stExp
	trans[stExp][classZero] = stExp
	trans[stExp][classDigit] = stExp

	// Keywords. Each path is exact: a letter class that does not
	// continue the one keyword reachable from that state dead-ends,
	// which is what makes "tru" at end of input distinguishable from
	// a wrong-but-plausible-looking word.
	trans[stT1][classR] = stT2
	trans[stT2][classU] = stT3
	trans[stT3][classE] = stKeywordDone

	trans[stF1][classA] = stF2
	trans[stF2][classL] = stF3
	trans[stF3][classS] = stF4
	trans[stF4][classE] = stKeywordDone

	trans[stN1][classU] = stN2
	trans[stN2][classL] = stN3
	trans[stN3][classL] = stKeywordDone
}
