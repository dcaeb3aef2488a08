/*
Package jsonic implements an incremental, resumable, push-fed JSON
reader.

Callers feed bytes in arbitrarily sized pieces through Reader.Feed and
call Reader.Step to make progress. Step never blocks: when the input
fed so far is insufficient to make a decision, it returns ResultPending
and every internal state machine (the character source, the scanner,
the parser) is left exactly as it was, ready to continue from the same
point once Feed is called again.

Layering

Four layers, each pulling from the one below and each individually
resumable:

	Source (push-fed code unit source, pushback buffer)
	  -> scanner.Scanner (DFA over a character-class alphabet)
	    -> parser.Parser (table-driven shift/reduce automaton)
	      -> events.Handlers (capability record of callbacks)

A thin tree builder (package dom) implements Handlers to materialize a
DOM from the event stream; callers needing something else (streaming
validation, a SAX-like consumer, projection into another data model)
can implement Handlers directly instead.

Grammar

The grammar accepted is JSON, with one deliberate deviation carried
over unchanged from the system this package was modeled on: object
members are comma-separated in their entirety, written
{key, value, key, value, ...} rather than the conventional
{key: value, key: value}. This is not a bug; see parser/table.go.

Resumability

Step suspends only at one well-defined point: when the Source has no
buffered code units left and has not been closed. A non-nil error
returned out-of-band (as opposed to ResultError) indicates either an
I/O failure reported through Fail, or an internal invariant violation
(a bug in the parse table, not a malformed document); both are fatal,
and the Reader must not be used again.
*/
package jsonic
