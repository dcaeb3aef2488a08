package token

// Outcome classifies the result of pulling one code unit from a
// push-fed rune source. It lives in this package, rather than
// alongside the source implementation, so that both the root package
// and the scanner package can reference it without the scanner
// importing the root package (which itself imports the scanner).
type Outcome int

const (
	// Char means a rune was returned.
	Char Outcome = iota
	// Pending means the source has no buffered code unit right now
	// and has not been closed; the caller must wait for more input.
	Pending
	// Eos means the source is closed and fully drained.
	Eos
)
