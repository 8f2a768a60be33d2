package token

// Token is an immutable lexical token. Text borrows a slice of the
// original input string (Go substrings share the backing array, so this
// never copies); AbsOffset is the start byte. See spec §3.
type Token struct {
	Kind      Kind
	Text      string
	AbsOffset uint32

	// ErrFlag marks a token that the lexer could not close cleanly
	// (unterminated block comment, string, blob or quoted identifier) and
	// every ERROR token for an unrecognized byte run:
	// the lexer never fails, it just flags the token and keeps going
	// (spec §4.2).
	ErrFlag bool
}

// End returns the exclusive end byte offset of t.
func (t Token) End() uint32 {
	return t.AbsOffset + uint32(len(t.Text))
}

// IsTrivia reports whether t is whitespace, a comment, or an error token.
func (t Token) IsTrivia() bool {
	return IsTrivia(t.Kind)
}
