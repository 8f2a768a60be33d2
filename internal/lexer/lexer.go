// Package lexer turns SQL source text into a flat stream of token.Token
// values, trivia included. It never fails: anything it cannot make sense
// of becomes an ERROR token (or an ErrFlag on an otherwise-recognized
// token) and lexing continues from there (spec §4.2).
//
// The cursor shape — a position plus first/second/third lookahead bytes —
// is grounded in _examples/original_source/sqlite3-parser/src/cursor.rs;
// the read/peek/pos bookkeeping style follows the teacher's own
// internal/lexer/lexer.go, adapted from runes to bytes because the CST
// layer addresses everything by byte offset (spec §3).
package lexer

import (
	"github.com/bordsql/bordsql/internal/keyword"
	"github.com/bordsql/bordsql/internal/token"
	"github.com/bordsql/bordsql/internal/version"
)

// Lexer scans one input string into token.Token values on demand. It
// holds no diagnostics of its own: ErrFlag on a returned token is the
// only signal a caller gets that something was off, exactly as spec §4.2
// requires ("the lexer never fails").
type Lexer struct {
	input   string
	pos     int // byte offset of the next unread byte
	version version.Version
}

// New returns a Lexer over input, gated by version for the handful of
// dialect-sensitive lexical rules (currently just underscore digit
// separators; spec §4.2).
func New(input string, v version.Version) *Lexer {
	return &Lexer{input: input, version: v}
}

func (l *Lexer) first() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) second() byte {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) third() byte {
	if l.pos+2 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+2]
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) bump() byte {
	c := l.first()
	if l.pos < len(l.input) {
		l.pos++
	}
	return c
}

func (l *Lexer) make(start int, kind token.Kind) token.Token {
	return token.Token{Kind: kind, Text: l.input[start:l.pos], AbsOffset: uint32(start)}
}

func (l *Lexer) makeErr(start int, kind token.Kind) token.Token {
	return token.Token{Kind: kind, Text: l.input[start:l.pos], AbsOffset: uint32(start), ErrFlag: true}
}

// Next returns the next token, advancing the cursor. Once the input is
// exhausted it returns an EOF token forever (zero-width, positioned at
// len(input)) so callers can poll it without tracking end-of-stream
// themselves.
func (l *Lexer) Next() token.Token {
	if l.atEnd() {
		return token.Token{Kind: token.EOF, AbsOffset: uint32(len(l.input))}
	}

	start := l.pos
	c := l.first()

	switch {
	case isSpace(c):
		return l.lexWhitespace(start)
	case c == '-' && l.second() == '-':
		return l.lexLineComment(start)
	case c == '/' && l.second() == '*':
		return l.lexBlockComment(start)
	case (c == 'x' || c == 'X') && l.second() == '\'':
		return l.lexBlob(start)
	case isIdentStart(c):
		return l.lexIdentOrKeyword(start)
	case c == '"':
		return l.lexQuoted(start, '"', token.QUOTED_IDEN)
	case c == '`':
		return l.lexQuoted(start, '`', token.QUOTED_IDEN)
	case c == '[':
		return l.lexBracketQuoted(start)
	case c == '\'':
		return l.lexString(start)
	case isDigit(c):
		return l.lexNumber(start)
	case c == '.' && isDigit(l.second()):
		return l.lexNumber(start)
	case c == '?':
		return l.lexQMark(start)
	case c == ':':
		return l.lexNamedParam(start, token.COLON_IDEN)
	case c == '@':
		return l.lexNamedParam(start, token.AT_IDEN)
	case c == '$':
		return l.lexNamedParam(start, token.DOLLAR_IDEN)
	default:
		if k, ok := l.lexPunct(); ok {
			return l.make(start, k)
		}
		return l.lexUnknownRun(start)
	}
}

func (l *Lexer) lexWhitespace(start int) token.Token {
	for isSpace(l.first()) {
		l.bump()
	}
	return l.make(start, token.WHITESPACE)
}

func (l *Lexer) lexLineComment(start int) token.Token {
	l.bump() // -
	l.bump() // -
	for !l.atEnd() && l.first() != '\n' {
		l.bump()
	}
	return l.make(start, token.LINE_COMMENT)
}

func (l *Lexer) lexBlockComment(start int) token.Token {
	l.bump() // /
	l.bump() // *
	for {
		if l.atEnd() {
			return l.makeErr(start, token.BLOCK_COMMENT)
		}
		if l.first() == '*' && l.second() == '/' {
			l.bump()
			l.bump()
			return l.make(start, token.BLOCK_COMMENT)
		}
		l.bump()
	}
}

func (l *Lexer) lexIdentOrKeyword(start int) token.Token {
	for isIdentCont(l.first()) {
		l.bump()
	}
	text := l.input[start:l.pos]
	if len(text) <= keyword.MaxKeywordLen {
		if kind, ok := keyword.Lookup([]byte(text)); ok {
			return l.make(start, kind)
		}
	}
	return l.make(start, token.IDEN)
}

// lexQuoted handles "double-quoted" and `backtick-quoted` identifiers,
// both of which double the delimiter to escape it (spec §4.2).
func (l *Lexer) lexQuoted(start int, delim byte, kind token.Kind) token.Token {
	l.bump() // opening delimiter
	for {
		if l.atEnd() {
			return l.makeErr(start, kind)
		}
		c := l.bump()
		if c == delim {
			if l.first() == delim {
				l.bump()
				continue
			}
			return l.make(start, kind)
		}
	}
}

// lexBracketQuoted handles [bracket-quoted] identifiers; SQLite gives ']'
// no escape, the identifier simply ends at the first one.
func (l *Lexer) lexBracketQuoted(start int) token.Token {
	l.bump() // [
	for {
		if l.atEnd() {
			return l.makeErr(start, token.QUOTED_IDEN)
		}
		if l.bump() == ']' {
			return l.make(start, token.QUOTED_IDEN)
		}
	}
}

// lexString handles '...' string literals, doubling the quote to escape
// an embedded one, same as lexQuoted but kept separate because its
// token kind and error path are distinct (spec §4.2).
func (l *Lexer) lexString(start int) token.Token {
	l.bump() // '
	for {
		if l.atEnd() {
			return l.makeErr(start, token.STR_LIT)
		}
		c := l.bump()
		if c == '\'' {
			if l.first() == '\'' {
				l.bump()
				continue
			}
			return l.make(start, token.STR_LIT)
		}
	}
}

// lexBlob handles x'...' / X'...' blob literals: a run of hex digit
// pairs inside single quotes.
func (l *Lexer) lexBlob(start int) token.Token {
	l.bump() // x/X
	l.bump() // '
	for {
		if l.atEnd() {
			return l.makeErr(start, token.BLOB_LIT)
		}
		if l.first() == '\'' {
			l.bump()
			return l.make(start, token.BLOB_LIT)
		}
		l.bump()
	}
}

func (l *Lexer) lexNumber(start int) token.Token {
	kind := token.INT_LIT
	underscores := l.version.UnderscoreInNumerics()

	if l.first() == '0' && (l.second() == 'x' || l.second() == 'X') {
		l.bump()
		l.bump()
		for isHexDigit(l.first()) || (underscores && l.first() == '_') {
			l.bump()
		}
		return l.make(start, token.HEX_LIT)
	}

	for isDigit(l.first()) || (underscores && l.first() == '_') {
		l.bump()
	}
	if l.first() == '.' {
		kind = token.REAL_LIT
		l.bump()
		for isDigit(l.first()) || (underscores && l.first() == '_') {
			l.bump()
		}
	}
	if l.first() == 'e' || l.first() == 'E' {
		save := l.pos
		l.bump()
		if l.first() == '+' || l.first() == '-' {
			l.bump()
		}
		if isDigit(l.first()) {
			kind = token.REAL_LIT
			for isDigit(l.first()) {
				l.bump()
			}
		} else {
			l.pos = save
		}
	}
	return l.make(start, kind)
}

// lexQMark handles '?' and '?NNN' positional bind parameters.
func (l *Lexer) lexQMark(start int) token.Token {
	l.bump() // ?
	for isDigit(l.first()) {
		l.bump()
	}
	return l.make(start, token.Q_MARK)
}

// lexNamedParam handles :name / @name / $name bind parameters. An
// unfollowed sigil (no identifier characters after it) still lexes as a
// zero-length-name parameter rather than an error: SQLite itself treats
// the bare sigil as the full parameter.
func (l *Lexer) lexNamedParam(start int, kind token.Kind) token.Token {
	l.bump() // sigil
	for isIdentCont(l.first()) {
		l.bump()
	}
	return l.make(start, kind)
}

func (l *Lexer) lexPunct() (token.Kind, bool) {
	c := l.first()
	switch c {
	case ';':
		l.bump()
		return token.SEMICOLON, true
	case ',':
		l.bump()
		return token.COMMA, true
	case '(':
		l.bump()
		return token.LP, true
	case ')':
		l.bump()
		return token.RP, true
	case '.':
		l.bump()
		return token.DOT, true
	case '*':
		l.bump()
		return token.STAR, true
	case '+':
		l.bump()
		return token.PLUS, true
	case '-':
		l.bump()
		if l.first() == '>' {
			l.bump()
			if l.first() == '>' {
				l.bump()
				return token.ARROW2, true
			}
			return token.ARROW, true
		}
		return token.MINUS, true
	case '~':
		l.bump()
		return token.TILDA, true
	case '/':
		l.bump()
		return token.SLASH, true
	case '%':
		l.bump()
		return token.PERCENT, true
	case '=':
		l.bump()
		if l.first() == '=' {
			l.bump()
			return token.EQ2, true
		}
		return token.EQ, true
	case '!':
		if l.second() == '=' {
			l.bump()
			l.bump()
			return token.NE, true
		}
		return 0, false
	case '<':
		l.bump()
		switch l.first() {
		case '>':
			l.bump()
			return token.LT_GT, true
		case '=':
			l.bump()
			return token.LE, true
		case '<':
			l.bump()
			return token.SHL, true
		}
		return token.LT, true
	case '>':
		l.bump()
		switch l.first() {
		case '=':
			l.bump()
			return token.GE, true
		case '>':
			l.bump()
			return token.SHR, true
		}
		return token.GT, true
	case '&':
		l.bump()
		return token.AMP, true
	case '|':
		l.bump()
		if l.first() == '|' {
			l.bump()
			return token.PIPE2, true
		}
		return token.PIPE, true
	default:
		return 0, false
	}
}

// lexUnknownRun consumes a maximal run of bytes this lexer cannot place
// anywhere else into a single ERROR token, so one stray byte does not
// turn into one ERROR token per byte (spec §4.2).
func (l *Lexer) lexUnknownRun(start int) token.Token {
	l.bump() // always consume at least one byte to guarantee progress
	for !l.atEnd() && !l.startsKnownToken() {
		l.bump()
	}
	return l.makeErr(start, token.ERROR)
}

func (l *Lexer) startsKnownToken() bool {
	c := l.first()
	switch {
	case isSpace(c), isIdentStart(c), isDigit(c):
		return true
	case c == '"', c == '`', c == '[', c == '\'':
		return true
	case c == '-' && l.second() == '-':
		return true
	case c == '/' && l.second() == '*':
		return true
	case c == '?', c == ':', c == '@', c == '$':
		return true
	default:
		_, ok := l.lexPunctPeek()
		return ok
	}
}

// lexPunctPeek reports whether the current position starts a punctuation
// token without consuming it, for startsKnownToken's lookahead.
func (l *Lexer) lexPunctPeek() (token.Kind, bool) {
	save := l.pos
	k, ok := l.lexPunct()
	l.pos = save
	return k, ok
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isIdentStart follows SQLite's own tokenizer: ASCII letters, underscore,
// and any byte >= 0x80 (so UTF-8 continuation/lead bytes of non-ASCII
// identifiers are accepted without decoding them).
func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c >= 0x80
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
