// Package event defines the parser's output: a flat stream describing how
// to assemble a CST, independent of which CST representation ends up
// consuming it (spec §5, §7). All three representations in internal/cst
// are built by replaying the same stream.
package event

import (
	"fmt"
	"strings"

	"github.com/bordsql/bordsql/internal/token"
	"github.com/bordsql/bordsql/internal/treekind"
)

// Kind discriminates the four event variants.
type Kind uint8

const (
	Open Kind = iota
	Close
	Advance
	Error
)

// Event is one step in the build stream: Open/Close bracket a subtree,
// Advance consumes one token (trivia or not) into the tree under
// construction, and Error attaches a diagnostic to the current position
// without consuming anything.
//
// Only one of Tree / Err is meaningful, selected by Kind: Open carries
// Tree, Error carries Err. Close and Advance carry neither.
type Event struct {
	Kind Kind
	Tree treekind.Kind
	Err  ParseErrorKind
}

func OpenEvent(k treekind.Kind) Event { return Event{Kind: Open, Tree: k} }
func CloseEvent() Event               { return Event{Kind: Close} }
func AdvanceEvent() Event             { return Event{Kind: Advance} }
func ErrorEvent(e ParseErrorKind) Event {
	return Event{Kind: Error, Err: e}
}

// ExpectedItem is one thing the parser would have accepted at a position
// where it instead found something else: either a specific token kind
// (punctuation, a keyword) or an entire subtree it was trying to open.
type ExpectedItem struct {
	IsTree bool
	Token  token.Kind
	Tree   treekind.Kind
}

func ExpectedToken(k token.Kind) ExpectedItem    { return ExpectedItem{Token: k} }
func ExpectedTree(k treekind.Kind) ExpectedItem   { return ExpectedItem{IsTree: true, Tree: k} }

func (e ExpectedItem) String() string {
	if e.IsTree {
		return e.Tree.String()
	}
	return e.Token.String()
}

// LexErrorKind enumerates the ways the lexer flags a token it could not
// close cleanly. The lexer itself never fails (spec §4.2); these values
// only explain an ErrFlag token after the fact, for diagnostics.
type LexErrorKind uint8

const (
	LexUnterminatedString LexErrorKind = iota
	LexUnterminatedBlockComment
	LexUnknownByte
)

func (k LexErrorKind) String() string {
	switch k {
	case LexUnterminatedString:
		return "unterminated string literal"
	case LexUnterminatedBlockComment:
		return "unterminated block comment"
	case LexUnknownByte:
		return "unrecognized byte"
	default:
		return "unknown lex error"
	}
}

// ParseErrorKindTag discriminates ParseErrorKind's variants.
type ParseErrorKindTag uint8

const (
	ExpectedItemsTag ParseErrorKindTag = iota
	UnexpectedTokenTag
	MissingSemicolonTag
	LexerErrorTag
	InternalTag
)

// ParseErrorKind is the single error enumeration the parser ever produces
// (spec §7). It never carries a byte offset or line/column: the event
// that carries it is always positioned exactly where the problem was
// found, and resolving that position to a span is the CST layer's job.
type ParseErrorKind struct {
	Tag      ParseErrorKindTag
	Items    []ExpectedItem // ExpectedItemsTag
	Token    token.Kind     // UnexpectedTokenTag
	LexKind  LexErrorKind   // LexerErrorTag
	Internal string         // InternalTag
}

func ExpectedItems(items []ExpectedItem) ParseErrorKind {
	return ParseErrorKind{Tag: ExpectedItemsTag, Items: items}
}

func UnexpectedToken(k token.Kind) ParseErrorKind {
	return ParseErrorKind{Tag: UnexpectedTokenTag, Token: k}
}

func MissingSemicolon() ParseErrorKind {
	return ParseErrorKind{Tag: MissingSemicolonTag}
}

func LexerError(k LexErrorKind) ParseErrorKind {
	return ParseErrorKind{Tag: LexerErrorTag, LexKind: k}
}

func Internal(msg string) ParseErrorKind {
	return ParseErrorKind{Tag: InternalTag, Internal: msg}
}

func (e ParseErrorKind) String() string {
	switch e.Tag {
	case ExpectedItemsTag:
		parts := make([]string, len(e.Items))
		for i, it := range e.Items {
			parts[i] = it.String()
		}
		return fmt.Sprintf("expected %s", strings.Join(parts, " or "))
	case UnexpectedTokenTag:
		return fmt.Sprintf("unexpected %s", e.Token)
	case MissingSemicolonTag:
		return "missing semicolon"
	case LexerErrorTag:
		return e.LexKind.String()
	case InternalTag:
		return fmt.Sprintf("internal parser error: %s", e.Internal)
	default:
		return "unknown parse error"
	}
}
