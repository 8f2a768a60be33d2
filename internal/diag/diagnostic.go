// Package diag carries parse diagnostics from the core to a caller without
// ever resolving them to line/column: that translation belongs to whatever
// text-editing layer sits above the core (see spec §6).
package diag

import "github.com/bordsql/bordsql/internal/event"

// Stage identifies which phase of the core produced the diagnostic.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser"
)

// Severity captures how impactful the diagnostic is. The core only ever
// emits SeverityError; downstream tooling is free to demote specific codes
// (MissingSemicolon, in particular) to a warning or hint.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic, independent of Message
// wording, so tooling can match on it.
type Code string

const (
	CodeLexerUnterminatedString       Code = "LEXER_UNTERMINATED_STRING"
	CodeLexerUnterminatedBlockComment Code = "LEXER_UNTERMINATED_BLOCK_COMMENT"
	CodeLexerUnknownByte              Code = "LEXER_UNKNOWN_BYTE"

	CodeParserExpectedItems Code = "PARSER_EXPECTED_ITEMS"
	CodeParserUnexpectedTok Code = "PARSER_UNEXPECTED_TOKEN"
	CodeParserMissingSemi   Code = "PARSER_MISSING_SEMICOLON"
)

// Span is a byte-offset range into the original input. It never carries a
// line or column: the core is byte-offset only per spec §6.
type Span struct {
	Start int
	End   int
}

// Diagnostic is surfaced to a caller of the core, in source order.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     Span
}

// IsMissingSemicolon reports whether this diagnostic is the specifically
// kinded missing-semicolon error that downstream tooling may want to
// demote in severity or filter entirely (spec §4.4, §8).
func (d Diagnostic) IsMissingSemicolon() bool {
	return d.Code == CodeParserMissingSemi
}

// FromParseError converts a parser event's ParseErrorKind into a
// Diagnostic positioned at span. stage lets the caller distinguish a
// lexer-originated error (wrapped by the parser as LexerErrorTag) from a
// genuine syntax error.
func FromParseError(stage Stage, e event.ParseErrorKind, span Span) Diagnostic {
	return Diagnostic{
		Stage:    stage,
		Severity: SeverityError,
		Code:     codeForParseError(e),
		Message:  e.String(),
		Span:     span,
	}
}

func codeForParseError(e event.ParseErrorKind) Code {
	switch e.Tag {
	case event.ExpectedItemsTag:
		return CodeParserExpectedItems
	case event.UnexpectedTokenTag:
		return CodeParserUnexpectedTok
	case event.MissingSemicolonTag:
		return CodeParserMissingSemi
	case event.LexerErrorTag:
		switch e.LexKind {
		case event.LexUnterminatedString:
			return CodeLexerUnterminatedString
		case event.LexUnterminatedBlockComment:
			return CodeLexerUnterminatedBlockComment
		default:
			return CodeLexerUnknownByte
		}
	default:
		return Code("PARSER_INTERNAL_ERROR")
	}
}
