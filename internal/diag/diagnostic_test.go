package diag

import (
	"testing"

	"github.com/bordsql/bordsql/internal/event"
)

func TestFromParseErrorMissingSemicolon(t *testing.T) {
	d := FromParseError(StageParser, event.MissingSemicolon(), Span{Start: 3, End: 3})
	if d.Code != CodeParserMissingSemi {
		t.Fatalf("Code = %q, want %q", d.Code, CodeParserMissingSemi)
	}
	if !d.IsMissingSemicolon() {
		t.Fatalf("expected IsMissingSemicolon() to be true")
	}
	if d.Severity != SeverityError {
		t.Fatalf("Severity = %q, want %q", d.Severity, SeverityError)
	}
}

func TestFromParseErrorLexerError(t *testing.T) {
	d := FromParseError(StageLexer, event.LexerError(event.LexUnterminatedString), Span{Start: 0, End: 5})
	if d.Code != CodeLexerUnterminatedString {
		t.Fatalf("Code = %q, want %q", d.Code, CodeLexerUnterminatedString)
	}
	if d.Stage != StageLexer {
		t.Fatalf("Stage = %q, want %q", d.Stage, StageLexer)
	}
}
