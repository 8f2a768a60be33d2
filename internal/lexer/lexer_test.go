package lexer

import (
	"testing"

	"github.com/bordsql/bordsql/internal/keyword"
	"github.com/bordsql/bordsql/internal/token"
	"github.com/bordsql/bordsql/internal/version"
)

func lexAll(input string) []token.Token {
	l := New(input, version.Current)
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, input string, want ...token.Kind) {
	t.Helper()
	got := kinds(lexAll(input))
	if len(got) != len(want) {
		t.Fatalf("lexAll(%q) = %v, want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lexAll(%q)[%d] = %s, want %s", input, i, got[i], want[i])
		}
	}
}

func TestBasicStatement(t *testing.T) {
	assertKinds(t, "SELECT 1;",
		keyword.KW_SELECT, token.WHITESPACE, token.INT_LIT, token.SEMICOLON, token.EOF)
}

func TestWhitespaceCoalesces(t *testing.T) {
	toks := lexAll("SELECT   1")
	if toks[1].Kind != token.WHITESPACE || toks[1].Text != "   " {
		t.Fatalf("expected a single coalesced whitespace token, got %+v", toks[1])
	}
}

func TestLineComment(t *testing.T) {
	toks := lexAll("-- hi\nSELECT 1")
	if toks[0].Kind != token.LINE_COMMENT || toks[0].Text != "-- hi" {
		t.Fatalf("unexpected line comment token: %+v", toks[0])
	}
}

func TestBlockCommentUnterminated(t *testing.T) {
	toks := lexAll("/* unterminated")
	if toks[0].Kind != token.BLOCK_COMMENT || !toks[0].ErrFlag {
		t.Fatalf("expected unterminated block comment to be flagged, got %+v", toks[0])
	}
}

func TestKeywordsCaseInsensitive(t *testing.T) {
	assertKinds(t, "select SELECT SeLeCt",
		keyword.KW_SELECT, token.WHITESPACE, keyword.KW_SELECT, token.WHITESPACE, keyword.KW_SELECT, token.EOF)
}

func TestQuotedIdentifierVariants(t *testing.T) {
	for _, input := range []string{`"users"`, "`users`", `[users]`} {
		toks := lexAll(input)
		if toks[0].Kind != token.QUOTED_IDEN {
			t.Fatalf("%q: expected QUOTED_IDEN, got %s", input, toks[0].Kind)
		}
	}
}

func TestDoubledQuoteEscape(t *testing.T) {
	toks := lexAll(`"a""b"`)
	if toks[0].Kind != token.QUOTED_IDEN || toks[0].ErrFlag {
		t.Fatalf("expected doubled-quote escape to stay inside one token, got %+v", toks[0])
	}
	if toks[0].Text != `"a""b"` {
		t.Fatalf("unexpected text %q", toks[0].Text)
	}
}

func TestStringLiteralEscape(t *testing.T) {
	toks := lexAll(`'it''s'`)
	if toks[0].Kind != token.STR_LIT || toks[0].ErrFlag {
		t.Fatalf("expected escaped string literal, got %+v", toks[0])
	}
}

func TestUnterminatedString(t *testing.T) {
	toks := lexAll(`'oops`)
	if toks[0].Kind != token.STR_LIT || !toks[0].ErrFlag {
		t.Fatalf("expected unterminated string to be flagged, got %+v", toks[0])
	}
}

func TestBlobLiteral(t *testing.T) {
	assertKinds(t, "x'AB01'", token.BLOB_LIT, token.EOF)
	assertKinds(t, "X'AB01'", token.BLOB_LIT, token.EOF)
}

func TestNumberKinds(t *testing.T) {
	assertKinds(t, "1", token.INT_LIT, token.EOF)
	assertKinds(t, "1.5", token.REAL_LIT, token.EOF)
	assertKinds(t, "1e10", token.REAL_LIT, token.EOF)
	assertKinds(t, "1e", token.INT_LIT, token.IDEN, token.EOF)
	assertKinds(t, "0xFF", token.HEX_LIT, token.EOF)
	assertKinds(t, ".5", token.REAL_LIT, token.EOF)
}

func TestUnderscoreInNumericsGatedByVersion(t *testing.T) {
	old := version.Version{3, 45, 0}
	l := New("1_000", old)
	first := l.Next()
	if first.Text != "1" {
		t.Fatalf("pre-3.46 lexer should stop at the underscore, got %q", first.Text)
	}

	l2 := New("1_000", version.Current)
	first2 := l2.Next()
	if first2.Text != "1_000" {
		t.Fatalf("3.46+ lexer should consume underscores, got %q", first2.Text)
	}
}

func TestBindParameters(t *testing.T) {
	assertKinds(t, "?", token.Q_MARK, token.EOF)
	assertKinds(t, "?12", token.Q_MARK, token.EOF)
	assertKinds(t, ":name", token.COLON_IDEN, token.EOF)
	assertKinds(t, "@name", token.AT_IDEN, token.EOF)
	assertKinds(t, "$name", token.DOLLAR_IDEN, token.EOF)
}

func TestMultiCharPunctuation(t *testing.T) {
	assertKinds(t, "||", token.PIPE2, token.EOF)
	assertKinds(t, "<<", token.SHL, token.EOF)
	assertKinds(t, ">>", token.SHR, token.EOF)
	assertKinds(t, "<=", token.LE, token.EOF)
	assertKinds(t, ">=", token.GE, token.EOF)
	assertKinds(t, "==", token.EQ2, token.EOF)
	assertKinds(t, "!=", token.NE, token.EOF)
	assertKinds(t, "<>", token.LT_GT, token.EOF)
	assertKinds(t, "->", token.ARROW, token.EOF)
	assertKinds(t, "->>", token.ARROW2, token.EOF)
}

func TestUnknownByteRunCoalesces(t *testing.T) {
	toks := lexAll("\x01\x02\x03 SELECT")
	if toks[0].Kind != token.ERROR || !toks[0].ErrFlag {
		t.Fatalf("expected a single ERROR token, got %+v", toks[0])
	}
	if len(toks[0].Text) != 3 {
		t.Fatalf("expected the unknown run to coalesce to 3 bytes, got %q", toks[0].Text)
	}
}

func TestEOFIsStableOnRepeatedCalls(t *testing.T) {
	l := New("", version.Current)
	a := l.Next()
	b := l.Next()
	if a.Kind != token.EOF || b.Kind != token.EOF {
		t.Fatalf("expected EOF forever, got %+v then %+v", a, b)
	}
}

func TestAbsOffsetsAreByteExact(t *testing.T) {
	toks := lexAll(`SELECT "é"`)
	// "é" is 2 bytes in UTF-8; offsets must track bytes, not runes.
	last := toks[len(toks)-2]
	if last.Kind != token.QUOTED_IDEN {
		t.Fatalf("expected quoted identifier before EOF, got %+v", last)
	}
	wantEnd := uint32(len(`SELECT "é"`))
	if last.End() != wantEnd {
		t.Fatalf("End() = %d, want %d", last.End(), wantEnd)
	}
}
