package parser

import (
	"testing"

	"github.com/bordsql/bordsql/internal/event"
	"github.com/bordsql/bordsql/internal/keyword"
	"github.com/bordsql/bordsql/internal/token"
	"github.com/bordsql/bordsql/internal/treekind"
	"github.com/bordsql/bordsql/internal/version"
)

func TestOpenCloseProducesBalancedEvents(t *testing.T) {
	p := New("select 1", version.Current)
	m := p.Open()
	p.Advance() // "select"
	p.Advance() // whitespace is flushed as part of this advance
	p.Close(m, treekind.SelectStmt)

	evs := p.Events()
	if evs[0].Kind != event.Open || evs[0].Tree != treekind.SelectStmt {
		t.Fatalf("expected Open(SelectStmt) first, got %+v", evs[0])
	}
	if evs[len(evs)-1].Kind != event.Close {
		t.Fatalf("expected trailing Close, got %+v", evs[len(evs)-1])
	}
}

func TestOpenBeforeWrapsPriorSubtree(t *testing.T) {
	p := New("1 + 2", version.Current)

	m1 := p.Open()
	p.Advance() // "1"
	lhs := p.Close(m1, treekind.ExprLit)

	wrap := p.OpenBefore(lhs)
	p.Advance() // whitespace is flushed, then "+"
	m2 := p.Open()
	p.Advance() // whitespace is flushed, then "2"
	p.Close(m2, treekind.ExprLit)
	p.Close(wrap, treekind.OpAdd)

	evs := p.Events()
	if evs[0].Kind != event.Open || evs[0].Tree != treekind.OpAdd {
		t.Fatalf("expected outermost Open(OpAdd) after wrapping, got %+v", evs[0])
	}
	if evs[1].Kind != event.Open || evs[1].Tree != treekind.ExprLit {
		t.Fatalf("expected nested Open(ExprLit) second, got %+v", evs[1])
	}
}

func TestAtSkipsTrivia(t *testing.T) {
	p := New("  select", version.Current)
	if !p.At(keyword.KW_SELECT) {
		t.Fatalf("expected At to see past leading whitespace")
	}
}

func TestEatAdvancesOnlyOnMatch(t *testing.T) {
	p := New("select", version.Current)
	if p.Eat(keyword.KW_FROM) {
		t.Fatalf("Eat should not match KW_FROM")
	}
	if !p.Eat(keyword.KW_SELECT) {
		t.Fatalf("Eat should match KW_SELECT")
	}
	if !p.Eof() {
		t.Fatalf("expected EOF after consuming the only token")
	}
}

func TestExpectRecordsErrorWithoutConsuming(t *testing.T) {
	p := New("select", version.Current)
	if p.Expect(token.SEMICOLON) {
		t.Fatalf("Expect should fail: no semicolon present")
	}
	if p.Eof() {
		t.Fatalf("Expect must not consume on failure")
	}
	evs := p.Events()
	if evs[len(evs)-1].Kind != event.Error {
		t.Fatalf("expected a trailing Error event, got %+v", evs[len(evs)-1])
	}
}

func TestAdvanceWithErrorAlwaysMakesProgress(t *testing.T) {
	p := New("%%%", version.Current)
	before := p.Eof()
	if before {
		t.Fatalf("setup: expected non-empty input")
	}
	p.AdvanceWithError(event.UnexpectedToken(p.UnexpectedTokenHere()))
	// "%%%" lexes as three PERCENT tokens; exactly the first is consumed.
	if p.pos != 1 {
		t.Fatalf("expected AdvanceWithError to consume one token, pos = %d", p.pos)
	}
}

func TestFuelExhaustionPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on fuel exhaustion")
		}
	}()
	p := New("select", version.Current)
	for i := 0; i < startFuel+1; i++ {
		p.At(token.SEMICOLON)
	}
}
