package cst_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"github.com/bordsql/bordsql/internal/cst"
	"github.com/bordsql/bordsql/internal/event"
	"github.com/bordsql/bordsql/internal/treekind"
	"github.com/bordsql/bordsql/internal/version"
)

var corpus = []string{
	"",
	"   \n\t  ",
	"/* unterminated",
	";",
	"SELECT 1",
	"SELECT 1e1",
	"SELECT * FROM \"users\"",
	"CREATE TABLE f",
	"CREATE TABLE IF NOT EXISTS users(name)",
	"SELECT 1 SELECT 2",
	"SELECT a, b FROM t WHERE a = 1 AND b BETWEEN 1 AND 10 ORDER BY a LIMIT 5",
	"INSERT INTO t(a, b) VALUES (1, 2), (3, 4)",
	"UPDATE t SET a = 1 WHERE b = 2",
	"DELETE FROM t WHERE a IS NOT NULL",
	"WITH x AS (SELECT 1) SELECT * FROM x",
}

// diffStrings renders a unified diff between two Display() outputs so a
// failing representation-equivalence check points straight at the
// mismatching node instead of dumping two whole trees (spec SPEC_FULL
// ambient stack: go-difflib).
func diffStrings(t *testing.T, label, a, b string) {
	t.Helper()
	if a == b {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: label + "/batch",
		ToFile:   label + "/other",
		Context:  2,
	})
	require.NoError(t, err)
	t.Fatalf("%s: Display() mismatch:\n%s", label, diff)
}

// TestRepresentationEquivalence checks spec §8 property 2: the three Cst
// builders, fed the identical event+token stream, produce identical
// Display output and an identical set of attached errors.
func TestRepresentationEquivalence(t *testing.T) {
	for _, src := range corpus {
		src := src
		t.Run(src, func(t *testing.T) {
			events, toks := cst.ParseEventsAndTokens(src, version.Current)

			batch := cst.BuildBatch(events, toks)
			inc := cst.BuildIncremental(events, toks)
			slot := cst.BuildSlot(events, toks)

			diffStrings(t, src, batch.Display(), inc.Display())
			diffStrings(t, src, batch.Display(), slot.Display())

			if diff := cmp.Diff(batch.Errors(), inc.Errors()); diff != "" {
				t.Fatalf("batch/incremental Errors() mismatch (-batch +incremental):\n%s", diff)
			}
			if diff := cmp.Diff(batch.Errors(), slot.Errors()); diff != "" {
				t.Fatalf("batch/slot Errors() mismatch (-batch +slot):\n%s", diff)
			}
		})
	}
}

// TestRoundTrip checks spec §8 property 1: the in-order concatenation of
// every token's text reproduces the input exactly, trivia and error
// tokens included.
func TestRoundTrip(t *testing.T) {
	for _, src := range corpus {
		_, toks := cst.ParseEventsAndTokens(src, version.Current)
		var b strings.Builder
		for _, tok := range toks {
			b.WriteString(tok.Text)
		}
		require.Equal(t, src, b.String(), "round-trip mismatch for %q", src)
	}
}

// TestErrorTotality checks spec §8 property 3: parse never panics, for
// every corpus entry including the deliberately pathological ones
// (empty, all-trivia, unterminated comment, lone semicolon).
func TestErrorTotality(t *testing.T) {
	for _, src := range corpus {
		require.NotPanics(t, func() {
			cst.Parse[*cst.BatchCst](src, version.Current)
		}, "panicked on %q", src)
	}
}

// TestIncrementalCorrectness checks spec §8 property 6 in its
// conservative form (spec §9 Open Question (c)): Reparse with no edits is
// required to equal a fresh build on the same input, which is the
// baseline every real edit-aware reuse strategy must also satisfy.
func TestIncrementalCorrectness(t *testing.T) {
	for _, src := range corpus {
		events, toks := cst.ParseEventsAndTokens(src, version.Current)
		prior := cst.BuildIncremental(events, toks)
		reparsed := cst.Reparse(prior, events, toks, nil)
		diffStrings(t, src, prior.Display(), reparsed.Display())
	}
}

func TestBoundaryEmptyInput(t *testing.T) {
	batch := cst.Parse[*cst.BatchCst]("", version.Current)
	require.Empty(t, batch.Errors())
	require.Equal(t, "File\n", batch.Display())
}

func TestBoundaryUnterminatedBlockComment(t *testing.T) {
	batch := cst.Parse[*cst.BatchCst]("/* unterminated", version.Current)
	require.Len(t, batch.Errors(), 1)
	require.Equal(t, uint32(0), batch.Errors()[0].Pos)
}

// TestCreateTableMissingDetails checks spec §8's concrete scenario:
// `"CREATE TABLE f"` must produce exactly one ExpectedItems([Tree(
// TableDetails)]) error at offset 14, not a stray ExpectedItems([Token(
// LP)]) from descending into tableDetails anyway.
func TestCreateTableMissingDetails(t *testing.T) {
	batch := cst.Parse[*cst.BatchCst]("CREATE TABLE f", version.Current)
	require.Len(t, batch.Errors(), 1)
	err := batch.Errors()[0]
	require.Equal(t, uint32(14), err.Pos)
	require.Equal(t, event.ExpectedItemsTag, err.Kind.Tag)
	require.Equal(t, []event.ExpectedItem{event.ExpectedTree(treekind.TableDetails)}, err.Kind.Items)
}

// TestSelectAloneMissingResultColumns checks spec §8's boundary scenario:
// a bare `"SELECT"` must yield a SelectStmt with an ExpectedItems error
// whose first expected is Tree(ResultColumnList), not an UnexpectedToken
// surfaced by falling through into Pratt expression parsing at EOF.
func TestSelectAloneMissingResultColumns(t *testing.T) {
	batch := cst.Parse[*cst.BatchCst]("SELECT", version.Current)
	require.NotEmpty(t, batch.Errors())
	err := batch.Errors()[0]
	require.Equal(t, event.ExpectedItemsTag, err.Kind.Tag)
	require.NotEmpty(t, err.Kind.Items)
	require.Equal(t, event.ExpectedTree(treekind.ResultColumnList), err.Kind.Items[0])
}

func TestBoundaryMissingSemicolon(t *testing.T) {
	batch := cst.Parse[*cst.BatchCst]("SELECT 1 SELECT 2", version.Current)
	var sawMissingSemi bool
	for _, e := range batch.Errors() {
		if e.Kind.String() == "missing semicolon" {
			sawMissingSemi = true
		}
	}
	require.True(t, sawMissingSemi, "expected a MissingSemicolon error, got %v", batch.Errors())
}
