package cst_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/bordsql/bordsql/internal/cst"
	"github.com/bordsql/bordsql/internal/version"
)

// TestCorpus parses every file under testdata/corpus concurrently — each
// parse is a pure function of its input (spec §5), so fanning files out
// across goroutines with errgroup is exactly the use the core documents —
// and checks, per file, spec §8 properties 1 and 2: every token round-trips
// the file's bytes, and all three Cst representations agree on both
// Display output and the set of attached errors.
//
// testdata/corpus/malformed.sql deliberately contains syntax errors: a
// CREATE TABLE with no column list, statements not separated by `;`
// (each reported as MissingSemicolon, spec §7) and an empty WHERE. Those
// diagnostics are real and every representation reports them
// identically, so nothing is filtered out of the equality check below —
// the harness asserts the three representations still AGREE with each
// other in the presence of those errors, rather than asserting the file
// parses clean. A corpus fixture is allowed to be malformed; it is not allowed
// to make the representations disagree.
func TestCorpus(t *testing.T) {
	entries, err := os.ReadDir("../../testdata/corpus")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	// errgroup goroutines must not call t.Fatal/require — those invoke
	// runtime.Goexit, which is only valid from the test's own goroutine.
	// Each worker returns its finding as a plain error instead, and the
	// main goroutine reports them after g.Wait().
	g, _ := errgroup.WithContext(context.Background())
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		g.Go(func() error {
			src, err := os.ReadFile(filepath.Join("../../testdata/corpus", name))
			if err != nil {
				return err
			}
			return checkCorpusFile(name, string(src))
		})
	}
	require.NoError(t, g.Wait())
}

func checkCorpusFile(name, src string) error {
	events, toks := cst.ParseEventsAndTokens(src, version.Current)

	var roundTripped string
	for _, tok := range toks {
		roundTripped += tok.Text
	}
	if roundTripped != src {
		return fmt.Errorf("%s: round-trip mismatch", name)
	}

	batch := cst.BuildBatch(events, toks)
	inc := cst.BuildIncremental(events, toks)
	slot := cst.BuildSlot(events, toks)

	if batch.Display() != inc.Display() {
		return fmt.Errorf("%s: batch/incremental Display mismatch", name)
	}
	if batch.Display() != slot.Display() {
		return fmt.Errorf("%s: batch/slot Display mismatch", name)
	}
	if diff := cmp.Diff(batch.Errors(), inc.Errors()); diff != "" {
		return fmt.Errorf("%s: batch/incremental Errors() mismatch (-batch +incremental):\n%s", name, diff)
	}
	if diff := cmp.Diff(batch.Errors(), slot.Errors()); diff != "" {
		return fmt.Errorf("%s: batch/slot Errors() mismatch (-batch +slot):\n%s", name, diff)
	}
	return nil
}
