package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bordsql/bordsql/internal/cst"
	"github.com/bordsql/bordsql/internal/version"
)

var (
	benchDir string

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Parse every .sql file in a directory concurrently and report timings",
		Long: "Parse every .sql file under --dir (default testdata/corpus) on its own " +
			"goroutine and print how long each took — each parse is independent of " +
			"every other, so fanning them out is safe (see internal/cst's corpus test).",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(benchDir)
		},
	}
)

type benchResult struct {
	name     string
	dur      time.Duration
	numErrs  int
	parseErr error
}

func runBench(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	var mu sync.Mutex
	var results []benchResult

	g, _ := errgroup.WithContext(context.Background())
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		g.Go(func() error {
			r := benchOne(dir, name)
			mu.Lock()
			results = append(results, r)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].name < results[j].name })

	log := logger()
	for _, r := range results {
		if r.parseErr != nil {
			log.WithField("file", r.name).WithError(r.parseErr).Error("failed to read")
			continue
		}
		log.WithFields(map[string]any{
			"file":     r.name,
			"duration": r.dur.String(),
			"errors":   r.numErrs,
		}).Info("parsed")
	}
	return nil
}

func benchOne(dir, name string) benchResult {
	src, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return benchResult{name: name, parseErr: err}
	}

	start := time.Now()
	tree := cst.Parse[*cst.BatchCst](string(src), version.Current)
	dur := time.Since(start)

	return benchResult{name: name, dur: dur, numErrs: len(tree.Errors())}
}

func init() {
	benchCmd.Flags().StringVar(&benchDir, "dir", "testdata/corpus", "directory of .sql files to parse")
	rootCmd.AddCommand(benchCmd)
}
