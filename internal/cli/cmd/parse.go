package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/bordsql/bordsql/internal/cst"
	"github.com/bordsql/bordsql/internal/diag"
	"github.com/bordsql/bordsql/internal/event"
	"github.com/bordsql/bordsql/internal/version"
)

var (
	parseFile string
	parseRepr bool

	parseCmd = &cobra.Command{
		Use:   "parse [query]",
		Short: "Parse a SQL string or file and print its concrete syntax tree",
		Long: "Parse a SQL string (given as an argument) or a file (--file) and print " +
			"the resulting concrete syntax tree, followed by any diagnostics.",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseInput(args)
			if err != nil {
				return err
			}

			tree := cst.Parse[*cst.BatchCst](src, version.Current)
			if parseRepr {
				repr.Println(tree.Root)
			} else {
				fmt.Print(tree.Display())
			}

			printDiagnostics(src, tree.Errors())
			return nil
		},
	}
)

func parseInput(args []string) (string, error) {
	if parseFile != "" {
		b, err := os.ReadFile(parseFile)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", parseFile, err)
		}
		return string(b), nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("parse: pass a query argument or --file")
	}
	return strings.Join(args, " "), nil
}

// printDiagnostics resolves each core Error to a line/column before
// logging it — the core itself only ever carries a byte offset (spec §6),
// so this translation belongs here, at the CLI boundary.
func printDiagnostics(src string, errs []cst.Error) {
	log := logger()
	for _, e := range errs {
		line, col := lineCol(src, e.Pos)
		d := diag.FromParseError(stageFor(e), e.Kind, diag.Span{Start: int(e.Pos), End: int(e.Pos)})
		log.WithFields(logrusFields(line, col, d)).Error(d.Message)
	}
}

func stageFor(e cst.Error) diag.Stage {
	if e.Kind.Tag == event.LexerErrorTag {
		return diag.StageLexer
	}
	return diag.StageParser
}

func logrusFields(line, col int, d diag.Diagnostic) map[string]any {
	return map[string]any{
		"line": line,
		"col":  col,
		"code": d.Code,
	}
}

func lineCol(src string, pos uint32) (line, col int) {
	line = 1
	col = 1
	for i := 0; i < int(pos) && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func init() {
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "path to a .sql file to parse instead of an argument")
	parseCmd.Flags().BoolVar(&parseRepr, "repr", false, "print the tree with alecthomas/repr instead of the default Display rendering")
	rootCmd.AddCommand(parseCmd)
}
