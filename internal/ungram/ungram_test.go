package ungram_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bordsql/bordsql/internal/keyword"
	"github.com/bordsql/bordsql/internal/treekind"
	"github.com/bordsql/bordsql/internal/ungram"
)

func loadGrammar(t *testing.T) *ungram.Grammar {
	t.Helper()
	src, err := os.ReadFile("../../sqlite.ungram")
	require.NoError(t, err)
	return ungram.Parse(string(src))
}

// TestTokenNamesMatchKeywordTable checks spec §4.4's first
// grammar-enumeration conformance invariant: every ungram token name
// prefixed KW_ is a real keyword, and every other token name is not one.
func TestTokenNamesMatchKeywordTable(t *testing.T) {
	g := loadGrammar(t)
	for _, tok := range g.Tokens {
		if strings.HasPrefix(tok, "KW_") {
			word := strings.TrimPrefix(tok, "KW_")
			_, ok := keyword.Lookup([]byte(word))
			require.Truef(t, ok, "%s is spelled as a keyword token but %q is not in the keyword table", tok, word)
		} else {
			_, ok := keyword.Lookup([]byte(tok))
			require.Falsef(t, ok, "%s is not KW_-prefixed but %q is in the keyword table", tok, tok)
		}
	}
}

// TestNodeNamesMatchTreeKind checks spec §4.4's second grammar-enumeration
// conformance invariant: every ungram node name appears in treekind.Kind,
// and every treekind.Kind member appears in the ungram file, in both
// directions.
func TestNodeNamesMatchTreeKind(t *testing.T) {
	g := loadGrammar(t)

	kindNames := map[string]bool{}
	for _, k := range treekind.All() {
		kindNames[k.String()] = true
	}

	ungramNames := map[string]bool{}
	for _, n := range g.Nodes {
		ungramNames[n] = true
	}

	for _, n := range g.Nodes {
		require.Truef(t, kindNames[n], "sqlite.ungram node %q has no matching treekind.Kind", n)
	}
	for name := range kindNames {
		require.Truef(t, ungramNames[name], "treekind.Kind %q does not appear anywhere in sqlite.ungram", name)
	}
}
