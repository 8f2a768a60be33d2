// Package ungram parses the compact grammar description in sqlite.ungram
// well enough to check the two conformance invariants spec §4.4 demands:
// every `KW_`-prefixed token name is a real keyword and every other token
// name is not one, and every node name matches treekind.Kind exactly in
// both directions. It is not a grammar engine — the format's own header
// comment says as much ("a compact grammar description, not an executable
// grammar").
package ungram

import (
	"regexp"
	"sort"
)

// Grammar is the set of node and token names a .ungram file mentions.
type Grammar struct {
	// Nodes is every node name appearing anywhere in the file, whether as
	// the left-hand side of a rule or referenced from inside one.
	Nodes []string
	// Tokens is every quoted terminal name appearing anywhere in the file.
	Tokens []string
}

var (
	quotedTokenRE = regexp.MustCompile(`'([A-Za-z0-9_]+)'`)
	commentRE     = regexp.MustCompile(`(?m)//.*$`)
	bareNodeRE    = regexp.MustCompile(`\b[A-Z][A-Za-z0-9]*\b`)
)

// Parse extracts the node and token vocabularies from a .ungram source
// string. It has no notion of rule structure (sequence/alternative/
// grouping) beyond stripping punctuation — the conformance checks only
// need the vocabulary, not the productions.
func Parse(src string) *Grammar {
	src = commentRE.ReplaceAllString(src, "")

	tokenSet := map[string]bool{}
	for _, m := range quotedTokenRE.FindAllStringSubmatch(src, -1) {
		tokenSet[m[1]] = true
	}

	// Remove quoted tokens before hunting for bare node identifiers, so a
	// token spelled in a way that happens to look CamelCase (it never
	// does in this grammar, but don't rely on that) can't be
	// double-counted as a node.
	withoutQuotes := quotedTokenRE.ReplaceAllString(src, " ")
	nodeSet := map[string]bool{}
	for _, m := range bareNodeRE.FindAllString(withoutQuotes, -1) {
		nodeSet[m] = true
	}

	return &Grammar{Nodes: sortedKeys(nodeSet), Tokens: sortedKeys(tokenSet)}
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
