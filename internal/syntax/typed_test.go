package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bordsql/bordsql/internal/cst"
	"github.com/bordsql/bordsql/internal/syntax"
	"github.com/bordsql/bordsql/internal/token"
	"github.com/bordsql/bordsql/internal/treekind"
	"github.com/bordsql/bordsql/internal/version"
)

// TestCreateTableIfNotExists exercises spec §8's
// "CREATE TABLE IF NOT EXISTS users(name)" scenario through the typed
// view instead of raw tree walking.
func TestCreateTableIfNotExists(t *testing.T) {
	c := cst.Parse[*cst.SlotCst]("CREATE TABLE IF NOT EXISTS users(name)", version.Current)
	require.Empty(t, c.Errors())

	root := syntax.FromSlot(c)
	file := firstChildOfKind(t, root, treekind.File)
	stmt := firstChildOfKind(t, file, treekind.CreateTableStmt)

	ct, ok := syntax.Cast[syntax.CreateTableStmt](stmt)
	require.True(t, ok)
	require.True(t, ct.IfNotExists())

	name, ok := ct.TableName()
	require.True(t, ok)
	got, ok := name.Name()
	require.True(t, ok)
	require.Equal(t, "users", got)

	details, ok := ct.Details()
	require.True(t, ok)
	cols := details.ColumnDefs()
	require.Len(t, cols, 1)
	colName, ok := cols[0].Name()
	require.True(t, ok)
	require.Equal(t, "name", colName)
}

// TestSelectFromQuotedIdentifier exercises spec §8's
// `SELECT * FROM "users"` scenario.
func TestSelectFromQuotedIdentifier(t *testing.T) {
	c := cst.Parse[*cst.BatchCst](`SELECT * FROM "users"`, version.Current)
	require.Empty(t, c.Errors())

	root := syntax.FromBatch(c)
	stmt := firstChildOfKind(t, root, treekind.SelectStmt)

	sel, ok := syntax.Cast[syntax.SelectStmt](stmt)
	require.True(t, ok)
	core, ok := sel.Core()
	require.True(t, ok)

	cols := core.ResultColumns()
	require.Len(t, cols, 1)
	require.Equal(t, treekind.ResultColumnAll, cols[0].Kind())

	from, ok := core.From()
	require.True(t, ok)
	names := from.QualifiedTableNames()
	require.Len(t, names, 1)
	tok, ok := names[0].NameToken()
	require.True(t, ok)
	require.Equal(t, token.QUOTED_IDEN, tok.Kind)
	require.Equal(t, `"users"`, tok.Text)
}

// TestCastRejectsWrongKind checks the checked-view semantics spec §4.6
// requires: casting to the wrong typed wrapper fails instead of panicking.
func TestCastRejectsWrongKind(t *testing.T) {
	c := cst.Parse[*cst.BatchCst]("SELECT 1", version.Current)
	root := syntax.FromBatch(c)
	stmt := firstChildOfKind(t, root, treekind.SelectStmt)

	_, ok := syntax.Cast[syntax.CreateTableStmt](stmt)
	require.False(t, ok)
}

// firstChildOfKind finds the first descendant of n (n included) with
// tree kind k, searching to any depth — statement dispatch nests the
// concrete statement kind a variable number of levels below File
// depending on whether a CTE/StatementWithCte wrapper is present, so a
// direct-children-only lookup is not enough here.
func firstChildOfKind(t *testing.T, n syntax.Node, k treekind.Kind) syntax.Node {
	t.Helper()
	var found syntax.Node
	var walk func(syntax.Node) bool
	walk = func(n syntax.Node) bool {
		if n.IsToken() {
			return false
		}
		if n.Kind() == k {
			found = n
			return true
		}
		for _, c := range n.Children() {
			if walk(c) {
				return true
			}
		}
		return false
	}
	require.True(t, walk(n), "no %s descendant found", k)
	return found
}
