// Package keyword provides the reserved-word lookup table the lexer uses
// to turn an identifier-shaped byte run into a KW_xxx token kind, plus the
// IDEN_SET of keywords SQLite nevertheless accepts as plain identifiers in
// specific grammar positions (spec §4.1, §4.4).
//
// The table is organized by byte length, the same zero-allocation shape
// _examples/oarkflow-sqlparser/lexer/keywords.go uses, extended to the
// full SQLite 3.46 reserved-word list taken verbatim from
// _examples/original_source/sqlite3-parser/src/grammar/common.rs.
package keyword

import "github.com/bordsql/bordsql/internal/token"

// keywordNames is the canonical, ordered list of every word the lexer
// treats as a keyword: SQLite's real reserved words, plus the handful of
// "soft" words (TRUE, FALSE, STORED, ROWID, STRICT) the original bord
// parser also lexes as keywords purely to simplify grammar dispatch, even
// though SQLite itself does not reserve them.
var keywordNames = []string{
	"ABORT", "ACTION", "ADD", "AFTER", "ALL", "ALTER", "ALWAYS", "ANALYZE",
	"AND", "AS", "ASC", "ATTACH", "AUTOINCREMENT", "BEFORE", "BEGIN",
	"BETWEEN", "BY", "CASCADE", "CASE", "CAST", "CHECK", "COLLATE",
	"COLUMN", "COMMIT", "CONFLICT", "CONSTRAINT", "CREATE", "CROSS",
	"CURRENT", "CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP",
	"DATABASE", "DEFAULT", "DEFERRABLE", "DEFERRED", "DELETE", "DESC",
	"DETACH", "DISTINCT", "DO", "DROP", "EACH", "ELSE", "END", "ESCAPE",
	"EXCEPT", "EXCLUSIVE", "EXCLUDE", "EXISTS", "EXPLAIN", "FAIL", "FILTER",
	"FIRST", "FOLLOWING", "FOR", "FOREIGN", "FROM", "FULL", "GENERATED",
	"GLOB", "GROUP", "GROUPS", "HAVING", "IF", "IGNORE", "IMMEDIATE", "IN",
	"INDEX", "INDEXED", "INITIALLY", "INNER", "INSERT", "INSTEAD",
	"INTERSECT", "INTO", "IS", "ISNULL", "JOIN", "KEY", "LAST", "LEFT",
	"LIKE", "LIMIT", "MATCH", "MATERIALIZED", "NATURAL", "NO", "NOT",
	"NOTHING", "NOTNULL", "NULL", "NULLS", "OF", "OFFSET", "ON", "OR",
	"ORDER", "OTHERS", "OUTER", "OVER", "PARTITION", "PLAN", "PRAGMA",
	"PRECEDING", "PRIMARY", "QUERY", "RAISE", "RANGE", "RECURSIVE",
	"REFERENCES", "REGEXP", "REINDEX", "RELEASE", "RENAME", "REPLACE",
	"RESTRICT", "RETURNING", "RIGHT", "ROLLBACK", "ROW", "ROWS",
	"SAVEPOINT", "SELECT", "SET", "TABLE", "TEMP", "TEMPORARY", "THEN",
	"TIES", "TO", "TRANSACTION", "TRIGGER", "UNBOUNDED", "UNION", "UNIQUE",
	"UPDATE", "USING", "VACUUM", "VALUES", "VIEW", "VIRTUAL", "WHEN",
	"WHERE", "WINDOW", "WITH", "WITHOUT",

	// Soft-only additions: not SQLite reserved words, but lexed as
	// keywords to simplify the grammar; always valid as identifiers via
	// IDEN_SET.
	"TRUE", "FALSE", "STORED", "ROWID", "STRICT",
}

// MaxKeywordLen is the byte length of the longest keyword, exposed so the
// lexer can short-circuit identifiers longer than any keyword (spec §4.1).
var MaxKeywordLen int

var (
	indexByName = make(map[string]int, len(keywordNames))
	byLen       [32][]entry
)

type entry struct {
	name string
	kind token.Kind
}

// KW holds every keyword's Kind, keyed by its upper-case name as it
// appears in keywordNames. Exported named members below are the ones the
// grammar packages reference directly.
var KW = make(map[string]token.Kind, len(keywordNames))

var (
	KW_ABORT, KW_ACTION, KW_ADD, KW_AFTER, KW_ALL, KW_ALTER, KW_ALWAYS,
	KW_ANALYZE, KW_AND, KW_AS, KW_ASC, KW_ATTACH, KW_AUTOINCREMENT,
	KW_BEFORE, KW_BEGIN, KW_BETWEEN, KW_BY, KW_CASCADE, KW_CASE, KW_CAST,
	KW_CHECK, KW_COLLATE, KW_COLUMN, KW_COMMIT, KW_CONFLICT, KW_CONSTRAINT,
	KW_CREATE, KW_CROSS, KW_CURRENT, KW_CURRENT_DATE, KW_CURRENT_TIME,
	KW_CURRENT_TIMESTAMP, KW_DATABASE, KW_DEFAULT, KW_DEFERRABLE,
	KW_DEFERRED, KW_DELETE, KW_DESC, KW_DETACH, KW_DISTINCT, KW_DO,
	KW_DROP, KW_EACH, KW_ELSE, KW_END, KW_ESCAPE, KW_EXCEPT, KW_EXCLUSIVE,
	KW_EXCLUDE, KW_EXISTS, KW_EXPLAIN, KW_FAIL, KW_FILTER, KW_FIRST,
	KW_FOLLOWING, KW_FOR, KW_FOREIGN, KW_FROM, KW_FULL, KW_GENERATED,
	KW_GLOB, KW_GROUP, KW_GROUPS, KW_HAVING, KW_IF, KW_IGNORE,
	KW_IMMEDIATE, KW_IN, KW_INDEX, KW_INDEXED, KW_INITIALLY, KW_INNER,
	KW_INSERT, KW_INSTEAD, KW_INTERSECT, KW_INTO, KW_IS, KW_ISNULL,
	KW_JOIN, KW_KEY, KW_LAST, KW_LEFT, KW_LIKE, KW_LIMIT, KW_MATCH,
	KW_MATERIALIZED, KW_NATURAL, KW_NO, KW_NOT, KW_NOTHING, KW_NOTNULL,
	KW_NULL, KW_NULLS, KW_OF, KW_OFFSET, KW_ON, KW_OR, KW_ORDER,
	KW_OTHERS, KW_OUTER, KW_OVER, KW_PARTITION, KW_PLAN, KW_PRAGMA,
	KW_PRECEDING, KW_PRIMARY, KW_QUERY, KW_RAISE, KW_RANGE, KW_RECURSIVE,
	KW_REFERENCES, KW_REGEXP, KW_REINDEX, KW_RELEASE, KW_RENAME,
	KW_REPLACE, KW_RESTRICT, KW_RETURNING, KW_RIGHT, KW_ROLLBACK, KW_ROW,
	KW_ROWS, KW_SAVEPOINT, KW_SELECT, KW_SET, KW_TABLE, KW_TEMP,
	KW_TEMPORARY, KW_THEN, KW_TIES, KW_TO, KW_TRANSACTION, KW_TRIGGER,
	KW_UNBOUNDED, KW_UNION, KW_UNIQUE, KW_UPDATE, KW_USING, KW_VACUUM,
	KW_VALUES, KW_VIEW, KW_VIRTUAL, KW_WHEN, KW_WHERE, KW_WINDOW, KW_WITH,
	KW_WITHOUT, KW_TRUE, KW_FALSE, KW_STORED, KW_ROWID, KW_STRICT token.Kind
)

func init() {
	ptrs := []*token.Kind{
		&KW_ABORT, &KW_ACTION, &KW_ADD, &KW_AFTER, &KW_ALL, &KW_ALTER, &KW_ALWAYS,
		&KW_ANALYZE, &KW_AND, &KW_AS, &KW_ASC, &KW_ATTACH, &KW_AUTOINCREMENT,
		&KW_BEFORE, &KW_BEGIN, &KW_BETWEEN, &KW_BY, &KW_CASCADE, &KW_CASE, &KW_CAST,
		&KW_CHECK, &KW_COLLATE, &KW_COLUMN, &KW_COMMIT, &KW_CONFLICT, &KW_CONSTRAINT,
		&KW_CREATE, &KW_CROSS, &KW_CURRENT, &KW_CURRENT_DATE, &KW_CURRENT_TIME,
		&KW_CURRENT_TIMESTAMP, &KW_DATABASE, &KW_DEFAULT, &KW_DEFERRABLE,
		&KW_DEFERRED, &KW_DELETE, &KW_DESC, &KW_DETACH, &KW_DISTINCT, &KW_DO,
		&KW_DROP, &KW_EACH, &KW_ELSE, &KW_END, &KW_ESCAPE, &KW_EXCEPT, &KW_EXCLUSIVE,
		&KW_EXCLUDE, &KW_EXISTS, &KW_EXPLAIN, &KW_FAIL, &KW_FILTER, &KW_FIRST,
		&KW_FOLLOWING, &KW_FOR, &KW_FOREIGN, &KW_FROM, &KW_FULL, &KW_GENERATED,
		&KW_GLOB, &KW_GROUP, &KW_GROUPS, &KW_HAVING, &KW_IF, &KW_IGNORE,
		&KW_IMMEDIATE, &KW_IN, &KW_INDEX, &KW_INDEXED, &KW_INITIALLY, &KW_INNER,
		&KW_INSERT, &KW_INSTEAD, &KW_INTERSECT, &KW_INTO, &KW_IS, &KW_ISNULL,
		&KW_JOIN, &KW_KEY, &KW_LAST, &KW_LEFT, &KW_LIKE, &KW_LIMIT, &KW_MATCH,
		&KW_MATERIALIZED, &KW_NATURAL, &KW_NO, &KW_NOT, &KW_NOTHING, &KW_NOTNULL,
		&KW_NULL, &KW_NULLS, &KW_OF, &KW_OFFSET, &KW_ON, &KW_OR, &KW_ORDER,
		&KW_OTHERS, &KW_OUTER, &KW_OVER, &KW_PARTITION, &KW_PLAN, &KW_PRAGMA,
		&KW_PRECEDING, &KW_PRIMARY, &KW_QUERY, &KW_RAISE, &KW_RANGE, &KW_RECURSIVE,
		&KW_REFERENCES, &KW_REGEXP, &KW_REINDEX, &KW_RELEASE, &KW_RENAME,
		&KW_REPLACE, &KW_RESTRICT, &KW_RETURNING, &KW_RIGHT, &KW_ROLLBACK, &KW_ROW,
		&KW_ROWS, &KW_SAVEPOINT, &KW_SELECT, &KW_SET, &KW_TABLE, &KW_TEMP,
		&KW_TEMPORARY, &KW_THEN, &KW_TIES, &KW_TO, &KW_TRANSACTION, &KW_TRIGGER,
		&KW_UNBOUNDED, &KW_UNION, &KW_UNIQUE, &KW_UPDATE, &KW_USING, &KW_VACUUM,
		&KW_VALUES, &KW_VIEW, &KW_VIRTUAL, &KW_WHEN, &KW_WHERE, &KW_WINDOW, &KW_WITH,
		&KW_WITHOUT, &KW_TRUE, &KW_FALSE, &KW_STORED, &KW_ROWID, &KW_STRICT,
	}
	if len(ptrs) != len(keywordNames) {
		panic("keyword: name/pointer table length mismatch")
	}

	byIndexName := make(map[int]string, len(keywordNames))
	for i, name := range keywordNames {
		kind := token.KeywordKind(i)
		*ptrs[i] = kind
		KW[name] = kind
		indexByName[name] = i
		byIndexName[i] = "KW_" + name

		if len(name) > MaxKeywordLen {
			MaxKeywordLen = len(name)
		}
		if len(name) < len(byLen) {
			byLen[len(name)] = append(byLen[len(name)], entry{name: name, kind: kind})
		}
	}
	token.RegisterKeywordNames(byIndexName)
}

// Lookup returns the Kind for word iff it matches a keyword
// case-insensitively, and ok=true. word must already be validated as an
// identifier-shaped byte run by the caller; Lookup does no validation of
// its own (spec §4.1).
func Lookup(word []byte) (token.Kind, bool) {
	n := len(word)
	if n == 0 || n >= len(byLen) {
		return 0, false
	}
	bucket := byLen[n]
	for _, e := range bucket {
		if equalFoldASCII(e.name, word) {
			return e.kind, true
		}
	}
	return 0, false
}

func equalFoldASCII(name string, word []byte) bool {
	if len(name) != len(word) {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := word[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c != name[i] {
			return false
		}
	}
	return true
}

// IdenSet is the set of token kinds accepted wherever the grammar calls
// for an identifier: plain IDEN plus the soft keywords SQLite still
// accepts unquoted as table/column/alias/collation/pragma names (spec
// §4.4). Verbatim from the original bord parser's IDEN_SET.
var IdenSet = map[token.Kind]bool{
	token.IDEN: true,
}

func init() {
	for _, name := range []string{
		"ABORT", "ACTION", "AFTER", "ANALYZE", "ASC", "ATTACH", "BEFORE",
		"BEGIN", "BY", "CASCADE", "CAST", "COLUMN", "CONFLICT", "DATABASE",
		"DEFERRED", "DESC", "DETACH", "DO", "EACH", "END", "EXCLUSIVE",
		"EXPLAIN", "FAIL", "FOR", "IGNORE", "IMMEDIATE", "INITIALLY",
		"INSTEAD", "LIKE", "MATCH", "NO", "PLAN", "QUERY", "KEY", "OF",
		"OFFSET", "PRAGMA", "RAISE", "RECURSIVE", "RELEASE", "REPLACE",
		"RESTRICT", "ROW", "ROWS", "ROLLBACK", "SAVEPOINT", "TEMP",
		"TRIGGER", "VACUUM", "VIEW", "VIRTUAL", "WITH", "WITHOUT", "NULLS",
		"FIRST", "LAST", "EXCEPT", "INTERSECT", "UNION", "CURRENT",
		"FOLLOWING", "PARTITION", "PRECEDING", "RANGE", "UNBOUNDED",
		"EXCLUDE", "GROUPS", "OTHERS", "TIES", "GENERATED", "ALWAYS",
		"MATERIALIZED", "REINDEX", "RENAME", "CURRENT_TIME",
		"CURRENT_DATE", "IF", "TRUE", "FALSE", "STORED", "ROWID", "STRICT",
	} {
		IdenSet[KW[name]] = true
	}
}

// JoinKeywords is the set of keywords that may prefix a JOIN operator
// (spec §4.4).
var JoinKeywords = map[token.Kind]bool{
	KW_CROSS: true, KW_FULL: true, KW_INNER: true, KW_LEFT: true,
	KW_NATURAL: true, KW_OUTER: true, KW_RIGHT: true,
}
