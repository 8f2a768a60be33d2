// Package version carries the single dialect knob the core needs: which
// SQLite release's grammar/lexer quirks to honor.
package version

// Version is a SQLite release, gating dialect-specific lexer behavior.
// Grounded in _examples/original_source/sqlite3-parser/src/version.rs,
// which gates exactly one thing: underscores in numeric literals.
type Version [3]uint16

// Current is the SQLite release this parser targets by default.
var Current = Version{3, 46, 0}

// UnderscoreInNumerics reports whether v supports `_` digit separators in
// numeric literals (added in SQLite 3.46.0; spec §4.2).
func (v Version) UnderscoreInNumerics() bool {
	return !v.less(Version{3, 46, 0})
}

func (v Version) less(other Version) bool {
	for i := range v {
		if v[i] != other[i] {
			return v[i] < other[i]
		}
	}
	return false
}
