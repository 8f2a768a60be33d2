// Package cst folds a parser event stream into one of three interchangeable
// tree representations (batch, incremental, slot-indexed). All three are
// built by replaying the exact same events+tokens, so they always agree on
// event order, token order, and the set of attached errors (spec §4.5, §5,
// §8 property 2).
package cst

import (
	"github.com/bordsql/bordsql/internal/event"
	"github.com/bordsql/bordsql/internal/token"
	"github.com/bordsql/bordsql/internal/treekind"
)

// Error is a parse diagnostic anchored to a byte offset into the source,
// independent of which representation produced it. The core never
// resolves this to a line/column; that is the caller's job (spec §6, §7).
type Error struct {
	Pos  uint32
	Kind event.ParseErrorKind
}

// Cst is the common surface every representation satisfies, and the bound
// used by Parse's type parameter (spec §4.3 "Generic... parse entrypoint").
type Cst interface {
	// Errors returns every attached diagnostic in source order.
	Errors() []Error
	// Display renders the tree as indented text; identical across all
	// three representations for the same input (spec §8 property 2).
	Display() string
}

// sink receives the push/pop/leaf/error callbacks produced by replaying an
// event stream. Each representation implements sink to build its own node
// shape from the identical stream (spec §4.5).
type sink interface {
	openNode(kind treekind.Kind)
	closeNode()
	pushToken(tok token.Token)
	pushError(e Error)
}

// replay walks events against toks in lockstep: the i-th Advance event
// always corresponds to toks[i] in source order (see parser.Parser.Tokens),
// so a plain cursor is enough to recover each leaf's text and offset, and
// to position each Error at the token it was reported in front of.
func replay(events []event.Event, toks []token.Token, s sink) []Error {
	var errs []Error
	ti := 0
	for _, e := range events {
		switch e.Kind {
		case event.Open:
			s.openNode(e.Tree)
		case event.Close:
			s.closeNode()
		case event.Advance:
			s.pushToken(toks[ti])
			ti++
		case event.Error:
			// ti never reaches past the trailing EOF token (Advance
			// panics at EOF, so nothing ever consumes it), so this is
			// always in range and always the token the error sits in
			// front of.
			err := Error{Pos: toks[ti].AbsOffset, Kind: e.Err}
			errs = append(errs, err)
			s.pushError(err)
		}
	}
	return errs
}
