package cst

import (
	"github.com/bordsql/bordsql/internal/event"
	"github.com/bordsql/bordsql/internal/parser"
	"github.com/bordsql/bordsql/internal/token"
	"github.com/bordsql/bordsql/internal/version"
)

// builder is implemented by each representation's package-level
// constructor function so Parse can dispatch on the type parameter alone
// (spec SPEC_FULL item 4, "generic, representation-agnostic parse
// entrypoint").
type builder[T Cst] func(events []event.Event, toks []token.Token) T

// Parse lexes and parses input under dialect v and folds the resulting
// event stream into whichever Cst representation T names — the caller
// picks the representation through the return type, e.g.
// cst.Parse[*cst.BatchCst](input, version.Current). All three
// instantiations consume the identical event+token stream (spec §4.3,
// §6, §8 property 2).
func Parse[T Cst](input string, v version.Version) T {
	events, toks := parser.Run(input, v)
	var zero T
	switch any(zero).(type) {
	case *BatchCst:
		return any(BuildBatch(events, toks)).(T)
	case *IncrementalCst:
		return any(BuildIncremental(events, toks)).(T)
	case *SlotCst:
		return any(BuildSlot(events, toks)).(T)
	default:
		panic("cst: Parse instantiated with an unknown Cst representation")
	}
}

// ParseEventsAndTokens exposes the raw event/token stream a parse
// produces, for differential testing across the three builders (spec §6
// parse_events_and_tokens).
func ParseEventsAndTokens(input string, v version.Version) ([]event.Event, []token.Token) {
	return parser.Run(input, v)
}
