package cst

import (
	"github.com/bordsql/bordsql/internal/event"
	"github.com/bordsql/bordsql/internal/token"
	"github.com/bordsql/bordsql/internal/treekind"
)

// slotKey identifies one grammar role a node's children are indexed
// under: either "the child of tree kind K" or "the child token of kind
// K". A production with two children of the same kind (e.g. Expr AND
// Expr in OpBetweenAnd) still resolves via TreeByKind returning the
// first match and TreeByKindAll returning every match in order — slots
// give O(1) access to "the nth occurrence", not just "the only one".
type slotKey struct {
	isToken bool
	kind    uint16
}

// SlotCst is an IncrementalCst plus a side table, built once per node at
// construction time, mapping each grammar role present among a node's
// children to the list of matching child ids in order. This is what
// turns "scan children for a ColumnDef" into a map lookup instead of a
// linear walk — the typed view (internal/syntax) is built on top of
// exactly this (spec §3, §4.6).
type SlotCst struct {
	*IncrementalCst
	slots []map[slotKey][]NodeID // indexed by NodeID, lazily-ish built eagerly at construction
}

// BuildSlot replays events+toks into an IncrementalCst and then computes
// the per-node slot table in one additional pass over the finished arena.
func BuildSlot(events []event.Event, toks []token.Token) *SlotCst {
	inc := BuildIncremental(events, toks)
	slots := make([]map[slotKey][]NodeID, len(inc.arena))
	for id := range inc.arena {
		n := &inc.arena[id]
		if n.isToken || len(n.children) == 0 {
			continue
		}
		m := make(map[slotKey][]NodeID, len(n.children))
		for _, ch := range n.children {
			var k slotKey
			chn := &inc.arena[ch]
			if chn.isToken {
				k = slotKey{isToken: true, kind: uint16(chn.tok.Kind)}
			} else {
				k = slotKey{kind: uint16(chn.kind)}
			}
			m[k] = append(m[k], ch)
		}
		slots[id] = m
	}
	return &SlotCst{IncrementalCst: inc, slots: slots}
}

// ChildByKind returns the first child of id with tree kind k, O(1).
func (c *SlotCst) ChildByKind(id NodeID, k treekind.Kind) (NodeID, bool) {
	m := c.slots[id]
	if m == nil {
		return 0, false
	}
	ids, ok := m[slotKey{kind: uint16(k)}]
	if !ok {
		return 0, false
	}
	return ids[0], true
}

// ChildrenByKind returns every child of id with tree kind k, in order.
func (c *SlotCst) ChildrenByKind(id NodeID, k treekind.Kind) []NodeID {
	return c.slots[id][slotKey{kind: uint16(k)}]
}

// TokenByKind returns the first child token of id with token kind k.
func (c *SlotCst) TokenByKind(id NodeID, k token.Kind) (token.Token, bool) {
	m := c.slots[id]
	if m == nil {
		return token.Token{}, false
	}
	ids, ok := m[slotKey{isToken: true, kind: uint16(k)}]
	if !ok {
		return token.Token{}, false
	}
	return c.arena[ids[0]].tok, true
}
