// Package syntax gives each CST representation in internal/cst a common
// read-only interface (Node) and builds typed accessor wrappers on top of
// it, so the same typed node type works whether it is backed by a
// BatchCst, an IncrementalCst, or a SlotCst (spec §4.6, SPEC_FULL item 5
// "typed view generic over the CST representation"). Typed nodes never
// own data: they are cheap views over whatever Node a caller already has.
package syntax

import (
	"github.com/bordsql/bordsql/internal/cst"
	"github.com/bordsql/bordsql/internal/token"
	"github.com/bordsql/bordsql/internal/treekind"
)

// Node is the representation-agnostic view every cst builder's handle
// type satisfies via an adapter in this package. Typed wrappers are
// built against this interface, never against a concrete representation
// (spec SPEC_FULL item 5).
type Node interface {
	// IsToken reports whether this node is a leaf token rather than a
	// tree; Kind is meaningless when true, Token meaningless when false.
	IsToken() bool
	Kind() treekind.Kind
	Token() token.Token
	Children() []Node
	Span() (start, end uint32)
}

// ChildByKind returns the first child of n with tree kind k.
func ChildByKind(n Node, k treekind.Kind) (Node, bool) {
	if fast, ok := n.(fastChildByKind); ok {
		return fast.childByKind(k)
	}
	for _, c := range n.Children() {
		if !c.IsToken() && c.Kind() == k {
			return c, true
		}
	}
	return nil, false
}

// ChildrenByKind returns every child of n with tree kind k, in order.
func ChildrenByKind(n Node, k treekind.Kind) []Node {
	if fast, ok := n.(fastChildrenByKind); ok {
		return fast.childrenByKind(k)
	}
	var out []Node
	for _, c := range n.Children() {
		if !c.IsToken() && c.Kind() == k {
			out = append(out, c)
		}
	}
	return out
}

// TokenByKind returns the first child token of n with token kind k.
func TokenByKind(n Node, k token.Kind) (token.Token, bool) {
	if fast, ok := n.(fastTokenByKind); ok {
		return fast.tokenByKind(k)
	}
	for _, c := range n.Children() {
		if c.IsToken() && c.Token().Kind == k {
			return c.Token(), true
		}
	}
	return token.Token{}, false
}

// HasToken reports whether n has a direct child token of kind k — the
// shape a token-presence check in the typed view reduces to.
// CreateTableStmt.IfNotExists checks for an IfNotExists child node instead.
func HasToken(n Node, k token.Kind) bool {
	_, ok := TokenByKind(n, k)
	return ok
}

// fastChildByKind, fastChildrenByKind, and fastTokenByKind let a Node
// adapter backed by cst.SlotCst serve these queries from its O(1) slot
// table instead of the linear Children() scan the interface otherwise
// implies (spec §3 "slot tree... enabling O(1) child lookup by grammar
// role").
type fastChildByKind interface{ childByKind(treekind.Kind) (Node, bool) }
type fastChildrenByKind interface{ childrenByKind(treekind.Kind) []Node }
type fastTokenByKind interface{ tokenByKind(token.Kind) (token.Token, bool) }

// Cast returns n viewed as T if n's underlying kind matches T's expected
// kind, or false otherwise — the checked-view semantics spec §4.6
// requires ("Casting N -> Typed<N> ... returns None if the underlying
// kind does not match").
func Cast[T typed](n Node) (T, bool) {
	var zero T
	if n == nil || n.IsToken() || n.Kind() != zero.treeKind() {
		return zero, false
	}
	return zero.wrap(n), true
}

// typed is implemented by every hand-written wrapper type in this package.
type typed interface {
	treeKind() treekind.Kind
	wrap(Node) typed
}

// --- Node adapters over each cst representation ---

type batchNode struct{ n *cst.BatchNode }

// FromBatch wraps a BatchCst's root as a Node.
func FromBatch(c *cst.BatchCst) Node { return batchNode{c.Root} }

func (b batchNode) IsToken() bool { return b.n.IsToken }
func (b batchNode) Kind() treekind.Kind { return b.n.Kind }
func (b batchNode) Token() token.Token { return b.n.Token }
func (b batchNode) Children() []Node {
	out := make([]Node, len(b.n.Children))
	for i, c := range b.n.Children {
		out[i] = batchNode{c}
	}
	return out
}
func (b batchNode) Span() (uint32, uint32) {
	if b.n.IsToken {
		return b.n.Token.AbsOffset, b.n.Token.End()
	}
	if len(b.n.Children) == 0 {
		return 0, 0
	}
	s, _ := batchNode{b.n.Children[0]}.Span()
	_, e := batchNode{b.n.Children[len(b.n.Children)-1]}.Span()
	return s, e
}

type incNode struct {
	c  *cst.IncrementalCst
	id cst.NodeID
}

// FromIncremental wraps an IncrementalCst's root as a Node.
func FromIncremental(c *cst.IncrementalCst) Node { return incNode{c, c.Root()} }

func (n incNode) IsToken() bool {
	_, isTree := n.c.Kind(n.id)
	return !isTree
}
func (n incNode) Kind() treekind.Kind {
	k, _ := n.c.Kind(n.id)
	return k
}
func (n incNode) Token() token.Token {
	tok, _ := n.c.Token(n.id)
	return tok
}
func (n incNode) Children() []Node {
	ids := n.c.Children(n.id)
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = incNode{n.c, id}
	}
	return out
}
func (n incNode) Span() (uint32, uint32) { return n.c.Span(n.id) }

type slotNode struct {
	c  *cst.SlotCst
	id cst.NodeID
}

// FromSlot wraps a SlotCst's root as a Node, backed by its O(1) slot
// table for ChildByKind/ChildrenByKind/TokenByKind.
func FromSlot(c *cst.SlotCst) Node { return slotNode{c, c.Root()} }

func (n slotNode) IsToken() bool {
	_, isTree := n.c.Kind(n.id)
	return !isTree
}
func (n slotNode) Kind() treekind.Kind {
	k, _ := n.c.Kind(n.id)
	return k
}
func (n slotNode) Token() token.Token {
	tok, _ := n.c.Token(n.id)
	return tok
}
func (n slotNode) Children() []Node {
	ids := n.c.Children(n.id)
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = slotNode{n.c, id}
	}
	return out
}
func (n slotNode) Span() (uint32, uint32) { return n.c.Span(n.id) }

func (n slotNode) childByKind(k treekind.Kind) (Node, bool) {
	id, ok := n.c.ChildByKind(n.id, k)
	if !ok {
		return nil, false
	}
	return slotNode{n.c, id}, true
}

func (n slotNode) childrenByKind(k treekind.Kind) []Node {
	ids := n.c.ChildrenByKind(n.id, k)
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = slotNode{n.c, id}
	}
	return out
}

func (n slotNode) tokenByKind(k token.Kind) (token.Token, bool) {
	return n.c.TokenByKind(n.id, k)
}
