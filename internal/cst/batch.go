package cst

import (
	"strings"

	"github.com/bordsql/bordsql/internal/event"
	"github.com/bordsql/bordsql/internal/token"
	"github.com/bordsql/bordsql/internal/treekind"
)

// BatchNode is either a tree (Kind set, Children populated) or a leaf
// token (Token set). It is rebuilt from scratch on every parse — no
// attempt is made to reuse anything across edits, which is what makes it
// the cheapest of the three representations to build and the natural
// oracle the other two are checked against (spec §3, §4.5, §9).
type BatchNode struct {
	IsToken  bool
	Kind     treekind.Kind
	Token    token.Token
	Children []*BatchNode
	errors   []Error // zero-width error markers positioned among Children
}

// BatchCst is the batch-built tree representation.
type BatchCst struct {
	Root *BatchNode
	errs []Error
}

func (c *BatchCst) Errors() []Error { return c.errs }

func (c *BatchCst) Display() string {
	var b strings.Builder
	displayNode(&b, c.Root, 0)
	return b.String()
}

func displayNode(b *strings.Builder, n *BatchNode, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if n.IsToken {
		b.WriteString(n.Token.Kind.String())
		b.WriteString(" ")
		b.WriteString(quoteText(n.Token.Text))
		b.WriteString("\n")
		return
	}
	b.WriteString(n.Kind.String())
	b.WriteString("\n")
	for _, c := range n.Children {
		displayNode(b, c, depth+1)
	}
}

func quoteText(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(s[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}

// batchSink implements sink by growing a stack of in-progress nodes,
// folding each Close into the parent that was open below it.
type batchSink struct {
	stack []*BatchNode
	errs  []Error
}

func newBatchSink() *batchSink {
	root := &BatchNode{Kind: treekind.File}
	return &batchSink{stack: []*BatchNode{root}}
}

func (s *batchSink) top() *BatchNode { return s.stack[len(s.stack)-1] }

func (s *batchSink) openNode(kind treekind.Kind) {
	n := &BatchNode{Kind: kind}
	s.top().Children = append(s.top().Children, n)
	s.stack = append(s.stack, n)
}

func (s *batchSink) closeNode() {
	if len(s.stack) > 1 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

func (s *batchSink) pushToken(tok token.Token) {
	s.top().Children = append(s.top().Children, &BatchNode{IsToken: true, Token: tok})
}

func (s *batchSink) pushError(e Error) {
	s.errs = append(s.errs, e)
}

// BuildBatch replays events+toks into a BatchCst. The very first Open in
// the stream produces the tree's actual root (treekind.File in practice);
// the synthetic placeholder root created by newBatchSink is discarded when
// its only child is that real root.
func BuildBatch(events []event.Event, toks []token.Token) *BatchCst {
	s := newBatchSink()
	errs := replay(events, toks, s)
	root := s.stack[0]
	if len(root.Children) == 1 && !root.Children[0].IsToken {
		root = root.Children[0]
	}
	return &BatchCst{Root: root, errs: errs}
}
