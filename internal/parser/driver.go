// Package parser implements the error-resilient recursive-descent driver
// and the SQLite grammar built on top of it. The driver itself follows
// matklad's resilient LL parsing design (see the package doc in
// event.Event): Open/Close bracket a subtree, Advance consumes one
// token, and a position can be revisited after the fact via open_before
// to wrap already-emitted events in a new enclosing node — the trick
// that lets `a + b * c` parse left-to-right yet still come out with `*`
// binding tighter once precedence is known (spec §4.4, §5, §7).
package parser

import (
	"github.com/bordsql/bordsql/internal/event"
	"github.com/bordsql/bordsql/internal/keyword"
	"github.com/bordsql/bordsql/internal/lexer"
	"github.com/bordsql/bordsql/internal/token"
	"github.com/bordsql/bordsql/internal/treekind"
	"github.com/bordsql/bordsql/internal/version"
)

// startFuel bounds how many times nthReal() may be called without the
// cursor moving before the driver concludes a grammar rule looped
// forever and panics. Reset to startFuel on every successful advance.
const startFuel = 256

// MarkOpened is a handle to an Open event not yet paired with a Close,
// returned by Open and consumed by Close.
type MarkOpened struct{ index int }

// MarkClosed is a handle to a completed subtree, returned by Close and
// consumed by OpenBefore to retroactively wrap it in a new parent.
type MarkClosed struct{ index int }

// Parser drives the token stream into an event.Event stream. It never
// returns an error: ungrammatical input still produces a complete event
// stream, with event.Error markers standing in for what went wrong
// (spec §4.2, §7).
type Parser struct {
	toks   []token.Token // full token stream, trivia included, EOF last
	pos    int           // index into toks
	events []event.Event
	fuel   int
}

// New lexes input completely up front (SQL source is small enough that
// this is simpler than interleaving lexing with parsing, and it lets the
// driver look ahead across trivia without re-invoking the lexer) and
// returns a Parser ready to drive the grammar entry point.
func New(input string, v version.Version) *Parser {
	l := lexer.New(input, v)
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return &Parser{toks: toks, fuel: startFuel}
}

// Events returns the finished event stream. Call only after the grammar
// entry point (ParseFile) has returned.
func (p *Parser) Events() []event.Event { return p.events }

// Tokens returns the full token stream backing the event stream, trivia
// included, in the exact order consumed. Every Advance event in Events
// corresponds, in order, to the next token in this slice: a CST builder
// replays the two in lockstep to recover each leaf's text and offset
// (spec §5, §7).
func (p *Parser) Tokens() []token.Token { return p.toks }

// Open begins a new subtree at the current position and returns a
// handle to fix up its kind once known, via Close.
func (p *Parser) Open() MarkOpened {
	m := MarkOpened{index: len(p.events)}
	p.events = append(p.events, event.Event{Kind: event.Open})
	return m
}

// Close finishes the subtree opened at m as a node of kind k.
func (p *Parser) Close(m MarkOpened, k treekind.Kind) MarkClosed {
	p.events[m.index] = event.OpenEvent(k)
	p.events = append(p.events, event.CloseEvent())
	return MarkClosed{index: m.index}
}

// OpenBefore retroactively opens a new subtree that starts where m
// started, so everything m already covers ends up nested one level
// deeper once the new mark is Closed. This is how Pratt parsing builds
// left-associated infix trees without lookahead into the future: parse
// the left operand first, then wrap it once an operator is seen.
func (p *Parser) OpenBefore(m MarkClosed) MarkOpened {
	mo := MarkOpened{index: m.index}
	p.events = append(p.events, event.Event{})
	copy(p.events[m.index+1:], p.events[m.index:])
	p.events[m.index] = event.Event{Kind: event.Open}
	return mo
}

// Eof reports whether the driver has consumed every non-trivia token.
func (p *Parser) Eof() bool {
	return p.nthReal(0) == token.EOF
}

// nthReal returns the kind of the la-th non-trivia token from the
// current position, or token.EOF past the end of input.
func (p *Parser) nthReal(la int) token.Kind {
	if p.fuel == 0 {
		panic("parser: fuel exhausted, grammar rule made no progress")
	}
	p.fuel--

	i := p.pos
	seen := 0
	for i < len(p.toks) {
		if !p.toks[i].IsTrivia() {
			if seen == la {
				return p.toks[i].Kind
			}
			seen++
		}
		i++
	}
	return token.EOF
}

// At reports whether the next significant token is k.
func (p *Parser) At(k token.Kind) bool { return p.nthReal(0) == k }

// AtAny reports whether the next significant token is any of ks.
func (p *Parser) AtAny(ks ...token.Kind) bool {
	cur := p.nthReal(0)
	for _, k := range ks {
		if cur == k {
			return true
		}
	}
	return false
}

// AtIden reports whether the next significant token may stand in for a
// plain identifier: IDEN itself, a quoted identifier, or one of the soft
// keywords in keyword.IdenSet (spec §4.4).
func (p *Parser) AtIden() bool {
	cur := p.nthReal(0)
	return cur == token.QUOTED_IDEN || keyword.IdenSet[cur]
}

// NthReal exposes lookahead for grammar code that needs to branch on
// more than just the immediate next token (e.g. distinguishing `LP
// SELECT` subqueries from `LP expr-list RP`).
func (p *Parser) NthReal(la int) token.Kind { return p.nthReal(la) }

// Advance flushes any pending trivia tokens (emitting an Advance event
// for each, so they land in the CST attached ahead of whatever
// significant token follows) and then consumes exactly one significant
// token.
func (p *Parser) Advance() {
	if p.Eof() {
		panic("parser: Advance called at EOF")
	}
	for p.pos < len(p.toks) && p.toks[p.pos].IsTrivia() {
		p.advanceOne()
	}
	p.advanceOne()
	p.fuel = startFuel
}

// FlushTrivia consumes any trailing trivia with no significant token
// after it (end-of-input whitespace/comments). Call once, after the
// grammar entry point's last Close, so trailing trivia is not silently
// dropped from the lossless stream.
func (p *Parser) FlushTrivia() {
	for p.pos < len(p.toks) && p.toks[p.pos].IsTrivia() {
		p.advanceOne()
	}
}

// advanceOne consumes exactly one token from p.toks, surfacing a
// LexerError event first if the lexer flagged it as not closed cleanly
// (unterminated string, blob, quoted identifier or block comment, or an
// unrecognized byte run). The
// lexer itself never fails (spec §4.2); this is where that ErrFlag
// finally becomes a reportable ParseErrorKind (spec §7 LexerError).
func (p *Parser) advanceOne() {
	tok := p.toks[p.pos]
	if tok.ErrFlag {
		if lk, ok := lexErrorKindFor(tok.Kind); ok {
			p.events = append(p.events, event.ErrorEvent(event.LexerError(lk)))
		}
	}
	p.events = append(p.events, event.AdvanceEvent())
	p.pos++
}

// lexErrorKindFor maps a flagged token's kind to the LexErrorKind that
// explains it (spec §4.2, §7).
func lexErrorKindFor(k token.Kind) (event.LexErrorKind, bool) {
	switch k {
	case token.BLOCK_COMMENT:
		return event.LexUnterminatedBlockComment, true
	case token.STR_LIT, token.BLOB_LIT, token.QUOTED_IDEN:
		return event.LexUnterminatedString, true
	case token.ERROR:
		return event.LexUnknownByte, true
	default:
		return 0, false
	}
}

// Eat advances past the next token iff it is k, reporting whether it did.
func (p *Parser) Eat(k token.Kind) bool {
	if p.At(k) {
		p.Advance()
		return true
	}
	return false
}

// Expect behaves like Eat, but records a diagnostic event if the token
// is missing, without consuming anything in that case — the grammar
// rule simply continues as if the token had been there, which is what
// makes the driver error-resilient instead of error-fatal (spec §4.2).
func (p *Parser) Expect(k token.Kind) bool {
	if p.Eat(k) {
		return true
	}
	p.events = append(p.events, event.ErrorEvent(event.ExpectedItems([]event.ExpectedItem{event.ExpectedToken(k)})))
	return false
}

// ExpectAny is Expect generalized to an alternative of acceptable tokens.
func (p *Parser) ExpectAny(ks ...token.Kind) bool {
	for _, k := range ks {
		if p.At(k) {
			p.Advance()
			return true
		}
	}
	items := make([]event.ExpectedItem, len(ks))
	for i, k := range ks {
		items[i] = event.ExpectedToken(k)
	}
	p.events = append(p.events, event.ErrorEvent(event.ExpectedItems(items)))
	return false
}

// AdvanceWithError records e at the current position and then consumes
// exactly one token, guaranteeing forward progress even when a grammar
// rule has no idea what to do with what it is looking at (spec §4.2,
// §7). This is the driver's last resort, used by statement/item dispatch
// when nothing else matched.
func (p *Parser) AdvanceWithError(e event.ParseErrorKind) {
	p.events = append(p.events, event.ErrorEvent(e))
	if !p.Eof() {
		p.Advance()
	}
}

// UnexpectedTokenHere reports the kind of the token AdvanceWithError
// would consume next, for building an UnexpectedToken error describing
// exactly what was found.
func (p *Parser) UnexpectedTokenHere() token.Kind {
	if p.Eof() {
		return token.EOF
	}
	return p.nthReal(0)
}
