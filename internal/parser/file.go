package parser

import (
	"github.com/bordsql/bordsql/internal/event"
	"github.com/bordsql/bordsql/internal/keyword"
	"github.com/bordsql/bordsql/internal/token"
	"github.com/bordsql/bordsql/internal/treekind"
	"github.com/bordsql/bordsql/internal/version"
)

// Run is the grammar entry point: it lexes and parses input fully, in the
// manner prescribed for v, and returns the complete event stream together
// with the token stream it was built from (spec §3, §4, §6's
// parse_events_and_tokens). It never fails outright — a syntactically
// broken input still yields a full stream, with event.Error markers
// standing in for whatever did not parse. Callers that want a ready-made
// tree instead of raw events should use cst.Parse.
func Run(input string, v version.Version) ([]event.Event, []token.Token) {
	p := New(input, v)
	p.file()
	return p.Events(), p.Tokens()
}

func (p *Parser) file() {
	m := p.Open()
	for !p.Eof() {
		// A bare extra `;` between two statements is not itself a
		// statement; skip it rather than opening an empty Statement node.
		if p.Eat(token.SEMICOLON) {
			continue
		}
		p.statement()
	}
	p.FlushTrivia()
	p.Close(m, treekind.File)
}

func (p *Parser) statement() {
	m := p.Open()
	if p.At(keyword.KW_EXPLAIN) {
		p.explainClause()
	}
	switch {
	case p.At(keyword.KW_WITH) || p.atStatementWithCteCoreStart():
		p.statementWithCte()
	case p.atStatementNoCteStart():
		p.statementNoCte()
	default:
		p.AdvanceWithError(event.UnexpectedToken(p.UnexpectedTokenHere()))
	}
	if !p.Eat(token.SEMICOLON) {
		// A missing `;` is only reported when another statement actually
		// follows; a final statement with no trailing semicolon at EOF is
		// not an error (spec §9(a)).
		if !p.Eof() && p.atAnyStatementStart() {
			p.events = append(p.events, event.ErrorEvent(event.MissingSemicolon()))
		}
	}
	p.Close(m, treekind.Statement)
}

func (p *Parser) explainClause() {
	m := p.Open()
	p.Advance() // EXPLAIN
	if p.Eat(keyword.KW_QUERY) {
		p.Expect(keyword.KW_PLAN)
	}
	p.Close(m, treekind.ExplainClause)
}

func (p *Parser) atAnyStatementStart() bool {
	return p.At(keyword.KW_EXPLAIN) || p.At(keyword.KW_WITH) ||
		p.atStatementWithCteCoreStart() || p.atStatementNoCteStart()
}

func (p *Parser) atStatementWithCteCoreStart() bool {
	return p.atSelectCoreStart() || p.AtAny(keyword.KW_INSERT, keyword.KW_UPDATE, keyword.KW_DELETE)
}

func (p *Parser) atSelectCoreStart() bool {
	return p.AtAny(keyword.KW_SELECT, keyword.KW_VALUES)
}

func (p *Parser) statementWithCte() {
	m := p.Open()
	if p.At(keyword.KW_WITH) {
		p.cteClause()
	}
	switch {
	case p.atSelectCoreStart():
		p.selectStmt()
	case p.At(keyword.KW_INSERT):
		p.insertStmt()
	case p.At(keyword.KW_UPDATE):
		p.updateStmt()
	case p.At(keyword.KW_DELETE):
		p.deleteStmt()
	default:
		p.errExpectedTree(treekind.StatementWithCte)
	}
	p.Close(m, treekind.StatementWithCte)
}

func (p *Parser) atStatementNoCteStart() bool {
	return p.AtAny(keyword.KW_CREATE, keyword.KW_ALTER, keyword.KW_ANALYZE, keyword.KW_ATTACH,
		keyword.KW_BEGIN, keyword.KW_COMMIT, keyword.KW_END, keyword.KW_DETACH, keyword.KW_DROP,
		keyword.KW_PRAGMA, keyword.KW_REINDEX, keyword.KW_RELEASE, keyword.KW_ROLLBACK,
		keyword.KW_SAVEPOINT, keyword.KW_VACUUM)
}

// statementNoCte dispatches directly to one of the StatementNoCte
// alternatives; each of those opens and closes its own tree right under
// Statement; there is no StatementNoCte wrapper node of its own.
func (p *Parser) statementNoCte() {
	switch {
	case p.At(keyword.KW_CREATE):
		p.createDispatch()
	case p.At(keyword.KW_ALTER):
		p.alterTableStmt()
	case p.At(keyword.KW_ANALYZE):
		p.analyzeStmt()
	case p.At(keyword.KW_ATTACH):
		p.attachDbStmt()
	case p.At(keyword.KW_BEGIN):
		p.beginStmt()
	case p.At(keyword.KW_COMMIT), p.At(keyword.KW_END):
		p.commitStmt()
	case p.At(keyword.KW_DETACH):
		p.detachStmt()
	case p.At(keyword.KW_DROP):
		p.dropDispatch()
	case p.At(keyword.KW_PRAGMA):
		p.pragmaStmt()
	case p.At(keyword.KW_REINDEX):
		p.reIndexStmt()
	case p.At(keyword.KW_RELEASE):
		p.releaseStmt()
	case p.At(keyword.KW_ROLLBACK):
		p.rollbackStmt()
	case p.At(keyword.KW_SAVEPOINT):
		p.savepointStmt()
	case p.At(keyword.KW_VACUUM):
		p.vacuumStmt()
	}
}

func (p *Parser) createDispatch() {
	if p.NthReal(1) == keyword.KW_VIRTUAL {
		p.createVirtualTableStmt()
		return
	}
	if p.NthReal(1) == keyword.KW_UNIQUE || p.NthReal(1) == keyword.KW_INDEX {
		p.createIndexStmt()
		return
	}
	la := 1
	if p.NthReal(1) == keyword.KW_TEMP || p.NthReal(1) == keyword.KW_TEMPORARY {
		la = 2
	}
	switch p.NthReal(la) {
	case keyword.KW_TABLE:
		p.createTableStmt()
	case keyword.KW_VIEW:
		p.createViewStmt()
	case keyword.KW_TRIGGER:
		p.createTriggerStmt()
	default:
		p.errExpectedTree(treekind.StatementNoCte)
	}
}

func (p *Parser) dropDispatch() {
	switch p.NthReal(1) {
	case keyword.KW_TABLE:
		p.dropTableStmt()
	case keyword.KW_INDEX:
		p.dropIndexStmt()
	case keyword.KW_VIEW:
		p.dropViewStmt()
	case keyword.KW_TRIGGER:
		p.dropTriggerStmt()
	default:
		p.errExpectedTree(treekind.StatementNoCte)
	}
}
