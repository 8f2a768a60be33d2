package parser

import (
	"github.com/bordsql/bordsql/internal/keyword"
	"github.com/bordsql/bordsql/internal/token"
	"github.com/bordsql/bordsql/internal/treekind"
)

func (p *Parser) pragmaStmt() {
	m := p.Open()
	p.Advance() // PRAGMA
	p.schemaQualified(treekind.FullPragmaName, treekind.PragmaName)
	switch {
	case p.At(token.EQ):
		p.Advance()
		p.pragmaValue()
	case p.At(token.LP):
		p.Advance()
		p.pragmaValue()
		p.Expect(token.RP)
	}
	p.Close(m, treekind.PragmaStmt)
}

func (p *Parser) pragmaValue() {
	m := p.Open()
	switch {
	case p.AtAny(token.PLUS, token.MINUS, token.INT_LIT, token.REAL_LIT, token.HEX_LIT):
		p.signedNumber()
	case p.Eat(token.STR_LIT):
	default:
		nm := p.Open()
		if !p.Eat(keyword.KW_ON) && !p.Eat(token.IDEN) {
			p.errExpectedTree(treekind.PragmaValueName)
		}
		p.Close(nm, treekind.PragmaValueName)
	}
	p.Close(m, treekind.PragmaValue)
}

func (p *Parser) analyzeStmt() {
	m := p.Open()
	p.Advance() // ANALYZE
	if p.AtIden() {
		p.namedAs(treekind.SchemaOrIdxOrTableName)
	}
	p.Close(m, treekind.AnalyzeStmt)
}

func (p *Parser) attachDbStmt() {
	m := p.Open()
	p.Advance() // ATTACH
	p.Eat(keyword.KW_DATABASE)
	fm := p.Open()
	p.expr()
	p.Close(fm, treekind.FileNameExpr)
	p.Expect(keyword.KW_AS)
	sm := p.Open()
	p.expr()
	p.Close(sm, treekind.SchemaNameExpr)
	if p.Eat(keyword.KW_KEY) {
		pm := p.Open()
		p.expr()
		p.Close(pm, treekind.PasswordExpr)
	}
	p.Close(m, treekind.AttachDbStmt)
}

func (p *Parser) detachStmt() {
	m := p.Open()
	p.Advance() // DETACH
	p.Eat(keyword.KW_DATABASE)
	dm := p.Open()
	p.expr()
	p.Close(dm, treekind.DbNameExpr)
	p.Close(m, treekind.DetachStmt)
}

func (p *Parser) beginStmt() {
	m := p.Open()
	p.Advance() // BEGIN
	if p.AtAny(keyword.KW_DEFERRED, keyword.KW_IMMEDIATE, keyword.KW_EXCLUSIVE) {
		p.Advance()
	}
	p.Eat(keyword.KW_TRANSACTION)
	p.Close(m, treekind.BeginStmt)
}

func (p *Parser) commitStmt() {
	m := p.Open()
	p.ExpectAny(keyword.KW_COMMIT, keyword.KW_END)
	p.Eat(keyword.KW_TRANSACTION)
	p.Close(m, treekind.CommitStmt)
}

func (p *Parser) rollbackStmt() {
	m := p.Open()
	p.Advance() // ROLLBACK
	p.Eat(keyword.KW_TRANSACTION)
	if p.Eat(keyword.KW_TO) {
		p.Eat(keyword.KW_SAVEPOINT)
		p.namedAs(treekind.SavepointName)
	}
	p.Close(m, treekind.RollbackStmt)
}

func (p *Parser) savepointStmt() {
	m := p.Open()
	p.Advance() // SAVEPOINT
	p.namedAs(treekind.SavepointName)
	p.Close(m, treekind.SavepointStmt)
}

func (p *Parser) releaseStmt() {
	m := p.Open()
	p.Advance() // RELEASE
	p.Eat(keyword.KW_SAVEPOINT)
	p.namedAs(treekind.SavepointName)
	p.Close(m, treekind.ReleaseStmt)
}

func (p *Parser) reIndexStmt() {
	m := p.Open()
	p.Advance() // REINDEX
	if p.AtIden() {
		p.namedAs(treekind.TableOrIdxOrCollationName)
	}
	p.Close(m, treekind.ReIndexStmt)
}

func (p *Parser) vacuumStmt() {
	m := p.Open()
	p.Advance() // VACUUM
	if p.AtIden() {
		p.namedAs(treekind.SchemaName)
	}
	if p.Eat(keyword.KW_INTO) {
		fm := p.Open()
		p.expr()
		p.Close(fm, treekind.FileNameExpr)
	}
	p.Close(m, treekind.VacuumStmt)
}
