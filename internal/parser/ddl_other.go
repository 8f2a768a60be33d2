package parser

import (
	"github.com/bordsql/bordsql/internal/keyword"
	"github.com/bordsql/bordsql/internal/token"
	"github.com/bordsql/bordsql/internal/treekind"
)

func (p *Parser) createIndexStmt() {
	m := p.Open()
	p.Advance() // CREATE
	p.Eat(keyword.KW_UNIQUE)
	p.Expect(keyword.KW_INDEX)
	p.ifNotExistsOpt()
	p.schemaQualified(treekind.FullIndexName, treekind.IndexName)
	p.Expect(keyword.KW_ON)
	p.namedAs(treekind.TableName)
	p.Expect(token.LP)
	p.indexedColList()
	p.Expect(token.RP)
	if p.At(keyword.KW_WHERE) {
		p.whereClause()
	}
	p.Close(m, treekind.CreateIndexStmt)
}

func (p *Parser) dropIndexStmt() {
	m := p.Open()
	p.Advance() // DROP
	p.Expect(keyword.KW_INDEX)
	p.ifExistsOpt()
	p.schemaQualified(treekind.FullIndexName, treekind.IndexName)
	p.Close(m, treekind.DropIndexStmt)
}

func (p *Parser) createViewStmt() {
	m := p.Open()
	p.Advance() // CREATE
	if p.AtAny(keyword.KW_TEMP, keyword.KW_TEMPORARY) {
		p.Advance()
	}
	p.Expect(keyword.KW_VIEW)
	p.ifNotExistsOpt()
	p.schemaQualified(treekind.FullViewName, treekind.ViewName)
	if p.At(token.LP) {
		p.colNameList()
	}
	p.Expect(keyword.KW_AS)
	p.selectStmtWithCte()
	p.Close(m, treekind.CreateViewStmt)
}

func (p *Parser) dropViewStmt() {
	m := p.Open()
	p.Advance() // DROP
	p.Expect(keyword.KW_VIEW)
	p.ifExistsOpt()
	p.schemaQualified(treekind.FullViewName, treekind.ViewName)
	p.Close(m, treekind.DropViewStmt)
}

func (p *Parser) createTriggerStmt() {
	m := p.Open()
	p.Advance() // CREATE
	if p.AtAny(keyword.KW_TEMP, keyword.KW_TEMPORARY) {
		p.Advance()
	}
	p.Expect(keyword.KW_TRIGGER)
	p.ifNotExistsOpt()
	p.schemaQualified(treekind.FullTriggerName, treekind.TriggerName)
	if p.atTriggerInsteadOfStart() {
		p.triggerInsteadOf()
	}
	p.triggerActionKind()
	p.Expect(keyword.KW_ON)
	p.schemaQualified(treekind.FullTableName, treekind.TableName)
	if p.At(keyword.KW_FOR) {
		fm := p.Open()
		p.Advance()
		p.Expect(keyword.KW_EACH)
		p.Expect(keyword.KW_ROW)
		p.Close(fm, treekind.TriggerForEachRow)
	}
	if p.At(keyword.KW_WHEN) {
		wm := p.Open()
		p.Advance()
		p.expr()
		p.Close(wm, treekind.TriggerWhenExpr)
	}
	p.Expect(keyword.KW_BEGIN)
	p.triggerBodyStmtList()
	p.Expect(keyword.KW_END)
	p.Close(m, treekind.CreateTriggerStmt)
}

func (p *Parser) atTriggerInsteadOfStart() bool {
	return p.AtAny(keyword.KW_BEFORE, keyword.KW_AFTER, keyword.KW_INSTEAD)
}

func (p *Parser) triggerInsteadOf() {
	m := p.Open()
	switch {
	case p.Eat(keyword.KW_BEFORE):
	case p.Eat(keyword.KW_AFTER):
	default:
		p.Expect(keyword.KW_INSTEAD)
		p.Expect(keyword.KW_OF)
	}
	p.Close(m, treekind.TriggerInsteadOf)
}

func (p *Parser) triggerActionKind() {
	m := p.Open()
	switch {
	case p.Eat(keyword.KW_DELETE):
	case p.Eat(keyword.KW_INSERT):
	default:
		p.triggerUpdateAction()
	}
	p.Close(m, treekind.TriggerActionKind)
}

func (p *Parser) triggerUpdateAction() {
	m := p.Open()
	p.Expect(keyword.KW_UPDATE)
	if p.At(keyword.KW_OF) {
		am := p.Open()
		p.Advance()
		p.colNameListNoParens()
		p.Close(am, treekind.TriggerUpdateAffectCols)
	}
	p.Close(m, treekind.TriggerUpdateAction)
}

// colNameListNoParens parses a bare ColumnName (',' ColumnName)* list, as
// used after `OF` in a trigger's UPDATE OF clause (no enclosing parens,
// unlike ColNameList).
func (p *Parser) colNameListNoParens() {
	p.namedAs(treekind.ColumnName)
	for p.Eat(token.COMMA) {
		p.namedAs(treekind.ColumnName)
	}
}

func (p *Parser) triggerBodyStmtList() {
	m := p.Open()
	for p.atTriggerBodyStmtStart() {
		p.triggerBodyStmt()
	}
	p.Close(m, treekind.TriggerBodyStmtList)
}

func (p *Parser) atTriggerBodyStmtStart() bool {
	return p.AtAny(keyword.KW_UPDATE, keyword.KW_INSERT, keyword.KW_DELETE,
		keyword.KW_SELECT, keyword.KW_WITH)
}

func (p *Parser) triggerBodyStmt() {
	m := p.Open()
	switch {
	case p.At(keyword.KW_UPDATE):
		p.updateStmt()
	case p.At(keyword.KW_INSERT):
		p.insertStmt()
	case p.At(keyword.KW_DELETE):
		p.deleteStmt()
	default:
		p.selectStmt()
	}
	p.Expect(token.SEMICOLON)
	p.Close(m, treekind.TriggerBodyStmt)
}

func (p *Parser) dropTriggerStmt() {
	m := p.Open()
	p.Advance() // DROP
	p.Expect(keyword.KW_TRIGGER)
	p.ifExistsOpt()
	p.schemaQualified(treekind.FullTriggerName, treekind.TriggerName)
	p.Close(m, treekind.DropTriggerStmt)
}

func (p *Parser) createVirtualTableStmt() {
	m := p.Open()
	p.Advance() // CREATE
	p.Expect(keyword.KW_VIRTUAL)
	p.Expect(keyword.KW_TABLE)
	p.ifNotExistsOpt()
	p.schemaQualified(treekind.FullTableName, treekind.TableName)
	p.Expect(keyword.KW_USING)
	p.namedAs(treekind.ModuleName)
	if p.At(token.LP) {
		p.Advance()
		lm := p.Open()
		p.moduleArgList()
		p.Close(lm, treekind.ModuleArgList)
		p.Expect(token.RP)
	}
	p.Close(m, treekind.CreateVirtualTableStmt)
}

func (p *Parser) moduleArgList() {
	p.moduleArg()
	for p.Eat(token.COMMA) {
		p.moduleArg()
	}
}

func (p *Parser) moduleArg() {
	m := p.Open()
	if p.atTableConstraintStart() {
		p.tableConstraint()
	} else {
		p.columnDef()
	}
	p.Close(m, treekind.ModuleArg)
}
