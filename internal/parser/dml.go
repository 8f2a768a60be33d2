package parser

import (
	"github.com/bordsql/bordsql/internal/keyword"
	"github.com/bordsql/bordsql/internal/token"
	"github.com/bordsql/bordsql/internal/treekind"
)

func (p *Parser) insertStmt() {
	m := p.Open()
	p.insertOrAction()
	p.Expect(keyword.KW_INTO)
	p.schemaQualified(treekind.FullTableName, treekind.TableName)
	p.aliasNameOpt()
	if p.At(token.LP) {
		p.colNameList()
	}
	p.insertStmtKind()
	if p.At(keyword.KW_ON) {
		p.upsertClause()
	}
	if p.At(keyword.KW_RETURNING) {
		p.returningClause()
	}
	p.Close(m, treekind.InsertStmt)
}

func (p *Parser) insertOrAction() {
	m := p.Open()
	p.Expect(keyword.KW_INSERT)
	if p.Eat(keyword.KW_OR) {
		p.conflictAction()
	}
	p.Close(m, treekind.InsertOrAction)
}

func (p *Parser) insertStmtKind() {
	m := p.Open()
	switch {
	case p.At(keyword.KW_VALUES):
		vm := p.Open()
		p.Advance()
		p.Expect(token.LP)
		p.exprListNode()
		p.Expect(token.RP)
		for p.Eat(token.COMMA) {
			p.Expect(token.LP)
			p.exprListNode()
			p.Expect(token.RP)
		}
		p.Close(vm, treekind.InsertValuesClause)
	case p.At(keyword.KW_DEFAULT):
		dm := p.Open()
		p.Advance()
		p.Expect(keyword.KW_VALUES)
		p.Close(dm, treekind.InsertDefaultValuesClause)
	default:
		sm := p.Open()
		p.selectStmtWithCte()
		p.Close(sm, treekind.InsertSelectClause)
	}
	p.Close(m, treekind.InsertStmtKind)
}

func (p *Parser) upsertClause() {
	m := p.Open()
	p.Advance() // ON
	p.Expect(keyword.KW_CONFLICT)
	if p.At(token.LP) {
		p.upsertClauseConflictTarget()
	}
	p.Expect(keyword.KW_DO)
	if p.Eat(keyword.KW_NOTHING) {
		p.Close(m, treekind.UpsertClause)
		return
	}
	p.upsertDoUpdate()
	p.Close(m, treekind.UpsertClause)
}

func (p *Parser) upsertClauseConflictTarget() {
	m := p.Open()
	p.Advance() // (
	p.indexedColList()
	p.Expect(token.RP)
	if p.At(keyword.KW_WHERE) {
		p.whereClause()
	}
	p.Close(m, treekind.UpsertClauseConflictTarget)
}

// upsertDoUpdate parses the `UPDATE SET ...` tail, having already
// consumed the leading DO in upsertClause.
func (p *Parser) upsertDoUpdate() {
	m := p.Open()
	p.Expect(keyword.KW_UPDATE)
	p.Expect(keyword.KW_SET)
	p.setColumnExpr()
	for p.Eat(token.COMMA) {
		p.setColumnExpr()
	}
	if p.At(keyword.KW_WHERE) {
		p.whereClause()
	}
	p.Close(m, treekind.UpsertDoUpdate)
}

func (p *Parser) setColumnExpr() {
	m := p.Open()
	if p.At(token.LP) {
		p.colNameList()
	} else {
		p.namedAs(treekind.ColumnName)
	}
	p.Expect(token.EQ)
	p.expr()
	p.Close(m, treekind.SetColumnExpr)
}

func (p *Parser) indexedColList() {
	m := p.Open()
	p.indexedCol()
	for p.Eat(token.COMMA) {
		p.indexedCol()
	}
	p.Close(m, treekind.IndexedColList)
}

func (p *Parser) indexedCol() {
	m := p.Open()
	p.expr()
	if p.At(keyword.KW_COLLATE) {
		cm := p.Open()
		p.Advance()
		p.namedAs(treekind.CollationName)
		p.Close(cm, treekind.Collation)
	}
	if p.AtAny(keyword.KW_ASC, keyword.KW_DESC) {
		om := p.Open()
		p.Advance()
		p.Close(om, treekind.Order)
	}
	p.Close(m, treekind.IndexedCol)
}

func (p *Parser) returningClause() {
	m := p.Open()
	p.Advance() // RETURNING
	p.returningClauseKind()
	for p.Eat(token.COMMA) {
		p.returningClauseKind()
	}
	p.Close(m, treekind.ReturningClause)
}

func (p *Parser) returningClauseKind() {
	m := p.Open()
	if p.At(token.STAR) {
		p.Advance()
	} else {
		em := p.Open()
		p.expr()
		p.aliasNameOpt()
		p.Close(em, treekind.ReturningClauseExpr)
	}
	p.Close(m, treekind.ReturningClauseKind)
}

func (p *Parser) updateStmt() {
	m := p.Open()
	p.updateStmtLimited()
	p.Close(m, treekind.UpdateStmt)
}

func (p *Parser) updateStmtLimited() {
	m := p.Open()
	p.Advance() // UPDATE
	if p.Eat(keyword.KW_OR) {
		p.conflictAction()
	}
	p.qualifiedTableName()
	p.Expect(keyword.KW_SET)
	p.setColumnExpr()
	for p.Eat(token.COMMA) {
		p.setColumnExpr()
	}
	if p.At(keyword.KW_FROM) {
		p.fromClause()
	}
	if p.At(keyword.KW_WHERE) {
		p.whereClause()
	}
	if p.At(keyword.KW_RETURNING) {
		p.returningClause()
	}
	if p.At(keyword.KW_ORDER) {
		p.orderByClause()
	}
	if p.At(keyword.KW_LIMIT) {
		p.limitClause()
	}
	p.Close(m, treekind.UpdateStmtLimited)
}

func (p *Parser) deleteStmt() {
	m := p.Open()
	p.deleteStmtLimited()
	p.Close(m, treekind.DeleteStmt)
}

func (p *Parser) deleteStmtLimited() {
	m := p.Open()
	p.Advance() // DELETE
	p.Expect(keyword.KW_FROM)
	p.qualifiedTableName()
	if p.At(keyword.KW_WHERE) {
		p.whereClause()
	}
	if p.At(keyword.KW_RETURNING) {
		p.returningClause()
	}
	if p.At(keyword.KW_ORDER) {
		p.orderByClause()
	}
	if p.At(keyword.KW_LIMIT) {
		p.limitClause()
	}
	p.Close(m, treekind.DeleteStmtLimited)
}
