package parser

import (
	"github.com/bordsql/bordsql/internal/keyword"
	"github.com/bordsql/bordsql/internal/token"
	"github.com/bordsql/bordsql/internal/treekind"
)

// selectStmtWithCte parses an optional WITH clause followed by a select,
// the form allowed anywhere a subquery may appear (spec §4.4).
func (p *Parser) selectStmtWithCte() {
	m := p.Open()
	if p.At(keyword.KW_WITH) {
		p.cteClause()
	}
	p.selectStmt()
	p.Close(m, treekind.SelectStmtWithCte)
}

func (p *Parser) cteClause() {
	m := p.Open()
	p.Advance() // WITH
	p.Eat(keyword.KW_RECURSIVE)
	p.commonTableExpr()
	for p.Eat(token.COMMA) {
		p.commonTableExpr()
	}
	p.Close(m, treekind.CteClause)
}

func (p *Parser) commonTableExpr() {
	m := p.Open()
	p.namedAs(treekind.CteName)
	if p.At(token.LP) {
		p.colNameList()
	}
	if p.At(keyword.KW_NOT) || p.At(keyword.KW_MATERIALIZED) {
		mm := p.Open()
		p.Eat(keyword.KW_NOT)
		p.Expect(keyword.KW_MATERIALIZED)
		p.Close(mm, treekind.MaterializedCte)
	}
	p.Expect(keyword.KW_AS)
	p.Expect(token.LP)
	p.selectStmtWithCte()
	p.Expect(token.RP)
	p.Close(m, treekind.CommonTableExpr)
}

func (p *Parser) selectStmt() {
	m := p.Open()
	p.selectCore()
	for p.atCompoundOperatorStart() {
		p.compoundSelect()
	}
	if p.At(keyword.KW_ORDER) {
		p.orderByClause()
	}
	if p.At(keyword.KW_LIMIT) {
		p.limitClause()
	}
	p.Close(m, treekind.SelectStmt)
}

func (p *Parser) atCompoundOperatorStart() bool {
	return p.AtAny(keyword.KW_UNION, keyword.KW_INTERSECT, keyword.KW_EXCEPT)
}

func (p *Parser) compoundSelect() {
	m := p.Open()
	p.compoundOperator()
	p.selectCore()
	p.Close(m, treekind.CompoundSelect)
}

func (p *Parser) compoundOperator() {
	m := p.Open()
	switch {
	case p.At(keyword.KW_UNION):
		um := p.Open()
		p.Advance()
		p.Eat(keyword.KW_ALL)
		p.Close(um, treekind.UnionCompoundOperator)
	case p.At(keyword.KW_INTERSECT), p.At(keyword.KW_EXCEPT):
		p.Advance()
	default:
		p.errExpectedTree(treekind.CompoundOperator)
	}
	p.Close(m, treekind.CompoundOperator)
}

func (p *Parser) selectCore() {
	m := p.Open()
	if p.At(keyword.KW_VALUES) {
		vm := p.Open()
		p.valuesClause()
		p.Close(vm, treekind.ValuesSelect)
	} else {
		p.traditionalSelect()
	}
	p.Close(m, treekind.SelectCore)
}

func (p *Parser) valuesClause() {
	m := p.Open()
	p.Advance() // VALUES
	p.Expect(token.LP)
	p.exprListNode()
	p.Expect(token.RP)
	for p.Eat(token.COMMA) {
		p.Expect(token.LP)
		p.exprListNode()
		p.Expect(token.RP)
	}
	p.Close(m, treekind.ValuesClause)
}

func (p *Parser) traditionalSelect() {
	m := p.Open()
	p.Advance() // SELECT
	if p.AtAny(keyword.KW_DISTINCT, keyword.KW_ALL) {
		p.Advance()
	}
	p.resultColumnList()
	if p.At(keyword.KW_FROM) {
		p.fromClause()
	}
	if p.At(keyword.KW_WHERE) {
		p.whereClause()
	}
	if p.At(keyword.KW_GROUP) {
		p.groupByClause()
	}
	if p.At(keyword.KW_WINDOW) {
		p.windowClause()
	}
	p.Close(m, treekind.TraditionalSelect)
}

// atResultColumnStart reports whether the current position can begin a
// ResultColumn: `*`, `name.*`, or an expression (spec §9, grammar.common
// ResultColumn). resultColumnList uses this to decide whether the list
// can open at all, rather than delegating straight to expr and letting an
// empty list surface as a stray UnexpectedToken (spec §8).
func (p *Parser) atResultColumnStart() bool {
	return p.At(token.STAR) || p.atExprStart()
}

func (p *Parser) resultColumnList() {
	if !p.atResultColumnStart() {
		p.errExpectedTree(treekind.ResultColumnList)
		return
	}
	m := p.Open()
	p.resultColumn()
	for p.Eat(token.COMMA) {
		p.resultColumn()
	}
	p.Close(m, treekind.ResultColumnList)
}

func (p *Parser) resultColumn() {
	m := p.Open()
	switch {
	case p.At(token.STAR):
		p.Advance()
		p.Close(m, treekind.ResultColumnAll)
	case p.AtIden() && p.NthReal(1) == token.DOT && p.NthReal(2) == token.STAR:
		p.anyValidName()
		p.Advance() // .
		p.Expect(token.STAR)
		p.Close(m, treekind.ResultColumnTableAll)
	default:
		p.expr()
		p.aliasNameOpt()
		p.Close(m, treekind.ResultColumnExpr)
	}
}

// aliasNameOpt parses an optional `AS? IDEN` alias, reporting whether it
// matched. Only a bare IDEN counts — soft keywords are not accepted here,
// matching the grammar's AliasName production (spec §9, grammar.common).
func (p *Parser) aliasNameOpt() bool {
	if !(p.At(keyword.KW_AS) || p.At(token.IDEN)) {
		return false
	}
	m := p.Open()
	p.Eat(keyword.KW_AS)
	p.Expect(token.IDEN)
	p.Close(m, treekind.AliasName)
	return true
}

func (p *Parser) withAliasOpt() {
	if !(p.At(keyword.KW_AS) || p.At(token.IDEN)) {
		return
	}
	m := p.Open()
	p.aliasNameOpt()
	p.Close(m, treekind.WithAlias)
}

func (p *Parser) fromClause() {
	m := p.Open()
	p.Advance() // FROM
	p.joinClauseOrTable()
	p.Close(m, treekind.FromClause)
}

// joinClauseOrTable parses the first table-or-subquery, then only wraps
// it (and whatever follows) in a JoinClause if a join actually continues
// — a bare `FROM t` has no JoinClause node at all (spec §4.4 grammar
// shape, matching FromClause = 'KW_FROM' (JoinClause | TableOrSubquery)).
func (p *Parser) joinClauseOrTable() {
	first := p.tableOrSubquery()
	if !p.atJoinOperatorStart() {
		return
	}
	wrap := p.OpenBefore(first)
	for p.atJoinOperatorStart() {
		p.joinOperator()
		p.tableOrSubquery()
		p.joinConstraintOpt()
	}
	p.Close(wrap, treekind.JoinClause)
}

func (p *Parser) atJoinOperatorStart() bool {
	return p.AtAny(token.COMMA, keyword.KW_NATURAL, keyword.KW_CROSS,
		keyword.KW_LEFT, keyword.KW_RIGHT, keyword.KW_FULL, keyword.KW_INNER, keyword.KW_JOIN)
}

func (p *Parser) joinOperator() {
	m := p.Open()
	if p.At(token.COMMA) {
		cm := p.Open()
		p.Advance()
		p.Close(cm, treekind.CommaJoin)
	} else {
		nm := p.Open()
		if p.At(keyword.KW_NATURAL) {
			natm := p.Open()
			p.Advance()
			p.Close(natm, treekind.NaturalJoin)
		}
		p.joinKind()
		p.Expect(keyword.KW_JOIN)
		p.Close(nm, treekind.NonCommaJoin)
	}
	p.Close(m, treekind.JoinOperator)
}

func (p *Parser) joinKind() {
	m := p.Open()
	switch {
	case p.At(keyword.KW_CROSS):
		cm := p.Open()
		p.Advance()
		p.Close(cm, treekind.CrossJoin)
	case p.AtAny(keyword.KW_LEFT, keyword.KW_RIGHT, keyword.KW_FULL):
		om := p.Open()
		p.Advance()
		p.Eat(keyword.KW_OUTER)
		p.Close(om, treekind.OuterJoin)
	default:
		im := p.Open()
		p.Eat(keyword.KW_INNER)
		p.Close(im, treekind.InnerJoin)
	}
	p.Close(m, treekind.Join)
}

func (p *Parser) joinConstraintOpt() {
	switch {
	case p.At(keyword.KW_ON):
		m := p.Open()
		om := p.Open()
		p.Advance()
		p.expr()
		p.Close(om, treekind.OnConstraint)
		p.Close(m, treekind.JoinConstraint)
	case p.At(keyword.KW_USING):
		m := p.Open()
		um := p.Open()
		p.Advance()
		p.colNameList()
		p.Close(um, treekind.UsingConstraint)
		p.Close(m, treekind.JoinConstraint)
	}
}

// tableOrSubquery parses one FROM-list item: a parenthesized subquery, a
// parenthesized join, a table-valued function call, or a plain
// (optionally schema-qualified) table name — each optionally aliased.
func (p *Parser) tableOrSubquery() MarkClosed {
	m := p.Open()
	switch {
	case p.At(token.LP):
		if p.NthReal(1) == keyword.KW_SELECT || p.NthReal(1) == keyword.KW_WITH {
			fm := p.Open()
			p.Advance()
			p.selectStmtWithCte()
			p.Expect(token.RP)
			p.Close(fm, treekind.FromClauseSelectStmt)
		} else {
			p.Advance()
			p.joinClauseOrTable()
			p.Expect(token.RP)
		}
	default:
		width := 1
		if p.AtIden() && p.NthReal(1) == token.DOT {
			width = 3
		}
		if p.NthReal(width) == token.LP {
			fm := p.Open()
			p.schemaQualified(treekind.FullTableFunctionName, treekind.TableFunctionName)
			p.Expect(token.LP)
			p.exprListNode()
			p.Expect(token.RP)
			p.Close(fm, treekind.FromClauseTableValueFunction)
		} else {
			p.qualifiedTableName()
		}
	}
	p.withAliasOpt()
	return p.Close(m, treekind.TableOrSubquery)
}

func (p *Parser) qualifiedTableName() {
	m := p.Open()
	p.schemaQualified(treekind.FullTableName, treekind.TableName)
	switch {
	case p.At(keyword.KW_INDEXED):
		im := p.Open()
		p.Advance()
		p.Expect(keyword.KW_BY)
		p.namedAs(treekind.IndexName)
		p.Close(im, treekind.TableNameIndexedBy)
	case p.At(keyword.KW_NOT) && p.NthReal(1) == keyword.KW_INDEXED:
		nm := p.Open()
		p.Advance()
		p.Advance()
		p.Close(nm, treekind.TableNameNotIndexed)
	}
	p.Close(m, treekind.QualifiedTableName)
}

func (p *Parser) whereClause() {
	m := p.Open()
	p.Advance() // WHERE
	p.expr()
	p.Close(m, treekind.WhereClause)
}

func (p *Parser) groupByClause() {
	m := p.Open()
	p.Advance() // GROUP
	p.Expect(keyword.KW_BY)
	p.exprListNode()
	if p.At(keyword.KW_HAVING) {
		hm := p.Open()
		p.Advance()
		p.expr()
		p.Close(hm, treekind.HavingClause)
	}
	p.Close(m, treekind.GroupByClause)
}

func (p *Parser) orderByClause() {
	m := p.Open()
	p.Advance() // ORDER
	p.Expect(keyword.KW_BY)
	olm := p.Open()
	p.orderingTerm()
	for p.Eat(token.COMMA) {
		p.orderingTerm()
	}
	p.Close(olm, treekind.OrderingTermList)
	p.Close(m, treekind.OrderByClause)
}

func (p *Parser) orderingTerm() {
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
	if p.At(keyword.KW_NULLS) {
		p.Advance()
		p.ExpectAny(keyword.KW_FIRST, keyword.KW_LAST)
	}
	p.Close(m, treekind.OrderingTerm)
}

func (p *Parser) limitClause() {
	m := p.Open()
	p.Advance() // LIMIT
	p.expr()
	if p.At(keyword.KW_OFFSET) {
		om := p.Open()
		p.Advance()
		p.expr()
		p.Close(om, treekind.Offset)
	}
	p.Close(m, treekind.LimitClause)
}

func (p *Parser) windowClause() {
	m := p.Open()
	p.Advance() // WINDOW
	p.windowDef()
	for p.Eat(token.COMMA) {
		p.windowDef()
	}
	p.Close(m, treekind.WindowClause)
}

func (p *Parser) windowDef() {
	m := p.Open()
	p.namedAs(treekind.WindowName)
	p.Expect(keyword.KW_AS)
	p.windowFunctionBody()
	p.Close(m, treekind.WindowDef)
}

// windowFunctionBody parses the parenthesized body shared by WINDOW
// definitions and OVER(...) clauses.
func (p *Parser) windowFunctionBody() {
	m := p.Open()
	p.Expect(token.LP)
	if p.At(token.IDEN) {
		bm := p.Open()
		p.Advance()
		p.Close(bm, treekind.WindowBaseName)
	}
	if p.At(keyword.KW_PARTITION) {
		pm := p.Open()
		p.Advance()
		p.Expect(keyword.KW_BY)
		p.exprListNode()
		p.Close(pm, treekind.WindowPartitionByClause)
	}
	if p.At(keyword.KW_ORDER) {
		p.orderByClause()
	}
	if p.AtAny(keyword.KW_RANGE, keyword.KW_ROWS, keyword.KW_GROUPS) {
		p.frameSpec()
	}
	p.Expect(token.RP)
	p.Close(m, treekind.WindowFunction)
}

func (p *Parser) frameSpec() {
	m := p.Open()
	p.Advance() // RANGE | ROWS | GROUPS
	switch {
	case p.At(keyword.KW_BETWEEN):
		p.frameSpecBetweenClause()
	case p.At(keyword.KW_UNBOUNDED):
		p.frameSpecUnboundedPreceding()
	case p.At(keyword.KW_CURRENT):
		p.frameSpecCurrentRow()
	default:
		p.frameSpecPreceding()
	}
	if p.At(keyword.KW_EXCLUDE) {
		p.frameSpecExcludeClause()
	}
	p.Close(m, treekind.FrameSpec)
}

func (p *Parser) frameSpecUnboundedPreceding() {
	m := p.Open()
	p.Expect(keyword.KW_UNBOUNDED)
	p.Expect(keyword.KW_PRECEDING)
	p.Close(m, treekind.FrameSpecUnboundedPreceding)
}

func (p *Parser) frameSpecCurrentRow() {
	m := p.Open()
	p.Expect(keyword.KW_CURRENT)
	p.Expect(keyword.KW_ROW)
	p.Close(m, treekind.FrameSpecCurrentRow)
}

func (p *Parser) frameSpecPreceding() {
	m := p.Open()
	p.expr()
	p.Expect(keyword.KW_PRECEDING)
	p.Close(m, treekind.FrameSpecPreceding)
}

func (p *Parser) frameSpecUnboundedFollowing() {
	m := p.Open()
	p.Expect(keyword.KW_UNBOUNDED)
	p.Expect(keyword.KW_FOLLOWING)
	p.Close(m, treekind.FrameSpecUnboundedFollowing)
}

func (p *Parser) frameSpecBetweenClause() {
	m := p.Open()
	p.Advance() // BETWEEN
	p.frameSpecBetweenLeft()
	p.Expect(keyword.KW_AND)
	p.frameSpecBetweenRight()
	p.Close(m, treekind.FrameSpecBetweenClause)
}

func (p *Parser) frameSpecBetweenLeft() {
	switch {
	case p.At(keyword.KW_UNBOUNDED):
		p.frameSpecUnboundedPreceding()
	case p.At(keyword.KW_CURRENT):
		p.frameSpecCurrentRow()
	default:
		m := p.Open()
		p.expr()
		if p.Eat(keyword.KW_FOLLOWING) {
			p.Close(m, treekind.FrameSpecFollowing)
		} else {
			p.Expect(keyword.KW_PRECEDING)
			p.Close(m, treekind.FrameSpecPreceding)
		}
	}
}

func (p *Parser) frameSpecBetweenRight() {
	switch {
	case p.At(keyword.KW_UNBOUNDED):
		p.frameSpecUnboundedFollowing()
	case p.At(keyword.KW_CURRENT):
		p.frameSpecCurrentRow()
	default:
		m := p.Open()
		p.expr()
		if p.Eat(keyword.KW_PRECEDING) {
			p.Close(m, treekind.FrameSpecPreceding)
		} else {
			p.Expect(keyword.KW_FOLLOWING)
			p.Close(m, treekind.FrameSpecFollowing)
		}
	}
}

func (p *Parser) frameSpecExcludeClause() {
	m := p.Open()
	p.Advance() // EXCLUDE
	switch {
	case p.At(keyword.KW_NO):
		nm := p.Open()
		p.Advance()
		p.Expect(keyword.KW_OTHERS)
		p.Close(nm, treekind.FrameSpecNoOthers)
	case p.At(keyword.KW_CURRENT):
		p.Advance()
		p.Expect(keyword.KW_ROW)
	case p.At(keyword.KW_GROUP):
		p.Advance()
	case p.At(keyword.KW_TIES):
		p.Advance()
	default:
		p.errExpectedTree(treekind.FrameSpecExcludeClause)
	}
	p.Close(m, treekind.FrameSpecExcludeClause)
}
