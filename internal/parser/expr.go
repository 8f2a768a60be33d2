package parser

import (
	"github.com/bordsql/bordsql/internal/event"
	"github.com/bordsql/bordsql/internal/keyword"
	"github.com/bordsql/bordsql/internal/token"
	"github.com/bordsql/bordsql/internal/treekind"
)

// Binding powers, spec §4.4. Kept as named constants rather than inlined
// numbers so the precedence table reads the same as the spec's.
const (
	bpOrL, bpOrR             = 1, 2
	bpAndL, bpAndR           = 3, 4
	bpNotPrefixR             = 5
	bpEqFamilyL, bpEqFamilyR = 7, 8
	bpCmpL, bpCmpR           = 9, 10
	bpBitL, bpBitR           = 11, 12
	bpAddL, bpAddR           = 13, 14
	bpMulL, bpMulR           = 15, 16
	bpConcatL, bpConcatR     = 17, 18
	bpUnaryR                 = 21
	bpCollateL               = 23
)

// expr parses a full expression at the lowest binding power, discarding
// the closed-mark handle: callers that need it use exprBP directly.
func (p *Parser) expr() { p.exprBP(0) }

// exprBP is the Pratt loop: parse one atom (or prefix operator), then
// repeatedly fold in postfix/infix operators whose left binding power is
// at least minBP, wrapping the accumulated left side via OpenBefore so
// `a + b * c` still comes out with `*` nested tighter than `+` despite
// being parsed strictly left to right (spec §4.4, §9).
func (p *Parser) exprBP(minBP int) MarkClosed {
	lhs := p.exprAtomOrPrefix()

	for {
		if p.At(keyword.KW_ISNULL) {
			if bpEqFamilyL < minBP {
				break
			}
			m := p.OpenBefore(lhs)
			p.Advance()
			lhs = p.Close(m, treekind.OpIsNull)
			continue
		}
		if p.At(keyword.KW_NOTNULL) {
			if bpEqFamilyL < minBP {
				break
			}
			m := p.OpenBefore(lhs)
			p.Advance()
			lhs = p.Close(m, treekind.OpNotNull)
			continue
		}
		if p.At(keyword.KW_NOT) && p.NthReal(1) == keyword.KW_NULL {
			if bpEqFamilyL < minBP {
				break
			}
			m := p.OpenBefore(lhs)
			p.Advance()
			p.Advance()
			lhs = p.Close(m, treekind.OpNotSpaceNull)
			continue
		}
		if p.At(keyword.KW_COLLATE) {
			if bpCollateL < minBP {
				break
			}
			m := p.OpenBefore(lhs)
			p.Advance()
			p.namedAs(treekind.CollationName)
			lhs = p.Close(m, treekind.OpCollate)
			continue
		}

		op, ok := p.peekInfix()
		if !ok || op.lbp < minBP {
			break
		}
		m := p.OpenBefore(lhs)
		for i := 0; i < op.width; i++ {
			p.Advance()
		}
		switch op.kind {
		case treekind.OpBetweenAnd, treekind.OpNotBetweenAnd:
			// BETWEEN x AND y: the AND here is not the logical operator,
			// it is part of this single ternary production (spec §4.4, §9).
			p.exprBP(op.rbp)
			p.Expect(keyword.KW_AND)
			p.exprBP(op.rbp)
		case treekind.OpIn, treekind.OpNotIn:
			p.inRHS()
		case treekind.OpLike, treekind.OpNotLike:
			p.exprBP(op.rbp)
			if p.At(keyword.KW_ESCAPE) {
				em := p.Open()
				p.Advance()
				p.exprBP(op.rbp)
				p.Close(em, treekind.OpEscape)
			}
		default:
			p.exprBP(op.rbp)
		}
		lhs = p.Close(m, op.kind)
	}
	return lhs
}

type infixOp struct {
	kind     treekind.Kind
	lbp, rbp int
	width    int // operator tokens to consume before the rhs
}

// peekInfix looks ahead (without consuming) for the operator starting at
// the current position, if any.
func (p *Parser) peekInfix() (infixOp, bool) {
	switch {
	case p.At(keyword.KW_OR):
		return infixOp{treekind.OpOr, bpOrL, bpOrR, 1}, true
	case p.At(keyword.KW_AND):
		return infixOp{treekind.OpAnd, bpAndL, bpAndR, 1}, true
	case p.At(token.EQ), p.At(token.EQ2):
		return infixOp{treekind.OpEq, bpEqFamilyL, bpEqFamilyR, 1}, true
	case p.At(token.NE), p.At(token.LT_GT):
		return infixOp{treekind.OpNotEq, bpEqFamilyL, bpEqFamilyR, 1}, true
	case p.At(keyword.KW_IS):
		if p.NthReal(1) == keyword.KW_NOT {
			if p.NthReal(2) == keyword.KW_DISTINCT && p.NthReal(3) == keyword.KW_FROM {
				return infixOp{treekind.OpIsNotDistinctFrom, bpEqFamilyL, bpEqFamilyR, 4}, true
			}
			return infixOp{treekind.OpIsNot, bpEqFamilyL, bpEqFamilyR, 2}, true
		}
		if p.NthReal(1) == keyword.KW_DISTINCT && p.NthReal(2) == keyword.KW_FROM {
			return infixOp{treekind.OpIsDistinctFrom, bpEqFamilyL, bpEqFamilyR, 3}, true
		}
		return infixOp{treekind.OpIs, bpEqFamilyL, bpEqFamilyR, 1}, true
	case p.At(keyword.KW_IN):
		return infixOp{treekind.OpIn, bpEqFamilyL, bpEqFamilyR, 1}, true
	case p.At(keyword.KW_LIKE):
		return infixOp{treekind.OpLike, bpEqFamilyL, bpEqFamilyR, 1}, true
	case p.At(keyword.KW_MATCH):
		return infixOp{treekind.OpMatch, bpEqFamilyL, bpEqFamilyR, 1}, true
	case p.At(keyword.KW_GLOB):
		return infixOp{treekind.OpGlob, bpEqFamilyL, bpEqFamilyR, 1}, true
	case p.At(keyword.KW_REGEXP):
		return infixOp{treekind.OpRegexp, bpEqFamilyL, bpEqFamilyR, 1}, true
	case p.At(keyword.KW_BETWEEN):
		return infixOp{treekind.OpBetweenAnd, bpEqFamilyL, bpEqFamilyR, 1}, true
	case p.At(keyword.KW_NOT):
		switch p.NthReal(1) {
		case keyword.KW_IN:
			return infixOp{treekind.OpNotIn, bpEqFamilyL, bpEqFamilyR, 2}, true
		case keyword.KW_LIKE:
			return infixOp{treekind.OpNotLike, bpEqFamilyL, bpEqFamilyR, 2}, true
		case keyword.KW_MATCH:
			return infixOp{treekind.OpNotMatch, bpEqFamilyL, bpEqFamilyR, 2}, true
		case keyword.KW_GLOB:
			return infixOp{treekind.OpNotGlob, bpEqFamilyL, bpEqFamilyR, 2}, true
		case keyword.KW_REGEXP:
			return infixOp{treekind.OpNotRegexp, bpEqFamilyL, bpEqFamilyR, 2}, true
		case keyword.KW_BETWEEN:
			return infixOp{treekind.OpNotBetweenAnd, bpEqFamilyL, bpEqFamilyR, 2}, true
		}
		return infixOp{}, false
	case p.At(token.LT):
		return infixOp{treekind.OpLT, bpCmpL, bpCmpR, 1}, true
	case p.At(token.LE):
		return infixOp{treekind.OpLTE, bpCmpL, bpCmpR, 1}, true
	case p.At(token.GT):
		return infixOp{treekind.OpGT, bpCmpL, bpCmpR, 1}, true
	case p.At(token.GE):
		return infixOp{treekind.OpGTE, bpCmpL, bpCmpR, 1}, true
	case p.At(token.PIPE):
		return infixOp{treekind.OpBinOr, bpBitL, bpBitR, 1}, true
	case p.At(token.AMP):
		return infixOp{treekind.OpBinAnd, bpBitL, bpBitR, 1}, true
	case p.At(token.SHL):
		return infixOp{treekind.OpBinLShift, bpBitL, bpBitR, 1}, true
	case p.At(token.SHR):
		return infixOp{treekind.OpBinRShift, bpBitL, bpBitR, 1}, true
	case p.At(token.PLUS):
		return infixOp{treekind.OpAdd, bpAddL, bpAddR, 1}, true
	case p.At(token.MINUS):
		return infixOp{treekind.OpSubtract, bpAddL, bpAddR, 1}, true
	case p.At(token.STAR):
		return infixOp{treekind.OpMultiply, bpMulL, bpMulR, 1}, true
	case p.At(token.SLASH):
		return infixOp{treekind.OpDivide, bpMulL, bpMulR, 1}, true
	case p.At(token.PERCENT):
		return infixOp{treekind.OpModulus, bpMulL, bpMulR, 1}, true
	case p.At(token.PIPE2):
		return infixOp{treekind.OpConcat, bpConcatL, bpConcatR, 1}, true
	case p.At(token.ARROW):
		return infixOp{treekind.OpExtractOne, bpConcatL, bpConcatR, 1}, true
	case p.At(token.ARROW2):
		return infixOp{treekind.OpExtractTwo, bpConcatL, bpConcatR, 1}, true
	default:
		return infixOp{}, false
	}
}

// inRHS parses the right-hand side of IN / NOT IN: a parenthesized
// subquery, a parenthesized expression list, a bare (optionally
// schema-qualified) table name, or a table-valued function call (spec
// §4.4 atom forms).
func (p *Parser) inRHS() {
	if p.Eat(token.LP) {
		if p.At(keyword.KW_SELECT) || p.At(keyword.KW_WITH) {
			m := p.Open()
			p.selectStmtWithCte()
			p.Close(m, treekind.InSelect)
		} else if !p.At(token.RP) {
			p.exprListNode()
		}
		p.Expect(token.RP)
		return
	}

	isFunc := false
	if p.AtIden() {
		width := 1
		if p.NthReal(1) == token.DOT {
			width = 3
		}
		isFunc = p.NthReal(width) == token.LP
	}

	if isFunc {
		m := p.Open()
		p.schemaQualified(treekind.FullTableFunctionName, treekind.TableFunctionName)
		p.Expect(token.LP)
		if !p.At(token.RP) {
			p.exprListNode()
		}
		p.Expect(token.RP)
		p.Close(m, treekind.InTableFunc)
		return
	}

	m := p.Open()
	p.schemaQualified(treekind.FullTableName, treekind.TableName)
	p.Close(m, treekind.InTable)
}

// exprAtomOrPrefix parses one atom, or a prefix operator applied to one.
func (p *Parser) exprAtomOrPrefix() MarkClosed {
	switch {
	case p.At(token.PLUS):
		return p.exprPrefixOp(treekind.OpUnaryPlus, bpUnaryR)
	case p.At(token.MINUS):
		return p.exprPrefixOp(treekind.OpUnaryMinus, bpUnaryR)
	case p.At(token.TILDA):
		return p.exprPrefixOp(treekind.OpBinComplement, bpUnaryR)
	case p.At(keyword.KW_NOT):
		return p.exprPrefixOp(treekind.OpNot, bpNotPrefixR)
	default:
		return p.exprAtom()
	}
}

// atExprStart reports whether the current position can begin an
// expression: a unary prefix operator, or anything exprAtom itself
// matches (literal, bind parameter, CAST, CASE, RAISE, parenthesized
// expr/subquery, or a name). Callers that need to decide whether an
// expression is even present — rather than parse one and let a missing
// atom fall through to exprAtom's UnexpectedToken default — use this
// instead (spec §8).
func (p *Parser) atExprStart() bool {
	return p.AtAny(token.PLUS, token.MINUS, token.TILDA, keyword.KW_NOT,
		token.INT_LIT, token.REAL_LIT, token.HEX_LIT, token.STR_LIT, token.BLOB_LIT,
		keyword.KW_NULL, keyword.KW_TRUE, keyword.KW_FALSE, keyword.KW_CURRENT_TIME,
		keyword.KW_CURRENT_DATE, keyword.KW_CURRENT_TIMESTAMP,
		token.Q_MARK, token.COLON_IDEN, token.AT_IDEN, token.DOLLAR_IDEN,
		keyword.KW_CAST, keyword.KW_CASE, keyword.KW_RAISE, token.LP) || p.AtIden()
}

func (p *Parser) exprPrefixOp(k treekind.Kind, rbp int) MarkClosed {
	m := p.Open()
	p.Advance()
	p.exprBP(rbp)
	return p.Close(m, k)
}

func (p *Parser) exprAtom() MarkClosed {
	switch {
	case p.AtAny(token.INT_LIT, token.REAL_LIT, token.HEX_LIT, token.STR_LIT, token.BLOB_LIT,
		keyword.KW_NULL, keyword.KW_TRUE, keyword.KW_FALSE, keyword.KW_CURRENT_TIME,
		keyword.KW_CURRENT_DATE, keyword.KW_CURRENT_TIMESTAMP):
		m := p.Open()
		p.Advance()
		return p.Close(m, treekind.ExprLit)
	case p.AtAny(token.Q_MARK, token.COLON_IDEN, token.AT_IDEN, token.DOLLAR_IDEN):
		m := p.Open()
		p.Advance()
		return p.Close(m, treekind.ExprBindParam)
	case p.At(keyword.KW_CAST):
		return p.exprCast()
	case p.At(keyword.KW_CASE):
		return p.exprCase()
	case p.At(keyword.KW_RAISE):
		return p.raiseFunc()
	case p.At(token.LP):
		return p.exprParenOrSelect()
	case p.AtIden():
		return p.exprNameOrFuncOrColumn()
	default:
		m := p.Open()
		p.AdvanceWithError(event.UnexpectedToken(p.UnexpectedTokenHere()))
		return p.Close(m, treekind.ExprLit)
	}
}

// exprNameOrFuncOrColumn disambiguates a bare identifier atom: a
// function call (`name(`), or a possibly schema/table-qualified column
// reference.
func (p *Parser) exprNameOrFuncOrColumn() MarkClosed {
	if p.NthReal(1) == token.LP {
		return p.exprFuncCall()
	}

	m := p.Open()
	dots := 0
	if p.NthReal(1) == token.DOT {
		dots = 1
		if p.NthReal(3) == token.DOT {
			dots = 2
		}
	}
	if dots == 2 {
		p.namedAs(treekind.SchemaName)
		p.Advance()
	}
	if dots >= 1 {
		p.namedAs(treekind.TableName)
		p.Advance()
	}
	p.namedAs(treekind.ColumnName)
	return p.Close(m, treekind.ExprColumnName)
}

func (p *Parser) exprFuncCall() MarkClosed {
	m := p.Open()
	p.namedAs(treekind.FunctionName)
	p.Expect(token.LP)
	p.funcArguments()
	p.Expect(token.RP)
	if p.At(keyword.KW_FILTER) {
		fm := p.Open()
		p.Advance()
		p.Expect(token.LP)
		p.whereClause()
		p.Expect(token.RP)
		p.Close(fm, treekind.FilterClause)
	}
	if p.At(keyword.KW_OVER) {
		om := p.Open()
		p.Advance()
		if p.At(token.LP) {
			p.windowFunctionBody()
		} else {
			p.namedAs(treekind.WindowName)
		}
		p.Close(om, treekind.OverClause)
	}
	return p.Close(m, treekind.ExprFunc)
}

func (p *Parser) funcArguments() {
	m := p.Open()
	switch {
	case p.At(token.RP):
	case p.At(token.STAR):
		sm := p.Open()
		p.Advance()
		p.Close(sm, treekind.ArgStar)
	default:
		p.Eat(keyword.KW_DISTINCT)
		p.argExpr()
		for p.Eat(token.COMMA) {
			p.argExpr()
		}
	}
	p.Close(m, treekind.FuncArguments)
}

func (p *Parser) argExpr() {
	m := p.Open()
	p.exprBP(0)
	if p.At(keyword.KW_ORDER) {
		p.orderByClause()
	}
	p.Close(m, treekind.ArgExpr)
}

func (p *Parser) exprCast() MarkClosed {
	m := p.Open()
	p.Advance() // CAST
	p.Expect(token.LP)
	p.expr()
	p.Expect(keyword.KW_AS)
	p.typeName()
	p.Expect(token.RP)
	return p.Close(m, treekind.ExprCast)
}

func (p *Parser) exprCase() MarkClosed {
	m := p.Open()
	p.Advance() // CASE
	if !p.At(keyword.KW_WHEN) {
		tm := p.Open()
		p.expr()
		p.Close(tm, treekind.CaseTargetExpr)
	}
	wl := p.Open()
	for p.At(keyword.KW_WHEN) {
		wm := p.Open()
		p.Advance()
		p.expr()
		p.Expect(keyword.KW_THEN)
		p.expr()
		p.Close(wm, treekind.CaseWhenClause)
	}
	p.Close(wl, treekind.CaseWhenClauseList)
	if p.At(keyword.KW_ELSE) {
		em := p.Open()
		p.Advance()
		p.expr()
		p.Close(em, treekind.CaseElseClause)
	}
	p.Expect(keyword.KW_END)
	return p.Close(m, treekind.ExprCase)
}

func (p *Parser) raiseFunc() MarkClosed {
	m := p.Open()
	p.Advance() // RAISE
	p.Expect(token.LP)
	p.raiseAction()
	p.Expect(token.RP)
	return p.Close(m, treekind.RaiseFunc)
}

func (p *Parser) raiseAction() {
	m := p.Open()
	if p.Eat(keyword.KW_IGNORE) {
		p.Close(m, treekind.RaiseAction)
		return
	}
	var k treekind.Kind
	switch {
	case p.At(keyword.KW_ROLLBACK):
		k = treekind.RaiseActionRollBack
	case p.At(keyword.KW_ABORT):
		k = treekind.RaiseActionAbort
	case p.At(keyword.KW_FAIL):
		k = treekind.RaiseActionFail
	default:
		p.errExpectedTree(treekind.RaiseAction)
		p.Close(m, treekind.RaiseAction)
		return
	}
	am := p.Open()
	p.Advance()
	p.Close(am, k)
	p.raiseErrMessage()
	p.Close(m, treekind.RaiseAction)
}

func (p *Parser) raiseErrMessage() {
	m := p.Open()
	p.Expect(token.COMMA)
	p.Expect(token.STR_LIT)
	p.Close(m, treekind.RaiseFuncErrMessage)
}

func (p *Parser) exprParenOrSelect() MarkClosed {
	m := p.Open()
	p.Advance() // (
	if p.At(keyword.KW_SELECT) || p.At(keyword.KW_WITH) {
		p.selectStmtWithCte()
		p.Expect(token.RP)
		return p.Close(m, treekind.ExprSelect)
	}
	p.exprListNode()
	p.Expect(token.RP)
	return p.Close(m, treekind.ExprParen)
}

func (p *Parser) exprListNode() {
	m := p.Open()
	p.expr()
	for p.Eat(token.COMMA) {
		p.expr()
	}
	p.Close(m, treekind.ExprList)
}
