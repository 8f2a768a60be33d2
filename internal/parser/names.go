package parser

import (
	"github.com/bordsql/bordsql/internal/event"
	"github.com/bordsql/bordsql/internal/keyword"
	"github.com/bordsql/bordsql/internal/token"
	"github.com/bordsql/bordsql/internal/treekind"
)

// expectedTree builds the ParseErrorKind for "this grammar position
// wanted to open a k subtree but found something else".
func expectedTree(k treekind.Kind) event.ParseErrorKind {
	return event.ExpectedItems([]event.ExpectedItem{event.ExpectedTree(k)})
}

// errExpectedTree records an ExpectedItems(Tree(k)) diagnostic at the
// current position without consuming anything.
func (p *Parser) errExpectedTree(k treekind.Kind) {
	p.events = append(p.events, event.ErrorEvent(expectedTree(k)))
}

// nameHere consumes whatever is at the current position as a plain name
// (table/column/alias/collation/pragma/...): IDEN, a quoted identifier,
// or one of the soft keywords in IDEN_SET (spec §4.4). Callers wrap the
// result in whichever tree kind the grammar position calls for.
func (p *Parser) nameHere() bool {
	if p.At(token.QUOTED_IDEN) || p.AtIden() {
		p.Advance()
		return true
	}
	p.errExpectedTree(treekind.AnyValidName)
	return false
}

// anyValidName parses AnyValidName = IDEN | QUOTED_IDEN (soft keywords
// included via IDEN_SET), wrapped in its own tree.
func (p *Parser) anyValidName() {
	m := p.Open()
	p.nameHere()
	p.Close(m, treekind.AnyValidName)
}

// namedAs parses a bare name and wraps it directly as k (used where the
// grammar names the wrapper after the role, e.g. ColumnName, not
// AnyValidName).
func (p *Parser) namedAs(k treekind.Kind) {
	m := p.Open()
	p.nameHere()
	p.Close(m, k)
}

// schemaQualified parses an optional `SchemaName '.'` prefix followed by
// a required name, both wrapped as k, e.g. FullTableName = (SchemaName
// DOT)? TableName.
func (p *Parser) schemaQualified(k treekind.Kind, nameKind treekind.Kind) {
	m := p.Open()
	if p.AtIden() && p.NthReal(1) == token.DOT {
		p.namedAs(treekind.SchemaName)
		p.Advance() // .
	}
	p.namedAs(nameKind)
	p.Close(m, k)
}

// colNameList parses '(' ColumnName (',' ColumnName)* ')'.
func (p *Parser) colNameList() {
	m := p.Open()
	p.Expect(token.LP)
	p.namedAs(treekind.ColumnName)
	for p.Eat(token.COMMA) {
		p.namedAs(treekind.ColumnName)
	}
	p.Expect(token.RP)
	p.Close(m, treekind.ColNameList)
}

// typeName parses TypeName = TypeNameWord+ ('(' SignedNumber (',' SignedNumber)? ')')?
func (p *Parser) typeName() {
	m := p.Open()
	for p.AtIden() {
		w := p.Open()
		p.Advance()
		p.Close(w, treekind.TypeNameWord)
	}
	if p.At(token.LP) {
		p.Advance()
		p.signedNumber()
		if p.Eat(token.COMMA) {
			p.signedNumber()
		}
		p.Expect(token.RP)
	}
	p.Close(m, treekind.TypeName)
}

func (p *Parser) signedNumber() {
	m := p.Open()
	for p.AtAny(token.PLUS, token.MINUS) {
		p.Advance()
	}
	p.ExpectAny(token.INT_LIT, token.REAL_LIT, token.HEX_LIT)
	p.Close(m, treekind.SignedNumber)
}

// conflictClause optionally parses 'ON' 'CONFLICT' ConflictAction,
// reporting whether it matched at all.
func (p *Parser) conflictClause() bool {
	if !p.At(keyword.KW_ON) {
		return false
	}
	m := p.Open()
	p.Advance()
	p.Expect(keyword.KW_CONFLICT)
	p.conflictAction()
	p.Close(m, treekind.ConflictClause)
	return true
}

func (p *Parser) conflictAction() {
	m := p.Open()
	switch {
	case p.Eat(keyword.KW_ROLLBACK):
	case p.Eat(keyword.KW_ABORT):
	case p.Eat(keyword.KW_FAIL):
	case p.Eat(keyword.KW_IGNORE):
	case p.Eat(keyword.KW_REPLACE):
	default:
		p.errExpectedTree(treekind.ConflictAction)
	}
	p.Close(m, treekind.ConflictAction)
}
