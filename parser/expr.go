package parser

import (
	"github.com/cppdoc/cppdoc/ast"
	"github.com/cppdoc/cppdoc/token"
)

// binaryPrecedence ranks the single-token binary operators this grammar
// recognizes, higher binds tighter. Only the operators needed to exercise
// operator overload lookup (spec §4.6) are covered - this is not a full
// C++ expression grammar; in particular the logical "&&"/"||" and
// equality/relational-with-equals spellings are multi-token sequences
// this grammar does not compose in expression position (it does recognize
// them as operator *names*, via the adjacency-based table in
// operator.go, for "operator&&(...)"-shaped declarations).
var binaryPrecedence = map[token.Kind]int{
	token.Or:      1,
	token.Xor:     2,
	token.Amp:     3,
	token.Lt:      4,
	token.Gt:      4,
	token.Add:     5,
	token.Sub:     5,
	token.Mul:     6,
	token.Div:     6,
	token.Percent: 6,
}

// parseExpr parses one expression via precedence climbing over
// parseUnary's result.
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseBinary(0)
}

func (p *Parser) parseBinary(minPrec int) (ast.Expr, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().Kind
		prec, ok := binaryPrecedence[op]
		if !ok || prec < minPrec {
			return lhs, nil
		}
		p.advance()
		rhs, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryOp{Operator: op, LHS: lhs, RHS: rhs}
	}
}

var unaryOperators = map[token.Kind]bool{
	token.Not: true, token.Tilde: true, token.Sub: true, token.Add: true,
	token.Mul: true, token.Amp: true,
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if op := p.peek().Kind; unaryOperators[op] {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Operator: op, Operand: operand}, nil
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() (ast.Expr, error) {
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Kind {
		case token.Dot:
			p.advance()
			name, err := p.parseCppName()
			if err != nil {
				return nil, err
			}
			e = &ast.FieldAccessExpr{Kind: ast.FieldDot, Expr: e, Name: name}
		case token.Arrow:
			if p.c.Adjacent(0) && p.c.PeekN(1).Kind == token.Mul {
				return e, nil // "->*" is an operator-name token, not postfix here
			}
			p.advance()
			name, err := p.parseCppName()
			if err != nil {
				return nil, err
			}
			e = &ast.FieldAccessExpr{Kind: ast.FieldArrow, Expr: e, Name: name}
		case token.LBracket:
			p.advance()
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectKind(token.RBracket, "']'"); err != nil {
				return nil, err
			}
			e = &ast.ArrayAccessExpr{Expr: e, Index: idx}
		case token.LParen:
			p.advance()
			args, err := p.parseExprList(token.RParen)
			if err != nil {
				return nil, err
			}
			if _, err := p.expectKind(token.RParen, "')'"); err != nil {
				return nil, err
			}
			e = &ast.CallExpr{Expr: e, Arguments: args}
		default:
			return e, nil
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	t := p.peek()
	switch {
	case t.Kind == token.Number:
		p.advance()
		kind := ast.LitInt
		if isFloatSpelling(t.Spelling) {
			kind = ast.LitFloat
		}
		return &ast.LiteralExpr{Kind: kind, Spelling: t.Spelling}, nil
	case t.Kind == token.String:
		p.advance()
		return &ast.LiteralExpr{Kind: ast.LitString, Spelling: t.Spelling}, nil
	case t.Kind == token.Char:
		p.advance()
		return &ast.LiteralExpr{Kind: ast.LitChar, Spelling: t.Spelling}, nil
	case t.Kind == token.KeywordTrue:
		p.advance()
		return &ast.LiteralExpr{Kind: ast.LitBool, Value: true}, nil
	case t.Kind == token.KeywordFalse:
		p.advance()
		return &ast.LiteralExpr{Kind: ast.LitBool, Value: false}, nil
	case p.isIdent("nullptr"):
		p.advance()
		return &ast.NullptrExpr{}, nil
	case p.isIdent("this"):
		p.advance()
		return &ast.ThisExpr{}, nil
	case p.isIdent("typeid"):
		p.advance()
		if _, err := p.expectKind(token.LParen, "'('"); err != nil {
			return nil, err
		}
		operand, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKind(token.RParen, "')'"); err != nil {
			return nil, err
		}
		return &ast.TypeidExpr{Operand: operand}, nil
	case t.Kind == token.LParen:
		return p.parseParenOrCast()
	default:
		qn, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		if len(qn.Segments) == 1 && !qn.Global {
			return &ast.IdExpr{Name: qn.Segments[0]}, nil
		}
		last := qn.Segments[len(qn.Segments)-1]
		scopeName := ast.QualifiedName{Global: qn.Global, Segments: qn.Segments[:len(qn.Segments)-1]}
		return &ast.ChildExpr{Scope: &ast.NamedType{Name: scopeName}, Name: last}, nil
	}
}

// parseParenOrCast disambiguates "(Type)expr" from "(expr)" by
// speculatively parsing a type and backtracking if that fails - the
// grammar-sensitive distinction the declarator parser itself is named for
// (spec §4.2), applied here to the one expression context that needs it.
func (p *Parser) parseParenOrCast() (ast.Expr, error) {
	save := p.c
	p.advance() // '('
	if t, err := p.parseLongType(); err == nil {
		if _, err := p.expectKind(token.RParen, "')'"); err == nil {
			if operand, err := p.parseUnary(); err == nil {
				return &ast.CastExpr{Type: t, Expr: operand}, nil
			}
		}
	}
	p.c = save
	p.advance() // '('
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKind(token.RParen, "')'"); err != nil {
		return nil, err
	}
	return &ast.ParenthesisExpr{Expr: e}, nil
}

func isFloatSpelling(s string) bool {
	for _, r := range s {
		if r == '.' || r == 'f' || r == 'F' {
			return true
		}
	}
	return false
}
