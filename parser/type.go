package parser

import (
	"github.com/cppdoc/cppdoc/ast"
	"github.com/cppdoc/cppdoc/token"
)

// DeclaratorRestriction constrains how many declarators a declarator-list
// parse must produce.
type DeclaratorRestriction int

const (
	RestrictZero DeclaratorRestriction = iota
	RestrictOptional
	RestrictOne
	RestrictMany
)

// InitializerRestriction constrains whether a parsed declarator may carry
// an initializer.
type InitializerRestriction int

const (
	InitZero InitializerRestriction = iota
	InitOptional
)

var primitiveKeywords = map[string]ast.PrimitiveKeyword{
	"auto": ast.PrimAuto, "void": ast.PrimVoid, "bool": ast.PrimBool,
	"char": ast.PrimChar, "wchar_t": ast.PrimWChar, "char16_t": ast.PrimChar16,
	"char32_t": ast.PrimChar32, "short": ast.PrimShort, "int": ast.PrimInt,
	"int8_t": ast.PrimInt8, "int16_t": ast.PrimInt16, "int32_t": ast.PrimInt32,
	"int64_t": ast.PrimInt64, "float": ast.PrimFloat, "double": ast.PrimDouble,
	"long": ast.PrimLong,
}

// parseCppName recognizes a plain identifier or, after the "operator"
// keyword, an operator name via longest-match over operatorTable.
// Constructor/destructor reclassification happens in the declaration
// parser, which knows the enclosing class name; this only produces
// NameNormal / NameOperator.
func (p *Parser) parseCppName() (ast.CppName, error) {
	if p.eatIdent("operator") {
		toks, text, next, ok := tryOperatorName(p.c)
		if !ok {
			return ast.CppName{}, stop(p.pos(), "expected operator spelling")
		}
		p.c = next
		name := ast.CppName{Kind: ast.NameOperator, Spelling: "operator " + text, TokenCount: len(toks)}
		copy(name.Tokens[:], toks)
		return name, nil
	}
	t := p.peek()
	if t.Kind != token.Ident {
		return ast.CppName{}, stop(p.pos(), "expected identifier")
	}
	p.advance()
	return ast.CppName{Kind: ast.NameNormal, Spelling: t.Spelling, Tokens: [4]token.Token{t}, TokenCount: 1}, nil
}

// parseQualifiedName parses a "::"-separated name path, e.g. "::a::b::c".
func (p *Parser) parseQualifiedName() (ast.QualifiedName, error) {
	qn := ast.QualifiedName{}
	if p.peek().Kind == token.ColonColon {
		qn.Global = true
		p.advance()
	}
	name, err := p.parseCppName()
	if err != nil {
		return qn, err
	}
	qn.Segments = append(qn.Segments, name)
	for p.peek().Kind == token.ColonColon {
		p.advance()
		name, err := p.parseCppName()
		if err != nil {
			return qn, err
		}
		qn.Segments = append(qn.Segments, name)
	}
	return qn, nil
}

// parseLongType parses a short type then repeatedly absorbs trailing
// qualifier keywords, a generic-argument list, and a variadic pack suffix.
func (p *Parser) parseLongType() (ast.Type, error) {
	t, err := p.parseShortType()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.eatIdent("const"):
			t = addDecorate(t, func(d *ast.DecorateType) { d.IsConst = true })
		case p.eatIdent("constexpr"):
			t = addDecorate(t, func(d *ast.DecorateType) { d.IsConstExpr = true })
		case p.eatIdent("volatile"):
			t = addDecorate(t, func(d *ast.DecorateType) { d.IsVolatile = true })
		case p.peek().Kind == token.Lt:
			args, err := p.parseGenericArguments()
			if err != nil {
				return nil, err
			}
			t = &ast.GenericType{Type: t, Arguments: args}
		case p.peek().Kind == token.DotDotDot:
			p.advance()
			t = &ast.VariadicTemplateArgumentType{Type: t}
		default:
			return t, nil
		}
	}
}

func addDecorate(t ast.Type, set func(*ast.DecorateType)) ast.Type {
	if d, ok := t.(*ast.DecorateType); ok {
		set(d)
		return d
	}
	d := &ast.DecorateType{Type: t}
	set(d)
	return d
}

func (p *Parser) parseGenericArguments() ([]ast.GenericArgument, error) {
	if _, err := p.expectKind(token.Lt, "'<'"); err != nil {
		return nil, err
	}
	var args []ast.GenericArgument
	for p.peek().Kind != token.Gt {
		t, err := p.parseLongType()
		if err != nil {
			return nil, err
		}
		args = append(args, ast.GenericArgument{Type: t})
		if p.peek().Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expectKind(token.Gt, "'>'"); err != nil {
		return nil, err
	}
	return args, nil
}

// parseShortType parses a primitive (with optional signedness prefix), a
// decltype(expr), a leading-qualifier-with-inner-type recursion, or a
// user-named type.
func (p *Parser) parseShortType() (ast.Type, error) {
	switch {
	case p.eatIdent("const"):
		inner, err := p.parseShortType()
		if err != nil {
			return nil, err
		}
		return addDecorate(inner, func(d *ast.DecorateType) { d.IsConst = true }), nil
	case p.eatIdent("constexpr"):
		inner, err := p.parseShortType()
		if err != nil {
			return nil, err
		}
		return addDecorate(inner, func(d *ast.DecorateType) { d.IsConstExpr = true }), nil
	case p.eatIdent("volatile"):
		inner, err := p.parseShortType()
		if err != nil {
			return nil, err
		}
		return addDecorate(inner, func(d *ast.DecorateType) { d.IsVolatile = true }), nil
	case p.eatIdent("decltype"):
		if _, err := p.expectKind(token.LParen, "'('"); err != nil {
			return nil, err
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKind(token.RParen, "')'"); err != nil {
			return nil, err
		}
		return &ast.DeclType{Expr: e}, nil
	}

	prefix := ast.PrefixNone
	if p.eatIdent("signed") {
		prefix = ast.PrefixSigned
	} else if p.eatIdent("unsigned") {
		prefix = ast.PrefixUnsigned
	}
	if t := p.peek(); t.Kind == token.Ident {
		if kw, ok := primitiveKeywords[t.Spelling]; ok {
			p.advance()
			if kw == ast.PrimLong {
				switch {
				case p.isIdent("long"):
					p.advance()
					kw = ast.PrimLongLong
				case p.isIdent("double"):
					p.advance()
					kw = ast.PrimLongDouble
				}
			}
			return &ast.PrimitiveType{Prefix: prefix, Keyword: kw}, nil
		}
	}
	if prefix != ast.PrefixNone {
		return &ast.PrimitiveType{Prefix: prefix, Keyword: ast.PrimInt}, nil
	}

	qn, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	return &ast.NamedType{Name: qn}, nil
}

// parseShortDeclarator walks left-to-right over a declarator's
// pointer/reference/array/grouping/qualifier suffixes, terminating at an
// optional name.
func (p *Parser) parseShortDeclarator(base ast.Type) (ast.Type, ast.CppName, error) {
	t := base
	for {
		switch {
		case p.peek().Kind == token.Mul:
			p.advance()
			t = &ast.ReferenceType{Kind: ast.RefPtr, Type: t}
			p.eatPtrDecoration()
		case p.peek().Kind == token.Amp:
			if p.c.PeekN(1).Kind == token.Amp && p.c.Adjacent(0) {
				p.advance()
				p.advance()
				t = &ast.ReferenceType{Kind: ast.RefRRef, Type: t}
			} else {
				p.advance()
				t = &ast.ReferenceType{Kind: ast.RefLRef, Type: t}
			}
		case p.eatIdent("const"):
			t = addDecorate(t, func(d *ast.DecorateType) { d.IsConst = true })
		case p.eatIdent("volatile"):
			t = addDecorate(t, func(d *ast.DecorateType) { d.IsVolatile = true })
		case p.eatIdent("alignas"):
			if _, err := p.expectKind(token.LParen, "'('"); err != nil {
				return nil, ast.CppName{}, err
			}
			if _, err := p.parseExpr(); err != nil {
				return nil, ast.CppName{}, err
			}
			if _, err := p.expectKind(token.RParen, "')'"); err != nil {
				return nil, ast.CppName{}, err
			}
		default:
			goto afterPrefixes
		}
	}
afterPrefixes:

	if p.peek().Kind == token.LParen {
		p.advance()
		inner, name, err := p.parseShortDeclarator(t)
		if err != nil {
			return nil, ast.CppName{}, err
		}
		if _, err := p.expectKind(token.RParen, "')'"); err != nil {
			return nil, ast.CppName{}, err
		}
		t = inner
		t, err = p.parseArraySuffixes(t)
		if err != nil {
			return nil, ast.CppName{}, err
		}
		return t, name, nil
	}

	if cc := p.eatCallingConvention(); cc != ast.CCNone {
		p.pendingCC = cc
	}

	var name ast.CppName
	if p.peek().Kind == token.Ident || p.isIdent("operator") {
		n, err := p.parseCppName()
		if err != nil {
			return nil, ast.CppName{}, err
		}
		name = n
	}

	t, err := p.parseArraySuffixes(t)
	if err != nil {
		return nil, ast.CppName{}, err
	}
	return t, name, nil
}

// eatPtrDecoration discards the MSVC-style "__ptr32"/"__ptr64" pointer
// size annotations, which carry no type information this interner keeps.
func (p *Parser) eatPtrDecoration() {
	p.eatIdent("__ptr32")
	p.eatIdent("__ptr64")
}

func (p *Parser) parseArraySuffixes(t ast.Type) (ast.Type, error) {
	for p.peek().Kind == token.LBracket {
		p.advance()
		var dim ast.Expr
		if p.peek().Kind != token.RBracket {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			dim = e
		}
		if _, err := p.expectKind(token.RBracket, "']'"); err != nil {
			return nil, err
		}
		t = &ast.ArrayType{Type: t, Dim: dim}
	}
	return t, nil
}

// parseDeclaratorList parses one or more comma-separated declarators over
// a shared base type, honoring declRestr/initRestr.
func (p *Parser) parseDeclaratorList(declRestr DeclaratorRestriction, initRestr InitializerRestriction) (ast.Type, []*ast.Declarator, error) {
	base, err := p.parseLongType()
	if err != nil {
		return nil, nil, err
	}
	if declRestr == RestrictZero {
		return base, nil, nil
	}

	var decls []*ast.Declarator
	for {
		t, name, err := p.parseShortDeclarator(base)
		if err != nil {
			if declRestr == RestrictOptional && len(decls) == 0 {
				return base, nil, nil
			}
			return nil, nil, err
		}
		init, err := p.parseInitializer(initRestr)
		if err != nil {
			return nil, nil, err
		}
		decls = append(decls, &ast.Declarator{Type: t, Name: name, Initializer: init})
		if p.peek().Kind == token.Comma && declRestr == RestrictMany {
			p.advance()
			continue
		}
		break
	}

	switch declRestr {
	case RestrictOne:
		if len(decls) != 1 || !decls[0].Name.Valid() {
			return nil, nil, stop(p.pos(), "expected exactly one named declarator")
		}
	case RestrictMany:
		if len(decls) == 0 {
			return nil, nil, stop(p.pos(), "expected at least one declarator")
		}
	}
	return base, decls, nil
}

func (p *Parser) parseInitializer(restr InitializerRestriction) (*ast.Initializer, error) {
	switch {
	case p.peek().Kind == token.Eq:
		if restr == InitZero {
			return nil, stop(p.pos(), "initializer not allowed here")
		}
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Initializer{Kind: ast.InitEqual, Arguments: []ast.Expr{e}}, nil
	case p.peek().Kind == token.LParen:
		if restr == InitZero {
			return nil, nil
		}
		p.advance()
		args, err := p.parseExprList(token.RParen)
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKind(token.RParen, "')'"); err != nil {
			return nil, err
		}
		return &ast.Initializer{Kind: ast.InitConstructor, Arguments: args}, nil
	case p.peek().Kind == token.LBrace:
		if restr == InitZero {
			return nil, nil
		}
		p.advance()
		args, err := p.parseExprList(token.RBrace)
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKind(token.RBrace, "'}'"); err != nil {
			return nil, err
		}
		return &ast.Initializer{Kind: ast.InitUniversal, Arguments: args}, nil
	default:
		return nil, nil
	}
}

func (p *Parser) parseExprList(end token.Kind) ([]ast.Expr, error) {
	var exprs []ast.Expr
	for p.peek().Kind != end {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if p.peek().Kind == token.Comma {
			p.advance()
			continue
		}
		break
	}
	return exprs, nil
}
