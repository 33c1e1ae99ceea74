// Package parser is the recursive-descent parser for C++ declarations,
// types, declarators and expressions. It consumes a token.Cursor and
// produces an ast.Program while building the symbol.Symbol scope tree as
// it goes - the declaration parser is the only writer of that tree (see
// the root module's concurrency/resource model).
package parser

import (
	"github.com/cppdoc/cppdoc/ast"
	"github.com/cppdoc/cppdoc/index"
	"github.com/cppdoc/cppdoc/symbol"
	"github.com/cppdoc/cppdoc/token"
)

// Parser holds the mutable state of one parse: the token cursor, the
// symbol tree being built, and the index recorder it was created with.
// The parser stores the recorder but reports no events to it; the only
// Recorder calls in this module are made by package typer.
type Parser struct {
	c        token.Cursor
	root     *symbol.Symbol
	scope    *symbol.Symbol
	mappings *symbol.Mappings
	recorder index.Recorder

	// className, when non-empty, is the enclosing class's spelled name -
	// used to recognize constructors ("name == className") and
	// destructors ("~name") by shape while parsing class members.
	className string

	// pendingCC carries a calling-convention keyword recognized by
	// parseShortDeclarator (see eatCallingConvention) out to the caller
	// that builds the FunctionDecl, since the keyword is consumed deep in
	// the declarator grammar, right before the name, not at the call site.
	pendingCC ast.CallingConvention
}

// New returns a Parser over tokens, rooted at a fresh symbol tree. Pass
// index.Null{} for rec when indexing is disabled.
func New(tokens []token.Token, rec index.Recorder) *Parser {
	if rec == nil {
		rec = index.Null{}
	}
	root := symbol.NewRoot()
	return &Parser{
		c:        token.New(tokens),
		root:     root,
		scope:    root,
		mappings: &symbol.Mappings{},
		recorder: rec,
	}
}

// Root returns the scope tree root built by this parse.
func (p *Parser) Root() *symbol.Symbol { return p.root }

// Mappings returns the ast.Decl -> symbol.Symbol side table built by this
// parse.
func (p *Parser) Mappings() *symbol.Mappings { return p.mappings }

// ParseProgram parses a whole translation unit: every top-level
// declaration, in source order, until the token stream is exhausted.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.c.IsEOF() {
		decl, err := p.parseTopLevelDecl()
		if err != nil {
			return nil, err
		}
		prog.Decls = append(prog.Decls, decl)
	}
	return prog, nil
}

func (p *Parser) peek() token.Token  { return p.c.Peek() }
func (p *Parser) pos() int           { return p.c.Peek().Start }
func (p *Parser) advance()           { p.c = p.c.Advance() }

func (p *Parser) isIdent(spelling string) bool {
	t := p.peek()
	return t.Kind == token.Ident && t.Spelling == spelling
}

func (p *Parser) eatIdent(spelling string) bool {
	if p.isIdent(spelling) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expectKind(k token.Kind, what string) (token.Token, error) {
	t := p.peek()
	if t.Kind != k {
		return token.Token{}, stop(p.pos(), "expected %s", what)
	}
	p.advance()
	return t, nil
}

func (p *Parser) expectIdent(spelling string) error {
	if !p.eatIdent(spelling) {
		return stop(p.pos(), "expected %q", spelling)
	}
	return nil
}
