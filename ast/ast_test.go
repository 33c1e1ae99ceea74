package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cppdoc/cppdoc/ast"
	"github.com/cppdoc/cppdoc/token"
)

func TestCppNameValid(t *testing.T) {
	var zero ast.CppName
	assert.False(t, zero.Valid())

	named := ast.CppName{Kind: ast.NameNormal, Spelling: "x", TokenCount: 1}
	assert.True(t, named.Valid())
}

func TestDeclTagging(t *testing.T) {
	var decls []ast.Decl
	decls = append(decls,
		&ast.NamespaceDecl{Name: ast.CppName{Spelling: "n", TokenCount: 1}},
		&ast.ClassDecl{Name: ast.CppName{Spelling: "C", TokenCount: 1}},
		&ast.EnumDecl{Name: ast.CppName{Spelling: "E", TokenCount: 1}},
		&ast.VariableDecl{Name: ast.CppName{Spelling: "v", TokenCount: 1}},
		&ast.FunctionDecl{Name: ast.CppName{Spelling: "f", TokenCount: 1}},
	)

	var kinds []string
	for _, d := range decls {
		switch d.(type) {
		case *ast.NamespaceDecl:
			kinds = append(kinds, "namespace")
		case *ast.ClassDecl:
			kinds = append(kinds, "class")
		case *ast.EnumDecl:
			kinds = append(kinds, "enum")
		case *ast.VariableDecl:
			kinds = append(kinds, "variable")
		case *ast.FunctionDecl:
			kinds = append(kinds, "function")
		default:
			kinds = append(kinds, "unknown")
		}
	}
	assert.Equal(t, []string{"namespace", "class", "enum", "variable", "function"}, kinds)
}

func TestNestedNamespaceSugarShape(t *testing.T) {
	// "namespace a::b::c {}" desugars to one NamespaceDecl per segment,
	// each holding the next in its Decls and only the innermost carrying
	// the body's declarations - this test pins the shape the
	// parser is expected to build, independent of the parser itself.
	inner := &ast.NamespaceDecl{Name: ast.CppName{Spelling: "c", TokenCount: 1}}
	b := &ast.NamespaceDecl{Name: ast.CppName{Spelling: "b", TokenCount: 1}, Decls: []ast.Decl{inner}}
	a := &ast.NamespaceDecl{Name: ast.CppName{Spelling: "a", TokenCount: 1}, Decls: []ast.Decl{b}}

	assert.Empty(t, inner.Decls)
	assert.Len(t, b.Decls, 1)
	assert.Len(t, a.Decls, 1)
}

func TestDecoratorsSharedByVariableAndFunction(t *testing.T) {
	v := &ast.VariableDecl{Decorators: ast.Decorators{Static: true}}
	f := &ast.FunctionDecl{Decorators: ast.Decorators{Static: true, Virtual: true}}
	assert.True(t, v.Static)
	assert.True(t, f.Static)
	assert.True(t, f.Virtual)
}

func TestBinaryOpCarriesOperatorKind(t *testing.T) {
	b := &ast.BinaryOp{
		Operator: token.Add,
		LHS:      &ast.LiteralExpr{Kind: ast.LitInt, Spelling: "1"},
		RHS:      &ast.LiteralExpr{Kind: ast.LitInt, Spelling: "2"},
	}
	assert.Equal(t, token.Add, b.Operator)
	var e ast.Expr = b
	_, ok := e.(*ast.BinaryOp)
	assert.True(t, ok)
}
