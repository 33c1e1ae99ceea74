package symbol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppdoc/cppdoc/ast"
	"github.com/cppdoc/cppdoc/symbol"
)

func TestNestedNamespaceSugar(t *testing.T) {
	// namespace a::b::c {} -> root has exactly one child "a", "a" has
	// exactly one child "b", "b" has exactly one child "c", and "c" owns
	// one namespace declaration.
	root := symbol.NewRoot()
	a, created := root.FindOrCreateNamespace("a")
	require.True(t, created)
	b, created := a.FindOrCreateNamespace("b")
	require.True(t, created)
	c, created := b.FindOrCreateNamespace("c")
	require.True(t, created)
	c.Decls = append(c.Decls, &ast.NamespaceDecl{Name: ast.CppName{Spelling: "c", TokenCount: 1}})

	assert.Len(t, root.Children("a"), 1)
	assert.Len(t, a.Children("b"), 1)
	assert.Len(t, b.Children("c"), 1)
	assert.Len(t, c.Decls, 1)
}

func TestNamespaceReopeningSharesSymbol(t *testing.T) {
	root := symbol.NewRoot()
	n1, created := root.FindOrCreateNamespace("n")
	require.True(t, created)
	n1.Decls = append(n1.Decls, &ast.NamespaceDecl{Name: ast.CppName{Spelling: "n", TokenCount: 1}})

	n2, created := root.FindOrCreateNamespace("n")
	require.False(t, created, "reopening must reuse the existing symbol")
	assert.Same(t, n1, n2)
}

func TestForwardDeclarationStarInvariant(t *testing.T) {
	// Five enum declarations of A, the third a definition and the rest
	// forward. Every forward points at the definition; the definition's
	// ForwardDeclarations equals the others in insertion order - scenario 2.
	root := symbol.NewRoot()
	var symbols []*symbol.Symbol
	for i := 0; i < 5; i++ {
		decl := &ast.EnumDecl{Name: ast.CppName{Spelling: "A", TokenCount: 1}, IsForward: i != 2}
		symbols = append(symbols, root.CreateDeclSymbol("A", decl, nil))
	}
	root_ := symbols[2]
	for i, s := range symbols {
		if i == 2 {
			s.IsForwardDeclaration = false
			continue
		}
		s.IsForwardDeclaration = true
		ok := s.SetForwardDeclarationRoot(root_)
		require.True(t, ok)
	}

	assert.False(t, root_.IsForwardDeclaration)
	assert.Equal(t, []*symbol.Symbol{symbols[0], symbols[1], symbols[3], symbols[4]}, root_.ForwardDeclarations)
	for i, s := range symbols {
		if i == 2 {
			continue
		}
		assert.Same(t, root_, s.ForwardDeclarationRoot)
	}
}

func TestSetForwardDeclarationRootIdempotentAndProtective(t *testing.T) {
	root := symbol.NewRoot()
	rootA := root.CreateDeclSymbol("A", &ast.EnumDecl{Name: ast.CppName{Spelling: "A", TokenCount: 1}}, nil)
	rootB := root.CreateDeclSymbol("B", &ast.EnumDecl{Name: ast.CppName{Spelling: "B", TokenCount: 1}}, nil)
	fwd := root.CreateDeclSymbol("A", &ast.EnumDecl{Name: ast.CppName{Spelling: "A", TokenCount: 1}, IsForward: true}, nil)

	assert.True(t, fwd.SetForwardDeclarationRoot(rootA))
	assert.True(t, fwd.SetForwardDeclarationRoot(rootA), "re-setting the same root is idempotent")
	assert.False(t, fwd.SetForwardDeclarationRoot(rootB), "a different root must be rejected")
	assert.Same(t, rootA, fwd.ForwardDeclarationRoot, "the original root link must survive the rejected call")
}

func TestEveryNonNamespaceDeclGetsItsOwnSymbol(t *testing.T) {
	root := symbol.NewRoot()
	v1 := root.CreateDeclSymbol("x", &ast.VariableDecl{Name: ast.CppName{Spelling: "x", TokenCount: 1}}, nil)
	v2 := root.CreateDeclSymbol("x", &ast.VariableDecl{Name: ast.CppName{Spelling: "x", TokenCount: 1}}, nil)
	assert.NotSame(t, v1, v2)
	assert.Len(t, root.Children("x"), 2)
}

func TestMappingsRoundTrip(t *testing.T) {
	var m symbol.Mappings
	decl := &ast.VariableDecl{Name: ast.CppName{Spelling: "v", TokenCount: 1}}
	root := symbol.NewRoot()
	sym := root.CreateDeclSymbol("v", decl, nil)
	m.Add(decl, sym)
	assert.Same(t, sym, m.SymbolOf(decl))
	assert.Nil(t, m.SymbolOf(&ast.VariableDecl{}), "an unrecorded decl must resolve to nil")
}

func TestSpecializationLinks(t *testing.T) {
	root := symbol.NewRoot()
	primary := root.CreateDeclSymbol("Box", &ast.ClassDecl{Name: ast.CppName{Spelling: "Box", TokenCount: 1}}, nil)
	spec := root.CreateDeclSymbol("Box", &ast.ClassDecl{Name: ast.CppName{Spelling: "Box", TokenCount: 1}}, primary)
	assert.Same(t, primary, spec.SpecializationRoot)
	assert.Equal(t, []*symbol.Symbol{spec}, primary.Specializations)
}
