// Package symbol implements the scope tree: a Symbol per declared name,
// nested under its enclosing scope, with the links (forward-declaration
// grouping, template specialization, using-namespace visibility) the name
// resolver and expression typer need to walk.
//
// A Symbol owns its children; every other link (parent, forward/
// specialization root, using-namespace target) is a non-owning
// back-reference, so the tree itself never has sharing even though the
// graph of back-references does. See symbol.Mappings for how a Symbol is
// tied back to the ast.Decl that created it - that link is kept out of the
// ast package on purpose (see the ast package doc comment) so ast stays
// free of a dependency on symbol.
package symbol

import (
	"github.com/cppdoc/cppdoc/ast"
	"github.com/cppdoc/cppdoc/tsys"
)

// entry is one binding in a Symbol's child multimap. Children with the same
// name are kept in insertion order - overloads, forward declarations and
// namespace reopenings all rely on that order being preserved.
type entry struct {
	name string
	sym  *Symbol
}

// Symbol is a node in the scope tree.
type Symbol struct {
	parent *Symbol
	name   string

	entries []entry
	byName  map[string][]*Symbol

	// Decls are the declarations bound here. Only a namespace symbol ever
	// collects more than one: every reopening of "namespace N {...}" adds
	// its own NamespaceDecl to the same Symbol. Every other declaration
	// gets its own Symbol, even when it is grouped with others via the
	// forward-declaration links below.
	Decls []ast.Decl

	// Stat is set when this scope was introduced by a statement (a block,
	// a for-loop, ...) rather than a declaration.
	Stat ast.Stat

	// ResolvedTypes caches the canonical type(s) of a declaration whose
	// type must be resolved lazily (a variable or function declaration).
	// nil until first computed.
	ResolvedTypes []*tsys.Tsys

	IsForwardDeclaration    bool
	ForwardDeclarationRoot  *Symbol
	ForwardDeclarations     []*Symbol

	SpecializationRoot *Symbol
	Specializations    []*Symbol

	UsingNamespaces []*Symbol
}

// NewRoot returns a fresh, unparented Symbol to use as the root of a
// parsing context's scope tree.
func NewRoot() *Symbol {
	return &Symbol{name: ""}
}

// Name returns the symbol's spelled name. Implements tsys.Decl so the type
// interner can name a Decl(symbol) type without importing this package.
func (s *Symbol) Name() string { return s.name }

// Parent returns the enclosing scope, or nil for the root.
func (s *Symbol) Parent() *Symbol { return s.parent }

// Children returns every child symbol bound under name, in insertion order.
func (s *Symbol) Children(name string) []*Symbol {
	return s.byName[name]
}

// AllChildren returns every direct child, in insertion order, regardless of
// name - used by callers that need to walk the whole scope (e.g. class
// member iteration for inheritance).
func (s *Symbol) AllChildren() []*Symbol {
	out := make([]*Symbol, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.sym)
	}
	return out
}

func (s *Symbol) addChild(name string, child *Symbol) {
	if s.byName == nil {
		s.byName = map[string][]*Symbol{}
	}
	child.parent = s
	child.name = name
	s.entries = append(s.entries, entry{name: name, sym: child})
	s.byName[name] = append(s.byName[name], child)
}

// FindOrCreateNamespace returns the existing child namespace symbol named
// name, or creates one. Every "namespace name { ... }" reopening shares the
// same Symbol; this is the one case where a name deliberately does not get
// a fresh Symbol per occurrence.
func (s *Symbol) FindOrCreateNamespace(name string) (sym *Symbol, created bool) {
	for _, child := range s.byName[name] {
		if len(child.Decls) > 0 {
			if _, ok := child.Decls[0].(*ast.NamespaceDecl); ok {
				return child, false
			}
		}
	}
	sym = &Symbol{}
	s.addChild(name, sym)
	return sym, true
}

// CreateDeclSymbol creates a brand new child symbol bound to name and owning
// decl. specializationRoot, if non-nil, is recorded as this symbol's
// specialization root and this symbol is appended to the root's
// Specializations list.
func (s *Symbol) CreateDeclSymbol(name string, decl ast.Decl, specializationRoot *Symbol) *Symbol {
	child := &Symbol{Decls: []ast.Decl{decl}}
	s.addChild(name, child)
	if specializationRoot != nil {
		specializationRoot.Specializations = append(specializationRoot.Specializations, child)
		child.SpecializationRoot = specializationRoot
	}
	return child
}

// CreateStatSymbol creates a child scope owned by a statement (e.g. a
// block or a for-loop variable scope), bound under the reserved name "$".
func (s *Symbol) CreateStatSymbol(stat ast.Stat) *Symbol {
	child := &Symbol{name: "$", Stat: stat}
	s.addChild("$", child)
	return child
}

// SetForwardDeclarationRoot links this symbol to root as its forward
// declaration root. It is idempotent (calling it again with the same root
// succeeds silently) but fails silently - without altering any existing
// link - if a *different* root was already set, matching the forward-star
// invariant: every forward declaration points at exactly one root.
func (s *Symbol) SetForwardDeclarationRoot(root *Symbol) bool {
	if s.ForwardDeclarationRoot == root {
		return true
	}
	if s.ForwardDeclarationRoot != nil {
		return false
	}
	s.ForwardDeclarationRoot = root
	root.ForwardDeclarations = append(root.ForwardDeclarations, s)
	return true
}

// AddUsingNamespace records a non-owning "using namespace target;" edge
// from this scope.
func (s *Symbol) AddUsingNamespace(target *Symbol) {
	s.UsingNamespaces = append(s.UsingNamespaces, target)
}

// Mappings is the side table linking an ast.Decl to the Symbol it created.
// Kept separate from both ast and Symbol (rather than as a struct field on
// either) so ast stays free of any dependency on symbol - the same
// decoupling trick gapil's ast.Mappings uses for AST<->CST linkage.
type Mappings struct {
	bySymbol map[ast.Decl]*Symbol
}

// Add records that decl created sym.
func (m *Mappings) Add(decl ast.Decl, sym *Symbol) {
	if m.bySymbol == nil {
		m.bySymbol = map[ast.Decl]*Symbol{}
	}
	m.bySymbol[decl] = sym
}

// SymbolOf returns the symbol decl created, or nil if none was recorded.
func (m *Mappings) SymbolOf(decl ast.Decl) *Symbol {
	return m.bySymbol[decl]
}
