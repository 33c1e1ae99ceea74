// Package resolve implements name lookup against the scope tree built by
// package symbol: turning a name (bare, qualified, or scoped through "::")
// into the set of Symbols it can refer to at a given point in the program.
//
// There are three lookup policies, matching the three contexts a name can
// be looked up from (see ast.IdExpr, ast.ChildExpr and class member access):
// SymbolAccessableInScope walks outward through enclosing scopes;
// ChildSymbol looks in one scope (plus its inherited scopes and
// using-namespace edges) without ascending; ChildSymbolRequestedFromSubClass is ChildSymbol with the
// derived-class origin of the request recorded on each hit, for future
// access-control enforcement that this package does not itself implement.
package resolve

import (
	"github.com/cppdoc/cppdoc/ast"
	"github.com/cppdoc/cppdoc/symbol"
)

// SearchPolicy selects how ResolveSymbol walks the scope tree.
type SearchPolicy int

const (
	// SymbolAccessableInScope walks outward from the starting scope,
	// consulting using-namespace edges at each level, and stops ascending
	// at the first scope that produces any binding at all.
	SymbolAccessableInScope SearchPolicy = iota
	// ChildSymbol looks up name in one scope (plus its inherited
	// base-class scopes and its using-namespace edges), without ascending
	// to enclosing scopes.
	ChildSymbol
	// ChildSymbolRequestedFromSubClass behaves exactly like ChildSymbol;
	// every Result it returns has FromSubClass set so a caller checking
	// access specifiers knows the lookup originated from a derived class.
	ChildSymbolRequestedFromSubClass
)

// Result is one symbol a lookup found, annotated with how it was reached.
type Result struct {
	Symbol *symbol.Symbol
	// Inherited is true when Symbol was found by walking into a base
	// class's scope rather than directly in the scope that was searched.
	Inherited bool
	// FromSubClass is true when the lookup was performed with
	// ChildSymbolRequestedFromSubClass.
	FromSubClass bool
}

// ResolveSymbol resolves name against scope under policy.
func ResolveSymbol(scope *symbol.Symbol, name string, policy SearchPolicy) []Result {
	switch policy {
	case ChildSymbol:
		return childSymbol(scope, name, false, map[*symbol.Symbol]bool{})
	case ChildSymbolRequestedFromSubClass:
		results := childSymbol(scope, name, false, map[*symbol.Symbol]bool{})
		for i := range results {
			results[i].FromSubClass = true
		}
		return results
	default:
		return accessableInScope(scope, name)
	}
}

// accessableInScope walks outward from scope. At each level it tries
// childSymbol (which itself covers base-class inheritance and that level's
// using-namespace edges); the first level to produce any result ends the
// walk, per the spec's "stop at first scope producing a binding" rule.
func accessableInScope(scope *symbol.Symbol, name string) []Result {
	for s := scope; s != nil; s = s.Parent() {
		if results := childSymbol(s, name, false, map[*symbol.Symbol]bool{}); len(results) > 0 {
			return results
		}
	}
	return nil
}

// childSymbol looks up name directly in s, then in s's inherited (base
// class) scopes, then transitively through s's using-namespace edges
// (deduped via visited to tolerate using-namespace cycles). It never
// ascends to s.Parent().
func childSymbol(s *symbol.Symbol, name string, inherited bool, visited map[*symbol.Symbol]bool) []Result {
	if s == nil || visited[s] {
		return nil
	}
	visited[s] = true

	var out []Result
	for _, child := range s.Children(name) {
		out = append(out, Result{Symbol: child, Inherited: inherited})
	}
	if len(out) > 0 {
		return out
	}

	for _, base := range baseScopes(s) {
		out = append(out, childSymbol(base, name, true, visited)...)
	}
	if len(out) > 0 {
		return out
	}

	for _, ns := range s.UsingNamespaces {
		out = append(out, childSymbol(ns, name, inherited, visited)...)
	}
	return out
}

// baseScopes returns the symbol scopes of every base class named on any
// ClassDecl bound at s, resolved from s's enclosing scope (a base class
// name is looked up from where the derived class is declared, not from
// inside the derived class itself).
func baseScopes(s *symbol.Symbol) []*symbol.Symbol {
	var out []*symbol.Symbol
	enclosing := s.Parent()
	for _, decl := range s.Decls {
		cd, ok := decl.(*ast.ClassDecl)
		if !ok {
			continue
		}
		for _, baseType := range cd.Bases {
			named, ok := baseType.(*ast.NamedType)
			if !ok {
				continue
			}
			for _, r := range ResolveQualifiedName(enclosing, named.Name) {
				out = append(out, r.Symbol)
			}
		}
	}
	return out
}

// ResolveQualifiedName resolves a "::"-separated name path: the first
// segment is looked up with SymbolAccessableInScope (or, when the name is
// rooted with a leading "::", as a direct child of the translation unit's
// root scope), and every following segment is looked up with ChildSymbol
// against each candidate scope so far.
func ResolveQualifiedName(scope *symbol.Symbol, qn ast.QualifiedName) []Result {
	if len(qn.Segments) == 0 {
		return nil
	}

	var candidates []Result
	first := qn.Segments[0].Spelling
	if qn.Global {
		root := scope
		for root != nil && root.Parent() != nil {
			root = root.Parent()
		}
		candidates = childSymbol(root, first, false, map[*symbol.Symbol]bool{})
	} else {
		candidates = accessableInScope(scope, first)
	}

	for _, seg := range qn.Segments[1:] {
		var next []Result
		for _, c := range candidates {
			next = append(next, childSymbol(c.Symbol, seg.Spelling, false, map[*symbol.Symbol]bool{})...)
		}
		candidates = next
	}
	return candidates
}
