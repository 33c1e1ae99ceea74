// Package ast holds the syntax tree produced by parsing a translation unit:
// declarations, type expressions, declarators and expressions, each as a
// tagged variant rather than a class hierarchy. There is one marker
// interface per category (Decl, Type, Expr, Stat) so a visitor is just a
// type switch over the category's concrete members, and the set of members
// is exhaustively checkable by the compiler.
//
// This package is intentionally self-contained: it knows nothing about
// symbols or canonical types. The symbol a declaration creates, and the
// canonical type an expression carries, are recorded by the symbol and tsys
// packages in side tables keyed by these nodes (see symbol.Mappings),
// rather than as fields here - that keeps the dependency graph one-way.
package ast

import "github.com/cppdoc/cppdoc/token"

// Decl is implemented by every top-level or member declaration node.
type Decl interface {
	isDecl()
}

// Type is implemented by every type-expression node: the surface syntax for
// a type, before it has been resolved to a canonical tsys.Tsys value.
type Type interface {
	isType()
}

// Expr is implemented by every expression node.
type Expr interface {
	isExpr()
}

// Stat is implemented by every statement node.
type Stat interface {
	isStat()
}

// NameKind classifies the spelling of a CppName.
type NameKind int

const (
	NameNormal NameKind = iota
	NameOperator
	NameConstructor
	NameDestructor
)

// CppName is a source name: its classification, surface spelling, and the
// (up to four) tokens it was spelled with. Operator names can span several
// tokens, e.g. "operator []" or "operator ->*"; constructors and destructors
// are plain identifiers reclassified by the declaration parser once their
// shape (matches the enclosing class name, or is prefixed with '~') is
// known.
type CppName struct {
	Kind       NameKind
	Spelling   string
	Tokens     [4]token.Token
	TokenCount int
}

// Valid reports whether a name was actually parsed into this CppName.
func (n CppName) Valid() bool { return n.TokenCount != 0 }

// Program is the root of the AST: every top-level declaration parsed from
// one translation unit, in source order.
type Program struct {
	Decls []Decl
}
