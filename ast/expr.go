package ast

import "github.com/cppdoc/cppdoc/token"

// LiteralKind classifies a LiteralExpr by how the expression typer must
// read its spelling.
type LiteralKind int

const (
	LitInt LiteralKind = iota
	LitFloat
	LitString
	LitChar
	LitBool
)

// LiteralExpr is a literal constant: an integer, float, string, char or
// boolean token. The typer reads Spelling (and, for bools, Value) to pick
// the canonical type - see typer.literal.
type LiteralExpr struct {
	Kind     LiteralKind
	Spelling string
	Value    bool // meaningful only when Kind == LitBool
}

func (*LiteralExpr) isExpr() {}

// NullptrExpr represents the "nullptr" literal.
type NullptrExpr struct{}

func (*NullptrExpr) isExpr() {}

// ThisExpr represents the "this" keyword. Reserved: the typer returns no
// types (nil) for it (see §9 Open Questions - the source throws a bare
// sentinel here, and it isn't clear if that was deliberate or just
// unimplemented; this keeps the same observable gap).
type ThisExpr struct{}

func (*ThisExpr) isExpr() {}

// TypeidExpr represents "typeid(...)". Reserved, see ThisExpr.
type TypeidExpr struct {
	Operand Expr
}

func (*TypeidExpr) isExpr() {}

// ParenthesisExpr represents a parenthesized sub-expression. Reserved, see
// ThisExpr - note this is distinct from Group declarator-parenthesization;
// this one wraps a value expression, not a declarator.
type ParenthesisExpr struct {
	Expr Expr
}

func (*ParenthesisExpr) isExpr() {}

// CastExpr represents "(Type)expr" or "static_cast<Type>(expr)"-shaped
// reinterpretation: the source expression is typed (and discarded) and the
// target Type supplies the result.
type CastExpr struct {
	Type Type
	Expr Expr
}

func (*CastExpr) isExpr() {}

// IdExpr is a bare name looked up with SymbolAccessableInScope (the
// "does this name resolve in the current scope, walking outward" policy).
type IdExpr struct {
	Name CppName
}

func (*IdExpr) isExpr() {}

// ChildExpr is a name looked up with ChildSymbol against an explicit scope,
// i.e. the right-hand side of "A::B".
type ChildExpr struct {
	Scope Type // the qualifying scope, parsed as a NamedType
	Name  CppName
}

func (*ChildExpr) isExpr() {}

// FieldAccessKind distinguishes "." from "->".
type FieldAccessKind int

const (
	FieldDot FieldAccessKind = iota
	FieldArrow
)

// FieldAccessExpr represents "x.f" or "x->f".
type FieldAccessExpr struct {
	Kind FieldAccessKind
	Expr Expr
	Name CppName
}

func (*FieldAccessExpr) isExpr() {}

// ArrayAccessExpr represents "a[i]".
type ArrayAccessExpr struct {
	Expr  Expr
	Index Expr
}

func (*ArrayAccessExpr) isExpr() {}

// CallExpr represents "f(args...)" - a function call, or, when Type is set
// instead of Expr, a functional-style cast "Type(args...)".
type CallExpr struct {
	Type      Type
	Expr      Expr
	Arguments []Expr
}

func (*CallExpr) isExpr() {}

// UnaryOp represents a prefix unary operator expression.
type UnaryOp struct {
	Operator token.Kind
	Operand  Expr
}

func (*UnaryOp) isExpr() {}

// BinaryOp represents an infix binary operator expression.
type BinaryOp struct {
	Operator token.Kind
	LHS      Expr
	RHS      Expr
}

func (*BinaryOp) isExpr() {}
