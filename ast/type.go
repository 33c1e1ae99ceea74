package ast

// PrimitivePrefix is the signedness prefix recognized ahead of a primitive
// keyword ("signed"/"unsigned"), or none.
type PrimitivePrefix int

const (
	PrefixNone PrimitivePrefix = iota
	PrefixSigned
	PrefixUnsigned
)

// PrimitiveKeyword enumerates the primitive type keywords the short-type
// grammar recognizes.
type PrimitiveKeyword int

const (
	PrimAuto PrimitiveKeyword = iota
	PrimVoid
	PrimBool
	PrimChar
	PrimWChar
	PrimChar16
	PrimChar32
	PrimShort
	PrimInt
	PrimInt8
	PrimInt16
	PrimInt32
	PrimInt64
	PrimFloat
	PrimDouble
	PrimLong
	PrimLongLong
	PrimLongDouble
)

// PrimitiveType is a primitive type keyword with its optional signedness
// prefix, e.g. "unsigned long long".
type PrimitiveType struct {
	Prefix  PrimitivePrefix
	Keyword PrimitiveKeyword
}

func (*PrimitiveType) isType() {}

// DeclType represents "decltype(expr)".
type DeclType struct {
	Expr Expr
}

func (*DeclType) isType() {}

// DecorateType wraps an inner type with one or more of the const,
// constexpr and volatile qualifier keywords. Qualifiers stack: parsing
// "const volatile int" produces a single DecorateType with both flags set
// around the primitive, not nested DecorateTypes, mirroring how the
// long/short-type grammar folds repeated qualifier keywords into the same
// node.
type DecorateType struct {
	Type        Type
	IsConst     bool
	IsConstExpr bool
	IsVolatile  bool
}

func (*DecorateType) isType() {}

// ReferenceKind distinguishes pointer and reference declarator forms.
type ReferenceKind int

const (
	RefPtr ReferenceKind = iota
	RefLRef
	RefRRef
)

// ReferenceType represents a pointer or reference built over an inner type
// by the short-declarator grammar ("*", "&" or "&&").
type ReferenceType struct {
	Kind ReferenceKind
	Type Type
}

func (*ReferenceType) isType() {}

// ArrayType represents a declarator array suffix "type[N]" or the
// unsized "type[]" form.
type ArrayType struct {
	Type Type
	// Dim is the parsed array dimension. A nil Dim means unsized.
	Dim Expr
}

func (*ArrayType) isType() {}

// GenericArgument is one entry of a GenericType's argument list.
type GenericArgument struct {
	Type Type
}

// GenericType represents a named type followed by a template argument list,
// "name < arg, arg, ... >".
type GenericType struct {
	Type      Type
	Arguments []GenericArgument
}

func (*GenericType) isType() {}

// VariadicTemplateArgumentType represents a type followed by "...",
// marking a template parameter pack.
type VariadicTemplateArgumentType struct {
	Type Type
}

func (*VariadicTemplateArgumentType) isType() {}

// NamedType is a user type referenced by (possibly qualified) name, to be
// looked up against the symbol table during resolution.
type NamedType struct {
	Name QualifiedName
}

func (*NamedType) isType() {}

// QualifiedName is a "::"-separated name path, e.g. "a::b::c". Qualified
// lookup walks this one segment at a time via ChildSymbol resolution.
type QualifiedName struct {
	Global   bool // true if the name started with a leading "::"
	Segments []CppName
}
