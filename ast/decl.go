package ast

// Access classifies a class member's accessibility, carried per-declaration
// as the member parser scans across the (possibly repeated) access
// specifiers.
type Access int

const (
	AccessPublic Access = iota
	AccessProtected
	AccessPrivate
)

// ClassKind distinguishes "class", "struct" and "union".
type ClassKind int

const (
	ClassClass ClassKind = iota
	ClassStruct
	ClassUnion
)

// InitializerKind distinguishes the three shapes of declarator
// initializer: "= expr", "(expr,...)"  and "{expr,...}".
type InitializerKind int

const (
	InitEqual InitializerKind = iota
	InitConstructor
	InitUniversal
)

// Initializer is the value (or value list) attached to a Declarator.
type Initializer struct {
	Kind      InitializerKind
	Arguments []Expr
}

// Declarator is the intermediate structure produced by the declarator
// parser: a type built up from the base type plus any '*'/'&'/'&&'/array
// suffixes, the name it binds (if any), and an optional initializer. It is
// not itself a Decl - the declaration parser turns each Declarator plus the
// shared declaration-specifier sequence into a VariableDecl or FunctionDecl.
type Declarator struct {
	Type        Type
	Name        CppName
	Initializer *Initializer
}

// NamespaceDecl represents "namespace name { decls }". The declaration
// parser desugars nested-namespace syntax "namespace a::b::c {}" into one
// NamespaceDecl per segment, each containing the next in its Decls, with
// only the innermost carrying the body's declarations.
type NamespaceDecl struct {
	Name  CppName
	Decls []Decl
}

func (*NamespaceDecl) isDecl() {}

// UsingNamespaceDecl represents "using namespace QN;".
type UsingNamespaceDecl struct {
	Name QualifiedName
}

func (*UsingNamespaceDecl) isDecl() {}

// UsingAliasDecl represents "using Name = Type;".
type UsingAliasDecl struct {
	Name CppName
	Type Type
}

func (*UsingAliasDecl) isDecl() {}

// EnumEntryDecl is a single "name [= value]" entry of an EnumDecl.
type EnumEntryDecl struct {
	Name  CppName
	Value Expr // nil if the entry did not specify a value
}

// EnumDecl represents "enum [class] name [: type] [{ entries }];". A
// trailing ';' with no body is a forward declaration (IsForward); a body,
// even an empty one, is a definition.
type EnumDecl struct {
	Name       CppName
	IsScoped   bool // "enum class"/"enum struct"
	Underlying Type // optional ": type"
	IsForward  bool
	Entries    []EnumEntryDecl
}

func (*EnumDecl) isDecl() {}

// ClassDecl represents "class|struct|union name [: bases] [{ members }];".
// As with EnumDecl, the absence of a body marks a forward declaration.
type ClassDecl struct {
	Kind      ClassKind
	Name      CppName
	Bases     []Type
	IsForward bool
	Members   []Decl
}

func (*ClassDecl) isDecl() {}

// Decorator flags carried on a single declaration - static, virtual and so
// on. Grouped into one struct because both VariableDecl and FunctionDecl
// need the same set and forward-declaration static-ness lookups need to
// read them uniformly (see typer.isStaticSymbol).
//
// Extern/Friend/Mutable/ThreadLocal/Register round out the full
// declaration-specifier set the original tool accepts (see
// TestParseDecl_Variables's "extern static mutable thread_local register
// int (*v1)();" and TestParseDecl_Functions's "friend extern static
// virtual explicit inline __forceinline int __stdcall Mul(...)" in
// original_source/Tools/CppDoc/UnitTest/TestParseDecl.cpp); spec.md's
// distillation only names static/virtual/explicit/inline.
type Decorators struct {
	Static      bool
	Virtual     bool
	Explicit    bool
	Inline      bool
	ForceInline bool
	Extern      bool
	Friend      bool
	Mutable     bool
	ThreadLocal bool
	Register    bool
	Access      Access // only meaningful for class members
}

// VariableDecl represents one "type name [= init];" binding.
type VariableDecl struct {
	Decorators
	Type        Type
	Name        CppName
	Initializer *Initializer
}

func (*VariableDecl) isDecl() {}

// Parameter is one entry of a FunctionDecl's parameter list.
type Parameter struct {
	Type Type
	Name CppName // may be unnamed (Valid() == false)
}

// CallingConvention names an MSVC-style calling-convention keyword
// recognized directly before a function declarator's name, e.g. the
// "__stdcall" in "int __stdcall Mul(int, int)" (original_source/Tools/
// CppDoc/UnitTest/TestParseDecl.cpp, TestParseDecl_Functions - dropped by
// spec.md's distillation even though spec.md §3/§4.5 already names
// "calling-convention" as part of the canonical Function type).
type CallingConvention int

const (
	CCNone CallingConvention = iota
	CCCDecl
	CCStdCall
	CCFastCall
	CCThisCall
)

// FunctionDecl represents one declared or defined function, method,
// constructor, destructor or conversion operator. The kind of name
// (CppName.Kind) distinguishes constructors/destructors/operators;
// FunctionDecl itself carries no separate discriminator.
type FunctionDecl struct {
	Decorators
	ReturnType    Type // nil for constructors and destructors
	Name          CppName
	Parameters    []Parameter
	Variadic      bool
	CC            CallingConvention
	IsForward     bool // true when the function has no body (";" instead of "{...}")
	IsConstFunc   bool // trailing "const" on a member function
	IsVolFunc     bool // trailing "volatile" on a member function
	IsPureVirtual bool // "= 0" after the parameter list/qualifiers
}

func (*FunctionDecl) isDecl() {}
