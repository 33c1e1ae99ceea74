// Package tsys is the canonicalizing type-system interner: it turns surface
// type syntax (parsed by package parser) into hash-consed Tsys values, so
// that two structurally identical types always compare equal by pointer.
package tsys

// Kind discriminates the canonical shapes a Tsys can take.
type Kind int

const (
	KindNullptr Kind = iota
	KindZero          // the untyped literal 0
	KindPrimitive
	KindLRef
	KindRRef
	KindPtr
	KindArray
	KindFunction
	KindMember
	KindCV
	KindDecl
)

// PrimitiveKind enumerates the primitive numeric/character kinds a
// Primitive Tsys can carry.
type PrimitiveKind int

const (
	SInt PrimitiveKind = iota
	UInt
	SChar
	UChar
	UWChar
	Bool
	Float
)

// CallingConvention is recorded on function types; it does not affect
// canonicalization decisions beyond being part of the structural key.
type CallingConvention int

const (
	CCNone CallingConvention = iota
	CCCDecl
	CCStdCall
	CCFastCall
	CCThisCall
)

// CV is the const/volatile/constexpr qualifier triple.
type CV struct {
	IsConst     bool
	IsVolatile  bool
	IsConstExpr bool
}

// FunctionQualifiers are the trailing qualifiers a member function's type
// carries: "const", "volatile" and the ref-qualifier ("&" / "&&" / none).
type FunctionQualifiers struct {
	Const     bool
	ConstExpr bool
	Volatile  bool
	LRef      bool
	RRef      bool
}

// Decl is the minimal interface a symbol must satisfy to be wrapped as a
// Decl(symbol) type. It is just identity + a name: tsys does not need (and
// must not import) the full symbol.Symbol type, which keeps the dependency
// one-way (symbol depends on tsys, not the reverse).
type Decl interface {
	Name() string
}

// Tsys is a canonical, interned type value. Equality between two Tsys
// values obtained from the same Arena is pointer equality: the Arena's
// factory methods memoize by structural signature, so constructing the
// "same" type twice returns the same pointer both times.
type Tsys struct {
	kind Kind

	prim     PrimitiveKind
	bytes    int
	element  *Tsys // LRef/RRef/Ptr/Array/Member(element)/CV element
	dim      int   // Array
	class    *Tsys // Member
	cv       CV
	ret      *Tsys
	params   []*Tsys
	cc       CallingConvention
	funcQual FunctionQualifiers
	decl     Decl
}

// Kind returns the discriminant for this type.
func (t *Tsys) Kind() Kind { return t.kind }

// Primitive returns the primitive kind and byte width. Only meaningful
// when Kind() == KindPrimitive.
func (t *Tsys) Primitive() (PrimitiveKind, int) { return t.prim, t.bytes }

// Element returns the pointee/referent/array-element/CV-decorated type.
// Meaningful for LRef, RRef, Ptr, Array, CV and (as the member's value
// type) Member.
func (t *Tsys) Element() *Tsys { return t.element }

// Dim returns the array dimension. Meaningful only for KindArray.
func (t *Tsys) Dim() int { return t.dim }

// Class returns the owning class type. Meaningful only for KindMember.
func (t *Tsys) Class() *Tsys { return t.class }

// CVFlags returns the qualifier triple. Meaningful only for KindCV.
func (t *Tsys) CVFlags() CV { return t.cv }

// Return, Params, CC and FuncQualifiers describe a KindFunction type.
func (t *Tsys) Return() *Tsys                      { return t.ret }
func (t *Tsys) Params() []*Tsys                    { return t.params }
func (t *Tsys) CC() CallingConvention               { return t.cc }
func (t *Tsys) FuncQualifiers() FunctionQualifiers { return t.funcQual }

// Decl returns the symbol a KindDecl type refers to.
func (t *Tsys) Decl() Decl { return t.decl }

// RefKind classifies the reference-ness stripped off by GetEntity.
type RefKind int

const (
	RefNone RefKind = iota
	RefLValue
	RefRValue
)

// GetEntity strips any top-level reference decoration, then any top-level
// CV decoration, and returns the bare underlying type plus the two
// qualifier sets that were stripped off - this is the "entity of" a type
// that member lookup, call resolution and the qualifier filter all work
// against rather than the possibly-decorated surface type.
func (t *Tsys) GetEntity() (entity *Tsys, cv CV, ref RefKind) {
	cur := t
	switch cur.kind {
	case KindLRef:
		ref = RefLValue
		cur = cur.element
	case KindRRef:
		ref = RefRValue
		cur = cur.element
	}
	if cur.kind == KindCV {
		cv = cur.cv
		cur = cur.element
	}
	return cur, cv, ref
}
