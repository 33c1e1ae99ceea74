package tsys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cppdoc/cppdoc/tsys"
)

type fakeDecl string

func (f fakeDecl) Name() string { return string(f) }

func TestInterningPointerEquality(t *testing.T) {
	a := tsys.NewArena()

	p1 := a.PrimitiveOf(tsys.SInt, 4)
	p2 := a.PrimitiveOf(tsys.SInt, 4)
	assert.Same(t, p1, p2, "identical structural calls must return the same handle")

	p3 := a.PrimitiveOf(tsys.SInt, 8)
	assert.NotSame(t, p1, p3, "different byte width must not collapse to the same handle")

	ptr1 := a.PtrOf(p1)
	ptr2 := a.PtrOf(a.PrimitiveOf(tsys.SInt, 4))
	assert.Same(t, ptr1, ptr2)

	arr1 := a.ArrayOf(p1, 3)
	arr2 := a.ArrayOf(p1, 3)
	arr3 := a.ArrayOf(p1, 4)
	assert.Same(t, arr1, arr2)
	assert.NotSame(t, arr1, arr3)

	cv1 := a.CVOf(p1, tsys.CV{IsConst: true})
	cv2 := a.CVOf(p1, tsys.CV{IsConst: true})
	assert.Same(t, cv1, cv2)
}

func TestFunctionInterningByStructuralKey(t *testing.T) {
	a := tsys.NewArena()
	ret := a.PrimitiveOf(tsys.SInt, 4)
	p1 := a.PrimitiveOf(tsys.SInt, 4)
	p2 := a.PrimitiveOf(tsys.Bool, 1)

	f1 := a.FunctionOf(ret, []*tsys.Tsys{p1, p2}, tsys.CCNone, tsys.FunctionQualifiers{})
	f2 := a.FunctionOf(ret, []*tsys.Tsys{p1, p2}, tsys.CCNone, tsys.FunctionQualifiers{})
	assert.Same(t, f1, f2)

	f3 := a.FunctionOf(ret, []*tsys.Tsys{p1, p2}, tsys.CCNone, tsys.FunctionQualifiers{Const: true})
	assert.NotSame(t, f1, f3, "differing qualifiers must not collapse")
}

func TestDeclOfKeyedByIdentity(t *testing.T) {
	a := tsys.NewArena()
	d1 := a.DeclOf(fakeDecl("Foo"))
	d2 := a.DeclOf(fakeDecl("Foo"))
	assert.Same(t, d1, d2, "fakeDecl is a comparable string type so equal values key the same")
}

func TestGetEntityStripsRefThenCV(t *testing.T) {
	a := tsys.NewArena()
	prim := a.PrimitiveOf(tsys.SInt, 4)
	cv := a.CVOf(prim, tsys.CV{IsConst: true})
	ref := a.LRefOf(cv)

	entity, gotCV, refKind := ref.GetEntity()
	assert.Same(t, prim, entity)
	assert.True(t, gotCV.IsConst)
	assert.Equal(t, tsys.RefLValue, refKind)
}

func TestGetEntityNoDecoration(t *testing.T) {
	a := tsys.NewArena()
	prim := a.PrimitiveOf(tsys.Bool, 1)
	entity, cv, ref := prim.GetEntity()
	assert.Same(t, prim, entity)
	assert.Equal(t, tsys.CV{}, cv)
	assert.Equal(t, tsys.RefNone, ref)
}

func TestTestParameterExactAndTrivial(t *testing.T) {
	a := tsys.NewArena()
	prim := a.PrimitiveOf(tsys.SInt, 4)
	cvPrim := a.CVOf(prim, tsys.CV{IsConst: true})

	assert.Equal(t, tsys.Exact, prim.TestParameter(prim))
	assert.Equal(t, tsys.TrivialConversion, prim.TestParameter(cvPrim), "same entity under cv decoration is trivial")
}

func TestTestParameterIntegralPromotionAndStandard(t *testing.T) {
	a := tsys.NewArena()
	sint := a.PrimitiveOf(tsys.SInt, 4)
	uchar := a.PrimitiveOf(tsys.UChar, 1)
	float := a.PrimitiveOf(tsys.Float, 4)

	assert.Equal(t, tsys.IntegralPromotion, sint.TestParameter(uchar))
	assert.Equal(t, tsys.StandardConversion, sint.TestParameter(float))
}

func TestTestParameterNullptrToPointer(t *testing.T) {
	a := tsys.NewArena()
	ptr := a.PtrOf(a.PrimitiveOf(tsys.SInt, 4))
	assert.Equal(t, tsys.StandardConversion, ptr.TestParameter(a.Nullptr()))
	assert.Equal(t, tsys.StandardConversion, ptr.TestParameter(a.Zero()))
}

func TestTestFunctionQualifierDirectAndIllegal(t *testing.T) {
	constFn := tsys.FunctionQualifiers{Const: true}
	nonConstFn := tsys.FunctionQualifiers{}

	// calling a const member function through a const receiver: exact match.
	assert.Equal(t, tsys.Direct, tsys.TestFunctionQualifier(tsys.CV{IsConst: true}, false, constFn))
	// calling a non-const member function through a const receiver: illegal.
	assert.Equal(t, tsys.Illegal, tsys.TestFunctionQualifier(tsys.CV{IsConst: true}, false, nonConstFn))
	// calling a const function through a non-const receiver: legal but not exact.
	assert.Equal(t, tsys.NeedConvertion, tsys.TestFunctionQualifier(tsys.CV{}, false, constFn))
}

func TestTestFunctionQualifierRefQualifiers(t *testing.T) {
	rvalOnly := tsys.FunctionQualifiers{RRef: true}
	lvalOnly := tsys.FunctionQualifiers{LRef: true}

	assert.Equal(t, tsys.Illegal, tsys.TestFunctionQualifier(tsys.CV{}, false, rvalOnly), "lvalue call into an rvalue-only overload is illegal")
	assert.Equal(t, tsys.Illegal, tsys.TestFunctionQualifier(tsys.CV{}, true, lvalOnly), "rvalue call into an lvalue-only overload is illegal")
	assert.Equal(t, tsys.Direct, tsys.TestFunctionQualifier(tsys.CV{}, true, rvalOnly))
}

func TestFilterFunctionByQualifierPrefersExactQualifierMatch(t *testing.T) {
	// Given a const and a non-const "operator bool()", calling through a
	// const receiver selects only the const overload; through a non-const
	// receiver both are candidates but the non-const one wins.
	type candidate struct {
		name string
	}
	funcs := []candidate{{"const"}, {"nonconst"}}
	quals := []tsys.FunctionQualifiers{{Const: true}, {}}

	onConst := tsys.FilterFunctionByQualifier(funcs, quals, tsys.CV{IsConst: true}, false)
	assert.Len(t, onConst, 1)
	assert.Equal(t, "const", onConst[0].name)

	onNonConst := tsys.FilterFunctionByQualifier(funcs, quals, tsys.CV{}, false)
	assert.Len(t, onNonConst, 1)
	assert.Equal(t, "nonconst", onNonConst[0].name, "the exact-qualifier-match overload must win over NeedConvertion")
}

func TestFilterFunctionByQualifierAllIllegalYieldsNil(t *testing.T) {
	// Const-mismatch is the only Illegal trigger exercised here: the
	// volatile leg of TestFunctionQualifier reproduces the original tool's
	// bug (dV is copied from thisCV rather than read from the candidate's
	// declared qualifier), so IsVolatile alone can never make a candidate
	// Illegal - see TestTestFunctionQualifierVolatileNeverDistinguishes.
	type candidate struct{}
	funcs := []candidate{{}}
	quals := []tsys.FunctionQualifiers{{}}
	out := tsys.FilterFunctionByQualifier(funcs, quals, tsys.CV{IsConst: true}, false)
	assert.Nil(t, out)
}

func TestTestFunctionQualifierVolatileNeverDistinguishes(t *testing.T) {
	// Reproduces the original tool's TestFunctionQualifier bug
	// (Ast_Expr_ExprToTsys.cpp: `bool dV = thisCV.isVolatile;`, never
	// reading the candidate's declared volatile qualifier). A volatile
	// receiver calling a non-volatile-qualified function is never Illegal,
	// and scores Direct rather than NeedConvertion, because tV == dV holds
	// unconditionally.
	nonVolatileFn := tsys.FunctionQualifiers{}
	volatileFn := tsys.FunctionQualifiers{Volatile: true}

	assert.Equal(t, tsys.Direct, tsys.TestFunctionQualifier(tsys.CV{IsVolatile: true}, false, nonVolatileFn))
	assert.Equal(t, tsys.Direct, tsys.TestFunctionQualifier(tsys.CV{}, false, volatileFn))
}
