package tsys

// TsysConv ranks how well an argument type converts to a parameter type.
// Lower is better; FilterFunctionByQualifier and VisitOverloadedFunction
// both pick survivors by taking the minimum over a candidate set, so the
// numeric order here is load-bearing, not cosmetic.
//
// Note this is NOT simply the source's textual listing order of the
// conversion kinds: Direct and NeedConvertion are qualifier-filter results
// (see TestFunctionQualifier below), and the qualifier filter's own
// survivor-selection needs Exact-like results to beat Direct to beat
// NeedConvertion to beat Illegal. Numbering the kinds in prose-listing
// order would make NeedConvertion rank ahead of Direct and silently break
// both FilterFunctionByQualifier and overload scoring whenever qualifier
// results are compared alongside argument-conversion results. This order
// is the one the algorithms require.
type TsysConv int

const (
	Exact TsysConv = iota
	TrivialConversion
	IntegralPromotion
	StandardConversion
	UserDefined
	Ellipsis
	Direct
	NeedConvertion
	Illegal
)

// TestParameter scores how well arg converts to the parameter type t.
func (t *Tsys) TestParameter(arg *Tsys) TsysConv {
	if t == arg {
		return Exact
	}

	entity, _, _ := t.GetEntity()
	argEntity, _, _ := arg.GetEntity()

	if entity == argEntity {
		return TrivialConversion
	}

	if entity.kind == KindPrimitive && argEntity.kind == KindPrimitive {
		if entity.prim == argEntity.prim {
			return TrivialConversion
		}
		if isIntegral(entity.prim) && isIntegral(argEntity.prim) {
			return IntegralPromotion
		}
		return StandardConversion
	}

	if (entity.kind == KindPtr || entity.kind == KindLRef || entity.kind == KindRRef) &&
		(argEntity.kind == KindNullptr || argEntity.kind == KindZero) {
		return StandardConversion
	}

	if entity.kind == KindDecl && argEntity.kind == KindDecl {
		return UserDefined
	}

	return NeedConvertion
}

func isIntegral(p PrimitiveKind) bool {
	switch p {
	case SInt, UInt, SChar, UChar, UWChar, Bool:
		return true
	}
	return false
}

// TestFunctionQualifier scores how well a call through a this-qualifier of
// thisCV/thisRef matches a member function qualified with funcCV/funcQual.
//
// Illegal when: the call site is const but the function is not; the call
// site is volatile but the function is not (never true, see below); the
// call site is an rvalue and the function is ref-qualified & but not &&;
// the call site is an lvalue and the function is ref-qualified && but not
// &. A function with no ref-qualifier accepts both lvalues and rvalues.
// Direct when a legal call's const and volatile qualifiers match exactly;
// the ref-qualifiers do not affect the score. NeedConvertion covers the
// remaining legal case: a non-const call site reaching a const function.
//
// Volatile check reproduces the original tool's bug (Ast_Expr_ExprToTsys.cpp,
// TestFunctionQualifier): `dV` is read from the call-site's own `thisCV`
// instead of the candidate's declared qualifier, so `tV == dV` always and
// volatile never participates in Illegal/Direct/NeedConvertion scoring. See
// DESIGN.md Open Question 2 for why this is preserved rather than fixed.
func TestFunctionQualifier(thisCV CV, thisIsRValue bool, funcQual FunctionQualifiers) TsysConv {
	tV := thisCV.IsVolatile
	dV := thisCV.IsVolatile

	if thisCV.IsConst && !funcQual.Const {
		return Illegal
	}
	if tV && !dV {
		return Illegal
	}

	hasRefQual := funcQual.LRef || funcQual.RRef

	if thisIsRValue {
		if hasRefQual && !funcQual.RRef {
			return Illegal
		}
	} else {
		if funcQual.RRef && !funcQual.LRef {
			return Illegal
		}
	}

	exact := thisCV.IsConst == funcQual.Const && tV == dV
	if exact {
		return Direct
	}
	return NeedConvertion
}

// FilterFunctionByQualifier keeps only the candidates in funcs whose
// TestFunctionQualifier score, read against quals[i], ties the minimum
// (best) score in the set.
func FilterFunctionByQualifier[T any](funcs []T, quals []FunctionQualifiers, thisCV CV, thisIsRValue bool) []T {
	if len(funcs) == 0 {
		return nil
	}
	scores := make([]TsysConv, len(funcs))
	best := Illegal
	for i := range funcs {
		scores[i] = TestFunctionQualifier(thisCV, thisIsRValue, quals[i])
		if scores[i] < best {
			best = scores[i]
		}
	}
	if best == Illegal {
		return nil
	}
	var out []T
	for i, f := range funcs {
		if scores[i] == best {
			out = append(out, f)
		}
	}
	return out
}
