// Package typer is the expression typer: it walks an ast.Expr and produces
// the set of canonical types (and the symbol, if any, that produced each
// one) the expression can have at a given point in the program. A value
// expression is inherently multi-valued here - overloads and multi-bound
// names via using-namespace both widen a single expression to a set of
// candidate typings - so every entry point returns a slice, never a single
// value.
package typer

import (
	"strings"

	"github.com/cppdoc/cppdoc/ast"
	"github.com/cppdoc/cppdoc/index"
	"github.com/cppdoc/cppdoc/resolve"
	"github.com/cppdoc/cppdoc/symbol"
	"github.com/cppdoc/cppdoc/token"
	"github.com/cppdoc/cppdoc/tsys"
)

// ExprTsysItem pairs an optional contributing symbol with the canonical
// type it produced. nil Symbol means the typing did not come from a
// resolved name (a literal, a cast target, ...).
type ExprTsysItem struct {
	Symbol *symbol.Symbol
	Type   *tsys.Tsys
}

// Context bundles the per-parsing-context state the typer needs: the type
// interner every canonical type is drawn from, and the index recorder
// every resolved name is reported to.
type Context struct {
	Arena    *tsys.Arena
	Recorder index.Recorder
}

// NewContext returns a Context wired to arena, recording to rec (use
// index.Null{} to disable recording).
func NewContext(arena *tsys.Arena, rec index.Recorder) *Context {
	if rec == nil {
		rec = index.Null{}
	}
	return &Context{Arena: arena, Recorder: rec}
}

// ExprToTsys types expr as evaluated from scope. A failure to type the
// expression (IllegalExpr, NotConvertable, NotImplemented in the sense of
// §9's open question) is represented by a nil/empty return, never an error
// value - see the package doc of the root module on why parse faults and
// typing failures are not conflated.
func (c *Context) ExprToTsys(scope *symbol.Symbol, expr ast.Expr) []ExprTsysItem {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return c.literal(e)
	case *ast.NullptrExpr:
		return []ExprTsysItem{{Type: c.Arena.Nullptr()}}
	case *ast.ThisExpr, *ast.TypeidExpr, *ast.ParenthesisExpr:
		// Reserved extension points (§9 Open Questions): the source fails
		// these with a bare sentinel and it is unclear whether that was
		// deliberate. Preserve the observable gap rather than guess at a
		// result shape.
		return nil
	case *ast.CastExpr:
		c.ExprToTsys(scope, e.Expr) // typed and discarded
		t := c.resolveType(scope, e.Type)
		if t == nil {
			return nil
		}
		return []ExprTsysItem{{Type: t}}
	case *ast.IdExpr:
		return c.visitName(scope, e.Name, resolve.SymbolAccessableInScope, scope, CV{})
	case *ast.ChildExpr:
		scopeType := c.resolveType(scope, e.Scope)
		if scopeType == nil {
			return nil
		}
		entity, _, _ := scopeType.GetEntity()
		classSym := declSymbol(entity)
		if classSym == nil {
			return nil
		}
		return c.visitName(scope, e.Name, resolve.ChildSymbol, classSym, CV{})
	case *ast.FieldAccessExpr:
		return c.fieldAccess(scope, e)
	case *ast.ArrayAccessExpr:
		return c.arrayAccess(scope, e)
	case *ast.CallExpr:
		return c.call(scope, e)
	case *ast.UnaryOp:
		return c.unary(scope, e)
	case *ast.BinaryOp:
		return c.binary(scope, e)
	default:
		return nil
	}
}

// CV is the qualifier state of a "this" at a call or access site -
// distinct from tsys.CV only in that it also carries value-category
// (lvalue/rvalue), which qualifier filtering needs alongside const/volatile.
type CV struct {
	tsys.CV
	IsRValue bool
}

func declSymbol(entity *tsys.Tsys) *symbol.Symbol {
	if entity.Kind() != tsys.KindDecl {
		return nil
	}
	sym, _ := entity.Decl().(*symbol.Symbol)
	return sym
}

// resolveType canonicalizes a surface ast.Type into a *tsys.Tsys. It covers
// primitives, cv-decoration, pointers/references, arrays, decltype and
// named-type lookups through scope; any other form yields nil. The typer
// uses it for cast targets, qualified-scope operands, and the declared
// types of variables, function returns and parameters; the parser does no
// tsys resolution of its own.
func (c *Context) resolveType(scope *symbol.Symbol, t ast.Type) *tsys.Tsys {
	switch n := t.(type) {
	case *ast.PrimitiveType:
		kind, bytes := primitiveOf(n)
		return c.Arena.PrimitiveOf(kind, bytes)
	case *ast.DecorateType:
		inner := c.resolveType(scope, n.Type)
		if inner == nil {
			return nil
		}
		if !n.IsConst && !n.IsConstExpr && !n.IsVolatile {
			return inner
		}
		return c.Arena.CVOf(inner, tsys.CV{IsConst: n.IsConst, IsVolatile: n.IsVolatile, IsConstExpr: n.IsConstExpr})
	case *ast.ReferenceType:
		inner := c.resolveType(scope, n.Type)
		if inner == nil {
			return nil
		}
		switch n.Kind {
		case ast.RefPtr:
			return c.Arena.PtrOf(inner)
		case ast.RefLRef:
			return c.Arena.LRefOf(inner)
		default:
			return c.Arena.RRefOf(inner)
		}
	case *ast.ArrayType:
		inner := c.resolveType(scope, n.Type)
		if inner == nil {
			return nil
		}
		dim := 0
		if lit, ok := n.Dim.(*ast.LiteralExpr); ok && lit.Kind == ast.LitInt {
			dim = parseIntLiteral(lit.Spelling)
		}
		return c.Arena.ArrayOf(inner, dim)
	case *ast.NamedType:
		results := resolve.ResolveQualifiedName(scope, n.Name)
		for _, r := range results {
			return c.Arena.DeclOf(r.Symbol)
		}
		return nil
	case *ast.DeclType:
		items := c.ExprToTsys(scope, n.Expr)
		if len(items) == 0 {
			return nil
		}
		return items[0].Type
	default:
		return nil
	}
}

func primitiveOf(p *ast.PrimitiveType) (tsys.PrimitiveKind, int) {
	switch p.Keyword {
	case ast.PrimBool:
		return tsys.Bool, 1
	case ast.PrimChar:
		if p.Prefix == ast.PrefixUnsigned {
			return tsys.UChar, 1
		}
		return tsys.SChar, 1
	case ast.PrimWChar, ast.PrimChar16:
		return tsys.UWChar, 2
	case ast.PrimChar32:
		return tsys.UWChar, 4
	case ast.PrimFloat:
		return tsys.Float, 4
	case ast.PrimDouble, ast.PrimLongDouble:
		return tsys.Float, 8
	case ast.PrimShort:
		if p.Prefix == ast.PrefixUnsigned {
			return tsys.UInt, 2
		}
		return tsys.SInt, 2
	case ast.PrimInt64, ast.PrimLong, ast.PrimLongLong:
		if p.Prefix == ast.PrefixUnsigned {
			return tsys.UInt, 8
		}
		return tsys.SInt, 8
	default:
		if p.Prefix == ast.PrefixUnsigned {
			return tsys.UInt, 4
		}
		return tsys.SInt, 4
	}
}

// literal classifies a literal token by leading character and suffix, per
// spec §4.6.
func (c *Context) literal(e *ast.LiteralExpr) []ExprTsysItem {
	switch e.Kind {
	case ast.LitInt:
		spelling := e.Spelling
		if isZeroLiteral(spelling) {
			return []ExprTsysItem{{Type: c.Arena.Zero()}}
		}
		unsigned, wide := intSuffix(spelling)
		kind := tsys.SInt
		if unsigned {
			kind = tsys.UInt
		}
		bytes := 4
		if wide {
			bytes = 8
		}
		return []ExprTsysItem{{Type: c.Arena.PrimitiveOf(kind, bytes)}}
	case ast.LitFloat:
		bytes := 8
		if strings.ContainsAny(e.Spelling, "fF") {
			bytes = 4
		}
		return []ExprTsysItem{{Type: c.Arena.PrimitiveOf(tsys.Float, bytes)}}
	case ast.LitBool:
		return []ExprTsysItem{{Type: c.Arena.PrimitiveOf(tsys.Bool, 1)}}
	case ast.LitChar:
		kind, bytes := charPrefixKind(e.Spelling)
		return []ExprTsysItem{{Type: c.Arena.PrimitiveOf(kind, bytes)}}
	case ast.LitString:
		kind, bytes := charPrefixKind(e.Spelling)
		elem := c.Arena.PrimitiveOf(kind, bytes)
		cv := c.Arena.CVOf(elem, tsys.CV{IsConst: true})
		return []ExprTsysItem{{Type: c.Arena.ArrayOf(cv, 1)}}
	default:
		return nil
	}
}

func parseIntLiteral(spelling string) int {
	n := 0
	for _, r := range spelling {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func isZeroLiteral(spelling string) bool {
	for _, r := range spelling {
		switch r {
		case '0':
			continue
		case 'u', 'U', 'l', 'L':
			return true
		default:
			return false
		}
	}
	return true
}

func intSuffix(spelling string) (unsigned, wide bool) {
	for _, r := range spelling {
		switch r {
		case 'u', 'U':
			unsigned = true
		case 'l', 'L':
			wide = true
		}
	}
	return
}

func charPrefixKind(spelling string) (tsys.PrimitiveKind, int) {
	switch {
	case strings.HasPrefix(spelling, "u8"):
		return tsys.UChar, 1
	case strings.HasPrefix(spelling, "U"):
		return tsys.UWChar, 4
	case strings.HasPrefix(spelling, "u"):
		return tsys.UWChar, 2
	case strings.HasPrefix(spelling, "L"):
		return tsys.UWChar, 2
	default:
		return tsys.SChar, 1
	}
}

// visitName resolves name against root under policy, then materializes
// each resolved symbol via VisitSymbol, reporting the resolution to the
// recorder.
func (c *Context) visitName(enclosing *symbol.Symbol, name ast.CppName, policy resolve.SearchPolicy, root *symbol.Symbol, addedCV CV) []ExprTsysItem {
	results := resolve.ResolveSymbol(root, name.Spelling, policy)
	if len(results) == 0 {
		c.Recorder.ExpectValueButType(name, results)
		return nil
	}
	c.Recorder.Index(name, results)

	var out []ExprTsysItem
	for _, r := range results {
		out = append(out, c.VisitSymbol(r.Symbol, enclosing, addedCV)...)
	}
	return out
}

// VisitSymbol materializes sym's canonical type(s) as seen from the
// context described by enclosing (the scope the access happened in) and
// addedCV (cv-qualifiers to add when a variable is read as a plain,
// non-scope-accessed lvalue).
func (c *Context) VisitSymbol(sym *symbol.Symbol, enclosing *symbol.Symbol, addedCV CV) []ExprTsysItem {
	decls := allDecls(sym)
	scopeAccessed := enclosing != sym.Parent()

	var out []ExprTsysItem
	for _, decl := range decls {
		switch d := decl.(type) {
		case *ast.VariableDecl:
			t := c.resolveType(sym.Parent(), d.Type)
			if t == nil {
				continue
			}
			if t.Kind() == tsys.KindMember && t.Class() != nil && declSymbol(t.Class()) == sym.Parent() {
				t = t.Element()
			}
			static := isStaticSymbol(sym)
			if !static && scopeAccessed {
				classSym := sym.Parent()
				t = c.Arena.MemberOf(c.Arena.DeclOf(classSym), t)
			} else {
				if addedCV.IsConst || addedCV.IsVolatile || addedCV.IsConstExpr {
					t = c.Arena.CVOf(t, addedCV.CV)
				}
				t = c.Arena.LRefOf(t)
			}
			out = append(out, ExprTsysItem{Symbol: sym, Type: t})
		case *ast.FunctionDecl:
			t := c.functionTsys(sym.Parent(), d)
			if t == nil {
				continue
			}
			static := isStaticSymbol(sym)
			if !static && scopeAccessed {
				classSym := sym.Parent()
				t = c.Arena.PtrOf(c.Arena.MemberOf(c.Arena.DeclOf(classSym), t))
			} else {
				t = c.Arena.PtrOf(t)
			}
			out = append(out, ExprTsysItem{Symbol: sym, Type: t})
		case *ast.ClassDecl, *ast.EnumDecl, *ast.NamespaceDecl:
			out = append(out, ExprTsysItem{Symbol: sym, Type: c.Arena.DeclOf(sym)})
		}
	}
	return out
}

// allDecls expands sym to its own declarations plus, when sym is a forward
// declaration root, every forward's declarations too - VisitSymbol needs
// the full candidate set, not just whichever single decl happened to sit
// on this Symbol.
func allDecls(sym *symbol.Symbol) []ast.Decl {
	out := append([]ast.Decl(nil), sym.Decls...)
	for _, fwd := range sym.ForwardDeclarations {
		out = append(out, fwd.Decls...)
	}
	return out
}

// isStaticSymbol scans sym's declaration and every forward for the static
// decorator - a symbol is static if any of its declarations says so.
func isStaticSymbol(sym *symbol.Symbol) bool {
	for _, d := range allDecls(sym) {
		switch v := d.(type) {
		case *ast.VariableDecl:
			if v.Static {
				return true
			}
		case *ast.FunctionDecl:
			if v.Static {
				return true
			}
		}
	}
	return false
}

func (c *Context) functionTsys(scope *symbol.Symbol, d *ast.FunctionDecl) *tsys.Tsys {
	var ret *tsys.Tsys
	if d.ReturnType != nil {
		ret = c.resolveType(scope, d.ReturnType)
		if ret == nil {
			return nil
		}
	} else {
		ret = c.Arena.PrimitiveOf(tsys.SInt, 4) // constructors/destructors: no real return type is observed
	}
	params := make([]*tsys.Tsys, 0, len(d.Parameters))
	for _, p := range d.Parameters {
		pt := c.resolveType(scope, p.Type)
		if pt == nil {
			return nil
		}
		params = append(params, pt)
	}
	quals := tsys.FunctionQualifiers{Const: d.IsConstFunc, Volatile: d.IsVolFunc}
	return c.Arena.FunctionOf(ret, params, callingConventionTsys(d.CC), quals)
}

// callingConventionTsys maps the ast-level calling-convention keyword
// (recognized by the parser, e.g. "__stdcall") onto the interner's
// CallingConvention value.
func callingConventionTsys(cc ast.CallingConvention) tsys.CallingConvention {
	switch cc {
	case ast.CCCDecl:
		return tsys.CCCDecl
	case ast.CCStdCall:
		return tsys.CCStdCall
	case ast.CCFastCall:
		return tsys.CCFastCall
	case ast.CCThisCall:
		return tsys.CCThisCall
	default:
		return tsys.CCNone
	}
}

// fieldAccess implements "x.f" and "x->f" per spec §4.6.
func (c *Context) fieldAccess(scope *symbol.Symbol, e *ast.FieldAccessExpr) []ExprTsysItem {
	receivers := c.ExprToTsys(scope, e.Expr)
	if e.Kind == ast.FieldArrow {
		receivers = c.resolveArrow(receivers, map[*tsys.Tsys]bool{})
	}

	var out []ExprTsysItem
	for _, r := range receivers {
		entity, cv, ref := r.Type.GetEntity()
		classSym := declSymbol(entity)
		if classSym == nil {
			continue
		}
		results := resolve.ResolveSymbol(classSym, e.Name.Spelling, resolve.ChildSymbol)
		if len(results) == 0 {
			c.Recorder.ExpectValueButType(e.Name, results)
			continue
		}
		c.Recorder.Index(e.Name, results)
		rvalue := ref == tsys.RefRValue
		for _, res := range results {
			items := c.VisitSymbol(res.Symbol, classSym, CV{CV: cv, IsRValue: rvalue})
			out = append(out, filterByQualifier(items, cv, rvalue)...)
		}
	}
	return out
}

// resolveArrow follows "->" through pointer elements directly, and through
// class entities by repeated operator-> lookup, terminating the chain the
// first time an already-visited class entity reappears.
func (c *Context) resolveArrow(receivers []ExprTsysItem, visited map[*tsys.Tsys]bool) []ExprTsysItem {
	var out []ExprTsysItem
	for _, r := range receivers {
		entity, cv, ref := r.Type.GetEntity()
		if entity.Kind() == tsys.KindPtr {
			out = append(out, ExprTsysItem{Symbol: r.Symbol, Type: entity.Element()})
			continue
		}
		classSym := declSymbol(entity)
		if classSym == nil || visited[entity] {
			continue
		}
		visited[entity] = true
		rvalue := ref == tsys.RefRValue
		results := resolve.ResolveSymbol(classSym, "operator ->", resolve.ChildSymbol)
		var candidates []ExprTsysItem
		for _, res := range results {
			candidates = append(candidates, c.VisitSymbol(res.Symbol, classSym, CV{CV: cv, IsRValue: rvalue})...)
		}
		candidates = filterByQualifier(candidates, cv, rvalue)
		var returns []ExprTsysItem
		for _, cand := range candidates {
			if cand.Type.Kind() != tsys.KindPtr {
				continue
			}
			fn, _, _ := cand.Type.Element().GetEntity()
			if fn.Kind() != tsys.KindFunction {
				continue
			}
			returns = append(returns, ExprTsysItem{Symbol: cand.Symbol, Type: fn.Return()})
		}
		out = append(out, c.resolveArrow(returns, visited)...)
	}
	return out
}

func filterByQualifier(items []ExprTsysItem, thisCV tsys.CV, thisIsRValue bool) []ExprTsysItem {
	if len(items) == 0 {
		return nil
	}
	scores := make([]tsys.TsysConv, len(items))
	best := tsys.Illegal
	for i, it := range items {
		quals := tsys.FunctionQualifiers{}
		if it.Type.Kind() == tsys.KindPtr {
			if fn := ptrFunction(it.Type); fn != nil {
				quals = fn.FuncQualifiers()
			}
		}
		scores[i] = tsys.TestFunctionQualifier(thisCV, thisIsRValue, quals)
		if scores[i] < best {
			best = scores[i]
		}
	}
	if best == tsys.Illegal {
		return nil
	}
	var out []ExprTsysItem
	for i, it := range items {
		if scores[i] == best {
			out = append(out, it)
		}
	}
	return out
}

func ptrFunction(t *tsys.Tsys) *tsys.Tsys {
	elem := t.Element()
	if elem == nil {
		return nil
	}
	if elem.Kind() == tsys.KindMember {
		elem = elem.Element()
	}
	if elem != nil && elem.Kind() == tsys.KindFunction {
		return elem
	}
	return nil
}

// arrayAccess implements "a[i]" per spec §4.6.
func (c *Context) arrayAccess(scope *symbol.Symbol, e *ast.ArrayAccessExpr) []ExprTsysItem {
	receivers := c.ExprToTsys(scope, e.Expr)
	args := c.ExprToTsys(scope, e.Index)
	argTypes := typesOf(args)

	var out []ExprTsysItem
	for _, r := range receivers {
		entity, _, _ := r.Type.GetEntity()
		switch entity.Kind() {
		case tsys.KindArray:
			out = append(out, ExprTsysItem{Type: entity.Element()})
		case tsys.KindPtr:
			out = append(out, ExprTsysItem{Type: entity.Element()})
		default:
			classSym := declSymbol(entity)
			if classSym == nil {
				continue
			}
			results := resolve.ResolveSymbol(classSym, "operator []", resolve.ChildSymbol)
			var candidates []ExprTsysItem
			for _, res := range results {
				candidates = append(candidates, c.VisitSymbol(res.Symbol, classSym, CV{})...)
			}
			out = append(out, c.resolveOverloadedCall(candidates, [][]*tsys.Tsys{argTypes})...)
		}
	}
	return out
}

func typesOf(items []ExprTsysItem) []*tsys.Tsys {
	out := make([]*tsys.Tsys, 0, len(items))
	for _, it := range items {
		out = append(out, it.Type)
	}
	return out
}

// call implements "f(args...)" per spec §4.6: cast-style when the callee
// names a type, otherwise overload resolution over every function-typed or
// operator()-bearing candidate the callee expression can produce.
func (c *Context) call(scope *symbol.Symbol, e *ast.CallExpr) []ExprTsysItem {
	argSets := make([][]*tsys.Tsys, 0, len(e.Arguments))
	for _, arg := range e.Arguments {
		argSets = append(argSets, typesOf(c.ExprToTsys(scope, arg)))
	}

	if e.Type != nil {
		for _, arg := range e.Arguments {
			c.ExprToTsys(scope, arg)
		}
		t := c.resolveType(scope, e.Type)
		if t == nil {
			return nil
		}
		return []ExprTsysItem{{Type: t}}
	}

	callees := c.ExprToTsys(scope, e.Expr)
	candidates := c.findQualifiedFunctions(callees)
	return c.resolveOverloadedCall(candidates, argSets)
}

// findQualifiedFunctions expands a receiver set into the function-typed
// candidates a call can dispatch to: function pointers/values pass
// through, class entities are expanded via operator().
func (c *Context) findQualifiedFunctions(receivers []ExprTsysItem) []ExprTsysItem {
	var out []ExprTsysItem
	for _, r := range receivers {
		entity, cv, ref := r.Type.GetEntity()
		fn := entity
		if fn.Kind() == tsys.KindPtr {
			fn, _, _ = fn.Element().GetEntity()
		}
		if fn.Kind() == tsys.KindMember {
			fn, _, _ = fn.Element().GetEntity()
		}
		if fn.Kind() == tsys.KindFunction {
			out = append(out, r)
			continue
		}
		classSym := declSymbol(entity)
		if classSym == nil {
			continue
		}
		rvalue := ref == tsys.RefRValue
		results := resolve.ResolveSymbol(classSym, "operator ()", resolve.ChildSymbol)
		var candidates []ExprTsysItem
		for _, res := range results {
			candidates = append(candidates, c.VisitSymbol(res.Symbol, classSym, CV{CV: cv, IsRValue: rvalue})...)
		}
		out = append(out, filterByQualifier(candidates, cv, rvalue)...)
	}
	return out
}

// resolveOverloadedCall implements VisitOverloadedFunction: score each
// candidate by its worst per-parameter TestParameter result over the
// argument type sets, prune arity mismatches as Illegal, and keep every
// candidate tied at the best score.
func (c *Context) resolveOverloadedCall(candidates []ExprTsysItem, argSets [][]*tsys.Tsys) []ExprTsysItem {
	type scored struct {
		item  ExprTsysItem
		ret   *tsys.Tsys
		score tsys.TsysConv
	}
	var all []scored
	best := tsys.Illegal
	for _, cand := range candidates {
		fn := ptrFunction(cand.Type)
		if fn == nil {
			fn2, _, _ := cand.Type.GetEntity()
			if fn2.Kind() == tsys.KindFunction {
				fn = fn2
			}
		}
		if fn == nil {
			continue
		}
		params := fn.Params()
		if len(params) != len(argSets) {
			continue
		}
		score := tsys.Exact
		for i, param := range params {
			paramBest := tsys.Illegal
			for _, arg := range argSets[i] {
				s := param.TestParameter(arg)
				if s < paramBest {
					paramBest = s
				}
			}
			if len(argSets[i]) == 0 {
				paramBest = tsys.Illegal
			}
			if paramBest > score {
				score = paramBest
			}
		}
		if score < best {
			best = score
		}
		all = append(all, scored{item: cand, ret: fn.Return(), score: score})
	}
	if best == tsys.Illegal {
		return nil
	}
	var out []ExprTsysItem
	for _, s := range all {
		if s.score == best {
			out = append(out, ExprTsysItem{Symbol: s.item.Symbol, Type: s.ret})
		}
	}
	return out
}

// unary types a prefix unary operator expression: arithmetic/logical
// operators on a non-class entity keep the operand's entity type; on a
// class entity, resolution falls through to an "operator X" overload
// lookup the same way binary operators do.
func (c *Context) unary(scope *symbol.Symbol, e *ast.UnaryOp) []ExprTsysItem {
	operands := c.ExprToTsys(scope, e.Operand)
	var out []ExprTsysItem
	for _, o := range operands {
		entity, _, _ := o.Type.GetEntity()
		if classSym := declSymbol(entity); classSym != nil {
			name := "operator " + operatorSpelling(e.Operator)
			results := resolve.ResolveSymbol(classSym, name, resolve.ChildSymbol)
			var candidates []ExprTsysItem
			for _, res := range results {
				candidates = append(candidates, c.VisitSymbol(res.Symbol, classSym, CV{})...)
			}
			out = append(out, c.resolveOverloadedCall(candidates, nil)...)
			continue
		}
		out = append(out, ExprTsysItem{Type: entity})
	}
	return out
}

// binary types an infix binary operator expression over a non-class
// entity as the usual-arithmetic-conversion winner (wider/floating wins);
// a class-typed left operand falls back to "operator X" overload lookup.
func (c *Context) binary(scope *symbol.Symbol, e *ast.BinaryOp) []ExprTsysItem {
	lhs := c.ExprToTsys(scope, e.LHS)
	rhs := c.ExprToTsys(scope, e.RHS)
	rhsTypes := typesOf(rhs)

	var out []ExprTsysItem
	for _, l := range lhs {
		entity, _, _ := l.Type.GetEntity()
		if classSym := declSymbol(entity); classSym != nil {
			name := "operator " + operatorSpelling(e.Operator)
			results := resolve.ResolveSymbol(classSym, name, resolve.ChildSymbol)
			var candidates []ExprTsysItem
			for _, res := range results {
				candidates = append(candidates, c.VisitSymbol(res.Symbol, classSym, CV{})...)
			}
			out = append(out, c.resolveOverloadedCall(candidates, [][]*tsys.Tsys{rhsTypes})...)
			continue
		}
		for _, r := range rhs {
			rEntity, _, _ := r.Type.GetEntity()
			out = append(out, ExprTsysItem{Type: usualArithmeticConversion(entity, rEntity)})
		}
	}
	return out
}

// usualArithmeticConversion picks the wider/floating operand's type as a
// simplified stand-in for the full promotion ladder - adequate for typing,
// since only the result Tsys (not the exact promotion path) is observable.
func usualArithmeticConversion(a, b *tsys.Tsys) *tsys.Tsys {
	if a.Kind() != tsys.KindPrimitive || b.Kind() != tsys.KindPrimitive {
		return a
	}
	aKind, aBytes := a.Primitive()
	bKind, bBytes := b.Primitive()
	if aKind == tsys.Float && bKind != tsys.Float {
		return a
	}
	if bKind == tsys.Float && aKind != tsys.Float {
		return b
	}
	if aBytes >= bBytes {
		return a
	}
	return b
}

func operatorSpelling(k token.Kind) string {
	switch k {
	case token.Add:
		return "+"
	case token.Sub:
		return "-"
	case token.Mul:
		return "*"
	case token.Div:
		return "/"
	case token.Percent:
		return "%"
	case token.Not:
		return "!"
	case token.Tilde:
		return "~"
	case token.Xor:
		return "^"
	case token.Or:
		return "|"
	case token.Amp:
		return "&"
	case token.Lt:
		return "<"
	case token.Gt:
		return ">"
	case token.Eq:
		return "="
	default:
		return ""
	}
}
