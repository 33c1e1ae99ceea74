package tsys

import "fmt"

// Arena is the owner of every canonical type produced during one parsing
// context's lifetime. All construction goes through its factory methods,
// which memoize by structural signature so that two structurally identical
// type expressions always yield the same *Tsys.
//
// There is no concurrency support here by design: a parsing context (and
// therefore its Arena) is single-threaded and synchronous end to end - see
// the core's concurrency model.
type Arena struct {
	nullptr *Tsys
	zero    *Tsys

	primitives map[primKey]*Tsys
	lrefs      map[*Tsys]*Tsys
	rrefs      map[*Tsys]*Tsys
	ptrs       map[*Tsys]*Tsys
	arrays     map[arrKey]*Tsys
	members    map[memberKey]*Tsys
	cvs        map[cvKey]*Tsys
	decls      map[Decl]*Tsys
	functions  map[string]*Tsys
}

type primKey struct {
	kind  PrimitiveKind
	bytes int
}

type arrKey struct {
	element *Tsys
	dim     int
}

type memberKey struct {
	class   *Tsys
	element *Tsys
}

type cvKey struct {
	element *Tsys
	cv      CV
}

// NewArena returns an empty, ready-to-use type interner.
func NewArena() *Arena {
	a := &Arena{
		primitives: map[primKey]*Tsys{},
		lrefs:      map[*Tsys]*Tsys{},
		rrefs:      map[*Tsys]*Tsys{},
		ptrs:       map[*Tsys]*Tsys{},
		arrays:     map[arrKey]*Tsys{},
		members:    map[memberKey]*Tsys{},
		cvs:        map[cvKey]*Tsys{},
		decls:      map[Decl]*Tsys{},
		functions:  map[string]*Tsys{},
	}
	a.nullptr = &Tsys{kind: KindNullptr}
	a.zero = &Tsys{kind: KindZero}
	return a
}

// Nullptr returns the single canonical "nullptr" type.
func (a *Arena) Nullptr() *Tsys { return a.nullptr }

// Zero returns the single canonical type of the untyped literal 0.
func (a *Arena) Zero() *Tsys { return a.zero }

// PrimitiveOf returns the canonical primitive type for kind at the given
// byte width, constructing it on first use.
func (a *Arena) PrimitiveOf(kind PrimitiveKind, bytes int) *Tsys {
	key := primKey{kind, bytes}
	if t, ok := a.primitives[key]; ok {
		return t
	}
	t := &Tsys{kind: KindPrimitive, prim: kind, bytes: bytes}
	a.primitives[key] = t
	return t
}

// LRefOf returns the canonical lvalue-reference-to-element type.
func (a *Arena) LRefOf(element *Tsys) *Tsys {
	if t, ok := a.lrefs[element]; ok {
		return t
	}
	t := &Tsys{kind: KindLRef, element: element}
	a.lrefs[element] = t
	return t
}

// RRefOf returns the canonical rvalue-reference-to-element type.
func (a *Arena) RRefOf(element *Tsys) *Tsys {
	if t, ok := a.rrefs[element]; ok {
		return t
	}
	t := &Tsys{kind: KindRRef, element: element}
	a.rrefs[element] = t
	return t
}

// PtrOf returns the canonical pointer-to-element type.
func (a *Arena) PtrOf(element *Tsys) *Tsys {
	if t, ok := a.ptrs[element]; ok {
		return t
	}
	t := &Tsys{kind: KindPtr, element: element}
	a.ptrs[element] = t
	return t
}

// ArrayOf returns the canonical dim-element array-of-element type.
func (a *Arena) ArrayOf(element *Tsys, dim int) *Tsys {
	key := arrKey{element, dim}
	if t, ok := a.arrays[key]; ok {
		return t
	}
	t := &Tsys{kind: KindArray, element: element, dim: dim}
	a.arrays[key] = t
	return t
}

// MemberOf returns the canonical "element, as a member of class" type.
func (a *Arena) MemberOf(class, element *Tsys) *Tsys {
	key := memberKey{class, element}
	if t, ok := a.members[key]; ok {
		return t
	}
	t := &Tsys{kind: KindMember, class: class, element: element}
	a.members[key] = t
	return t
}

// CVOf returns the canonical cv-qualified-element type. A CV with every
// flag false is still a distinct, valid (if pointless) wrapper - callers
// that want to skip adding one when there's nothing to add should check
// cv against the zero value themselves.
func (a *Arena) CVOf(element *Tsys, cv CV) *Tsys {
	key := cvKey{element, cv}
	if t, ok := a.cvs[key]; ok {
		return t
	}
	t := &Tsys{kind: KindCV, element: element, cv: cv}
	a.cvs[key] = t
	return t
}

// DeclOf returns the canonical type naming decl (a class, enum or other
// user-declared type symbol).
func (a *Arena) DeclOf(decl Decl) *Tsys {
	if t, ok := a.decls[decl]; ok {
		return t
	}
	t := &Tsys{kind: KindDecl, decl: decl}
	a.decls[decl] = t
	return t
}

// FunctionOf returns the canonical function type for the given return
// type, parameter types, calling convention and qualifiers.
func (a *Arena) FunctionOf(ret *Tsys, params []*Tsys, cc CallingConvention, quals FunctionQualifiers) *Tsys {
	key := functionKey(ret, params, cc, quals)
	if t, ok := a.functions[key]; ok {
		return t
	}
	t := &Tsys{kind: KindFunction, ret: ret, params: append([]*Tsys(nil), params...), cc: cc, funcQual: quals}
	a.functions[key] = t
	return t
}

func functionKey(ret *Tsys, params []*Tsys, cc CallingConvention, quals FunctionQualifiers) string {
	s := fmt.Sprintf("%p|%d|%+v|", ret, cc, quals)
	for _, p := range params {
		s += fmt.Sprintf("%p,", p)
	}
	return s
}
