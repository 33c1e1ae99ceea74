// Package index defines the observer interface the expression typer calls
// into on every name occurrence it resolves (the parser holds a Recorder
// but makes no calls to it). Indexing itself - what
// a documentation tool does with the stream of events - is entirely outside
// this module; Recorder is the seam, not an implementation.
package index

import (
	"github.com/cppdoc/cppdoc/ast"
	"github.com/cppdoc/cppdoc/resolve"
)

// Recorder receives one event per name occurrence the typer resolves. The
// calls are synchronous, made from inside typing by the single-threaded
// core described in the package doc of the root module; the core holds no
// locks and does nothing to guard against an implementation that calls
// back into parsing or typing from inside these methods.
type Recorder interface {
	// Index is called once per resolved name occurrence, with the full
	// symbol set that name designates at that point.
	Index(name ast.CppName, resolving []resolve.Result)
	// ExpectValueButType is called instead of Index when a name appears
	// in a value position (e.g. the operand of an expression) and lookup
	// finds no symbol at all; resolving is then empty. A lookup that finds
	// only type-declaration symbols is reported through Index like any
	// other: the typer does not tell it apart from a value lookup.
	ExpectValueButType(name ast.CppName, resolving []resolve.Result)
}

// Null is a Recorder that discards every event. The parser and typer use
// it whenever indexing is disabled, so their call sites never need a nil
// check.
type Null struct{}

func (Null) Index(ast.CppName, []resolve.Result)               {}
func (Null) ExpectValueButType(ast.CppName, []resolve.Result) {}
