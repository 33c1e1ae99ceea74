// Package cppdoc ties the core's pieces together into one parsing context:
// a token cursor, a symbol-table root, a type interner, and an optional
// index recorder, exactly as described by the root module's concurrency
// and resource model. There is no concurrency support here by design - a
// Context is built, used to parse one translation unit synchronously, and
// then queried for types on demand.
package cppdoc

import (
	"github.com/google/uuid"

	"github.com/cppdoc/cppdoc/ast"
	"github.com/cppdoc/cppdoc/index"
	"github.com/cppdoc/cppdoc/parser"
	"github.com/cppdoc/cppdoc/symbol"
	"github.com/cppdoc/cppdoc/token"
	"github.com/cppdoc/cppdoc/tsys"
	"github.com/cppdoc/cppdoc/typer"
)

// Context is the result of parsing one translation unit: the program, the
// scope tree it built, the type interner backing every canonical type, and
// the typer ready to answer ExprToTsys queries against that tree.
type Context struct {
	// RunID tags this parse for callers that correlate log lines or
	// index events across several Context values (e.g. one per
	// translation unit in a batch run).
	RunID    string
	Program  *ast.Program
	Root     *symbol.Symbol
	Mappings *symbol.Mappings
	Arena    *tsys.Arena
	Typer    *typer.Context
}

// Parse runs the declaration parser over tokens, building the symbol table
// as it goes, and returns a Context ready for expression typing. rec may
// be nil, in which case indexing is disabled.
func Parse(tokens []token.Token, rec index.Recorder) (*Context, error) {
	if rec == nil {
		rec = index.Null{}
	}
	p := parser.New(tokens, rec)
	prog, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}
	arena := tsys.NewArena()
	return &Context{
		RunID:    uuid.NewString(),
		Program:  prog,
		Root:     p.Root(),
		Mappings: p.Mappings(),
		Arena:    arena,
		Typer:    typer.NewContext(arena, rec),
	}, nil
}

// ExprToTsys types expr as evaluated from scope, delegating to the typer.
func (c *Context) ExprToTsys(scope *symbol.Symbol, expr ast.Expr) []typer.ExprTsysItem {
	return c.Typer.ExprToTsys(scope, expr)
}
