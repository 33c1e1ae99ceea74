package main

import (
	"fmt"
	"strings"

	"github.com/cppdoc/cppdoc/ast"
	"github.com/cppdoc/cppdoc/resolve"
	"github.com/cppdoc/cppdoc/symbol"
)

// printingRecorder prints one line per resolved name occurrence. It is the
// simplest possible index.Recorder implementation - a real documentation
// tool would accumulate these into a cross-reference index instead.
type printingRecorder struct{}

func (r *printingRecorder) Index(name ast.CppName, resolving []resolve.Result) {
	fmt.Printf("index: %s -> %d symbol(s)\n", name.Spelling, len(resolving))
}

func (r *printingRecorder) ExpectValueButType(name ast.CppName, resolving []resolve.Result) {
	fmt.Printf("index: %s -> expected value, found %d type(s)\n", name.Spelling, len(resolving))
}

func printScope(s *symbol.Symbol, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, child := range s.AllChildren() {
		name := child.Name()
		if name == "" {
			name = "<anon>"
		}
		suffix := ""
		if child.IsForwardDeclaration {
			suffix = " (forward)"
		}
		fmt.Printf("%s%s%s\n", indent, name, suffix)
		printScope(child, depth+1)
	}
}
