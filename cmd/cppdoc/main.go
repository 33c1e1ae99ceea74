// Command cppdoc is a trivial driver over the core: it reads a source
// file, tokenizes it, runs the parser, and prints a short summary of the
// resulting symbol tree. Per the root module's scope, the lexer, the
// real printer, and any serious output formatting are external
// collaborators - this is the minimal shim the core needs to be run at
// all from a shell.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cppdoc/cppdoc"
	"github.com/cppdoc/cppdoc/index"
	"github.com/cppdoc/cppdoc/lexer"
)

// logger is the CLI driver's only logging sink: one handler, writing to
// stderr, shared by every run so a failing parse and the process exit
// path report through the same place. See DESIGN.md's cmd/cppdoc entry for
// why this is slog rather than the teacher's own core/log.
var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var indexEvents bool

	cmd := &cobra.Command{
		Use:   "cppdoc [file]",
		Short: "Parse a C++ source file and print its symbol tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], indexEvents)
		},
	}
	cmd.Flags().BoolVar(&indexEvents, "index", false, "print every resolved name occurrence")
	return cmd
}

func run(path string, indexEvents bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	logger.Debug("read source", "path", path, "bytes", len(src))

	tokens, err := lexer.Lex(string(src))
	if err != nil {
		return errors.Wrap(err, "lexing")
	}
	logger.Debug("lexed", "path", path, "tokens", len(tokens))

	var rec index.Recorder
	if indexEvents {
		rec = &printingRecorder{}
	}

	ctx, err := cppdoc.Parse(tokens, rec)
	if err != nil {
		return errors.Wrap(err, "parsing")
	}
	logger.Debug("parsed", "run", ctx.RunID)

	if indexEvents {
		fmt.Printf("run: %s\n", ctx.RunID)
	}
	printScope(ctx.Root, 0)
	return nil
}
