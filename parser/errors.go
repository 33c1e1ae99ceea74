package parser

import "fmt"

// StopParsing is the grammar-fault error: a parse alternative required a
// token that wasn't there. It carries the faulting cursor position so a
// caller can report a precise location; the core never recovers from it
// internally (see the root module's error-handling design).
type StopParsing struct {
	Pos int
	Msg string
}

func (e *StopParsing) Error() string {
	return fmt.Sprintf("parse error at %d: %s", e.Pos, e.Msg)
}

func stop(pos int, format string, args ...any) error {
	return &StopParsing{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
