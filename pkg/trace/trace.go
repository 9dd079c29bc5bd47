// Package trace lets callers observe grammar decisions during a parse.
//
// Tracers are strictly observers: they receive rule enter/exit events and
// must not influence the parse result.
package trace

import (
	"fmt"
	"io"

	"github.com/paull87/mo-sql-parsing/pkg/token"
)

// Tracer receives grammar events during parsing.
type Tracer interface {
	// Enter is called when the parser starts a grammar rule at pos.
	Enter(rule string, pos token.Position)
	// Exit is called when the rule completes; ok reports whether it matched.
	Exit(rule string, ok bool)
}

// Nop is a Tracer that discards all events.
type Nop struct{}

func (Nop) Enter(string, token.Position) {}
func (Nop) Exit(string, bool)            {}

// Writer traces rule events as an indented tree to an io.Writer.
type Writer struct {
	Out   io.Writer
	depth int
}

// NewWriter creates a Writer tracer emitting to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{Out: out}
}

func (w *Writer) Enter(rule string, pos token.Position) {
	fmt.Fprintf(w.Out, "%*s> %s @%d:%d\n", w.depth*2, "", rule, pos.Line, pos.Column)
	w.depth++
}

func (w *Writer) Exit(rule string, ok bool) {
	if w.depth > 0 {
		w.depth--
	}
	status := "ok"
	if !ok {
		status = "fail"
	}
	fmt.Fprintf(w.Out, "%*s< %s %s\n", w.depth*2, "", rule, status)
}
