// Package icterrors renders lex.Error and earley.Error diagnostics (C9) as
// human-readable tabular reports, the way the teacher's parser-table
// debug-printers typeset their output.
package icterrors

import (
	"fmt"

	"github.com/dekarrin/ictiobus/earley"
	"github.com/dekarrin/ictiobus/internal/util"
	"github.com/dekarrin/ictiobus/lex"
	"github.com/dekarrin/rosed"
)

// LexReport renders a lexer error: the failing position, mode stack, and the
// rule kinds that would have been accepted there.
func LexReport(e *lex.Error) string {
	data := [][]string{
		{"position", e.Pos.String()},
		{"byte offset", fmt.Sprintf("%d", e.Offset)},
		{"mode stack", fmt.Sprintf("%v", e.ModeStack)},
		{"message", e.Msg},
	}
	if e.MatchLen != nil {
		data = append(data, []string{"current match length", fmt.Sprintf("%d", *e.MatchLen)})
	}
	if len(e.Expected) > 0 {
		data = append(data, []string{"expected", util.MakeTextList(append([]string(nil), e.Expected...))})
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 100, rosed.Options{
			NoTrailingLineSeparators: true,
		}).
		String()
}

// ParseReport renders a parser error: the furthest reached column, the
// offending lexeme (if any), and every item in flight there.
func ParseReport(e *earley.Error) string {
	at := "(start of input)"
	if e.At != nil {
		at = e.At.String()
	} else if e.Column > 0 {
		at = "(end of input)"
	}

	data := [][]string{
		{"column", fmt.Sprintf("%d", e.Column)},
		{"at", at},
	}
	for _, it := range e.InFlight {
		data = append(data, []string{"in-flight", it.String()})
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 100, rosed.Options{
			NoTrailingLineSeparators: true,
		}).
		String()
}
