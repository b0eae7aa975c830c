package icterrors_test

import (
	"testing"

	"github.com/dekarrin/ictiobus/earley"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/icterrors"
	"github.com/dekarrin/ictiobus/lex"
	"github.com/dekarrin/ictiobus/pos"
	"github.com/stretchr/testify/assert"
)

func Test_LexReport_NoMatch(t *testing.T) {
	e := &lex.Error{
		Msg:       "no rule matches remaining input",
		Offset:    2,
		Pos:       pos.Position{Line: 1, Col: 3, Byte: 2},
		ModeStack: []string{lex.DefaultMode},
		Expected:  []string{"NUM", "ID"},
	}

	report := icterrors.LexReport(e)
	assert.Contains(t, report, "no rule matches remaining input")
	assert.Contains(t, report, "2")
	assert.Contains(t, report, "NUM")
	assert.Contains(t, report, "ID")
}

func Test_LexReport_ActionRaisedError_IncludesMatchLen(t *testing.T) {
	matchLen := 3
	e := &lex.Error{
		Msg:       "numeric literal 123 is not allowed here",
		Offset:    0,
		Pos:       pos.Start(),
		ModeStack: []string{lex.DefaultMode},
		MatchLen:  &matchLen,
	}

	report := icterrors.LexReport(e)
	assert.Contains(t, report, "3")
	assert.NotContains(t, report, "expected")
}

func Test_ParseReport_WithOffendingLexeme(t *testing.T) {
	prod := grammar.Production{Kind: grammar.OfLexemes, Symbols: []string{"a", "b"}}
	e := &earley.Error{
		At:     &lex.Lexeme{Kind: "c", Raw: "c", Pos: pos.Position{Line: 1, Col: 3, Byte: 2}},
		Column: 1,
		InFlight: []earley.Item{
			{Rule: "S", Prod: &prod, Dot: 1},
		},
	}

	report := icterrors.ParseReport(e)
	assert.Contains(t, report, "1")
	assert.Contains(t, report, "c")
}

func Test_ParseReport_EmptyInput(t *testing.T) {
	e := &earley.Error{
		At:     nil,
		Column: 0,
	}

	report := icterrors.ParseReport(e)
	assert.Contains(t, report, "start of input")
}
