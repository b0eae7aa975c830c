package lex_test

import (
	"testing"

	"github.com/dekarrin/ictiobus/lex"
	"github.com/stretchr/testify/assert"
)

// S5 — longest-match with tie: IF and ID declared in that order; "if" picks
// IF (tie broken by declaration order), "iff" picks ID (longest match wins).
func Test_Engine_Lex_LongestMatchTieBreak(t *testing.T) {
	rules := []lex.Rule{
		{Modes: []string{lex.DefaultMode}, Kind: "IF", Match: lex.Literal("if")},
		{Modes: []string{lex.DefaultMode}, Kind: "ID", Match: lex.NewRegex(`[a-z]+`)},
	}
	eng := lex.NewEngine(rules)

	lexemes, err := eng.Lex("if")
	assert := assert.New(t)
	if assert.Nil(err) && assert.Len(lexemes, 1) {
		assert.Equal("IF", lexemes[0].Kind)
	}

	lexemes, err = eng.Lex("iff")
	if assert.Nil(err) && assert.Len(lexemes, 1) {
		assert.Equal("ID", lexemes[0].Kind)
	}
}

func Test_Engine_Lex_SkipsWhitespace(t *testing.T) {
	rules := []lex.Rule{
		{Modes: []string{lex.DefaultMode}, Kind: "WS", Match: lex.NewRegex(`\s+`), Action: func(*lex.State) lex.Outcome { return lex.Skip() }},
		{Modes: []string{lex.DefaultMode}, Kind: "NUM", Match: lex.NewRegex(`[0-9]+`)},
	}
	eng := lex.NewEngine(rules)

	lexemes, err := eng.Lex("1 2   3")
	assert := assert.New(t)
	require := assert
	if require.Nil(err) {
		require.Len(lexemes, 3)
		for i, want := range []string{"1", "2", "3"} {
			assert.Equal(want, lexemes[i].Raw)
		}
	}
}

func Test_Engine_Lex_NoMatch_ReturnsError(t *testing.T) {
	rules := []lex.Rule{
		{Modes: []string{lex.DefaultMode}, Kind: "NUM", Match: lex.NewRegex(`[0-9]+`)},
	}
	eng := lex.NewEngine(rules)

	lexemes, err := eng.Lex("12x")
	assert := assert.New(t)
	assert.Nil(lexemes)
	if assert.NotNil(err) {
		assert.Equal(2, err.Offset)
		assert.Contains(err.Expected, "NUM")
		// no rule matched at all, so there is no "current match" to report.
		assert.Nil(err.MatchLen)
	}
}

// An action that explicitly rejects its own match (via lex.Error) has a
// current match in flight, so the error reports its length.
func Test_Engine_Lex_ActionRaisedError_ReportsMatchLen(t *testing.T) {
	rules := []lex.Rule{
		{
			Modes: []string{lex.DefaultMode},
			Kind:  "NUM",
			Match: lex.NewRegex(`[0-9]+`),
			Action: func(s *lex.State) lex.Outcome {
				return lex.Error("numeric literal " + s.Match() + " is not allowed here")
			},
		},
	}
	eng := lex.NewEngine(rules)

	lexemes, err := eng.Lex("123")
	assert := assert.New(t)
	assert.Nil(lexemes)
	if assert.NotNil(err) {
		assert.Equal(0, err.Offset)
		if assert.NotNil(err.MatchLen) {
			assert.Equal(3, *err.MatchLen)
		}
	}
}

// S4 — stateful lexer: a template string containing one interpolation.
func Test_Engine_Lex_StatefulModes(t *testing.T) {
	const (
		modeStr = "STR"
	)

	rules := []lex.Rule{
		// opening/closing backtick: enter/leave STR mode.
		{
			Modes: []string{lex.DefaultMode},
			Kind:  "STRING-start",
			Match: lex.Literal("`"),
			Action: func(s *lex.State) lex.Outcome {
				s.PushMode(modeStr)
				return lex.Take()
			},
		},
		{
			Modes: []string{modeStr},
			Kind:  "STRING-end",
			Match: lex.Literal("`"),
			Action: func(s *lex.State) lex.Outcome {
				s.PopMode()
				return lex.Take()
			},
		},
		// interpolation start/end: push/pop back to DEFAULT from within STR.
		{
			Modes: []string{modeStr},
			Kind:  "INTERP-start",
			Match: lex.Literal("${"),
			Action: func(s *lex.State) lex.Outcome {
				s.PushMode(lex.DefaultMode)
				return lex.Take()
			},
		},
		{
			Modes: []string{lex.DefaultMode},
			Kind:  "INTERP-end",
			Match: lex.Literal("}"),
			Action: func(s *lex.State) lex.Outcome {
				s.PopMode()
				return lex.Take()
			},
		},
		{
			Modes: []string{lex.DefaultMode},
			Kind:  "ID",
			Match: lex.NewRegex(`[a-z]+`),
		},
		// literal text inside a string: anything up to a backtick or a $
		// (so that "${" is left for INTERP-start).
		{
			Modes: []string{modeStr},
			Kind:  "STR",
			Match: lex.NewRegex("[^`$]+"),
			Action: func(s *lex.State) lex.Outcome {
				m := s.Match()
				if len(m) >= 2 && m[len(m)-2:] == "${" {
					return lex.TakeTransformed(m[:len(m)-2])
				}
				return lex.Take()
			},
		},
	}

	eng := lex.NewEngine(rules)
	lexemes, err := eng.Lex("`a${b}c`")
	assert := assert.New(t)
	require := assert
	if !require.Nil(err) {
		t.Fatalf("unexpected lex error: %v", err)
	}

	wantKinds := []string{
		"STRING-start", "STR", "INTERP-start", "ID", "INTERP-end", "STR", "STRING-end",
	}
	gotKinds := make([]string, len(lexemes))
	for i, l := range lexemes {
		gotKinds[i] = l.Kind
	}
	assert.Equal(wantKinds, gotKinds)
}

func Test_Engine_Lex_EmptyInput(t *testing.T) {
	eng := lex.NewEngine(nil)
	lexemes, err := eng.Lex("")
	assert.Nil(t, err)
	assert.Empty(t, lexemes)
}
