package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLex(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "object declaration",
			input: "X : Integer := 0;",
			expected: []Token{
				{Type: TokenIdent, Value: "X", Pos: 0},
				{Type: TokenColon, Value: ":", Pos: 2},
				{Type: TokenIdent, Value: "Integer", Pos: 4},
				{Type: TokenAssign, Value: ":=", Pos: 12},
				{Type: TokenOther, Value: "0", Pos: 15},
				{Type: TokenSemicolon, Value: ";", Pos: 16},
				{Type: TokenEOF, Value: "", Pos: 17},
			},
		},
		{
			name:  "comma separated list",
			input: "A, B : constant Float",
			expected: []Token{
				{Type: TokenIdent, Value: "A", Pos: 0},
				{Type: TokenComma, Value: ",", Pos: 1},
				{Type: TokenIdent, Value: "B", Pos: 3},
				{Type: TokenColon, Value: ":", Pos: 5},
				{Type: TokenIdent, Value: "constant", Pos: 7},
				{Type: TokenIdent, Value: "Float", Pos: 16},
				{Type: TokenEOF, Value: "", Pos: 21},
			},
		},
		{
			name:  "parameter list parens",
			input: "(N : Natural)",
			expected: []Token{
				{Type: TokenLParen, Value: "(", Pos: 0},
				{Type: TokenIdent, Value: "N", Pos: 1},
				{Type: TokenColon, Value: ":", Pos: 3},
				{Type: TokenIdent, Value: "Natural", Pos: 5},
				{Type: TokenRParen, Value: ")", Pos: 12},
				{Type: TokenEOF, Value: "", Pos: 13},
			},
		},
		{
			name:  "underscore stays inside identifiers",
			input: "Put_Line",
			expected: []Token{
				{Type: TokenIdent, Value: "Put_Line", Pos: 0},
				{Type: TokenEOF, Value: "", Pos: 8},
			},
		},
		{
			name:  "empty input",
			input: "",
			expected: []Token{
				{Type: TokenEOF, Value: "", Pos: 0},
			},
		},
		{
			name:  "newlines are whitespace",
			input: "is\nbegin",
			expected: []Token{
				{Type: TokenIdent, Value: "is", Pos: 0},
				{Type: TokenIdent, Value: "begin", Pos: 3},
				{Type: TokenEOF, Value: "", Pos: 8},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Lex(tt.input))
		})
	}
}

func TestStripComment(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no comment", "X : Integer;", "X : Integer;"},
		{"trailing comment", "X : Integer; -- counter", "X : Integer; "},
		{"whole line comment", "-- nothing here", ""},
		{"marker inside string still truncates", `Put ("a--b");`, `Put ("a`},
		{"empty line", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, StripComment(tt.input))
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	t.Parallel()
	assert.True(t, IsIdentifier("Count"))
	assert.True(t, IsIdentifier("X1_y"))
	assert.False(t, IsIdentifier(""))
	assert.False(t, IsIdentifier("1abc"))
	assert.False(t, IsIdentifier("_hidden"))
	assert.False(t, IsIdentifier("two words"))
}

func TestIsWord(t *testing.T) {
	t.Parallel()
	toks := Lex("Procedure count")
	assert.True(t, toks[0].IsWord("procedure"))
	assert.True(t, toks[1].IsWord("COUNT"))
	assert.False(t, toks[1].IsWord("counter"))
}
