// Package lexer provides a small hand-written tokenizer for Ada-like source
// text. It is deliberately not a language parser: it only knows identifiers,
// the handful of punctuation marks the classification heuristics care about,
// and the line-comment marker. Everything else is passed through as opaque
// tokens.
package lexer

import "strings"

// commentMarker starts an Ada line comment.
const commentMarker = "--"

// TokenType defines the type of a token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenColon
	TokenAssign // :=
	TokenComma
	TokenSemicolon
	TokenLParen
	TokenRParen
	TokenOther // number literals, operators, string quotes, anything else
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenIdent:
		return "Ident"
	case TokenColon:
		return "Colon"
	case TokenAssign:
		return "Assign"
	case TokenComma:
		return "Comma"
	case TokenSemicolon:
		return "Semicolon"
	case TokenLParen:
		return "LParen"
	case TokenRParen:
		return "RParen"
	case TokenOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Token represents a lexical token. Pos is the byte offset of the token's
// first character in the input passed to Lex.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// IsWord reports whether the token is an identifier spelled word,
// case-insensitively. Ada keywords are ordinary identifiers to this lexer,
// so keyword checks go through IsWord.
func (t Token) IsWord(word string) bool {
	return t.Type == TokenIdent && strings.EqualFold(t.Value, word)
}

// StripComment truncates a line at the first occurrence of the line-comment
// marker. A marker inside a string literal still counts; the heuristics
// accept that limitation.
func StripComment(line string) string {
	if idx := strings.Index(line, commentMarker); idx != -1 {
		return line[:idx]
	}
	return line
}

// Lex tokenizes the input. It never fails: unrecognized bytes become
// TokenOther tokens. The token list always ends with TokenEOF.
func Lex(input string) []Token {
	var tokens []Token

	i := 0
	for i < len(input) {
		c := input[i]

		if isSpace(c) {
			i++
			continue
		}

		if isLetter(c) {
			start := i
			i++
			for i < len(input) && isIdentChar(input[i]) {
				i++
			}
			tokens = append(tokens, Token{Type: TokenIdent, Value: input[start:i], Pos: start})
			continue
		}

		switch c {
		case ':':
			if i+1 < len(input) && input[i+1] == '=' {
				tokens = append(tokens, Token{Type: TokenAssign, Value: ":=", Pos: i})
				i += 2
			} else {
				tokens = append(tokens, Token{Type: TokenColon, Value: ":", Pos: i})
				i++
			}
		case ',':
			tokens = append(tokens, Token{Type: TokenComma, Value: ",", Pos: i})
			i++
		case ';':
			tokens = append(tokens, Token{Type: TokenSemicolon, Value: ";", Pos: i})
			i++
		case '(':
			tokens = append(tokens, Token{Type: TokenLParen, Value: "(", Pos: i})
			i++
		case ')':
			tokens = append(tokens, Token{Type: TokenRParen, Value: ")", Pos: i})
			i++
		default:
			// Digits, operators, quotes and anything else collapse into a
			// single opaque token per byte run of non-structural characters.
			start := i
			i++
			for i < len(input) && !isStructural(input[i]) && !isSpace(input[i]) && !isLetter(input[i]) {
				i++
			}
			tokens = append(tokens, Token{Type: TokenOther, Value: input[start:i], Pos: start})
		}
	}

	tokens = append(tokens, Token{Type: TokenEOF, Value: "", Pos: len(input)})
	return tokens
}

// IsIdentifier reports whether s is a bare identifier: a letter followed by
// letters, digits, or underscores.
func IsIdentifier(s string) bool {
	if s == "" || !isLetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentChar(s[i]) {
			return false
		}
	}
	return true
}

// IsWordByte reports whether c can be part of a word for the purpose of
// whole-word boundary detection.
func IsWordByte(c byte) bool {
	return isIdentChar(c)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isStructural(c byte) bool {
	switch c {
	case ':', ',', ';', '(', ')':
		return true
	}
	return false
}
