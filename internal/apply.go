package internal

import (
	"strings"

	"github.com/adaforge/acase/internal/lexer"
	"github.com/adaforge/acase/internal/types"
)

// Apply rewrites every whole-word, case-insensitive occurrence of a mapped
// identifier in the text, comments included, with its assigned spelling.
// Words are maximal runs of letters, digits, and underscores, so a renamed
// identifier never alters a larger identifier containing it as a substring.
// Everything outside matched words is copied byte for byte.
func Apply(text string, mapping types.Mapping) string {
	if len(mapping) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	i := 0
	for i < len(text) {
		if !lexer.IsWordByte(text[i]) {
			b.WriteByte(text[i])
			i++
			continue
		}
		j := i + 1
		for j < len(text) && lexer.IsWordByte(text[j]) {
			j++
		}
		word := text[i:j]
		if spelling, ok := mapping[strings.ToLower(word)]; ok {
			b.WriteString(spelling)
		} else {
			b.WriteString(word)
		}
		i = j
	}
	return b.String()
}
