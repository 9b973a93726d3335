package internal

import (
	"strings"

	"github.com/adaforge/acase/internal/lexer"
	"github.com/adaforge/acase/internal/scan"
	"github.com/adaforge/acase/internal/types"
)

// findFirstSubprogram locates the first whole-word "procedure" or "function"
// outside comments. The returned offset points into the original text, which
// works because comment stripping only truncates line tails.
func findFirstSubprogram(text string) (kind string, offset int, found bool) {
	lineStart := 0
	for _, line := range splitAfterLines(text) {
		code := lexer.StripComment(line)
		for _, t := range lexer.Lex(code) {
			if t.IsWord("procedure") || t.IsWord("function") {
				return strings.ToLower(t.Value), lineStart + t.Pos, true
			}
		}
		lineStart += len(line)
	}
	return "", 0, false
}

// findWordAfter returns the offset of the first whole-word occurrence of word
// at or after start. It searches the raw text, comments included, matching
// the heuristic's original behavior for the "is" and "begin" markers.
func findWordAfter(text, word string, start int) (int, bool) {
	for _, t := range lexer.Lex(text) {
		if t.Pos >= start && t.IsWord(word) {
			return t.Pos, true
		}
	}
	return 0, false
}

// BuildPackageEntries treats every declaration in the text as package-level:
// all identifiers and type names uppercase.
func BuildPackageEntries(text string) []types.Entry {
	ids, typeNames := scan.Declarations(
		strings.Split(text, "\n"),
		types.PolicyUpper,
		types.StageGlobal,
		types.StageGlobalType,
	)
	return append(ids, typeNames...)
}

// BuildSubprogramEntries derives the entry list for a standalone procedure or
// function file. Stages are emitted in precedence order: globals, parameters,
// return type, locals, loop variables, external globals; types.Resolve folds
// them with the documented override rules.
func BuildSubprogramEntries(text string) []types.Entry {
	_, start, found := findFirstSubprogram(text)
	if !found {
		// No subprogram keyword anywhere: the whole file is declarations.
		return BuildPackageEntries(text)
	}

	globalIDs, globalTypes := scan.Declarations(
		strings.Split(text[:start], "\n"),
		types.PolicyUpper,
		types.StageGlobal,
		types.StageGlobalType,
	)
	entries := append(globalIDs, globalTypes...)

	isPos, isFound := findWordAfter(text, "is", start)
	var beginPos int
	var beginFound bool
	if isFound {
		beginPos, beginFound = findWordAfter(text, "begin", isPos)
	}
	if !isFound || !beginFound {
		// Header or declarative part is unlocatable: globals only.
		return entries
	}

	header := text[start:isPos]
	entries = append(entries, parameterEntries(header)...)
	entries = append(entries, returnTypeEntries(header)...)

	localIDs, localTypes := scan.Declarations(
		strings.Split(text[isPos:beginPos], "\n"),
		types.PolicyLower,
		types.StageLocal,
		types.StageLocalType,
	)
	entries = append(entries, localIDs...)
	entries = append(entries, localTypes...)

	entries = append(entries, loopVariableEntries(text)...)
	entries = append(entries, externalGlobalEntries(text)...)
	return entries
}

// parameterEntries processes the header's parenthesized parameter list: the
// span from the first "(" to the last ")". Groups are semicolon-separated;
// parameter names are always lowercase, their type positions uppercase. Type
// entries follow name entries per group, so a type name wins a same-key
// collision within the group.
func parameterEntries(header string) []types.Entry {
	open := strings.Index(header, "(")
	closing := strings.LastIndex(header, ")")
	if open == -1 || closing <= open {
		return nil
	}

	var entries []types.Entry
	for _, group := range strings.Split(header[open+1:closing], ";") {
		code := lexer.StripComment(group)
		toks := lexer.Lex(code)
		if names, ok := scan.DeclNames(toks); ok {
			for _, name := range names {
				entries = append(entries, types.Entry{
					Stage:    types.StageParam,
					Key:      strings.ToLower(name),
					Spelling: strings.ToLower(name),
				})
			}
		}
		for _, name := range scan.TypeRefs(code) {
			entries = append(entries, types.Entry{
				Stage:    types.StageParamType,
				Key:      strings.ToLower(name),
				Spelling: strings.ToUpper(name),
			})
		}
	}
	return entries
}

// returnTypeEntries picks the identifier after "return" in the header.
func returnTypeEntries(header string) []types.Entry {
	toks := lexer.Lex(header)
	for i, t := range toks {
		if t.IsWord("return") && toks[i+1].Type == lexer.TokenIdent {
			name := toks[i+1].Value
			return []types.Entry{{
				Stage:    types.StageReturnType,
				Key:      strings.ToLower(name),
				Spelling: strings.ToUpper(name),
			}}
		}
	}
	return nil
}

// loopVariableEntries finds every "for <identifier> in" over the whole
// comment-stripped text and marks the identifier as a lowercase loop
// variable. The conditional demotion rule lives in types.Resolve.
func loopVariableEntries(text string) []types.Entry {
	stripped := stripAllComments(text)
	toks := lexer.Lex(stripped)

	var entries []types.Entry
	for i := 0; i+2 < len(toks); i++ {
		if toks[i].IsWord("for") && toks[i+1].Type == lexer.TokenIdent && toks[i+2].IsWord("in") {
			name := toks[i+1].Value
			entries = append(entries, types.Entry{
				Stage:    types.StageLoopVar,
				Key:      strings.ToLower(name),
				Spelling: strings.ToLower(name),
			})
		}
	}
	return entries
}

// externalGlobalEntries finds lines of the form "<identifier> := ..." whose
// identifier opens the line. Resolve keeps such an entry only when nothing
// else declared the name, inferring an externally declared global.
func externalGlobalEntries(text string) []types.Entry {
	var entries []types.Entry
	for _, line := range strings.Split(text, "\n") {
		toks := lexer.Lex(lexer.StripComment(line))
		if len(toks) < 3 {
			continue
		}
		if toks[0].Type == lexer.TokenIdent && toks[1].Type == lexer.TokenAssign {
			name := toks[0].Value
			entries = append(entries, types.Entry{
				Stage:    types.StageExternalGlobal,
				Key:      strings.ToLower(name),
				Spelling: strings.ToUpper(name),
			})
		}
	}
	return entries
}

func stripAllComments(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = lexer.StripComment(line)
	}
	return strings.Join(lines, "\n")
}

// splitAfterLines splits keeping line terminators so offsets stay aligned
// with the original text.
func splitAfterLines(text string) []string {
	return strings.SplitAfter(text, "\n")
}
