// Package scan recognizes the limited declaration grammar the casing
// heuristics understand: type/subtype declarations, object declarations, and
// the type-name positions inside them. It works on token streams from the
// lexer, line by line; a line that matches nothing contributes nothing.
package scan

import (
	"strings"

	"github.com/adaforge/acase/internal/lexer"
	"github.com/adaforge/acase/internal/types"
)

// TypeRefs returns the type names referenced on a single line, in their
// original spelling, in the order found:
//  1. the identifier after the first declaration colon, past an optional
//     "constant" and an optional parameter mode ("in out", "in", "out"),
//  2. the identifier after "of" when the line mentions "array",
//  3. the identifier after "return".
//
// Each position is independent; a line may contribute up to three names.
// Comments must already be stripped by the caller.
func TypeRefs(line string) []string {
	toks := lexer.Lex(line)
	var names []string

	if name, ok := colonType(toks); ok {
		names = append(names, name)
	}
	if containsWord(toks, "array") {
		if name, ok := wordFollower(toks, "of"); ok {
			names = append(names, name)
		}
	}
	if name, ok := wordFollower(toks, "return"); ok {
		names = append(names, name)
	}
	return names
}

// colonType finds the declared type after the first colon that is actually
// followed by one. A ":=" carries no declared type.
func colonType(toks []lexer.Token) (string, bool) {
	for i, t := range toks {
		if t.Type != lexer.TokenColon {
			continue
		}
		j := i + 1
		if j < len(toks) && toks[j].IsWord("constant") {
			j++
		}
		if j < len(toks) && toks[j].IsWord("in") {
			if j+1 < len(toks) && toks[j+1].Type == lexer.TokenIdent && !toks[j+1].IsWord("out") {
				j++
			} else if j+2 < len(toks) && toks[j+1].IsWord("out") && toks[j+2].Type == lexer.TokenIdent {
				j += 2
			}
		} else if j < len(toks) && toks[j].IsWord("out") {
			if j+1 < len(toks) && toks[j+1].Type == lexer.TokenIdent {
				j++
			}
		}
		if j < len(toks) && toks[j].Type == lexer.TokenIdent {
			return toks[j].Value, true
		}
		// Keep looking: a later colon may carry the type position.
	}
	return "", false
}

// wordFollower returns the identifier immediately following the first
// occurrence of the given keyword.
func wordFollower(toks []lexer.Token, word string) (string, bool) {
	for i, t := range toks {
		if t.IsWord(word) && i+1 < len(toks) && toks[i+1].Type == lexer.TokenIdent {
			return toks[i+1].Value, true
		}
	}
	return "", false
}

func containsWord(toks []lexer.Token, word string) bool {
	for _, t := range toks {
		if t.IsWord(word) {
			return true
		}
	}
	return false
}

// Declarations scans lines for type/subtype and object declarations and
// returns the identifier entries and type-name entries they produce.
// Identifier entries carry idStage, type-name entries typeStage; the caller
// appends identifiers before type names so that type positions win on key
// collisions.
//
// Casing rules: declared type/subtype names and constants are always
// uppercase; other object names take the policy default.
func Declarations(lines []string, policy types.CasePolicy, idStage, typeStage types.Stage) (ids, typeNames []types.Entry) {
	for _, raw := range lines {
		code := lexer.StripComment(raw)
		toks := lexer.Lex(code)
		if len(toks) == 1 { // EOF only
			continue
		}

		// type/subtype declaration: declared name always uppercase.
		if (toks[0].IsWord("type") || toks[0].IsWord("subtype")) && toks[1].Type == lexer.TokenIdent {
			name := toks[1].Value
			ids = append(ids, types.Entry{
				Stage:    idStage,
				Key:      strings.ToLower(name),
				Spelling: strings.ToUpper(name),
			})
			typeNames = append(typeNames, typeEntries(code, typeStage)...)
			continue
		}

		// Object declaration: "<name> [, <name>...] : <remainder>".
		names, rest, ok := declNames(toks)
		if !ok {
			continue
		}
		isConst := containsWord(rest, "constant")
		for _, name := range names {
			spelling := policy.Apply(name)
			if isConst {
				spelling = strings.ToUpper(name)
			}
			ids = append(ids, types.Entry{
				Stage:    idStage,
				Key:      strings.ToLower(name),
				Spelling: spelling,
			})
		}
		typeNames = append(typeNames, typeEntries(code, typeStage)...)
	}
	return ids, typeNames
}

// DeclNames extracts the comma-separated identifier list preceding the first
// ":" or ":=" of a declaration-shaped token stream. Only identifiers and
// commas may appear before that point; a comma group holding anything but a
// single identifier is dropped while the rest still count.
func DeclNames(toks []lexer.Token) ([]string, bool) {
	names, _, ok := declNames(toks)
	return names, ok
}

func declNames(toks []lexer.Token) (names []string, rest []lexer.Token, ok bool) {
	colon := -1
	for i, t := range toks {
		// ":=" terminates the identifier list too: an assignment line such
		// as "Count := Count + 1;" inside a scanned declaration region is
		// classified like a non-constant object declaration of its LHS.
		if t.Type == lexer.TokenColon || t.Type == lexer.TokenAssign {
			colon = i
			break
		}
		if t.Type != lexer.TokenIdent && t.Type != lexer.TokenComma {
			return nil, nil, false
		}
	}
	if colon <= 0 {
		return nil, nil, false
	}

	var current []string
	flush := func() {
		if len(current) == 1 {
			names = append(names, current[0])
		}
		current = nil
	}
	for _, t := range toks[:colon] {
		if t.Type == lexer.TokenComma {
			flush()
			continue
		}
		current = append(current, t.Value)
	}
	flush()

	return names, toks[colon+1:], true
}

func typeEntries(code string, stage types.Stage) []types.Entry {
	var entries []types.Entry
	for _, name := range TypeRefs(code) {
		entries = append(entries, types.Entry{
			Stage:    stage,
			Key:      strings.ToLower(name),
			Spelling: strings.ToUpper(name),
		})
	}
	return entries
}
