package internal

import (
	"strings"

	"github.com/adaforge/acase/internal/lexer"
)

// UnitKind classifies a source file by its first decisive construct.
type UnitKind int

const (
	// UnitSubprogram is the default: the file is processed through the
	// subprogram path, which itself falls back to package-style scanning
	// when no subprogram keyword exists anywhere.
	UnitSubprogram UnitKind = iota
	UnitPackage
)

func (k UnitKind) String() string {
	if k == UnitPackage {
		return "package"
	}
	return "subprogram"
}

// ClassifyUnit scans lines in order, skipping blanks, comments, and leading
// with/use context clauses. The first line opening with "package" decides
// package unit; "procedure" or "function" decides subprogram unit. Lines
// matching neither are skipped and scanning continues; an exhausted scan
// defaults to subprogram.
func ClassifyUnit(text string) UnitKind {
	for _, line := range strings.Split(text, "\n") {
		toks := lexer.Lex(lexer.StripComment(line))
		if toks[0].Type != lexer.TokenIdent {
			continue
		}
		first := toks[0]
		switch {
		case first.IsWord("with"), first.IsWord("use"):
			continue
		case first.IsWord("package"):
			return UnitPackage
		case first.IsWord("procedure"), first.IsWord("function"):
			return UnitSubprogram
		}
	}
	return UnitSubprogram
}
