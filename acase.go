// Package acase normalizes identifier casing in Ada-like source text:
// package-level names, constants, and type names become uppercase, while
// subprogram parameters, locals, and loop variables become lowercase. The
// classification is heuristic and line-oriented; it does not parse the
// language.
package acase

import (
	"github.com/adaforge/acase/internal"
)

// Normalize rewrites the source with the casing mapping derived from it.
func Normalize(source []byte) []byte {
	rewritten, _ := internal.NewEngine().NormalizeSource(source)
	return rewritten
}

// Mapping returns the canonical-name to assigned-spelling table the
// heuristics derived for the source.
func Mapping(source []byte) map[string]string {
	return internal.NewEngine().Mapping(source)
}
