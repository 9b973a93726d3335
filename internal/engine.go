package internal

import (
	"github.com/adaforge/acase/internal/types"
)

// Engine derives an identifier-casing mapping for one source file and applies
// it. It holds no state: every call classifies from scratch, and nothing is
// shared across files.
type Engine struct{}

// NewEngine creates a new normalization engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Classify returns the ordered classification entries for the source. The
// unit kind picks the path: package units scan every declaration as global;
// subprogram units layer globals, parameters, return type, locals, loop
// variables, and inferred external globals.
func (e *Engine) Classify(source []byte) []types.Entry {
	text := string(source)
	if ClassifyUnit(text) == UnitPackage {
		return BuildPackageEntries(text)
	}
	return BuildSubprogramEntries(text)
}

// Mapping resolves the classification entries into the per-file mapping.
func (e *Engine) Mapping(source []byte) types.Mapping {
	return types.Resolve(e.Classify(source))
}

// NormalizeSource rewrites the source with its derived mapping.
// The returned error is always nil; it exists to satisfy norm.Normalizer.
func (e *Engine) NormalizeSource(source []byte) ([]byte, error) {
	return []byte(Apply(string(source), e.Mapping(source))), nil
}
