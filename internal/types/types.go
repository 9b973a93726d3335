package types

import "strings"

// Mapping is the per-file identifier table: canonical (lowercase) name to
// assigned spelling. It is created fresh for every file, applied once, and
// discarded.
type Mapping map[string]string

// Stage identifies which classification pass produced an Entry. Stages are
// resolved in declaration order; a later stage wins at the same canonical key
// unless its override rule says otherwise.
type Stage int

const (
	StageGlobal Stage = iota
	StageGlobalType
	StageParam
	StageParamType
	StageReturnType
	StageLocal
	StageLocalType
	StageLoopVar
	StageExternalGlobal
)

func (s Stage) String() string {
	switch s {
	case StageGlobal:
		return "global"
	case StageGlobalType:
		return "global-type"
	case StageParam:
		return "parameter"
	case StageParamType:
		return "parameter-type"
	case StageReturnType:
		return "return-type"
	case StageLocal:
		return "local"
	case StageLocalType:
		return "local-type"
	case StageLoopVar:
		return "loop-variable"
	case StageExternalGlobal:
		return "external-global"
	default:
		return "unknown"
	}
}

// Entry records one classification decision for one identifier.
type Entry struct {
	Stage    Stage
	Key      string // canonical (lowercase) name
	Spelling string
}

// Resolve folds an ordered entry list into a Mapping. Later entries override
// earlier ones at the same key, with two exceptions:
//   - StageLoopVar applies only when the key is absent or its current spelling
//     is all-uppercase (demoting a global/constant/type to a loop variable).
//   - StageExternalGlobal applies only when the key is absent.
func Resolve(entries []Entry) Mapping {
	m, _ := ResolveStages(entries)
	return m
}

// ResolveStages is Resolve plus the stage whose entry produced each surviving
// spelling, for diagnostic output.
func ResolveStages(entries []Entry) (Mapping, map[string]Stage) {
	m := make(Mapping, len(entries))
	stages := make(map[string]Stage, len(entries))
	for _, e := range entries {
		switch e.Stage {
		case StageLoopVar:
			if cur, ok := m[e.Key]; ok && !IsAllUpper(cur) {
				continue
			}
		case StageExternalGlobal:
			if _, ok := m[e.Key]; ok {
				continue
			}
		}
		m[e.Key] = e.Spelling
		stages[e.Key] = e.Stage
	}
	return m, stages
}

// IsAllUpper reports whether s contains at least one letter and no lowercase
// letters. Digits and underscores do not count against it.
func IsAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= 'A' && r <= 'Z':
			hasLetter = true
		}
	}
	return hasLetter
}

// CasePolicy is the default casing applied to non-constant object
// declarations within a line range. Constants and type names are uppercase
// regardless of policy.
type CasePolicy int

const (
	PolicyUpper CasePolicy = iota
	PolicyLower
)

// Apply returns name in the policy's casing.
func (p CasePolicy) Apply(name string) string {
	if p == PolicyUpper {
		return strings.ToUpper(name)
	}
	return strings.ToLower(name)
}
