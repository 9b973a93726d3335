package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLaterStageWins(t *testing.T) {
	t.Parallel()
	entries := []Entry{
		{Stage: StageGlobal, Key: "total", Spelling: "TOTAL"},
		{Stage: StageLocal, Key: "total", Spelling: "total"},
	}
	m := Resolve(entries)
	assert.Equal(t, "total", m["total"])
}

func TestResolveTypeNameWinsOverParameter(t *testing.T) {
	t.Parallel()
	entries := []Entry{
		{Stage: StageParam, Key: "day", Spelling: "day"},
		{Stage: StageParamType, Key: "day", Spelling: "DAY"},
	}
	m := Resolve(entries)
	assert.Equal(t, "DAY", m["day"])
}

func TestResolveLoopVarDemotesUppercase(t *testing.T) {
	t.Parallel()
	entries := []Entry{
		{Stage: StageGlobal, Key: "idx", Spelling: "IDX"},
		{Stage: StageLoopVar, Key: "idx", Spelling: "idx"},
	}
	m := Resolve(entries)
	assert.Equal(t, "idx", m["idx"])
}

func TestResolveLoopVarKeepsLowercase(t *testing.T) {
	t.Parallel()
	entries := []Entry{
		{Stage: StageParam, Key: "n", Spelling: "n"},
		{Stage: StageLoopVar, Key: "n", Spelling: "n"},
	}
	m, stages := ResolveStages(entries)
	assert.Equal(t, "n", m["n"])
	// The parameter classification survives; the loop-variable rule did not fire.
	assert.Equal(t, StageParam, stages["n"])
}

func TestResolveLoopVarOnFreshKey(t *testing.T) {
	t.Parallel()
	m := Resolve([]Entry{{Stage: StageLoopVar, Key: "i", Spelling: "i"}})
	assert.Equal(t, "i", m["i"])
}

func TestResolveExternalGlobalOnlyWhenAbsent(t *testing.T) {
	t.Parallel()
	entries := []Entry{
		{Stage: StageLocal, Key: "total", Spelling: "total"},
		{Stage: StageExternalGlobal, Key: "total", Spelling: "TOTAL"},
		{Stage: StageExternalGlobal, Key: "count", Spelling: "COUNT"},
	}
	m, stages := ResolveStages(entries)
	assert.Equal(t, "total", m["total"])
	assert.Equal(t, "COUNT", m["count"])
	assert.Equal(t, StageExternalGlobal, stages["count"])
}

func TestIsAllUpper(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected bool
	}{
		{"TOTAL", true},
		{"X_1", true},
		{"total", false},
		{"Total", false},
		{"_1", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsAllUpper(tt.input), "input %q", tt.input)
	}
}

func TestCasePolicyApply(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "TOTAL", PolicyUpper.Apply("Total"))
	assert.Equal(t, "total", PolicyLower.Apply("Total"))
}

func TestStageString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "loop-variable", StageLoopVar.String())
	assert.Equal(t, "external-global", StageExternalGlobal.String())
	assert.Equal(t, "unknown", Stage(99).String())
}
