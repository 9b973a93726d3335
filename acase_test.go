package acase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	source := []byte("package Pkg is\n   X : Integer := 0;\nend Pkg;\n")
	expected := "package Pkg is\n   X : INTEGER := 0;\nend Pkg;\n"
	assert.Equal(t, expected, string(Normalize(source)))
}

func TestMapping(t *testing.T) {
	t.Parallel()
	mapping := Mapping([]byte("procedure P (N : Integer) is\nbegin\n   null;\nend P;\n"))
	assert.Equal(t, "n", mapping["n"])
	assert.Equal(t, "INTEGER", mapping["integer"])
}
