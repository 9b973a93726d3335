package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/adaforge/acase/norm"
)

func TestInitConfigurationFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".acase.yaml")

	require.NoError(t, initConfigurationFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var config norm.Config
	require.NoError(t, yaml.Unmarshal(data, &config))
	assert.Equal(t, norm.DefaultConfig(), config)
}
