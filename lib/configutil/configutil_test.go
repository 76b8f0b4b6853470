package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string `json:"name"`
	Timeout int    `json:"timeout"`
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")

	err := os.WriteFile(path, []byte(`{
		// comments are allowed
		name: "default",
		timeout: 30,
	}`), 0644)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, "default", config.Name)
	require.Equal(t, 30, config.Timeout)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "config.json5"), []byte(`{
		name: "default",
		timeout: 30,
	}`), 0644)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{
		timeout: 5,
	}`), 0644)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, "default", config.Name)
	require.Equal(t, 5, config.Timeout)
}

func TestReadConfigNotFound(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.True(t, os.IsNotExist(err))
}
