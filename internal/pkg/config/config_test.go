package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botfileid/pkg"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, "text", c.Log.Format)
	assert.Equal(t, "json", c.Output.Format)
	assert.True(t, c.Output.Indent)
	require.NoError(t, c.Validate())
}

func TestLoad_File(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeFile(t, "config.yaml", `
log:
  level: debug
  format: json
output:
  format: text
  indent: false
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "text", c.Output.Format)
	assert.False(t, c.Output.Indent)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeFile(t, "config.yaml", "log:\n  level: debug\n")
	t.Setenv("BOTFILEID_LOG_LEVEL", "error")
	t.Setenv("BOTFILEID_OUTPUT_FORMAT", "text")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", c.Log.Level)
	assert.Equal(t, "text", c.Output.Format)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BOTFILEID_LOG_FORMAT=json\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("BOTFILEID_LOG_FORMAT") })

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", c.Log.Format)
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	c, err := Load(DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	var cfgErr *pkg.ErrConfig
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "failed to read config file", cfgErr.Cause)

	_, err = Load(writeFile(t, "bad.yaml", "log: ["))
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "failed to parse config file", cfgErr.Cause)

	_, err = Load(writeFile(t, "format.yaml", "output:\n  format: xml\n"))
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "invalid output format", cfgErr.Cause)
}
