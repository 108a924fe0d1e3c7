package main

import (
	"os"
	"path/filepath"
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_defaults_001(t *testing.T) {
	assert := assert.New(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	defaults, err := NewDefaults(appName)
	assert.NoError(err)
	assert.Equal("", defaults.GetString("model"))
}

// A stored value survives a save and reload cycle, so a later run can
// fall back to the last model used
func Test_defaults_002(t *testing.T) {
	assert := assert.New(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	defaults, err := NewDefaults(appName)
	assert.NoError(err)
	defaults.Set("model", "gpt-4o")
	assert.NoError(defaults.Save())

	reloaded, err := NewDefaults(appName)
	assert.NoError(err)
	assert.Equal("gpt-4o", reloaded.GetString("model"))
}

func Test_defaults_003(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	defaults, err := NewDefaults(appName)
	assert.NoError(err)
	defaults.Set("model", "gpt-3.5-turbo")
	assert.NoError(defaults.Save())

	// The file lives in the application's config directory
	_, err = os.Stat(filepath.Join(dir, appName, defaultsFile))
	assert.NoError(err)

	// A non-string value reads back as empty
	defaults.Set("days", 5)
	assert.Equal("", defaults.GetString("days"))
}
