package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentOverrides(t *testing.T) {
	p := &Paths{
		appDir:         "cadence",
		configFileName: "config.yml",
		statusFileName: "status.json",
		logFileName:    "cadence.log",
	}

	p.applyEnvironmentOverrides("  ")
	assert.Equal(t, "config.yml", p.configFileName)

	p.applyEnvironmentOverrides("dev")
	assert.Equal(t, "config_dev.yml", p.configFileName)
	assert.Equal(t, "status_dev.json", p.statusFileName)
	assert.Equal(t, "cadence_dev.log", p.logFileName)
}

func TestComputePaths(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	xdg.Reload()

	p := &Paths{
		appDir:         "cadence",
		configFileName: "config.yml",
		statusFileName: "status.json",
		logFileName:    "cadence.log",
	}

	require.NoError(t, p.computePaths())

	dataDir := filepath.Join(dir, "data", "cadence")

	assert.Equal(t, filepath.Join(dir, "config", "cadence", "config.yml"), p.configFilePath)
	assert.Equal(t, filepath.Join(dataDir, "status.json"), p.statusFilePath)
	assert.Equal(t, filepath.Join(dataDir, "log", "cadence.log"), p.logFilePath)
	assert.Equal(t, filepath.Join(dataDir, "sounds"), p.soundsDir)
}

func TestStripExtension(t *testing.T) {
	assert.Equal(t, "bell", StripExtension("bell.ogg"))
	assert.Equal(t, "bell", StripExtension("bell"))
}
