package sched

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load("")
	assert.Equal(t, DefaultQuantum, cfg.Quantum)
	assert.Equal(t, 100, cfg.SampleIntervalMS)
	assert.Equal(t, 9095, cfg.Port)
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "quantum: 4\nsample_interval_ms: 50\nport: 8088\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg := Load(path)
	assert.Equal(t, 4, cfg.Quantum)
	assert.Equal(t, 50, cfg.SampleIntervalMS)
	assert.Equal(t, 8088, cfg.Port)
}

func TestLoadClampsNonPositiveValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "quantum: -1\nsample_interval_ms: 0\nport: -80\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg := Load(path)
	assert.Equal(t, defaultConfig(), cfg)
}
