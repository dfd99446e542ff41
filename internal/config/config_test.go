package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "difftool.yaml")
	content := []byte("ignore_trim_whitespace: true\nmax_computation_time_ms: 1500\nextend_to_subwords: true\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.IgnoreTrimWhitespace)
	assert.EqualValues(t, 1500, cfg.MaxComputationTimeMs)
	assert.True(t, cfg.ExtendToSubwords)

	opts := cfg.Options()
	assert.True(t, opts.IgnoreTrimWhitespace)
	assert.EqualValues(t, 1500, opts.MaxComputationTimeMs)
	assert.True(t, opts.ExtendToSubwords)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "difftool.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ignore_trim_whitespace: [not-a-bool"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
