package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	assert.Equal(t, 3, Min(3, 7))
	assert.Equal(t, 7, Min(7, 3))
	assert.Equal(t, 7, Max(3, 7))
	assert.Equal(t, 7, Max(7, 3))
}

func TestNpsOneMillionNodesPerSecond(t *testing.T) {
	nps := Nps(1_000_000, time.Second)
	assert.InDelta(t, 1_000_000, nps, 1)
}

func TestResolveFileFindsFileInCwd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	resolved, err := ResolveFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
}

func TestResolveFileReturnsErrorWhenMissingEverywhere(t *testing.T) {
	_, err := ResolveFile(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Error(t, err)
}
