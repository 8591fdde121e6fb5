package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/curvekit/internal/config"
	"github.com/xtding233/curvekit/internal/library"
)

func TestRNGFactorySeeded(t *testing.T) {
	a, b := rngFactory(9), rngFactory(9)
	first := a().Float64()
	assert.Equal(t, first, b().Float64())
	assert.NotEqual(t, first, a().Float64(), "each call gets the next seed")
}

func TestLoadLibraryBuiltIn(t *testing.T) {
	h, stop, err := loadLibrary(config.Env{})
	require.NoError(t, err)
	defer stop()
	got, err := h.Load().Eval(library.PopulationSize, 50)
	require.NoError(t, err)
	assert.InDelta(t, 718.75, got, 1e-9)
}

func TestLoadLibraryReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "default.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: v1\n"), 0o644))

	h, stop, err := loadLibrary(config.Env{ConfigDir: dir, WatchInterval: 10 * time.Millisecond})
	require.NoError(t, err)
	defer stop()
	before := h.Load()

	require.NoError(t, os.WriteFile(path, []byte("version: v2\ncurves:\n  population_size:\n    exponent: 2\n    min_output: 0\n"), 0o644))
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	assert.Eventually(t, func() bool { return h.Load() != before }, 2*time.Second, 10*time.Millisecond)
	got, err := h.Load().Eval(library.PopulationSize, 50)
	require.NoError(t, err)
	assert.InDelta(t, 2500, got, 1e-9)
}
