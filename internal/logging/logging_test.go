package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DiscardsWhenDebugOff(t *testing.T) {
	t.Setenv("FRESHCART_DEBUG", "")
	t.Setenv("FRESHCART_DEBUG_FILE", "")

	path, err := Initialize(Options{MaxLogFiles: DefaultMaxLogFiles})

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_CustomDebugFile(t *testing.T) {
	t.Setenv("FRESHCART_DEBUG", "")
	t.Setenv("FRESHCART_DEBUG_FILE", "")
	file := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(Options{DebugFile: file, Quiet: true})
	require.NoError(t, err)
	assert.Equal(t, file, path)

	Logger.Info("hello", "k", "v")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestInitialize_InheritsDebugFileFromEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), "env.log")
	t.Setenv("FRESHCART_DEBUG", "1")
	t.Setenv("FRESHCART_DEBUG_FILE", file)

	path, err := Initialize(Options{})

	require.NoError(t, err)
	assert.Equal(t, file, path)
}

func TestRotateLogs_RemovesOldest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"a.log", "b.log", "c.log"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, mod, mod))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 2))

	_, err := os.Stat(filepath.Join(dir, "a.log"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "b.log"))
	assert.True(t, os.IsNotExist(err))
	assert.FileExists(t, filepath.Join(dir, "c.log"))
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
}
