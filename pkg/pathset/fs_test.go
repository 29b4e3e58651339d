package pathset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSGlobRecursive(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pathset-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	writeTree(t, tmpDir,
		[]string{"a/b"},
		[]string{"a/top.png", "a/b/deep.png", "a/b/skip.txt"},
	)

	got, err := OS{}.Glob(filepath.Join(tmpDir, "a/**/*.png"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(tmpDir, "a/top.png"),
		filepath.Join(tmpDir, "a/b/deep.png"),
	}, got)
}

func TestOSGlobBadPattern(t *testing.T) {
	_, err := OS{}.Glob("/[")
	assert.ErrorIs(t, err, ErrPattern)
}

func TestOSListDir(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pathset-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	writeTree(t, tmpDir, []string{"sub"}, []string{"file.txt"})

	got, err := OS{}.ListDir(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "file.txt"),
		filepath.Join(tmpDir, "sub"),
	}, got)

	_, err = OS{}.ListDir(filepath.Join(tmpDir, "missing"))
	assert.Error(t, err)
}

func TestOSExists(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pathset-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	assert.True(t, OS{}.Exists(tmpDir))
	assert.False(t, OS{}.Exists(filepath.Join(tmpDir, "missing")))
}
