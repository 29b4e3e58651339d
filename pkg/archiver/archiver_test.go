package archiver_test

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kukaryambik/packrat/pkg/archiver"
)

// readTarNames collects the entry names of a tar stream.
func readTarNames(t *testing.T, r io.Reader) []string {
	t.Helper()
	var names []string
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names = append(names, hdr.Name)
	}
	return names
}

func TestCreatePlainTar(t *testing.T) {
	// Create a temporary source directory with files and a subdirectory.
	srcDir, err := os.MkdirTemp("", "archiver_test_src")
	require.NoError(t, err)
	defer os.RemoveAll(srcDir)

	err = os.Mkdir(filepath.Join(srcDir, "subdir"), 0755)
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(srcDir, "file1.txt"), []byte("This is file 1"), 0644)
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(srcDir, "subdir", "file2.txt"), []byte("This is file 2"), 0644)
	require.NoError(t, err)

	dstDir, err := os.MkdirTemp("", "archiver_test_dst")
	require.NoError(t, err)
	defer os.RemoveAll(dstDir)
	archivePath := filepath.Join(dstDir, "out.tar")

	// Archive one file and one directory; the directory must be walked
	// recursively.
	err = archiver.Create(context.Background(),
		[]string{
			filepath.Join(srcDir, "file1.txt"),
			filepath.Join(srcDir, "subdir"),
		},
		archivePath, archiver.AlgoNone)
	require.NoError(t, err)

	input, err := os.Open(archivePath)
	require.NoError(t, err)
	defer input.Close()

	names := readTarNames(t, input)
	assert.Contains(t, names, strings.TrimLeft(filepath.Join(srcDir, "file1.txt"), "/"))
	assert.Contains(t, names, strings.TrimLeft(filepath.Join(srcDir, "subdir", "file2.txt"), "/"))
}

func TestCreateSkipsMissingPaths(t *testing.T) {
	srcDir, err := os.MkdirTemp("", "archiver_test_src")
	require.NoError(t, err)
	defer os.RemoveAll(srcDir)

	err = os.WriteFile(filepath.Join(srcDir, "present.txt"), []byte("here"), 0644)
	require.NoError(t, err)

	archivePath := filepath.Join(srcDir, "out.tar")

	// A vanished path must not fail the archive.
	err = archiver.Create(context.Background(),
		[]string{
			filepath.Join(srcDir, "present.txt"),
			filepath.Join(srcDir, "missing.txt"),
		},
		archivePath, archiver.AlgoNone)
	require.NoError(t, err)

	input, err := os.Open(archivePath)
	require.NoError(t, err)
	defer input.Close()

	names := readTarNames(t, input)
	assert.Contains(t, names, strings.TrimLeft(filepath.Join(srcDir, "present.txt"), "/"))
	assert.NotContains(t, names, strings.TrimLeft(filepath.Join(srcDir, "missing.txt"), "/"))
}

func TestCreateGzip(t *testing.T) {
	srcDir, err := os.MkdirTemp("", "archiver_test_src")
	require.NoError(t, err)
	defer os.RemoveAll(srcDir)

	err = os.WriteFile(filepath.Join(srcDir, "file.txt"), []byte("compressed content"), 0644)
	require.NoError(t, err)

	archivePath := filepath.Join(srcDir, "out.tar.gz")

	err = archiver.Create(context.Background(),
		[]string{filepath.Join(srcDir, "file.txt")},
		archivePath, archiver.AlgoGzip)
	require.NoError(t, err)

	input, err := os.Open(archivePath)
	require.NoError(t, err)
	defer input.Close()

	gz, err := gzip.NewReader(input)
	require.NoError(t, err)
	defer gz.Close()

	tr := tar.NewReader(gz)
	hdr, err := tr.Next()
	require.NoError(t, err)
	assert.Equal(t, strings.TrimLeft(filepath.Join(srcDir, "file.txt"), "/"), hdr.Name)

	content, err := io.ReadAll(tr)
	require.NoError(t, err)
	assert.Equal(t, "compressed content", string(content))
}

func TestParseAlgo(t *testing.T) {
	tests := []struct {
		in      string
		want    archiver.Algo
		wantErr bool
	}{
		{"gz", archiver.AlgoGzip, false},
		{"GZ", archiver.AlgoGzip, false},
		{"bz2", archiver.AlgoBzip2, false},
		{"xz", archiver.AlgoXz, false},
		{"zst", archiver.AlgoZstd, false},
		{"none", archiver.AlgoNone, false},
		{"rar", "", true},
	}
	for _, tt := range tests {
		got, err := archiver.ParseAlgo(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "tar", archiver.AlgoNone.Extension())
	assert.Equal(t, "tar.gz", archiver.AlgoGzip.Extension())
	assert.Equal(t, "tar.bz2", archiver.AlgoBzip2.Extension())
	assert.Equal(t, "tar.xz", archiver.AlgoXz.Extension())
	assert.Equal(t, "tar.zst", archiver.AlgoZstd.Extension())
}
