// Package archiver packs resolved file lists into tar archives with optional
// compression.
package archiver

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/mholt/archiver/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Algo selects the compression applied on top of the tar stream.
type Algo string

const (
	AlgoNone  Algo = "none"
	AlgoGzip  Algo = "gz"
	AlgoBzip2 Algo = "bz2"
	AlgoXz    Algo = "xz"
	AlgoZstd  Algo = "zst"
)

// ParseAlgo validates a user-supplied algorithm name, case-insensitively.
func ParseAlgo(s string) (Algo, error) {
	algo := Algo(strings.ToLower(s))
	switch algo {
	case AlgoNone, AlgoGzip, AlgoBzip2, AlgoXz, AlgoZstd:
		return algo, nil
	}
	return "", fmt.Errorf("unknown compression algorithm %q (choose none, gz, bz2, xz or zst)", s)
}

// Extension returns the file extension for archives using this algorithm.
func (a Algo) Extension() string {
	if a == AlgoNone {
		return "tar"
	}
	return "tar." + string(a)
}

func (a Algo) compression() archiver.Compression {
	switch a {
	case AlgoGzip:
		return archiver.Gz{}
	case AlgoBzip2:
		return archiver.Bz2{}
	case AlgoXz:
		return archiver.Xz{}
	case AlgoZstd:
		return archiver.Zstd{}
	default:
		return nil
	}
}

// Create archives the given paths into dst. Directories are added
// recursively. Paths that no longer exist are skipped with a warning, since
// sticky manifest entries may name files that are currently absent.
func Create(ctx context.Context, paths []string, dst string, algo Algo) error {
	existing, err := existingPaths(paths)
	if err != nil {
		return err
	}

	filesMap := make(map[string]string)
	for _, src := range existing {
		// Map source file paths, trimming leading slashes
		filesMap[src] = strings.TrimLeft(src, "/")
	}

	// Collect files from disk for archiving
	files, err := archiver.FilesFromDisk(nil, filesMap)
	if err != nil {
		return fmt.Errorf("error collecting files from disk: %v", err)
	}

	// Create the destination archive file
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("error creating archive file %s: %v", dst, err)
	}
	defer out.Close()

	tar := archiver.Tar{ContinueOnError: true}

	if comp := algo.compression(); comp != nil {
		format := archiver.CompressedArchive{
			Compression: comp,
			Archival:    tar,
		}
		err = format.Archive(ctx, out, files)
	} else {
		err = tar.Archive(ctx, out, files)
	}
	if err != nil {
		return fmt.Errorf("error archiving files: %v", err)
	}

	logrus.Debugf("Successfully created archive: %s", dst)
	return nil
}

// existingPaths filters out paths that are gone from disk, keeping input
// order. Stat errors other than absence abort the archive.
func existingPaths(paths []string) ([]string, error) {
	numCPU := runtime.NumCPU()
	sem := make(chan struct{}, numCPU)
	var g errgroup.Group

	present := make([]bool, len(paths))
	for i, path := range paths {
		i, path := i, path

		sem <- struct{}{} // Acquire a semaphore slot

		g.Go(func() error {
			defer func() { <-sem }() // Release the semaphore slot

			_, err := os.Lstat(path)
			if os.IsNotExist(err) {
				logrus.Warnf("Path %s not found, skipping", path)
				return nil
			} else if err != nil {
				return fmt.Errorf("error getting file info for path %s: %v", path, err)
			}
			present[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(paths))
	for i, path := range paths {
		if present[i] {
			out = append(out, path)
		}
	}
	return out, nil
}
