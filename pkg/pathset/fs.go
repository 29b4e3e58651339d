package pathset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Filesystem is the read-only view resolution runs against. Implementations
// return cleaned absolute paths.
type Filesystem interface {
	// Glob expands pattern, with "**" matching any number of directories.
	Glob(pattern string) ([]string, error)
	// ListDir returns the immediate children of a directory.
	ListDir(path string) ([]string, error)
	// Exists reports whether path refers to an existing file or directory.
	Exists(path string) bool
}

// OS is the Filesystem backed by the host filesystem.
type OS struct{}

func (OS) Glob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFailOnIOErrors())
	if err != nil {
		if errors.Is(err, doublestar.ErrBadPattern) {
			return nil, fmt.Errorf("%w: %q", ErrPattern, pattern)
		}
		return nil, fmt.Errorf("cannot expand %s: %w", pattern, err)
	}
	for i, m := range matches {
		matches[i] = filepath.Clean(m)
	}
	return matches, nil
}

func (OS) ListDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("cannot list %s: %w", path, err)
	}
	children := make([]string, 0, len(entries))
	for _, e := range entries {
		children = append(children, filepath.Join(path, e.Name()))
	}
	return children, nil
}

func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
