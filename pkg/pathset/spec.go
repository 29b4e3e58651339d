// Package pathset turns declarative path specifications into concrete,
// non-overlapping file sets. A specification is a path or glob pattern plus
// flags, and a set of them resolves to the files it effectively selects.
package pathset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kukaryambik/packrat/pkg/util"
)

// Width of the flag field that prefixes every serialized spec line.
const flagsWidth = 5

// Flag columns and their markers. Unused columns are reserved.
const (
	colExcluded = 0
	colSticky   = 1
	colGlob     = 2

	markExcluded = 'x'
	markSticky   = '?'
	markGlob     = 'g'
)

// Spec is a single path specification.
type Spec struct {
	// Path is the canonical absolute path or glob pattern.
	Path string
	// Excluded marks the entry as a subtraction from the set.
	Excluded bool
	// Sticky keeps the entry in the manifest even when the path
	// does not exist on disk.
	Sticky bool
	// Glob marks the entry for glob expansion during resolution.
	Glob bool
}

// New builds a Spec with a canonicalized path.
func New(path string, excluded, sticky, glob bool) (Spec, error) {
	p, err := Canonical(path)
	if err != nil {
		return Spec{}, err
	}
	return Spec{Path: p, Excluded: excluded, Sticky: sticky, Glob: glob}, nil
}

// Canonical expands a leading tilde, makes the path absolute and strips any
// trailing separator. Escaped wildcards survive untouched.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(util.ExpandUser(path))
	if err != nil {
		return "", fmt.Errorf("cannot canonicalize %s: %v", path, err)
	}
	return abs, nil
}

// Parse decodes one serialized manifest line into a Spec. The line starts
// with a fixed-width flag field, then a separator, then the path. Unknown
// characters in the flag field mean the flag is not set.
func Parse(line string) (Spec, error) {
	line = strings.TrimRight(line, "\r\n")
	if len(line) < flagsWidth+1 {
		return Spec{}, fmt.Errorf("%w: %q is shorter than the flag prefix", ErrLineFormat, line)
	}
	return New(
		strings.TrimSpace(line[flagsWidth+1:]),
		line[colExcluded] == markExcluded,
		line[colSticky] == markSticky,
		line[colGlob] == markGlob,
	)
}

// Line serializes the Spec back into its manifest form.
func (s Spec) Line() string {
	flags := []byte(strings.Repeat(" ", flagsWidth))
	if s.Excluded {
		flags[colExcluded] = markExcluded
	}
	if s.Sticky {
		flags[colSticky] = markSticky
	}
	if s.Glob {
		flags[colGlob] = markGlob
	}
	return string(flags) + " " + s.Path
}

func (s Spec) String() string {
	return s.Line()
}
