package util

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

// Coalesce returns the first non-zero value from the list.
func Coalesce[T any](vals ...T) T {
	var zero T
	for _, v := range vals {
		r := reflect.ValueOf(v)
		if !r.IsZero() {
			return v
		}
	}
	return zero
}

// ExpandUser replaces a leading "~" with the current user's home directory.
// Paths that do not start with a tilde, and the "~user" form, are returned
// unchanged.
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
