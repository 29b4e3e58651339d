package pathset

import "strings"

// IsPattern reports whether path contains at least one unescaped '*'.
// A star preceded by a backslash is an escaped literal and does not count.
func IsPattern(path string) bool {
	for i := 0; i < len(path); i++ {
		if path[i] == '*' && (i == 0 || path[i-1] != '\\') {
			return true
		}
	}
	return false
}

// Priority returns the number of non-pattern segments in path. Concrete
// segments pin a pattern down, so more of them means a more specific entry.
// The root path has priority 0.
func Priority(path string) int {
	n := 0
	for _, seg := range strings.Split(strings.Trim(path, "/"), "/") {
		if seg == "" {
			continue
		}
		if !IsPattern(seg) {
			n++
		}
	}
	return n
}

// pathDepth returns the number of segments in path. "/" has depth 0.
func pathDepth(path string) int {
	n := 0
	for _, seg := range strings.Split(strings.Trim(path, "/"), "/") {
		if seg != "" {
			n++
		}
	}
	return n
}
