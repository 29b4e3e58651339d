package pathset

import "testing"

func TestIsPattern(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/**", true},
		{"/foo/*", true},
		{"/foo/*.bkp", true},
		{"/foo/**", true},
		{"/foo/**/*.bkp", true},
		{"/foo/**/", true},
		{`/foo/\**/`, true},
		{`/foo/\*.bkp`, false},
		{"/foo/bar/", false},
		{"*.bkp", true},
		{"*", true},
		{"**", true},
		{`\*`, false},
		{`\**`, true},
		{`*\*`, true},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsPattern(tt.path); got != tt.want {
			t.Errorf("IsPattern(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestPriority(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"/", 0},
		{"/**/", 0},
		{"/foo", 1},
		{"/foo/", 1},
		{"/foo/**/bar/**/*.bkp", 2},
		{"/foo/**/bar/**/*.png", 2},
		{"/foo/bar/", 2},
		{"/foo/bar/baz.png", 3},
	}
	for _, tt := range tests {
		if got := Priority(tt.path); got != tt.want {
			t.Errorf("Priority(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestPathDepth(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"/", 0},
		{"/foo", 1},
		{"/foo/", 1},
		{"/foo/bar", 2},
		{"/foo/bar/baz.png", 3},
	}
	for _, tt := range tests {
		if got := pathDepth(tt.path); got != tt.want {
			t.Errorf("pathDepth(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestIsAncestor(t *testing.T) {
	tests := []struct {
		candidate string
		path      string
		want      bool
	}{
		{"/a", "/a/b", true},
		{"/a", "/a/b/c", true},
		{"/a", "/a", true},
		{"/a/", "/a", true},
		{"/a", "/ab", false},
		{"/a/b", "/a", false},
		{"/", "/anything", true},
		{"/", "/", true},
	}
	for _, tt := range tests {
		if got := IsAncestor(tt.candidate, tt.path); got != tt.want {
			t.Errorf("IsAncestor(%q, %q) = %v, want %v", tt.candidate, tt.path, got, tt.want)
		}
	}
}
