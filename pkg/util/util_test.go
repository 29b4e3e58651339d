package util

import (
	"path/filepath"
	"testing"
)

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "a", "b"); got != "a" {
		t.Errorf("Coalesce() = %q, want %q", got, "a")
	}
	if got := Coalesce(0, 0, 3); got != 3 {
		t.Errorf("Coalesce() = %d, want %d", got, 3)
	}
	if got := Coalesce("", ""); got != "" {
		t.Errorf("Coalesce() = %q, want empty string", got)
	}
}

func TestExpandUser(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		path string
		want string
	}{
		{"~", home},
		{"~/docs", filepath.Join(home, "docs")},
		{"/abs/path", "/abs/path"},
		{"rel/path", "rel/path"},
		{"~user/docs", "~user/docs"},
	}
	for _, tt := range tests {
		if got := ExpandUser(tt.path); got != tt.want {
			t.Errorf("ExpandUser(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
