package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	if dir == "" {
		t.Error("cacheDir() returned empty string")
	}

	// Should end with "flowline"
	if !strings.HasSuffix(dir, "flowline") {
		t.Errorf("cacheDir() = %q, should end with 'flowline'", dir)
	}

	// Verify the expected structure: $HOME/.cache/flowline
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", "flowline")
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", "flowline") {
		t.Errorf("cacheDir() = %q, should honor XDG_CACHE_HOME", dir)
	}
}

func TestFramePath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"scene.toml", "scene.frame.json"},
		{"dir/scene.json", "dir/scene.frame.json"},
		{"images", "images.frame.json"},
	}
	for _, tt := range tests {
		if got := framePath(tt.input); got != tt.want {
			t.Errorf("framePath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestOutputBase(t *testing.T) {
	tests := []struct {
		output string
		input  string
		want   string
	}{
		{"", "scene.toml", "scene"},
		{"out.svg", "scene.toml", "out"},
		{"out.png", "scene.toml", "out"},
		{"custom", "scene.toml", "custom"},
		{"keep.tar", "scene.toml", "keep.tar"},
	}
	for _, tt := range tests {
		if got := outputBase(tt.output, tt.input); got != tt.want {
			t.Errorf("outputBase(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); len(got) != 1 || got[0] != "svg" {
		t.Errorf("parseFormats(\"\") = %v, want [svg]", got)
	}
	if got := parseFormats("svg,png"); len(got) != 2 || got[1] != "png" {
		t.Errorf("parseFormats(\"svg,png\") = %v", got)
	}
}

func TestOptionalGap(t *testing.T) {
	if optionalGap(-1) != nil {
		t.Error("negative value should mean unset")
	}
	if g := optionalGap(0); g == nil || *g != 0 {
		t.Error("zero is a valid explicit gap")
	}
	if g := optionalGap(12); g == nil || *g != 12 {
		t.Error("positive value should pass through")
	}
}
