package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/flowline/pkg/errors"
)

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeManifest(t, "scene.toml", `
[scene]
title = "dashboard"
gap = 12.0
row_gap = 6.0

[[item]]
id = "chart"
label = "Chart"
width = 120
height = 40
color = "#4C9AFF"

[[item]]
id = "table"
width = 200
height = 80
gap = 20.0
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.Title != "dashboard" {
		t.Errorf("Title = %q", s.Title)
	}
	if s.Gap() != 12 || s.RowGap() != 6 {
		t.Errorf("defaults = %g/%g, want 12/6", s.Gap(), s.RowGap())
	}
	if len(s.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(s.Items))
	}
	if s.Items[0].ID != "chart" || s.Items[0].Color != "#4C9AFF" {
		t.Errorf("item 0 = %+v", s.Items[0])
	}
	if s.Items[1].Gap == nil || *s.Items[1].Gap != 20 {
		t.Errorf("item 1 gap = %v, want 20", s.Items[1].Gap)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeManifest(t, "scene.json", `{
		"title": "icons",
		"defaults": {"gap": 4},
		"items": [
			{"id": "a", "width": 32, "height": 32},
			{"id": "b", "width": 32, "height": 32}
		]
	}`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.Gap() != 4 {
		t.Errorf("Gap = %g, want 4", s.Gap())
	}
	if s.RowGap() != DefaultRowGap {
		t.Errorf("RowGap = %g, want default %g", s.RowGap(), DefaultRowGap)
	}
	if len(s.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(s.Items))
	}
}

func TestLoadRelativeImagePaths(t *testing.T) {
	path := writeManifest(t, "scene.toml", `
[[item]]
id = "photo"
width = 64
height = 64
image = "assets/photo.png"
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want := filepath.Join(filepath.Dir(path), "assets", "photo.png")
	if s.Items[0].Image != want {
		t.Errorf("Image = %q, want %q", s.Items[0].Image, want)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("err = %v, want FILE_NOT_FOUND", err)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeManifest(t, "scene.yaml", "items: []")
		_, err := Load(path)
		if !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Errorf("err = %v, want UNSUPPORTED", err)
		}
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeManifest(t, "scene.toml", "[[item\nid =")
		_, err := Load(path)
		if !errors.Is(err, errors.ErrCodeInvalidManifest) {
			t.Errorf("err = %v, want INVALID_MANIFEST", err)
		}
	})

	t.Run("invalid scene", func(t *testing.T) {
		path := writeManifest(t, "scene.toml", `
[[item]]
id = "a"
width = -5
height = 10
`)
		_, err := Load(path)
		if !errors.Is(err, errors.ErrCodeInvalidManifest) {
			t.Errorf("err = %v, want INVALID_MANIFEST", err)
		}
	})
}
