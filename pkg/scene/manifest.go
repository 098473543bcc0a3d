package scene

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/flowline/pkg/errors"
)

// Load reads a scene manifest from disk. The format is chosen by extension:
// .toml or .json. The returned scene is validated.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read manifest %s", path)
	}

	var s *Scene
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		s, err = parseTOML(data)
	case ".json":
		s, err = parseJSON(data)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported manifest extension %q (want .toml or .json)", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	// Image paths in the manifest are relative to the manifest file.
	dir := filepath.Dir(path)
	for i := range s.Items {
		if img := s.Items[i].Image; img != "" && !filepath.IsAbs(img) {
			s.Items[i].Image = filepath.Join(dir, img)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// tomlManifest is the on-disk TOML shape:
//
//	[scene]
//	title = "dashboard"
//	gap = 10.0
//	row_gap = 5.0
//
//	[[item]]
//	id = "chart"
//	width = 120
//	height = 40
type tomlManifest struct {
	Scene struct {
		Title  string   `toml:"title"`
		Gap    *float64 `toml:"gap"`
		RowGap *float64 `toml:"row_gap"`
	} `toml:"scene"`
	Items []Item `toml:"item"`
}

func parseTOML(data []byte) (*Scene, error) {
	var m tomlManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse TOML manifest")
	}
	return &Scene{
		Title: m.Scene.Title,
		Defaults: Defaults{
			Gap:    m.Scene.Gap,
			RowGap: m.Scene.RowGap,
		},
		Items: m.Items,
	}, nil
}

func parseJSON(data []byte) (*Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse JSON manifest")
	}
	return &s, nil
}
