package scene

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/maruel/natural"

	"github.com/matzehuels/flowline/pkg/errors"
)

// imageExts are the file extensions LoadDir picks up.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
}

// LoadDir builds a scene from a directory of images: one item per image file,
// sized to the image's pixel bounds, ordered naturally by filename so that
// "img2" sorts before "img10". Item IDs are the filenames without extension.
func LoadDir(dir string) (*Scene, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "image directory %s not found", dir)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read image directory %s", dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no images in %s", dir)
	}
	sort.Sort(natural.StringSlice(names))

	s := &Scene{Title: filepath.Base(dir)}
	for _, name := range names {
		path := filepath.Join(dir, name)
		img, err := imaging.Open(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open image %s", path)
		}
		bounds := img.Bounds()
		id := strings.TrimSuffix(name, filepath.Ext(name))
		s.Items = append(s.Items, Item{
			ID:     id,
			Label:  id,
			Width:  float64(bounds.Dx()),
			Height: float64(bounds.Dy()),
			Image:  path,
		})
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
