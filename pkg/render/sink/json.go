package sink

import (
	"encoding/json"

	"github.com/matzehuels/flowline/pkg/render"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	compact bool
}

// WithJSONCompact emits single-line JSON instead of the default indented form.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

// RenderJSON exports the frame as a JSON document. This is the interchange
// format: the output round-trips through [render.Unmarshal], so external
// tools and re-rendering both work from the same bytes.
func RenderJSON(f render.Frame, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.compact {
		return json.Marshal(&f)
	}
	return f.Marshal()
}
