package render

import (
	"encoding/json"

	"github.com/ericlevine/code39"
)

// JSON encodes the plan as
// {"rects":[{"x","width","height"}],"total_width","total_height","unit_width"}.
func JSON(p code39.Plan) ([]byte, error) {
	if p.Rects == nil {
		p.Rects = []code39.Rect{}
	}
	return json.Marshal(p)
}
