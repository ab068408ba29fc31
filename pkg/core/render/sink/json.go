package sink

import (
	"encoding/json"

	"github.com/matzehuels/venngen/pkg/core/venn"
	"github.com/matzehuels/venngen/pkg/errors"
)

// RenderJSON returns d as indented JSON, terminated by a newline.
func RenderJSON(d venn.Diagram) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal layout")
	}
	return append(data, '\n'), nil
}
