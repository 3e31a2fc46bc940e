package serialize

import (
	"encoding/json"

	"github.com/zendesk/snowcrash/internal/parser"
	"github.com/zendesk/snowcrash/internal/sourcemap"
)

type rangeDTO struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
}

type sourcemapNodeDTO struct {
	Self     []rangeDTO                   `json:"span,omitempty"`
	Fields   map[string]*sourcemapNodeDTO `json:"fields,omitempty"`
	Sequence []*sourcemapNodeDTO          `json:"sequence,omitempty"`
}

func toRangeDTOs(m sourcemap.SourceMap) []rangeDTO {
	if len(m) == 0 {
		return nil
	}
	out := make([]rangeDTO, len(m))
	for i, r := range m {
		out[i] = rangeDTO{Offset: r.Offset, Length: r.Length}
	}

	return out
}

func toSourcemapNodeDTO(n *parser.Node) *sourcemapNodeDTO {
	if n == nil {
		return nil
	}

	dto := &sourcemapNodeDTO{Self: toRangeDTOs(n.Self)}
	if len(n.Fields) > 0 {
		dto.Fields = make(map[string]*sourcemapNodeDTO, len(n.Fields))
		for name, child := range n.Fields {
			dto.Fields[name] = toSourcemapNodeDTO(child)
		}
	}
	for _, child := range n.Sequence {
		dto.Sequence = append(dto.Sequence, toSourcemapNodeDTO(child))
	}

	return dto
}

// SourcemapJSON renders a parser.Node source-map tree as indented JSON.
func SourcemapJSON(n *parser.Node) ([]byte, error) {
	return json.MarshalIndent(toSourcemapNodeDTO(n), "", "  ")
}
