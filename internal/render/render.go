package render

import (
	"fmt"
	"sort"

	"github.com/dshills/marsprecedents/internal/schema"
)

// Renderer formats a corpus Summary into bytes for output.
type Renderer interface {
	Render(s *schema.Summary) ([]byte, error)
}

// NewRenderer returns a Renderer for the given format string.
// Supported formats: "text" (default), "json", "md", "yaml".
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "text", "":
		return &textRenderer{}, nil
	case "json":
		return &jsonRenderer{}, nil
	case "md":
		return &markdownRenderer{}, nil
	case "yaml":
		return &yamlRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are text, json, md, yaml", format)
	}
}

// verdictOrder is the display order for verdict rows.
var verdictOrder = []schema.Verdict{schema.VerdictApprove, schema.VerdictConditional, schema.VerdictReject}

type count struct {
	Name  string
	Count int
}

// sortedCounts returns m as rows ordered by name.
func sortedCounts(m map[string]int) []count {
	out := make([]count, 0, len(m))
	for k, v := range m {
		out = append(out, count{Name: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func verdictCounts(s *schema.Summary) []count {
	out := make([]count, 0, len(verdictOrder))
	for _, v := range verdictOrder {
		out = append(out, count{Name: string(v), Count: s.Verdicts[string(v)]})
	}
	return out
}
