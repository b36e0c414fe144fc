package render

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dshills/marsprecedents/internal/schema"
)

type yamlRenderer struct{}

func (r *yamlRenderer) Render(s *schema.Summary) ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("rendering yaml: %w", err)
	}
	return out, nil
}
