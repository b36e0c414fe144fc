package render

import (
	"encoding/json"

	"github.com/dshills/marsprecedents/internal/schema"
)

type jsonRenderer struct{}

func (r *jsonRenderer) Render(s *schema.Summary) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
