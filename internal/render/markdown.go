package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/dshills/marsprecedents/internal/schema"
)

type markdownRenderer struct{}

var mdTemplate = template.Must(template.New("summary").Parse(`# Precedent Corpus: {{ .Summary.Index }}

**Cases:** {{ .Summary.Total }}
**Terraforming:** {{ .Summary.Terraforming }}
**Mean risk:** {{ .Summary.MeanRisk }}

## Verdicts

| Verdict | Cases |
|---|---|
{{ range .Verdicts }}| {{ .Name }} | {{ .Count }} |
{{ end }}
## Sectors

| Sector | Cases |
|---|---|
{{ range .Sectors }}| {{ .Name }} | {{ .Count }} |
{{ end }}
## Development types

| Type | Cases |
|---|---|
{{ range .DevelopmentTypes }}| {{ .Name }} | {{ .Count }} |
{{ end }}`))

func (r *markdownRenderer) Render(s *schema.Summary) ([]byte, error) {
	data := struct {
		Summary          *schema.Summary
		Verdicts         []count
		Sectors          []count
		DevelopmentTypes []count
	}{
		Summary:          s,
		Verdicts:         verdictCounts(s),
		Sectors:          sortedCounts(s.Sectors),
		DevelopmentTypes: sortedCounts(s.DevelopmentTypes),
	}
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}
