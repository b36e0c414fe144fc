package render

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"

	"github.com/dshills/marsprecedents/internal/schema"
)

// textRenderer prints an aligned terminal table. Colour follows
// color.NoColor, which is off when stdout is not a terminal.
type textRenderer struct{}

func verdictColor(v string) *color.Color {
	switch schema.Verdict(v) {
	case schema.VerdictApprove:
		return color.New(color.FgHiGreen)
	case schema.VerdictReject:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

func (r *textRenderer) Render(s *schema.Summary) ([]byte, error) {
	var buf bytes.Buffer
	heading := color.New(color.Bold)

	fmt.Fprintf(&buf, "%s %s\n", heading.Sprint("index"), s.Index)
	fmt.Fprintf(&buf, "%-14s %d\n", "cases", s.Total)
	fmt.Fprintf(&buf, "%-14s %d\n", "terraforming", s.Terraforming)
	fmt.Fprintf(&buf, "%-14s %g\n", "mean risk", s.MeanRisk)

	fmt.Fprintf(&buf, "\n%s\n", heading.Sprint("verdicts"))
	for _, c := range verdictCounts(s) {
		name := verdictColor(c.Name).Sprintf("%-14s", c.Name)
		fmt.Fprintf(&buf, "  %s %4d\n", name, c.Count)
	}

	fmt.Fprintf(&buf, "\n%s\n", heading.Sprint("sectors"))
	for _, c := range sortedCounts(s.Sectors) {
		fmt.Fprintf(&buf, "  %-14s %4d\n", c.Name, c.Count)
	}

	fmt.Fprintf(&buf, "\n%s\n", heading.Sprint("development types"))
	for _, c := range sortedCounts(s.DevelopmentTypes) {
		fmt.Fprintf(&buf, "  %-14s %4d\n", c.Name, c.Count)
	}
	return buf.Bytes(), nil
}
