package review

import (
	"maps"
	"math"
	"strconv"

	"github.com/dshills/marsprecedents/internal/schema"
)

// Verdict thresholds on the mean risk. Both are strict: a mean of exactly
// RejectAbove or ApproveBelow is CONDITIONAL.
const (
	RejectAbove  = 0.65
	ApproveBelow = 0.35
)

// Moduli of the three risk factors.
const (
	AtmosphericModulus = 17
	ResourceModulus    = 23
	LandUseModulus     = 19
)

// Round rounds x to the given number of decimal places using the exact
// binary value of x with ties to even, so 0.0625 becomes 0.06 and
// 2.675 becomes 2.67.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return v
}

// Risk computes min(1, (i mod m)/(m-1)) rounded to two places.
// m must be at least 2.
func Risk(i, m int) float64 {
	r := float64(i%m) / float64(m-1)
	return Round(math.Min(1.0, r), 2)
}

// Average returns the arithmetic mean of the three risk scores as given.
// Callers pass the already rounded scores; averaging the unrounded ratios
// changes the verdict for some indices (58 is one).
func Average(atmospheric, resource, landUse float64) float64 {
	return (atmospheric + resource + landUse) / 3
}

// Classify maps a mean risk to a verdict.
func Classify(avg float64) schema.Verdict {
	switch {
	case avg > RejectAbove:
		return schema.VerdictReject
	case avg < ApproveBelow:
		return schema.VerdictApprove
	default:
		return schema.VerdictConditional
	}
}

// Tally accumulates a Summary one record at a time.
type Tally struct {
	sum     schema.Summary
	riskSum float64
}

// NewTally returns an empty Tally for the named index.
func NewTally(index string) *Tally {
	return &Tally{sum: schema.Summary{
		Index:            index,
		Verdicts:         map[string]int{},
		Sectors:          map[string]int{},
		DevelopmentTypes: map[string]int{},
	}}
}

// Add counts r.
func (t *Tally) Add(r schema.Record) {
	t.sum.Total++
	t.sum.Verdicts[string(r.FinalVerdict)]++
	t.sum.Sectors[r.Sector]++
	t.sum.DevelopmentTypes[r.DevelopmentType]++
	if r.TerraformingImpact {
		t.sum.Terraforming++
	}
	t.riskSum += Average(r.AtmosphericRisk, r.ResourceRisk, r.LandUseRisk)
}

// Summary returns the totals so far. MeanRisk is rounded to four places.
func (t *Tally) Summary() schema.Summary {
	s := t.sum
	s.Verdicts = maps.Clone(t.sum.Verdicts)
	s.Sectors = maps.Clone(t.sum.Sectors)
	s.DevelopmentTypes = maps.Clone(t.sum.DevelopmentTypes)
	if s.Total > 0 {
		s.MeanRisk = Round(t.riskSum/float64(s.Total), 4)
	}
	return s
}
