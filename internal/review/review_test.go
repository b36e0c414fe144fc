package review

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/marsprecedents/internal/schema"
)

// --- Round tests ---

func TestRound_TiesToEven(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0.0625, 0.06},
		{0.125, 0.12},
		{0.375, 0.38},
		{2.675, 2.67}, // binary value sits just below the half
		{1.005, 1.0},
		{13.8, 13.8},
	}
	for _, c := range cases {
		if got := Round(c.in, 2); got != c.want {
			t.Errorf("Round(%v, 2) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRound_OnePlace(t *testing.T) {
	if got := Round(122.5, 1); got != 122.5 {
		t.Errorf("Round(122.5, 1) = %v", got)
	}
	if got := Round(145.04, 1); got != 145.0 {
		t.Errorf("Round(145.04, 1) = %v", got)
	}
}

// --- Risk tests ---

func TestRisk_Range(t *testing.T) {
	for _, m := range []int{AtmosphericModulus, ResourceModulus, LandUseModulus} {
		for i := 1; i <= 200; i++ {
			r := Risk(i, m)
			if r < 0 || r > 1 {
				t.Fatalf("Risk(%d, %d) = %v, outside [0, 1]", i, m, r)
			}
		}
	}
}

func TestRisk_Values(t *testing.T) {
	cases := []struct {
		i, m int
		want float64
	}{
		{1, AtmosphericModulus, 0.06},
		{1, ResourceModulus, 0.05},
		{1, LandUseModulus, 0.06},
		{16, AtmosphericModulus, 1.0},
		{17, AtmosphericModulus, 0.0},
		{58, AtmosphericModulus, 0.44},
		{58, ResourceModulus, 0.55},
		{58, LandUseModulus, 0.06},
	}
	for _, c := range cases {
		if got := Risk(c.i, c.m); got != c.want {
			t.Errorf("Risk(%d, %d) = %v, want %v", c.i, c.m, got, c.want)
		}
	}
}

// --- Classify tests ---

func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		avg  float64
		want schema.Verdict
	}{
		{0.0, schema.VerdictApprove},
		{0.3499, schema.VerdictApprove},
		{0.35, schema.VerdictConditional},
		{0.5, schema.VerdictConditional},
		{0.65, schema.VerdictConditional},
		{0.6501, schema.VerdictReject},
		{1.0, schema.VerdictReject},
	}
	for _, c := range cases {
		if got := Classify(c.avg); got != c.want {
			t.Errorf("Classify(%v) = %q, want %q", c.avg, got, c.want)
		}
	}
}

func TestClassify_RoundsBeforeAveraging(t *testing.T) {
	// Index 58: the rounded mean lands just above 0.35, the unrounded one below.
	rounded := Average(Risk(58, AtmosphericModulus), Risk(58, ResourceModulus), Risk(58, LandUseModulus))
	if got := Classify(rounded); got != schema.VerdictConditional {
		t.Errorf("rounded mean %v classified %q, want CONDITIONAL", rounded, got)
	}

	raw := Average(7.0/16, 12.0/22, 1.0/18)
	if got := Classify(raw); got != schema.VerdictApprove {
		t.Errorf("unrounded mean %v classified %q, want APPROVE", raw, got)
	}
}

// --- Tally tests ---

func TestTally_Counts(t *testing.T) {
	tally := NewTally("idx")
	tally.Add(schema.Record{Sector: "research", DevelopmentType: "lab", FinalVerdict: schema.VerdictApprove, AtmosphericRisk: 0.3, ResourceRisk: 0.3, LandUseRisk: 0.3})
	tally.Add(schema.Record{Sector: "research", DevelopmentType: "dome", FinalVerdict: schema.VerdictReject, TerraformingImpact: true, AtmosphericRisk: 0.9, ResourceRisk: 0.9, LandUseRisk: 0.9})

	want := schema.Summary{
		Index:            "idx",
		Total:            2,
		Verdicts:         map[string]int{"APPROVE": 1, "REJECT": 1},
		Sectors:          map[string]int{"research": 2},
		DevelopmentTypes: map[string]int{"lab": 1, "dome": 1},
		Terraforming:     1,
		MeanRisk:         0.6,
	}
	if diff := cmp.Diff(want, tally.Summary()); diff != "" {
		t.Errorf("Summary mismatch (-want +got):\n%s", diff)
	}
}

func TestTally_SummaryIsSnapshot(t *testing.T) {
	tally := NewTally("idx")
	tally.Add(schema.Record{Sector: "research", FinalVerdict: schema.VerdictApprove})
	snap := tally.Summary()
	tally.Add(schema.Record{Sector: "research", FinalVerdict: schema.VerdictApprove})
	if snap.Sectors["research"] != 1 {
		t.Errorf("snapshot mutated by later Add: %v", snap.Sectors)
	}
}

func TestTally_Empty(t *testing.T) {
	s := NewTally("idx").Summary()
	if s.Total != 0 || s.MeanRisk != 0 {
		t.Errorf("empty tally = %+v", s)
	}
}
