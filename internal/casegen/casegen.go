// Package casegen derives synthetic governance precedents from a case index.
// Every field is a pure function of the index; there is no randomness.
package casegen

import (
	"fmt"

	"github.com/dshills/marsprecedents/internal/review"
	"github.com/dshills/marsprecedents/internal/schema"
)

const (
	// Count is the number of cases in a corpus, indices 1..Count.
	Count = 200
	// IndexName is the collection every header targets.
	IndexName = "martian_precedents"
	// Filename is the bulk file written to the working directory.
	Filename = IndexName + ".ndjson"
)

// Sectors and DevelopmentTypes are indexed by i mod len.
var (
	Sectors          = []string{"residential", "industrial", "research", "agriculture", "commercial"}
	DevelopmentTypes = []string{"dome", "mining", "lab", "greenhouse", "habitat", "power_station"}
)

// CaseID formats the zero-padded identifier for index i.
func CaseID(i int) string {
	return fmt.Sprintf("case_%03d", i)
}

// Case builds the header and record for index i. It panics when i is
// outside 1..Count.
func Case(i int) (schema.Header, schema.Record) {
	if i < 1 || i > Count {
		panic(fmt.Sprintf("casegen: index %d out of range 1..%d", i, Count))
	}

	id := CaseID(i)
	sector := Sectors[i%len(Sectors)]
	dev := DevelopmentTypes[i%len(DevelopmentTypes)]

	// The explicit float64 conversions keep the products from being fused
	// with the following addition.
	water := review.Round(5+float64(float64(i%50)*0.8), 2)
	energy := review.Round(100+float64(float64(i%70)*22.5), 1)

	atmospheric := review.Risk(i, review.AtmosphericModulus)
	resource := review.Risk(i, review.ResourceModulus)
	landUse := review.Risk(i, review.LandUseModulus)
	verdict := review.Classify(review.Average(atmospheric, resource, landUse))

	header := schema.Header{Index: schema.IndexAction{Index: IndexName, ID: id}}
	record := schema.Record{
		CaseID:             id,
		Sector:             sector,
		DevelopmentType:    dev,
		WaterUsage:         water,
		EnergyConsumption:  energy,
		PopulationImpact:   (i * 3) % 250,
		TerraformingImpact: i%11 == 0,
		AtmosphericRisk:    atmospheric,
		ResourceRisk:       resource,
		LandUseRisk:        landUse,
		FinalVerdict:       verdict,
		Summary:            fmt.Sprintf("%s in %s sector. Synthetic governance record.", dev, sector),
	}
	return header, record
}

// Each calls fn for every index in order, stopping at the first error.
func Each(fn func(i int, h schema.Header, r schema.Record) error) error {
	for i := 1; i <= Count; i++ {
		h, r := Case(i)
		if err := fn(i, h, r); err != nil {
			return err
		}
	}
	return nil
}
