package schema

// Record is one synthetic governance precedent as written to the bulk file.
type Record struct {
	CaseID             string  `json:"case_id" yaml:"case_id"`
	Sector             string  `json:"sector" yaml:"sector"`
	DevelopmentType    string  `json:"development_type" yaml:"development_type"`
	WaterUsage         float64 `json:"water_usage" yaml:"water_usage"`
	EnergyConsumption  float64 `json:"energy_consumption" yaml:"energy_consumption"`
	PopulationImpact   int     `json:"population_impact" yaml:"population_impact"`
	TerraformingImpact bool    `json:"terraforming_impact" yaml:"terraforming_impact"`
	AtmosphericRisk    float64 `json:"atmospheric_risk" yaml:"atmospheric_risk"`
	ResourceRisk       float64 `json:"resource_risk" yaml:"resource_risk"`
	LandUseRisk        float64 `json:"land_use_risk" yaml:"land_use_risk"`
	FinalVerdict       Verdict `json:"final_verdict" yaml:"final_verdict"`
	Summary            string  `json:"summary" yaml:"summary"`
}

// Header is the bulk-index action line that precedes every Record.
type Header struct {
	Index IndexAction `json:"index"`
}

// IndexAction names the target collection and the document id.
type IndexAction struct {
	Index string `json:"_index"`
	ID    string `json:"_id"`
}

// Verdict is the governance classification derived from the mean risk.
type Verdict string

const (
	VerdictApprove     Verdict = "APPROVE"
	VerdictConditional Verdict = "CONDITIONAL"
	VerdictReject      Verdict = "REJECT"
)

// IsValidVerdict reports whether v is one of the three defined verdicts.
func IsValidVerdict(v Verdict) bool {
	switch v {
	case VerdictApprove, VerdictConditional, VerdictReject:
		return true
	}
	return false
}

// Summary is the tally of a generated corpus, rendered by the summary command.
type Summary struct {
	Index            string         `json:"index" yaml:"index"`
	Total            int            `json:"total" yaml:"total"`
	Verdicts         map[string]int `json:"verdicts" yaml:"verdicts"`
	Sectors          map[string]int `json:"sectors" yaml:"sectors"`
	DevelopmentTypes map[string]int `json:"development_types" yaml:"development_types"`
	Terraforming     int            `json:"terraforming" yaml:"terraforming"`
	MeanRisk         float64        `json:"mean_risk" yaml:"mean_risk"`
}
