package model

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

type Beneficiary string

const (
	BeneficiaryBorrower Beneficiary = "Borrower"
	BeneficiaryLender   Beneficiary = "Lender"
	BeneficiaryNeutral  Beneficiary = "Neutral"
)

// ExplainedChange is a ClauseComparison with the narrative layer attached.
type ExplainedChange struct {
	ClauseComparison
	Explanation   string      `json:"explanation"`
	RiskLevel     RiskLevel   `json:"riskLevel"`
	Beneficiary   Beneficiary `json:"beneficiary"`
	ImpactSummary string      `json:"impactSummary"`
}

// ExplanationResponse is the JSON shape the LLM is asked to return for one
// change. Fields are plain strings so a malformed value can be rejected
// per-field instead of failing the unmarshal.
type ExplanationResponse struct {
	Explanation   string `json:"explanation"`
	ImpactSummary string `json:"impactSummary"`
	RiskLevel     string `json:"riskLevel"`
	Beneficiary   string `json:"beneficiary"`
}

type RiskBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type BeneficiaryBreakdown struct {
	Borrower int `json:"borrower"`
	Lender   int `json:"lender"`
	Neutral  int `json:"neutral"`
}

type ComparisonResults struct {
	ComparisonID         string               `json:"comparison_id"`
	Changes              []ExplainedChange    `json:"changes"`
	Summary              ComparisonSummary    `json:"summary"`
	ExecutiveSummary     string               `json:"executiveSummary"`
	RiskBreakdown        RiskBreakdown        `json:"riskBreakdown"`
	BeneficiaryBreakdown BeneficiaryBreakdown `json:"beneficiaryBreakdown"`
}
