package explain

import (
	"fmt"
	"strings"

	"github.com/agenthands/redline/internal/core/model"
)

// The executive summary names only the terms a banker reads first; Maturity is
// deliberately absent here even though it counts as economic for risk purposes.
var headlineEconomicTypes = map[string]bool{
	"Interest Rate": true,
	"Payment Terms": true,
	"Principal":     true,
	"Fees":          true,
}

// BuildExecutiveSummary renders the one-paragraph overview of all explained
// changes. Same input always yields the same string.
func BuildExecutiveSummary(changes []model.ExplainedChange, summary model.ComparisonSummary) string {
	highRisk := 0
	borrowerFavorable := 0
	lenderFavorable := 0
	economic := 0
	for _, c := range changes {
		if c.RiskLevel == model.RiskHigh {
			highRisk++
		}
		switch c.Beneficiary {
		case model.BeneficiaryBorrower:
			borrowerFavorable++
		case model.BeneficiaryLender:
			lenderFavorable++
		}
		if hasAny(c.ClauseTypes, headlineEconomicTypes) {
			economic++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "This amendment introduces %d material changes to the loan agreement.",
		summary.Added+summary.Modified+summary.Removed)

	if highRisk > 0 {
		fmt.Fprintf(&b, " %d %s classified as high-risk and require careful review.",
			highRisk, pluralize(highRisk, "change is", "changes are"))
	}

	switch {
	case borrowerFavorable > lenderFavorable:
		b.WriteString(" The amendment appears to favor the borrower with more flexible terms.")
	case lenderFavorable > borrowerFavorable:
		b.WriteString(" The amendment strengthens lender protections and tightens covenants.")
	default:
		b.WriteString(" The changes appear balanced between borrower and lender interests.")
	}

	if economic > 0 {
		fmt.Fprintf(&b, " Note: %d %s economic terms.",
			economic, pluralize(economic, "change affects", "changes affect"))
	}

	return b.String()
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
