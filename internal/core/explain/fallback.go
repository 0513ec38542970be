package explain

import (
	"fmt"

	"github.com/agenthands/redline/internal/core/model"
)

var economicTypes = map[string]bool{
	"Interest Rate": true,
	"Payment Terms": true,
	"Principal":     true,
	"Fees":          true,
	"Maturity":      true,
}

var riskRelatedTypes = map[string]bool{
	"Default":    true,
	"Covenants":  true,
	"Collateral": true,
}

func hasType(types []string, name string) bool {
	for _, t := range types {
		if t == name {
			return true
		}
	}
	return false
}

func hasAny(types []string, set map[string]bool) bool {
	for _, t := range types {
		if set[t] {
			return true
		}
	}
	return false
}

// Fallback derives an explanation, risk level, beneficiary and impact summary
// for a change purely from its change type, similarity score and category
// tags. It is the explanation path of last resort and always succeeds.
func Fallback(change model.ClauseComparison) model.ExplainedChange {
	explained := model.ExplainedChange{
		ClauseComparison: change,
		RiskLevel:        model.RiskMedium,
		Beneficiary:      model.BeneficiaryNeutral,
	}

	isEconomic := hasAny(change.ClauseTypes, economicTypes)
	isRiskRelated := hasAny(change.ClauseTypes, riskRelatedTypes)

	switch change.ChangeType {
	case model.ChangeAdded:
		explained.Explanation = fmt.Sprintf("A new clause %q has been added to the agreement.", change.AmendedClause.Title)
		if isEconomic {
			explained.ImpactSummary = "This may affect the economic terms of the loan."
		} else {
			explained.ImpactSummary = "This adds new obligations or terms to the agreement."
		}
		if isRiskRelated {
			explained.RiskLevel = model.RiskHigh
			explained.Beneficiary = model.BeneficiaryLender
		}

	case model.ChangeRemoved:
		explained.Explanation = fmt.Sprintf("The clause %q has been removed from the agreement.", change.OriginalClause.Title)
		if isEconomic {
			explained.ImpactSummary = "This changes the economic structure of the loan."
		} else {
			explained.ImpactSummary = "This removes obligations or terms from the agreement."
		}
		if isRiskRelated {
			explained.RiskLevel = model.RiskHigh
			explained.Beneficiary = model.BeneficiaryBorrower
		}

	case model.ChangeModified:
		explained.Explanation = fmt.Sprintf("The clause %q has been modified with changes to its terms.", change.AmendedClause.Title)
		if isEconomic {
			explained.ImpactSummary = "This modifies the economic terms of the loan."
		} else {
			explained.ImpactSummary = "This alters existing obligations or terms."
		}

		similarity := 0.7
		if change.Similarity != nil {
			similarity = *change.Similarity
		}
		switch {
		case similarity < 0.7:
			explained.RiskLevel = model.RiskHigh
		case similarity < 0.85:
			explained.RiskLevel = model.RiskMedium
		default:
			explained.RiskLevel = model.RiskLow
		}
	}

	// Category overrides, applied after the table; the Default override wins
	// when both categories are present.
	if hasType(change.ClauseTypes, "Interest Rate") {
		explained.RiskLevel = model.RiskHigh
		explained.ImpactSummary = "Direct impact on borrowing costs."
	}
	if hasType(change.ClauseTypes, "Default") {
		explained.RiskLevel = model.RiskHigh
		explained.ImpactSummary = "Affects default triggers and remedies."
	}

	return explained
}
