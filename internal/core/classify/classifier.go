package classify

import (
	"regexp"
	"strings"

	"github.com/agenthands/redline/internal/core/model"
)

type categoryPattern struct {
	name    string
	pattern *regexp.Regexp
}

// Closed vocabulary of clause categories, each backed by one case-insensitive
// lexical pattern. Order here fixes the order of the returned tags; it does not
// affect which tags match.
var categories = []categoryPattern{
	{"Interest Rate", regexp.MustCompile(`(?i)interest rate|apr|annual percentage|interest calculation`)},
	{"Payment Terms", regexp.MustCompile(`(?i)payment|installment|amortization|due date`)},
	{"Principal", regexp.MustCompile(`(?i)principal amount|loan amount|borrowed amount`)},
	{"Collateral", regexp.MustCompile(`(?i)collateral|security|pledge|lien`)},
	{"Default", regexp.MustCompile(`(?i)default|breach|event of default|failure to pay`)},
	{"Covenants", regexp.MustCompile(`(?i)covenant|undertaking|affirmative covenant|negative covenant`)},
	{"Representations", regexp.MustCompile(`(?i)represent|warranty|representation and warrant`)},
	{"Maturity", regexp.MustCompile(`(?i)maturity|maturity date|term of loan|loan period`)},
	{"Prepayment", regexp.MustCompile(`(?i)prepayment|early payment|voluntary prepayment`)},
	{"Fees", regexp.MustCompile(`(?i)fee|charge|cost|expense`)},
	{"Governing Law", regexp.MustCompile(`(?i)governing law|jurisdiction|applicable law`)},
	{"Amendment", regexp.MustCompile(`(?i)amendment|modification|change|alter`)},
}

// Classify tags a clause with every category whose pattern matches its title or
// content. It never returns an empty set: a clause matching nothing is tagged
// General.
func Classify(clause model.Clause) []string {
	text := strings.ToLower(clause.Title + " " + clause.Content)

	var types []string
	for _, c := range categories {
		if c.pattern.MatchString(text) {
			types = append(types, c.name)
		}
	}

	if len(types) == 0 {
		return []string{"General"}
	}
	return types
}
