package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/redline/internal/core/model"
)

func TestSimilarityIdenticalClause(t *testing.T) {
	clause := model.Clause{
		Title:         "Interest Rate",
		SectionNumber: "4.1",
		Content:       "The interest rate is 5.0% fixed per annum.",
	}

	assert.InDelta(t, 1.0, Similarity(clause, clause), 1e-9)
}

func TestSimilarityIdenticalWithoutSectionNumber(t *testing.T) {
	clause := model.Clause{
		Title:   "Full Document",
		Content: "This agreement has no numbered sections at all.",
	}

	// Both section labels absent counts as a label match; identity must
	// still score 1.0 for unstructured documents.
	assert.InDelta(t, 1.0, Similarity(clause, clause), 1e-9)
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]model.Clause{
		{{Title: "Fees", SectionNumber: "7", Content: "An arrangement fee applies."},
			{Title: "Collateral", SectionNumber: "3", Content: "All assets are pledged."}},
		{{}, {}},
		{{Title: "Maturity", Content: "The loan matures in five years."},
			{Title: "Maturity", Content: "The loan matures in seven years."}},
	}

	for _, p := range pairs {
		score := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestSimilaritySectionMismatchCostsLabelWeight(t *testing.T) {
	a := model.Clause{Title: "Covenants", SectionNumber: "6.1", Content: "The borrower shall maintain insurance."}
	b := model.Clause{Title: "Covenants", SectionNumber: "6.2", Content: "The borrower shall maintain insurance."}

	// Identical wording, different labels: only the 0.2 section weight is lost.
	assert.InDelta(t, 0.8, Similarity(a, b), 1e-9)
}

func TestSimilarityEmptyWordSetsScoreZero(t *testing.T) {
	// Words of length <= 2 are dropped, leaving empty sets on both sides.
	a := model.Clause{Title: "a b", SectionNumber: "1", Content: "of"}
	b := model.Clause{Title: "c d", SectionNumber: "2", Content: "to"}

	assert.InDelta(t, 0.0, Similarity(a, b), 1e-9)
}

func TestSimilarityDisjointContent(t *testing.T) {
	a := model.Clause{Title: "Payment Terms", SectionNumber: "2", Content: "Monthly installments due promptly."}
	b := model.Clause{Title: "Payment Terms", SectionNumber: "2", Content: "Quarterly remittances payable upfront."}

	// Title and section agree, content is fully disjoint.
	assert.InDelta(t, 0.6, Similarity(a, b), 1e-9)
}
