package diff

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/redline/internal/core/model"
	"github.com/agenthands/redline/internal/core/segment"
)

const originalAgreement = "1. Interest Rate: The rate is 5.0% fixed per annum.\n" +
	"2. Payment Terms: Monthly installments due on the first business day.\n" +
	"3. Collateral: all assets of the borrower are pledged as security.\n" +
	"4. Governing Law: the laws of New York apply to this agreement.\n"

func TestAlignIdenticalDocuments(t *testing.T) {
	clauses := segment.Segment(originalAgreement)

	result := Align(clauses, clauses)

	require.Len(t, result.Changes, len(clauses))
	assert.Equal(t, len(clauses), result.Summary.Unchanged)
	assert.Zero(t, result.Summary.Added)
	assert.Zero(t, result.Summary.Removed)
	assert.Zero(t, result.Summary.Modified)

	for _, change := range result.Changes {
		assert.Equal(t, model.ChangeUnchanged, change.ChangeType)
		require.NotNil(t, change.Similarity)
		assert.InDelta(t, 1.0, *change.Similarity, 1e-9)
	}
}

func TestAlignCoversEveryClauseExactlyOnce(t *testing.T) {
	amendedAgreement := "1. Interest Rate: The rate is 7.5% fixed per annum.\n" +
		"2. Payment Terms: Monthly installments due on the first business day.\n" +
		"4. Governing Law: the laws of New York apply to this agreement.\n" +
		"9. Prepayment Penalty: early repayment incurs a penalty fee.\n"

	original := segment.Segment(originalAgreement)
	amended := segment.Segment(amendedAgreement)

	result := Align(original, amended)

	seenOriginal := map[string]int{}
	seenAmended := map[string]int{}
	for _, change := range result.Changes {
		if change.OriginalClause != nil {
			seenOriginal[change.OriginalClause.ID]++
		}
		if change.AmendedClause != nil {
			seenAmended[change.AmendedClause.ID]++
		}
	}

	require.Len(t, seenOriginal, len(original))
	for id, n := range seenOriginal {
		assert.Equal(t, 1, n, "original clause %s referenced %d times", id, n)
	}
	require.Len(t, seenAmended, len(amended))
	for id, n := range seenAmended {
		assert.Equal(t, 1, n, "amended clause %s referenced %d times", id, n)
	}

	assert.Equal(t, len(result.Changes), result.Summary.TotalClauses)
	assert.Equal(t, result.Summary.TotalClauses,
		result.Summary.Added+result.Summary.Removed+result.Summary.Modified+result.Summary.Unchanged)
}

func TestAlignModifiedInterestRate(t *testing.T) {
	original := segment.Segment("4.1 Interest Rate: The rate is 5.0% fixed per annum.\n")
	amended := segment.Segment("4.1 Interest Rate: The rate is 7.5% fixed per annum.\n")

	result := Align(original, amended)

	require.Len(t, result.Changes, 1)
	change := result.Changes[0]
	assert.Equal(t, model.ChangeModified, change.ChangeType)
	assert.Contains(t, change.ClauseTypes, "Interest Rate")
	require.NotNil(t, change.Similarity)
	assert.Greater(t, *change.Similarity, 0.6)
	assert.LessOrEqual(t, *change.Similarity, 0.95)
}

func TestAlignAddedPrepaymentClause(t *testing.T) {
	base := "1. Interest Rate: The rate is 5.0% fixed per annum.\n"
	amendedText := base + "9. Prepayment Penalty: voluntary prepayment incurs a penalty.\n"

	result := Align(segment.Segment(base), segment.Segment(amendedText))

	require.Len(t, result.Changes, 2)
	added := result.Changes[1]
	assert.Equal(t, model.ChangeAdded, added.ChangeType)
	assert.Nil(t, added.OriginalClause)
	assert.Nil(t, added.Similarity)
	assert.Contains(t, added.ClauseTypes, "Prepayment")
	assert.Equal(t, 1, result.Summary.Added)
}

func TestAlignRemovedCollateralClause(t *testing.T) {
	originalText := "1. Interest Rate: The rate is 5.0% fixed per annum.\n" +
		"3. Collateral: all assets of the borrower are pledged.\n"
	amendedText := "1. Interest Rate: The rate is 5.0% fixed per annum.\n"

	result := Align(segment.Segment(originalText), segment.Segment(amendedText))

	require.Len(t, result.Changes, 2)
	removed := result.Changes[1]
	assert.Equal(t, model.ChangeRemoved, removed.ChangeType)
	assert.Nil(t, removed.AmendedClause)
	assert.Nil(t, removed.Similarity)
	assert.Contains(t, removed.ClauseTypes, "Collateral")
	assert.Equal(t, 1, result.Summary.Removed)
}

func TestAlignBelowThresholdSplitsIntoRemovedAndAdded(t *testing.T) {
	// Disjoint wording and different labels never clear the 0.6 bar.
	original := []model.Clause{{ID: "clause-0", Title: "Collateral", SectionNumber: "3",
		Content: "All assets are pledged."}}
	amended := []model.Clause{{ID: "clause-0", Title: "Notices", SectionNumber: "11",
		Content: "Notices must arrive before noon."}}

	result := Align(original, amended)

	require.Len(t, result.Changes, 2)
	assert.Equal(t, model.ChangeRemoved, result.Changes[0].ChangeType)
	assert.Equal(t, model.ChangeAdded, result.Changes[1].ChangeType)
}

func TestAlignEmptySides(t *testing.T) {
	clauses := segment.Segment(originalAgreement)

	allAdded := Align(nil, clauses)
	assert.Equal(t, len(clauses), allAdded.Summary.Added)
	assert.Len(t, allAdded.Changes, len(clauses))

	allRemoved := Align(clauses, nil)
	assert.Equal(t, len(clauses), allRemoved.Summary.Removed)
	assert.Len(t, allRemoved.Changes, len(clauses))

	empty := Align(nil, nil)
	assert.Empty(t, empty.Changes)
	assert.Zero(t, empty.Summary.TotalClauses)
}

func TestAlignChangeIDsFollowEmissionOrder(t *testing.T) {
	original := segment.Segment(originalAgreement)
	amended := segment.Segment(originalAgreement + "9. Prepayment Penalty: early repayment incurs a penalty fee.\n")

	result := Align(original, amended)

	for i, change := range result.Changes {
		assert.Equal(t, "change-"+strconv.Itoa(i), change.ID)
	}
	// Added clauses come last.
	assert.Equal(t, model.ChangeAdded, result.Changes[len(result.Changes)-1].ChangeType)
}
