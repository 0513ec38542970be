package diff

import (
	"fmt"

	"github.com/agenthands/redline/internal/core/classify"
	"github.com/agenthands/redline/internal/core/model"
)

const (
	// matchThreshold is the minimum similarity treated as "same provision,
	// edited". A score at or below it means no counterpart exists.
	matchThreshold = 0.6
	// unchangedThreshold separates substantive edits from formatting noise.
	unchangedThreshold = 0.95
)

// Align computes the correspondence between the clauses of two document
// versions and classifies each clause as added, removed, modified or unchanged.
//
// The matching is greedy and order-dependent: each original clause, in document
// order, claims the highest-scoring amended clause not yet claimed (ties broken
// by amended document order). This is deterministic but not globally optimal —
// an earlier original clause can claim the amended clause that would have been
// a better match for a later one. Amended clauses never claimed are emitted as
// added, after the original-clause pass.
//
// Align never fails: an empty clause list on either side degenerates to
// all-added or all-removed.
func Align(original, amended []model.Clause) model.DocumentComparison {
	changes := make([]model.ClauseComparison, 0, len(original)+len(amended))
	claimed := make(map[int]bool, len(amended))
	var summary model.ComparisonSummary

	for oi := range original {
		origClause := &original[oi]

		bestIndex := -1
		bestScore := 0.0
		for ai := range amended {
			if claimed[ai] {
				continue
			}
			if score := Similarity(*origClause, amended[ai]); bestIndex == -1 || score > bestScore {
				bestIndex = ai
				bestScore = score
			}
		}

		if bestIndex >= 0 && bestScore > matchThreshold {
			claimed[bestIndex] = true
			amendClause := &amended[bestIndex]

			changeType := model.ChangeModified
			if bestScore > unchangedThreshold {
				changeType = model.ChangeUnchanged
			}

			score := bestScore
			changes = append(changes, model.ClauseComparison{
				ID:             fmt.Sprintf("change-%d", len(changes)),
				ChangeType:     changeType,
				OriginalClause: origClause,
				AmendedClause:  amendClause,
				Similarity:     &score,
				ClauseTypes:    classify.Classify(*amendClause),
			})
			if changeType == model.ChangeUnchanged {
				summary.Unchanged++
			} else {
				summary.Modified++
			}
			continue
		}

		// No good match left: the clause was removed.
		changes = append(changes, model.ClauseComparison{
			ID:             fmt.Sprintf("change-%d", len(changes)),
			ChangeType:     model.ChangeRemoved,
			OriginalClause: origClause,
			ClauseTypes:    classify.Classify(*origClause),
		})
		summary.Removed++
	}

	for ai := range amended {
		if claimed[ai] {
			continue
		}
		amendClause := &amended[ai]
		changes = append(changes, model.ClauseComparison{
			ID:            fmt.Sprintf("change-%d", len(changes)),
			ChangeType:    model.ChangeAdded,
			AmendedClause: amendClause,
			ClauseTypes:   classify.Classify(*amendClause),
		})
		summary.Added++
	}

	summary.TotalClauses = len(changes)

	return model.DocumentComparison{Changes: changes, Summary: summary}
}
