package model

type ChangeType string

const (
	ChangeAdded     ChangeType = "added"
	ChangeRemoved   ChangeType = "removed"
	ChangeModified  ChangeType = "modified"
	ChangeUnchanged ChangeType = "unchanged"
)

// ClauseComparison pairs a clause from the original document with its best
// counterpart in the amended document. OriginalClause is nil for added clauses,
// AmendedClause is nil for removed ones. Similarity is set only when both sides
// are present.
type ClauseComparison struct {
	ID             string     `json:"id"`
	ChangeType     ChangeType `json:"changeType"`
	OriginalClause *Clause    `json:"originalClause,omitempty"`
	AmendedClause  *Clause    `json:"amendedClause,omitempty"`
	Similarity     *float64   `json:"similarity,omitempty"`
	ClauseTypes    []string   `json:"clauseTypes"`
}

type ComparisonSummary struct {
	TotalClauses int `json:"totalClauses"`
	Added        int `json:"added"`
	Removed      int `json:"removed"`
	Modified     int `json:"modified"`
	Unchanged    int `json:"unchanged"`
}

type DocumentComparison struct {
	Changes []ClauseComparison `json:"changes"`
	Summary ComparisonSummary  `json:"summary"`
}
