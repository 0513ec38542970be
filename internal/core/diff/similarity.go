package diff

import (
	"strings"

	"github.com/agenthands/redline/internal/core/model"
)

const (
	titleWeight   = 0.4
	sectionWeight = 0.2
	contentWeight = 0.4
)

// Similarity scores how likely two clauses represent the same underlying
// provision, in [0,1]. Lexical overlap of titles and content is weighted over
// exact section-label equality because labels drift across amendments
// (renumbering) while wording is the more stable signal.
func Similarity(a, b model.Clause) float64 {
	titleSim := jaccard(wordSet(a.Title), wordSet(b.Title))
	contentSim := jaccard(wordSet(a.Content), wordSet(b.Content))

	sectionMatch := 0.0
	if a.SectionNumber == b.SectionNumber {
		sectionMatch = 1.0
	}

	return titleWeight*titleSim + sectionWeight*sectionMatch + contentWeight*contentSim
}

// wordSet tokenizes on whitespace and keeps lowercase words longer than two
// characters, dropping the short function words that would otherwise dominate
// the overlap.
func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if len(w) > 2 {
			set[w] = struct{}{}
		}
	}
	return set
}

// jaccard is |intersection| / |union|, defined as 0 when both sets are empty.
func jaccard(a, b map[string]struct{}) float64 {
	intersection := 0
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
