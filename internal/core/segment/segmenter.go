package segment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agenthands/redline/internal/core/model"
)

// headingPattern matches legal section headings: an optional keyword
// (Section/Article/Clause), a dotted numeric label, a separator, and a title
// running to end of line. Matching is case-insensitive.
var headingPattern = regexp.MustCompile(`(?i)(?:^|\n)(?:Section|Article|Clause)?\s*(\d+(?:\.\d+)*)[.:\s]+([^\n]+)`)

// Segment splits raw document text into an ordered sequence of clauses.
//
// Each heading match opens a clause; its content runs from the match start to
// the start of the next heading (or document end), so the spans are contiguous
// and cover everything from the first heading to the end of the text. Clause
// order reflects document order, not label order: renumbered or disordered
// section lists are captured as-is.
func Segment(text string) []model.Clause {
	matches := headingPattern.FindAllStringSubmatchIndex(text, -1)

	// No structure detected: the whole document is one clause.
	if len(matches) == 0 {
		return []model.Clause{{
			ID:         "clause-0",
			Title:      "Full Document",
			Content:    strings.TrimSpace(text),
			StartIndex: 0,
			EndIndex:   len(text),
		}}
	}

	clauses := make([]model.Clause, 0, len(matches))
	for i, m := range matches {
		start := m[0]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		clauses = append(clauses, model.Clause{
			ID:            fmt.Sprintf("clause-%d", i),
			Title:         strings.TrimSpace(text[m[4]:m[5]]),
			SectionNumber: text[m[2]:m[3]],
			Content:       strings.TrimSpace(text[start:end]),
			StartIndex:    start,
			EndIndex:      end,
		})
	}

	return clauses
}
