package model

// Clause is a contiguous span of document text believed to express one provision.
// Spans are assigned once during segmentation and never mutated.
type Clause struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	SectionNumber string `json:"sectionNumber,omitempty"`
	Content       string `json:"content"`
	StartIndex    int    `json:"startIndex"`
	EndIndex      int    `json:"endIndex"`
}

type DocumentMetadata struct {
	Title      string `json:"title,omitempty"`
	TotalPages int    `json:"totalPages,omitempty"`
}

type ParsedDocument struct {
	Text     string           `json:"text"`
	Clauses  []Clause         `json:"clauses"`
	Metadata DocumentMetadata `json:"metadata"`
}
