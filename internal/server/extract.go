package server

import (
	"fmt"
	"strings"

	"github.com/agenthands/redline/internal/core/model"
)

// TextExtractor turns an uploaded document into decoded text plus whatever
// metadata the container carries. The comparison core never sees raw bytes.
type TextExtractor interface {
	Extract(data []byte, contentType string, filename string) (string, model.DocumentMetadata, error)
}

// PlainTextExtractor handles text/plain uploads. PDF uploads need a real
// extraction backend; without one they are rejected at the boundary.
type PlainTextExtractor struct{}

func (PlainTextExtractor) Extract(data []byte, contentType string, filename string) (string, model.DocumentMetadata, error) {
	mediaType := contentType
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.TrimSpace(strings.ToLower(mediaType))

	switch mediaType {
	case "text/plain":
		return string(data), model.DocumentMetadata{Title: filename}, nil
	case "application/pdf":
		return "", model.DocumentMetadata{}, fmt.Errorf("PDF text extraction is not configured on this server")
	default:
		return "", model.DocumentMetadata{}, fmt.Errorf("unsupported content type: %s", contentType)
	}
}
