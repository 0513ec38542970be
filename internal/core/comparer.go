package core

import (
	"context"

	"github.com/google/uuid"

	"github.com/agenthands/redline/internal/config"
	"github.com/agenthands/redline/internal/core/diff"
	"github.com/agenthands/redline/internal/core/explain"
	"github.com/agenthands/redline/internal/core/model"
	"github.com/agenthands/redline/internal/core/segment"
	"github.com/agenthands/redline/internal/llm"
)

// Comparer ties the pipeline together: segmentation, alignment, explanation
// and aggregation. It holds no per-request state; one instance serves all
// requests concurrently.
type Comparer struct {
	Explainer *explain.Engine
}

func NewComparer(llmClient llm.Client, cfg *config.Config) *Comparer {
	return &Comparer{
		Explainer: explain.NewEngine(llmClient, cfg),
	}
}

// ParseDocument segments decoded document text into clauses. The text is
// assumed already extracted from whatever container it arrived in.
func ParseDocument(text string, meta model.DocumentMetadata) model.ParsedDocument {
	return model.ParsedDocument{
		Text:     text,
		Clauses:  segment.Segment(text),
		Metadata: meta,
	}
}

// Compare aligns the two documents, explains every change and assembles the
// aggregate result. The risk and beneficiary breakdowns are recomputed from
// the explained changes on every call rather than stored anywhere.
func (c *Comparer) Compare(ctx context.Context, original, amended model.ParsedDocument) model.ComparisonResults {
	comparison := diff.Align(original.Clauses, amended.Clauses)
	explained := c.Explainer.ExplainAll(ctx, comparison)

	var risk model.RiskBreakdown
	var beneficiary model.BeneficiaryBreakdown
	for _, change := range explained {
		switch change.RiskLevel {
		case model.RiskHigh:
			risk.High++
		case model.RiskMedium:
			risk.Medium++
		case model.RiskLow:
			risk.Low++
		}
		switch change.Beneficiary {
		case model.BeneficiaryBorrower:
			beneficiary.Borrower++
		case model.BeneficiaryLender:
			beneficiary.Lender++
		case model.BeneficiaryNeutral:
			beneficiary.Neutral++
		}
	}

	return model.ComparisonResults{
		ComparisonID:         uuid.New().String(),
		Changes:              explained,
		Summary:              comparison.Summary,
		ExecutiveSummary:     explain.BuildExecutiveSummary(explained, comparison.Summary),
		RiskBreakdown:        risk,
		BeneficiaryBreakdown: beneficiary,
	}
}
