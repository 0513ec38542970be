package explain

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/agenthands/redline/internal/config"
	"github.com/agenthands/redline/internal/core/common"
	"github.com/agenthands/redline/internal/core/model"
	"github.com/agenthands/redline/internal/llm"
)

const (
	addedRemovedContentLimit = 500
	modifiedContentLimit     = 300
)

// Engine produces the narrative layer for classified changes. With an LLM
// client it asks the model per change and degrades to the rule-based Fallback
// on any error, timeout or malformed field; with a nil client it is a pure
// deterministic function.
type Engine struct {
	LLM       llm.Client
	Prompts   config.Prompts
	BatchSize int
	Timeout   time.Duration
}

func NewEngine(llmClient llm.Client, cfg *config.Config) *Engine {
	batch := cfg.Concurrency.ExplainBatch
	if batch <= 0 {
		batch = 5
	}
	timeout := time.Duration(cfg.LLM.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	return &Engine{
		LLM:       llmClient,
		Prompts:   cfg.Prompts,
		BatchSize: batch,
		Timeout:   timeout,
	}
}

// ExplainAll explains every non-unchanged comparison, preserving input order.
// LLM calls run concurrently in batches of BatchSize to stay under provider
// rate limits. It never fails: each change ends up fully explained one way or
// the other.
func (e *Engine) ExplainAll(ctx context.Context, comparison model.DocumentComparison) []model.ExplainedChange {
	relevant := make([]model.ClauseComparison, 0, len(comparison.Changes))
	for _, c := range comparison.Changes {
		if c.ChangeType != model.ChangeUnchanged {
			relevant = append(relevant, c)
		}
	}

	results := make([]model.ExplainedChange, len(relevant))
	for i := 0; i < len(relevant); i += e.BatchSize {
		end := min(i+e.BatchSize, len(relevant))

		var wg sync.WaitGroup
		for j := i; j < end; j++ {
			wg.Add(1)
			go func(j int) {
				defer wg.Done()
				results[j] = e.Explain(ctx, relevant[j])
			}(j)
		}
		wg.Wait()
	}

	return results
}

// Explain explains a single change, falling back to the deterministic rules
// whenever the LLM path cannot deliver a usable answer.
func (e *Engine) Explain(ctx context.Context, change model.ClauseComparison) model.ExplainedChange {
	fallback := Fallback(change)
	if e.LLM == nil {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, e.Timeout)
	defer cancel()

	response, err := e.LLM.Generate(ctx, e.buildPrompt(change))
	if err != nil {
		log.Printf("Explanation LLM call failed for %s, using fallback: %v", change.ID, err)
		return fallback
	}

	parsed, err := common.ParseJSON[model.ExplanationResponse](response)
	if err != nil {
		log.Printf("Unparseable explanation response for %s, using fallback: %v", change.ID, err)
		return fallback
	}

	return merge(change, parsed, fallback)
}

// merge accepts LLM fields one by one, substituting the fallback value for
// anything missing or outside the allowed vocabulary.
func merge(change model.ClauseComparison, parsed model.ExplanationResponse, fallback model.ExplainedChange) model.ExplainedChange {
	explained := model.ExplainedChange{
		ClauseComparison: change,
		Explanation:      fallback.Explanation,
		RiskLevel:        fallback.RiskLevel,
		Beneficiary:      fallback.Beneficiary,
		ImpactSummary:    fallback.ImpactSummary,
	}

	if parsed.Explanation != "" {
		explained.Explanation = parsed.Explanation
	}
	if parsed.ImpactSummary != "" {
		explained.ImpactSummary = parsed.ImpactSummary
	}
	switch model.RiskLevel(parsed.RiskLevel) {
	case model.RiskLow, model.RiskMedium, model.RiskHigh:
		explained.RiskLevel = model.RiskLevel(parsed.RiskLevel)
	}
	switch model.Beneficiary(parsed.Beneficiary) {
	case model.BeneficiaryBorrower, model.BeneficiaryLender, model.BeneficiaryNeutral:
		explained.Beneficiary = model.Beneficiary(parsed.Beneficiary)
	}

	return explained
}

func (e *Engine) buildPrompt(change model.ClauseComparison) string {
	var detail strings.Builder

	switch change.ChangeType {
	case model.ChangeAdded:
		fmt.Fprintf(&detail, "NEW CLAUSE:\n%s\n%s\n\n",
			change.AmendedClause.Title, truncate(change.AmendedClause.Content, addedRemovedContentLimit))
	case model.ChangeRemoved:
		fmt.Fprintf(&detail, "REMOVED CLAUSE:\n%s\n%s\n\n",
			change.OriginalClause.Title, truncate(change.OriginalClause.Content, addedRemovedContentLimit))
	case model.ChangeModified:
		fmt.Fprintf(&detail, "ORIGINAL:\n%s\n%s\n\n",
			change.OriginalClause.Title, truncate(change.OriginalClause.Content, modifiedContentLimit))
		fmt.Fprintf(&detail, "AMENDED:\n%s\n%s\n\n",
			change.AmendedClause.Title, truncate(change.AmendedClause.Content, modifiedContentLimit))
	}

	body := fmt.Sprintf(e.Prompts.Explanation,
		change.ChangeType, strings.Join(change.ClauseTypes, ", "), detail.String())

	return e.Prompts.System + "\n\n" + body
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
