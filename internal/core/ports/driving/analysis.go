package driving

import (
	"context"

	"github.com/custodia-labs/docrank-cli/internal/core/domain"
)

// AnalysisService ranks document fragments by relevance to a persona
// and a job-to-be-done.
type AnalysisService interface {
	// Analyse runs the full pipeline over one batch of documents:
	// profile building, segmentation, signal extraction, fusion and
	// ranking. Documents that fail to process are skipped; the run
	// fails only on invalid configuration or an exceeded budget.
	Analyse(ctx context.Context, req AnalysisRequest) (domain.AnalysisResult, error)
}

// AnalysisRequest is one batch of documents with the reader profile
// they should be ranked for.
type AnalysisRequest struct {
	// Documents are the extracted input documents, in caller order.
	Documents []domain.Document

	// Persona describes the intended reader.
	Persona domain.Persona

	// Job describes the task the reader wants to accomplish.
	Job domain.JobToBeDone

	// TopK overrides the configured number of ranked sections and
	// sub-sections returned. Zero keeps the configured default.
	TopK int

	// TopN overrides the configured number of top sections whose
	// sub-sections are eligible for ranking. Zero keeps the default.
	TopN int
}
