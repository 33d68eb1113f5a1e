package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/docrank-cli/internal/budget"
	"github.com/custodia-labs/docrank-cli/internal/core/domain"
	"github.com/custodia-labs/docrank-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docrank-cli/internal/fusion"
	"github.com/custodia-labs/docrank-cli/internal/logger"
	"github.com/custodia-labs/docrank-cli/internal/profile"
	"github.com/custodia-labs/docrank-cli/internal/ranking"
	"github.com/custodia-labs/docrank-cli/internal/segmenter"
	"github.com/custodia-labs/docrank-cli/internal/signals"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService runs the relevance scoring and ranking pipeline.
// One run is single-threaded and shares no mutable state with other
// runs; the profile and batch statistics are read-only once computed.
type AnalysisService struct {
	config    domain.AnalysisConfig
	segmenter *segmenter.Segmenter
}

// NewAnalysisService creates an analysis service from a validated
// configuration.
func NewAnalysisService(config domain.AnalysisConfig) (*AnalysisService, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seg := segmenter.New(
		segmenter.WithMinLength(config.MinSectionLength),
		segmenter.WithMaxLength(config.MaxSectionLength),
		segmenter.WithSentenceGroupSize(config.SentenceGroupSize),
	)

	return &AnalysisService{config: config, segmenter: seg}, nil
}

// Analyse runs the full pipeline over one batch of documents. Empty
// or failing documents are skipped and the run continues; an exceeded
// budget or cancelled context aborts the run with no partial output.
func (s *AnalysisService) Analyse(ctx context.Context, req driving.AnalysisRequest) (domain.AnalysisResult, error) {
	logger.Section("Document Analysis")
	logger.Debug("Documents: %d, persona role: %q", len(req.Documents), req.Persona.Role)

	topK := req.TopK
	if topK <= 0 {
		topK = s.config.TopK
	}
	topN := req.TopN
	if topN <= 0 {
		topN = s.config.TopN
	}

	tracker := budget.New(s.config.WallClockBudget, s.config.MemoryBudgetBytes)

	prof := profile.Build(req.Persona, req.Job)
	logger.Debug("Profile keywords: %d", len(prof.Keywords))

	sections, metrics, err := s.segmentAll(ctx, req.Documents, tracker)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	extractor := signals.NewExtractor(prof)

	if err := checkpoint(ctx, tracker); err != nil {
		return domain.AnalysisResult{}, err
	}

	sectionSignals := extractor.SectionSignals(sections)
	sectionScores, sectionNorm := fusion.FuseSections(sectionSignals, s.config.Section)
	rankedSections := ranking.Sections(sections, sectionScores, sectionNorm)
	logger.Debug("Ranked %d sections", len(rankedSections))

	if err := checkpoint(ctx, tracker); err != nil {
		return domain.AnalysisResult{}, err
	}

	// Sub-section candidates are restricted to the top-N parent
	// sections, gathered in document order so ties stay deterministic.
	parents := ranking.TopParentIDs(rankedSections, topN)
	var subs []domain.SubSection
	for _, section := range sections {
		if _, ok := parents[section.ID]; ok {
			subs = append(subs, section.SubSections...)
		}
	}

	subSignals := extractor.SubSectionSignals(subs)
	subScores, subNorm := fusion.FuseSubSections(subSignals, s.config.SubSection)
	rankedSubs := ranking.SubSections(subs, subScores, subNorm)
	logger.Debug("Ranked %d sub-sections from %d parent sections", len(rankedSubs), len(parents))

	metrics.SectionsAnalysed = len(sections)
	metrics.Elapsed = tracker.Elapsed()
	metrics.WithinTimeBudget = tracker.WithinTime()
	metrics.WithinMemoryBudget = tracker.WithinMemory()

	return domain.AnalysisResult{
		Sections:    ranking.TopSections(rankedSections, topK),
		SubSections: ranking.TopSubSections(rankedSubs, topK),
		Metrics:     metrics,
	}, nil
}

// segmentAll segments every document of the batch, skipping empty or
// failing documents, with a budget checkpoint between documents.
func (s *AnalysisService) segmentAll(
	ctx context.Context, docs []domain.Document, tracker *budget.Tracker,
) ([]domain.Section, domain.RunMetrics, error) {
	metrics := domain.RunMetrics{DocumentsRequested: len(docs)}

	var sections []domain.Section
	for _, doc := range docs {
		if err := checkpoint(ctx, tracker); err != nil {
			return nil, metrics, err
		}

		if strings.TrimSpace(doc.Content) == "" {
			logger.Warn("Skipping %q: %v", doc.Name, domain.ErrEmptyDocument)
			metrics.DocumentsSkipped++
			continue
		}

		docSections, err := s.segmenter.Segment(doc, len(sections))
		if err != nil {
			logger.Error("Skipping %q: %v", doc.Name, err)
			metrics.DocumentsSkipped++
			continue
		}
		if len(docSections) == 0 {
			logger.Warn("Skipping %q: no sections produced", doc.Name)
			metrics.DocumentsSkipped++
			continue
		}

		sections = append(sections, docSections...)
		metrics.DocumentsProcessed++
		logger.Debug("Segmented %q into %d sections", doc.Name, len(docSections))
	}

	return sections, metrics, nil
}

// checkpoint is the cooperative abort point between pipeline steps.
func checkpoint(ctx context.Context, tracker *budget.Tracker) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("analysis cancelled: %w", err)
	}
	return tracker.Check()
}
