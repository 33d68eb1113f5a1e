package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/custodia-labs/docrank-cli/internal/core/domain"
	"github.com/custodia-labs/docrank-cli/internal/core/ports/driving"
)

func newService(t *testing.T) *AnalysisService {
	t.Helper()
	svc, err := NewAnalysisService(domain.DefaultAnalysisConfig())
	if err != nil {
		t.Fatalf("NewAnalysisService: %v", err)
	}
	return svc
}

func dataScientistRequest(docs ...domain.Document) driving.AnalysisRequest {
	return driving.AnalysisRequest{
		Documents: docs,
		Persona: domain.Persona{
			Role:   "Data Scientist",
			Domain: "Healthcare",
			Goals:  []string{"machine learning"},
		},
		Job: domain.JobToBeDone{Description: "Find machine learning best practices"},
	}
}

func TestNewAnalysisService(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		if _, err := NewAnalysisService(domain.DefaultAnalysisConfig()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		cfg := domain.DefaultAnalysisConfig()
		cfg.Section.Lexical = 0.9

		_, err := NewAnalysisService(cfg)
		if !errors.Is(err, domain.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestAnalyse_RelevantDocumentWins(t *testing.T) {
	svc := newService(t)

	req := dataScientistRequest(
		domain.Document{
			ID:      "ml",
			Name:    "ml.txt",
			Content: "Machine learning models improve patient outcomes through predictive analytics.",
		},
		domain.Document{
			ID:      "review",
			Name:    "review.txt",
			Content: "Software teams use code review to improve quality.",
		},
	)

	result, err := svc.Analyse(context.Background(), req)
	if err != nil {
		t.Fatalf("Analyse: %v", err)
	}
	if len(result.Sections) != 2 {
		t.Fatalf("expected 2 ranked sections, got %d", len(result.Sections))
	}

	var mlScore, reviewScore float64
	for _, s := range result.Sections {
		switch s.Section.DocumentID {
		case "ml":
			mlScore = s.Score
		case "review":
			reviewScore = s.Score
		}
	}
	if mlScore <= reviewScore {
		t.Errorf("machine learning document must outscore code review: %v vs %v", mlScore, reviewScore)
	}
	if result.Sections[0].Section.DocumentID != "ml" {
		t.Errorf("expected ml document ranked first, got %q", result.Sections[0].Section.DocumentID)
	}
}

func TestAnalyse_RanksAreContiguous(t *testing.T) {
	svc := newService(t)

	req := dataScientistRequest(
		domain.Document{ID: "a", Name: "a.txt", Content: "Machine learning in clinical practice helps patient care."},
		domain.Document{ID: "b", Name: "b.txt", Content: "Statistics and modeling support treatment decisions every day."},
		domain.Document{ID: "c", Name: "c.txt", Content: "Gardening tips for a rainy climate and soggy lawns."},
	)

	result, err := svc.Analyse(context.Background(), req)
	if err != nil {
		t.Fatalf("Analyse: %v", err)
	}

	for i, s := range result.Sections {
		if s.Rank != i+1 {
			t.Errorf("section position %d: rank %d, want %d", i, s.Rank, i+1)
		}
	}
	for i, s := range result.SubSections {
		if s.Rank != i+1 {
			t.Errorf("sub-section position %d: rank %d, want %d", i, s.Rank, i+1)
		}
	}
}

func TestAnalyse_SubSectionsRestrictedToTopParents(t *testing.T) {
	svc := newService(t)

	req := dataScientistRequest(
		domain.Document{ID: "a", Name: "a.txt", Content: "Machine learning and analytics improve patient treatment pathways in clinics."},
		domain.Document{ID: "b", Name: "b.txt", Content: "Train timetables for the northern commuter line change in autumn."},
		domain.Document{ID: "c", Name: "c.txt", Content: "A recipe collection for slow-cooked seasonal vegetable stews."},
	)
	req.TopN = 1

	result, err := svc.Analyse(context.Background(), req)
	if err != nil {
		t.Fatalf("Analyse: %v", err)
	}
	if len(result.Sections) == 0 || len(result.SubSections) == 0 {
		t.Fatalf("expected ranked output, got %d sections, %d sub-sections",
			len(result.Sections), len(result.SubSections))
	}

	topParent := result.Sections[0].Section.ID
	for _, sub := range result.SubSections {
		if sub.SubSection.ParentSectionID != topParent {
			t.Errorf("sub-section parent %d outside top-1 section %d",
				sub.SubSection.ParentSectionID, topParent)
		}
	}
}

func TestAnalyse_SkipsEmptyDocuments(t *testing.T) {
	svc := newService(t)

	req := dataScientistRequest(
		domain.Document{ID: "a", Name: "a.txt", Content: "Machine learning methods support clinical analytics work."},
		domain.Document{ID: "empty", Name: "empty.txt", Content: "   \n\n  "},
		domain.Document{ID: "b", Name: "b.txt", Content: "Patient treatment plans benefit from statistics and modeling."},
	)

	result, err := svc.Analyse(context.Background(), req)
	if err != nil {
		t.Fatalf("Analyse: %v", err)
	}

	m := result.Metrics
	if m.DocumentsRequested != 3 {
		t.Errorf("requested = %d, want 3", m.DocumentsRequested)
	}
	if m.DocumentsProcessed != 2 {
		t.Errorf("processed = %d, want 2", m.DocumentsProcessed)
	}
	if m.DocumentsSkipped != 1 {
		t.Errorf("skipped = %d, want 1", m.DocumentsSkipped)
	}
	for _, s := range result.Sections {
		if s.Section.DocumentID == "empty" {
			t.Error("empty document must not produce ranked sections")
		}
	}
}

func TestAnalyse_Idempotent(t *testing.T) {
	svc := newService(t)

	req := dataScientistRequest(
		domain.Document{ID: "a", Name: "a.txt", Content: "Machine learning models improve patient outcomes through predictive analytics."},
		domain.Document{ID: "b", Name: "b.txt", Content: "Software teams use code review to improve quality."},
	)

	first, err := svc.Analyse(context.Background(), req)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := svc.Analyse(context.Background(), req)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	// Elapsed differs between runs; ranked output must not.
	first.Metrics.Elapsed = 0
	second.Metrics.Elapsed = 0
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated runs on identical input must produce identical ranked output")
	}
}

func TestAnalyse_EmptyBatch(t *testing.T) {
	svc := newService(t)

	result, err := svc.Analyse(context.Background(), dataScientistRequest())
	if err != nil {
		t.Fatalf("Analyse: %v", err)
	}
	if len(result.Sections) != 0 || len(result.SubSections) != 0 {
		t.Errorf("expected empty ranking, got %d sections, %d sub-sections",
			len(result.Sections), len(result.SubSections))
	}
}

func TestAnalyse_WallClockBudgetAborts(t *testing.T) {
	cfg := domain.DefaultAnalysisConfig()
	cfg.WallClockBudget = time.Nanosecond

	svc, err := NewAnalysisService(cfg)
	if err != nil {
		t.Fatalf("NewAnalysisService: %v", err)
	}

	req := dataScientistRequest(
		domain.Document{ID: "a", Name: "a.txt", Content: "Some document content long enough to process."},
	)

	_, err = svc.Analyse(context.Background(), req)
	if !errors.Is(err, domain.ErrBudgetExceeded) {
		t.Errorf("expected ErrBudgetExceeded, got %v", err)
	}
}

func TestAnalyse_CancelledContext(t *testing.T) {
	svc := newService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := dataScientistRequest(
		domain.Document{ID: "a", Name: "a.txt", Content: "Some document content."},
	)

	if _, err := svc.Analyse(ctx, req); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
