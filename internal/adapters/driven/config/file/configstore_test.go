package file

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/custodia-labs/docrank-cli/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestNewConfigStore(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		store, err := NewConfigStore(t.TempDir())
		if err != nil {
			t.Fatalf("NewConfigStore: %v", err)
		}

		cfg, err := store.AnalysisConfig()
		if err != nil {
			t.Fatalf("AnalysisConfig: %v", err)
		}
		if cfg != domain.DefaultAnalysisConfig() {
			t.Errorf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("path inside config dir", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewConfigStore(dir)
		if err != nil {
			t.Fatalf("NewConfigStore: %v", err)
		}
		if store.Path() != filepath.Join(dir, "config.toml") {
			t.Errorf("path = %q", store.Path())
		}
	})
}

func TestAnalysisConfig(t *testing.T) {
	t.Run("partial override keeps other defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `
[analysis]
top_k = 20
wall_clock_seconds = 30
`)

		store, err := NewConfigStore(dir)
		if err != nil {
			t.Fatalf("NewConfigStore: %v", err)
		}

		cfg, err := store.AnalysisConfig()
		if err != nil {
			t.Fatalf("AnalysisConfig: %v", err)
		}
		if cfg.TopK != 20 {
			t.Errorf("TopK = %d, want 20", cfg.TopK)
		}
		if cfg.WallClockBudget != 30*time.Second {
			t.Errorf("WallClockBudget = %v, want 30s", cfg.WallClockBudget)
		}
		if cfg.MinSectionLength != domain.DefaultAnalysisConfig().MinSectionLength {
			t.Errorf("MinSectionLength = %d, want default", cfg.MinSectionLength)
		}
	})

	t.Run("weight tables override", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `
[analysis.section_weights]
lexical = 0.5
keyword = 0.3
quality = 0.2
`)

		store, err := NewConfigStore(dir)
		if err != nil {
			t.Fatalf("NewConfigStore: %v", err)
		}

		cfg, err := store.AnalysisConfig()
		if err != nil {
			t.Fatalf("AnalysisConfig: %v", err)
		}
		want := domain.SectionWeights{Lexical: 0.5, Keyword: 0.3, Quality: 0.2}
		if cfg.Section != want {
			t.Errorf("Section = %+v, want %+v", cfg.Section, want)
		}
	})

	t.Run("invalid weights rejected", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `
[analysis.section_weights]
lexical = 0.9
keyword = 0.9
quality = 0.9
`)

		store, err := NewConfigStore(dir)
		if err != nil {
			t.Fatalf("NewConfigStore: %v", err)
		}

		_, err = store.AnalysisConfig()
		if !errors.Is(err, domain.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("malformed toml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "not [valid toml")

		if _, err := NewConfigStore(dir); err == nil {
			t.Error("expected parse error")
		}
	})
}
