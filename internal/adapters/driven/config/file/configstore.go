// Package file provides a TOML file-backed configuration store.
package file

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/docrank-cli/internal/core/domain"
	"github.com/custodia-labs/docrank-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// fileConfig is the on-disk TOML schema. Every field is optional;
// unset fields keep their built-in defaults.
type fileConfig struct {
	Analysis analysisTable `toml:"analysis"`
}

type analysisTable struct {
	MinSectionLength  *int `toml:"min_section_length"`
	MaxSectionLength  *int `toml:"max_section_length"`
	SentenceGroupSize *int `toml:"sentence_group_size"`
	TopK              *int `toml:"top_k"`
	TopN              *int `toml:"top_n"`
	WallClockSeconds  *int `toml:"wall_clock_seconds"`
	MemoryBudgetMB    *int `toml:"memory_budget_mb"`

	SectionWeights    *sectionWeightsTable    `toml:"section_weights"`
	SubSectionWeights *subSectionWeightsTable `toml:"subsection_weights"`
}

type sectionWeightsTable struct {
	Lexical float64 `toml:"lexical"`
	Keyword float64 `toml:"keyword"`
	Quality float64 `toml:"quality"`
}

type subSectionWeightsTable struct {
	Density       float64 `toml:"density"`
	Specificity   float64 `toml:"specificity"`
	Actionability float64 `toml:"actionability"`
}

// ConfigStore is a file-based implementation of driven.ConfigStore
// using TOML. Configuration is stored within the docrank config
// directory.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     fileConfig
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.docrank/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".docrank")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{filePath: filepath.Join(configDir, "config.toml")}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads configuration from the TOML file. A missing file is not
// an error; built-in defaults apply.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		s.data = fileConfig{}
		return nil
	}
	if err != nil {
		return err
	}

	var data fileConfig
	if err := toml.Unmarshal(raw, &data); err != nil {
		return err
	}
	s.data = data
	return nil
}

// AnalysisConfig returns the analysis configuration with defaults
// merged in for unset keys. The result is validated before return.
func (s *ConfigStore) AnalysisConfig() (domain.AnalysisConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := domain.DefaultAnalysisConfig()
	a := s.data.Analysis

	if a.MinSectionLength != nil {
		cfg.MinSectionLength = *a.MinSectionLength
	}
	if a.MaxSectionLength != nil {
		cfg.MaxSectionLength = *a.MaxSectionLength
	}
	if a.SentenceGroupSize != nil {
		cfg.SentenceGroupSize = *a.SentenceGroupSize
	}
	if a.TopK != nil {
		cfg.TopK = *a.TopK
	}
	if a.TopN != nil {
		cfg.TopN = *a.TopN
	}
	if a.WallClockSeconds != nil {
		cfg.WallClockBudget = time.Duration(*a.WallClockSeconds) * time.Second
	}
	if a.MemoryBudgetMB != nil {
		cfg.MemoryBudgetBytes = uint64(*a.MemoryBudgetMB) * 1024 * 1024
	}
	if a.SectionWeights != nil {
		cfg.Section = domain.SectionWeights{
			Lexical: a.SectionWeights.Lexical,
			Keyword: a.SectionWeights.Keyword,
			Quality: a.SectionWeights.Quality,
		}
	}
	if a.SubSectionWeights != nil {
		cfg.SubSection = domain.SubSectionWeights{
			Density:       a.SubSectionWeights.Density,
			Specificity:   a.SubSectionWeights.Specificity,
			Actionability: a.SubSectionWeights.Actionability,
		}
	}

	if err := cfg.Validate(); err != nil {
		return domain.AnalysisConfig{}, err
	}
	return cfg, nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
