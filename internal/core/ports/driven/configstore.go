package driven

import (
	"github.com/custodia-labs/docrank-cli/internal/core/domain"
)

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and defaulting.
type ConfigStore interface {
	// Load reads configuration from storage. A missing file is not an
	// error; built-in defaults apply.
	Load() error

	// AnalysisConfig returns the analysis configuration with defaults
	// merged in for keys the storage does not set. The returned
	// configuration is validated.
	AnalysisConfig() (domain.AnalysisConfig, error)

	// Path returns the configuration file path.
	Path() string
}
