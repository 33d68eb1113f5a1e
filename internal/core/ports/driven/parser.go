package driven

import (
	"context"

	"github.com/custodia-labs/docrank-cli/internal/core/domain"
)

// Parser extracts plain text from one document container format.
type Parser interface {
	// Extensions returns the file extensions this parser handles,
	// lower-cased with a leading dot (e.g. ".md").
	Extensions() []string

	// Parse extracts a document from raw file bytes. The name is the
	// source identifier used for display and document identity.
	Parse(ctx context.Context, name string, data []byte) (domain.Document, error)
}

// ParserRegistry selects the parser for a file by its extension.
type ParserRegistry interface {
	// ParserFor returns the parser registered for the file's
	// extension, or false when the format is unsupported.
	ParserFor(path string) (Parser, bool)
}
