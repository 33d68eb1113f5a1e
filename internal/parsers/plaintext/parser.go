package plaintext

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/docrank-cli/internal/core/domain"
	"github.com/custodia-labs/docrank-cli/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.Parser = (*Parser)(nil)

// Parser handles plain text documents.
type Parser struct{}

// New creates a new plain text parser.
func New() *Parser {
	return &Parser{}
}

// Extensions returns the file extensions this parser handles.
func (p *Parser) Extensions() []string {
	return []string{".txt", ".text"}
}

// Parse converts raw file bytes into a document. Line endings are
// normalised so blank-line paragraph detection behaves the same on
// every platform.
func (p *Parser) Parse(_ context.Context, name string, data []byte) (domain.Document, error) {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")

	return domain.Document{
		ID:      uuid.New().String(),
		Name:    name,
		Title:   titleFromFilename(name),
		Content: content,
	}, nil
}

// titleFromFilename derives a display title from the file name.
func titleFromFilename(name string) string {
	filename := filepath.Base(name)
	ext := filepath.Ext(filename)
	if ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")
	return filename
}
