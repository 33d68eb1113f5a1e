// Package parsers wires the document container parsers and selects
// one by file extension.
package parsers

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/docrank-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docrank-cli/internal/parsers/docx"
	"github.com/custodia-labs/docrank-cli/internal/parsers/markdown"
	"github.com/custodia-labs/docrank-cli/internal/parsers/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.ParserRegistry = (*Registry)(nil)

// Registry maps file extensions to parsers. Later registrations win
// on extension conflicts.
type Registry struct {
	byExt map[string]driven.Parser
}

// NewRegistry creates a registry with the built-in parsers registered.
func NewRegistry() *Registry {
	r := &Registry{byExt: make(map[string]driven.Parser)}
	r.Register(plaintext.New())
	r.Register(markdown.New())
	r.Register(docx.New())
	return r
}

// Register adds a parser for each of its extensions.
func (r *Registry) Register(p driven.Parser) {
	for _, ext := range p.Extensions() {
		r.byExt[strings.ToLower(ext)] = p
	}
}

// ParserFor returns the parser registered for the file's extension.
func (r *Registry) ParserFor(path string) (driven.Parser, bool) {
	p, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	return p, ok
}

// SupportedExtensions returns all registered extensions in sorted
// order, for help text and error messages.
func (r *Registry) SupportedExtensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
