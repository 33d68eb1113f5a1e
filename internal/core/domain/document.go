package domain

import "fmt"

// Document represents a single input document after text extraction.
// The engine never mutates a document once it has been handed over
// by a parser.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Name is the source identifier (file path or display name).
	Name string

	// Title is the human-readable title.
	Title string

	// Content is the full extracted text content.
	Content string
}

// Section is a coarse document fragment produced by segmentation.
// Sections are value objects scoped to one analysis run and are
// never mutated after creation.
type Section struct {
	// ID is the section identifier, 0-based in run order.
	// IDs are unique across all documents of a single run.
	ID int

	// DocumentID links to the source document.
	DocumentID string

	// DocumentName is the source identifier of the document.
	DocumentName string

	// Title is the detected heading, or a positional fallback
	// like "Section 3" when no heading was found.
	Title string

	// Content is the section text. It contains, in order, every
	// paragraph assigned to this section including its heading line.
	Content string

	// SubSections are the fine-grained fragments of this section,
	// in document order.
	SubSections []SubSection
}

// NewSection creates a section and validates its invariants.
func NewSection(id int, doc Document, title, content string) (Section, error) {
	if id < 0 {
		return Section{}, fmt.Errorf("%w: negative section id %d", ErrInvalidInput, id)
	}
	return Section{
		ID:           id,
		DocumentID:   doc.ID,
		DocumentName: doc.Name,
		Title:        title,
		Content:      content,
	}, nil
}

// SubSection is a fine document fragment: a run of roughly three
// consecutive sentences from its parent section.
type SubSection struct {
	// ParentSectionID is the ID of the owning Section.
	ParentSectionID int

	// Index is the 0-based position within the parent section.
	Index int

	// Content is the sub-section text.
	Content string

	// SentenceCount is the number of sentences grouped into this
	// sub-section. The trailing group of a section may hold fewer
	// sentences than the configured group size.
	SentenceCount int
}

// NewSubSection creates a sub-section and validates its invariants.
func NewSubSection(parentID, index int, content string, sentences int) (SubSection, error) {
	if parentID < 0 {
		return SubSection{}, fmt.Errorf("%w: negative parent section id %d", ErrInvalidInput, parentID)
	}
	if index < 0 {
		return SubSection{}, fmt.Errorf("%w: negative sub-section index %d", ErrInvalidInput, index)
	}
	if sentences < 1 {
		return SubSection{}, fmt.Errorf("%w: sub-section must hold at least one sentence", ErrInvalidInput)
	}
	return SubSection{
		ParentSectionID: parentID,
		Index:           index,
		Content:         content,
		SentenceCount:   sentences,
	}, nil
}
