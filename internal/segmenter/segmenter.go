// Package segmenter splits raw document text into ordered sections
// and sub-sections using structural heuristics: blank-line paragraph
// boundaries, heading-like lines and a section length ceiling.
package segmenter

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/custodia-labs/docrank-cli/internal/core/domain"
	"github.com/custodia-labs/docrank-cli/internal/textproc"
)

// DefaultMinSectionLength is the default minimum section content length.
const DefaultMinSectionLength = 100

// DefaultMaxSectionLength is the default section content length ceiling.
const DefaultMaxSectionLength = 2000

// DefaultSentenceGroupSize is the default number of sentences per sub-section.
const DefaultSentenceGroupSize = 3

// minSentenceLength is the shortest sentence fragment kept during
// sub-section grouping.
const minSentenceLength = 20

// fallbackSentencesPerSection is the group size used when a document
// with no structure collapses into a single oversized section and is
// split purely by sentence count.
const fallbackSentencesPerSection = 10

// Heading detection patterns. A paragraph under 100 characters
// matching any of these is treated as a section header.
var (
	numberedHeading  = regexp.MustCompile(`^\d+\.?\s+[A-Za-z]`)
	allCapsHeading   = regexp.MustCompile(`^[A-Z][A-Z\s]+$`)
	titleWithColon   = regexp.MustCompile(`^[A-Z][A-Za-z\s]+:$`)
	markdownHeading  = regexp.MustCompile(`^#+\s+`)
	paragraphSplit   = regexp.MustCompile(`\n\s*\n`)
	maxHeadingLength = 100
)

// Segmenter splits raw text into sections and sub-sections.
type Segmenter struct {
	minLength int
	maxLength int
	groupSize int
}

// Option configures the segmenter.
type Option func(*Segmenter)

// WithMinLength sets the minimum section content length in characters.
func WithMinLength(n int) Option {
	return func(s *Segmenter) {
		if n >= 0 {
			s.minLength = n
		}
	}
}

// WithMaxLength sets the section content length ceiling in characters.
func WithMaxLength(n int) Option {
	return func(s *Segmenter) {
		if n > 0 {
			s.maxLength = n
		}
	}
}

// WithSentenceGroupSize sets the number of sentences per sub-section.
func WithSentenceGroupSize(n int) Option {
	return func(s *Segmenter) {
		if n > 0 {
			s.groupSize = n
		}
	}
}

// New creates a segmenter with the given options.
func New(opts ...Option) *Segmenter {
	s := &Segmenter{
		minLength: DefaultMinSectionLength,
		maxLength: DefaultMaxSectionLength,
		groupSize: DefaultSentenceGroupSize,
	}

	for _, opt := range opts {
		opt(s)
	}

	// The ceiling must stay above the minimum to terminate
	if s.minLength >= s.maxLength {
		s.minLength = s.maxLength / 2
	}

	return s
}

// Segment splits the document content into ordered sections with
// sub-sections attached. Section IDs start at baseID so that IDs stay
// unique across the documents of one run. Empty or whitespace-only
// content yields no sections.
func (s *Segmenter) Segment(doc domain.Document, baseID int) ([]domain.Section, error) {
	paragraphs := splitParagraphs(doc.Content)
	if len(paragraphs) == 0 {
		return nil, nil
	}

	runs := s.accumulate(paragraphs)

	// Last resort: a structureless document that still collapsed
	// into a single oversized run is split purely by sentence count.
	if len(runs) == 1 && len(runs[0].content) > s.maxLength {
		runs = splitBySentenceCount(runs[0].content)
	}

	sections := make([]domain.Section, 0, len(runs))
	for i, run := range runs {
		title := run.title
		if title == "" {
			title = fmt.Sprintf("Section %d", i+1)
		}

		section, err := domain.NewSection(baseID+i, doc, title, run.content)
		if err != nil {
			return nil, fmt.Errorf("build section: %w", err)
		}
		section.SubSections, err = s.groupSentences(section.ID, run.content)
		if err != nil {
			return nil, fmt.Errorf("group sentences: %w", err)
		}

		sections = append(sections, section)
	}

	return sections, nil
}

// run is an accumulated paragraph sequence pending section construction.
type run struct {
	title   string
	content string
}

// accumulate scans paragraphs in order, closing a run on each header
// (when the run has reached the minimum length) and force-closing
// whenever the running content exceeds the ceiling.
func (s *Segmenter) accumulate(paragraphs []string) []run {
	var (
		runs    []run
		current []string
		curLen  int
		title   string
	)

	flush := func(nextTitle string) {
		if len(current) > 0 {
			runs = append(runs, run{title: title, content: strings.Join(current, "\n\n")})
		}
		current = nil
		curLen = 0
		title = nextTitle
	}

	for _, para := range paragraphs {
		if isHeader(para) {
			if curLen >= s.minLength {
				flush(para)
			} else {
				// Undersized run: keep accumulating so no
				// paragraph is dropped; the latest header wins.
				title = para
			}
			current = append(current, para)
			curLen += len(para)
		} else {
			current = append(current, para)
			curLen += len(para)
		}

		// Force-close oversized runs; the follow-up run has no
		// title and falls back to a positional one.
		if curLen > s.maxLength {
			flush("")
		}
	}

	flush("")
	return runs
}

// groupSentences splits section content into sentence groups of the
// configured size. Fragments under minSentenceLength characters are
// dropped; the trailing group may hold fewer sentences.
func (s *Segmenter) groupSentences(sectionID int, content string) ([]domain.SubSection, error) {
	var sentences []string
	for _, sent := range textproc.Sentences(content) {
		if len(sent) >= minSentenceLength {
			sentences = append(sentences, sent)
		}
	}

	var subs []domain.SubSection
	for start := 0; start < len(sentences); start += s.groupSize {
		end := start + s.groupSize
		if end > len(sentences) {
			end = len(sentences)
		}

		sub, err := domain.NewSubSection(
			sectionID,
			len(subs),
			strings.Join(sentences[start:end], ". "),
			end-start,
		)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	return subs, nil
}

// splitParagraphs splits text on blank-line boundaries and trims the
// resulting paragraphs, dropping empty ones.
func splitParagraphs(text string) []string {
	parts := paragraphSplit.Split(text, -1)

	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// splitBySentenceCount chops content into fixed-size sentence groups,
// ignoring the length ceiling.
func splitBySentenceCount(content string) []run {
	sentences := textproc.Sentences(content)
	if len(sentences) == 0 {
		return []run{{content: content}}
	}

	var runs []run
	for start := 0; start < len(sentences); start += fallbackSentencesPerSection {
		end := start + fallbackSentencesPerSection
		if end > len(sentences) {
			end = len(sentences)
		}
		runs = append(runs, run{content: strings.Join(sentences[start:end], ". ")})
	}
	return runs
}

// isHeader reports whether a paragraph looks like a section header.
func isHeader(para string) bool {
	if markdownHeading.MatchString(para) {
		return true
	}
	if len(para) < 50 && isAllUpper(para) {
		return true
	}
	if len(para) < maxHeadingLength {
		return numberedHeading.MatchString(para) ||
			allCapsHeading.MatchString(para) ||
			titleWithColon.MatchString(para)
	}
	return false
}

// isAllUpper reports whether the text contains at least one letter
// and no lower-case letters.
func isAllUpper(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
