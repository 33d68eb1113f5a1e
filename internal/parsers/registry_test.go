package parsers

import (
	"sort"
	"testing"
)

func TestParserFor(t *testing.T) {
	r := NewRegistry()

	cases := []struct {
		path string
		want bool
	}{
		{"notes.txt", true},
		{"README.md", true},
		{"guide.markdown", true},
		{"report.docx", true},
		{"REPORT.DOCX", true},
		{"image.png", false},
		{"noextension", false},
	}

	for _, tc := range cases {
		if _, ok := r.ParserFor(tc.path); ok != tc.want {
			t.Errorf("ParserFor(%q) = %v, want %v", tc.path, ok, tc.want)
		}
	}
}

func TestSupportedExtensions(t *testing.T) {
	exts := NewRegistry().SupportedExtensions()

	if !sort.StringsAreSorted(exts) {
		t.Errorf("extensions not sorted: %v", exts)
	}

	want := map[string]bool{".txt": true, ".md": true, ".docx": true}
	for _, ext := range exts {
		delete(want, ext)
	}
	if len(want) != 0 {
		t.Errorf("missing extensions: %v", want)
	}
}
