package plaintext

import (
	"context"
	"testing"
)

func TestParse(t *testing.T) {
	p := New()

	t.Run("content preserved", func(t *testing.T) {
		doc, err := p.Parse(context.Background(), "notes.txt", []byte("hello\n\nworld"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Content != "hello\n\nworld" {
			t.Errorf("content = %q", doc.Content)
		}
		if doc.Name != "notes.txt" {
			t.Errorf("name = %q", doc.Name)
		}
		if doc.ID == "" {
			t.Error("expected generated id")
		}
	})

	t.Run("windows line endings normalised", func(t *testing.T) {
		doc, err := p.Parse(context.Background(), "notes.txt", []byte("one\r\n\r\ntwo"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Content != "one\n\ntwo" {
			t.Errorf("content = %q", doc.Content)
		}
	})

	t.Run("title from filename", func(t *testing.T) {
		doc, err := p.Parse(context.Background(), "/tmp/travel_guide-2024.txt", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Title != "travel guide 2024" {
			t.Errorf("title = %q", doc.Title)
		}
	})
}

func TestExtensions(t *testing.T) {
	got := New().Extensions()
	if len(got) == 0 || got[0] != ".txt" {
		t.Errorf("unexpected extensions: %v", got)
	}
}
