package ranking

import (
	"testing"

	"github.com/custodia-labs/docrank-cli/internal/core/domain"
)

func sectionsFixture(n int) ([]domain.Section, []map[string]float64) {
	sections := make([]domain.Section, n)
	signals := make([]map[string]float64, n)
	for i := range sections {
		sections[i] = domain.Section{ID: i, DocumentID: "doc-1"}
		signals[i] = map[string]float64{}
	}
	return sections, signals
}

func TestSections(t *testing.T) {
	t.Run("sorted descending with contiguous ranks", func(t *testing.T) {
		sections, signals := sectionsFixture(4)
		scored := Sections(sections, []float64{0.2, 0.9, 0.5, 0.7}, signals)

		wantOrder := []int{1, 3, 2, 0}
		for i, want := range wantOrder {
			if scored[i].Section.ID != want {
				t.Errorf("position %d: section %d, want %d", i, scored[i].Section.ID, want)
			}
			if scored[i].Rank != i+1 {
				t.Errorf("position %d: rank %d, want %d", i, scored[i].Rank, i+1)
			}
		}
	})

	t.Run("ties keep document order", func(t *testing.T) {
		sections, signals := sectionsFixture(3)
		scored := Sections(sections, []float64{0.5, 0.5, 0.5}, signals)

		for i := range scored {
			if scored[i].Section.ID != i {
				t.Errorf("position %d: section %d, tie must preserve input order", i, scored[i].Section.ID)
			}
			if scored[i].Rank != i+1 {
				t.Errorf("position %d: rank %d, ties never share a rank", i, scored[i].Rank)
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := Sections(nil, nil, nil); len(got) != 0 {
			t.Errorf("expected empty ranking, got %v", got)
		}
	})
}

func TestSubSections(t *testing.T) {
	subs := []domain.SubSection{
		{ParentSectionID: 0, Index: 0},
		{ParentSectionID: 0, Index: 1},
	}
	signals := []map[string]float64{{}, {}}

	scored := SubSections(subs, []float64{0.1, 0.8}, signals)

	if scored[0].SubSection.Index != 1 || scored[0].Rank != 1 {
		t.Errorf("expected second sub-section first, got %+v", scored[0])
	}
	if scored[1].SubSection.Index != 0 || scored[1].Rank != 2 {
		t.Errorf("expected first sub-section second, got %+v", scored[1])
	}
}

func TestTopSections(t *testing.T) {
	sections, signals := sectionsFixture(5)
	scored := Sections(sections, []float64{0.1, 0.2, 0.3, 0.4, 0.5}, signals)

	t.Run("truncates to k", func(t *testing.T) {
		top := TopSections(scored, 2)
		if len(top) != 2 {
			t.Fatalf("expected 2 sections, got %d", len(top))
		}
		if top[0].Rank != 1 || top[1].Rank != 2 {
			t.Errorf("expected ranks 1 and 2, got %d and %d", top[0].Rank, top[1].Rank)
		}
	})

	t.Run("k above length", func(t *testing.T) {
		if got := TopSections(scored, 50); len(got) != 5 {
			t.Errorf("expected all 5 sections, got %d", len(got))
		}
	})

	t.Run("non-positive k", func(t *testing.T) {
		if got := TopSections(scored, 0); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}

func TestTopParentIDs(t *testing.T) {
	sections, signals := sectionsFixture(4)
	scored := Sections(sections, []float64{0.1, 0.9, 0.4, 0.6}, signals)

	ids := TopParentIDs(scored, 2)

	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(ids))
	}
	for _, want := range []int{1, 3} {
		if _, ok := ids[want]; !ok {
			t.Errorf("expected section %d in top parent set", want)
		}
	}
}
