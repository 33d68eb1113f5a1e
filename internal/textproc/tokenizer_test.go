package textproc

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Run("lowercases and filters short tokens", func(t *testing.T) {
		got := Tokenize("Machine Learning is FUN, ok?")
		want := []string{"machine", "learning", "fun"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Tokenize() = %v, want %v", got, want)
		}
	})

	t.Run("removes stop words", func(t *testing.T) {
		got := Tokenize("the model and the data were ready")
		want := []string{"model", "data", "ready"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Tokenize() = %v, want %v", got, want)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := Tokenize(""); len(got) != 0 {
			t.Errorf("expected no tokens, got %v", got)
		}
	})

	t.Run("punctuation and digits only", func(t *testing.T) {
		if got := Tokenize("123 ... !!! 456"); len(got) != 0 {
			t.Errorf("expected no tokens, got %v", got)
		}
	})

	t.Run("strips non-alphabetic characters", func(t *testing.T) {
		got := Tokenize("gluten-free catering")
		want := []string{"gluten", "free", "catering"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Tokenize() = %v, want %v", got, want)
		}
	})
}

func TestIsStopword(t *testing.T) {
	if !IsStopword("The") {
		t.Error("expected 'The' to be a stop word")
	}
	if IsStopword("model") {
		t.Error("expected 'model' not to be a stop word")
	}
}

func TestNGrams(t *testing.T) {
	t.Run("bigrams skip stop words", func(t *testing.T) {
		got := NGrams("plan the machine learning rollout", 2)
		want := []string{"machine learning", "learning rollout"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("NGrams() = %v, want %v", got, want)
		}
	})

	t.Run("trigrams", func(t *testing.T) {
		got := NGrams("find machine learning best practices", 3)
		want := []string{"find machine learning", "machine learning best", "learning best practices"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("NGrams() = %v, want %v", got, want)
		}
	})

	t.Run("too short input", func(t *testing.T) {
		if got := NGrams("hello", 2); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("invalid n", func(t *testing.T) {
		if got := NGrams("hello world", 0); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}

func TestSentences(t *testing.T) {
	t.Run("splits on terminators", func(t *testing.T) {
		got := Sentences("First sentence. Second one! Third?")
		want := []string{"First sentence", "Second one", "Third"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Sentences() = %v, want %v", got, want)
		}
	})

	t.Run("collapses repeated terminators", func(t *testing.T) {
		got := Sentences("Wait... what?!")
		want := []string{"Wait", "what"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Sentences() = %v, want %v", got, want)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := Sentences("   "); len(got) != 0 {
			t.Errorf("expected no sentences, got %v", got)
		}
	})
}

func TestUniqueRatio(t *testing.T) {
	t.Run("all unique", func(t *testing.T) {
		if got := UniqueRatio("alpha beta gamma"); got != 1.0 {
			t.Errorf("UniqueRatio() = %v, want 1.0", got)
		}
	})

	t.Run("repetitive", func(t *testing.T) {
		if got := UniqueRatio("spam spam spam spam"); got != 0.25 {
			t.Errorf("UniqueRatio() = %v, want 0.25", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := UniqueRatio(""); got != 0 {
			t.Errorf("UniqueRatio() = %v, want 0", got)
		}
	})
}
