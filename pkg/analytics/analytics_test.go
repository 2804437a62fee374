package analytics

import (
	"testing"

	"github.com/dtnitsch/wordfreq/models"
)

func TestWordFrequency(t *testing.T) {
	got := WordFrequency([]string{"the", "cat", "sat", "on", "the", "mat", "The"})

	want := map[string]int{"the": 2, "cat": 1, "sat": 1, "on": 1, "mat": 1, "The": 1}
	if len(got) != len(want) {
		t.Fatalf("WordFrequency() returned %d words, want %d", len(got), len(want))
	}
	for w, c := range want {
		if got[w] != c {
			t.Errorf("WordFrequency()[%q] = %d, want %d", w, got[w], c)
		}
	}
}

func TestWordFrequency_Empty(t *testing.T) {
	got := WordFrequency(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("WordFrequency(nil) = %v, want empty map", got)
	}
}

func TestSummarize(t *testing.T) {
	words := []models.WordCount{
		{Word: "cat", Count: 1},
		{Word: "mat", Count: 1},
		{Word: "the", Count: 2},
	}

	got := Summarize(words)
	want := Stats{TotalWords: 4, DistinctWords: 3, Hapax: 2}
	if got != want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}
}
