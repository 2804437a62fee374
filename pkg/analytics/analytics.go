package analytics

import "github.com/dtnitsch/wordfreq/models"

// WordFrequency counts occurrences of each token.
// Comparison is exact and case-sensitive; no normalization happens here.
func WordFrequency(tokens []string) map[string]int {
	frequencies := make(map[string]int)
	for _, tok := range tokens {
		frequencies[tok]++
	}
	return frequencies
}

// Stats describes one file's word distribution.
type Stats struct {
	TotalWords    int
	DistinctWords int
	Hapax         int // words occurring exactly once
}

// Summarize computes Stats for an aggregated word list.
func Summarize(words []models.WordCount) Stats {
	s := Stats{DistinctWords: len(words)}
	for _, wc := range words {
		s.TotalWords += int(wc.Count)
		if wc.Count == 1 {
			s.Hapax++
		}
	}
	return s
}
