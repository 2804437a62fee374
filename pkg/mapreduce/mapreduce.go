package mapreduce

import (
	"github.com/dtnitsch/wordfreq/models"
	"github.com/dtnitsch/wordfreq/pkg/analytics"
)

// Map aggregates one file's tokens into an unordered word count list.
func Map(tokens []string) []models.WordCount {
	frequencies := analytics.WordFrequency(tokens)

	words := make([]models.WordCount, 0, len(frequencies))
	for word, count := range frequencies {
		words = append(words, models.WordCount{Word: word, Count: uint32(count)})
	}
	return words
}

// Counts converts a word count list back into a frequency map.
func Counts(words []models.WordCount) map[string]int {
	counts := make(map[string]int, len(words))
	for _, wc := range words {
		counts[wc.Word] += int(wc.Count)
	}
	return counts
}

// Reduce aggregates a slice of word frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}
