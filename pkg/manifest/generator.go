package manifest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dtnitsch/wordfreq/models"
	"github.com/dtnitsch/wordfreq/pkg/analytics"
	"github.com/dtnitsch/wordfreq/pkg/mapreduce"
	"gopkg.in/yaml.v3"
)

// FileOutcome is what the driver knows about one processed file.
type FileOutcome struct {
	Filename        string
	ReportPath      string
	ReportSizeBytes int64
	Words           []models.WordCount
	Language        string
	Error           error
	ErrorType       string
}

// Build assembles the run summary. corpus holds the word counts merged
// across all successful files; skipped is the number of listed files that
// did not exist.
func Build(outcomes []FileOutcome, corpus map[string]int, skipped int, elapsed time.Duration, topN int) Summary {
	summary := Summary{
		Stats: Stats{
			TotalFiles:       len(outcomes) + skipped,
			Skipped:          skipped,
			TotalTimeSeconds: elapsed.Seconds(),
		},
		TopKeywords: mapreduce.TopKeywords(corpus, topN),
		Files:       make([]FileSummary, 0, len(outcomes)),
	}

	for _, o := range outcomes {
		fs := FileSummary{Filename: o.Filename}
		if o.Error != nil {
			summary.Stats.Failed++
			fs.Status = "error"
			fs.ErrorType = o.ErrorType
			fs.ErrorMessage = o.Error.Error()
		} else {
			summary.Stats.Successful++
			st := analytics.Summarize(o.Words)
			fs.Status = "success"
			fs.ReportPath = o.ReportPath
			fs.ReportSizeBytes = o.ReportSizeBytes
			fs.Tokens = st.TotalWords
			fs.DistinctWords = st.DistinctWords
			fs.Hapax = st.Hapax
			fs.Language = o.Language
		}
		summary.Files = append(summary.Files, fs)
	}

	switch {
	case summary.Stats.Failed == 0:
		summary.Status = "success"
	case summary.Stats.Successful == 0:
		summary.Status = "failed"
	default:
		summary.Status = "partial_failure"
	}
	return summary
}

// Render formats the summary for stdout. The text format is the single
// elapsed-time line.
func Render(summary Summary, format string) ([]byte, error) {
	switch format {
	case "", "text":
		return []byte(fmt.Sprintf("results in : %.6f\n", summary.Stats.TotalTimeSeconds)), nil
	case "json":
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error marshalling summary: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(summary)
		if err != nil {
			return nil, fmt.Errorf("error marshalling summary: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown summary format %q", format)
	}
}
