package manifest

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dtnitsch/wordfreq/models"
	"gopkg.in/yaml.v3"
)

func sampleOutcomes() []FileOutcome {
	return []FileOutcome{
		{
			Filename:        "x.txt",
			ReportPath:      "x.txt_report.txt",
			ReportSizeBytes: 42,
			Words: []models.WordCount{
				{Word: "cat", Count: 1},
				{Word: "the", Count: 2},
			},
			Language: "English",
		},
		{
			Filename:  "broken.txt",
			Error:     errors.New("permission denied"),
			ErrorType: "read_error",
		},
	}
}

func TestBuild(t *testing.T) {
	corpus := map[string]int{"the": 2, "cat": 1}
	summary := Build(sampleOutcomes(), corpus, 1, 1500*time.Millisecond, 5)

	if summary.Status != "partial_failure" {
		t.Errorf("Status = %q, want partial_failure", summary.Status)
	}
	wantStats := Stats{TotalFiles: 3, Skipped: 1, Successful: 1, Failed: 1, TotalTimeSeconds: 1.5}
	if summary.Stats != wantStats {
		t.Errorf("Stats = %+v, want %+v", summary.Stats, wantStats)
	}
	if len(summary.TopKeywords) != 2 || summary.TopKeywords[0] != "the:2" {
		t.Errorf("TopKeywords = %v, want [the:2 cat:1]", summary.TopKeywords)
	}

	ok := summary.Files[0]
	if ok.Status != "success" || ok.Tokens != 3 || ok.DistinctWords != 2 || ok.Hapax != 1 || ok.Language != "English" {
		t.Errorf("Files[0] = %+v", ok)
	}
	bad := summary.Files[1]
	if bad.Status != "error" || bad.ErrorType != "read_error" || bad.ErrorMessage != "permission denied" || bad.ReportPath != "" {
		t.Errorf("Files[1] = %+v", bad)
	}
}

func TestBuild_Status(t *testing.T) {
	outcomes := sampleOutcomes()

	tests := []struct {
		name     string
		outcomes []FileOutcome
		want     string
	}{
		{name: "all success", outcomes: outcomes[:1], want: "success"},
		{name: "all failed", outcomes: outcomes[1:], want: "failed"},
		{name: "nothing to do", outcomes: nil, want: "success"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Build(tt.outcomes, nil, 0, 0, 3).Status; got != tt.want {
				t.Errorf("Status = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	summary := Build(sampleOutcomes(), map[string]int{"the": 2}, 0, 250*time.Millisecond, 3)

	text, err := Render(summary, "text")
	if err != nil {
		t.Fatalf("Render(text) failed: %v", err)
	}
	if string(text) != "results in : 0.250000\n" {
		t.Errorf("Render(text) = %q", text)
	}

	data, err := Render(summary, "json")
	if err != nil {
		t.Fatalf("Render(json) failed: %v", err)
	}
	var fromJSON Summary
	if err := json.Unmarshal(data, &fromJSON); err != nil {
		t.Fatalf("json.Unmarshal() failed: %v", err)
	}
	if fromJSON.Status != summary.Status || len(fromJSON.Files) != 2 {
		t.Errorf("json summary = %+v", fromJSON)
	}

	data, err = Render(summary, "yaml")
	if err != nil {
		t.Fatalf("Render(yaml) failed: %v", err)
	}
	if !strings.Contains(string(data), "status: partial_failure") {
		t.Errorf("Render(yaml) missing status line:\n%s", data)
	}
	var fromYAML Summary
	if err := yaml.Unmarshal(data, &fromYAML); err != nil {
		t.Fatalf("yaml.Unmarshal() failed: %v", err)
	}
	if fromYAML.Files[1].ErrorType != "read_error" {
		t.Errorf("yaml Files[1].ErrorType = %q, want read_error", fromYAML.Files[1].ErrorType)
	}

	if _, err := Render(summary, "xml"); err == nil {
		t.Error("Render(xml) expected error")
	}
}
