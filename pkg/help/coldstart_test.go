package help

import (
	"testing"

	"github.com/dtnitsch/wordfreq/models"
	"gopkg.in/yaml.v3"
)

func TestColdstartConfigIsValid(t *testing.T) {
	var doc struct {
		Config models.RunConfig `yaml:"config"`
	}
	if err := yaml.Unmarshal([]byte(ColdstartYAML), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal() failed: %v", err)
	}

	cfg := doc.Config
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if cfg.FilenamesFile != models.DefaultFilenamesFile || cfg.ReportSuffix != models.DefaultReportSuffix {
		t.Errorf("config = %+v, want defaults", cfg)
	}
	if len(cfg.Languages) != 3 {
		t.Errorf("Languages = %v, want 3 entries", cfg.Languages)
	}
}
