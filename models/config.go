// Package models defines data structures for configuration and word counts.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFilenamesFile = "filenames.txt"
	DefaultReportSuffix  = "_report.txt"
	DefaultTopKeywords   = 10
	DefaultFormat        = "text"
)

// RunConfig holds runtime configuration for a report run.
// Values come from an optional YAML file and are overridden by CLI flags.
// The worker pool size is deliberately absent; it is fixed per dispatcher.
type RunConfig struct {
	FilenamesFile   string   `yaml:"filenames_file"`
	OutputDir       string   `yaml:"output_dir"`
	ReportSuffix    string   `yaml:"report_suffix"`
	ExtractHTML     bool     `yaml:"extract_html"`
	UniformBrackets bool     `yaml:"uniform_brackets"`
	DetectLanguage  bool     `yaml:"detect_language"`
	Languages       []string `yaml:"languages,omitempty"`
	TopKeywords     int      `yaml:"top_keywords"`
	Format          string   `yaml:"format"`
}

// DefaultRunConfig returns the configuration used when no file is given.
func DefaultRunConfig() *RunConfig {
	return &RunConfig{
		FilenamesFile: DefaultFilenamesFile,
		ReportSuffix:  DefaultReportSuffix,
		TopKeywords:   DefaultTopKeywords,
		Format:        DefaultFormat,
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*RunConfig, error) {
	cfg := DefaultRunConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fills empty values with defaults and rejects unknown formats.
func (c *RunConfig) Validate() error {
	if c.FilenamesFile == "" {
		c.FilenamesFile = DefaultFilenamesFile
	}
	if c.ReportSuffix == "" {
		c.ReportSuffix = DefaultReportSuffix
	}
	if c.TopKeywords < 0 {
		return fmt.Errorf("top_keywords must be >= 0, got %d", c.TopKeywords)
	}
	if c.DetectLanguage && len(c.Languages) == 1 {
		return fmt.Errorf("languages needs at least two entries for detection, got %q", c.Languages[0])
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", c.Format)
	}
	return nil
}
