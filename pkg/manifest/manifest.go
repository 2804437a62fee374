package manifest

// Summary provides an overview of one run: per-file status,
// corpus-wide top keywords and timing.
type Summary struct {
	Status      string        `json:"status" yaml:"status"` // "success", "partial_failure" or "failed"
	Stats       Stats         `json:"stats" yaml:"stats"`
	TopKeywords []string      `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
	Files       []FileSummary `json:"files" yaml:"files"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalFiles       int     `json:"total_files" yaml:"total_files"`
	Skipped          int     `json:"skipped" yaml:"skipped"`
	Successful       int     `json:"successful" yaml:"successful"`
	Failed           int     `json:"failed" yaml:"failed"`
	TotalTimeSeconds float64 `json:"total_time_seconds" yaml:"total_time_seconds"`
}

// FileSummary represents summary information for a single input file.
type FileSummary struct {
	Filename        string `json:"filename" yaml:"filename"`
	Status          string `json:"status" yaml:"status"` // "success" or "error"
	ReportPath      string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
	ReportSizeBytes int64  `json:"report_size_bytes,omitempty" yaml:"report_size_bytes,omitempty"`
	Tokens          int    `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	DistinctWords   int    `json:"distinct_words,omitempty" yaml:"distinct_words,omitempty"`
	Hapax           int    `json:"hapax,omitempty" yaml:"hapax,omitempty"`
	Language        string `json:"language,omitempty" yaml:"language,omitempty"`
	ErrorType       string `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	ErrorMessage    string `json:"error_message,omitempty" yaml:"error_message,omitempty"`
}
