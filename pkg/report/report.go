// Package report writes one plain-text frequency report per input file.
package report

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/dtnitsch/wordfreq/models"
	"github.com/dtnitsch/wordfreq/pkg/storage"
)

// Writer persists the sorted word list of one file and returns where it went.
type Writer interface {
	Write(filename string, words []models.WordCount) (string, error)
}

// FileWriter writes <OutputDir>/<filename><Suffix>. An empty OutputDir
// resolves relative to the working directory.
type FileWriter struct {
	OutputDir string
	Suffix    string
	Storage   *storage.Storage
}

func NewFileWriter(outputDir, suffix string) *FileWriter {
	if suffix == "" {
		suffix = models.DefaultReportSuffix
	}
	return &FileWriter{
		OutputDir: outputDir,
		Suffix:    suffix,
		Storage:   &storage.Storage{},
	}
}

// Path returns the report location for filename.
func (w *FileWriter) Path(filename string) string {
	return filepath.Join(w.OutputDir, filename+w.Suffix)
}

func (w *FileWriter) Write(filename string, words []models.WordCount) (string, error) {
	path := w.Path(filename)
	if err := w.Storage.SaveFile(path, Format(filename, words)); err != nil {
		return "", fmt.Errorf("failed to write report for %s: %w", filename, err)
	}
	return path, nil
}

// Format renders a report: the filename on the first line, then one
// "word count " line per entry in the given order.
func Format(filename string, words []models.WordCount) []byte {
	var buf bytes.Buffer
	buf.Grow(len(filename) + 1 + len(words)*12)
	buf.WriteString(filename)
	buf.WriteByte('\n')
	for _, wc := range words {
		fmt.Fprintf(&buf, "%s %d \n", wc.Word, wc.Count)
	}
	return buf.Bytes()
}
