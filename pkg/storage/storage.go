package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrListUnreadable is returned when the filename list itself cannot be read.
var ErrListUnreadable = errors.New("filename list unreadable")

// ErrNotText is returned by ReadText for files that are not valid UTF-8.
var ErrNotText = errors.New("file is not valid UTF-8 text")

type Storage struct{}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

// SaveFile writes content to filePath, creating parent directories as needed.
func (s *Storage) SaveFile(filePath string, content []byte) error {
	if dir := filepath.Dir(filePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

// ReadText reads a whole file as a string. The content must be valid UTF-8.
func (s *Storage) ReadText(filePath string) (string, error) {
	data, err := s.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("error decoding %s: %w", filePath, ErrNotText)
	}
	return string(data), nil
}

// ReadLines loads the filename list: one entry per line, trailing "\r"
// stripped and blank lines skipped. Order is preserved.
func (s *Storage) ReadLines(filePath string) ([]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrListUnreadable, filePath, err)
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrListUnreadable, filePath, err)
	}
	return lines, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

func (s *Storage) HasFile(fn string) bool {
	return fileExists(fn)
}

// FilterExisting keeps the filenames that exist, preserving order.
// The second return value holds the entries that were dropped.
func (s *Storage) FilterExisting(filenames []string) ([]string, []string) {
	kept := make([]string, 0, len(filenames))
	var missing []string
	for _, fn := range filenames {
		if s.HasFile(fn) {
			kept = append(kept, fn)
		} else {
			missing = append(missing, fn)
		}
	}
	return kept, missing
}

// GetFileStats returns metadata about a file using os.Stat (no I/O overhead).
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}

	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}
