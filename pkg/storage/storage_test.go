package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	list := writeFile(t, dir, "filenames.txt", "a.txt\r\nb.txt\n\n   \nsub dir/c.txt\n")

	s := &Storage{}
	got, err := s.ReadLines(list)
	if err != nil {
		t.Fatalf("ReadLines() failed: %v", err)
	}

	want := []string{"a.txt", "b.txt", "sub dir/c.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadLines() = %q, want %q", got, want)
	}
}

func TestReadLines_Missing(t *testing.T) {
	s := &Storage{}
	_, err := s.ReadLines(filepath.Join(t.TempDir(), "filenames.txt"))
	if !errors.Is(err, ErrListUnreadable) {
		t.Errorf("ReadLines() error = %v, want ErrListUnreadable", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadLines() error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestFilterExisting(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "alpha")
	b := writeFile(t, dir, "b.txt", "beta")
	missing := filepath.Join(dir, "missing.txt")

	s := &Storage{}
	kept, dropped := s.FilterExisting([]string{a, missing, b})

	if !reflect.DeepEqual(kept, []string{a, b}) {
		t.Errorf("FilterExisting() kept = %q, want %q", kept, []string{a, b})
	}
	if !reflect.DeepEqual(dropped, []string{missing}) {
		t.Errorf("FilterExisting() dropped = %q, want %q", dropped, []string{missing})
	}
}

func TestSaveFile_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "out.txt")

	s := &Storage{}
	if err := s.SaveFile(path, []byte("hello")); err != nil {
		t.Fatalf("SaveFile() failed: %v", err)
	}

	got, err := s.ReadText(path)
	if err != nil {
		t.Fatalf("ReadText() failed: %v", err)
	}
	if got != "hello" {
		t.Errorf("ReadText() = %q, want %q", got, "hello")
	}

	stats, err := s.GetFileStats(path)
	if err != nil {
		t.Fatalf("GetFileStats() failed: %v", err)
	}
	if stats.SizeBytes != 5 {
		t.Errorf("SizeBytes = %d, want 5", stats.SizeBytes)
	}
}

func TestReadText_InvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	s := &Storage{}

	good := writeFile(t, dir, "good.txt", "café au lait")
	text, err := s.ReadText(good)
	if err != nil {
		t.Fatalf("ReadText() failed: %v", err)
	}
	if text != "café au lait" {
		t.Errorf("ReadText() = %q", text)
	}

	bad := writeFile(t, dir, "bad.txt", "caf\xff\xfe word \xc3")
	if _, err := s.ReadText(bad); !errors.Is(err, ErrNotText) {
		t.Errorf("ReadText() error = %v, want ErrNotText", err)
	}
}
