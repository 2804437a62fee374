// Package detector tags input text with its natural language.
package detector

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// DefaultLanguages keeps the model set small; loading every language is slow.
var DefaultLanguages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
}

// maxSample caps how much text is handed to the detector per file.
const maxSample = 4096

// Detector wraps a lingua detector built on first use.
// It is safe for concurrent use by dispatcher workers.
type Detector struct {
	languages []lingua.Language
	once      sync.Once
	detector  lingua.LanguageDetector
}

// New returns a Detector over the given languages, or DefaultLanguages when none are given.
// Use ParseLanguages to validate user input; lingua needs two or more languages.
func New(languages ...lingua.Language) *Detector {
	if len(languages) == 0 {
		languages = DefaultLanguages
	}
	return &Detector{languages: languages}
}

// ParseLanguages resolves names like "english" or "French" to lingua languages.
// An empty list selects DefaultLanguages; a single language is rejected since
// detection needs at least two candidates.
func ParseLanguages(names []string) ([]lingua.Language, error) {
	if len(names) == 0 {
		return DefaultLanguages, nil
	}
	if len(names) == 1 {
		return nil, fmt.Errorf("need at least two languages to detect between, got %q", names[0])
	}
	byName := make(map[string]lingua.Language)
	for _, lang := range lingua.AllLanguages() {
		byName[strings.ToLower(lang.String())] = lang
	}

	langs := make([]lingua.Language, 0, len(names))
	for _, name := range names {
		lang, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown language %q", name)
		}
		langs = append(langs, lang)
	}
	if len(uniqueLanguages(langs)) < 2 {
		return nil, fmt.Errorf("need at least two distinct languages, got %v", names)
	}
	return langs, nil
}

func uniqueLanguages(langs []lingua.Language) map[lingua.Language]struct{} {
	seen := make(map[lingua.Language]struct{}, len(langs))
	for _, lang := range langs {
		seen[lang] = struct{}{}
	}
	return seen
}

// Detect returns the language name of text, or "" when no language is reliable.
func (d *Detector) Detect(text string) string {
	d.once.Do(func() {
		d.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(d.languages...).
			Build()
	})

	if len(text) > maxSample {
		n := maxSample
		for n > 0 && !utf8.RuneStart(text[n]) {
			n--
		}
		text = text[:n]
	}
	if strings.TrimSpace(text) == "" {
		return ""
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return lang.String()
}
