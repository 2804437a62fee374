package wordfreq

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dtnitsch/wordfreq/models"
	"github.com/dtnitsch/wordfreq/pkg/detector"
	"github.com/dtnitsch/wordfreq/pkg/dispatcher"
	"github.com/dtnitsch/wordfreq/pkg/manifest"
	"github.com/dtnitsch/wordfreq/pkg/mapreduce"
	"github.com/dtnitsch/wordfreq/pkg/parser"
	"github.com/dtnitsch/wordfreq/pkg/report"
	"github.com/dtnitsch/wordfreq/pkg/storage"
	"github.com/dtnitsch/wordfreq/pkg/tokenizer"
)

// ErrorTypeWrite marks a file whose report could not be written.
const ErrorTypeWrite = "write_error"

// run loads the filename list, tokenizes every existing file on the worker
// pool, and writes one report per successfully read file in list order.
// The returned error is fatal; per-file read failures live in the summary.
func run(logger *slog.Logger, cfg *models.RunConfig, workers int) (*manifest.Summary, error) {
	startTime := time.Now()
	s := &storage.Storage{}

	listed, err := s.ReadLines(cfg.FilenamesFile)
	if err != nil {
		return nil, err
	}
	filenames, missing := s.FilterExisting(listed)
	for _, fn := range missing {
		logger.Debug("Skipping missing file", "file", fn)
	}
	logger.Info("Loaded filename list", "list", cfg.FilenamesFile, "listed", len(listed), "existing", len(filenames))

	opts, err := dispatchOptions(logger, cfg, s, workers)
	if err != nil {
		return nil, err
	}
	results := dispatcher.New(opts).Dispatch(filenames)
	if failed := dispatcher.Failed(results); failed > 0 {
		logger.Warn("Some files could not be read", "failed", failed, "total", len(results))
	}

	fileResults := aggregate(results)

	w := report.NewFileWriter(cfg.OutputDir, cfg.ReportSuffix)
	outcomes := make([]manifest.FileOutcome, len(results))
	intermediate := make([]map[string]int, 0, len(results))
	for i, r := range results {
		outcome := manifest.FileOutcome{
			Filename:  r.Filename,
			Language:  r.Language,
			Error:     r.Err,
			ErrorType: r.ErrorType,
		}
		if r.Err == nil {
			path, err := w.Write(r.Filename, fileResults[i].Words)
			if err != nil {
				logger.Error("Error writing report", "file", r.Filename, "error", err)
				return nil, fmt.Errorf("%s: %w", ErrorTypeWrite, err)
			}
			outcome.ReportPath = path
			outcome.Words = fileResults[i].Words
			if stats, err := s.GetFileStats(path); err == nil {
				outcome.ReportSizeBytes = stats.SizeBytes
			}
			intermediate = append(intermediate, mapreduce.Counts(fileResults[i].Words))
		}
		outcomes[i] = outcome
	}

	corpus := mapreduce.Reduce(intermediate)
	summary := manifest.Build(outcomes, corpus, len(missing), time.Since(startTime), cfg.TopKeywords)
	logger.Info("Run finished", "status", summary.Status, "successful", summary.Stats.Successful, "failed", summary.Stats.Failed, "skipped", summary.Stats.Skipped)
	return &summary, nil
}

// aggregate counts and sorts each successful slot. Failed slots keep an
// empty FileResult so indexes stay aligned with results.
func aggregate(results []dispatcher.Result) []models.FileResult {
	fileResults := make([]models.FileResult, len(results))
	for i, r := range results {
		fileResults[i].Filename = r.Filename
		if r.Err != nil {
			continue
		}
		words := mapreduce.Map(r.Tokens)
		mapreduce.SortAscending(words)
		fileResults[i].Words = words
	}
	return fileResults
}

func dispatchOptions(logger *slog.Logger, cfg *models.RunConfig, s *storage.Storage, workers int) (dispatcher.Options, error) {
	opts := dispatcher.Options{
		WorkerCount: workers,
		Load:        newLoader(cfg.ExtractHTML, s, &parser.Parser{}),
		Tokenize:    tokenizer.Tokenize,
		Logger:      logger,
	}
	if cfg.UniformBrackets {
		opts.Tokenize = tokenizer.TokenizeUniform
	}
	if cfg.DetectLanguage {
		langs, err := detector.ParseLanguages(cfg.Languages)
		if err != nil {
			return opts, err
		}
		opts.Detect = detector.New(langs...).Detect
	}
	return opts, nil
}

// newLoader reads a file's text, converting HTML documents to plain text
// when extractHTML is set.
func newLoader(extractHTML bool, s *storage.Storage, p *parser.Parser) dispatcher.LoadFunc {
	return func(filename string) (string, error) {
		if !extractHTML || !parser.IsHTML(filename) {
			return s.ReadText(filename)
		}
		data, err := s.ReadFile(filename)
		if err != nil {
			return "", err
		}
		return p.ExtractText(filename, data)
	}
}
