package wordfreq

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dtnitsch/wordfreq/models"
	"github.com/dtnitsch/wordfreq/pkg/dispatcher"
	"github.com/dtnitsch/wordfreq/pkg/manifest"
	"github.com/dtnitsch/wordfreq/pkg/parser"
	"github.com/dtnitsch/wordfreq/pkg/storage"
	"github.com/dtnitsch/wordfreq/pkg/tokenizer"
	"github.com/urfave/cli/v2"
)

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))
}

// loadRunConfig reads --config if given and applies flag overrides on top.
func loadRunConfig(c *cli.Context) (*models.RunConfig, error) {
	cfg := models.DefaultRunConfig()
	if c.IsSet("config") {
		var err error
		cfg, err = models.LoadConfig(c.String("config"))
		if err != nil {
			return nil, err
		}
	}

	if c.IsSet("list") {
		cfg.FilenamesFile = c.String("list")
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("top") {
		cfg.TopKeywords = c.Int("top")
	}
	if c.IsSet("html") {
		cfg.ExtractHTML = c.Bool("html")
	}
	if c.IsSet("uniform-brackets") {
		cfg.UniformBrackets = c.Bool("uniform-brackets")
	}
	if c.IsSet("detect-language") {
		cfg.DetectLanguage = c.Bool("detect-language")
	}
	if c.IsSet("languages") {
		cfg.Languages = c.StringSlice("languages")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RunAction builds every report listed in the filename list and prints the
// run summary. Exit code 1 means some files failed, 2 means the run could
// not proceed or every file failed.
func RunAction(c *cli.Context) error {
	logger := newLogger(c)

	cfg, err := loadRunConfig(c)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
	}

	summary, err := run(logger, cfg, dispatcher.DefaultWorkerCount)
	if err != nil {
		logger.Error("run failed", "error", err)
		if errors.Is(err, storage.ErrListUnreadable) {
			return cli.Exit(fmt.Sprintf("Error: cannot read filename list %s: %v", cfg.FilenamesFile, err), 2)
		}
		return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
	}

	out, err := manifest.Render(*summary, cfg.Format)
	if err != nil {
		logger.Error("failed to render summary", "error", err)
		return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
	}
	fmt.Fprint(c.App.Writer, string(out))

	switch summary.Status {
	case "failed":
		return cli.Exit("", 2)
	case "partial_failure":
		return cli.Exit("", 1)
	}
	return nil
}

// TokensAction prints the tokens of a single file, one per line.
func TokensAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("Usage: wordfreq tokens <file>", 1)
	}
	filename := c.Args().First()

	load := newLoader(c.Bool("html"), &storage.Storage{}, &parser.Parser{})
	text, err := load(filename)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
	}

	tokenize := tokenizer.Tokenize
	if c.Bool("uniform-brackets") {
		tokenize = tokenizer.TokenizeUniform
	}
	for _, tok := range tokenize(text) {
		fmt.Fprintln(c.App.Writer, tok)
	}
	return nil
}
