// Package wordfreq wires the command line onto the report pipeline.
package wordfreq

import (
	"fmt"

	"github.com/dtnitsch/wordfreq/models"
	"github.com/dtnitsch/wordfreq/pkg/help"
	"github.com/urfave/cli/v2"
)

// NewApp returns the wordfreq command line application.
func NewApp() *cli.App {
	return &cli.App{
		Name:   "wordfreq",
		Usage:  "write per-file word frequency reports for the files in a list",
		Flags:  runFlags(),
		Action: RunAction,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "build reports (default)",
				Flags:  runFlags(),
				Action: RunAction,
			},
			{
				Name:  "quickstart",
				Usage: "print usage examples and a sample config",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return err
				},
			},
			{
				Name:      "tokens",
				Usage:     "print the tokens of one file",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "html", Usage: "extract readable text from HTML first"},
					&cli.BoolFlag{Name: "uniform-brackets", Usage: "treat ')' as a separator"},
				},
				Action: TokensAction,
			},
		},
	}
}

// runFlags returns the options shared by the default action and the run command.
func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML config file",
		},
		&cli.StringFlag{
			Name:    "list",
			Aliases: []string{"l"},
			Value:   models.DefaultFilenamesFile,
			Usage:   "file with one input filename per line",
		},
		&cli.StringFlag{
			Name:    "output-dir",
			Aliases: []string{"o"},
			Usage:   "directory reports are written under (default: working directory)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   models.DefaultFormat,
			Usage:   "summary output format: text, json or yaml",
		},
		&cli.IntFlag{
			Name:  "top",
			Value: models.DefaultTopKeywords,
			Usage: "number of corpus keywords in the json/yaml summary",
		},
		&cli.BoolFlag{
			Name:  "html",
			Usage: "extract readable text from .html/.htm inputs before counting",
		},
		&cli.BoolFlag{
			Name:  "uniform-brackets",
			Usage: "treat ')' as a separator like every other bracket",
		},
		&cli.BoolFlag{
			Name:  "detect-language",
			Usage: "tag each file with its detected language in the summary",
		},
		&cli.StringSliceFlag{
			Name:  "languages",
			Usage: "candidate languages for --detect-language (e.g. english,french)",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only log errors",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "log per-file worker activity",
		},
	}
}
