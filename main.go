package main

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/dtnitsch/lexicorpus/internal/analyze"
	"github.com/dtnitsch/lexicorpus/internal/corpus"
	"github.com/dtnitsch/lexicorpus/internal/db"
	"github.com/dtnitsch/lexicorpus/models"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Failed to load .env: %v", err)
	}

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: text, yaml or json",
		EnvVars: []string{"LEXICORPUS_FORMAT"},
	}
}

func fileFlag(usage string) cli.Flag {
	return &cli.StringFlag{Name: "file", Usage: usage}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "lexicorpus",
		Usage: "Tokenize, clean and count text, and build bag-of-words corpora from web pages",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   models.DefaultConfigPath,
				Usage:   "YAML config file (missing file means defaults)",
				EnvVars: []string{"LEXICORPUS_CONFIG"},
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only log errors",
				EnvVars: []string{"LEXICORPUS_QUIET"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "corpus",
				Usage:  "Fetch URLs and build a bag-of-words corpus",
				Action: corpus.CorpusAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "urls", Usage: "Comma-separated URLs (overrides config)", EnvVars: []string{"LEXICORPUS_URLS"}},
					&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "Concurrent fetch workers"},
					&cli.DurationFlag{Name: "timeout", Value: 15 * time.Second, Usage: "Per-request timeout"},
					&cli.StringFlag{Name: "extract", Usage: "Text extraction: paragraphs or readability"},
					&cli.StringFlag{Name: "reducer", Usage: "Base-form reducer: wordnet, snowball or none"},
					&cli.StringFlag{Name: "languages", Usage: "Comma-separated ISO 639-1 codes to keep (empty keeps all)"},
					&cli.IntFlag{Name: "top", Usage: "Number of corpus-wide top words"},
					&cli.StringFlag{Name: "db", Usage: "SQLite file for the fetch log and page cache", EnvVars: []string{"LEXICORPUS_DB"}},
					&cli.DurationFlag{Name: "max-age", Usage: "Serve cached pages younger than this"},
					&cli.BoolFlag{Name: "force-fetch", Usage: "Ignore the page cache"},
					&cli.StringFlag{Name: "metrics-file", Usage: "Write Prometheus metrics to this textfile", EnvVars: []string{"LEXICORPUS_METRICS_FILE"}},
					&cli.StringFlag{Name: "lookup", Value: "cost", Usage: "Token whose id is reported"},
					&cli.IntFlag{Name: "doc", Value: 2, Usage: "Corpus document to describe"},
					formatFlag(),
				},
			},
			{
				Name:   "regex",
				Usage:  "Split sentences and find words and numbers with regular expressions",
				Action: analyze.RegexAction,
				Flags: []cli.Flag{
					fileFlag("Text file to analyze (default: a sample abstract, - for stdin)"),
					&cli.StringFlag{Name: "followed-by", Value: " qubits", Usage: "Report numbers immediately followed by this text"},
					&cli.StringFlag{Name: "find", Usage: "Pattern to locate"},
					formatFlag(),
				},
			},
			{
				Name:   "tokenize",
				Usage:  "Split a text into sentences and words",
				Action: analyze.TokenizeAction,
				Flags: []cli.Flag{
					fileFlag("Text file to tokenize (- for stdin)"),
					&cli.IntFlag{Name: "sentence", Usage: "Index of the sentence to split into words"},
					&cli.StringFlag{Name: "find", Usage: "Pattern to locate"},
					&cli.StringFlag{Name: "pattern", Usage: "Regex tokenizer: capitalized, capital-latin, digits, words, emoji or a raw expression"},
					formatFlag(),
				},
			},
			{
				Name:   "lines",
				Usage:  "Chart the number of words per line",
				Action: analyze.LinesAction,
				Flags: []cli.Flag{
					fileFlag("Text file to chart (- for stdin)"),
					&cli.StringFlag{Name: "segment-filter", Value: "script", Usage: "Blank lines matching this (\"script\" for play prompts, empty for none)"},
					formatFlag(),
				},
			},
			{
				Name:   "topics",
				Usage:  "Rank the words of a text before and after cleaning",
				Action: analyze.TopicsAction,
				Flags: []cli.Flag{
					fileFlag("Text file to rank (- for stdin)"),
					&cli.StringFlag{Name: "segment-filter", Value: "script", Usage: "Blank lines matching this before tokenizing"},
					&cli.BoolFlag{Name: "early-modern", Value: true, Usage: "Also drop early modern English stop words"},
					&cli.StringFlag{Name: "reducer", Usage: "Base-form reducer: wordnet, snowball or none"},
					&cli.IntFlag{Name: "top", Value: 20, Usage: "Number of words per ranking"},
					formatFlag(),
				},
			},
			{
				Name:  "db",
				Usage: "Inspect the fetch log and page cache",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "SQLite file (default: config db, then lexicorpus.db)", EnvVars: []string{"LEXICORPUS_DB"}},
				},
				Subcommands: []*cli.Command{
					{
						Name:   "history",
						Usage:  "Fetch attempts per URL",
						Action: db.HistoryAction,
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "Maximum URLs to list"},
						},
					},
					{
						Name:      "show",
						Usage:     "Last fetch and cached copy of a URL",
						ArgsUsage: "<url_id_or_url>",
						Action:    db.ShowAction,
					},
					{
						Name:      "raw",
						Usage:     "Print the cached HTML of a URL",
						ArgsUsage: "<url_id_or_url>",
						Action:    db.RawAction,
					},
					{
						Name:      "find",
						Usage:     "Print the url_id of a URL",
						ArgsUsage: "<url>",
						Action:    db.FindURLAction,
					},
				},
			},
		},
	}
}
