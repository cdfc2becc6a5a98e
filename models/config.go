// Package models defines data structures for configuration and results.
package models

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dtnitsch/lexicorpus/pkg/stopwords"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "lexicorpus.yaml"

// DefaultURLs are the business-performance articles the corpus command
// builds when no URLs are configured.
var DefaultURLs = []string{
	"https://en.wikipedia.org/wiki/Revenue",
	"https://en.wikipedia.org/wiki/Profit_margin",
	"https://en.wikipedia.org/wiki/Gross_margin",
	"https://en.wikipedia.org/wiki/Customer_acquisition_cost",
	"https://en.wikipedia.org/wiki/Customer_retention",
	"https://en.wikipedia.org/wiki/Loyalty_marketing",
	"https://en.wikipedia.org/wiki/Net_Promoter",
	"https://en.wikipedia.org/wiki/Lead_generation",
	"https://en.wikipedia.org/wiki/Conversion_rate_optimization",
	"https://en.wikipedia.org/wiki/Web_analytics",
	"https://en.wikipedia.org/wiki/Benchmarking",
	"https://en.wikipedia.org/wiki/Employee_engagement",
}

// Config is the runtime configuration. Values come from the YAML file and
// are then overridden by CLI flags.
type Config struct {
	URLs      []string      `yaml:"urls"`
	Workers   int           `yaml:"workers"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
	// Extract is "paragraphs" or "readability".
	Extract string `yaml:"extract"`

	// SegmentFilter is a regular expression; matching lines are blanked
	// before tokenization. "script" selects the play-script filter.
	SegmentFilter string           `yaml:"segment_filter"`
	AlphaOnly     bool             `yaml:"alpha_only"`
	Stopwords     stopwords.Config `yaml:"stopwords"`
	// Reducer is "wordnet", "snowball" or "none".
	Reducer     string   `yaml:"reducer"`
	LemmaPOS    string   `yaml:"lemma_pos"`
	LexiconPath string   `yaml:"lexicon_path"`
	Languages   []string `yaml:"languages"`

	Top int `yaml:"top"`

	// DB enables the fetch log and page cache when set.
	DB          string        `yaml:"db"`
	MaxAge      time.Duration `yaml:"max_age"`
	MetricsFile string        `yaml:"metrics_file"`
}

// DefaultConfig reproduces the cleaning used for the business corpus:
// English stop words, alphabetic tokens, WordNet noun lemmas.
func DefaultConfig() *Config {
	return &Config{
		URLs:      append([]string(nil), DefaultURLs...),
		Workers:   4,
		Timeout:   15 * time.Second,
		Extract:   "paragraphs",
		AlphaOnly: true,
		Stopwords: stopwords.Config{English: true},
		Reducer:   "wordnet",
		LemmaPOS:  "n",
		Top:       10,
		MaxAge:    24 * time.Hour,
	}
}

// LoadConfig reads the YAML file at path over the defaults. A missing file
// yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Extract == "" {
		cfg.Extract = "paragraphs"
	}
	if cfg.Reducer == "" {
		cfg.Reducer = "wordnet"
	}
	if cfg.LemmaPOS == "" {
		cfg.LemmaPOS = "n"
	}
	if cfg.Top <= 0 {
		cfg.Top = 10
	}
}
