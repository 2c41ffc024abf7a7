package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kerem-kaynak/textstats/pkg/textstats"
)

// ErrInvalidConfig is returned when a configuration value cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultInput is the input file read when none is configured.
const DefaultInput = "paragraphtest.txt"

// Config is the YAML configuration of a textstats run.
type Config struct {
	Input     string   `yaml:"input"`
	Limit     int      `yaml:"limit"`
	Stoplist  string   `yaml:"stoplist"`
	Stem      string   `yaml:"stem"`
	NFC       bool     `yaml:"nfc"`
	CacheSize *int     `yaml:"cache_size"`
	Patterns  Patterns `yaml:"patterns"`
}

// Patterns overrides the delimiter expressions. Empty fields keep the
// defaults.
type Patterns struct {
	Words      string `yaml:"words"`
	Whitespace string `yaml:"whitespace"`
	Paragraphs string `yaml:"paragraphs"`
	Lines      string `yaml:"lines"`
}

// Default returns the configuration that reproduces the fixed battery.
func Default() *Config {
	return &Config{
		Input: DefaultInput,
		Limit: textstats.DefaultLimit,
		Patterns: Patterns{
			Words:      textstats.WordsExpr,
			Whitespace: textstats.WhitespaceExpr,
			Paragraphs: textstats.ParagraphsExpr,
			Lines:      textstats.LinesExpr,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.Input == "" {
		c.Input = d.Input
	}
	if c.Patterns.Words == "" {
		c.Patterns.Words = d.Patterns.Words
	}
	if c.Patterns.Whitespace == "" {
		c.Patterns.Whitespace = d.Patterns.Whitespace
	}
	if c.Patterns.Paragraphs == "" {
		c.Patterns.Paragraphs = d.Patterns.Paragraphs
	}
	if c.Patterns.Lines == "" {
		c.Patterns.Lines = d.Patterns.Lines
	}
}

// Validate checks limits, stemmer language and every pattern.
func (c *Config) Validate() error {
	if c.Limit < 1 {
		return fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidConfig, c.Limit)
	}
	if c.CacheSize != nil && *c.CacheSize < 0 {
		return fmt.Errorf("%w: cache_size must not be negative", ErrInvalidConfig)
	}
	if c.Stem != "" && !textstats.StemLanguageSupported(c.Stem) {
		return fmt.Errorf("%w: unsupported stem language %q", ErrInvalidConfig, c.Stem)
	}
	if _, err := c.patterns(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

type compiled struct {
	words, whitespace, paragraphs, lines textstats.Pattern
}

func (c *Config) patterns() (compiled, error) {
	var p compiled
	var err error
	if p.words, err = textstats.NewPattern("words", c.Patterns.Words); err != nil {
		return p, err
	}
	if p.whitespace, err = textstats.NewPattern("whitespace", c.Patterns.Whitespace); err != nil {
		return p, err
	}
	if p.paragraphs, err = textstats.NewPattern("paragraphs", c.Patterns.Paragraphs); err != nil {
		return p, err
	}
	if p.lines, err = textstats.NewPattern("lines", c.Patterns.Lines); err != nil {
		return p, err
	}
	return p, nil
}

// Normalizer builds the normalizer pipeline the configuration describes.
func (c *Config) Normalizer() *textstats.Normalizer {
	var steps []textstats.NormalizerFunc
	if c.NFC {
		steps = append(steps, textstats.NFC)
	}
	steps = append(steps, textstats.Lowercase)
	if c.Stem != "" {
		steps = append(steps, textstats.Stemmer(c.Stem))
	}
	size := textstats.DefaultCacheSize
	if c.CacheSize != nil {
		size = *c.CacheSize
	}
	return textstats.NewNormalizerWithSteps(size, steps...)
}

// Options builds the analysis options. When a stoplist is configured the
// returned dictionary must be closed by the caller.
func (c *Config) Options() (textstats.Options, error) {
	p, err := c.patterns()
	if err != nil {
		return textstats.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	opts := textstats.Options{
		Words:      p.words,
		Whitespace: p.whitespace,
		Paragraphs: p.paragraphs,
		Lines:      p.lines,
		Normalizer: c.Normalizer(),
		Limit:      c.Limit,
	}
	if c.Stoplist != "" {
		dict, err := textstats.NewDictionary(c.Stoplist)
		if err != nil {
			return textstats.Options{}, fmt.Errorf("load stoplist: %w", err)
		}
		opts.Stoplist = dict
	}
	return opts, nil
}
