// Package config loads settings for the richtext command from a YAML file,
// a .env file and RICHTEXT_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/richtext/builder"
	"github.com/tsawler/richtext/htmldoc"
	"github.com/tsawler/richtext/layout"
	"github.com/tsawler/richtext/mddoc"
	"github.com/tsawler/richtext/summary"
	"github.com/tsawler/richtext/termdoc"
)

// DefaultPath is the config file looked up when none is given
const DefaultPath = "richtext.yaml"

// DefaultEnvFile is the dotenv file read when present
const DefaultEnvFile = ".env"

// EnvPrefix prefixes every environment override
const EnvPrefix = "RICHTEXT_"

// Output formats accepted by Render.Format
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatTerminal = "terminal"
	FormatText     = "text"
	FormatPortable = "portabletext"
)

// Config is the CLI configuration as read from richtext.yaml. Load layers
// .env and RICHTEXT_* environment values on top; the yaml tags name the file
// keys.
type Config struct {
	Summary struct {
		Words    int    `yaml:"words"`
		Ellipsis string `yaml:"ellipsis"`
	} `yaml:"summary"`
	Headings struct {
		Level             int     `yaml:"level"`
		MaxAllCapsLength  int     `yaml:"max_all_caps_length"`
		MaxColonLength    int     `yaml:"max_colon_length"`
		MaxTitleCaseWords int     `yaml:"max_title_case_words"`
		MinTitleCaseRatio float64 `yaml:"min_title_case_ratio"`
	} `yaml:"headings"`
	Render struct {
		Format              string            `yaml:"format"`
		Sanitize            bool              `yaml:"sanitize"`
		ExternalLinksNewTab bool              `yaml:"external_links_new_tab"`
		Classes             map[string]string `yaml:"classes"`
		Width               int               `yaml:"width"`
	} `yaml:"render"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	var cfg Config
	headings := layout.DefaultHeadingConfig()

	cfg.Summary.Words = summary.DefaultWordCount
	cfg.Summary.Ellipsis = summary.DefaultEllipsis
	cfg.Headings.Level = headings.Level
	cfg.Headings.MaxAllCapsLength = headings.MaxAllCapsLength
	cfg.Headings.MaxColonLength = headings.MaxColonLength
	cfg.Headings.MaxTitleCaseWords = headings.MaxTitleCaseWords
	cfg.Headings.MinTitleCaseRatio = headings.MinTitleCaseRatio
	cfg.Render.Format = FormatHTML
	cfg.Render.ExternalLinksNewTab = true
	cfg.Log.Level = "info"
	return &cfg
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), the given dotenv files (DefaultEnvFile when none, ignored
// if missing) and the process environment.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	dotenv, err := readEnvFiles(envFiles)
	if err != nil {
		return nil, err
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readEnvFiles(files []string) (map[string]string, error) {
	if len(files) == 0 {
		env, err := godotenv.Read(DefaultEnvFile)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", DefaultEnvFile, err)
		}
		return env, nil
	}

	env, err := godotenv.Read(files...)
	if err != nil {
		return nil, fmt.Errorf("reading env files: %w", err)
	}
	return env, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	num := func(name string, dst *int) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*dst = n
		return nil
	}
	flag := func(name string, dst *bool) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*dst = b
		return nil
	}

	str("ELLIPSIS", &c.Summary.Ellipsis)
	str("FORMAT", &c.Render.Format)
	str("LOG_LEVEL", &c.Log.Level)

	return errors.Join(
		num("SUMMARY_WORDS", &c.Summary.Words),
		num("HEADING_LEVEL", &c.Headings.Level),
		num("WIDTH", &c.Render.Width),
		flag("SANITIZE", &c.Render.Sanitize),
		flag("EXTERNAL_LINKS_NEW_TAB", &c.Render.ExternalLinksNewTab),
	)
}

// Validate reports every invalid setting
func (c *Config) Validate() error {
	var errs []error
	if c.Summary.Words < 0 {
		errs = append(errs, fmt.Errorf("summary.words must not be negative, got %d", c.Summary.Words))
	}
	if c.Headings.Level < 1 || c.Headings.Level > 6 {
		errs = append(errs, fmt.Errorf("headings.level must be between 1 and 6, got %d", c.Headings.Level))
	}
	switch c.Render.Format {
	case FormatHTML, FormatMarkdown, FormatTerminal, FormatText, FormatPortable:
	default:
		errs = append(errs, fmt.Errorf("render.format %q is not one of html, markdown, terminal, text, portabletext", c.Render.Format))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// SlogLevel parses Log.Level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// HeadingConfig returns the heading heuristics. Zero values keep defaults.
func (c *Config) HeadingConfig() layout.HeadingConfig {
	h := layout.DefaultHeadingConfig()
	if c.Headings.Level != 0 {
		h.Level = c.Headings.Level
	}
	if c.Headings.MaxAllCapsLength != 0 {
		h.MaxAllCapsLength = c.Headings.MaxAllCapsLength
	}
	if c.Headings.MaxColonLength != 0 {
		h.MaxColonLength = c.Headings.MaxColonLength
	}
	if c.Headings.MaxTitleCaseWords != 0 {
		h.MaxTitleCaseWords = c.Headings.MaxTitleCaseWords
	}
	if c.Headings.MinTitleCaseRatio != 0 {
		h.MinTitleCaseRatio = c.Headings.MinTitleCaseRatio
	}
	return h
}

// Builder returns a document builder using the configured heuristics
func (c *Config) Builder() *builder.Builder {
	bc := builder.DefaultConfig()
	bc.Classifier.Heading = c.HeadingConfig()
	return builder.NewWithConfig(bc)
}

// Summarizer returns a summarizer sharing b
func (c *Config) Summarizer(b *builder.Builder) *summary.Summarizer {
	return summary.NewWithConfig(summary.Config{Ellipsis: c.Summary.Ellipsis, Builder: b})
}

// HTMLOptions returns the HTML rendering options
func (c *Config) HTMLOptions() htmldoc.Options {
	opts := htmldoc.DefaultOptions()
	opts.Sanitize = c.Render.Sanitize
	opts.ExternalLinksNewTab = c.Render.ExternalLinksNewTab
	opts.Classes = c.Render.Classes
	return opts
}

// MarkdownOptions returns the Markdown rendering options
func (c *Config) MarkdownOptions() mddoc.Options {
	return mddoc.DefaultOptions()
}

// TerminalStyles returns the terminal styles, plain ones when plain is set
func (c *Config) TerminalStyles(plain bool) termdoc.Styles {
	styles := termdoc.DefaultStyles()
	if plain {
		styles = termdoc.PlainStyles()
	}
	styles.Width = c.Render.Width
	return styles
}
