package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-devloft/internal/dateutil"
	"github.com/alnah/go-devloft/internal/fileutil"
	"github.com/alnah/go-devloft/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxTitleLength     = 200  // Page title
	MaxStyleNameLength = 64   // Chroma style name
)

// Markdown engine names.
const (
	EngineRules      = "rules"
	EngineCommonMark = "commonmark"
)

// Sort directions accepted by query.order.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Config holds all configuration for rendering and querying.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Query    QueryConfig    `yaml:"query"`
	Page     PageConfig     `yaml:"page"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir   string `yaml:"defaultDir"`   // Default output directory (empty = same as source)
	RewriteLinks bool   `yaml:"rewriteLinks"` // Rebase relative links to the output location
}

// MarkdownConfig defines Markdown rendering options.
type MarkdownConfig struct {
	Engine           string `yaml:"engine"`           // "rules" (default) or "commonmark"
	WrapOrderedLists bool   `yaml:"wrapOrderedLists"` // Wrap ordered items in <ol> (rules engine)
	MaxBytes         int    `yaml:"maxBytes"`         // Document size cap (0 = unlimited)
	HighlightStyle   string `yaml:"highlightStyle"`   // Chroma style (commonmark engine)
	FrontMatter      bool   `yaml:"frontMatter"`      // Strip and read a leading metadata block
}

// QueryConfig defines record query options.
type QueryConfig struct {
	Order      string `yaml:"order"`      // Default sort direction: "asc" or "desc"
	MaxRecords int    `yaml:"maxRecords"` // Record count cap (0 = unlimited)
}

// PageConfig defines standalone page options.
type PageConfig struct {
	Standalone bool   `yaml:"standalone"` // Wrap fragments in a full HTML document
	Style      string `yaml:"style"`      // Style name or path to a .css file
	Title      string `yaml:"title"`      // Optional - auto: front matter → H1 → filename
	Date       string `yaml:"date"`       // Footer date: literal, "today" or "today:FORMAT"
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks enumerations, ranges and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	// Validate markdown fields
	if c.Markdown.Engine != "" {
		switch strings.ToLower(c.Markdown.Engine) {
		case EngineRules, EngineCommonMark:
			// valid
		default:
			return fmt.Errorf("%w: markdown.engine %q (must be %s or %s)",
				ErrInvalidValue, c.Markdown.Engine, EngineRules, EngineCommonMark)
		}
	}
	if c.Markdown.MaxBytes < 0 {
		return fmt.Errorf("%w: markdown.maxBytes must be >= 0, got %d", ErrInvalidValue, c.Markdown.MaxBytes)
	}
	if err := validateFieldLength("markdown.highlightStyle", c.Markdown.HighlightStyle, MaxStyleNameLength); err != nil {
		return err
	}

	// Validate query fields
	if c.Query.Order != "" {
		switch strings.ToLower(c.Query.Order) {
		case OrderAsc, OrderDesc:
			// valid
		default:
			return fmt.Errorf("%w: query.order %q (must be %s or %s)", ErrInvalidValue, c.Query.Order, OrderAsc, OrderDesc)
		}
	}
	if c.Query.MaxRecords < 0 {
		return fmt.Errorf("%w: query.maxRecords must be >= 0, got %d", ErrInvalidValue, c.Query.MaxRecords)
	}

	// Validate page fields
	if err := validateFieldLength("page.style", c.Page.Style, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.title", c.Page.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.date", c.Page.Date, MaxTitleLength); err != nil {
		return err
	}
	if _, err := dateutil.Resolve(c.Page.Date, time.Time{}); err != nil {
		return fmt.Errorf("%w: page.date: %v", ErrInvalidValue, err)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// rules engine, ascending order, fragments only, no size caps.
func DefaultConfig() *Config {
	return &Config{
		Markdown: MarkdownConfig{Engine: EngineRules},
		Query:    QueryConfig{Order: OrderAsc},
		Page:     PageConfig{Standalone: false},
		Assets:   AssetsConfig{BasePath: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files LoadConfig tries for a config name, in order.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-devloft/
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-devloft", name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
