package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-devloft/internal/config"
	"github.com/alnah/go-devloft/internal/hints"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // DEVLOFT_CONFIG: config file name or path
	Engine     string // DEVLOFT_ENGINE: rules or commonmark
	Style      string // DEVLOFT_STYLE: CSS style name or path
	OutputDir  string // DEVLOFT_OUTPUT_DIR: default output directory
	Workers    int    // DEVLOFT_WORKERS: parallel render workers
}

// envPrefix is shared by every recognized variable.
const envPrefix = "DEVLOFT_"

// knownEnvVars lists valid DEVLOFT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"DEVLOFT_CONFIG":     true,
	"DEVLOFT_ENGINE":     true,
	"DEVLOFT_STYLE":      true,
	"DEVLOFT_OUTPUT_DIR": true,
	"DEVLOFT_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable or non-positive DEVLOFT_WORKERS is ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("DEVLOFT_CONFIG"),
		Engine:     os.Getenv("DEVLOFT_ENGINE"),
		Style:      os.Getenv("DEVLOFT_STYLE"),
		OutputDir:  os.Getenv("DEVLOFT_OUTPUT_DIR"),
	}

	if workers := os.Getenv("DEVLOFT_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars prints a warning for each unrecognized DEVLOFT_* variable.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config values with set environment variables.
// CLI flags are applied afterwards, giving: flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Engine != "" {
		cfg.Markdown.Engine = env.Engine
	}
	if env.Style != "" {
		cfg.Page.Style = env.Style
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
}

// loadConfig resolves the config file from the flag, then DEVLOFT_CONFIG,
// then applies environment overrides. Without either, defaults are used.
func loadConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(env, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
