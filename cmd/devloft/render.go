package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	devloft "github.com/alnah/go-devloft"
	"github.com/alnah/go-devloft/internal/config"
	"github.com/alnah/go-devloft/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage           = errors.New("invalid usage")
	ErrNoInput         = errors.New("no input specified")
	ErrReadInput       = errors.New("failed to read input")
	ErrWriteOutput     = errors.New("failed to write output")
	ErrCreateOutputDir = errors.New("failed to create output directory")
	ErrBatchFailed     = errors.New("some files failed to render")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// runRenderCmd parses render flags and runs the command until done or
// interrupted.
func runRenderCmd(args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return runRender(ctx, positional, flags, env)
}

// runRender orchestrates the rendering process.
func runRender(ctx context.Context, positionalArgs []string, flags *renderFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeRenderFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	params := &renderParams{
		stdout:       env.Stdout,
		frontMatter:  cfg.Markdown.FrontMatter,
		rewriteLinks: cfg.Output.RewriteLinks,
		now:          env.Now(),
	}
	if cfg.Page.Standalone {
		loader, err := devloft.NewAssetLoader(cfg.Assets.BasePath)
		if err != nil {
			return err
		}
		params.page = &devloft.Page{
			Title:  cfg.Page.Title,
			Style:  cfg.Page.Style,
			Date:   cfg.Page.Date,
			Assets: loader,
		}
	}

	workers := resolveWorkers(flags.workers, envCfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Engine: %s, workers: %d, files: %d\n", renderer.Engine(), min(workers, len(files)), len(files))
	}

	start := env.Now()
	results := renderBatch(ctx, renderer, files, params, workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Rendered in %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}

	// A single file reports its own error so the exit code reflects the cause.
	if len(results) == 1 && results[0].Err != nil {
		return results[0].Err
	}

	if failed := printResults(results, flags.common.quiet, flags.common.verbose, env); failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrBatchFailed, failed, len(results))
	}
	return nil
}

// mergeRenderFlags applies explicitly set flags over config values.
func mergeRenderFlags(flags *renderFlags, cfg *config.Config) {
	if flags.engine != "" {
		cfg.Markdown.Engine = flags.engine
	}
	if flags.wrapOrderedLists {
		cfg.Markdown.WrapOrderedLists = true
	}
	if flags.frontMatter {
		cfg.Markdown.FrontMatter = true
	}
	if flags.rewriteLinks {
		cfg.Output.RewriteLinks = true
	}
	if flags.page.standalone {
		cfg.Page.Standalone = true
	}
	if flags.page.style != "" {
		cfg.Page.Style = flags.page.style
	}
	if flags.page.title != "" {
		cfg.Page.Title = flags.page.title
	}
	if flags.page.date != "" {
		cfg.Page.Date = flags.page.date
	}
	if flags.page.assetPath != "" {
		cfg.Assets.BasePath = flags.page.assetPath
	}
}

// newRenderer builds the library renderer from the merged config.
func newRenderer(cfg *config.Config) (*devloft.Renderer, error) {
	engine, err := devloft.ParseEngine(cfg.Markdown.Engine)
	if err != nil {
		return nil, err
	}
	return devloft.NewRenderer(
		devloft.WithEngine(engine),
		devloft.WithOrderedListWrap(cfg.Markdown.WrapOrderedLists),
		devloft.WithMaxBytes(cfg.Markdown.MaxBytes),
		devloft.WithHighlightStyle(cfg.Markdown.HighlightStyle),
	)
}

// resolveInputPath returns the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// sizeLimitHint explains how to lift the document size cap.
func sizeLimitHint(err error) string {
	if errors.Is(err, devloft.ErrInputTooLarge) {
		return hints.ForInputTooLarge("markdown.maxBytes")
	}
	return ""
}
