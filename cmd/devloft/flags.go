package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds standalone page flags.
type pageFlags struct {
	standalone bool
	style      string
	title      string
	date       string
	assetPath  string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common           commonFlags
	output           string
	workers          int
	engine           string
	wrapOrderedLists bool
	frontMatter      bool
	rewriteLinks     bool
	page             pageFlags
}

// queryFlags holds all flags for the query command.
type queryFlags struct {
	common  commonFlags
	output  string
	filter  string
	sortKey string
	order   string
	format  string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addPageFlags adds standalone page flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.BoolVar(&f.standalone, "standalone", false, "wrap output in a full HTML page")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path (with --standalone)")
	fs.StringVar(&f.title, "title", "", "page title (\"\" = auto from H1)")
	fs.StringVar(&f.date, "date", "", "footer date: text, today or today:FORMAT")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// newRenderFlagSet registers render flags into f.
func newRenderFlagSet(f *renderFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(cmdRender, flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.engine, "engine", "e", "", "markdown engine: rules, commonmark")
	fs.BoolVar(&f.wrapOrderedLists, "ol", false, "wrap ordered list items in <ol>")
	fs.BoolVar(&f.frontMatter, "front-matter", false, "read and strip a leading metadata block")
	fs.BoolVar(&f.rewriteLinks, "rewrite-links", false, "rebase relative links to the output location")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)

	return fs
}

// newQueryFlagSet registers query flags into f.
func newQueryFlagSet(f *queryFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(cmdQuery, flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVarP(&f.filter, "filter", "f", "", "filter expression, e.g. score>=80")
	fs.StringVarP(&f.sortKey, "sort", "s", "", "field to sort by")
	fs.StringVar(&f.order, "order", "", "sort order: asc, desc")
	fs.StringVar(&f.format, "format", "", "input format: json, yaml (default: detect)")

	addCommonFlags(fs, &f.common)

	return fs
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, usage io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newRenderFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printRenderUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseQueryFlags parses query command flags and returns positional args.
func parseQueryFlags(args []string, usage io.Writer) (*queryFlags, []string, error) {
	f := &queryFlags{}
	fs := newQueryFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printQueryUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
