package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	devloft "github.com/alnah/go-devloft"
	"github.com/alnah/go-devloft/internal/dateutil"
	"github.com/alnah/go-devloft/internal/fileutil"
	"github.com/alnah/go-devloft/internal/relink"
)

// renderParams groups parameters shared across the batch.
type renderParams struct {
	page         *devloft.Page // nil: write fragments; Date holds the raw setting
	stdout       io.Writer     // target for files without an output path
	frontMatter  bool          // strip and read leading metadata blocks
	rewriteLinks bool          // rebase relative links for written files
	now          time.Time     // reference time for "today" dates
}

// RenderResult holds the outcome of a single render.
type RenderResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// renderBatch processes files concurrently with at most workers goroutines.
// Results are returned in input order.
func renderBatch(ctx context.Context, renderer *devloft.Renderer, files []FileToRender, params *renderParams, workers int) []RenderResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := max(1, min(workers, len(files)))

	results := make([]RenderResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = RenderResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = renderFile(ctx, renderer, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// renderFile processes a single file and returns the result.
func renderFile(ctx context.Context, renderer *devloft.Renderer, f FileToRender, params *renderParams) RenderResult {
	start := time.Now()
	result := RenderResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) RenderResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrReadInput, err))
	}
	source := string(content)

	var meta devloft.FrontMatter
	if params.frontMatter {
		if meta, source, err = devloft.SplitFrontMatter(source); err != nil {
			return fail(fmt.Errorf("%s: %w", f.InputPath, err))
		}
	}

	html, err := renderDocument(ctx, renderer, source, meta, f.InputPath, params)
	if err != nil {
		return fail(fmt.Errorf("%s: %w%s", f.InputPath, err, sizeLimitHint(err)))
	}

	if params.rewriteLinks && f.OutputPath != "" {
		html, err = relink.Rewrite(html, relink.Options{
			SourceDir: filepath.Dir(f.InputPath),
			OutputDir: filepath.Dir(f.OutputPath),
			PageLinks: true,
		})
		if err != nil {
			return fail(fmt.Errorf("%s: rewriting links: %w", f.InputPath, err))
		}
	}

	if f.OutputPath == "" {
		if _, err := io.WriteString(params.stdout, ensureTrailingNewline(html)); err != nil {
			return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
		}
		result.Duration = time.Since(start)
		return result
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrCreateOutputDir, err))
	}
	// #nosec G306 -- HTML files are meant to be readable
	if err := fileutil.WriteFileAtomic(f.OutputPath, []byte(ensureTrailingNewline(html)), filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}

	result.Duration = time.Since(start)
	return result
}

// renderDocument renders a fragment, or a standalone page when params.page
// is set.
func renderDocument(ctx context.Context, renderer *devloft.Renderer, source string, meta devloft.FrontMatter, path string, params *renderParams) (string, error) {
	if params.page == nil {
		return renderer.Render(ctx, source)
	}
	page, err := documentPage(*params.page, meta, renderer, source, path, params.now)
	if err != nil {
		return "", err
	}
	return renderer.RenderPage(ctx, source, page)
}

// documentPage fills in per-document page settings.
// Title: configured, then front matter, then first level-1 heading, then
// file name. Date: front matter, then configured, resolved against now.
func documentPage(base devloft.Page, meta devloft.FrontMatter, renderer *devloft.Renderer, source, path string, now time.Time) (devloft.Page, error) {
	page := base
	if page.Title == "" {
		page.Title = meta.Title
	}
	if page.Title == "" {
		page.Title = documentTitle(renderer, source, path)
	}

	date := page.Date
	if meta.Date != "" {
		date = meta.Date
	}
	resolved, err := dateutil.Resolve(date, now)
	if err != nil {
		return page, fmt.Errorf("%w: date: %v", devloft.ErrFrontMatter, err)
	}
	page.Date = resolved
	return page, nil
}

// documentTitle picks a page title: first level-1 heading, then file name.
func documentTitle(renderer *devloft.Renderer, source, path string) string {
	if title := renderer.Title(source); title != "" {
		return title
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// ResultSummary holds the count of succeeded and failed renders.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed renders.
func countResults(results []RenderResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs render results and returns the number of failures.
// Files written to stdout produce no status line.
func printResults(results []RenderResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s\n", describeError(r.Err))
			continue
		}

		if quiet || r.OutputPath == "" {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
