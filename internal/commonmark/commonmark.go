// Package commonmark renders GitHub Flavored Markdown with goldmark.
//
// It is the alternative to the rule pipeline in mdrender: a real block and
// inline parser, footnotes, heading IDs and chroma syntax highlighting with
// CSS classes. Output is an HTML fragment; raw HTML in the source is
// omitted.
package commonmark

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrConversion indicates goldmark failed to render a document.
var ErrConversion = errors.New("markdown conversion failed")

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// Converter renders Markdown to an HTML fragment.
// It is safe for concurrent use.
type Converter struct {
	md goldmark.Markdown
}

// Option configures a Converter.
type Option func(*settings)

type settings struct {
	hardWraps bool
	style     string
}

// WithHardWraps renders single newlines inside paragraphs as <br />.
func WithHardWraps(enabled bool) Option {
	return func(s *settings) { s.hardWraps = enabled }
}

// WithHighlightStyle selects the chroma style for code blocks.
func WithHighlightStyle(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.style = name
		}
	}
}

// New creates a Converter with GFM, footnotes and syntax highlighting.
func New(opts ...Option) *Converter {
	s := settings{style: DefaultHighlightStyle}
	for _, opt := range opts {
		opt(&s)
	}

	rendererOpts := []goldmark.Option{
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithStyle(s.style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	}
	htmlOpts := []renderer.Option{html.WithXHTML()}
	if s.hardWraps {
		htmlOpts = append(htmlOpts, html.WithHardWraps())
	}
	rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(htmlOpts...))

	return &Converter{md: goldmark.New(rendererOpts...)}
}

// Render converts Markdown to an HTML fragment.
// Goldmark has no context support, so conversion runs in a goroutine and
// Render returns early when ctx is done.
func (c *Converter) Render(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
