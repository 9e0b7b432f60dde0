package devloft

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-devloft/internal/commonmark"
	"github.com/alnah/go-devloft/internal/mdrender"
)

// Engine selects the Markdown implementation.
type Engine string

// Engine constants.
const (
	EngineRules      Engine = "rules"
	EngineCommonMark Engine = "commonmark"
)

// Engines lists the supported engines.
func Engines() []string {
	return []string{string(EngineRules), string(EngineCommonMark)}
}

// ParseEngine accepts an engine name case-insensitively.
// An empty name selects EngineRules.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(name))) {
	case "", EngineRules:
		return EngineRules, nil
	case EngineCommonMark:
		return EngineCommonMark, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

// Renderer converts Markdown documents to HTML fragments.
// It is safe for concurrent use.
type Renderer struct {
	engine         Engine
	wrapOL         bool
	maxBytes       int
	highlightStyle string

	pipeline  *mdrender.Pipeline
	converter *commonmark.Converter
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithEngine selects the Markdown engine. Default: EngineRules.
func WithEngine(e Engine) Option {
	return func(r *Renderer) {
		r.engine = e
	}
}

// WithOrderedListWrap wraps consecutive ordered items in <ol> when enabled.
// Only the rules engine emits bare ordered items.
func WithOrderedListWrap(enabled bool) Option {
	return func(r *Renderer) {
		r.wrapOL = enabled
	}
}

// WithMaxBytes rejects documents longer than n bytes. Zero means no limit.
func WithMaxBytes(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.maxBytes = n
		}
	}
}

// WithHighlightStyle selects the chroma style used by the commonmark engine.
func WithHighlightStyle(name string) Option {
	return func(r *Renderer) {
		r.highlightStyle = name
	}
}

// NewRenderer creates a Renderer with the given options.
// Returns ErrUnknownEngine for an unsupported engine.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{engine: EngineRules}
	for _, opt := range opts {
		opt(r)
	}

	engine, err := ParseEngine(string(r.engine))
	if err != nil {
		return nil, err
	}
	r.engine = engine

	r.pipeline = mdrender.New(mdrender.Options{WrapOrderedLists: r.wrapOL})
	r.converter = commonmark.New(commonmark.WithHighlightStyle(r.highlightStyle))
	return r, nil
}

// Engine returns the selected engine.
func (r *Renderer) Engine() Engine {
	return r.engine
}

// Render converts source to an HTML fragment.
// Empty input gives empty output. Returns ErrInputTooLarge above the
// configured size and the context error when ctx is done.
func (r *Renderer) Render(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.maxBytes > 0 && len(source) > r.maxBytes {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(source), r.maxBytes)
	}

	if r.engine == EngineCommonMark {
		html, err := r.converter.Render(ctx, source)
		if errors.Is(err, commonmark.ErrConversion) {
			return "", wrapError(ErrConversion, err)
		}
		return html, err
	}
	return r.pipeline.Render(source), nil
}

// Rules returns the rewrite rule names in application order.
// The commonmark engine has no rule list and returns nil.
func (r *Renderer) Rules() []string {
	if r.engine != EngineRules {
		return nil
	}
	return r.pipeline.Names()
}

// Title returns the text of the first level-1 heading in source, or "".
func (r *Renderer) Title(source string) string {
	return r.converter.Title(source)
}

// RenderMarkdown converts source with the rule pipeline and default options.
// It never fails: every input produces a fragment.
func RenderMarkdown(source string) string {
	return mdrender.Render(source)
}
