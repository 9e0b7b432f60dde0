package devloft

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/alnah/go-devloft/internal/commonmark"
	"github.com/alnah/go-devloft/internal/fileutil"
)

// DefaultPageTitle is used when a page has no title and no level-1 heading.
const DefaultPageTitle = "Untitled"

// Page configures a standalone HTML document.
type Page struct {
	Title  string      // empty: first level-1 heading, then DefaultPageTitle
	Style  string      // built-in style name or path to a .css file; empty: DefaultStyle
	Date   string      // footer date text; empty: no footer
	Assets AssetLoader // nil: embedded assets only
}

// pageData is the template input for the page template.
type pageData struct {
	Title string
	Date  string
	Style template.CSS
	Body  template.HTML
}

// RenderPage renders source and wraps the fragment in an HTML5 document.
// Returns ErrStyleNotFound when the style cannot be loaded and
// ErrPageRender when the page template fails.
func (r *Renderer) RenderPage(ctx context.Context, source string, page Page) (string, error) {
	body, err := r.Render(ctx, source)
	if err != nil {
		return "", err
	}

	title := page.Title
	if title == "" {
		title = r.Title(source)
	}
	if title == "" {
		title = DefaultPageTitle
	}

	loader := page.Assets
	if loader == nil {
		loader, err = NewAssetLoader("")
		if err != nil {
			return "", err
		}
	}

	css, err := resolveStyle(page.Style, loader)
	if err != nil {
		return "", err
	}
	if r.engine == EngineCommonMark {
		highlight, err := commonmark.HighlightCSS(r.highlightStyle)
		if err != nil {
			return "", wrapError(ErrConversion, err)
		}
		css += "\n" + highlight
	}

	return wrapPage(pageData{
		Title: title,
		Date:  page.Date,
		Style: template.CSS(css),   // #nosec G203 -- style sheets come from trusted assets
		Body:  template.HTML(body), // #nosec G203 -- body is the renderer's output
	}, loader)
}

// WrapPage places an HTML fragment into the page template with the given
// title and style sheet. The fragment is inserted verbatim.
func WrapPage(fragment, title, css string, loader AssetLoader) (string, error) {
	return wrapPage(pageData{
		Title: title,
		Style: template.CSS(css),        // #nosec G203 -- style sheets come from trusted assets
		Body:  template.HTML(fragment), // #nosec G203 -- fragment is inserted verbatim by contract
	}, loader)
}

func wrapPage(data pageData, loader AssetLoader) (string, error) {
	if loader == nil {
		var err error
		if loader, err = NewAssetLoader(""); err != nil {
			return "", err
		}
	}

	source, err := loader.LoadTemplate(PageTemplate)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(PageTemplate).Parse(source)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

// resolveStyle loads a style by name through loader, or reads it from disk
// when style looks like a file path.
func resolveStyle(style string, loader AssetLoader) (string, error) {
	if style == "" {
		style = DefaultStyle
	}
	if fileutil.IsFilePath(style) || strings.HasSuffix(style, ".css") {
		content, err := os.ReadFile(style) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrStyleNotFound, err)
		}
		return string(content), nil
	}
	return loader.LoadStyle(style)
}
