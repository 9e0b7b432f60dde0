// Package relink rebases relative links in rendered HTML so they resolve
// from the directory the HTML file is written to.
package relink

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Options describes where a document was read from and where it is written.
type Options struct {
	SourceDir string // directory holding the Markdown source
	OutputDir string // directory the HTML file is written to
	PageLinks bool   // point links to .md/.markdown files at their .html output
}

// Rewrite rebases img[src] and a[href] values that are relative paths.
//
// Left alone:
//   - URLs with a scheme or host (https:, mailto:, data:, //cdn)
//   - fragment-only anchors
//   - absolute paths
//
// Links to Markdown files keep their path and, with PageLinks, take the
// .html extension: rendered pages mirror the source layout.
// If nothing would change, content is returned as-is.
func Rewrite(content string, opts Options) (string, error) {
	src, err := filepath.Abs(opts.SourceDir)
	if err != nil {
		return "", err
	}
	out, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return "", err
	}
	if src == out && !opts.PageLinks {
		return content, nil
	}

	doc, isFragment, err := parseHTML(content)
	if err != nil {
		return "", err
	}

	r := rebaser{sourceDir: src, outputDir: out, pageLinks: opts.PageLinks}
	r.walk(doc)

	return renderHTML(doc, isFragment)
}

// parseHTML parses a full document or a body fragment.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))
	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML serializes doc. Fragments render their children only.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if !isFragment {
		if err := html.Render(&buf, doc); err != nil {
			return "", err
		}
		return buf.String(), nil
	}

	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

type rebaser struct {
	sourceDir string
	outputDir string
	pageLinks bool
}

func (r rebaser) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			r.rewriteAttr(n, "src", false)
		case atom.A:
			r.rewriteAttr(n, "href", true)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.walk(c)
	}
}

func (r rebaser) rewriteAttr(n *html.Node, key string, isLink bool) {
	for i, attr := range n.Attr {
		if attr.Key == key {
			n.Attr[i].Val = r.rebase(attr.Val, isLink)
		}
	}
}

// rebase returns the value for a link written from outputDir.
// A "?query" or "#fragment" suffix is carried over unchanged.
func (r rebaser) rebase(val string, isLink bool) string {
	if !isRelativePath(val) {
		return val
	}

	path, suffix := val, ""
	if i := strings.IndexAny(val, "?#"); i >= 0 {
		path, suffix = val[:i], val[i:]
	}
	if path == "" {
		return val
	}

	if isLink && r.pageLinks && isMarkdownPath(path) {
		return strings.TrimSuffix(path, filepath.Ext(path)) + ".html" + suffix
	}

	target := filepath.Join(r.sourceDir, filepath.FromSlash(path))
	rel, err := filepath.Rel(r.outputDir, target)
	if err != nil {
		return val
	}
	return filepath.ToSlash(rel) + suffix
}

// isRelativePath reports whether val is a path relative to the document.
func isRelativePath(val string) bool {
	if val == "" || strings.HasPrefix(val, "#") || strings.HasPrefix(val, "//") {
		return false
	}
	if strings.HasPrefix(val, "/") || filepath.IsAbs(val) {
		return false
	}

	u, err := url.Parse(val)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}

func isMarkdownPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}
