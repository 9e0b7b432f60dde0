package commonmark

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is one entry of a document outline.
type Heading struct {
	Level int
	Text  string
	ID    string
}

// Outline returns the document's headings in order, with the IDs Render
// assigns to them.
func (c *Converter) Outline(content string) []Heading {
	source := []byte(content)
	doc := c.md.Parser().Parse(text.NewReader(source))

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		var id string
		if v, ok := h.AttributeString("id"); ok {
			if b, ok := v.([]byte); ok {
				id = string(b)
			}
		}
		headings = append(headings, Heading{
			Level: h.Level,
			Text:  inlineText(h, source),
			ID:    id,
		})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// Title returns the text of the first level-1 heading, or "".
func (c *Converter) Title(content string) string {
	for _, h := range c.Outline(content) {
		if h.Level == 1 {
			return h.Text
		}
	}
	return ""
}

func inlineText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch t := child.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		case *ast.CodeSpan:
			for c := t.FirstChild(); c != nil; c = c.NextSibling() {
				if seg, ok := c.(*ast.Text); ok {
					buf.Write(seg.Segment.Value(source))
				}
			}
		default:
			buf.WriteString(inlineText(child, source))
		}
	}
	return buf.String()
}
