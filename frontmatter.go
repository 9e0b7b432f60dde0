package devloft

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the document metadata read from a leading metadata block.
type FrontMatter struct {
	Title string `yaml:"title" toml:"title" json:"title"`
	Date  string `yaml:"date" toml:"date" json:"date"`
}

// SplitFrontMatter separates a leading metadata block from the Markdown body.
// YAML ("---"), TOML ("+++") and JSON blocks are recognized. Without a
// block it returns a zero FrontMatter and source unchanged; a malformed
// block returns ErrFrontMatter.
func SplitFrontMatter(source string) (FrontMatter, string, error) {
	var fm FrontMatter
	body, err := frontmatter.Parse(strings.NewReader(source), &fm)
	if err != nil {
		return FrontMatter{}, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	fm.Title = strings.TrimSpace(fm.Title)
	fm.Date = strings.TrimSpace(fm.Date)
	return fm, string(body), nil
}
