package mdrender

import (
	"fmt"
	"regexp"
	"strings"
)

// Precompiled regex patterns, one per rule.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// ```lang\n body ``` (language tag may be empty)
	fencedCodePattern = regexp.MustCompile("```(\\w*)\\n([\\s\\S]*?)```")

	blockquotePattern     = regexp.MustCompile(`(?m)^>\s*(.+)$`)
	horizontalRulePattern = regexp.MustCompile(`(?m)^---+$`)

	unorderedItemPattern = regexp.MustCompile(`(?m)^[\-\*]\s+(.+)$`)
	listItemRunPattern   = regexp.MustCompile(`((?:<li>.*</li>\n?)+)`)
	orderedItemPattern   = regexp.MustCompile(`(?m)^\d+\.\s+(.+)$`)
	orderedRunPattern    = regexp.MustCompile(`(?m)(?:^\d+\.\s+.+\n?)+`)

	checkedTaskPattern   = regexp.MustCompile(`(?i)<li>\[x\]\s*`)
	uncheckedTaskPattern = regexp.MustCompile(`(?i)<li>\[\s?\]\s*`)

	inlineCodePattern = regexp.MustCompile("`([^`]+)`")

	// Triple before double before single, so ***x*** is not read as **(*x*)**.
	boldItalicPattern    = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	boldPattern          = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern        = regexp.MustCompile(`\*(.+?)\*`)
	strikethroughPattern = regexp.MustCompile(`~~(.+?)~~`)

	// The optional "!" lets the link rule see, and skip, image syntax.
	linkPattern  = regexp.MustCompile(`!?\[([^\]]*)\]\(([^)]+)\)`)
	imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// headingPatterns is ordered from level 6 down to level 1.
var headingPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, 6)
	for level := 6; level >= 1; level-- {
		patterns = append(patterns, regexp.MustCompile(fmt.Sprintf(`(?m)^#{%d}\s+(.+)$`, level)))
	}
	return patterns
}()

// codeEscaper escapes fenced code bodies. Quotes are left alone.
var codeEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Task list glyphs prepended to list items.
const (
	checkedBox   = "☑ "
	uncheckedBox = "☐ "
)

// Rule is one named stage of the rewrite pipeline.
type Rule struct {
	Name  string
	apply func(text string, s *stash) string
}

// plain adapts a stash-free rewrite to a rule.
func plain(name string, fn func(string) string) Rule {
	return Rule{Name: name, apply: func(text string, _ *stash) string { return fn(text) }}
}

// rules returns the ordered pipeline for the given options.
func rules(opts Options) []Rule {
	ordered := plain("ordered-list", convertOrderedItems)
	if opts.WrapOrderedLists {
		ordered = plain("ordered-list", wrapOrderedLists)
	}

	return []Rule{
		plain("line-endings", normalizeLineEndings),
		{Name: "fenced-code", apply: convertFencedCode},
		plain("table", convertTables),
		plain("blockquote", convertBlockquotes),
		plain("heading", convertHeadings),
		plain("horizontal-rule", convertHorizontalRules),
		plain("unordered-list", convertUnorderedLists),
		ordered,
		plain("task-list", convertTaskMarkers),
		{Name: "inline-code", apply: convertInlineCode},
		plain("bold-italic", convertBoldItalic),
		plain("bold", convertBold),
		plain("italic", convertItalic),
		plain("strikethrough", convertStrikethrough),
		plain("link", convertLinks),
		plain("image", convertImages),
		plain("paragraph", wrapParagraphs),
		plain("collapse-blank-lines", compressBlankLines),
		{Name: "restore-code", apply: func(text string, s *stash) string { return s.restore(text) }},
		plain("trim", strings.TrimSpace),
	}
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(text string) string {
	return crlfOrCR.ReplaceAllString(text, "\n")
}

// convertFencedCode renders fenced blocks and stashes them.
// The body is trimmed, then escaped for &, < and >.
func convertFencedCode(text string, s *stash) string {
	return fencedCodePattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := fencedCodePattern.FindStringSubmatch(match)
		lang, body := sub[1], sub[2]
		html := `<pre><code class="language-` + lang + `">` +
			codeEscaper.Replace(strings.TrimSpace(body)) + `</code></pre>`
		return s.block(html)
	})
}

// convertBlockquotes wraps each ">" line on its own. Consecutive lines are
// not merged into one blockquote.
func convertBlockquotes(text string) string {
	return blockquotePattern.ReplaceAllString(text, "<blockquote><p>${1}</p></blockquote>")
}

// convertHeadings rewrites "#" through "######" lines, longest prefix first.
func convertHeadings(text string) string {
	for i, pattern := range headingPatterns {
		level := 6 - i
		text = pattern.ReplaceAllString(text, fmt.Sprintf("<h%d>${1}</h%d>", level, level))
	}
	return text
}

func convertHorizontalRules(text string) string {
	return horizontalRulePattern.ReplaceAllString(text, "<hr>")
}

// convertUnorderedLists turns "-" and "*" items into <li> lines, then wraps
// each run of <li> lines in a single <ul>.
func convertUnorderedLists(text string) string {
	text = unorderedItemPattern.ReplaceAllString(text, "<li>${1}</li>")
	return listItemRunPattern.ReplaceAllString(text, "<ul>${1}</ul>")
}

// convertOrderedItems turns "1." items into bare <li> lines. No <ol> is added.
func convertOrderedItems(text string) string {
	return orderedItemPattern.ReplaceAllString(text, "<li>${1}</li>")
}

// wrapOrderedLists is convertOrderedItems plus an <ol> around each run.
func wrapOrderedLists(text string) string {
	return orderedRunPattern.ReplaceAllStringFunc(text, func(run string) string {
		return "<ol>" + convertOrderedItems(run) + "</ol>"
	})
}

// convertTaskMarkers replaces [x] and [ ] at the start of list items.
func convertTaskMarkers(text string) string {
	text = checkedTaskPattern.ReplaceAllString(text, "<li>"+checkedBox)
	return uncheckedTaskPattern.ReplaceAllString(text, "<li>"+uncheckedBox)
}

// convertInlineCode renders code spans and stashes them so emphasis markers
// inside a span stay literal. The span body is not escaped.
func convertInlineCode(text string, s *stash) string {
	return inlineCodePattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := inlineCodePattern.FindStringSubmatch(match)
		return s.inline("<code>" + sub[1] + "</code>")
	})
}

func convertBoldItalic(text string) string {
	return boldItalicPattern.ReplaceAllString(text, "<strong><em>${1}</em></strong>")
}

func convertBold(text string) string {
	return boldPattern.ReplaceAllString(text, "<strong>${1}</strong>")
}

func convertItalic(text string) string {
	return italicPattern.ReplaceAllString(text, "<em>${1}</em>")
}

func convertStrikethrough(text string) string {
	return strikethroughPattern.ReplaceAllString(text, "<del>${1}</del>")
}

// convertLinks rewrites [text](url). Image syntax and links with empty text
// are left for later rules.
func convertLinks(text string) string {
	return linkPattern.ReplaceAllStringFunc(text, func(match string) string {
		if strings.HasPrefix(match, "!") {
			return match
		}
		sub := linkPattern.FindStringSubmatch(match)
		label, url := sub[1], sub[2]
		if label == "" {
			return match
		}
		return `<a href="` + url + `" target="_blank">` + label + `</a>`
	})
}

func convertImages(text string) string {
	return imagePattern.ReplaceAllString(text, `<img src="${2}" alt="${1}">`)
}

// wrapParagraphs wraps every line that is neither blank nor already led by
// a lowercase tag, a closing tag, or a code placeholder.
func wrapParagraphs(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if isBlankLine(line) || startsWithTag(line) {
			continue
		}
		lines[i] = "<p>" + line + "</p>"
	}
	return strings.Join(lines, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(text string) string {
	return multipleBlankLines.ReplaceAllString(text, "\n\n")
}

// isBlankLine returns true if the line is empty or contains only whitespace.
func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// startsWithTag reports whether line opens with "<a".."<z", "</", or a code
// placeholder.
func startsWithTag(line string) bool {
	if startsWithPlaceholder(line) {
		return true
	}
	if len(line) < 2 || line[0] != '<' {
		return false
	}
	c := line[1]
	return c == '/' || (c >= 'a' && c <= 'z')
}
