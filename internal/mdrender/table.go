package mdrender

import (
	"regexp"
	"strings"
)

// tablePattern needs three contiguous parts: a header row, a separator row of
// dashes, colons and pipes, and one or more body rows.
var tablePattern = regexp.MustCompile(`(?m)^(\|.+\|)\n(\|[-:\s|]+\|)\n((?:\|.+\|\n?)+)`)

// convertTables renders pipe tables. Alignment markers in the separator row
// are accepted but ignored. A lone pipe row is not a table.
func convertTables(text string) string {
	return tablePattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := tablePattern.FindStringSubmatch(match)
		header, body := sub[1], sub[3]

		var b strings.Builder
		b.WriteString("<table><thead><tr>")
		for _, cell := range splitCells(header) {
			b.WriteString("<th>" + cell + "</th>")
		}
		b.WriteString("</tr></thead><tbody>")
		for _, row := range strings.Split(strings.TrimSpace(body), "\n") {
			b.WriteString("<tr>")
			for _, cell := range splitCells(row) {
				b.WriteString("<td>" + cell + "</td>")
			}
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody></table>")
		return b.String()
	})
}

// splitCells splits a pipe row into trimmed cells. Blank cells are dropped,
// including the empty edges outside the leading and trailing pipes.
func splitCells(row string) []string {
	parts := strings.Split(row, "|")
	cells := make([]string, 0, len(parts))
	for _, part := range parts {
		if cell := strings.TrimSpace(part); cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}
