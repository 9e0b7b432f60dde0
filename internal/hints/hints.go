// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

const operatorChars = "=!<>"

// ForFilterSyntax returns hints for a filter expression that failed to parse.
func ForFilterSyntax(expr string) string {
	hints := []string{"use field=value, field!=value, field>value, field<value, field>=value or field<=value"}

	trimmed := strings.TrimSpace(expr)
	field, hasOp := trimmed, false
	if i := strings.IndexAny(trimmed, operatorChars); i >= 0 {
		field, hasOp = trimmed[:i], true
	}
	switch {
	case trimmed == "":
		hints = []string{"pass an expression such as --filter 'age>=18'"}
	case !hasOp:
		hints = append(hints, "no comparison operator found")
	case strings.TrimSpace(field) == "":
		hints = append(hints, "the field name comes before the operator")
	case strings.ContainsAny(field, ".[]"):
		hints = append(hints, "field names are letters, digits and underscores; nested fields are not supported")
	}
	return formatHints(hints)
}

// ForSortDirection returns a hint for an unknown sort direction.
func ForSortDirection() string {
	return format("use --order asc or --order desc")
}

// ForRecordShape returns a hint for payloads that are not arrays of objects.
func ForRecordShape() string {
	return format(`input must be an array of objects, e.g. [{"name": "Ada", "age": 36}]`)
}

// ForUnknownEngine returns a hint listing the Markdown engines.
func ForUnknownEngine(engines []string) string {
	if len(engines) == 0 {
		return ""
	}
	return format("use --engine " + strings.Join(engines, " or --engine "))
}

// ForInputTooLarge returns a hint naming the config key that sets a size cap.
func ForInputTooLarge(configKey string) string {
	return format("raise " + configKey + " in the config file (0 disables the limit)")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-devloft/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains go-devloft) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-devloft") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return formatHints([]string{
		"available: " + strings.Join(available, ", "),
		"or pass a path such as ./custom.css",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
