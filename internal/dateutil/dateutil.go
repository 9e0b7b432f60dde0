// Package dateutil resolves page date settings into display strings.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength limits format string length.
const MaxFormatLength = 50

// DefaultFormat is used by a bare "today".
const DefaultFormat = "YYYY-MM-DD"

// todayKeyword selects the current date.
const todayKeyword = "today"

// Presets are named shortcuts for common formats.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// tokens are tried longest first at each position.
var tokens = []struct {
	name   string
	render func(time.Time) string
}{
	{"YYYY", func(t time.Time) string { return fmt.Sprintf("%04d", t.Year()) }},
	{"MMMM", func(t time.Time) string { return t.Month().String() }},
	{"MMM", func(t time.Time) string { return t.Month().String()[:3] }},
	{"YY", func(t time.Time) string { return fmt.Sprintf("%02d", t.Year()%100) }},
	{"MM", func(t time.Time) string { return fmt.Sprintf("%02d", int(t.Month())) }},
	{"DD", func(t time.Time) string { return fmt.Sprintf("%02d", t.Day()) }},
	{"M", func(t time.Time) string { return strconv.Itoa(int(t.Month())) }},
	{"D", func(t time.Time) string { return strconv.Itoa(t.Day()) }},
}

// Format renders t with a token format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D. Text in [brackets] is copied
// literally; any other character is kept as-is.
func Format(t time.Time, format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var b strings.Builder
	rest := format
	for rest != "" {
		if rest[0] == '[' {
			literal, after, ok := strings.Cut(rest[1:], "]")
			if !ok {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(literal)
			rest = after
			continue
		}

		n := writeToken(&b, t, rest)
		if n == 0 {
			b.WriteByte(rest[0])
			n = 1
		}
		rest = rest[n:]
	}

	return b.String(), nil
}

// writeToken writes the token at the start of s and returns its length,
// or 0 when s does not start with a token.
func writeToken(b *strings.Builder, t time.Time, s string) int {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok.name) {
			b.WriteString(tok.render(t))
			return len(tok.name)
		}
	}
	return 0
}

// Resolve turns a page date setting into display text:
//   - "" stays empty
//   - "today" gives now in DefaultFormat
//   - "today:FORMAT" gives now in FORMAT or a named preset
//   - anything else is returned unchanged
func Resolve(value string, now time.Time) (string, error) {
	keyword, format, hasFormat := strings.Cut(value, ":")
	if !strings.EqualFold(keyword, todayKeyword) {
		return value, nil
	}

	if !hasFormat {
		return Format(now, DefaultFormat)
	}
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}
	return Format(now, format)
}
