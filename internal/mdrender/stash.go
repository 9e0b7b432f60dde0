package mdrender

import (
	"regexp"
	"strconv"
	"strings"
)

// Code placeholders use Unicode Private Use Area characters. No rule pattern
// matches them, so stashed HTML passes through every rule unchanged.
const (
	blockOpen   = '\uE000' // fenced code block start
	blockClose  = '\uE001'
	inlineOpen  = '\uE002' // inline code span start
	inlineClose = '\uE003'
)

var placeholderPattern = regexp.MustCompile("\uE000([0-9]+)\uE001|\uE002([0-9]+)\uE003")

// stash holds rendered code fragments for the duration of one render.
type stash struct {
	fragments []string
}

// block stores a rendered fenced code block and returns its placeholder.
func (s *stash) block(html string) string {
	return s.put(blockOpen, blockClose, html)
}

// inline stores a rendered code span and returns its placeholder.
func (s *stash) inline(html string) string {
	return s.put(inlineOpen, inlineClose, html)
}

func (s *stash) put(start, end rune, html string) string {
	id := len(s.fragments)
	s.fragments = append(s.fragments, html)

	var b strings.Builder
	b.WriteRune(start)
	b.WriteString(strconv.Itoa(id))
	b.WriteRune(end)
	return b.String()
}

// restore replaces every placeholder issued by this stash with its fragment.
// Source text never holds placeholder runes when this runs; see escapeSentinels.
func (s *stash) restore(text string) string {
	if len(s.fragments) == 0 {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		sub := placeholderPattern.FindStringSubmatch(token)
		id, err := strconv.Atoi(sub[1] + sub[2])
		if err != nil || id >= len(s.fragments) {
			return token
		}
		return s.fragments[id]
	})
}

// startsWithPlaceholder reports whether line begins with a code placeholder.
func startsWithPlaceholder(line string) bool {
	for _, r := range line {
		return r == blockOpen || r == inlineOpen
	}
	return false
}

// Source runes that collide with placeholder delimiters are rewritten to a
// blockClose followed by a letter before any rule runs. The pair can never
// form a placeholder, and unescapeSentinels turns it back after restore.
var (
	sentinelEscaper = strings.NewReplacer(
		string(blockOpen), string(blockClose)+"a",
		string(blockClose), string(blockClose)+"b",
		string(inlineOpen), string(blockClose)+"c",
		string(inlineClose), string(blockClose)+"d",
	)
	sentinelUnescaper = strings.NewReplacer(
		string(blockClose)+"a", string(blockOpen),
		string(blockClose)+"b", string(blockClose),
		string(blockClose)+"c", string(inlineOpen),
		string(blockClose)+"d", string(inlineClose),
	)
)

// hasSentinels reports whether text contains any placeholder delimiter rune.
func hasSentinels(text string) bool {
	return strings.ContainsFunc(text, func(r rune) bool {
		return r >= blockOpen && r <= inlineClose
	})
}

func escapeSentinels(text string) string {
	return sentinelEscaper.Replace(text)
}

func unescapeSentinels(text string) string {
	return sentinelUnescaper.Replace(text)
}
