package opentdb

import (
	"html"
	"regexp"
	"strings"
)

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</\s*(script|style)\s*>`)
	tagRe         = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// Sanitize normalizes a text field from the trivia source: HTML entities are
// decoded, script and style blocks are removed with their content, remaining
// markup tags are stripped, and runs of whitespace collapse to single spaces.
// Sanitizing already-clean text returns it unchanged.
func Sanitize(text string) string {
	out := html.UnescapeString(text)
	out = scriptBlockRe.ReplaceAllString(out, "")
	out = tagRe.ReplaceAllString(out, "")
	out = whitespaceRe.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}
