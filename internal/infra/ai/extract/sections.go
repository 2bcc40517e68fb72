package extract

import (
	"regexp"
	"strings"
)

// Helpers shared by the per-field extraction chains. Everything here is
// best-effort pattern matching over Markdown that may or may not follow the
// structure the prompt asked for.

var (
	nextHeadingRe = regexp.MustCompile(`(?m)^#{1,3}\s`)
	bulletRe      = regexp.MustCompile(`(?m)^\s*(?:\d+\.|[-*•])\s+(.+)$`)
	sentenceRe    = regexp.MustCompile(`[^.!?\n]+[.!?]`)
	linkRe        = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^)\s]+)\)`)
)

type mdLink struct {
	text string
	url  string
}

// section locates a `#`/`##`/`###` heading matching namesPattern and returns
// the heading line plus the body up to the next heading.
func section(content, namesPattern string) (heading, body string, ok bool) {
	re := regexp.MustCompile(`(?mi)^#{1,3}\s*(?:` + namesPattern + `)\b[^\n]*$`)
	loc := re.FindStringIndex(content)
	if loc == nil {
		return "", "", false
	}
	heading = content[loc[0]:loc[1]]
	rest := content[loc[1]:]
	if next := nextHeadingRe.FindStringIndex(rest); next != nil {
		rest = rest[:next[0]]
	}
	return heading, strings.TrimSpace(rest), true
}

// bullets returns the text of every bulleted or numbered item in s.
func bullets(s string) []string {
	var items []string
	for _, m := range bulletRe.FindAllStringSubmatch(s, -1) {
		if item := strings.TrimSpace(m[1]); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// sentences splits s into sentence-like fragments.
func sentences(s string) []string {
	var out []string
	for _, m := range sentenceRe.FindAllString(s, -1) {
		if t := strings.TrimSpace(m); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// links returns every inline Markdown link in s, in order.
func links(s string) []mdLink {
	var out []mdLink
	for _, m := range linkRe.FindAllStringSubmatch(s, -1) {
		out = append(out, mdLink{text: m[1], url: m[2]})
	}
	return out
}

// plainText strips inline link markup and bold markers, keeping link text.
func plainText(s string) string {
	s = linkRe.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, "**", "")
	return strings.TrimSpace(s)
}

// truncate shortens s to at most n runes, appending an ellipsis when cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
