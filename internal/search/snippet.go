package search

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

const (
	// DefaultSnippetLength is the snippet size used by the search results view.
	DefaultSnippetLength = 150

	ellipsis = "..."
)

// TextSnippet returns at most maxLength characters of text, centred on the
// first case-insensitive occurrence of query. An ellipsis marks each side
// where the window stops short of the text boundary.
func TextSnippet(text, query string, maxLength int) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	if maxLength < 0 {
		maxLength = 0
	}

	matchIndex := indexFold(runes, []rune(query))
	if matchIndex == -1 {
		return string(runes[:maxLength]) + ellipsis
	}

	start := max(0, matchIndex-maxLength/2)
	end := min(len(runes), start+maxLength)
	if end-start < maxLength {
		start = max(0, end-maxLength)
	}

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = ellipsis + snippet
	}
	if end < len(runes) {
		snippet += ellipsis
	}
	return snippet
}

// indexFold returns the rune index of the first case-insensitive occurrence of
// needle in haystack, or -1.
func indexFold(haystack, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		matched := true
		for j, r := range needle {
			if unicode.ToLower(haystack[i+j]) != unicode.ToLower(r) {
				matched = false
				break
			}
		}
		if matched {
			return i
		}
	}
	return -1
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeHTML escapes the characters that would open markup or an entity.
// Quotes are left alone; the result is for element content, not attributes.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// HighlightSearchTerm wraps every case-insensitive occurrence of query in
// text with <mark> tags and escapes the rest for HTML. Matches are found in
// the raw text, so a query never lands inside an entity.
// The query is matched literally, never as a pattern.
func HighlightSearchTerm(text, query string) string {
	if text == "" || query == "" {
		return EscapeHTML(text)
	}

	pattern := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))

	var b strings.Builder
	last := 0
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		b.WriteString(EscapeHTML(text[last:loc[0]]))
		b.WriteString("<mark>")
		b.WriteString(EscapeHTML(text[loc[0]:loc[1]]))
		b.WriteString("</mark>")
		last = loc[1]
	}
	b.WriteString(EscapeHTML(text[last:]))
	return b.String()
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// FormatDate renders an ISO date as "January 2, 2006".
// Input that does not parse is returned as is.
func FormatDate(iso string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return iso
}
