package search

import "github.com/samber/lo"

var badges = map[string]string{
	MatchedInTitle:      "Word",
	MatchedInDefinition: "Definition",
	MatchedInExample:    "Example",
}

// RenderedResult is a Result prepared for display.
type RenderedResult struct {
	Result
	Badge       string `json:"badge"`
	Snippet     string `json:"snippet"` // escaped HTML with <mark> highlights
	DisplayDate string `json:"display_date"`
}

// Render builds display rows for results. Snippets are cut to maxLength
// characters before highlighting; a non-positive maxLength selects
// DefaultSnippetLength.
func Render(results []Result, maxLength int) []RenderedResult {
	if maxLength <= 0 {
		maxLength = DefaultSnippetLength
	}
	return lo.Map(results, func(r Result, _ int) RenderedResult {
		snippet := TextSnippet(r.MatchedText, r.Query, maxLength)
		return RenderedResult{
			Result:      r,
			Badge:       badges[r.MatchedIn],
			Snippet:     HighlightSearchTerm(snippet, r.Query),
			DisplayDate: FormatDate(r.SessionDate),
		}
	})
}
