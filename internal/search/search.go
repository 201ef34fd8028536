package search

import (
	"strings"
	"unicode/utf8"

	"clubnotes/internal/notes"
)

// MinQueryLength is the shortest query Search will scan for.
const MinQueryLength = 2

// Fields a query can match in.
const (
	MatchedInTitle      = "title"
	MatchedInDefinition = "definition"
	MatchedInExample    = "example"
)

// Result is a single match location inside a note.
type Result struct {
	SessionID   string `json:"session_id"`
	SessionDate string `json:"session_date"`
	NoteTitle   string `json:"note_title"`
	MatchedIn   string `json:"matched_in"`
	MatchedText string `json:"matched_text"`
	Query       string `json:"query"`
}

// Search scans every note of every session for case-insensitive substring
// matches of query in the title, the definition and each example.
//
// Every matching field yields its own Result, so one note can appear several
// times. Results follow session, note and field order; nothing is ranked.
// Queries shorter than MinQueryLength return no results.
func Search(sessions []notes.Session, query string) []Result {
	results := []Result{}
	if utf8.RuneCountInString(query) < MinQueryLength {
		return results
	}

	lowerQuery := strings.ToLower(query)
	for _, session := range sessions {
		for _, note := range session.Notes {
			add := func(matchedIn, text string) {
				if text == "" || !strings.Contains(strings.ToLower(text), lowerQuery) {
					return
				}
				results = append(results, Result{
					SessionID:   session.ID,
					SessionDate: session.Date,
					NoteTitle:   note.Title,
					MatchedIn:   matchedIn,
					MatchedText: text,
					Query:       query,
				})
			}

			add(MatchedInTitle, note.Title)
			add(MatchedInDefinition, note.Definition)
			for _, example := range note.Examples {
				add(MatchedInExample, example)
			}
		}
	}

	return results
}
