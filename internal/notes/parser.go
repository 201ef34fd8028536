package notes

import (
	"regexp"
	"strings"
)

const (
	// BlockSeparator separates notes in the bulk admin text.
	BlockSeparator = "===="

	pronunciationLabel = "pronunciation:"
)

// pronunciationGlyphs mark a line as carrying a pronunciation link.
var pronunciationGlyphs = []string{"🔊", "🗣", "🔤"}

// urlPattern stops at any Unicode space, including no-break spaces.
var urlPattern = regexp.MustCompile(`https?://[^\s\p{Z}\x{85}]+`)

// Parse converts bulk admin text into notes, one per ====-delimited block.
//
// The first non-empty line of a block is the title. A line carrying a
// pronunciation marker only contributes its first URL. The first other line is
// the definition and every remaining line is an example, in source order.
// Empty blocks and marker lines without a URL are skipped silently.
// Fields are returned unescaped.
func Parse(raw string) []Note {
	result := []Note{}
	if strings.TrimSpace(raw) == "" {
		return result
	}

	for _, block := range strings.Split(raw, BlockSeparator) {
		lines := blockLines(block)
		if len(lines) == 0 {
			continue
		}
		result = append(result, parseBlock(lines))
	}

	return result
}

// blockLines returns the trimmed, non-empty lines of a block.
func blockLines(block string) []string {
	block = strings.TrimSpace(block)
	if block == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func parseBlock(lines []string) Note {
	note := Note{
		Title:    lines[0],
		Examples: []string{},
	}

	definitionSet := false
	for _, line := range lines[1:] {
		if isPronunciationLine(line) {
			if url := urlPattern.FindString(line); url != "" {
				note.Pronunciation = url
			}
			continue
		}

		if !definitionSet {
			note.Definition = line
			definitionSet = true
			continue
		}
		note.Examples = append(note.Examples, line)
	}

	return note
}

func isPronunciationLine(line string) bool {
	for _, glyph := range pronunciationGlyphs {
		if strings.Contains(line, glyph) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(line), pronunciationLabel)
}

// Format renders notes back into the bulk text accepted by Parse.
// It is used to prefill the admin form when a session is edited.
func Format(notes []Note) string {
	blocks := make([]string, 0, len(notes))
	for _, note := range notes {
		var b strings.Builder
		b.WriteString(note.Title)
		if note.Pronunciation != "" {
			b.WriteString("\n🔊 Pronunciation: ")
			b.WriteString(note.Pronunciation)
		}
		if note.Definition != "" {
			b.WriteString("\n")
			b.WriteString(note.Definition)
		}
		if len(note.Examples) > 0 {
			b.WriteString("\n")
			b.WriteString(strings.Join(note.Examples, "\n"))
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n"+BlockSeparator+"\n")
}

// ParseOptions splits multiple-choice option text into options, one per line.
// A leading "*" marks the correct option; correctIndex is -1 if none is marked.
func ParseOptions(text string) (options []string, correctIndex int) {
	options = []string{}
	correctIndex = -1

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "*") {
			correctIndex = len(options)
			line = strings.TrimSpace(strings.TrimPrefix(line, "*"))
		}
		options = append(options, line)
	}

	return options, correctIndex
}

// FormatOptions is the inverse of ParseOptions.
func FormatOptions(options []string, correctIndex int) string {
	lines := make([]string, len(options))
	for i, opt := range options {
		if i == correctIndex {
			opt = "*" + opt
		}
		lines[i] = opt
	}
	return strings.Join(lines, "\n")
}
