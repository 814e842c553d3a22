package detect

import "strings"

// Line is a single line of the input text. Lines are derived once from the
// raw text and never mutated afterwards.
type Line struct {
	No      int    // 1-based line number
	Raw     string // original text including leading whitespace
	Trimmed string // whitespace-trimmed text
}

// IsBlank reports whether the line is empty after trimming.
func (l Line) IsBlank() bool {
	return l.Trimmed == ""
}

// SplitLines splits raw text into Lines with 1-based numbering.
// An empty input yields an empty slice.
func SplitLines(text string) []Line {
	if text == "" {
		return nil
	}
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]Line, len(raw))
	for i, s := range raw {
		lines[i] = Line{
			No:      i + 1,
			Raw:     s,
			Trimmed: strings.TrimSpace(s),
		}
	}
	return lines
}
