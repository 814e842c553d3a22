package detect

import "strings"

// IsDialogue reports whether a trimmed line looks like quoted speech.
// Dialogue lines are excluded from the structural and semantic scorers
// only; explicit user regexes still match them.
func (lx *Lexicon) IsDialogue(line string) bool {
	if line == "" {
		return false
	}

	// Fully wrapped in a matching quote pair.
	runes := []rune(line)
	if len(runes) >= 2 {
		first, last := runes[0], runes[len(runes)-1]
		for _, pair := range lx.QuotePairs {
			if first == pair[0] && last == pair[1] {
				return true
			}
		}
	}

	// Dialogue openings: leading quoted span, name-colon-quote, or a
	// subject plus reporting verb.
	for _, re := range lx.DialoguePrefixes {
		if re.MatchString(line) {
			return true
		}
	}

	// Reporting-verb suffixes mid-line or at the end.
	for _, ending := range lx.DialogueEndings {
		if strings.Contains(line, ending) {
			return true
		}
	}

	// Two or more quote glyphs anywhere make speech likely.
	quotes := 0
	for _, r := range line {
		if strings.ContainsRune(lx.QuoteGlyphs, r) {
			quotes++
			if quotes >= 2 {
				return true
			}
		}
	}

	return false
}
