package detect

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Structural scoring weights. Each signal contributes its fixed weight
// when its condition holds; a line becomes a candidate when the sum
// reaches StructuralThreshold.
const (
	StructuralThreshold = 0.4

	weightShortLine     = 0.20
	weightBlankBoth     = 0.30
	weightBlankOne      = 0.15
	weightGlyph         = 0.20
	weightUpper         = 0.25
	weightTime          = 0.15
	weightPlace         = 0.10
	weightCentered      = 0.20
	weightBreakSharp    = 0.20
	weightBreakBalanced = 0.15

	// contentWindow is how many lines on each side feed the
	// content-break length comparison.
	contentWindow = 3

	// centeredIndent is the leading whitespace run that suggests
	// centered text.
	centeredIndent = 10
)

// StructuralScorer scores lines on layout signals: length, surrounding
// blank lines, decorative glyphs, casing, time/place vocabulary,
// indentation, and the length contrast against neighbouring paragraphs.
type StructuralScorer struct {
	lexicon *Lexicon
	logger  *slog.Logger
}

// StructuralScorerConfig configures a new StructuralScorer.
type StructuralScorerConfig struct {
	Lexicon *Lexicon
	Logger  *slog.Logger
}

// NewStructuralScorer creates a structural scorer.
func NewStructuralScorer(cfg StructuralScorerConfig) *StructuralScorer {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	lexicon := cfg.Lexicon
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &StructuralScorer{
		lexicon: lexicon,
		logger:  logger.With("detector", "structural"),
	}
}

// Name returns the detector identifier.
func (d *StructuralScorer) Name() string { return string(SourceStructural) }

// Detect scores every non-blank, non-dialogue line under MaxTitleLen.
func (d *StructuralScorer) Detect(ctx context.Context, lines []Line) ([]Candidate, error) {
	var found []Candidate

	for idx, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if line.IsBlank() {
			continue
		}
		if d.lexicon.IsDialogue(line.Trimmed) {
			continue
		}
		length := utf8.RuneCountInString(line.Trimmed)
		if length > MaxTitleLen {
			continue
		}

		var score float64
		var reasons []string

		if length < ShortTitleLen {
			score += weightShortLine
			reasons = append(reasons, "short line")
		}

		prevBlank := idx == 0 || lines[idx-1].IsBlank()
		nextBlank := idx == len(lines)-1 || lines[idx+1].IsBlank()
		switch {
		case prevBlank && nextBlank:
			score += weightBlankBoth
			reasons = append(reasons, "blank both sides")
		case prevBlank || nextBlank:
			score += weightBlankOne
			reasons = append(reasons, "blank one side")
		}

		if strings.ContainsAny(line.Trimmed, d.lexicon.DecorativeGlyphs) {
			score += weightGlyph
			reasons = append(reasons, "decorative glyph")
		}

		if length > 2 && isUpper(line.Trimmed) {
			score += weightUpper
			reasons = append(reasons, "upper case")
		}

		for _, re := range d.lexicon.TimePatterns {
			if re.MatchString(line.Trimmed) {
				score += weightTime
				reasons = append(reasons, "time expression")
				break
			}
		}

		for _, kw := range d.lexicon.PlaceKeywords {
			if strings.Contains(line.Trimmed, kw) {
				score += weightPlace
				reasons = append(reasons, "place expression")
				break
			}
		}

		if leadingWhitespace(line.Raw) > centeredIndent {
			score += weightCentered
			reasons = append(reasons, "centered")
		}

		if breakScore := contentBreak(lines, idx); breakScore > 0 {
			score += breakScore
			reasons = append(reasons, "content break")
		}

		if score >= StructuralThreshold {
			found = append(found, Candidate{
				LineNo:     line.No,
				Title:      line.Trimmed,
				Method:     fmt.Sprintf("structural (%s)", strings.Join(reasons, ", ")),
				Confidence: score,
				Source:     SourceStructural,
			})
		}
	}

	return found, nil
}

// contentBreak compares the line's length against the mean trimmed length
// of the surrounding contentWindow lines on each side. A line much shorter
// than both neighbourhoods reads as a title between paragraphs.
func contentBreak(lines []Line, idx int) float64 {
	var prev, next []int
	for i := idx - contentWindow; i < idx; i++ {
		if i >= 0 {
			prev = append(prev, utf8.RuneCountInString(lines[i].Trimmed))
		}
	}
	for i := idx + 1; i <= idx+contentWindow && i < len(lines); i++ {
		next = append(next, utf8.RuneCountInString(lines[i].Trimmed))
	}
	if len(prev) == 0 || len(next) == 0 {
		return 0
	}

	prevAvg := mean(prev)
	nextAvg := mean(next)
	cur := float64(utf8.RuneCountInString(lines[idx].Trimmed))

	var score float64
	if cur < prevAvg*0.3 && cur < nextAvg*0.3 {
		score += weightBreakSharp
	}
	smaller := prevAvg
	if nextAvg < smaller {
		smaller = nextAvg
	}
	diff := prevAvg - nextAvg
	if diff < 0 {
		diff = -diff
	}
	if diff < 20 && cur < smaller*0.5 {
		score += weightBreakBalanced
	}
	return score
}

func mean(values []int) float64 {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// isUpper reports whether the string contains cased letters and all of
// them are upper case.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// leadingWhitespace counts the run of whitespace runes at the start of
// the raw line, a proxy for centered text.
func leadingWhitespace(raw string) int {
	count := 0
	for _, r := range raw {
		if !unicode.IsSpace(r) {
			break
		}
		count++
	}
	return count
}
