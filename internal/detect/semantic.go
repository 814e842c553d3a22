package detect

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Semantic scoring weights.
const (
	SemanticThreshold = 0.3

	weightKeyword     = 0.10
	keywordCap        = 0.30
	weightTrailingHan = 0.10
	weightPunctuation = 0.05
	weightFewWords    = 0.10

	// maxTitleWords is the inclusive upper bound on whitespace-delimited
	// tokens for the few-words signal.
	maxTitleWords = 8
)

// SemanticScorer scores lines against the chapter-transition keyword
// lexicon. Keyword evidence is required: syntactic cues alone never
// produce a candidate.
type SemanticScorer struct {
	lexicon *Lexicon
	logger  *slog.Logger
}

// SemanticScorerConfig configures a new SemanticScorer.
type SemanticScorerConfig struct {
	Lexicon *Lexicon
	Logger  *slog.Logger
}

// NewSemanticScorer creates a semantic scorer.
func NewSemanticScorer(cfg SemanticScorerConfig) *SemanticScorer {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	lexicon := cfg.Lexicon
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &SemanticScorer{
		lexicon: lexicon,
		logger:  logger.With("detector", "semantic"),
	}
}

// Name returns the detector identifier.
func (d *SemanticScorer) Name() string { return string(SourceSemantic) }

// Detect scores every non-blank, non-dialogue line under MaxTitleLen.
func (d *SemanticScorer) Detect(ctx context.Context, lines []Line) ([]Candidate, error) {
	var found []Candidate

	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if line.IsBlank() {
			continue
		}
		if d.lexicon.IsDialogue(line.Trimmed) {
			continue
		}
		if utf8.RuneCountInString(line.Trimmed) > MaxTitleLen {
			continue
		}

		var score float64
		var matched []string

		for _, kw := range d.lexicon.Keywords {
			if strings.Contains(line.Trimmed, kw) {
				score += weightKeyword
				matched = append(matched, kw)
				if score >= keywordCap {
					break
				}
			}
		}

		if endsWithHangul(line.Trimmed) {
			score += weightTrailingHan
		}

		if strings.HasSuffix(line.Trimmed, "!") ||
			strings.HasSuffix(line.Trimmed, "?") ||
			strings.HasSuffix(line.Trimmed, ".") {
			score += weightPunctuation
		}

		if words := len(strings.Fields(line.Trimmed)); words >= 1 && words <= maxTitleWords {
			score += weightFewWords
		}

		if score >= SemanticThreshold && len(matched) > 0 {
			found = append(found, Candidate{
				LineNo:     line.No,
				Title:      line.Trimmed,
				Method:     fmt.Sprintf("semantic (keywords: %s)", strings.Join(matched, ", ")),
				Confidence: score,
				Source:     SourceSemantic,
			})
		}
	}

	return found, nil
}

// endsWithHangul reports whether the line's final rune is a Hangul
// syllable, the bare-noun title shape in Korean prose.
func endsWithHangul(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return false
	}
	return unicode.Is(unicode.Hangul, r)
}
