package detect

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
)

// Pattern is a user-chosen chapter regex with its priority order.
// Patterns arrive already compiled; sources that fail to compile are
// excluded before a run starts (see the patterns package).
type Pattern struct {
	Priority int
	Name     string
	Expr     *regexp.Regexp
}

// Label returns the human-readable identifier used in candidate methods.
func (p Pattern) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("regex %02d", p.Priority)
}

// PatternConfidence is the fixed confidence for regex matches. Explicit
// user patterns are authoritative, so they always win intra-line ties.
const PatternConfidence = 1.0

// PatternDetector matches each line against the ordered pattern list and
// emits at most one candidate per line: the first pattern, by priority,
// that matches at the start of the trimmed line.
type PatternDetector struct {
	patterns []Pattern
	progress func(percent int)
	logger   *slog.Logger
}

// PatternDetectorConfig configures a new PatternDetector.
type PatternDetectorConfig struct {
	Patterns []Pattern
	// Progress, if set, receives percent values in [0,100] every
	// ProgressInterval lines and a final 100 on completion.
	Progress func(percent int)
	Logger   *slog.Logger
}

// NewPatternDetector creates a pattern detector.
func NewPatternDetector(cfg PatternDetectorConfig) *PatternDetector {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &PatternDetector{
		patterns: cfg.Patterns,
		progress: cfg.Progress,
		logger:   logger.With("detector", "pattern"),
	}
}

// Name returns the detector identifier.
func (d *PatternDetector) Name() string { return string(SourcePattern) }

// Detect scans lines in document order, so emitted candidates are always
// ascending by line number regardless of which pattern matched.
// Cancellation is observed at every line boundary and again before each
// pattern attempt within a line.
func (d *PatternDetector) Detect(ctx context.Context, lines []Line) ([]Candidate, error) {
	total := len(lines)
	var found []Candidate

	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if i%ProgressInterval == 0 {
			d.report(i, total)
		}

		if line.IsBlank() {
			continue
		}

		for _, p := range d.patterns {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			loc := p.Expr.FindStringIndex(line.Trimmed)
			if loc == nil || loc[0] != 0 {
				continue
			}
			found = append(found, Candidate{
				LineNo:     line.No,
				Title:      line.Trimmed,
				Method:     p.Label(),
				Confidence: PatternConfidence,
				Source:     SourcePattern,
			})
			d.logger.Debug("pattern match",
				"line", line.No,
				"pattern", p.Label(),
			)
			break
		}
	}

	if d.progress != nil {
		d.progress(100)
	}
	return found, nil
}

// report emits a clamped percent value for the number of lines processed.
func (d *PatternDetector) report(processed, total int) {
	if d.progress == nil || total == 0 {
		return
	}
	percent := processed * 100 / total
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	d.progress(percent)
}
