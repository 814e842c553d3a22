package detect

import (
	"context"
	"regexp"
	"testing"
)

const koreanChapterText = "제1장 시작하기\n내용\n\n제2장 계속하기\n내용\n\n제3장 마무리\n내용"

func TestPatternDetector_KoreanChapterHeadings(t *testing.T) {
	d := NewPatternDetector(PatternDetectorConfig{
		Patterns: []Pattern{
			{Priority: 9, Expr: regexp.MustCompile(`^제\d+장\s+.*`)},
		},
	})

	found, err := d.Detect(context.Background(), SplitLines(koreanChapterText))
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	want := []struct {
		line  int
		title string
	}{
		{1, "제1장 시작하기"},
		{4, "제2장 계속하기"},
		{7, "제3장 마무리"},
	}
	if len(found) != len(want) {
		t.Fatalf("expected %d candidates, got %d", len(want), len(found))
	}
	for i, w := range want {
		c := found[i]
		if c.LineNo != w.line {
			t.Errorf("candidate %d: expected line %d, got %d", i, w.line, c.LineNo)
		}
		if c.Title != w.title {
			t.Errorf("candidate %d: expected title %q, got %q", i, w.title, c.Title)
		}
		if c.Method != "regex 09" {
			t.Errorf("candidate %d: expected method 'regex 09', got %q", i, c.Method)
		}
		if c.Confidence != PatternConfidence {
			t.Errorf("candidate %d: expected confidence %v, got %v", i, PatternConfidence, c.Confidence)
		}
		if c.Source != SourcePattern {
			t.Errorf("candidate %d: expected pattern source, got %s", i, c.Source)
		}
	}
}

func TestPatternDetector_FirstPatternWins(t *testing.T) {
	// "12화 제목" matches both patterns; the lower priority index must win.
	d := NewPatternDetector(PatternDetectorConfig{
		Patterns: []Pattern{
			{Priority: 4, Expr: regexp.MustCompile(`^[0-9]+화.*`)},
			{Priority: 17, Expr: regexp.MustCompile(`\d+화`)},
		},
	})

	found, err := d.Detect(context.Background(), SplitLines("12화 제목"))
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(found))
	}
	if found[0].Method != "regex 04" {
		t.Errorf("expected first matching pattern to win, got method %q", found[0].Method)
	}
}

func TestPatternDetector_AnchoredAtLineStart(t *testing.T) {
	d := NewPatternDetector(PatternDetectorConfig{
		Patterns: []Pattern{
			{Priority: 1, Expr: regexp.MustCompile(`\d+화`)},
		},
	})

	text := "이전 이야기는 3화에서 다뤘다\n\n5화 새로운 시작"
	found, err := d.Detect(context.Background(), SplitLines(text))
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected only the line-start match, got %d candidates", len(found))
	}
	if found[0].LineNo != 3 {
		t.Errorf("expected line 3, got %d", found[0].LineNo)
	}
}

func TestPatternDetector_SkipsBlankLines(t *testing.T) {
	d := NewPatternDetector(PatternDetectorConfig{
		Patterns: []Pattern{
			// Would match an empty string if blank lines were scored.
			{Priority: 1, Expr: regexp.MustCompile(`.*`)},
		},
	})

	found, err := d.Detect(context.Background(), SplitLines("\n\n제목\n\n"))
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(found))
	}
	if found[0].LineNo != 3 {
		t.Errorf("expected line 3, got %d", found[0].LineNo)
	}
}

func TestPatternDetector_ProgressReporting(t *testing.T) {
	var percents []int
	d := NewPatternDetector(PatternDetectorConfig{
		Patterns: []Pattern{{Priority: 1, Expr: regexp.MustCompile(`^X$`)}},
		Progress: func(p int) { percents = append(percents, p) },
	})

	lines := make([]Line, 100)
	for i := range lines {
		lines[i] = Line{No: i + 1, Raw: "본문", Trimmed: "본문"}
	}

	if _, err := d.Detect(context.Background(), lines); err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if len(percents) == 0 {
		t.Fatal("expected progress reports")
	}
	last := -1
	for _, p := range percents {
		if p < 0 || p > 100 {
			t.Errorf("percent out of range: %d", p)
		}
		if p < last {
			t.Errorf("progress went backwards: %d after %d", p, last)
		}
		last = p
	}
	if percents[len(percents)-1] != 100 {
		t.Errorf("expected final progress 100, got %d", percents[len(percents)-1])
	}
}

func TestPatternDetector_CancelledBetweenPatterns(t *testing.T) {
	// Cancelling from the progress callback lands after the line-level
	// context check, so only the per-pattern check can observe it.
	ctx, cancel := context.WithCancel(context.Background())
	d := NewPatternDetector(PatternDetectorConfig{
		Patterns: []Pattern{{Priority: 1, Expr: regexp.MustCompile(`.+`)}},
		Progress: func(int) { cancel() },
	})

	found, err := d.Detect(ctx, SplitLines("제목"))
	if err == nil {
		t.Fatal("expected context error from pattern-boundary check")
	}
	if len(found) != 0 {
		t.Errorf("expected no candidates after cancellation, got %d", len(found))
	}
}

func TestPatternDetector_Cancelled(t *testing.T) {
	d := NewPatternDetector(PatternDetectorConfig{
		Patterns: []Pattern{{Priority: 1, Expr: regexp.MustCompile(`.+`)}},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := d.Detect(ctx, SplitLines("제목")); err == nil {
		t.Error("expected context error from cancelled detect")
	}
}
