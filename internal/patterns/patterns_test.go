package patterns

import (
	"context"
	"testing"

	"github.com/KongYongGun/chapterfind/internal/detect"
)

func TestCompile_SkipsInvalidEntries(t *testing.T) {
	raws := []Raw{
		{Priority: 2, Pattern: `^제\d+장\s+.*`},
		{Priority: 1, Pattern: `[broken`},
		{Priority: 3, Pattern: `^\d+화`},
	}

	compiled := Compile(raws, nil)

	if len(compiled) != 2 {
		t.Fatalf("expected 2 compiled patterns, got %d", len(compiled))
	}
	if compiled[0].Priority != 2 || compiled[1].Priority != 3 {
		t.Errorf("expected priority order 2,3, got %d,%d", compiled[0].Priority, compiled[1].Priority)
	}
}

func TestCompile_InvalidEntryDoesNotChangeResults(t *testing.T) {
	text := "제1장 시작하기\n내용\n\n내용이 더 있는 줄\n내용\n\n제2장 계속하기\n내용"
	valid := []Raw{{Priority: 9, Name: "regex 09", Pattern: `^제\d+장\s+.*`}}
	withBad := append([]Raw{{Priority: 1, Pattern: `(`}}, valid...)

	run := func(raws []Raw) []detect.Candidate {
		d := detect.NewPatternDetector(detect.PatternDetectorConfig{
			Patterns: Compile(raws, nil),
		})
		found, err := d.Detect(context.Background(), detect.SplitLines(text))
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		return found
	}

	a := run(valid)
	b := run(withBad)

	if len(a) != len(b) {
		t.Fatalf("results differ: %d vs %d candidates", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("candidate %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestCompile_SortsByPriority(t *testing.T) {
	compiled := Compile([]Raw{
		{Priority: 30, Pattern: `c`},
		{Priority: 10, Pattern: `a`},
		{Priority: 20, Pattern: `b`},
	}, nil)

	for i, want := range []int{10, 20, 30} {
		if compiled[i].Priority != want {
			t.Errorf("position %d: expected priority %d, got %d", i, want, compiled[i].Priority)
		}
	}
}

func TestBuiltin_AllPatternsCompile(t *testing.T) {
	raws := Builtin()
	if len(raws) == 0 {
		t.Fatal("no builtin patterns")
	}

	compiled := Compile(raws, nil)
	if len(compiled) != len(raws) {
		t.Errorf("%d of %d builtin patterns failed to compile", len(raws)-len(compiled), len(raws))
	}
}

func TestBuiltin_ExamplesMatchFromLineStart(t *testing.T) {
	for _, raw := range Builtin() {
		if raw.Example == "" {
			continue
		}
		raw := raw
		t.Run(raw.Name, func(t *testing.T) {
			compiled := Compile([]Raw{raw}, nil)
			if len(compiled) != 1 {
				t.Fatalf("pattern did not compile: %s", raw.Pattern)
			}
			loc := compiled[0].Expr.FindStringIndex(raw.Example)
			if loc == nil || loc[0] != 0 {
				t.Errorf("example %q does not match pattern %q at line start", raw.Example, raw.Pattern)
			}
		})
	}
}

func TestCheck_ReportsPerEntry(t *testing.T) {
	results := Check([]Raw{
		{Priority: 1, Pattern: `^ok$`},
		{Priority: 2, Pattern: `[bad`},
	})

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].OK || results[0].Error != "" {
		t.Errorf("valid pattern flagged: %+v", results[0])
	}
	if results[1].OK || results[1].Error == "" {
		t.Errorf("invalid pattern not flagged: %+v", results[1])
	}
}
