package detect

import (
	"reflect"
	"testing"
)

func TestMerge_HighestConfidenceWinsPerLine(t *testing.T) {
	result := Merge([]Candidate{
		{LineNo: 10, Title: "제목", Source: SourceSemantic, Confidence: 0.4},
		{LineNo: 10, Title: "제목", Source: SourcePattern, Confidence: 1.0},
		{LineNo: 10, Title: "제목", Source: SourceStructural, Confidence: 0.7},
	}, MinSpacing)

	if result.Total != 1 {
		t.Fatalf("expected 1 candidate, got %d", result.Total)
	}
	if result.Candidates[0].Source != SourcePattern {
		t.Errorf("expected pattern candidate to win, got %s", result.Candidates[0].Source)
	}
}

func TestMerge_DetectorPrecedenceBreaksTies(t *testing.T) {
	result := Merge([]Candidate{
		{LineNo: 10, Source: SourceSemantic, Confidence: 0.5},
		{LineNo: 10, Source: SourceStructural, Confidence: 0.5},
	}, MinSpacing)

	if result.Total != 1 {
		t.Fatalf("expected 1 candidate, got %d", result.Total)
	}
	if result.Candidates[0].Source != SourceStructural {
		t.Errorf("expected structural to win the tie, got %s", result.Candidates[0].Source)
	}
}

func TestMerge_DocumentOrderNotConfidenceOrder(t *testing.T) {
	result := Merge([]Candidate{
		{LineNo: 40, Source: SourcePattern, Confidence: 1.0},
		{LineNo: 8, Source: SourceSemantic, Confidence: 0.3},
		{LineNo: 20, Source: SourceStructural, Confidence: 0.9},
	}, MinSpacing)

	var lines []int
	for _, c := range result.Candidates {
		lines = append(lines, c.LineNo)
	}
	if !reflect.DeepEqual(lines, []int{8, 20, 40}) {
		t.Errorf("expected ascending line order, got %v", lines)
	}
}

func TestMerge_MinimumSpacing(t *testing.T) {
	// Two titles two lines apart: only the first survives.
	result := Merge([]Candidate{
		{LineNo: 12, Source: SourceStructural, Confidence: 0.6},
		{LineNo: 14, Source: SourceStructural, Confidence: 0.9},
	}, MinSpacing)

	if result.Total != 1 {
		t.Fatalf("expected 1 candidate, got %d", result.Total)
	}
	if result.Candidates[0].LineNo != 12 {
		t.Errorf("expected the earlier candidate to survive, got line %d", result.Candidates[0].LineNo)
	}
}

func TestMerge_FirstCandidateAlwaysAccepted(t *testing.T) {
	result := Merge([]Candidate{
		{LineNo: 2, Source: SourcePattern, Confidence: 1.0},
	}, MinSpacing)

	if result.Total != 1 {
		t.Fatalf("candidate near the start of the document was dropped")
	}
}

func TestMerge_SpacingInvariantHolds(t *testing.T) {
	var input []Candidate
	for line := 1; line <= 50; line += 2 {
		input = append(input, Candidate{LineNo: line, Source: SourceSemantic, Confidence: 0.3})
	}

	result := Merge(input, MinSpacing)
	for i := 1; i < len(result.Candidates); i++ {
		gap := result.Candidates[i].LineNo - result.Candidates[i-1].LineNo
		if gap < MinSpacing {
			t.Fatalf("spacing violated: lines %d and %d",
				result.Candidates[i-1].LineNo, result.Candidates[i].LineNo)
		}
	}
}

func TestMerge_Empty(t *testing.T) {
	result := Merge(nil, MinSpacing)
	if result.Total != 0 || len(result.Candidates) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}
