package detect

import "sort"

// Merge deduplicates and orders candidates from all detectors into the
// final chapter list. Within a line the highest confidence wins, with
// ties broken by detector precedence (pattern > structural > semantic).
// The deduplicated set is ordered by line number only; confidence never
// reorders the document. A final sweep drops any candidate within
// minSpacing lines of the last accepted one.
func Merge(candidates []Candidate, minSpacing int) Result {
	if minSpacing <= 0 {
		minSpacing = MinSpacing
	}

	best := make(map[int]Candidate, len(candidates))
	for _, c := range candidates {
		cur, ok := best[c.LineNo]
		if !ok || c.Confidence > cur.Confidence ||
			(c.Confidence == cur.Confidence && c.Source.precedence() < cur.Source.precedence()) {
			best[c.LineNo] = c
		}
	}

	ordered := make([]Candidate, 0, len(best))
	for _, c := range best {
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].LineNo < ordered[j].LineNo
	})

	// The first candidate is always accepted; spacing is enforced only
	// between accepted neighbours.
	var accepted []Candidate
	lastLine := 0
	for _, c := range ordered {
		if len(accepted) == 0 || c.LineNo-lastLine >= minSpacing {
			accepted = append(accepted, c)
			lastLine = c.LineNo
		}
	}

	return Result{Candidates: accepted, Total: len(accepted)}
}
