package detect

// Source identifies which detector produced a candidate.
type Source string

const (
	// SourcePattern indicates a user-supplied regex match.
	SourcePattern Source = "pattern"
	// SourceStructural indicates layout-based heuristic scoring.
	SourceStructural Source = "structural"
	// SourceSemantic indicates keyword-lexicon scoring.
	SourceSemantic Source = "semantic"
)

// precedence orders detectors for intra-line tie-breaking.
// Lower values win when confidences are equal.
func (s Source) precedence() int {
	switch s {
	case SourcePattern:
		return 0
	case SourceStructural:
		return 1
	case SourceSemantic:
		return 2
	default:
		return 3
	}
}

// Candidate is a single proposed chapter-boundary line. Candidates are
// immutable once created; the merger only selects or discards them.
type Candidate struct {
	LineNo     int     `json:"line_no" yaml:"line_no"`
	Title      string  `json:"title" yaml:"title"`
	Method     string  `json:"method" yaml:"method"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	Source     Source  `json:"source" yaml:"source"`
}

// Result is the final ordered chapter list for one detection run.
// Entries are strictly increasing by line number with no two entries
// closer than the minimum spacing.
type Result struct {
	Candidates []Candidate `json:"candidates" yaml:"candidates"`
	Total      int         `json:"total" yaml:"total"`
}
