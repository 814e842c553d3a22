// Package detect implements multi-signal chapter-boundary detection over
// raw prose. Three independent detectors (regex pattern, structural layout,
// keyword semantics) each scan the input lines and propose candidates;
// Merge resolves conflicts and enforces document order and minimum spacing.
package detect

import "context"

// Detector is implemented by each detection strategy. Detectors hold no
// shared mutable state, so independent runs may use them concurrently.
// Detect returns ctx.Err() if the context is cancelled mid-scan; any
// candidates accumulated before cancellation are discarded by the caller.
type Detector interface {
	// Name returns the detector identifier used in logs.
	Name() string

	// Detect scans the lines and returns candidates in ascending line order.
	Detect(ctx context.Context, lines []Line) ([]Candidate, error)
}

// Tunables shared across detectors. Titles are short by construction, so
// both heuristic scorers reject anything over MaxTitleLen outright.
const (
	// MaxTitleLen is the hard ceiling on trimmed line length for the
	// structural and semantic scorers.
	MaxTitleLen = 100

	// ShortTitleLen is the length under which a line earns the
	// short-line structural weight.
	ShortTitleLen = 50

	// MinSpacing is the default minimum line gap between two accepted
	// chapter boundaries.
	MinSpacing = 5

	// ProgressInterval is how many lines the pattern detector scans
	// between progress reports.
	ProgressInterval = 20
)
