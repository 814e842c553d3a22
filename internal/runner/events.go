package runner

import "github.com/KongYongGun/chapterfind/internal/detect"

// EventType discriminates the events streamed during a detection run.
type EventType string

const (
	// EventCandidate carries one accepted chapter candidate. Candidate
	// events are always emitted in ascending line-number order.
	EventCandidate EventType = "candidate"
	// EventProgress carries a percent value in [0,100]. Values are
	// monotonically non-decreasing within a run.
	EventProgress EventType = "progress"
	// EventFinished is the terminal event carrying the accepted count.
	// It is emitted exactly once, for every outcome.
	EventFinished EventType = "finished"
)

// Event is a single notification from a detection run.
type Event struct {
	Type      EventType
	Candidate *detect.Candidate // set for EventCandidate
	Percent   int               // set for EventProgress
	Total     int               // set for EventFinished
	// Err is set on EventFinished only when the run failed and the
	// runner was configured with StrictErrors. Under the default
	// policy failures degrade to Total == 0 with a nil Err.
	Err error
}
