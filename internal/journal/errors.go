package journal

import (
	"fmt"
	"time"
)

// UnmatchedEndError reports an end-tagged stamp line seen while no interval
// was open.
type UnmatchedEndError struct {
	Line int    // 1-based line number of the offending stamp
	Text string // the offending line
}

func (e *UnmatchedEndError) Error() string {
	return fmt.Sprintf("ending interval without starting it (line %d): %s", e.Line, e.Text)
}

// NestedIntervalError reports a start-tagged stamp line seen while an
// interval was already open.
type NestedIntervalError struct {
	Line int
	Text string
}

func (e *NestedIntervalError) Error() string {
	return fmt.Sprintf("starting interval when already open (line %d): %s", e.Line, e.Text)
}

// UnterminatedIntervalError reports that the input ended with an interval
// still open. Line and Text reference the start stamp that was never closed.
type UnterminatedIntervalError struct {
	Line int
	Text string
}

func (e *UnterminatedIntervalError) Error() string {
	return fmt.Sprintf("end of input with interval still open (started line %d): %s", e.Line, e.Text)
}

// NegativeDurationError reports a sealed interval whose end precedes its
// start. Line and Text reference the end stamp that sealed it.
type NegativeDurationError struct {
	Line  int
	Text  string
	Start time.Time
	End   time.Time
}

func (e *NegativeDurationError) Error() string {
	return fmt.Sprintf("negative duration for interval ending at line %d: %s (start %s, end %s)",
		e.Line, e.Text, e.Start.Format("2006-01-02 15:04"), e.End.Format("2006-01-02 15:04"))
}
