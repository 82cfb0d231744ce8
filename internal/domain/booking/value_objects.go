package booking

import (
	"time"

	"lendit/internal/pkg/errs"
)

// PastTolerance absorbs clock and network skew between the client that built
// the window and the server validating it.
const PastTolerance = 10 * time.Second

var (
	ErrStartInPast      = errs.New("start in past")
	ErrEndInPast        = errs.New("end in past")
	ErrEndBeforeStart   = errs.New("end before start")
	ErrZeroLengthWindow = errs.New("zero-length window")
)

// TimeWindow is the validated (start, end) pair of a booking.
type TimeWindow struct {
	start time.Time
	end   time.Time
}

// NewTimeWindow validates a proposed window against now. Rules apply in
// order and the first violation wins.
func NewTimeWindow(start, end, now time.Time) (TimeWindow, error) {
	horizon := now.Add(-PastTolerance)
	if start.Before(horizon) {
		return TimeWindow{}, ErrStartInPast
	}
	if end.Before(horizon) {
		return TimeWindow{}, ErrEndInPast
	}
	if end.Before(start) {
		return TimeWindow{}, ErrEndBeforeStart
	}
	if end.Equal(start) {
		return TimeWindow{}, ErrZeroLengthWindow
	}
	return TimeWindow{start: start, end: end}, nil
}

// ReconstructTimeWindow restores a window from storage without re-validating
// against now; a persisted window was valid when it was created.
func ReconstructTimeWindow(start, end time.Time) TimeWindow {
	return TimeWindow{start: start, end: end}
}

func (w TimeWindow) Start() time.Time {
	return w.start
}

func (w TimeWindow) End() time.Time {
	return w.end
}

// HasEnded reports whether the window's end lies strictly before now.
// Comment eligibility keys on this: a booking only grants comment rights
// once its window has run out.
func (w TimeWindow) HasEnded(now time.Time) bool {
	return w.end.Before(now)
}
