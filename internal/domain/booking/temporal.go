package booking

import "time"

// CompletionGrace is the buffer applied when deciding whether a booking has
// completed for the last/next summary; a booking that ended moments ago is
// not yet reported as the item's last rental.
const CompletionGrace = 5 * time.Second

// Entry is the slice of a booking the temporal summary needs.
type Entry struct {
	Start  time.Time
	End    time.Time
	Status Status
}

// Summary carries only the boundary timestamps of an item's last completed
// and next upcoming approved bookings. Either side is nil when no booking
// qualifies.
type Summary struct {
	LastEnd   *time.Time
	NextStart *time.Time
}

// Summarize derives the last/next view from an item's full booking history.
// Last is the approved booking with the greatest end strictly before
// now minus the grace; next is the approved booking with the smallest start
// strictly after now. The store gives no ordering guarantee, so both extremes
// are found in a single pass; on equal extremes the first encountered wins.
func Summarize(entries []Entry, now time.Time) Summary {
	completedBefore := now.Add(-CompletionGrace)

	var last, next *Entry
	for i := range entries {
		e := &entries[i]
		if e.Status != StatusApproved {
			continue
		}
		if e.End.Before(completedBefore) {
			if last == nil || e.End.After(last.End) {
				last = e
			}
		}
		if e.Start.After(now) {
			if next == nil || e.Start.Before(next.Start) {
				next = e
			}
		}
	}

	var s Summary
	if last != nil {
		end := last.End
		s.LastEnd = &end
	}
	if next != nil {
		start := next.Start
		s.NextStart = &start
	}
	return s
}
