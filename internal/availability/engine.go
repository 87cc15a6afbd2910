// Package availability merges the four occupancy sources of a club day
// (bookings, blocked slots, events, private classes) into per-slot
// verdicts. It is advisory and read-only: the booking repository's
// transactional commit remains the final authority on conflicts.
package availability

import (
	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
	"github.com/tonatiuh19/intelipadel-sub001/internal/timeutil"
)

type Reason string

const (
	ReasonUnknown Reason = "unknown"
	ReasonBlocked Reason = "blocked"
	ReasonBooked  Reason = "booked"
	ReasonEvent   Reason = "event"
	ReasonClass   Reason = "class"
)

// Data is the raw material for one club and date range, fetched
// upstream and recomputed per query. It has no lifecycle of its own.
type Data struct {
	Courts         []domain.Court
	Bookings       []domain.Booking
	BlockedSlots   []domain.BlockedSlot
	Events         []domain.Event
	PrivateClasses []domain.PrivateClass
}

type Verdict struct {
	Available bool   `json:"available"`
	Reason    Reason `json:"reason,omitempty"`
}

// SlotStatus is one cell of a day grid.
type SlotStatus struct {
	CourtID   string `json:"court_id"`
	Time      string `json:"time"` // "HH:mm"
	Available bool   `json:"available"`
	Reason    Reason `json:"reason,omitempty"`
}

// Grid window used when the club has no schedule row for the day.
const (
	DefaultOpenMin  = 6 * 60  // 06:00
	DefaultCloseMin = 22 * 60 // 22:00
)

// Slot resolves one (court, date, time) query. Sources are checked in a
// fixed order and the first hit wins: blocked, booked, event, class.
// All interval comparisons are half-open [start, end), so back-to-back
// occupancies never collide at the boundary. Missing data or an
// unparseable clock reports unavailable with ReasonUnknown rather than
// failing, so callers can render a safe state.
func Slot(data *Data, courtID, date, clock string) Verdict {
	if data == nil {
		return Verdict{Available: false, Reason: ReasonUnknown}
	}
	t, ok := timeutil.Clock(clock)
	if !ok {
		return Verdict{Available: false, Reason: ReasonUnknown}
	}
	return resolve(data, courtID, date, t, t+1)
}

// Window resolves a whole [start, end) interval at once. Sampling at
// fixed instants steps over occupancies shorter than the step, so
// booking-length checks must come through here, not through repeated
// Slot calls. Same source order and error semantics as Slot.
func Window(data *Data, courtID, date, start, end string) Verdict {
	if data == nil {
		return Verdict{Available: false, Reason: ReasonUnknown}
	}
	st, ok1 := timeutil.Clock(start)
	et, ok2 := timeutil.Clock(end)
	if !ok1 || !ok2 || et <= st {
		return Verdict{Available: false, Reason: ReasonUnknown}
	}
	return resolve(data, courtID, date, st, et)
}

func resolve(data *Data, courtID, date string, from, to int) Verdict {
	for i := range data.BlockedSlots {
		if blockOverlaps(&data.BlockedSlots[i], courtID, date, from, to) {
			return Verdict{Available: false, Reason: ReasonBlocked}
		}
	}
	for i := range data.Bookings {
		b := &data.Bookings[i]
		if b.Occupies() && b.CourtID == courtID &&
			timeutil.DateString(b.BookingDate) == date &&
			overlaps(b.StartTime, b.EndTime, from, to) {
			return Verdict{Available: false, Reason: ReasonBooked}
		}
	}
	for i := range data.Events {
		if eventOverlaps(&data.Events[i], courtID, date, from, to) {
			return Verdict{Available: false, Reason: ReasonEvent}
		}
	}
	for i := range data.PrivateClasses {
		c := &data.PrivateClasses[i]
		if c.CourtID == courtID &&
			timeutil.DateString(c.ClassDate) == date &&
			overlaps(c.StartTime, c.EndTime, from, to) {
			return Verdict{Available: false, Reason: ReasonClass}
		}
	}
	return Verdict{Available: true}
}

// DaySlots renders the hourly grid for one date across every active
// court. The window comes from the club's schedule row for that weekday
// when one exists (a closed day yields no slots), 06:00-22:00 otherwise.
func DaySlots(data *Data, date string, sched *domain.ClubSchedule) []SlotStatus {
	open, close := DefaultOpenMin, DefaultCloseMin
	if sched != nil {
		if sched.IsClosed {
			return nil
		}
		if o, ok := timeutil.Clock(sched.OpensAt); ok {
			open = o
		}
		if c, ok := timeutil.Clock(sched.ClosesAt); ok {
			close = c
		}
	}

	var out []SlotStatus
	if data == nil {
		return out
	}
	for _, court := range data.Courts {
		if !court.IsActive {
			continue
		}
		for m := open; m < close; m += 60 {
			clock := timeutil.MinutesToClock(m)
			v := Slot(data, court.ID, date, clock)
			out = append(out, SlotStatus{
				CourtID:   court.ID,
				Time:      clock,
				Available: v.Available,
				Reason:    v.Reason,
			})
		}
	}
	return out
}

// EventOccupies reports whether the event claims courtID at the given
// date and minute. When a per-court schedule exists for the court, that
// narrower window replaces the event's own.
func EventOccupies(e *domain.Event, courtID, date string, t int) bool {
	return eventOverlaps(e, courtID, date, t, t+1)
}

func eventOverlaps(e *domain.Event, courtID, date string, from, to int) bool {
	if timeutil.DateString(e.EventDate) != date {
		return false
	}
	used := false
	for _, id := range e.CourtIDs() {
		if id == courtID {
			used = true
			break
		}
	}
	if !used {
		return false
	}
	for i := range e.CourtSchedules {
		cs := &e.CourtSchedules[i]
		if cs.CourtID == courtID {
			return overlaps(cs.StartTime, cs.EndTime, from, to)
		}
	}
	return overlaps(e.StartTime, e.EndTime, from, to)
}

func blockOverlaps(b *domain.BlockedSlot, courtID, date string, from, to int) bool {
	if timeutil.DateString(b.BlockDate) != date {
		return false
	}
	// Nil court blocks the whole club.
	if b.CourtID != nil && *b.CourtID != courtID {
		return false
	}
	if b.IsAllDay {
		return true
	}
	return overlaps(b.StartTime, b.EndTime, from, to)
}

// overlaps checks two half-open intervals for intersection, the
// occupancy's "HH:mm" bounds against [from, to) minutes. Unparseable
// bounds never match.
func overlaps(start, end string, from, to int) bool {
	st, ok1 := timeutil.Clock(start)
	et, ok2 := timeutil.Clock(end)
	if !ok1 || !ok2 {
		return false
	}
	return st < to && et > from
}
