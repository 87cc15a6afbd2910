// Package pricing selects the effective hourly rate for a club slot
// from a prioritized set of price rules, falling back to the club's
// base rate. It is a pure package: no clock reads, no I/O.
package pricing

import (
	"errors"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
	"github.com/tonatiuh19/intelipadel-sub001/internal/timeutil"
)

// Query identifies the slot being priced. CourtID may be empty when the
// caller has not picked a court yet, in which case every rule passes
// the court filter.
type Query struct {
	CourtID string
	Date    string // "YYYY-MM-DD"
	Time    string // "HH:mm"
}

var ErrBadQuery = errors.New("pricing: invalid date or time in query")

// Resolve returns the hourly rate (cents) for the queried slot.
//
// Active rules are filtered by court and by their type's own match
// criteria; among the matches the highest Priority wins. Ties go to
// the rule with a concrete court over a club-wide one, then to the
// narrower rule type: special_date > time_of_day > day_of_week >
// seasonal. Malformed rules never match. With no match the club base
// rate is returned.
func Resolve(basePricePerHour int64, rules []domain.PriceRule, q Query) int64 {
	var best *domain.PriceRule
	for i := range rules {
		r := &rules[i]
		if !r.IsActive {
			continue
		}
		if q.CourtID != "" && r.CourtID != nil && *r.CourtID != q.CourtID {
			continue
		}
		if !matches(r, q) {
			continue
		}
		if best == nil || beats(r, best) {
			best = r
		}
	}
	if best == nil {
		return basePricePerHour
	}
	return best.PricePerHour
}

func matches(r *domain.PriceRule, q Query) bool {
	switch r.RuleType {
	case domain.RuleTimeOfDay:
		return inClockWindow(r.StartTime, r.EndTime, q.Time)
	case domain.RuleDayOfWeek:
		wd, ok := timeutil.Weekday(q.Date)
		if !ok {
			return false
		}
		for _, d := range r.Days() {
			if d == wd {
				return true
			}
		}
		return false
	case domain.RuleSeasonal:
		return inDateRange(r, q.Date)
	case domain.RuleSpecialDate:
		if !inDateRange(r, q.Date) {
			return false
		}
		// Without a time window the rule covers the whole day.
		if r.StartTime == "" && r.EndTime == "" {
			return true
		}
		return inClockWindow(r.StartTime, r.EndTime, q.Time)
	default:
		return false
	}
}

// inClockWindow checks start <= t < end on "HH:mm" clocks. Windows
// never span midnight: end <= start never matches.
func inClockWindow(start, end, clock string) bool {
	st, ok1 := timeutil.Clock(start)
	et, ok2 := timeutil.Clock(end)
	t, ok3 := timeutil.Clock(clock)
	if !ok1 || !ok2 || !ok3 {
		return false
	}
	return st <= t && t < et
}

// inDateRange checks start_date <= d <= end_date, inclusive both ends,
// as calendar-day strings.
func inDateRange(r *domain.PriceRule, d string) bool {
	if r.StartDate == nil || r.EndDate == nil {
		return false
	}
	return timeutil.DateString(*r.StartDate) <= d && d <= timeutil.DateString(*r.EndDate)
}

// typeRank orders rule types by how intentional an override they are;
// lower ranks win equal-priority ties.
func typeRank(t domain.RuleType) int {
	switch t {
	case domain.RuleSpecialDate:
		return 0
	case domain.RuleTimeOfDay:
		return 1
	case domain.RuleDayOfWeek:
		return 2
	case domain.RuleSeasonal:
		return 3
	default:
		return 4
	}
}

func beats(a, b *domain.PriceRule) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	aCourt, bCourt := a.CourtID != nil, b.CourtID != nil
	if aCourt != bCourt {
		return aCourt
	}
	return typeRank(a.RuleType) < typeRank(b.RuleType)
}

// QuoteRange prices [start, end) by splitting it at clock-hour
// boundaries and summing each segment at its own resolved rate, so a
// window starting mid-hour still picks up a rule that kicks in at the
// next full hour. Partial segments are pro-rated by the minute.
func QuoteRange(basePricePerHour int64, rules []domain.PriceRule, courtID, date, start, end string) (int64, error) {
	st, ok1 := timeutil.Clock(start)
	et, ok2 := timeutil.Clock(end)
	if _, err := timeutil.ParseDate(date); err != nil || !ok1 || !ok2 || et <= st {
		return 0, ErrBadQuery
	}
	var total int64
	for m := st; m < et; {
		next := (m/60 + 1) * 60
		if next > et {
			next = et
		}
		rate := Resolve(basePricePerHour, rules, Query{
			CourtID: courtID,
			Date:    date,
			Time:    timeutil.MinutesToClock(m),
		})
		total += rate * int64(next-m) / 60
		m = next
	}
	return total, nil
}
