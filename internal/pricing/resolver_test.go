package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
)

func datePtr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func weekendRule(price int64, priority int) domain.PriceRule {
	return domain.PriceRule{
		ID:           "r-weekend",
		RuleType:     domain.RuleDayOfWeek,
		DaysOfWeek:   datatypes.JSON(`[0,6]`),
		PricePerHour: price,
		Priority:     priority,
		IsActive:     true,
	}
}

func eveningRule(price int64, priority int) domain.PriceRule {
	return domain.PriceRule{
		ID:           "r-evening",
		RuleType:     domain.RuleTimeOfDay,
		StartTime:    "18:00",
		EndTime:      "22:00",
		PricePerHour: price,
		Priority:     priority,
		IsActive:     true,
	}
}

// Club base $45; weekend rule $60 prio 1; evening rule $70 prio 2.
func TestResolveWeekendEveningScenario(t *testing.T) {
	rules := []domain.PriceRule{weekendRule(6000, 1), eveningRule(7000, 2)}

	tests := []struct {
		name string
		date string // 2024-06-01 is a Saturday, 2024-06-04 a Tuesday
		time string
		want int64
	}{
		{"saturday evening takes higher priority", "2024-06-01", "19:00", 7000},
		{"saturday morning takes weekend rate", "2024-06-01", "10:00", 6000},
		{"tuesday evening takes evening rate", "2024-06-04", "19:00", 7000},
		{"tuesday morning falls back to base", "2024-06-04", "10:00", 4500},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(4500, rules, Query{Date: tc.date, Time: tc.time})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveHigherPriorityWins(t *testing.T) {
	low := eveningRule(5000, 1)
	high := eveningRule(9000, 5)
	got := Resolve(4500, []domain.PriceRule{low, high}, Query{Date: "2024-06-04", Time: "19:00"})
	assert.Equal(t, int64(9000), got)
}

func TestResolveEmptyRuleSetReturnsBase(t *testing.T) {
	assert.Equal(t, int64(4500), Resolve(4500, nil, Query{Date: "2024-06-01", Time: "10:00"}))
}

func TestResolveInactiveRuleNeverMatches(t *testing.T) {
	r := eveningRule(7000, 2)
	r.IsActive = false
	got := Resolve(4500, []domain.PriceRule{r}, Query{Date: "2024-06-04", Time: "19:00"})
	assert.Equal(t, int64(4500), got)
}

func TestResolveCourtFilter(t *testing.T) {
	court2 := "court-2"
	r := eveningRule(7000, 2)
	r.CourtID = &court2

	// Rule pinned to another court does not apply.
	got := Resolve(4500, []domain.PriceRule{r}, Query{CourtID: "court-1", Date: "2024-06-04", Time: "19:00"})
	assert.Equal(t, int64(4500), got)

	// Same court applies; unspecified court also passes the filter.
	got = Resolve(4500, []domain.PriceRule{r}, Query{CourtID: "court-2", Date: "2024-06-04", Time: "19:00"})
	assert.Equal(t, int64(7000), got)
	got = Resolve(4500, []domain.PriceRule{r}, Query{Date: "2024-06-04", Time: "19:00"})
	assert.Equal(t, int64(7000), got)
}

func TestResolveTieBreaks(t *testing.T) {
	court1 := "court-1"

	clubWide := eveningRule(7000, 3)
	pinned := eveningRule(8000, 3)
	pinned.ID = "r-evening-court1"
	pinned.CourtID = &court1

	// Equal priority: court-specific beats club-wide.
	got := Resolve(4500, []domain.PriceRule{clubWide, pinned}, Query{CourtID: "court-1", Date: "2024-06-04", Time: "19:00"})
	assert.Equal(t, int64(8000), got)

	// Equal priority, both club-wide: special_date outranks time_of_day.
	special := domain.PriceRule{
		ID:           "r-open-day",
		RuleType:     domain.RuleSpecialDate,
		StartDate:    datePtr("2024-06-04"),
		EndDate:      datePtr("2024-06-04"),
		PricePerHour: 3000,
		Priority:     3,
		IsActive:     true,
	}
	got = Resolve(4500, []domain.PriceRule{clubWide, special}, Query{Date: "2024-06-04", Time: "19:00"})
	assert.Equal(t, int64(3000), got)
}

func TestResolveSeasonalInclusiveBounds(t *testing.T) {
	r := domain.PriceRule{
		ID:           "r-summer",
		RuleType:     domain.RuleSeasonal,
		StartDate:    datePtr("2024-06-01"),
		EndDate:      datePtr("2024-08-31"),
		PricePerHour: 5500,
		Priority:     1,
		IsActive:     true,
	}
	rules := []domain.PriceRule{r}

	assert.Equal(t, int64(5500), Resolve(4500, rules, Query{Date: "2024-06-01", Time: "10:00"}))
	assert.Equal(t, int64(5500), Resolve(4500, rules, Query{Date: "2024-08-31", Time: "10:00"}))
	assert.Equal(t, int64(4500), Resolve(4500, rules, Query{Date: "2024-09-01", Time: "10:00"}))
}

func TestResolveSpecialDateTimeWindow(t *testing.T) {
	r := domain.PriceRule{
		ID:           "r-tournament",
		RuleType:     domain.RuleSpecialDate,
		StartDate:    datePtr("2024-07-14"),
		EndDate:      datePtr("2024-07-14"),
		StartTime:    "09:00",
		EndTime:      "13:00",
		PricePerHour: 9000,
		Priority:     9,
		IsActive:     true,
	}
	rules := []domain.PriceRule{r}

	assert.Equal(t, int64(9000), Resolve(4500, rules, Query{Date: "2024-07-14", Time: "09:00"}))
	assert.Equal(t, int64(4500), Resolve(4500, rules, Query{Date: "2024-07-14", Time: "13:00"}))
	assert.Equal(t, int64(4500), Resolve(4500, rules, Query{Date: "2024-07-15", Time: "10:00"}))

	// Without a time window the whole day matches.
	r.StartTime, r.EndTime = "", ""
	assert.Equal(t, int64(9000), Resolve(4500, []domain.PriceRule{r}, Query{Date: "2024-07-14", Time: "22:00"}))
}

func TestResolveMalformedRulesAreSkipped(t *testing.T) {
	inverted := eveningRule(7000, 2)
	inverted.StartTime, inverted.EndTime = "22:00", "18:00" // never matches, not wrapped

	missingDates := domain.PriceRule{
		ID:           "r-broken-season",
		RuleType:     domain.RuleSeasonal,
		PricePerHour: 100,
		Priority:     99,
		IsActive:     true,
	}
	badDays := domain.PriceRule{
		ID:           "r-broken-days",
		RuleType:     domain.RuleDayOfWeek,
		DaysOfWeek:   datatypes.JSON(`not json`),
		PricePerHour: 100,
		Priority:     99,
		IsActive:     true,
	}

	got := Resolve(4500, []domain.PriceRule{inverted, missingDates, badDays}, Query{Date: "2024-06-01", Time: "19:00"})
	assert.Equal(t, int64(4500), got)
}

func TestQuoteRange(t *testing.T) {
	rules := []domain.PriceRule{eveningRule(7000, 2)}

	// 17:00-19:00 spans the 18:00 boundary: one base hour + one evening hour.
	total, err := QuoteRange(4500, rules, "", "2024-06-04", "17:00", "19:00")
	require.NoError(t, err)
	assert.Equal(t, int64(4500+7000), total)

	// Trailing half hour is pro-rated.
	total, err = QuoteRange(4500, nil, "", "2024-06-04", "10:00", "11:30")
	require.NoError(t, err)
	assert.Equal(t, int64(4500+2250), total)

	_, err = QuoteRange(4500, nil, "", "2024-06-04", "11:00", "11:00")
	assert.ErrorIs(t, err, ErrBadQuery)
	_, err = QuoteRange(4500, nil, "", "not-a-date", "10:00", "11:00")
	assert.ErrorIs(t, err, ErrBadQuery)
}

// A window starting mid-hour splits at the clock-hour boundary, so the
// evening rate applies from 18:00 sharp, not from 18:30.
func TestQuoteRangeMisalignedStart(t *testing.T) {
	rules := []domain.PriceRule{eveningRule(7000, 2)}

	// 17:30-19:30: half a base hour, then ninety evening minutes.
	total, err := QuoteRange(4500, rules, "", "2024-06-04", "17:30", "19:30")
	require.NoError(t, err)
	assert.Equal(t, int64(2250+7000+3500), total)
}
