package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSlotNilDataIsUnavailableUnknown(t *testing.T) {
	v := Slot(nil, "court-3", "2024-06-01", "10:00")
	assert.False(t, v.Available)
	assert.Equal(t, ReasonUnknown, v.Reason)
}

func TestSlotBadClockIsUnavailableUnknown(t *testing.T) {
	v := Slot(&Data{}, "court-3", "2024-06-01", "later")
	assert.False(t, v.Available)
	assert.Equal(t, ReasonUnknown, v.Reason)
}

// Booking on court 3, 2024-06-01, 10:00-11:00.
func TestSlotBookingHalfOpenBoundary(t *testing.T) {
	data := &Data{Bookings: []domain.Booking{{
		ID:          "b1",
		CourtID:     "court-3",
		BookingDate: date("2024-06-01"),
		StartTime:   "10:00",
		EndTime:     "11:00",
		Status:      domain.BookingConfirmed,
	}}}

	v := Slot(data, "court-3", "2024-06-01", "10:30")
	assert.False(t, v.Available)
	assert.Equal(t, ReasonBooked, v.Reason)

	assert.False(t, Slot(data, "court-3", "2024-06-01", "10:00").Available)
	assert.True(t, Slot(data, "court-3", "2024-06-01", "11:00").Available, "end boundary is free")
	assert.True(t, Slot(data, "court-4", "2024-06-01", "10:30").Available, "other court is free")
	assert.True(t, Slot(data, "court-3", "2024-06-02", "10:30").Available, "other day is free")
}

func TestSlotCancelledBookingDoesNotOccupy(t *testing.T) {
	data := &Data{Bookings: []domain.Booking{{
		ID:          "b1",
		CourtID:     "court-3",
		BookingDate: date("2024-06-01"),
		StartTime:   "10:00",
		EndTime:     "11:00",
		Status:      domain.BookingCancelled,
	}}}
	assert.True(t, Slot(data, "court-3", "2024-06-01", "10:30").Available)
}

func TestSlotAllDayBlock(t *testing.T) {
	data := &Data{BlockedSlots: []domain.BlockedSlot{{
		ID:        "bl1",
		BlockDate: date("2024-06-01"),
		IsAllDay:  true,
		// Bogus window fields are irrelevant for an all-day block.
		StartTime: "99:99",
		EndTime:   "",
	}}}
	for _, clock := range []string{"06:00", "12:00", "21:00"} {
		v := Slot(data, "court-1", "2024-06-01", clock)
		assert.False(t, v.Available, clock)
		assert.Equal(t, ReasonBlocked, v.Reason)
	}
	assert.True(t, Slot(data, "court-1", "2024-06-02", "12:00").Available)
}

func TestSlotBlockCourtScoping(t *testing.T) {
	court1 := "court-1"
	data := &Data{BlockedSlots: []domain.BlockedSlot{{
		ID:        "bl1",
		CourtID:   &court1,
		BlockDate: date("2024-06-01"),
		StartTime: "09:00",
		EndTime:   "12:00",
	}}}
	assert.False(t, Slot(data, "court-1", "2024-06-01", "09:00").Available)
	assert.True(t, Slot(data, "court-1", "2024-06-01", "12:00").Available)
	assert.True(t, Slot(data, "court-2", "2024-06-01", "10:00").Available, "block pinned to court-1")

	// Nil court blocks everything.
	data.BlockedSlots[0].CourtID = nil
	assert.False(t, Slot(data, "court-2", "2024-06-01", "10:00").Available)
}

func TestSlotEventWindows(t *testing.T) {
	data := &Data{Events: []domain.Event{{
		ID:         "e1",
		EventDate:  date("2024-06-01"),
		StartTime:  "09:00",
		EndTime:    "17:00",
		CourtsUsed: datatypes.JSON(`["court-1","court-2"]`),
		CourtSchedules: []domain.EventCourtSchedule{
			{ID: "ecs1", EventID: "e1", CourtID: "court-2", StartTime: "09:00", EndTime: "11:00"},
		},
	}}}

	// court-1 follows the event window.
	assert.False(t, Slot(data, "court-1", "2024-06-01", "12:00").Available)
	assert.Equal(t, ReasonEvent, Slot(data, "court-1", "2024-06-01", "12:00").Reason)

	// court-2 has a narrower per-court window: free outside it even
	// though the event itself is still running.
	assert.False(t, Slot(data, "court-2", "2024-06-01", "10:00").Available)
	assert.True(t, Slot(data, "court-2", "2024-06-01", "12:00").Available)

	// court-3 is not in courts_used at all.
	assert.True(t, Slot(data, "court-3", "2024-06-01", "12:00").Available)
}

func TestSlotEventBadCourtsJSONTreatedAsEmpty(t *testing.T) {
	data := &Data{Events: []domain.Event{{
		ID:         "e1",
		EventDate:  date("2024-06-01"),
		StartTime:  "09:00",
		EndTime:    "17:00",
		CourtsUsed: datatypes.JSON(`{broken`),
	}}}
	assert.True(t, Slot(data, "court-1", "2024-06-01", "12:00").Available)
}

func TestSlotPrivateClass(t *testing.T) {
	data := &Data{PrivateClasses: []domain.PrivateClass{{
		ID:        "c1",
		CourtID:   "court-1",
		ClassDate: date("2024-06-01"),
		StartTime: "08:00",
		EndTime:   "09:30",
	}}}
	v := Slot(data, "court-1", "2024-06-01", "09:00")
	assert.False(t, v.Available)
	assert.Equal(t, ReasonClass, v.Reason)
	assert.True(t, Slot(data, "court-1", "2024-06-01", "09:30").Available)
}

// Blocked wins over booked when both cover the slot.
func TestSlotReasonOrder(t *testing.T) {
	data := &Data{
		BlockedSlots: []domain.BlockedSlot{{
			ID: "bl1", BlockDate: date("2024-06-01"), IsAllDay: true,
		}},
		Bookings: []domain.Booking{{
			ID: "b1", CourtID: "court-1", BookingDate: date("2024-06-01"),
			StartTime: "10:00", EndTime: "11:00", Status: domain.BookingConfirmed,
		}},
	}
	assert.Equal(t, ReasonBlocked, Slot(data, "court-1", "2024-06-01", "10:30").Reason)
}

func TestDaySlotsDefaultWindow(t *testing.T) {
	data := &Data{
		Courts: []domain.Court{
			{ID: "court-1", IsActive: true},
			{ID: "court-2", IsActive: false},
		},
		Bookings: []domain.Booking{{
			ID: "b1", CourtID: "court-1", BookingDate: date("2024-06-01"),
			StartTime: "10:00", EndTime: "12:00", Status: domain.BookingPending,
		}},
	}

	slots := DaySlots(data, "2024-06-01", nil)
	assert.Len(t, slots, 16, "06:00-22:00 hourly for the one active court")

	byTime := map[string]SlotStatus{}
	for _, s := range slots {
		assert.Equal(t, "court-1", s.CourtID)
		byTime[s.Time] = s
	}
	assert.False(t, byTime["10:00"].Available)
	assert.False(t, byTime["11:00"].Available)
	assert.True(t, byTime["12:00"].Available)
}

func TestDaySlotsScheduleWindow(t *testing.T) {
	data := &Data{Courts: []domain.Court{{ID: "court-1", IsActive: true}}}

	sched := &domain.ClubSchedule{OpensAt: "08:00", ClosesAt: "20:00"}
	slots := DaySlots(data, "2024-06-01", sched)
	assert.Len(t, slots, 12)
	assert.Equal(t, "08:00", slots[0].Time)
	assert.Equal(t, "19:00", slots[len(slots)-1].Time)

	sched.IsClosed = true
	assert.Empty(t, DaySlots(data, "2024-06-01", sched))
}

// A class shorter than an hour, starting off the hourly grid, must
// still fail a window that spans it.
func TestWindowCatchesSubHourClass(t *testing.T) {
	data := &Data{PrivateClasses: []domain.PrivateClass{{
		ID: "cl-1", CourtID: "court-3",
		ClassDate: date("2024-06-01"), StartTime: "10:30", EndTime: "11:00",
	}}}

	v := Window(data, "court-3", "2024-06-01", "10:00", "12:00")
	assert.False(t, v.Available)
	assert.Equal(t, ReasonClass, v.Reason)

	// Hourly sampling of the same window never lands inside the class.
	assert.True(t, Slot(data, "court-3", "2024-06-01", "10:00").Available)
	assert.True(t, Slot(data, "court-3", "2024-06-01", "11:00").Available)
}

func TestWindowHalfOpenAdjacency(t *testing.T) {
	data := &Data{Bookings: []domain.Booking{{
		ID: "b1", CourtID: "court-3", BookingDate: date("2024-06-01"),
		StartTime: "11:00", EndTime: "12:00", Status: domain.BookingConfirmed,
	}}}

	assert.True(t, Window(data, "court-3", "2024-06-01", "10:00", "11:00").Available)
	assert.True(t, Window(data, "court-3", "2024-06-01", "12:00", "13:00").Available)

	v := Window(data, "court-3", "2024-06-01", "10:30", "11:30")
	assert.False(t, v.Available)
	assert.Equal(t, ReasonBooked, v.Reason)
}

func TestWindowBadInput(t *testing.T) {
	v := Window(nil, "court-3", "2024-06-01", "10:00", "11:00")
	assert.False(t, v.Available)
	assert.Equal(t, ReasonUnknown, v.Reason)

	v = Window(&Data{}, "court-3", "2024-06-01", "11:00", "10:00")
	assert.False(t, v.Available)
	assert.Equal(t, ReasonUnknown, v.Reason)
}
