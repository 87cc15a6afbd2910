package service

import (
	"context"
	"fmt"

	"github.com/tonatiuh19/intelipadel-sub001/internal/availability"
	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
	"github.com/tonatiuh19/intelipadel-sub001/internal/timeutil"
)

type ScheduleReader interface {
	ScheduleForDay(ctx context.Context, clubID string, dayOfWeek int) (*domain.ClubSchedule, error)
}

type AvailabilitySvc struct {
	data   AvailabilityFetcher
	scheds ScheduleReader
}

func NewAvailabilitySvc(data AvailabilityFetcher, scheds ScheduleReader) *AvailabilitySvc {
	return &AvailabilitySvc{data: data, scheds: scheds}
}

// Day renders the hourly grid for one club date. A non-empty courtID
// narrows the grid to that court.
func (s *AvailabilitySvc) Day(ctx context.Context, clubID, date, courtID string) ([]availability.SlotStatus, error) {
	wd, ok := timeutil.Weekday(date)
	if !ok {
		return nil, fmt.Errorf("%w: bad date %q", ErrInvalidInput, date)
	}
	data, err := s.data.FetchDay(ctx, clubID, date)
	if err != nil {
		return nil, err
	}
	sched, err := s.scheds.ScheduleForDay(ctx, clubID, wd)
	if err != nil {
		return nil, err
	}
	slots := availability.DaySlots(data, date, sched)
	if courtID == "" {
		return slots, nil
	}
	var out []availability.SlotStatus
	for _, slot := range slots {
		if slot.CourtID == courtID {
			out = append(out, slot)
		}
	}
	return out, nil
}

// Probe resolves a single (court, date, time) slot.
func (s *AvailabilitySvc) Probe(ctx context.Context, clubID, courtID, date, clock string) (availability.Verdict, error) {
	if _, err := timeutil.ParseDate(date); err != nil {
		return availability.Verdict{}, fmt.Errorf("%w: bad date %q", ErrInvalidInput, date)
	}
	data, err := s.data.FetchDay(ctx, clubID, date)
	if err != nil {
		return availability.Verdict{}, err
	}
	return availability.Slot(data, courtID, date, clock), nil
}
