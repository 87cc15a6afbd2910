package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
	"github.com/tonatiuh19/intelipadel-sub001/internal/repository"
	"github.com/tonatiuh19/intelipadel-sub001/internal/timeutil"
)

type EventSvc struct {
	repo *repository.EventRepo
}

func NewEventSvc(r *repository.EventRepo) *EventSvc {
	return &EventSvc{repo: r}
}

type EventInput struct {
	ID             string
	ClubID         string
	Title          string
	Description    string
	Date           string // "YYYY-MM-DD"
	Start          string // "HH:mm"
	End            string
	CourtsUsed     []string
	PricePerPlayer int64
	MaxPlayers     int32
	CourtSchedules []domain.EventCourtSchedule
}

// build validates the input and encodes courts_used as JSON at the
// persistence boundary. Per-court windows must sit inside the event
// window and name a court the event actually uses.
func (s *EventSvc) build(in EventInput) (*domain.Event, error) {
	date, err := timeutil.ParseDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrInvalidInput, in.Date)
	}
	st, ok1 := timeutil.Clock(in.Start)
	et, ok2 := timeutil.Clock(in.End)
	if !ok1 || !ok2 || et <= st {
		return nil, fmt.Errorf("%w: bad event window", ErrInvalidInput)
	}
	used := map[string]bool{}
	for _, id := range in.CourtsUsed {
		used[id] = true
	}
	for _, cs := range in.CourtSchedules {
		cst, ok1 := timeutil.Clock(cs.StartTime)
		cet, ok2 := timeutil.Clock(cs.EndTime)
		if !ok1 || !ok2 || cet <= cst || cst < st || cet > et {
			return nil, fmt.Errorf("%w: court schedule outside event window", ErrInvalidInput)
		}
		if !used[cs.CourtID] {
			return nil, fmt.Errorf("%w: court schedule for unused court %s", ErrInvalidInput, cs.CourtID)
		}
	}
	courts, err := json.Marshal(in.CourtsUsed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return &domain.Event{
		ID:             in.ID,
		ClubID:         in.ClubID,
		Title:          in.Title,
		Description:    in.Description,
		EventDate:      date,
		StartTime:      in.Start,
		EndTime:        in.End,
		CourtsUsed:     datatypes.JSON(courts),
		PricePerPlayer: in.PricePerPlayer,
		MaxPlayers:     in.MaxPlayers,
		CourtSchedules: in.CourtSchedules,
	}, nil
}

func (s *EventSvc) Create(ctx context.Context, in EventInput) (*domain.Event, error) {
	e, err := s.build(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EventSvc) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.ByID(ctx, id)
}

func (s *EventSvc) ByClubRange(ctx context.Context, clubID string, from, to time.Time) ([]domain.Event, error) {
	return s.repo.ByClubRange(ctx, clubID, from, to)
}

func (s *EventSvc) Update(ctx context.Context, in EventInput) (*domain.Event, error) {
	e, err := s.build(in)
	if err != nil {
		return nil, err
	}
	if e.ID == "" {
		return nil, fmt.Errorf("%w: missing event id", ErrInvalidInput)
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EventSvc) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
