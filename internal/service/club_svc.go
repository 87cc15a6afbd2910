package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
	"github.com/tonatiuh19/intelipadel-sub001/internal/repository"
	"github.com/tonatiuh19/intelipadel-sub001/internal/timeutil"
)

// ClubSvc covers club records, weekly schedules, and blocked slots.
type ClubSvc struct {
	clubs   *repository.ClubRepo
	blocked *repository.BlockedRepo
}

func NewClubSvc(clubs *repository.ClubRepo, blocked *repository.BlockedRepo) *ClubSvc {
	return &ClubSvc{clubs: clubs, blocked: blocked}
}

func (s *ClubSvc) Create(ctx context.Context, in domain.Club) (*domain.Club, error) {
	if err := s.clubs.Create(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *ClubSvc) Get(ctx context.Context, id string) (*domain.Club, error) {
	return s.clubs.ByID(ctx, id)
}

func (s *ClubSvc) List(ctx context.Context, page, size int32, q string) ([]domain.Club, error) {
	return s.clubs.List(ctx, page, size, q)
}

func (s *ClubSvc) Update(ctx context.Context, in domain.Club) (*domain.Club, error) {
	if err := s.clubs.Update(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *ClubSvc) Delete(ctx context.Context, id string) error {
	return s.clubs.Delete(ctx, id)
}

func (s *ClubSvc) UpsertSchedule(ctx context.Context, in domain.ClubSchedule) (*domain.ClubSchedule, error) {
	if in.DayOfWeek < 0 || in.DayOfWeek > 6 {
		return nil, fmt.Errorf("%w: day_of_week out of range", ErrInvalidInput)
	}
	if !in.IsClosed && (!timeutil.ValidClock(in.OpensAt) || !timeutil.ValidClock(in.ClosesAt)) {
		return nil, fmt.Errorf("%w: bad opening window", ErrInvalidInput)
	}
	if err := s.clubs.UpsertSchedule(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *ClubSvc) Schedules(ctx context.Context, clubID string) ([]domain.ClubSchedule, error) {
	return s.clubs.Schedules(ctx, clubID)
}

func (s *ClubSvc) CreateBlock(ctx context.Context, in domain.BlockedSlot) (*domain.BlockedSlot, error) {
	if !in.IsAllDay && (!timeutil.ValidClock(in.StartTime) || !timeutil.ValidClock(in.EndTime)) {
		return nil, fmt.Errorf("%w: bad block window", ErrInvalidInput)
	}
	if err := s.blocked.Create(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *ClubSvc) ListBlocks(ctx context.Context, clubID string, from, to time.Time) ([]domain.BlockedSlot, error) {
	return s.blocked.ByClubRange(ctx, clubID, from, to)
}

func (s *ClubSvc) UpdateBlock(ctx context.Context, in domain.BlockedSlot) (*domain.BlockedSlot, error) {
	if err := s.blocked.Update(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *ClubSvc) DeleteBlock(ctx context.Context, id string) error {
	return s.blocked.Delete(ctx, id)
}
