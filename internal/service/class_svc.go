package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
	"github.com/tonatiuh19/intelipadel-sub001/internal/repository"
	"github.com/tonatiuh19/intelipadel-sub001/internal/timeutil"
)

type ClassSvc struct {
	repo *repository.ClassRepo
}

func NewClassSvc(r *repository.ClassRepo) *ClassSvc {
	return &ClassSvc{repo: r}
}

func (s *ClassSvc) Create(ctx context.Context, in domain.PrivateClass) (*domain.PrivateClass, error) {
	st, ok1 := timeutil.Clock(in.StartTime)
	et, ok2 := timeutil.Clock(in.EndTime)
	if !ok1 || !ok2 || et <= st {
		return nil, fmt.Errorf("%w: bad class window", ErrInvalidInput)
	}
	if err := s.repo.Create(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *ClassSvc) Get(ctx context.Context, id string) (*domain.PrivateClass, error) {
	return s.repo.ByID(ctx, id)
}

func (s *ClassSvc) ByClubRange(ctx context.Context, clubID string, from, to time.Time) ([]domain.PrivateClass, error) {
	return s.repo.ByClubRange(ctx, clubID, from, to)
}

func (s *ClassSvc) Update(ctx context.Context, in domain.PrivateClass) (*domain.PrivateClass, error) {
	if err := s.repo.Update(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *ClassSvc) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
