package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{db: db}
}

// Create writes the event and its per-court schedule rows in one
// transaction.
func (r *EventRepo) Create(ctx context.Context, e *domain.Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	for i := range e.CourtSchedules {
		e.CourtSchedules[i].EventID = e.ID
		if e.CourtSchedules[i].ID == "" {
			e.CourtSchedules[i].ID = uuid.NewString()
		}
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EventRepo) ByID(ctx context.Context, id string) (*domain.Event, error) {
	var e domain.Event
	err := r.db.WithContext(ctx).
		Preload("CourtSchedules").
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepo) ByClubRange(ctx context.Context, clubID string, from, to time.Time) ([]domain.Event, error) {
	var out []domain.Event
	err := r.db.WithContext(ctx).
		Preload("CourtSchedules").
		Where("club_id = ? AND event_date >= ? AND event_date <= ?", clubID, from, to).
		Order("event_date ASC, start_time ASC").
		Find(&out).Error
	return out, err
}

func (r *EventRepo) Update(ctx context.Context, e *domain.Event) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", e.ID).Delete(&domain.EventCourtSchedule{}).Error; err != nil {
			return err
		}
		for i := range e.CourtSchedules {
			e.CourtSchedules[i].EventID = e.ID
			if e.CourtSchedules[i].ID == "" {
				e.CourtSchedules[i].ID = uuid.NewString()
			}
		}
		return tx.Save(e).Error
	})
}

func (r *EventRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&domain.EventCourtSchedule{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Event{}, "id = ?", id).Error
	})
}
