package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
)

type ClassRepo struct {
	db *gorm.DB
}

func NewClassRepo(db *gorm.DB) *ClassRepo {
	return &ClassRepo{db: db}
}

func (r *ClassRepo) Create(ctx context.Context, c *domain.PrivateClass) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClassRepo) ByID(ctx context.Context, id string) (*domain.PrivateClass, error) {
	var c domain.PrivateClass
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClassRepo) ByClubRange(ctx context.Context, clubID string, from, to time.Time) ([]domain.PrivateClass, error) {
	var out []domain.PrivateClass
	err := r.db.WithContext(ctx).
		Where("club_id = ? AND class_date >= ? AND class_date <= ?", clubID, from, to).
		Order("class_date ASC, start_time ASC").
		Find(&out).Error
	return out, err
}

func (r *ClassRepo) Update(ctx context.Context, c *domain.PrivateClass) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClassRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.PrivateClass{}, "id = ?", id).Error
}
