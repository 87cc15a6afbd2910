package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
)

type CourtRepo struct {
	db *gorm.DB
}

func NewCourtRepo(db *gorm.DB) *CourtRepo {
	return &CourtRepo{db: db}
}

func (r *CourtRepo) Create(ctx context.Context, c *domain.Court) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CourtRepo) ByID(ctx context.Context, id string) (*domain.Court, error) {
	var c domain.Court
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourtRepo) ByClub(ctx context.Context, clubID string, activeOnly bool) ([]domain.Court, error) {
	qb := r.db.WithContext(ctx).Where("club_id = ?", clubID)
	if activeOnly {
		qb = qb.Where("is_active = ?", true)
	}
	var out []domain.Court
	if err := qb.Order("court_no ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CourtRepo) Update(ctx context.Context, c *domain.Court) error {
	return r.db.WithContext(ctx).Model(&domain.Court{}).Where("id = ?", c.ID).Updates(c).Error
}

func (r *CourtRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Court{}, "id = ?", id).Error
}
