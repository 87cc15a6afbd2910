package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
)

type BlockedRepo struct {
	db *gorm.DB
}

func NewBlockedRepo(db *gorm.DB) *BlockedRepo {
	return &BlockedRepo{db: db}
}

func (r *BlockedRepo) Create(ctx context.Context, b *domain.BlockedSlot) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BlockedRepo) ByID(ctx context.Context, id string) (*domain.BlockedSlot, error) {
	var b domain.BlockedSlot
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BlockedRepo) ByClubRange(ctx context.Context, clubID string, from, to time.Time) ([]domain.BlockedSlot, error) {
	var out []domain.BlockedSlot
	err := r.db.WithContext(ctx).
		Where("club_id = ? AND block_date >= ? AND block_date <= ?", clubID, from, to).
		Order("block_date ASC, start_time ASC").
		Find(&out).Error
	return out, err
}

func (r *BlockedRepo) Update(ctx context.Context, b *domain.BlockedSlot) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BlockedRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.BlockedSlot{}, "id = ?", id).Error
}
