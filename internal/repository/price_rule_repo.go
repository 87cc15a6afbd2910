package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
)

type PriceRuleRepo struct {
	db *gorm.DB
}

func NewPriceRuleRepo(db *gorm.DB) *PriceRuleRepo {
	return &PriceRuleRepo{db: db}
}

func (r *PriceRuleRepo) Create(ctx context.Context, p *domain.PriceRule) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PriceRuleRepo) ByID(ctx context.Context, id string) (*domain.PriceRule, error) {
	var p domain.PriceRule
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PriceRuleRepo) ByClub(ctx context.Context, clubID string) ([]domain.PriceRule, error) {
	var out []domain.PriceRule
	err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("priority DESC, rule_name ASC").
		Find(&out).Error
	return out, err
}

// ActiveByClub feeds the price resolver: only rules that can ever match.
func (r *PriceRuleRepo) ActiveByClub(ctx context.Context, clubID string) ([]domain.PriceRule, error) {
	var out []domain.PriceRule
	err := r.db.WithContext(ctx).
		Where("club_id = ? AND is_active = ?", clubID, true).
		Find(&out).Error
	return out, err
}

func (r *PriceRuleRepo) Update(ctx context.Context, p *domain.PriceRule) error {
	// Save, not Updates: admins clear fields (court pin, date range)
	// when retargeting a rule, and Updates would skip the zero values.
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PriceRuleRepo) SetActive(ctx context.Context, id string, active bool) error {
	return r.db.WithContext(ctx).
		Model(&domain.PriceRule{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *PriceRuleRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.PriceRule{}, "id = ?", id).Error
}
