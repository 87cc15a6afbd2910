package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
)

type ClubRepo struct {
	db *gorm.DB
}

func NewClubRepo(db *gorm.DB) *ClubRepo {
	return &ClubRepo{db: db}
}

func (r *ClubRepo) Create(ctx context.Context, c *domain.Club) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClubRepo) ByID(ctx context.Context, id string) (*domain.Club, error) {
	var c domain.Club
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClubRepo) List(ctx context.Context, page, size int32, q string) ([]domain.Club, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	qb := r.db.WithContext(ctx).Model(&domain.Club{})
	if q != "" {
		qb = qb.Where("name ILIKE ?", "%"+q+"%")
	}
	var out []domain.Club
	if err := qb.Order("name ASC").Limit(int(size)).Offset(int(page * size)).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ClubRepo) Update(ctx context.Context, c *domain.Club) error {
	return r.db.WithContext(ctx).Model(&domain.Club{}).Where("id = ?", c.ID).Updates(c).Error
}

func (r *ClubRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Club{}, "id = ?", id).Error
}

// UpsertSchedule writes the opening window for one weekday, replacing
// the existing row for that (club, weekday) if any.
func (r *ClubRepo) UpsertSchedule(ctx context.Context, s *domain.ClubSchedule) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "club_id"}, {Name: "day_of_week"}},
		DoUpdates: clause.AssignmentColumns([]string{"opens_at", "closes_at", "is_closed"}),
	}).Create(s).Error
}

func (r *ClubRepo) Schedules(ctx context.Context, clubID string) ([]domain.ClubSchedule, error) {
	var out []domain.ClubSchedule
	err := r.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("day_of_week ASC").
		Find(&out).Error
	return out, err
}

// ScheduleForDay returns the row for one weekday, or nil when the club
// has not configured that day.
func (r *ClubRepo) ScheduleForDay(ctx context.Context, clubID string, dayOfWeek int) (*domain.ClubSchedule, error) {
	var s domain.ClubSchedule
	err := r.db.WithContext(ctx).
		Where("club_id = ? AND day_of_week = ?", clubID, dayOfWeek).
		First(&s).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
