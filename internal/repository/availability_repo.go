package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tonatiuh19/intelipadel-sub001/internal/availability"
	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
	"github.com/tonatiuh19/intelipadel-sub001/internal/timeutil"
)

// AvailabilityRepo assembles the availability engine's input: the four
// occupancy sources plus the club's courts for a date range.
type AvailabilityRepo struct {
	db *gorm.DB
}

func NewAvailabilityRepo(db *gorm.DB) *AvailabilityRepo {
	return &AvailabilityRepo{db: db}
}

func (r *AvailabilityRepo) FetchRange(ctx context.Context, clubID string, from, to time.Time) (*availability.Data, error) {
	data := &availability.Data{}
	db := r.db.WithContext(ctx)

	if err := db.Where("club_id = ?", clubID).
		Order("court_no ASC").
		Find(&data.Courts).Error; err != nil {
		return nil, err
	}
	if err := db.Where("club_id = ? AND booking_date >= ? AND booking_date <= ? AND status IN ?",
		clubID, from, to, []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed}).
		Find(&data.Bookings).Error; err != nil {
		return nil, err
	}
	if err := db.Where("club_id = ? AND block_date >= ? AND block_date <= ?", clubID, from, to).
		Find(&data.BlockedSlots).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("CourtSchedules").
		Where("club_id = ? AND event_date >= ? AND event_date <= ?", clubID, from, to).
		Find(&data.Events).Error; err != nil {
		return nil, err
	}
	if err := db.Where("club_id = ? AND class_date >= ? AND class_date <= ?", clubID, from, to).
		Find(&data.PrivateClasses).Error; err != nil {
		return nil, err
	}
	return data, nil
}

// FetchDay is FetchRange for a single "YYYY-MM-DD" date.
func (r *AvailabilityRepo) FetchDay(ctx context.Context, clubID, date string) (*availability.Data, error) {
	d, err := timeutil.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return r.FetchRange(ctx, clubID, d, d)
}
