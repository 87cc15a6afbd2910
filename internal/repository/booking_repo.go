package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tonatiuh19/intelipadel-sub001/internal/availability"
	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
	"github.com/tonatiuh19/intelipadel-sub001/internal/timeutil"
)

type BookingRepo struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// CreateIfFree is the final authority on slot conflicts: it runs in a
// transaction, locks any booking rows that would overlap, re-checks the
// other occupancy sources for the date, and only then inserts. The
// advisory availability check upstream may be stale; this one is not.
func (r *BookingRepo) CreateIfFree(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Booking
		err := tx.Model(&domain.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("court_id = ? AND booking_date = ? AND status IN ?",
				b.CourtID, b.BookingDate, []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed}).
			Where("start_time < ? AND end_time > ?", b.EndTime, b.StartTime). // overlap condition
			Take(&existing).Error
		if err == nil {
			return ErrSlotTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		occupied, err := otherSourcesOccupy(tx, b)
		if err != nil {
			return err
		}
		if occupied {
			return ErrSlotTaken
		}

		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		return tx.Create(b).Error
	})
}

// otherSourcesOccupy re-checks blocked slots, events, and classes for
// the booking's date inside the same transaction. Event court lists are
// JSON, so events are matched in Go through the availability engine
// rather than in SQL.
func otherSourcesOccupy(tx *gorm.DB, b *domain.Booking) (bool, error) {
	data := availability.Data{}

	if err := tx.Where("club_id = ? AND block_date = ?", b.ClubID, b.BookingDate).
		Find(&data.BlockedSlots).Error; err != nil {
		return false, err
	}
	if err := tx.Preload("CourtSchedules").
		Where("club_id = ? AND event_date = ?", b.ClubID, b.BookingDate).
		Find(&data.Events).Error; err != nil {
		return false, err
	}
	if err := tx.Where("court_id = ? AND class_date = ?", b.CourtID, b.BookingDate).
		Find(&data.PrivateClasses).Error; err != nil {
		return false, err
	}

	date := timeutil.DateString(b.BookingDate)
	v := availability.Window(&data, b.CourtID, date, b.StartTime, b.EndTime)
	return !v.Available, nil
}

func (r *BookingRepo) ByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) UpdateStatus(ctx context.Context, id string, to domain.BookingStatus) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).Begin()
	if err := tx.First(&b, "id = ?", id).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	b.Status = to
	if err := tx.Save(&b).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	return &b, tx.Commit().Error
}

// ConfirmIfNotProcessed confirms a booking in response to a payment
// event, at most once per event ID, so queue redeliveries are harmless.
func (r *BookingRepo) ConfirmIfNotProcessed(ctx context.Context, bookingID, eventID, eventKey string) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).Begin()

	var seen int64
	if err := tx.Model(&domain.EventConsumed{}).Where("id = ?", eventID).Count(&seen).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if seen > 0 {
		if err := tx.First(&b, "id = ?", bookingID).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		tx.Commit()
		return &b, nil
	}

	if err := tx.First(&b, "id = ?", bookingID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if b.Status != domain.BookingConfirmed {
		b.Status = domain.BookingConfirmed
		if err := tx.Save(&b).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	rec := domain.EventConsumed{ID: eventID, EventKey: eventKey, ProcessedAt: time.Now().UTC()}
	if err := tx.Create(&rec).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	return &b, tx.Commit().Error
}

type BookingFilters struct {
	ClubID  string
	CourtID string
	UserID  string
	Date    string // "YYYY-MM-DD"
	Status  domain.BookingStatus
}

func (r *BookingRepo) List(ctx context.Context, page, size int32, f BookingFilters) ([]domain.Booking, int64, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	qb := r.db.WithContext(ctx).Model(&domain.Booking{})
	if f.ClubID != "" {
		qb = qb.Where("club_id = ?", f.ClubID)
	}
	if f.CourtID != "" {
		qb = qb.Where("court_id = ?", f.CourtID)
	}
	if f.UserID != "" {
		qb = qb.Where("user_id = ?", f.UserID)
	}
	if f.Status != "" {
		qb = qb.Where("status = ?", f.Status)
	}
	if f.Date != "" {
		if d, err := timeutil.ParseDate(f.Date); err == nil {
			qb = qb.Where("booking_date = ?", d)
		}
	}
	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []domain.Booking
	if err := qb.Order("booking_date ASC, start_time ASC").
		Limit(int(size)).Offset(int(page * size)).
		Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
