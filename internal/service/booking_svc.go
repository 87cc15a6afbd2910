package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tonatiuh19/intelipadel-sub001/internal/availability"
	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
	"github.com/tonatiuh19/intelipadel-sub001/internal/events"
	"github.com/tonatiuh19/intelipadel-sub001/internal/pricing"
	"github.com/tonatiuh19/intelipadel-sub001/internal/repository"
	"github.com/tonatiuh19/intelipadel-sub001/internal/timeutil"
)

var (
	// ErrInvalidInput marks caller mistakes (bad date, inverted window,
	// unknown court). Distinct from slot conflicts by contract.
	ErrInvalidInput = errors.New("invalid booking input")
	// ErrSlotUnavailable means the slot is occupied, whether the
	// advisory check or the transactional commit caught it.
	ErrSlotUnavailable = errors.New("slot no longer available")
)

type BookingStore interface {
	CreateIfFree(ctx context.Context, b *domain.Booking) error
	ByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, to domain.BookingStatus) (*domain.Booking, error)
	List(ctx context.Context, page, size int32, f repository.BookingFilters) ([]domain.Booking, int64, error)
}

type AvailabilityFetcher interface {
	FetchDay(ctx context.Context, clubID, date string) (*availability.Data, error)
}

type RuleReader interface {
	ActiveByClub(ctx context.Context, clubID string) ([]domain.PriceRule, error)
}

type ClubReader interface {
	ByID(ctx context.Context, id string) (*domain.Club, error)
}

type CourtReader interface {
	ByID(ctx context.Context, id string) (*domain.Court, error)
}

type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type BookingSvc struct {
	repo   BookingStore
	avail  AvailabilityFetcher
	rules  RuleReader
	clubs  ClubReader
	courts CourtReader
	pub    Publisher
}

func NewBookingSvc(repo BookingStore, avail AvailabilityFetcher, rules RuleReader, clubs ClubReader, courts CourtReader, pub Publisher) *BookingSvc {
	return &BookingSvc{repo: repo, avail: avail, rules: rules, clubs: clubs, courts: courts, pub: pub}
}

type CreateBookingInput struct {
	ClubID  string
	CourtID string
	UserID  string
	Date    string // "YYYY-MM-DD"
	Start   string // "HH:mm"
	End     string
}

// Create runs the full pipeline: validate, advisory availability check,
// per-hour price quote, then the repository's atomic commit. The
// advisory pass can be optimistic on stale data; the commit's
// ErrSlotTaken is the one conflict that can still come back.
func (s *BookingSvc) Create(ctx context.Context, in CreateBookingInput) (*domain.Booking, error) {
	bookingDate, err := timeutil.ParseDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrInvalidInput, in.Date)
	}
	st, ok1 := timeutil.Clock(in.Start)
	et, ok2 := timeutil.Clock(in.End)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("%w: bad time window", ErrInvalidInput)
	}
	if et <= st {
		return nil, fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}

	court, err := s.courts.ByID(ctx, in.CourtID)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown court", ErrInvalidInput)
	}
	if court.ClubID != in.ClubID || !court.IsActive {
		return nil, fmt.Errorf("%w: court not bookable for this club", ErrInvalidInput)
	}
	club, err := s.clubs.ByID(ctx, in.ClubID)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown club", ErrInvalidInput)
	}

	data, err := s.avail.FetchDay(ctx, in.ClubID, in.Date)
	if err != nil {
		return nil, err
	}
	if v := availability.Window(data, in.CourtID, in.Date, in.Start, in.End); !v.Available {
		return nil, fmt.Errorf("%w (%s)", ErrSlotUnavailable, v.Reason)
	}

	rules, err := s.rules.ActiveByClub(ctx, in.ClubID)
	if err != nil {
		return nil, err
	}
	total, err := pricing.QuoteRange(club.BasePricePerHour, rules, in.CourtID, in.Date, in.Start, in.End)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	b := &domain.Booking{
		ClubID:      in.ClubID,
		CourtID:     in.CourtID,
		UserID:      in.UserID,
		BookingDate: bookingDate,
		StartTime:   in.Start,
		EndTime:     in.End,
		PriceTotal:  total,
		Currency:    club.Currency,
		Status:      domain.BookingPending,
	}
	if err := s.repo.CreateIfFree(ctx, b); err != nil {
		return nil, err
	}

	_ = s.pub.PublishJSON(ctx, events.RKBookingCreated, events.BookingCreated{
		BookingID: b.ID,
		ClubID:    b.ClubID,
		CourtID:   b.CourtID,
		UserID:    b.UserID,
		Date:      in.Date,
		Start:     b.StartTime,
		End:       b.EndTime,
		Price:     b.PriceTotal,
		Currency:  b.Currency,
	})
	return b, nil
}

func (s *BookingSvc) Confirm(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.repo.UpdateStatus(ctx, id, domain.BookingConfirmed)
	if err != nil {
		return nil, err
	}
	_ = s.pub.PublishJSON(ctx, events.RKBookingConfirmed, events.BookingSimple{BookingID: b.ID})
	return b, nil
}

func (s *BookingSvc) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.repo.UpdateStatus(ctx, id, domain.BookingCancelled)
	if err != nil {
		return nil, err
	}
	_ = s.pub.PublishJSON(ctx, events.RKBookingCancelled, events.BookingSimple{BookingID: b.ID})
	return b, nil
}

func (s *BookingSvc) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.repo.ByID(ctx, id)
}

func (s *BookingSvc) List(ctx context.Context, page, size int32, f repository.BookingFilters) ([]domain.Booking, int64, error) {
	return s.repo.List(ctx, page, size, f)
}
