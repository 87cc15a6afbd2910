package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/tonatiuh19/intelipadel-sub001/internal/availability"
	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
	"github.com/tonatiuh19/intelipadel-sub001/internal/events"
	"github.com/tonatiuh19/intelipadel-sub001/internal/repository"
)

type fakeBookingStore struct {
	created   *domain.Booking
	createErr error
}

func (f *fakeBookingStore) CreateIfFree(_ context.Context, b *domain.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = "bk-1"
	f.created = b
	return nil
}

func (f *fakeBookingStore) ByID(context.Context, string) (*domain.Booking, error) {
	return f.created, nil
}

func (f *fakeBookingStore) UpdateStatus(_ context.Context, _ string, to domain.BookingStatus) (*domain.Booking, error) {
	f.created.Status = to
	return f.created, nil
}

func (f *fakeBookingStore) List(context.Context, int32, int32, repository.BookingFilters) ([]domain.Booking, int64, error) {
	return nil, 0, nil
}

type fakeAvail struct{ data *availability.Data }

func (f *fakeAvail) FetchDay(context.Context, string, string) (*availability.Data, error) {
	return f.data, nil
}

type fakeRules struct{ rules []domain.PriceRule }

func (f *fakeRules) ActiveByClub(context.Context, string) ([]domain.PriceRule, error) {
	return f.rules, nil
}

type fakeClubs struct{ club domain.Club }

func (f *fakeClubs) ByID(context.Context, string) (*domain.Club, error) {
	c := f.club
	return &c, nil
}

type fakeCourts struct{ court domain.Court }

func (f *fakeCourts) ByID(context.Context, string) (*domain.Court, error) {
	c := f.court
	return &c, nil
}

type fakePub struct {
	keys     []string
	payloads []any
}

func (f *fakePub) PublishJSON(_ context.Context, key string, v any) error {
	f.keys = append(f.keys, key)
	f.payloads = append(f.payloads, v)
	return nil
}

func newSvcUnderTest(store *fakeBookingStore, data *availability.Data, rules []domain.PriceRule) (*BookingSvc, *fakePub) {
	pub := &fakePub{}
	svc := NewBookingSvc(
		store,
		&fakeAvail{data: data},
		&fakeRules{rules: rules},
		&fakeClubs{club: domain.Club{ID: "club-1", BasePricePerHour: 4500, Currency: "USD"}},
		&fakeCourts{court: domain.Court{ID: "court-1", ClubID: "club-1", IsActive: true}},
		pub,
	)
	return svc, pub
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		ClubID:  "club-1",
		CourtID: "court-1",
		UserID:  "user-1",
		Date:    "2024-06-01", // Saturday
		Start:   "17:00",
		End:     "19:00",
	}
}

func TestCreateBookingHappyPath(t *testing.T) {
	store := &fakeBookingStore{}
	rules := []domain.PriceRule{{
		ID: "r-evening", RuleType: domain.RuleTimeOfDay,
		StartTime: "18:00", EndTime: "22:00",
		PricePerHour: 7000, Priority: 2, IsActive: true,
	}}
	svc, pub := newSvcUnderTest(store, &availability.Data{}, rules)

	b, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "bk-1", b.ID)
	assert.Equal(t, domain.BookingPending, b.Status)
	// 17:00 base hour + 18:00 evening hour.
	assert.Equal(t, int64(4500+7000), b.PriceTotal)
	assert.Equal(t, "USD", b.Currency)

	require.Equal(t, []string{events.RKBookingCreated}, pub.keys)
	created, ok := pub.payloads[0].(events.BookingCreated)
	require.True(t, ok)
	assert.Equal(t, "bk-1", created.BookingID)
	assert.Equal(t, "2024-06-01", created.Date)
}

func TestCreateBookingValidation(t *testing.T) {
	svc, pub := newSvcUnderTest(&fakeBookingStore{}, &availability.Data{}, nil)

	tests := []struct {
		name   string
		mutate func(*CreateBookingInput)
	}{
		{"bad date", func(in *CreateBookingInput) { in.Date = "06/01/2024" }},
		{"bad start", func(in *CreateBookingInput) { in.Start = "5pm" }},
		{"non-padded start", func(in *CreateBookingInput) { in.Start = "9:00" }},
		{"inverted window", func(in *CreateBookingInput) { in.Start, in.End = "19:00", "17:00" }},
		{"zero-length window", func(in *CreateBookingInput) { in.End = in.Start }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Empty(t, pub.keys, "rejected bookings publish nothing")
}

func TestCreateBookingCourtNotInClub(t *testing.T) {
	pub := &fakePub{}
	svc := NewBookingSvc(
		&fakeBookingStore{},
		&fakeAvail{data: &availability.Data{}},
		&fakeRules{},
		&fakeClubs{club: domain.Club{ID: "club-1", BasePricePerHour: 4500}},
		&fakeCourts{court: domain.Court{ID: "court-1", ClubID: "other-club", IsActive: true}},
		pub,
	)
	_, err := svc.Create(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateBookingAdvisoryReject(t *testing.T) {
	date, _ := time.Parse("2006-01-02", "2024-06-01")
	data := &availability.Data{Events: []domain.Event{{
		ID: "e1", EventDate: date,
		StartTime: "09:00", EndTime: "20:00",
		CourtsUsed: datatypes.JSON(`["court-1"]`),
	}}}
	store := &fakeBookingStore{}
	svc, pub := newSvcUnderTest(store, data, nil)

	_, err := svc.Create(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Contains(t, err.Error(), string(availability.ReasonEvent))
	assert.Nil(t, store.created, "advisory reject never reaches the store")
	assert.Empty(t, pub.keys)
}

// The advisory pass can be optimistic on stale data; the transactional
// commit's conflict must pass through untouched.
func TestCreateBookingCommitConflictPassesThrough(t *testing.T) {
	store := &fakeBookingStore{createErr: repository.ErrSlotTaken}
	svc, pub := newSvcUnderTest(store, &availability.Data{}, nil)

	_, err := svc.Create(context.Background(), validInput())
	assert.ErrorIs(t, err, repository.ErrSlotTaken)
	assert.Empty(t, pub.keys)
}

func TestCancelPublishes(t *testing.T) {
	store := &fakeBookingStore{created: &domain.Booking{ID: "bk-1", Status: domain.BookingPending}}
	svc, pub := newSvcUnderTest(store, &availability.Data{}, nil)

	b, err := svc.Cancel(context.Background(), "bk-1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	assert.Equal(t, []string{events.RKBookingCancelled}, pub.keys)
}

// A sub-hour class off the hourly grid still occupies the court.
func TestCreateBookingRejectsSubHourClass(t *testing.T) {
	classDate, _ := time.Parse("2006-01-02", "2024-06-01")
	data := &availability.Data{PrivateClasses: []domain.PrivateClass{{
		ID: "cl-1", ClubID: "club-1", CourtID: "court-1",
		ClassDate: classDate, StartTime: "17:30", EndTime: "18:00",
	}}}
	store := &fakeBookingStore{}
	svc, pub := newSvcUnderTest(store, data, nil)

	_, err := svc.Create(context.Background(), validInput()) // 17:00-19:00
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Contains(t, err.Error(), string(availability.ReasonClass))
	assert.Nil(t, store.created)
	assert.Empty(t, pub.keys)
}
