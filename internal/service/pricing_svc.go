package service

import (
	"context"
	"fmt"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
	"github.com/tonatiuh19/intelipadel-sub001/internal/pricing"
	"github.com/tonatiuh19/intelipadel-sub001/internal/timeutil"
)

type RuleStore interface {
	RuleReader
	Create(ctx context.Context, p *domain.PriceRule) error
	ByID(ctx context.Context, id string) (*domain.PriceRule, error)
	ByClub(ctx context.Context, clubID string) ([]domain.PriceRule, error)
	Update(ctx context.Context, p *domain.PriceRule) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

type PricingSvc struct {
	rules RuleStore
	clubs ClubReader
}

func NewPricingSvc(rules RuleStore, clubs ClubReader) *PricingSvc {
	return &PricingSvc{rules: rules, clubs: clubs}
}

type Quote struct {
	PricePerHour int64  `json:"price_per_hour"` // cents
	Currency     string `json:"currency"`
}

// QuoteSlot resolves the hourly rate for one club/court/date/time.
func (s *PricingSvc) QuoteSlot(ctx context.Context, clubID, courtID, date, clock string) (*Quote, error) {
	if _, err := timeutil.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrInvalidInput, date)
	}
	if !timeutil.ValidClock(clock) {
		return nil, fmt.Errorf("%w: bad time %q", ErrInvalidInput, clock)
	}
	club, err := s.clubs.ByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	rules, err := s.rules.ActiveByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	price := pricing.Resolve(club.BasePricePerHour, rules, pricing.Query{
		CourtID: courtID,
		Date:    date,
		Time:    clock,
	})
	return &Quote{PricePerHour: price, Currency: club.Currency}, nil
}

func (s *PricingSvc) CreateRule(ctx context.Context, p domain.PriceRule) (*domain.PriceRule, error) {
	if err := s.rules.Create(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PricingSvc) GetRule(ctx context.Context, id string) (*domain.PriceRule, error) {
	return s.rules.ByID(ctx, id)
}

func (s *PricingSvc) ListRules(ctx context.Context, clubID string) ([]domain.PriceRule, error) {
	return s.rules.ByClub(ctx, clubID)
}

func (s *PricingSvc) UpdateRule(ctx context.Context, p domain.PriceRule) (*domain.PriceRule, error) {
	if err := s.rules.Update(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PricingSvc) SetRuleActive(ctx context.Context, id string, active bool) error {
	return s.rules.SetActive(ctx, id, active)
}

func (s *PricingSvc) DeleteRule(ctx context.Context, id string) error {
	return s.rules.Delete(ctx, id)
}
