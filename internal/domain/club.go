package domain

import "time"

type Club struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	City string `json:"city"`

	// Fallback hourly rate when no price rule matches, in minor
	// currency units (cents).
	BasePricePerHour int64  `gorm:"not null" json:"base_price_per_hour"`
	Currency         string `gorm:"size:3;not null;default:'USD'" json:"currency"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Court struct {
	ID      string `gorm:"primaryKey" json:"id"`
	ClubID  string `gorm:"index;not null" json:"club_id"`
	Name    string `gorm:"not null" json:"name"`
	CourtNo int32  `json:"court_no"`
	Indoor  bool   `json:"indoor"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClubSchedule is the opening window for one weekday (0=Sunday..6).
// One row per club per weekday.
type ClubSchedule struct {
	ID        string `gorm:"primaryKey" json:"id"`
	ClubID    string `gorm:"not null;uniqueIndex:idx_club_schedule_day" json:"club_id"`
	DayOfWeek int    `gorm:"not null;uniqueIndex:idx_club_schedule_day" json:"day_of_week"`
	OpensAt   string `gorm:"size:10" json:"opens_at"`  // "HH:mm"
	ClosesAt  string `gorm:"size:10" json:"closes_at"` // "HH:mm"
	IsClosed  bool   `gorm:"not null;default:false" json:"is_closed"`
}
