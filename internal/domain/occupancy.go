package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID      string `gorm:"primaryKey" json:"id"`
	ClubID  string `gorm:"index;not null" json:"club_id"`
	CourtID string `gorm:"index;not null" json:"court_id"`
	UserID  string `gorm:"index" json:"user_id"`

	BookingDate time.Time `gorm:"type:date;index;not null" json:"booking_date"`
	StartTime   string    `gorm:"size:10;not null" json:"start_time"` // "HH:mm"
	EndTime     string    `gorm:"size:10;not null" json:"end_time"`

	PriceTotal int64         `json:"price_total"` // cents
	Currency   string        `gorm:"size:3" json:"currency"`
	Status     BookingStatus `gorm:"size:20;index;not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Occupies reports whether the booking still claims its slot.
func (b *Booking) Occupies() bool {
	return b.Status != BookingCancelled
}

// BlockedSlot is an admin-declared unavailable interval. A nil CourtID
// blocks every court of the club; IsAllDay makes the time window
// irrelevant.
type BlockedSlot struct {
	ID      string  `gorm:"primaryKey" json:"id"`
	ClubID  string  `gorm:"index;not null" json:"club_id"`
	CourtID *string `gorm:"index" json:"court_id"`

	BlockType string    `gorm:"size:30" json:"block_type"` // "maintenance", "holiday", ...
	BlockDate time.Time `gorm:"type:date;index;not null" json:"block_date"`
	StartTime string    `gorm:"size:10" json:"start_time"`
	EndTime   string    `gorm:"size:10" json:"end_time"`
	IsAllDay  bool      `gorm:"not null;default:false" json:"is_all_day"`
	Reason    string    `json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Event struct {
	ID     string `gorm:"primaryKey" json:"id"`
	ClubID string `gorm:"index;not null" json:"club_id"`

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`

	EventDate time.Time `gorm:"type:date;index;not null" json:"event_date"`
	StartTime string    `gorm:"size:10;not null" json:"start_time"`
	EndTime   string    `gorm:"size:10;not null" json:"end_time"`

	// JSON array of court IDs occupied for the event window.
	CourtsUsed datatypes.JSON `json:"courts_used"`

	PricePerPlayer int64 `json:"price_per_player"` // cents
	MaxPlayers     int32 `json:"max_players"`

	// Optional per-court windows narrower than the event window.
	CourtSchedules []EventCourtSchedule `gorm:"foreignKey:EventID" json:"court_schedules"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CourtIDs decodes the CourtsUsed column. Unparseable payloads yield an
// empty set, never an error.
func (e *Event) CourtIDs() []string {
	if len(e.CourtsUsed) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(e.CourtsUsed, &out); err != nil {
		return nil
	}
	return out
}

type EventCourtSchedule struct {
	ID        string `gorm:"primaryKey" json:"id"`
	EventID   string `gorm:"index;not null" json:"event_id"`
	CourtID   string `gorm:"index;not null" json:"court_id"`
	StartTime string `gorm:"size:10;not null" json:"start_time"`
	EndTime   string `gorm:"size:10;not null" json:"end_time"`
}

type PrivateClass struct {
	ID           string `gorm:"primaryKey" json:"id"`
	ClubID       string `gorm:"index;not null" json:"club_id"`
	CourtID      string `gorm:"index;not null" json:"court_id"`
	InstructorID string `gorm:"index" json:"instructor_id"`

	Title     string    `json:"title"`
	ClassDate time.Time `gorm:"type:date;index;not null" json:"class_date"`
	StartTime string    `gorm:"size:10;not null" json:"start_time"`
	EndTime   string    `gorm:"size:10;not null" json:"end_time"`

	PricePerPlayer int64 `json:"price_per_player"` // cents
	MaxPlayers     int32 `json:"max_players"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventConsumed records queue events already applied, so consumers stay
// idempotent across redeliveries.
type EventConsumed struct {
	ID          string `gorm:"primaryKey"`
	EventKey    string `gorm:"index"`
	ProcessedAt time.Time
}
