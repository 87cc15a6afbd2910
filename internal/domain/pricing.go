package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type RuleType string

const (
	RuleTimeOfDay   RuleType = "time_of_day"
	RuleDayOfWeek   RuleType = "day_of_week"
	RuleSeasonal    RuleType = "seasonal"
	RuleSpecialDate RuleType = "special_date"
)

// PriceRule overrides a club's base hourly rate for the slots it
// matches. Only the fields relevant to RuleType are meaningful; higher
// Priority wins on overlap.
type PriceRule struct {
	ID     string  `gorm:"primaryKey" json:"id"`
	ClubID string  `gorm:"index;not null" json:"club_id"`
	// Nil applies the rule to every court of the club.
	CourtID *string `gorm:"index" json:"court_id"`

	RuleName string   `json:"rule_name"`
	RuleType RuleType `gorm:"size:20;not null;index" json:"rule_type"`

	StartTime string `gorm:"size:10" json:"start_time"` // "HH:mm", time_of_day / special_date
	EndTime   string `gorm:"size:10" json:"end_time"`

	// JSON array of ints 0..6, day_of_week rules only.
	DaysOfWeek datatypes.JSON `json:"days_of_week"`

	StartDate *time.Time `gorm:"type:date" json:"start_date"` // seasonal / special_date
	EndDate   *time.Time `gorm:"type:date" json:"end_date"`

	PricePerHour int64 `gorm:"not null" json:"price_per_hour"` // cents
	Priority     int   `gorm:"not null;default:0" json:"priority"`
	IsActive     bool  `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Days decodes the DaysOfWeek column. Unparseable payloads yield an
// empty set, never an error.
func (r *PriceRule) Days() []int {
	if len(r.DaysOfWeek) == 0 {
		return nil
	}
	var out []int
	if err := json.Unmarshal(r.DaysOfWeek, &out); err != nil {
		return nil
	}
	return out
}
