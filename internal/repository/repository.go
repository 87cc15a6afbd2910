package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
)

// ErrSlotTaken is returned by the booking commit when the slot is no
// longer free. Callers must surface it separately from validation
// failures.
var ErrSlotTaken = errors.New("slot_taken")

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Club{},
		&domain.Court{},
		&domain.ClubSchedule{},
		&domain.PriceRule{},
		&domain.BlockedSlot{},
		&domain.Booking{},
		&domain.Event{},
		&domain.EventCourtSchedule{},
		&domain.PrivateClass{},
		&domain.EventConsumed{},
	)
}
