package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestEventCourtIDs(t *testing.T) {
	e := &Event{CourtsUsed: datatypes.JSON(`["c1","c2"]`)}
	assert.Equal(t, []string{"c1", "c2"}, e.CourtIDs())

	assert.Nil(t, (&Event{}).CourtIDs())
	assert.Nil(t, (&Event{CourtsUsed: datatypes.JSON(`{oops`)}).CourtIDs())
	assert.Nil(t, (&Event{CourtsUsed: datatypes.JSON(`"c1"`)}).CourtIDs())
}

func TestPriceRuleDays(t *testing.T) {
	r := PriceRule{DaysOfWeek: datatypes.JSON(`[0,6]`)}
	assert.Equal(t, []int{0, 6}, r.Days())

	assert.Nil(t, (&PriceRule{}).Days())
	assert.Nil(t, (&PriceRule{DaysOfWeek: datatypes.JSON(`"sat"`)}).Days())
}

func TestBookingOccupies(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingPending}).Occupies())
	assert.True(t, (&Booking{Status: BookingConfirmed}).Occupies())
	assert.False(t, (&Booking{Status: BookingCancelled}).Occupies())
}
