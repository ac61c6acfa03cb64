package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

func TestTicksFor(t *testing.T) {
	assert.Equal(t, []types.TimeString{"08:30"}, TicksFor("08:30", 30))
	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, TicksFor("09:00", 60))
}

func TestIsAllowedDuration(t *testing.T) {
	assert.True(t, IsAllowedDuration(TickMinutes))
	assert.True(t, IsAllowedDuration(MaxSlotDurationMinutes))
	assert.False(t, IsAllowedDuration(0))
	assert.False(t, IsAllowedDuration(45))
	assert.False(t, IsAllowedDuration(90))
}

func TestIsTickAligned(t *testing.T) {
	assert.True(t, IsTickAligned("08:00"))
	assert.True(t, IsTickAligned("08:30"))
	assert.False(t, IsTickAligned("08:15"))
	assert.False(t, IsTickAligned("bad"))
}

func TestReservationStatus(t *testing.T) {
	r := Reservation{Status: StatusActive}
	assert.True(t, r.IsActive())
	assert.False(t, r.IsCancelled())

	r.Status = StatusCancelled
	assert.False(t, r.IsActive())
	assert.True(t, r.IsCancelled())
}
