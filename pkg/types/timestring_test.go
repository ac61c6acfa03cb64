package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, TimeString("00:00").Validate())
	assert.NoError(t, TimeString("23:59").Validate())

	assert.Error(t, TimeString("24:00").Validate())
	assert.Error(t, TimeString("12:60").Validate())
	assert.Error(t, TimeString("9:00").Validate())
	assert.Error(t, TimeString("09-00").Validate())
	assert.Error(t, TimeString("").Validate())
}

func TestMinutes(t *testing.T) {
	m, err := TimeString("08:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 510, m)

	_, err = TimeString("8:30").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("08:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), ts)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, TimeString("00:00"), FromMinutes(0))
	assert.Equal(t, TimeString("09:05"), FromMinutes(545))
	assert.Equal(t, TimeString("23:59"), FromMinutes(1439))
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2030, time.January, 15, 8, 30, 45, 0, time.UTC))
	assert.Equal(t, TimeString("08:30"), ts)
}

func TestOrdering(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:30"))
}
