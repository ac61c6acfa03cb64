package canteens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
)

func validSaveRequest() SaveRequest {
	return SaveRequest{
		RequesterID: 1,
		Name:        "Главная столовая",
		Capacity:    30,
		WorkingHours: []MealPeriodInput{
			{Meal: "breakfast", From: "08:00", To: "10:00"},
			{Meal: "lunch", From: "12:00", To: "14:00"},
		},
	}
}

func TestValidateSaveRequestOK(t *testing.T) {
	periods, err := validateSaveRequest(validSaveRequest())
	require.NoError(t, err)
	require.Len(t, periods, 2)
	assert.Equal(t, domain.MealBreakfast, periods[0].Meal)
	assert.Equal(t, domain.MealLunch, periods[1].Meal)
}

func TestValidateSaveRequestSortsPeriods(t *testing.T) {
	req := validSaveRequest()
	req.WorkingHours = []MealPeriodInput{
		{Meal: "dinner", From: "18:00", To: "20:00"},
		{Meal: "breakfast", From: "08:00", To: "10:00"},
	}

	periods, err := validateSaveRequest(req)
	require.NoError(t, err)
	assert.Equal(t, domain.MealBreakfast, periods[0].Meal)
	assert.Equal(t, domain.MealDinner, periods[1].Meal)
}

func TestValidateSaveRequestErrors(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*SaveRequest)
	}{
		{"empty name", func(r *SaveRequest) { r.Name = "  " }},
		{"zero capacity", func(r *SaveRequest) { r.Capacity = 0 }},
		{"no periods", func(r *SaveRequest) { r.WorkingHours = nil }},
		{"unknown meal", func(r *SaveRequest) { r.WorkingHours[0].Meal = "brunch" }},
		{"duplicate meal", func(r *SaveRequest) { r.WorkingHours[1].Meal = "breakfast" }},
		{"bad from", func(r *SaveRequest) { r.WorkingHours[0].From = "8:00" }},
		{"bad to", func(r *SaveRequest) { r.WorkingHours[0].To = "25:00" }},
		{"inverted period", func(r *SaveRequest) { r.WorkingHours[0].From = "10:00"; r.WorkingHours[0].To = "08:00" }},
		{"too short period", func(r *SaveRequest) { r.WorkingHours[0].To = "08:15" }},
		{"overlapping periods", func(r *SaveRequest) { r.WorkingHours[1].From = "09:00" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSaveRequest()
			tc.modify(&req)

			_, err := validateSaveRequest(req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestValidateSaveRequestAdjacentPeriodsAllowed(t *testing.T) {
	req := validSaveRequest()
	req.WorkingHours = []MealPeriodInput{
		{Meal: "breakfast", From: "08:00", To: "12:00"},
		{Meal: "lunch", From: "12:00", To: "14:00"},
	}

	_, err := validateSaveRequest(req)
	assert.NoError(t, err)
}
