package get_canteen_status

import (
	"fmt"
	"time"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

// parseRange разбирает и валидирует границы диапазона запроса
func parseRange(startDate, startTime, endDate, endTime string, durationMinutes int) (domain.DateTimeRange, error) {
	var rng domain.DateTimeRange

	if startDate == "" || endDate == "" {
		return rng, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	start, err := time.Parse(domain.DateFormat, startDate)
	if err != nil {
		return rng, fmt.Errorf("%w: startDate must be a real date in YYYY-MM-DD format", ErrInvalidInput)
	}

	end, err := time.Parse(domain.DateFormat, endDate)
	if err != nil {
		return rng, fmt.Errorf("%w: endDate must be a real date in YYYY-MM-DD format", ErrInvalidInput)
	}

	rng.StartDate = start
	rng.EndDate = end

	if startTime != "" {
		ts, err := types.NewTimeStringFromString(startTime)
		if err != nil {
			return rng, fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
		}
		rng.StartTime = ts
	}

	if endTime != "" {
		ts, err := types.NewTimeStringFromString(endTime)
		if err != nil {
			return rng, fmt.Errorf("%w: endTime must be in HH:MM format", ErrInvalidInput)
		}
		rng.EndTime = ts
	}

	if !domain.IsAllowedDuration(durationMinutes) {
		return rng, fmt.Errorf("%w: duration must be 30 or 60 minutes", ErrInvalidInput)
	}

	return rng, nil
}
