package canteens

import (
	"fmt"
	"strings"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

// validateSaveRequest проверяет запрос и собирает доменное расписание работы
func validateSaveRequest(req SaveRequest) ([]domain.MealPeriod, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCanteenNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if req.Capacity < domain.MinCapacity {
		return nil, fmt.Errorf("%w: capacity must be at least %d", ErrInvalidInput, domain.MinCapacity)
	}

	if len(req.WorkingHours) == 0 {
		return nil, fmt.Errorf("%w: working hours are required", ErrInvalidInput)
	}

	periods := make([]domain.MealPeriod, 0, len(req.WorkingHours))
	seen := make(map[domain.Meal]bool, len(req.WorkingHours))
	for i, p := range req.WorkingHours {
		meal := domain.Meal(p.Meal)
		if !meal.IsValid() {
			return nil, fmt.Errorf("%w: unknown meal %q", ErrInvalidInput, p.Meal)
		}
		if seen[meal] {
			return nil, fmt.Errorf("%w: duplicate meal %q", ErrInvalidInput, p.Meal)
		}
		seen[meal] = true

		from, err := types.NewTimeStringFromString(p.From)
		if err != nil {
			return nil, fmt.Errorf("%w: period %d: invalid from time %q", ErrInvalidInput, i, p.From)
		}
		to, err := types.NewTimeStringFromString(p.To)
		if err != nil {
			return nil, fmt.Errorf("%w: period %d: invalid to time %q", ErrInvalidInput, i, p.To)
		}

		fromMin, _ := from.Minutes()
		toMin, _ := to.Minutes()
		if toMin-fromMin < domain.MinPeriodMinutes {
			return nil, fmt.Errorf("%w: period %d: must be at least %d minutes", ErrInvalidInput, i, domain.MinPeriodMinutes)
		}

		periods = append(periods, domain.MealPeriod{Meal: meal, From: from, To: to})
	}

	// Периоды не должны пересекаться. Порядок на входе не важен:
	// хранение и выдача идут в хронологическом порядке
	sortPeriods(periods)
	for i := 1; i < len(periods); i++ {
		if periods[i-1].To.IsAfter(periods[i].From) {
			return nil, fmt.Errorf("%w: periods %q and %q overlap", ErrInvalidInput, periods[i-1].Meal, periods[i].Meal)
		}
	}

	return periods, nil
}

func sortPeriods(periods []domain.MealPeriod) {
	for i := 1; i < len(periods); i++ {
		for j := i; j > 0 && periods[j].From.IsBefore(periods[j-1].From); j-- {
			periods[j], periods[j-1] = periods[j-1], periods[j]
		}
	}
}
