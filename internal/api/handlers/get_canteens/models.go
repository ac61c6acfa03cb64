package get_canteens

import (
	"github.com/m04kA/Canteen-BookingService/internal/service/canteens"
)

// MealPeriodModel период работы в HTTP моделях
type MealPeriodModel struct {
	Meal string `json:"meal"`
	From string `json:"from"`
	To   string `json:"to"`
}

// CanteenResponse HTTP response model
type CanteenResponse struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Capacity     int               `json:"capacity"`
	WorkingHours []MealPeriodModel `json:"workingHours"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(items []canteens.Canteen) []CanteenResponse {
	result := make([]CanteenResponse, 0, len(items))
	for _, c := range items {
		periods := make([]MealPeriodModel, len(c.WorkingHours))
		for i, p := range c.WorkingHours {
			periods[i] = MealPeriodModel{
				Meal: p.Meal,
				From: p.From,
				To:   p.To,
			}
		}
		result = append(result, CanteenResponse{
			ID:           c.ID,
			Name:         c.Name,
			Capacity:     c.Capacity,
			WorkingHours: periods,
		})
	}
	return result
}
