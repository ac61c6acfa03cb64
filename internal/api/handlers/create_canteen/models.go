package create_canteen

import (
	"github.com/m04kA/Canteen-BookingService/internal/service/canteens"
)

// MealPeriodModel период работы в HTTP моделях
type MealPeriodModel struct {
	Meal string `json:"meal"`
	From string `json:"from"`
	To   string `json:"to"`
}

// CreateCanteenRequest HTTP request model
type CreateCanteenRequest struct {
	Name         string            `json:"name"`
	Capacity     int               `json:"capacity"`
	WorkingHours []MealPeriodModel `json:"workingHours"`
}

// CanteenResponse HTTP response model
type CanteenResponse struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Capacity     int               `json:"capacity"`
	WorkingHours []MealPeriodModel `json:"workingHours"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateCanteenRequest) ToServiceRequest(requesterID int64) canteens.SaveRequest {
	periods := make([]canteens.MealPeriodInput, len(r.WorkingHours))
	for i, p := range r.WorkingHours {
		periods[i] = canteens.MealPeriodInput{
			Meal: p.Meal,
			From: p.From,
			To:   p.To,
		}
	}

	return canteens.SaveRequest{
		RequesterID:  requesterID,
		Name:         r.Name,
		Capacity:     r.Capacity,
		WorkingHours: periods,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(c *canteens.Canteen) *CanteenResponse {
	periods := make([]MealPeriodModel, len(c.WorkingHours))
	for i, p := range c.WorkingHours {
		periods[i] = MealPeriodModel{
			Meal: p.Meal,
			From: p.From,
			To:   p.To,
		}
	}

	return &CanteenResponse{
		ID:           c.ID,
		Name:         c.Name,
		Capacity:     c.Capacity,
		WorkingHours: periods,
	}
}
