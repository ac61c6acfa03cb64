package get_canteen_status

import (
	"github.com/m04kA/Canteen-BookingService/internal/domain"
	getCanteenStatus "github.com/m04kA/Canteen-BookingService/internal/usecase/get_canteen_status"
)

// SlotStatusResponse слот с количеством оставшихся мест
type SlotStatusResponse struct {
	Date              string `json:"date"`
	Meal              string `json:"meal"`
	StartTime         string `json:"startTime"`
	RemainingCapacity int    `json:"remainingCapacity"`
}

// CanteenStatusResponse HTTP response model
type CanteenStatusResponse struct {
	CanteenID int64                `json:"canteenId"`
	Name      string               `json:"name"`
	Slots     []SlotStatusResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCanteenStatus.Response) *CanteenStatusResponse {
	slots := make([]SlotStatusResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotStatusResponse{
			Date:              s.Date.Format(domain.DateFormat),
			Meal:              s.Meal,
			StartTime:         s.StartTime.String(),
			RemainingCapacity: s.RemainingCapacity,
		})
	}

	return &CanteenStatusResponse{
		CanteenID: resp.CanteenID,
		Name:      resp.Name,
		Slots:     slots,
	}
}
