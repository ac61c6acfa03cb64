package get_all_canteens_status

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

// CanteenStatusResponse статус одной столовой
type CanteenStatusResponse struct {
	CanteenID int64                `json:"canteenId"`
	Name      string               `json:"name"`
	Slots     []SlotStatusResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Порядок столовых сохраняется
func FromUseCaseResponse(resp *getCanteenStatus.AllResponse) []CanteenStatusResponse {
	result := make([]CanteenStatusResponse, 0, len(resp.Canteens))
	for _, c := range resp.Canteens {
		slots := make([]SlotStatusResponse, 0, len(c.Slots))
		for _, s := range c.Slots {
			slots = append(slots, SlotStatusResponse{
				Date:              s.Date.Format(domain.DateFormat),
				Meal:              s.Meal,
				StartTime:         s.StartTime.String(),
				RemainingCapacity: s.RemainingCapacity,
			})
		}
		result = append(result, CanteenStatusResponse{
			CanteenID: c.CanteenID,
			Name:      c.Name,
			Slots:     slots,
		})
	}
	return result
}
