package get_student_reservations

import (
	"github.com/m04kA/Canteen-BookingService/internal/service/reservations"
)

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64  `json:"id"`
	StudentID       int64  `json:"studentId"`
	CanteenID       int64  `json:"canteenId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *reservations.Response) []ReservationResponse {
	result := make([]ReservationResponse, 0, len(resp.Reservations))
	for _, r := range resp.Reservations {
		result = append(result, ReservationResponse{
			ID:              r.ID,
			StudentID:       r.StudentID,
			CanteenID:       r.CanteenID,
			Date:            r.Date,
			StartTime:       r.StartTime.String(),
			DurationMinutes: r.DurationMinutes,
			Status:          string(r.Status),
		})
	}
	return result
}
