package cancel_reservation

import (
	"time"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	cancelReservation "github.com/m04kA/Canteen-BookingService/internal/usecase/cancel_reservation"
)

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	StudentID       int64   `json:"studentId"`
	CanteenID       int64   `json:"canteenId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
	CancelledAt     *string `json:"cancelledAt,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelReservation.Response) *ReservationResponse {
	var cancelledAt *string
	if resp.CancelledAt != nil {
		s := resp.CancelledAt.Format(time.RFC3339)
		cancelledAt = &s
	}

	return &ReservationResponse{
		ID:              resp.ID,
		StudentID:       resp.StudentID,
		CanteenID:       resp.CanteenID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		CancelledAt:     cancelledAt,
	}
}
