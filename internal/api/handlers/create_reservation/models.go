package create_reservation

import (
	"time"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	createReservation "github.com/m04kA/Canteen-BookingService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CanteenID       int64  `json:"canteenId"`
	Date            string `json:"date"`      // "2025-12-10"
	StartTime       string `json:"startTime"` // "08:30"
	DurationMinutes int    `json:"durationMinutes"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64  `json:"id"`
	StudentID       int64  `json:"studentId"`
	CanteenID       int64  `json:"canteenId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата и время передаются строками как есть: их разбор - предусловие use case
func (r *CreateReservationRequest) ToUseCaseRequest(studentID int64) *createReservation.Request {
	return &createReservation.Request{
		StudentID:       studentID,
		CanteenID:       r.CanteenID,
		Date:            r.Date,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		StudentID:       resp.StudentID,
		CanteenID:       resp.CanteenID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
