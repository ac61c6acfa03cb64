package reservations

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
)

// Service - сервис истории бронирований
type Service struct {
	repo   ReservationRepository
	logger Logger
}

func New(repo ReservationRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByStudent возвращает бронирования студента за период, отсортированные
// по дате и времени начала. Обе границы периода обязательны, период
// включает граничные даты.
func (s *Service) GetByStudent(ctx context.Context, req GetByStudentRequest) (*Response, error) {
	// 1. Валидация входных данных
	if req.StudentID <= 0 {
		return nil, fmt.Errorf("%w: student id must be positive", ErrInvalidInput)
	}
	if req.StartDate == "" || req.EndDate == "" {
		return nil, fmt.Errorf("%w: start date and end date are required", ErrInvalidInput)
	}

	from, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %q", ErrInvalidInput, req.StartDate)
	}
	to, err := time.Parse(domain.DateFormat, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date %q", ErrInvalidInput, req.EndDate)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	// 2. Получение бронирований из хранилища
	items, err := s.repo.GetByStudentBetween(ctx, req.StudentID, from, to)
	if err != nil {
		s.logger.Error("reservations service: failed to load reservations for student %d: %v", req.StudentID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &Response{Reservations: make([]Reservation, 0, len(items))}
	for _, r := range items {
		resp.Reservations = append(resp.Reservations, Reservation{
			ID:              r.ID,
			StudentID:       r.StudentID,
			CanteenID:       r.CanteenID,
			Date:            r.Date.Format(domain.DateFormat),
			StartTime:       r.StartTime,
			DurationMinutes: r.DurationMinutes,
			Status:          r.Status,
		})
	}

	return resp, nil
}
