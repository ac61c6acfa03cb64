package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

// validateRequest проверяет предусловия запроса в фиксированном порядке
// и возвращает разобранные дату и время начала
//
// Порядок проверок: идентификаторы, формат даты, формат времени,
// длительность, выравнивание времени под длительность
func validateRequest(req *Request) (time.Time, types.TimeString, error) {
	if req.StudentID <= 0 {
		return time.Time{}, "", fmt.Errorf("%w: studentID must be positive", ErrInvalidInput)
	}

	if req.CanteenID <= 0 {
		return time.Time{}, "", fmt.Errorf("%w: canteenID must be positive", ErrInvalidInput)
	}

	// time.Parse отклоняет и кривой формат, и несуществующие календарные
	// даты вроде 2025-02-30
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: date must be a real date in YYYY-MM-DD format", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
	}

	if !domain.IsAllowedDuration(req.DurationMinutes) {
		return time.Time{}, "", fmt.Errorf("%w: duration must be 30 or 60 minutes", ErrInvalidInput)
	}

	minute, err := startTime.Minute()
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
	}

	// Часовая бронь начинается только в начале часа,
	// получасовая - на границе тика. Невыровненное начало сломало бы
	// учёт занятости по тикам
	if req.DurationMinutes == 60 && minute != 0 {
		return time.Time{}, "", fmt.Errorf("%w: 60-minute reservation must start at the top of the hour", ErrInvalidInput)
	}
	if minute%domain.TickMinutes != 0 {
		return time.Time{}, "", fmt.Errorf("%w: startTime must be aligned to a 30-minute boundary", ErrInvalidInput)
	}

	return date, startTime, nil
}

// isInPast проверяет, что дата и время брони строго раньше текущего момента
func isInPast(date time.Time, startTime types.TimeString, now time.Time) bool {
	minutes, err := startTime.Minutes()
	if err != nil {
		return false
	}

	combined := time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, now.Location())
	return combined.Before(now)
}
