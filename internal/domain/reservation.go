package domain

import (
	"time"

	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusActive    ReservationStatus = "active"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation бронирование слота в столовой
// Бронирования никогда не удаляются физически: отмена только переводит
// статус в cancelled, обратный переход невозможен
type Reservation struct {
	ID              int64
	StudentID       int64
	CanteenID       int64
	Date            time.Time // только дата, без времени
	StartTime       types.TimeString
	DurationMinutes int
	Status          ReservationStatus
	CreatedAt       time.Time
	CancelledAt     *time.Time
}

// IsActive возвращает true, если бронирование активно
func (r *Reservation) IsActive() bool {
	return r.Status == StatusActive
}

// IsCancelled возвращает true, если бронирование отменено
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// Ticks возвращает тики, которые покрывает бронирование
// 30-минутное бронирование покрывает один тик, 60-минутное - два
// (свой тик и следующий за ним)
func (r *Reservation) Ticks() []types.TimeString {
	return TicksFor(r.StartTime, r.DurationMinutes)
}

// TicksFor возвращает начала 30-минутных тиков, покрываемых слотом
// Начало слота должно быть выровнено по границе тика
func TicksFor(start types.TimeString, durationMinutes int) []types.TimeString {
	ticks := []types.TimeString{start}

	for covered := TickMinutes; covered < durationMinutes; covered += TickMinutes {
		next, err := start.AddMinutes(covered)
		if err != nil {
			break
		}
		ticks = append(ticks, next)
	}

	return ticks
}

// IsTickAligned проверяет выравнивание времени по границе 30-минутного тика
func IsTickAligned(t types.TimeString) bool {
	minute, err := t.Minute()
	if err != nil {
		return false
	}
	return minute%TickMinutes == 0
}
