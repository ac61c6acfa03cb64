package domain

import (
	"iter"
	"time"

	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

// DateTimeRange диапазон запроса: включительный диапазон дат с временными
// границами. Временное окно действует только на первый и последний день,
// внутренние дни берутся целиком (00:00 - 23:59)
type DateTimeRange struct {
	StartDate time.Time
	StartTime types.TimeString
	EndDate   time.Time
	EndTime   types.TimeString
}

const lastMinuteOfDay = 23*60 + 59

// Slots возвращает ленивую конечную последовательность слотов-кандидатов,
// упорядоченную по дате, затем по времени. Последовательность можно
// обходить повторно
//
// Для каждого дня диапазона времена начала перебираются с шагом,
// равным длительности: 30-минутные слоты начинаются каждые полчаса,
// 60-минутные - только в начале часа. Кандидат без подходящего периода
// работы молча пропускается - это не ошибка, просто нерабочее время
func (c *Canteen) Slots(rng DateTimeRange, durationMinutes int) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		startDate := DateOnly(rng.StartDate)
		endDate := DateOnly(rng.EndDate)

		for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
			dayStart := 0
			dayEnd := lastMinuteOfDay

			// Окно запроса обрезает только крайние дни диапазона
			if date.Equal(startDate) && !rng.StartTime.IsZero() {
				if m, err := rng.StartTime.Minutes(); err == nil {
					dayStart = m
				}
			}
			if date.Equal(endDate) && !rng.EndTime.IsZero() {
				if m, err := rng.EndTime.Minutes(); err == nil {
					dayEnd = m
				}
			}

			// Выравниваем начало дня вверх по шагу длительности
			stride := durationMinutes
			first := ((dayStart + stride - 1) / stride) * stride

			for m := first; m+durationMinutes <= dayEnd; m += stride {
				start := types.FromMinutes(m)

				meal, ok := c.SlotMeal(start, durationMinutes)
				if !ok {
					continue
				}

				slot := Slot{
					Date:            date,
					StartTime:       start,
					Meal:            meal,
					DurationMinutes: durationMinutes,
				}
				if !yield(slot) {
					return
				}
			}
		}
	}
}

// DateOnly обнуляет временную часть даты
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay проверяет, что две даты относятся к одному и тому же дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
