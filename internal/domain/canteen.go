package domain

import (
	"time"

	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

// Meal приём пищи, к которому относится период работы столовой
type Meal string

const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealDinner    Meal = "dinner"
)

// IsValid проверяет, что приём пищи один из известных
func (m Meal) IsValid() bool {
	return m == MealBreakfast || m == MealLunch || m == MealDinner
}

// MealPeriod период работы столовой для одного приёма пищи
// Период полуоткрытый: время начала слота должно попадать в [From, To)
type MealPeriod struct {
	Meal Meal
	From types.TimeString
	To   types.TimeString
}

// Contains проверяет, что время попадает в период [From, To)
func (p *MealPeriod) Contains(t types.TimeString) bool {
	return !t.IsBefore(p.From) && t.IsBefore(p.To)
}

// Canteen столовая
// Вместимость одна на всю столовую, не зависит от приёма пищи.
// Периоды работы не пересекаются и отсортированы по времени начала
type Canteen struct {
	ID           int64
	Name         string
	Capacity     int
	WorkingHours []MealPeriod
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PeriodAt возвращает период работы, содержащий указанное время
// Периоды не пересекаются, поэтому первый подходящий - единственный
func (c *Canteen) PeriodAt(t types.TimeString) (*MealPeriod, bool) {
	for i := range c.WorkingHours {
		if c.WorkingHours[i].Contains(t) {
			return &c.WorkingHours[i], true
		}
	}
	return nil, false
}

// SlotMeal определяет приём пищи для слота с указанным началом и длительностью
//
// 30-минутный слот валиден, если его начало попадает в какой-либо период.
// 60-минутный слот валиден, только если обе его половины (start и start+30)
// попадают в ОДИН И ТОТ ЖЕ период: слот не может пересекать границу приёмов
// пищи или разрыв между ними
func (c *Canteen) SlotMeal(start types.TimeString, durationMinutes int) (Meal, bool) {
	period, ok := c.PeriodAt(start)
	if !ok {
		return "", false
	}

	if durationMinutes <= TickMinutes {
		return period.Meal, true
	}

	secondHalf, err := start.AddMinutes(TickMinutes)
	if err != nil {
		return "", false
	}

	if !period.Contains(secondHalf) {
		return "", false
	}

	return period.Meal, true
}
