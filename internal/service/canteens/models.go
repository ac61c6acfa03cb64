package canteens

// MealPeriodInput - период работы во входном запросе
type MealPeriodInput struct {
	Meal string
	From string
	To   string
}

// SaveRequest - запрос создания или изменения столовой
type SaveRequest struct {
	RequesterID  int64
	Name         string
	Capacity     int
	WorkingHours []MealPeriodInput
}

// MealPeriod - период работы в ответе сервиса
type MealPeriod struct {
	Meal string
	From string
	To   string
}

// Canteen - столовая в ответе сервиса
type Canteen struct {
	ID           int64
	Name         string
	Capacity     int
	WorkingHours []MealPeriod
}
