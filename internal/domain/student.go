package domain

import "time"

// Student студент
// Сервис доверяет идентификатору, переданному вызывающей стороной:
// аутентификация за пределами ответственности сервиса. Флаг IsAdmin
// даёт право на управление столовыми
type Student struct {
	ID        int64
	Name      string
	Email     string
	IsAdmin   bool
	CreatedAt time.Time
}
