package get_student

import (
	"github.com/m04kA/Canteen-BookingService/internal/service/students"
)

// StudentResponse HTTP response model
type StudentResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(s *students.Student) *StudentResponse {
	return &StudentResponse{
		ID:      s.ID,
		Name:    s.Name,
		Email:   s.Email,
		IsAdmin: s.IsAdmin,
	}
}
