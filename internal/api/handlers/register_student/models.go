package register_student

import (
	"github.com/m04kA/Canteen-BookingService/internal/service/students"
)

// RegisterStudentRequest HTTP request model
type RegisterStudentRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// StudentResponse HTTP response model
type StudentResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterStudentRequest) ToServiceRequest() students.RegisterRequest {
	return students.RegisterRequest{
		Name:    r.Name,
		Email:   r.Email,
		IsAdmin: r.IsAdmin,
	}
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
