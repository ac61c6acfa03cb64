package get_student_reservations

import (
	"context"

	"github.com/m04kA/Canteen-BookingService/internal/service/reservations"
)

type ReservationService interface {
	GetByStudent(ctx context.Context, req reservations.GetByStudentRequest) (*reservations.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
