package get_student

import (
	"context"

	"github.com/m04kA/Canteen-BookingService/internal/service/students"
)

type StudentService interface {
	GetByID(ctx context.Context, id int64) (*students.Student, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
