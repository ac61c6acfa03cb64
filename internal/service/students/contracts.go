package students

import (
	"context"
	"time"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
)

// StudentRepository - контракт хранилища студентов
type StudentRepository interface {
	NextID(ctx context.Context) (int64, error)
	Create(ctx context.Context, student *domain.Student) error
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
}

// TimeProvider - контракт провайдера времени
type TimeProvider interface {
	Now() time.Time
}

// Logger - контракт логгера
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// RealTimeProvider - реализация TimeProvider на системных часах
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
