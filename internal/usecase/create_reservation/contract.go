package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

// CanteenRepository интерфейс репозитория столовых
type CanteenRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Canteen, error)
}

// StudentRepository интерфейс репозитория студентов
type StudentRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	NextID(ctx context.Context) (int64, error)
	Create(ctx context.Context, res *domain.Reservation)
}

// OccupancyRepository интерфейс хранилища занятости слотов
type OccupancyRepository interface {
	SlotCounts(ctx context.Context, canteenID int64, date time.Time, ticks []types.TimeString) ([]int64, error)
	StudentBookedTicks(ctx context.Context, date time.Time, ticks []types.TimeString, studentID int64) ([]bool, error)
	Reserve(ctx context.Context, canteenID int64, date time.Time, ticks []types.TimeString, studentID int64)
}

// TransactionManager интерфейс оптимистичных транзакций над хранилищем
type TransactionManager interface {
	DoOptimistic(ctx context.Context, watchKeys []string, fn func(txCtx context.Context) error) error
}

// Metrics интерфейс счётчиков бизнес-метрик (опционально)
type Metrics interface {
	IncReservationCreated()
	IncReservationConflict(reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
