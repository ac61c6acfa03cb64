package cancel_reservation

import (
	"context"
	"time"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	MarkCancelled(ctx context.Context, id int64, cancelledAt time.Time)
}

// OccupancyRepository интерфейс хранилища занятости слотов
type OccupancyRepository interface {
	Release(ctx context.Context, canteenID int64, date time.Time, ticks []types.TimeString, studentID int64)
}

// TransactionManager интерфейс оптимистичных транзакций над хранилищем
type TransactionManager interface {
	DoOptimistic(ctx context.Context, watchKeys []string, fn func(txCtx context.Context) error) error
}

// Metrics интерфейс счётчиков бизнес-метрик (опционально)
type Metrics interface {
	IncReservationCancelled()
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
