package get_canteen_status

import (
	"context"
	"time"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

// CanteenRepository интерфейс репозитория столовых
type CanteenRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Canteen, error)
	List(ctx context.Context) ([]*domain.Canteen, error)
}

// OccupancyRepository интерфейс хранилища занятости слотов
// Запросу доступности достаточно согласованности на уровне отдельного
// ключа: лёгкая рассинхронизация между счётчиками влияет только на
// отображаемую оценку, лимит обеспечивает движок бронирования
type OccupancyRepository interface {
	SlotCountsBatch(ctx context.Context, canteenID int64, date time.Time, ticks []types.TimeString) (map[types.TimeString]int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
