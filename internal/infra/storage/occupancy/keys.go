package occupancy

import (
	"fmt"
	"time"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

// SlotKey ключ счётчика занятости слота столовой
// Гранулярность всегда 30 минут: 60-минутное бронирование затрагивает
// два соседних ключа
func SlotKey(canteenID int64, date time.Time, tick types.TimeString) string {
	return fmt.Sprintf("slot:%d:%s:%s", canteenID, date.Format(domain.DateFormat), tick)
}

// StudentSlotKey ключ множества студентов, занявших тик
// Намеренно без измерения столовой: одно множество на тик для всех
// столовых, именно оно запрещает студенту быть в двух местах одновременно
func StudentSlotKey(date time.Time, tick types.TimeString) string {
	return fmt.Sprintf("studentSlot:%s:%s", date.Format(domain.DateFormat), tick)
}

// WatchKeys возвращает все ключи, которые должна отслеживать
// оптимистичная транзакция бронирования: счётчики столовой и
// глобальные множества студентов для каждого затронутого тика
func WatchKeys(canteenID int64, date time.Time, ticks []types.TimeString) []string {
	keys := make([]string, 0, len(ticks)*2)
	for _, tick := range ticks {
		keys = append(keys, SlotKey(canteenID, date, tick))
	}
	for _, tick := range ticks {
		keys = append(keys, StudentSlotKey(date, tick))
	}
	return keys
}
