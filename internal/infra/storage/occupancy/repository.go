package occupancy

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/Canteen-BookingService/pkg/redistx"
	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

// Repository хранилище занятости слотов
//
// Чисто механический слой поверх счётчиков и множеств: никакой валидации
// здесь нет, проверки принадлежат движку бронирования. Если в контексте
// есть активная транзакция или пайплайн (redistx), команды идут через них
type Repository struct {
	client redis.Cmdable
}

// NewRepository создает новый репозиторий занятости
func NewRepository(client redis.Cmdable) *Repository {
	return &Repository{client: client}
}

// SlotCounts возвращает значения счётчиков занятости для тиков
// Отсутствующий ключ означает ноль броней
func (r *Repository) SlotCounts(ctx context.Context, canteenID int64, date time.Time, ticks []types.TimeString) ([]int64, error) {
	executor := redistx.Executor(ctx, r.client)

	counts := make([]int64, len(ticks))
	for i, tick := range ticks {
		val, err := executor.Get(ctx, SlotKey(canteenID, date, tick)).Result()
		if errors.Is(err, redis.Nil) {
			counts[i] = 0
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: SlotCounts - get %s: %v", ErrExecCommand, tick, err)
		}

		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: SlotCounts - %q: %v", ErrParseValue, val, err)
		}
		counts[i] = n
	}

	return counts, nil
}

// SlotCountsBatch возвращает счётчики для тиков одним запросом (MGET)
// Используется запросами доступности: для отображения достаточно
// согласованности на уровне отдельного ключа
func (r *Repository) SlotCountsBatch(ctx context.Context, canteenID int64, date time.Time, ticks []types.TimeString) (map[types.TimeString]int64, error) {
	if len(ticks) == 0 {
		return map[types.TimeString]int64{}, nil
	}

	executor := redistx.Executor(ctx, r.client)

	keys := make([]string, len(ticks))
	for i, tick := range ticks {
		keys[i] = SlotKey(canteenID, date, tick)
	}

	values, err := executor.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: SlotCountsBatch - mget: %v", ErrExecCommand, err)
	}

	counts := make(map[types.TimeString]int64, len(ticks))
	for i, tick := range ticks {
		if values[i] == nil {
			counts[tick] = 0
			continue
		}

		raw, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("%w: SlotCountsBatch - unexpected value type %T", ErrParseValue, values[i])
		}

		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: SlotCountsBatch - %q: %v", ErrParseValue, raw, err)
		}
		counts[tick] = n
	}

	return counts, nil
}

// StudentBookedTicks проверяет членство студента в глобальных множествах тиков
// Возвращает по одному флагу на тик в исходном порядке
func (r *Repository) StudentBookedTicks(ctx context.Context, date time.Time, ticks []types.TimeString, studentID int64) ([]bool, error) {
	executor := redistx.Executor(ctx, r.client)

	member := strconv.FormatInt(studentID, 10)
	booked := make([]bool, len(ticks))
	for i, tick := range ticks {
		ok, err := executor.SIsMember(ctx, StudentSlotKey(date, tick), member).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: StudentBookedTicks - sismember %s: %v", ErrExecCommand, tick, err)
		}
		booked[i] = ok
	}

	return booked, nil
}

// Reserve увеличивает счётчики занятости и добавляет студента в множества
// всех затронутых тиков. Вызывается только внутри пайплайна транзакции
// бронирования вместе с записью самого бронирования
func (r *Repository) Reserve(ctx context.Context, canteenID int64, date time.Time, ticks []types.TimeString, studentID int64) {
	executor := redistx.Executor(ctx, r.client)

	member := strconv.FormatInt(studentID, 10)
	for _, tick := range ticks {
		executor.Incr(ctx, SlotKey(canteenID, date, tick))
		executor.SAdd(ctx, StudentSlotKey(date, tick), member)
	}
}

// Release уменьшает счётчики занятости и убирает студента из множеств
// Декременты намеренно без ограничения снизу: защита от ухода в минус
// на стороне отображения, а не хранилища
func (r *Repository) Release(ctx context.Context, canteenID int64, date time.Time, ticks []types.TimeString, studentID int64) {
	executor := redistx.Executor(ctx, r.client)

	member := strconv.FormatInt(studentID, 10)
	for _, tick := range ticks {
		executor.Decr(ctx, SlotKey(canteenID, date, tick))
		executor.SRem(ctx, StudentSlotKey(date, tick), member)
	}
}
