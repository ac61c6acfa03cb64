package reservation

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	"github.com/m04kA/Canteen-BookingService/pkg/redistx"
)

// Repository хранилище записей бронирований
// Записи никогда не удаляются: отмена только обновляет поля статуса
type Repository struct {
	client redis.Cmdable
}

// NewRepository создает новый репозиторий бронирований
func NewRepository(client redis.Cmdable) *Repository {
	return &Repository{client: client}
}

// NextID выделяет следующий идентификатор бронирования
//
// Вызывается ДО охраняемой транзакции: если транзакция не пройдёт,
// идентификатор сгорит - монотонность и уникальность при этом
// сохраняются (семантика sequence)
func (r *Repository) NextID(ctx context.Context) (int64, error) {
	id, err := r.client.Incr(ctx, counterKey).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: NextID - incr: %v", ErrExecCommand, err)
	}
	return id, nil
}

// Create записывает бронирование и добавляет его в индекс студента
// Вызывается внутри пайплайна транзакции бронирования
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) {
	executor := redistx.Executor(ctx, r.client)

	executor.HSet(ctx, ReservationKey(res.ID), encodeReservation(res))
	executor.SAdd(ctx, StudentIndexKey(res.StudentID), strconv.FormatInt(res.ID, 10))
}

// GetByID читает бронирование по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := redistx.Executor(ctx, r.client)

	fields, err := executor.HGetAll(ctx, ReservationKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - hgetall: %v", ErrExecCommand, err)
	}
	if len(fields) == 0 {
		return nil, ErrReservationNotFound
	}

	return decodeReservation(fields)
}

// MarkCancelled переводит бронирование в статус cancelled
// Вызывается внутри пайплайна транзакции отмены вместе с декрементами
// счётчиков занятости
func (r *Repository) MarkCancelled(ctx context.Context, id int64, cancelledAt time.Time) {
	executor := redistx.Executor(ctx, r.client)

	executor.HSet(ctx, ReservationKey(id),
		fieldStatus, string(domain.StatusCancelled),
		fieldCancelledAt, cancelledAt.UTC().Format(time.RFC3339),
	)
}

// GetByStudentBetween возвращает бронирования студента (в любом статусе)
// с датой в диапазоне [from, to] включительно, отсортированные по
// возрастанию даты, затем времени начала
func (r *Repository) GetByStudentBetween(ctx context.Context, studentID int64, from, to time.Time) ([]*domain.Reservation, error) {
	rawIDs, err := r.client.SMembers(ctx, StudentIndexKey(studentID)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStudentBetween - smembers: %v", ErrExecCommand, err)
	}

	if len(rawIDs) == 0 {
		return []*domain.Reservation{}, nil
	}

	// Читаем записи одним пайплайном
	cmds := make([]*redis.MapStringStringCmd, len(rawIDs))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, rawID := range rawIDs {
			id, parseErr := strconv.ParseInt(rawID, 10, 64)
			if parseErr != nil {
				return fmt.Errorf("%w: GetByStudentBetween - index entry %q: %v", ErrDecodeRecord, rawID, parseErr)
			}
			cmds[i] = pipe.HGetAll(ctx, ReservationKey(id))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStudentBetween - pipeline: %v", ErrExecCommand, err)
	}

	fromDate := domain.DateOnly(from)
	toDate := domain.DateOnly(to)

	result := make([]*domain.Reservation, 0, len(rawIDs))
	for _, cmd := range cmds {
		fields, cmdErr := cmd.Result()
		if cmdErr != nil {
			return nil, fmt.Errorf("%w: GetByStudentBetween - hgetall: %v", ErrExecCommand, cmdErr)
		}
		// Висячая запись индекса без хэша - пропускаем
		if len(fields) == 0 {
			continue
		}

		res, decodeErr := decodeReservation(fields)
		if decodeErr != nil {
			return nil, decodeErr
		}

		date := domain.DateOnly(res.Date)
		if date.Before(fromDate) || date.After(toDate) {
			continue
		}

		result = append(result, res)
	}

	sort.Slice(result, func(i, j int) bool {
		if !domain.SameDay(result[i].Date, result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})

	return result, nil
}
