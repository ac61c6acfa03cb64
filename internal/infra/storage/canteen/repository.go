package canteen

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

const (
	fieldID           = "id"
	fieldName         = "name"
	fieldCapacity     = "capacity"
	fieldWorkingHours = "workingHours"
	fieldCreatedAt    = "createdAt"
	fieldUpdatedAt    = "updatedAt"

	counterKey = "counter:canteen"
	indexKey   = "canteens:ids" // порядок создания = порядок листинга
)

// CanteenKey ключ хэша с конфигурацией столовой
func CanteenKey(id int64) string {
	return fmt.Sprintf("canteen:%d", id)
}

// workingPeriod представление периода работы в хранилище
type workingPeriod struct {
	Meal string `json:"meal"`
	From string `json:"from"`
	To   string `json:"to"`
}

// Repository хранилище конфигураций столовых
type Repository struct {
	client redis.Cmdable
}

// NewRepository создает новый репозиторий столовых
func NewRepository(client redis.Cmdable) *Repository {
	return &Repository{client: client}
}

// NextID выделяет следующий идентификатор столовой
func (r *Repository) NextID(ctx context.Context) (int64, error) {
	id, err := r.client.Incr(ctx, counterKey).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: NextID - incr: %v", ErrExecCommand, err)
	}
	return id, nil
}

// Create записывает новую столовую и добавляет её в список листинга
func (r *Repository) Create(ctx context.Context, c *domain.Canteen) error {
	fields, err := encodeCanteen(c)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, CanteenKey(c.ID), fields)
	pipe.RPush(ctx, indexKey, strconv.FormatInt(c.ID, 10))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: Create - exec pipeline: %v", ErrExecCommand, err)
	}

	return nil
}

// Update перезаписывает конфигурацию существующей столовой
func (r *Repository) Update(ctx context.Context, c *domain.Canteen) error {
	fields, err := encodeCanteen(c)
	if err != nil {
		return err
	}

	if err := r.client.HSet(ctx, CanteenKey(c.ID), fields).Err(); err != nil {
		return fmt.Errorf("%w: Update - hset: %v", ErrExecCommand, err)
	}

	return nil
}

// GetByID читает столовую по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Canteen, error) {
	fields, err := r.client.HGetAll(ctx, CanteenKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - hgetall: %v", ErrExecCommand, err)
	}
	if len(fields) == 0 {
		return nil, ErrCanteenNotFound
	}

	return decodeCanteen(fields)
}

// List возвращает все столовые в порядке создания
func (r *Repository) List(ctx context.Context) ([]*domain.Canteen, error) {
	rawIDs, err := r.client.LRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: List - lrange: %v", ErrExecCommand, err)
	}

	if len(rawIDs) == 0 {
		return []*domain.Canteen{}, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(rawIDs))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, rawID := range rawIDs {
			id, parseErr := strconv.ParseInt(rawID, 10, 64)
			if parseErr != nil {
				return fmt.Errorf("%w: List - index entry %q: %v", ErrDecodeRecord, rawID, parseErr)
			}
			cmds[i] = pipe.HGetAll(ctx, CanteenKey(id))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: List - pipeline: %v", ErrExecCommand, err)
	}

	result := make([]*domain.Canteen, 0, len(rawIDs))
	for _, cmd := range cmds {
		fields, cmdErr := cmd.Result()
		if cmdErr != nil {
			return nil, fmt.Errorf("%w: List - hgetall: %v", ErrExecCommand, cmdErr)
		}
		if len(fields) == 0 {
			continue
		}

		c, decodeErr := decodeCanteen(fields)
		if decodeErr != nil {
			return nil, decodeErr
		}
		result = append(result, c)
	}

	return result, nil
}

func encodeCanteen(c *domain.Canteen) (map[string]interface{}, error) {
	periods := make([]workingPeriod, len(c.WorkingHours))
	for i, p := range c.WorkingHours {
		periods[i] = workingPeriod{
			Meal: string(p.Meal),
			From: p.From.String(),
			To:   p.To.String(),
		}
	}

	hours, err := json.Marshal(periods)
	if err != nil {
		return nil, fmt.Errorf("%w: encode working hours: %v", ErrDecodeRecord, err)
	}

	return map[string]interface{}{
		fieldID:           strconv.FormatInt(c.ID, 10),
		fieldName:         c.Name,
		fieldCapacity:     strconv.Itoa(c.Capacity),
		fieldWorkingHours: string(hours),
		fieldCreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339),
		fieldUpdatedAt:    c.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func decodeCanteen(fields map[string]string) (*domain.Canteen, error) {
	id, err := strconv.ParseInt(fields[fieldID], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: field %s=%q: %v", ErrDecodeRecord, fieldID, fields[fieldID], err)
	}

	capacity, err := strconv.Atoi(fields[fieldCapacity])
	if err != nil {
		return nil, fmt.Errorf("%w: field %s=%q: %v", ErrDecodeRecord, fieldCapacity, fields[fieldCapacity], err)
	}

	var periods []workingPeriod
	if err := json.Unmarshal([]byte(fields[fieldWorkingHours]), &periods); err != nil {
		return nil, fmt.Errorf("%w: field %s: %v", ErrDecodeRecord, fieldWorkingHours, err)
	}

	workingHours := make([]domain.MealPeriod, len(periods))
	for i, p := range periods {
		from, fromErr := types.NewTimeStringFromString(p.From)
		if fromErr != nil {
			return nil, fmt.Errorf("%w: period %d from: %v", ErrDecodeRecord, i, fromErr)
		}
		to, toErr := types.NewTimeStringFromString(p.To)
		if toErr != nil {
			return nil, fmt.Errorf("%w: period %d to: %v", ErrDecodeRecord, i, toErr)
		}
		workingHours[i] = domain.MealPeriod{
			Meal: domain.Meal(p.Meal),
			From: from,
			To:   to,
		}
	}

	createdAt, err := time.Parse(time.RFC3339, fields[fieldCreatedAt])
	if err != nil {
		return nil, fmt.Errorf("%w: field %s=%q: %v", ErrDecodeRecord, fieldCreatedAt, fields[fieldCreatedAt], err)
	}

	updatedAt, err := time.Parse(time.RFC3339, fields[fieldUpdatedAt])
	if err != nil {
		return nil, fmt.Errorf("%w: field %s=%q: %v", ErrDecodeRecord, fieldUpdatedAt, fields[fieldUpdatedAt], err)
	}

	return &domain.Canteen{
		ID:           id,
		Name:         fields[fieldName],
		Capacity:     capacity,
		WorkingHours: workingHours,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}
