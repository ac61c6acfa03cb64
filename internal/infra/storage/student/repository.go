package student

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
)

const (
	fieldID        = "id"
	fieldName      = "name"
	fieldEmail     = "email"
	fieldIsAdmin   = "isAdmin"
	fieldCreatedAt = "createdAt"

	counterKey = "counter:student"
)

// StudentKey ключ хэша с записью студента
func StudentKey(id int64) string {
	return fmt.Sprintf("student:%d", id)
}

// EmailIndexKey ключ индекса уникальности email
func EmailIndexKey(email string) string {
	return fmt.Sprintf("student:email:%s", strings.ToLower(email))
}

// Repository хранилище учётных записей студентов
type Repository struct {
	client redis.Cmdable
}

// NewRepository создает новый репозиторий студентов
func NewRepository(client redis.Cmdable) *Repository {
	return &Repository{client: client}
}

// NextID выделяет следующий идентификатор студента
func (r *Repository) NextID(ctx context.Context) (int64, error) {
	id, err := r.client.Incr(ctx, counterKey).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: NextID - incr: %v", ErrExecCommand, err)
	}
	return id, nil
}

// Create записывает нового студента
// Уникальность email обеспечивается атомарным захватом индексного ключа
// (SETNX): кто захватил, тот и регистрируется с этим адресом
func (r *Repository) Create(ctx context.Context, s *domain.Student) error {
	claimed, err := r.client.SetNX(ctx, EmailIndexKey(s.Email), strconv.FormatInt(s.ID, 10), 0).Result()
	if err != nil {
		return fmt.Errorf("%w: Create - setnx email index: %v", ErrExecCommand, err)
	}
	if !claimed {
		return ErrEmailTaken
	}

	fields := map[string]interface{}{
		fieldID:        strconv.FormatInt(s.ID, 10),
		fieldName:      s.Name,
		fieldEmail:     s.Email,
		fieldIsAdmin:   strconv.FormatBool(s.IsAdmin),
		fieldCreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
	}

	if err := r.client.HSet(ctx, StudentKey(s.ID), fields).Err(); err != nil {
		return fmt.Errorf("%w: Create - hset: %v", ErrExecCommand, err)
	}

	return nil
}

// GetByID читает студента по идентификатору
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	fields, err := r.client.HGetAll(ctx, StudentKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - hgetall: %v", ErrExecCommand, err)
	}
	if len(fields) == 0 {
		return nil, ErrStudentNotFound
	}

	return decodeStudent(fields)
}

// Exists проверяет существование студента
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	n, err := r.client.Exists(ctx, StudentKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - exists: %v", ErrExecCommand, err)
	}
	return n > 0, nil
}

func decodeStudent(fields map[string]string) (*domain.Student, error) {
	id, err := strconv.ParseInt(fields[fieldID], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: field %s=%q: %v", ErrDecodeRecord, fieldID, fields[fieldID], err)
	}

	isAdmin, err := strconv.ParseBool(fields[fieldIsAdmin])
	if err != nil {
		return nil, fmt.Errorf("%w: field %s=%q: %v", ErrDecodeRecord, fieldIsAdmin, fields[fieldIsAdmin], err)
	}

	createdAt, err := time.Parse(time.RFC3339, fields[fieldCreatedAt])
	if err != nil {
		return nil, fmt.Errorf("%w: field %s=%q: %v", ErrDecodeRecord, fieldCreatedAt, fields[fieldCreatedAt], err)
	}

	return &domain.Student{
		ID:        id,
		Name:      fields[fieldName],
		Email:     fields[fieldEmail],
		IsAdmin:   isAdmin,
		CreatedAt: createdAt,
	}, nil
}
