package student

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
)

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestCreateAndGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestClient(t))

	s := &domain.Student{
		ID:        1,
		Name:      "Иван Петров",
		Email:     "ivan@university.edu",
		IsAdmin:   false,
		CreatedAt: time.Date(2030, time.January, 10, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, s.Name, got.Name)
	assert.Equal(t, s.Email, got.Email)
	assert.False(t, got.IsAdmin)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestClient(t))

	first := &domain.Student{ID: 1, Name: "Иван", Email: "ivan@university.edu", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, first))

	// Регистр адреса не влияет на уникальность
	second := &domain.Student{ID: 2, Name: "Другой Иван", Email: "IVAN@university.edu", CreatedAt: time.Now()}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestClient(t))

	ok, err := repo.Exists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Create(ctx, &domain.Student{
		ID: 1, Name: "Иван", Email: "ivan@university.edu", CreatedAt: time.Now(),
	}))

	ok, err = repo.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGetByIDNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestClient(t))

	_, err := repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, ErrStudentNotFound)
}
