package canteen

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

func testCanteen(id int64, name string) *domain.Canteen {
	now := time.Date(2030, time.January, 10, 12, 0, 0, 0, time.UTC)
	return &domain.Canteen{
		ID:       id,
		Name:     name,
		Capacity: 30,
		WorkingHours: []domain.MealPeriod{
			{Meal: domain.MealBreakfast, From: "08:00", To: "10:00"},
			{Meal: domain.MealLunch, From: "12:00", To: "14:00"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateAndGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestClient(t))

	c := testCanteen(1, "Главная столовая")
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, c.Capacity, got.Capacity)
	assert.Equal(t, c.WorkingHours, got.WorkingHours)
}

func TestGetByIDNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestClient(t))

	_, err := repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, ErrCanteenNotFound)
}

func TestListPreservesCreationOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestClient(t))

	require.NoError(t, repo.Create(ctx, testCanteen(2, "Вторая")))
	require.NoError(t, repo.Create(ctx, testCanteen(1, "Первая")))
	require.NoError(t, repo.Create(ctx, testCanteen(3, "Третья")))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
	assert.Equal(t, int64(3), got[2].ID)
}

func TestUpdateOverwritesConfig(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestClient(t))

	c := testCanteen(1, "Столовая")
	require.NoError(t, repo.Create(ctx, c))

	c.Capacity = 50
	c.WorkingHours = []domain.MealPeriod{
		{Meal: domain.MealDinner, From: "18:00", To: "20:00"},
	}
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Capacity)
	assert.Equal(t, c.WorkingHours, got.WorkingHours)
}

func TestNextIDMonotonic(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestClient(t))

	first, err := repo.NextID(ctx)
	require.NoError(t, err)
	second, err := repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first+1, second)
}
