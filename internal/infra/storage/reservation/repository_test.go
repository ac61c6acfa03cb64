package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

func newTestClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func testReservation(id, studentID int64, day string, start string) *domain.Reservation {
	date, _ := time.Parse(domain.DateFormat, day)
	return &domain.Reservation{
		ID:              id,
		StudentID:       studentID,
		CanteenID:       1,
		Date:            date,
		StartTime:       types.TimeString(start),
		DurationMinutes: 30,
		Status:          domain.StatusActive,
		CreatedAt:       time.Date(2030, time.January, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestNextIDMonotonic(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t)
	repo := NewRepository(client)

	first, err := repo.NextID(ctx)
	require.NoError(t, err)
	second, err := repo.NextID(ctx)
	require.NoError(t, err)

	assert.Equal(t, first+1, second)
}

func TestCreateAndGetByID(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t)
	repo := NewRepository(client)

	res := testReservation(1, 101, "2030-01-15", "08:30")
	repo.Create(ctx, res)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, res.ID, got.ID)
	assert.Equal(t, res.StudentID, got.StudentID)
	assert.Equal(t, res.CanteenID, got.CanteenID)
	assert.True(t, domain.SameDay(res.Date, got.Date))
	assert.Equal(t, res.StartTime, got.StartTime)
	assert.Equal(t, res.DurationMinutes, got.DurationMinutes)
	assert.Equal(t, domain.StatusActive, got.Status)
	assert.Nil(t, got.CancelledAt)
}

func TestGetByIDNotFound(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t)
	repo := NewRepository(client)

	_, err := repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestMarkCancelled(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t)
	repo := NewRepository(client)

	repo.Create(ctx, testReservation(1, 101, "2030-01-15", "08:30"))

	cancelledAt := time.Date(2030, time.January, 14, 16, 30, 0, 0, time.UTC)
	repo.MarkCancelled(ctx, 1, cancelledAt)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)
	require.NotNil(t, got.CancelledAt)
	assert.True(t, got.CancelledAt.Equal(cancelledAt))
}

func TestGetByStudentBetween(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t)
	repo := NewRepository(client)

	// Вне диапазона, внутри, внутри (другой день), чужое бронирование
	repo.Create(ctx, testReservation(1, 101, "2030-01-10", "08:00"))
	repo.Create(ctx, testReservation(2, 101, "2030-01-16", "12:30"))
	repo.Create(ctx, testReservation(3, 101, "2030-01-15", "08:00"))
	repo.Create(ctx, testReservation(4, 202, "2030-01-15", "08:00"))

	from, _ := time.Parse(domain.DateFormat, "2030-01-15")
	to, _ := time.Parse(domain.DateFormat, "2030-01-16")

	got, err := repo.GetByStudentBetween(ctx, 101, from, to)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Сортировка по дате, затем по времени
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestGetByStudentBetweenSortsWithinDay(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t)
	repo := NewRepository(client)

	repo.Create(ctx, testReservation(1, 101, "2030-01-15", "13:00"))
	repo.Create(ctx, testReservation(2, 101, "2030-01-15", "08:00"))
	repo.Create(ctx, testReservation(3, 101, "2030-01-15", "12:00"))

	from, _ := time.Parse(domain.DateFormat, "2030-01-15")

	got, err := repo.GetByStudentBetween(ctx, 101, from, from)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
	assert.Equal(t, int64(1), got[2].ID)
}

func TestGetByStudentBetweenSkipsDanglingIndexEntry(t *testing.T) {
	ctx := context.Background()
	client, mr := newTestClient(t)
	repo := NewRepository(client)

	repo.Create(ctx, testReservation(1, 101, "2030-01-15", "08:00"))

	// Запись индекса без самого хэша
	_, err := mr.SetAdd(StudentIndexKey(101), "999")
	require.NoError(t, err)

	from, _ := time.Parse(domain.DateFormat, "2030-01-15")

	got, err := repo.GetByStudentBetween(ctx, 101, from, from)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestGetByStudentBetweenEmpty(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t)
	repo := NewRepository(client)

	from, _ := time.Parse(domain.DateFormat, "2030-01-15")

	got, err := repo.GetByStudentBetween(ctx, 101, from, from)
	require.NoError(t, err)
	assert.Empty(t, got)
}
