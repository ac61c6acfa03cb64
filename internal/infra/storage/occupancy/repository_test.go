package occupancy

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestReserveAndSlotCounts(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestClient(t))
	day := time.Date(2030, time.January, 15, 0, 0, 0, 0, time.UTC)
	ticks := []types.TimeString{"08:00", "08:30"}

	repo.Reserve(ctx, 1, day, ticks, 101)
	repo.Reserve(ctx, 1, day, []types.TimeString{"08:00"}, 102)

	counts, err := repo.SlotCounts(ctx, 1, day, ticks)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, counts)

	// Счётчики другой столовой не затронуты
	counts, err = repo.SlotCounts(ctx, 2, day, ticks)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0}, counts)
}

func TestStudentBookedTicksGlobalAcrossCanteens(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestClient(t))
	day := time.Date(2030, time.January, 15, 0, 0, 0, 0, time.UTC)

	// Множество студентов ведётся по дате и тику, без привязки к столовой
	repo.Reserve(ctx, 1, day, []types.TimeString{"12:00"}, 101)

	booked, err := repo.StudentBookedTicks(ctx, day, []types.TimeString{"12:00", "12:30"}, 101)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, booked)

	booked, err = repo.StudentBookedTicks(ctx, day, []types.TimeString{"12:00"}, 102)
	require.NoError(t, err)
	assert.Equal(t, []bool{false}, booked)
}

func TestReleaseReversesReserve(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestClient(t))
	day := time.Date(2030, time.January, 15, 0, 0, 0, 0, time.UTC)
	ticks := []types.TimeString{"18:00", "18:30"}

	repo.Reserve(ctx, 3, day, ticks, 101)
	repo.Release(ctx, 3, day, ticks, 101)

	counts, err := repo.SlotCounts(ctx, 3, day, ticks)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0}, counts)

	booked, err := repo.StudentBookedTicks(ctx, day, ticks, 101)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false}, booked)
}

func TestReleaseDoesNotClampBelowZero(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestClient(t))
	day := time.Date(2030, time.January, 15, 0, 0, 0, 0, time.UTC)
	ticks := []types.TimeString{"08:00"}

	repo.Release(ctx, 1, day, ticks, 101)

	counts, err := repo.SlotCounts(ctx, 1, day, ticks)
	require.NoError(t, err)
	assert.Equal(t, []int64{-1}, counts)
}

func TestSlotCountsBatch(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(newTestClient(t))
	day := time.Date(2030, time.January, 15, 0, 0, 0, 0, time.UTC)

	repo.Reserve(ctx, 1, day, []types.TimeString{"08:00"}, 101)
	repo.Reserve(ctx, 1, day, []types.TimeString{"08:00"}, 102)

	counts, err := repo.SlotCountsBatch(ctx, 1, day, []types.TimeString{"08:00", "08:30"})
	require.NoError(t, err)
	assert.Equal(t, map[types.TimeString]int64{"08:00": 2, "08:30": 0}, counts)

	empty, err := repo.SlotCountsBatch(ctx, 1, day, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestKeys(t *testing.T) {
	day := time.Date(2030, time.January, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "slot:7:2030-01-15:08:30", SlotKey(7, day, "08:30"))
	assert.Equal(t, "studentSlot:2030-01-15:08:30", StudentSlotKey(day, "08:30"))

	keys := WatchKeys(7, day, []types.TimeString{"08:00", "08:30"})
	assert.Equal(t, []string{
		"slot:7:2030-01-15:08:00",
		"slot:7:2030-01-15:08:30",
		"studentSlot:2030-01-15:08:00",
		"studentSlot:2030-01-15:08:30",
	}, keys)
}
