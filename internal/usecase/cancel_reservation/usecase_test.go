package cancel_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	occupancyStore "github.com/m04kA/Canteen-BookingService/internal/infra/storage/occupancy"
	reservationStore "github.com/m04kA/Canteen-BookingService/internal/infra/storage/reservation"
	"github.com/m04kA/Canteen-BookingService/pkg/redistx"
	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	useCase         *UseCase
	reservationRepo *reservationStore.Repository
	occupancyRepo   *occupancyStore.Repository
}

var testDay = time.Date(2030, time.January, 15, 0, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	reservationRepository := reservationStore.NewRepository(client)
	occupancyRepository := occupancyStore.NewRepository(client)

	uc := NewUseCase(
		reservationRepository,
		occupancyRepository,
		redistx.NewManager(client, 5),
		nil,
		nopLogger{},
	)

	return &fixture{
		useCase:         uc,
		reservationRepo: reservationRepository,
		occupancyRepo:   occupancyRepository,
	}
}

// seedReservation записывает активную бронь вместе с её следом в учёте
// занятости, как это делает движок бронирования
func (f *fixture) seedReservation(t *testing.T, id, studentID int64, start types.TimeString, duration int) {
	t.Helper()
	ctx := context.Background()

	res := &domain.Reservation{
		ID:              id,
		StudentID:       studentID,
		CanteenID:       1,
		Date:            testDay,
		StartTime:       start,
		DurationMinutes: duration,
		Status:          domain.StatusActive,
		CreatedAt:       time.Date(2030, time.January, 10, 12, 0, 0, 0, time.UTC),
	}

	f.reservationRepo.Create(ctx, res)
	f.occupancyRepo.Reserve(ctx, 1, testDay, res.Ticks(), studentID)

	got, err := f.reservationRepo.GetByID(ctx, id)
	require.NoError(t, err)
	require.True(t, got.IsActive())
}

func TestExecuteCancelsAndReversesOccupancy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedReservation(t, 1, 101, "08:00", 60)

	resp, err := f.useCase.Execute(ctx, &Request{ReservationID: 1, StudentID: 101})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, resp.CancelledAt)

	got, err := f.reservationRepo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.IsCancelled())

	// Счётчики и множества возвращены ровно к нулю
	counts, err := f.occupancyRepo.SlotCounts(ctx, 1, testDay, []types.TimeString{"08:00", "08:30"})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0}, counts)

	booked, err := f.occupancyRepo.StudentBookedTicks(ctx, testDay, []types.TimeString{"08:00", "08:30"}, 101)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false}, booked)
}

func TestExecuteSecondCancelNotApplicable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedReservation(t, 1, 101, "08:30", 30)

	resp, err := f.useCase.Execute(ctx, &Request{ReservationID: 1, StudentID: 101})
	require.NoError(t, err)
	require.NotNil(t, resp)

	// Повторная отмена не применима и не трогает счётчики
	resp, err = f.useCase.Execute(ctx, &Request{ReservationID: 1, StudentID: 101})
	require.NoError(t, err)
	assert.Nil(t, resp)

	counts, err := f.occupancyRepo.SlotCounts(ctx, 1, testDay, []types.TimeString{"08:30"})
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, counts)
}

func TestExecuteForeignReservationNotApplicable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedReservation(t, 1, 101, "08:30", 30)

	resp, err := f.useCase.Execute(ctx, &Request{ReservationID: 1, StudentID: 202})
	require.NoError(t, err)
	assert.Nil(t, resp)

	// Бронь осталась активной, учёт не тронут
	got, err := f.reservationRepo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.IsActive())

	counts, err := f.occupancyRepo.SlotCounts(ctx, 1, testDay, []types.TimeString{"08:30"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, counts)
}

func TestExecuteMissingReservationNotApplicable(t *testing.T) {
	f := newFixture(t)

	resp, err := f.useCase.Execute(context.Background(), &Request{ReservationID: 42, StudentID: 101})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestExecuteInvalidInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.useCase.Execute(context.Background(), &Request{ReservationID: 0, StudentID: 101})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.useCase.Execute(context.Background(), &Request{ReservationID: 1, StudentID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
