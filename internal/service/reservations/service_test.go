package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, args ...any)  {}
func (nopLogger) Warn(format string, args ...any)  {}
func (nopLogger) Error(format string, args ...any) {}

type stubRepo struct {
	items []*domain.Reservation
	from  time.Time
	to    time.Time
}

func (s *stubRepo) GetByStudentBetween(ctx context.Context, studentID int64, from, to time.Time) ([]*domain.Reservation, error) {
	s.from = from
	s.to = to
	return s.items, nil
}

func TestGetByStudentRequiresBothBounds(t *testing.T) {
	svc := New(&stubRepo{}, nopLogger{})
	ctx := context.Background()

	_, err := svc.GetByStudent(ctx, GetByStudentRequest{StudentID: 1, StartDate: "2030-01-15"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetByStudent(ctx, GetByStudentRequest{StudentID: 1, EndDate: "2030-01-15"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetByStudent(ctx, GetByStudentRequest{StudentID: 0, StartDate: "2030-01-15", EndDate: "2030-01-15"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetByStudent(ctx, GetByStudentRequest{StudentID: 1, StartDate: "2030-01-16", EndDate: "2030-01-15"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByStudentMapsReservations(t *testing.T) {
	date := time.Date(2030, time.January, 15, 0, 0, 0, 0, time.UTC)
	repo := &stubRepo{items: []*domain.Reservation{
		{
			ID:              7,
			StudentID:       1,
			CanteenID:       2,
			Date:            date,
			StartTime:       "08:30",
			DurationMinutes: 30,
			Status:          domain.StatusActive,
		},
	}}
	svc := New(repo, nopLogger{})

	resp, err := svc.GetByStudent(context.Background(), GetByStudentRequest{
		StudentID: 1,
		StartDate: "2030-01-15",
		EndDate:   "2030-01-16",
	})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)

	got := resp.Reservations[0]
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "2030-01-15", got.Date)
	assert.Equal(t, domain.StatusActive, got.Status)

	// Границы переданы в хранилище как разобранные даты
	assert.Equal(t, "2030-01-15", repo.from.Format(domain.DateFormat))
	assert.Equal(t, "2030-01-16", repo.to.Format(domain.DateFormat))
}
