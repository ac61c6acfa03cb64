package students

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	studentstore "github.com/m04kA/Canteen-BookingService/internal/infra/storage/student"
)

type nopLogger struct{}

func (nopLogger) Info(format string, args ...any)  {}
func (nopLogger) Warn(format string, args ...any)  {}
func (nopLogger) Error(format string, args ...any) {}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

type stubRepo struct {
	nextID  int64
	created *domain.Student
	byID    map[int64]*domain.Student
	err     error
}

func (s *stubRepo) NextID(ctx context.Context) (int64, error) {
	s.nextID++
	return s.nextID, nil
}

func (s *stubRepo) Create(ctx context.Context, student *domain.Student) error {
	if s.err != nil {
		return s.err
	}
	s.created = student
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	student, ok := s.byID[id]
	if !ok {
		return nil, studentstore.ErrStudentNotFound
	}
	return student, nil
}

func TestRegisterSuccess(t *testing.T) {
	now := time.Date(2030, time.January, 10, 12, 0, 0, 0, time.UTC)
	repo := &stubRepo{}
	svc := New(repo, fixedClock{t: now}, nopLogger{})

	got, err := svc.Register(context.Background(), RegisterRequest{
		Name:  "  Иван Петров ",
		Email: " ivan@university.edu ",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Иван Петров", got.Name)
	assert.Equal(t, "ivan@university.edu", got.Email)
	assert.False(t, got.IsAdmin)

	require.NotNil(t, repo.created)
	assert.True(t, repo.created.CreatedAt.Equal(now))
}

func TestRegisterValidation(t *testing.T) {
	svc := New(&stubRepo{}, fixedClock{}, nopLogger{})
	ctx := context.Background()

	cases := []struct {
		name string
		req  RegisterRequest
	}{
		{"empty name", RegisterRequest{Email: "a@b.edu"}},
		{"empty email", RegisterRequest{Name: "Иван"}},
		{"email without at", RegisterRequest{Name: "Иван", Email: "ivan.university.edu"}},
		{"email starts with at", RegisterRequest{Name: "Иван", Email: "@university.edu"}},
		{"email ends with at", RegisterRequest{Name: "Иван", Email: "ivan@"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegisterEmailTaken(t *testing.T) {
	repo := &stubRepo{err: studentstore.ErrEmailTaken}
	svc := New(repo, fixedClock{}, nopLogger{})

	_, err := svc.Register(context.Background(), RegisterRequest{Name: "Иван", Email: "ivan@university.edu"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetByID(t *testing.T) {
	repo := &stubRepo{byID: map[int64]*domain.Student{
		5: {ID: 5, Name: "Иван", Email: "ivan@university.edu", IsAdmin: true},
	}}
	svc := New(repo, fixedClock{}, nopLogger{})

	got, err := svc.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, got.IsAdmin)

	_, err = svc.GetByID(context.Background(), 6)
	assert.ErrorIs(t, err, ErrStudentNotFound)

	_, err = svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
