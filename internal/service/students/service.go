package students

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	studentstore "github.com/m04kA/Canteen-BookingService/internal/infra/storage/student"
)

// Service - сервис учётных записей студентов
type Service struct {
	repo         StudentRepository
	timeProvider TimeProvider
	logger       Logger
}

func New(repo StudentRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register регистрирует нового студента. Email уникален в пределах системы
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Student, error) {
	// 1. Валидация входных данных
	if err := validateRegister(req); err != nil {
		return nil, err
	}

	// 2. Выделение идентификатора
	id, err := s.repo.NextID(ctx)
	if err != nil {
		s.logger.Error("students service: failed to allocate student id: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	student := &domain.Student{
		ID:        id,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		IsAdmin:   req.IsAdmin,
		CreatedAt: s.timeProvider.Now(),
	}

	// 3. Запись с захватом email-индекса
	if err := s.repo.Create(ctx, student); err != nil {
		if errors.Is(err, studentstore.ErrEmailTaken) {
			return nil, fmt.Errorf("%w: %s", ErrEmailTaken, student.Email)
		}
		s.logger.Error("students service: failed to create student: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("students service: registered student %d (%s)", student.ID, student.Email)

	return &Student{
		ID:      student.ID,
		Name:    student.Name,
		Email:   student.Email,
		IsAdmin: student.IsAdmin,
	}, nil
}

// GetByID возвращает студента по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: student id must be positive", ErrInvalidInput)
	}

	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, studentstore.ErrStudentNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrStudentNotFound, id)
		}
		s.logger.Error("students service: failed to load student %d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Student{
		ID:      student.ID,
		Name:    student.Name,
		Email:   student.Email,
		IsAdmin: student.IsAdmin,
	}, nil
}

func validateRegister(req RegisterRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxStudentNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is too long", ErrInvalidInput)
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("%w: invalid email %q", ErrInvalidInput, email)
	}

	return nil
}
