package canteens

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	canteenstore "github.com/m04kA/Canteen-BookingService/internal/infra/storage/canteen"
	studentstore "github.com/m04kA/Canteen-BookingService/internal/infra/storage/student"
)

// Service - сервис управления столовыми
// Создание и изменение столовых доступно только администраторам
type Service struct {
	canteenRepo  CanteenRepository
	studentRepo  StudentRepository
	timeProvider TimeProvider
	logger       Logger
}

func New(canteenRepo CanteenRepository, studentRepo StudentRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		canteenRepo:  canteenRepo,
		studentRepo:  studentRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create создает новую столовую
func (s *Service) Create(ctx context.Context, req SaveRequest) (*Canteen, error) {
	// 1. Проверка прав
	if err := s.checkAdmin(ctx, req.RequesterID); err != nil {
		return nil, err
	}

	// 2. Валидация входных данных
	periods, err := validateSaveRequest(req)
	if err != nil {
		return nil, err
	}

	// 3. Выделение идентификатора и запись
	id, err := s.canteenRepo.NextID(ctx)
	if err != nil {
		s.logger.Error("canteens service: failed to allocate canteen id: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	canteen := &domain.Canteen{
		ID:           id,
		Name:         strings.TrimSpace(req.Name),
		Capacity:     req.Capacity,
		WorkingHours: periods,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.canteenRepo.Create(ctx, canteen); err != nil {
		s.logger.Error("canteens service: failed to create canteen: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("canteens service: created canteen %d (%s)", canteen.ID, canteen.Name)

	return toResponse(canteen), nil
}

// Update перезаписывает конфигурацию существующей столовой
// Идентификатор и время создания сохраняются
func (s *Service) Update(ctx context.Context, id int64, req SaveRequest) (*Canteen, error) {
	// 1. Проверка прав
	if err := s.checkAdmin(ctx, req.RequesterID); err != nil {
		return nil, err
	}

	// 2. Валидация входных данных
	if id <= 0 {
		return nil, fmt.Errorf("%w: canteen id must be positive", ErrInvalidInput)
	}
	periods, err := validateSaveRequest(req)
	if err != nil {
		return nil, err
	}

	// 3. Столовая должна существовать
	current, err := s.canteenRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, canteenstore.ErrCanteenNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrCanteenNotFound, id)
		}
		s.logger.Error("canteens service: failed to load canteen %d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Перезапись
	canteen := &domain.Canteen{
		ID:           current.ID,
		Name:         strings.TrimSpace(req.Name),
		Capacity:     req.Capacity,
		WorkingHours: periods,
		CreatedAt:    current.CreatedAt,
		UpdatedAt:    s.timeProvider.Now(),
	}

	if err := s.canteenRepo.Update(ctx, canteen); err != nil {
		s.logger.Error("canteens service: failed to update canteen %d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("canteens service: updated canteen %d (%s)", canteen.ID, canteen.Name)

	return toResponse(canteen), nil
}

// GetByID возвращает столовую по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*Canteen, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: canteen id must be positive", ErrInvalidInput)
	}

	canteen, err := s.canteenRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, canteenstore.ErrCanteenNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrCanteenNotFound, id)
		}
		s.logger.Error("canteens service: failed to load canteen %d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return toResponse(canteen), nil
}

// List возвращает все столовые в порядке создания
func (s *Service) List(ctx context.Context) ([]Canteen, error) {
	items, err := s.canteenRepo.List(ctx)
	if err != nil {
		s.logger.Error("canteens service: failed to list canteens: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	result := make([]Canteen, 0, len(items))
	for _, c := range items {
		result = append(result, *toResponse(c))
	}
	return result, nil
}

func (s *Service) checkAdmin(ctx context.Context, requesterID int64) error {
	if requesterID <= 0 {
		return fmt.Errorf("%w: requester id must be positive", ErrInvalidInput)
	}

	student, err := s.studentRepo.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, studentstore.ErrStudentNotFound) {
			return fmt.Errorf("%w: unknown requester %d", ErrPermissionDenied, requesterID)
		}
		s.logger.Error("canteens service: failed to load requester %d: %v", requesterID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !student.IsAdmin {
		return fmt.Errorf("%w: student %d is not an administrator", ErrPermissionDenied, requesterID)
	}

	return nil
}

func toResponse(c *domain.Canteen) *Canteen {
	periods := make([]MealPeriod, len(c.WorkingHours))
	for i, p := range c.WorkingHours {
		periods[i] = MealPeriod{
			Meal: string(p.Meal),
			From: p.From.String(),
			To:   p.To.String(),
		}
	}
	return &Canteen{
		ID:           c.ID,
		Name:         c.Name,
		Capacity:     c.Capacity,
		WorkingHours: periods,
	}
}
