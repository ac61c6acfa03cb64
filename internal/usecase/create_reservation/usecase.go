package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	canteenRepo "github.com/m04kA/Canteen-BookingService/internal/infra/storage/canteen"
	"github.com/m04kA/Canteen-BookingService/internal/infra/storage/occupancy"
	"github.com/m04kA/Canteen-BookingService/pkg/metrics"
	"github.com/m04kA/Canteen-BookingService/pkg/redistx"
)

// UseCase use case создания бронирования
//
// Центральное свойство корректности: проверка вместимости и глобальной
// занятости студента и применение записей выполняются как одна неделимая
// единица относительно конкурентных запросов. Два одновременных запроса
// на последнее место не могут пройти проверку оба
type UseCase struct {
	canteenRepo     CanteenRepository
	studentRepo     StudentRepository
	reservationRepo ReservationRepository
	occupancyRepo   OccupancyRepository
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если метрики выключены
func NewUseCase(
	canteenRepo CanteenRepository,
	studentRepo StudentRepository,
	reservationRepo ReservationRepository,
	occupancyRepo OccupancyRepository,
	txManager TransactionManager,
	m Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		canteenRepo:     canteenRepo,
		studentRepo:     studentRepo,
		reservationRepo: reservationRepo,
		occupancyRepo:   occupancyRepo,
		txManager:       txManager,
		metrics:         m,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: student=%d, canteen=%d, date=%s, time=%s, duration=%d",
		req.StudentID, req.CanteenID, req.Date, req.StartTime, req.DurationMinutes)

	// 1. Валидация и разбор входных данных
	date, startTime, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Столовая должна существовать
	canteen, err := uc.canteenRepo.GetByID(ctx, req.CanteenID)
	if err != nil {
		if errors.Is(err, canteenRepo.ErrCanteenNotFound) {
			uc.logger.Warn("CreateReservation: canteen id=%d not found", req.CanteenID)
			return nil, ErrCanteenNotFound
		}
		uc.logger.Error("CreateReservation: failed to get canteen id=%d: %v", req.CanteenID, err)
		return nil, fmt.Errorf("%w: failed to get canteen: %v", ErrInternal, err)
	}

	// 3. Студент должен существовать
	exists, err := uc.studentRepo.Exists(ctx, req.StudentID)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to check student id=%d: %v", req.StudentID, err)
		return nil, fmt.Errorf("%w: failed to check student: %v", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("CreateReservation: student id=%d not found", req.StudentID)
		return nil, ErrStudentNotFound
	}

	// 4. Бронь в прошлое не принимается
	now := uc.timeProvider.Now()
	if isInPast(date, startTime, now) {
		uc.logger.Warn("CreateReservation: booking %s %s is in the past", req.Date, req.StartTime)
		return nil, ErrBookingInPast
	}

	// 5. Слот должен целиком попадать в один период работы
	if _, ok := canteen.SlotMeal(startTime, req.DurationMinutes); !ok {
		uc.logger.Warn("CreateReservation: slot %s %s/%d is outside meal periods of canteen id=%d",
			req.Date, req.StartTime, req.DurationMinutes, req.CanteenID)
		return nil, ErrInvalidTimeSlot
	}

	// 6. Затронутые тики: один для 30 минут, два для 60
	ticks := domain.TicksFor(startTime, req.DurationMinutes)
	watchKeys := occupancy.WatchKeys(req.CanteenID, date, ticks)

	// 7. Идентификатор выделяем заранее: сгоревший id при откате
	//    не нарушает монотонность
	reservationID, err := uc.reservationRepo.NextID(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to allocate id: %v", err)
		return nil, fmt.Errorf("%w: failed to allocate id: %v", ErrInternal, err)
	}

	reservation := &domain.Reservation{
		ID:              reservationID,
		StudentID:       req.StudentID,
		CanteenID:       req.CanteenID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: req.DurationMinutes,
		Status:          domain.StatusActive,
		CreatedAt:       now,
	}

	// 8. Проверка-и-запись одной оптимистичной транзакцией над всеми ключами
	err = uc.txManager.DoOptimistic(ctx, watchKeys, func(txCtx context.Context) error {
		// 8.1. Счётчики занятости всех затронутых тиков
		counts, err := uc.occupancyRepo.SlotCounts(txCtx, req.CanteenID, date, ticks)
		if err != nil {
			return fmt.Errorf("%w: failed to read slot counts: %v", ErrInternal, err)
		}

		for i, count := range counts {
			if count >= int64(canteen.Capacity) {
				uc.logger.Warn("CreateReservation: slot %s %s at canteen id=%d is full (%d/%d)",
					req.Date, ticks[i], req.CanteenID, count, canteen.Capacity)
				return fmt.Errorf("%w: slot %s %s", ErrSlotFullyBooked, req.Date, ticks[i])
			}
		}

		// 8.2. Глобальная занятость студента - намеренно без измерения
		//      столовой: бронь на 08:30 в другой столовой тоже конфликт
		booked, err := uc.occupancyRepo.StudentBookedTicks(txCtx, date, ticks, req.StudentID)
		if err != nil {
			return fmt.Errorf("%w: failed to read student ticks: %v", ErrInternal, err)
		}

		for i, isBooked := range booked {
			if isBooked {
				uc.logger.Warn("CreateReservation: student id=%d already booked at %s %s",
					req.StudentID, req.Date, ticks[i])
				return fmt.Errorf("%w: tick %s %s", ErrStudentAlreadyBooked, req.Date, ticks[i])
			}
		}

		// 8.3. Все проверки прошли: запись брони, инкременты счётчиков
		//      и добавление в множества - одним блоком
		return redistx.Pipelined(txCtx, func(pipeCtx context.Context) error {
			uc.reservationRepo.Create(pipeCtx, reservation)
			uc.occupancyRepo.Reserve(pipeCtx, req.CanteenID, date, ticks, req.StudentID)
			return nil
		})
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotFullyBooked):
			if uc.metrics != nil {
				uc.metrics.IncReservationConflict(metrics.ConflictSlotFull)
			}
		case errors.Is(err, ErrStudentAlreadyBooked):
			if uc.metrics != nil {
				uc.metrics.IncReservationConflict(metrics.ConflictAlreadyBooked)
			}
		case errors.Is(err, redistx.ErrTxConflict):
			if uc.metrics != nil {
				uc.metrics.IncReservationConflict(metrics.ConflictTxRetry)
			}
			uc.logger.Error("CreateReservation: transaction did not settle: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncReservationCreated()
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", reservation.ID)

	return &Response{
		ID:              reservation.ID,
		StudentID:       reservation.StudentID,
		CanteenID:       reservation.CanteenID,
		Date:            reservation.Date,
		StartTime:       reservation.StartTime,
		DurationMinutes: reservation.DurationMinutes,
		Status:          string(reservation.Status),
		CreatedAt:       reservation.CreatedAt,
	}, nil
}
