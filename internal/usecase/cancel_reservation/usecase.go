package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	"github.com/m04kA/Canteen-BookingService/internal/infra/storage/occupancy"
	reservationRepo "github.com/m04kA/Canteen-BookingService/internal/infra/storage/reservation"
	"github.com/m04kA/Canteen-BookingService/pkg/redistx"
)

// UseCase use case отмены бронирования
//
// Отмена в точности обращает след брони в учёте занятости: декременты
// и удаления из множеств идут в одной транзакции со сменой статуса,
// чтобы конкурентная повторная отмена не сняла счётчики дважды
type UseCase struct {
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
	resRepo ReservationRepository,
	occupancyRepo OccupancyRepository,
	txManager TransactionManager,
	m Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: resRepo,
		occupancyRepo:   occupancyRepo,
		txManager:       txManager,
		metrics:         m,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case отмены бронирования
// Возвращает (nil, nil), если отмена не применима: брони не существует,
// она принадлежит другому студенту или уже отменена
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelReservation: reservation=%d, student=%d", req.ReservationID, req.StudentID)

	// 1. Валидация входных данных
	if req.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}
	if req.StudentID <= 0 {
		return nil, fmt.Errorf("%w: studentID must be positive", ErrInvalidInput)
	}

	// 2. Предварительное чтение, чтобы узнать след брони и собрать ключи
	reservation, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Info("CancelReservation: reservation id=%d does not exist", req.ReservationID)
			return nil, nil
		}
		uc.logger.Error("CancelReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	if reservation.StudentID != req.StudentID {
		uc.logger.Warn("CancelReservation: reservation id=%d belongs to student id=%d, not id=%d",
			req.ReservationID, reservation.StudentID, req.StudentID)
		return nil, nil
	}

	if reservation.IsCancelled() {
		uc.logger.Info("CancelReservation: reservation id=%d is already cancelled", req.ReservationID)
		return nil, nil
	}

	ticks := reservation.Ticks()
	cancelledAt := uc.timeProvider.Now()

	// Отслеживаем и сам хэш брони: конкурентная отмена того же
	// бронирования перезапустит транзакцию, и повторная проверка
	// статуса остановит двойной декремент
	watchKeys := append(
		occupancy.WatchKeys(reservation.CanteenID, reservation.Date, ticks),
		reservationRepo.ReservationKey(reservation.ID),
	)

	applied := false

	// 3. Смена статуса и возврат занятости одной транзакцией
	err = uc.txManager.DoOptimistic(ctx, watchKeys, func(txCtx context.Context) error {
		applied = false

		current, err := uc.reservationRepo.GetByID(txCtx, reservation.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to re-read reservation: %v", ErrInternal, err)
		}

		// Кто-то успел отменить между чтением и транзакцией
		if current.IsCancelled() {
			return nil
		}

		applied = true
		return redistx.Pipelined(txCtx, func(pipeCtx context.Context) error {
			uc.reservationRepo.MarkCancelled(pipeCtx, reservation.ID, cancelledAt)
			uc.occupancyRepo.Release(pipeCtx, reservation.CanteenID, reservation.Date, ticks, reservation.StudentID)
			return nil
		})
	})

	if err != nil {
		if errors.Is(err, redistx.ErrTxConflict) {
			uc.logger.Error("CancelReservation: transaction did not settle: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	if !applied {
		uc.logger.Info("CancelReservation: reservation id=%d was cancelled concurrently", req.ReservationID)
		return nil, nil
	}

	if uc.metrics != nil {
		uc.metrics.IncReservationCancelled()
	}

	uc.logger.Info("CancelReservation: successfully cancelled reservation id=%d", reservation.ID)

	return &Response{
		ID:              reservation.ID,
		StudentID:       reservation.StudentID,
		CanteenID:       reservation.CanteenID,
		Date:            reservation.Date,
		StartTime:       reservation.StartTime,
		DurationMinutes: reservation.DurationMinutes,
		Status:          string(domain.StatusCancelled),
		CreatedAt:       reservation.CreatedAt,
		CancelledAt:     &cancelledAt,
	}, nil
}
