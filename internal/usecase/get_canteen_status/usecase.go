package get_canteen_status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	canteenRepo "github.com/m04kA/Canteen-BookingService/internal/infra/storage/canteen"
	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

// UseCase use case запроса доступности слотов
type UseCase struct {
	canteenRepo   CanteenRepository
	occupancyRepo OccupancyRepository
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cRepo CanteenRepository,
	occupancyRepo OccupancyRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		canteenRepo:   cRepo,
		occupancyRepo: occupancyRepo,
		logger:        logger,
	}
}

// Execute возвращает оставшуюся вместимость по слотам одной столовой
// Возвращает (nil, nil), если столовая не найдена
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCanteenStatus: canteen=%d, range=%s %s - %s %s, duration=%d",
		req.CanteenID, req.StartDate, req.StartTime, req.EndDate, req.EndTime, req.DurationMinutes)

	// 1. Валидация диапазона
	if req.CanteenID <= 0 {
		return nil, fmt.Errorf("%w: canteenID must be positive", ErrInvalidInput)
	}

	rng, err := parseRange(req.StartDate, req.StartTime, req.EndDate, req.EndTime, req.DurationMinutes)
	if err != nil {
		uc.logger.Warn("GetCanteenStatus: validation failed: %v", err)
		return nil, err
	}

	// 2. Столовая: отсутствие - пустой результат, не ошибка
	canteen, err := uc.canteenRepo.GetByID(ctx, req.CanteenID)
	if err != nil {
		if errors.Is(err, canteenRepo.ErrCanteenNotFound) {
			uc.logger.Info("GetCanteenStatus: canteen id=%d not found", req.CanteenID)
			return nil, nil
		}
		uc.logger.Error("GetCanteenStatus: failed to get canteen id=%d: %v", req.CanteenID, err)
		return nil, fmt.Errorf("%w: failed to get canteen: %v", ErrInternal, err)
	}

	// 3. Слоты и занятость
	slots, err := uc.slotStatuses(ctx, canteen, rng, req.DurationMinutes)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetCanteenStatus: canteen id=%d, %d slots", req.CanteenID, len(slots))

	return &Response{
		CanteenID: canteen.ID,
		Name:      canteen.Name,
		Slots:     slots,
	}, nil
}

// ExecuteAll возвращает оставшуюся вместимость по слотам всех столовых
// в порядке листинга
func (uc *UseCase) ExecuteAll(ctx context.Context, req *AllRequest) (*AllResponse, error) {
	uc.logger.Info("GetAllCanteensStatus: range=%s %s - %s %s, duration=%d",
		req.StartDate, req.StartTime, req.EndDate, req.EndTime, req.DurationMinutes)

	rng, err := parseRange(req.StartDate, req.StartTime, req.EndDate, req.EndTime, req.DurationMinutes)
	if err != nil {
		uc.logger.Warn("GetAllCanteensStatus: validation failed: %v", err)
		return nil, err
	}

	canteens, err := uc.canteenRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAllCanteensStatus: failed to list canteens: %v", err)
		return nil, fmt.Errorf("%w: failed to list canteens: %v", ErrInternal, err)
	}

	result := make([]Response, 0, len(canteens))
	for _, canteen := range canteens {
		slots, err := uc.slotStatuses(ctx, canteen, rng, req.DurationMinutes)
		if err != nil {
			return nil, err
		}

		result = append(result, Response{
			CanteenID: canteen.ID,
			Name:      canteen.Name,
			Slots:     slots,
		})
	}

	uc.logger.Info("GetAllCanteensStatus: %d canteens", len(result))

	return &AllResponse{Canteens: result}, nil
}

// slotStatuses вычисляет оставшуюся вместимость для каждого слота диапазона
//
// Для 60-минутного слота эффективная занятость - максимум из двух его
// 30-минутных половин: часовой слот не может быть доступнее своей более
// загруженной половины. Отображаемый остаток прижимается к нулю, даже
// если учёт когда-то пропустил перебронирование
func (uc *UseCase) slotStatuses(ctx context.Context, canteen *domain.Canteen, rng domain.DateTimeRange, durationMinutes int) ([]SlotStatus, error) {
	// Собираем слоты и все нужные тики, сгруппированные по датам
	var slots []domain.Slot
	ticksByDate := make(map[time.Time]map[types.TimeString]struct{})

	for slot := range canteen.Slots(rng, durationMinutes) {
		slots = append(slots, slot)

		ticks := ticksByDate[slot.Date]
		if ticks == nil {
			ticks = make(map[types.TimeString]struct{})
			ticksByDate[slot.Date] = ticks
		}
		for _, tick := range domain.TicksFor(slot.StartTime, slot.DurationMinutes) {
			ticks[tick] = struct{}{}
		}
	}

	// Читаем счётчики батчами, по одному MGET на дату
	countsByDate := make(map[time.Time]map[types.TimeString]int64, len(ticksByDate))
	for date, tickSet := range ticksByDate {
		ticks := make([]types.TimeString, 0, len(tickSet))
		for tick := range tickSet {
			ticks = append(ticks, tick)
		}

		counts, err := uc.occupancyRepo.SlotCountsBatch(ctx, canteen.ID, date, ticks)
		if err != nil {
			uc.logger.Error("GetCanteenStatus: failed to read counters for canteen id=%d date=%s: %v",
				canteen.ID, date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to read counters: %v", ErrInternal, err)
		}
		countsByDate[date] = counts
	}

	result := make([]SlotStatus, 0, len(slots))
	for _, slot := range slots {
		counts := countsByDate[slot.Date]

		var occupancy int64
		for _, tick := range domain.TicksFor(slot.StartTime, slot.DurationMinutes) {
			if count := counts[tick]; count > occupancy {
				occupancy = count
			}
		}

		remaining := canteen.Capacity - int(occupancy)
		if remaining < 0 {
			remaining = 0
		}

		result = append(result, SlotStatus{
			Date:              slot.Date,
			Meal:              string(slot.Meal),
			StartTime:         slot.StartTime,
			RemainingCapacity: remaining,
		})
	}

	return result, nil
}
