package get_canteen_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Canteen-BookingService/internal/api/handlers"
	getCanteenStatus "github.com/m04kA/Canteen-BookingService/internal/usecase/get_canteen_status"
)

const (
	msgInvalidCanteenID = "некорректный ID столовой"
	msgInvalidQuery     = "некорректные параметры периода"
)

type Handler struct {
	useCase GetCanteenStatusUseCase
	logger  Logger
}

func NewHandler(useCase GetCanteenStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/canteens/{canteenId}/status
// Несуществующая столовая - не ошибка: ответ 200 с null телом
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем canteenId из URL
	vars := mux.Vars(r)
	canteenIDStr := vars["canteenId"]

	canteenID, err := strconv.ParseInt(canteenIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /canteens/{canteenId}/status - Invalid canteen ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCanteenID)
		return
	}

	query := r.URL.Query()

	durationMinutes := 0
	if raw := query.Get("durationMinutes"); raw != "" {
		durationMinutes, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /canteens/{canteenId}/status - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
	}

	useCaseReq := &getCanteenStatus.Request{
		CanteenID:       canteenID,
		StartDate:       query.Get("startDate"),
		StartTime:       query.Get("startTime"),
		EndDate:         query.Get("endDate"),
		EndTime:         query.Get("endTime"),
		DurationMinutes: durationMinutes,
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCanteenStatus.ErrInvalidInput):
			h.logger.Warn("GET /canteens/{canteenId}/status - Invalid query: canteen_id=%d, error=%v",
				canteenID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /canteens/{canteenId}/status - Failed to get status: canteen_id=%d, error=%v",
				canteenID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Nil-результат без ошибки: столовая не найдена
	if result == nil {
		h.logger.Info("GET /canteens/{canteenId}/status - Canteen not found: canteen_id=%d", canteenID)
		handlers.RespondJSON(w, http.StatusOK, nil)
		return
	}

	h.logger.Info("GET /canteens/{canteenId}/status - Status retrieved successfully: canteen_id=%d, slots=%d",
		canteenID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
