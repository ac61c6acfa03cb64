package get_all_canteens_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/Canteen-BookingService/internal/api/handlers"
	getCanteenStatus "github.com/m04kA/Canteen-BookingService/internal/usecase/get_canteen_status"
)

const (
	msgInvalidQuery = "некорректные параметры периода"
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

// Handle GET /api/v1/canteens/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	durationMinutes := 0
	if raw := query.Get("durationMinutes"); raw != "" {
		var err error
		durationMinutes, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /canteens/status - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
	}

	useCaseReq := &getCanteenStatus.AllRequest{
		StartDate:       query.Get("startDate"),
		StartTime:       query.Get("startTime"),
		EndDate:         query.Get("endDate"),
		EndTime:         query.Get("endTime"),
		DurationMinutes: durationMinutes,
	}

	result, err := h.useCase.ExecuteAll(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCanteenStatus.ErrInvalidInput):
			h.logger.Warn("GET /canteens/status - Invalid query: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /canteens/status - Failed to get status: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /canteens/status - Status retrieved successfully: canteens=%d", len(result.Canteens))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
