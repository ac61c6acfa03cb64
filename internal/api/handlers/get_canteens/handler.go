package get_canteens

import (
	"net/http"

	"github.com/m04kA/Canteen-BookingService/internal/api/handlers"
)

type Handler struct {
	service CanteenService
	logger  Logger
}

func NewHandler(service CanteenService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/canteens
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /canteens - Failed to list canteens: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /canteens - Canteens retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
