package create_canteen

import (
	"errors"
	"net/http"

	"github.com/m04kA/Canteen-BookingService/internal/api/handlers"
	"github.com/m04kA/Canteen-BookingService/internal/api/middleware"
	"github.com/m04kA/Canteen-BookingService/internal/service/canteens"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidInput       = "некорректная конфигурация столовой"
	msgForbidden          = "операция доступна только администратору"
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

// Handle POST /api/v1/canteens
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.StudentIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /canteens - Missing student identity in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateCanteenRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /canteens - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(requesterID))
	if err != nil {
		switch {
		case errors.Is(err, canteens.ErrInvalidInput):
			h.logger.Warn("POST /canteens - Invalid input: requester_id=%d, error=%v", requesterID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, canteens.ErrPermissionDenied):
			h.logger.Warn("POST /canteens - Permission denied: requester_id=%d", requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /canteens - Failed to create canteen: requester_id=%d, error=%v", requesterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /canteens - Canteen created successfully: canteen_id=%d, requester_id=%d",
		result.ID, requesterID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
