package update_canteen

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Canteen-BookingService/internal/api/handlers"
	"github.com/m04kA/Canteen-BookingService/internal/api/middleware"
	"github.com/m04kA/Canteen-BookingService/internal/service/canteens"
)

const (
	msgInvalidCanteenID   = "некорректный ID столовой"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidInput       = "некорректная конфигурация столовой"
	msgForbidden          = "операция доступна только администратору"
	msgNotFound           = "столовая не найдена"
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

// Handle PUT /api/v1/canteens/{canteenId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.StudentIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /canteens/{canteenId} - Missing student identity in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	// Извлекаем canteenId из URL
	vars := mux.Vars(r)
	canteenIDStr := vars["canteenId"]

	canteenID, err := strconv.ParseInt(canteenIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /canteens/{canteenId} - Invalid canteen ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCanteenID)
		return
	}

	var req UpdateCanteenRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /canteens/{canteenId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), canteenID, req.ToServiceRequest(requesterID))
	if err != nil {
		switch {
		case errors.Is(err, canteens.ErrInvalidInput):
			h.logger.Warn("PUT /canteens/{canteenId} - Invalid input: canteen_id=%d, error=%v", canteenID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, canteens.ErrPermissionDenied):
			h.logger.Warn("PUT /canteens/{canteenId} - Permission denied: canteen_id=%d, requester_id=%d",
				canteenID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, canteens.ErrCanteenNotFound):
			h.logger.Warn("PUT /canteens/{canteenId} - Canteen not found: canteen_id=%d", canteenID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /canteens/{canteenId} - Failed to update canteen: canteen_id=%d, error=%v",
				canteenID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /canteens/{canteenId} - Canteen updated successfully: canteen_id=%d, requester_id=%d",
		canteenID, requesterID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
