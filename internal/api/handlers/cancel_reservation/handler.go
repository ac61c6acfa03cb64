package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Canteen-BookingService/internal/api/handlers"
	"github.com/m04kA/Canteen-BookingService/internal/api/middleware"
	cancelReservation "github.com/m04kA/Canteen-BookingService/internal/usecase/cancel_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgUnauthorized         = "требуется аутентификация"
	msgInvalidInput         = "некорректные параметры запроса"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
// Отмена идемпотентна: несуществующая, чужая или уже отменённая бронь
// даёт успешный ответ с null телом
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.StudentIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Missing student identity in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &cancelReservation.Request{
		ReservationID: reservationID,
		StudentID:     studentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid input: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed to cancel reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Nil-результат без ошибки: отмена неприменима, отвечаем успехом
	if result == nil {
		h.logger.Info("PATCH /reservations/{id}/cancel - Nothing to cancel: reservation_id=%d, student_id=%d",
			reservationID, studentID)
		handlers.RespondJSON(w, http.StatusOK, nil)
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled successfully: reservation_id=%d, student_id=%d",
		reservationID, studentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
