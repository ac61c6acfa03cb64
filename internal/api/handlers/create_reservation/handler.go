package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/Canteen-BookingService/internal/api/handlers"
	"github.com/m04kA/Canteen-BookingService/internal/api/middleware"
	createReservation "github.com/m04kA/Canteen-BookingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgUnauthorized         = "требуется аутентификация"
	msgInvalidInput         = "некорректные параметры бронирования"
	msgCanteenNotFound      = "столовая не найдена"
	msgStudentNotFound      = "студент не найден"
	msgBookingInPast        = "время бронирования уже прошло"
	msgInvalidTimeSlot      = "слот не попадает в часы работы столовой"
	msgSlotFullyBooked      = "выбранный слот полностью занят"
	msgStudentAlreadyBooked = "у студента уже есть бронь на это время"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Идентификатор студента приходит из middleware аутентификации
	studentID, ok := middleware.StudentIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing student identity in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(studentID))
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: student_id=%d, error=%v", studentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrCanteenNotFound):
			h.logger.Warn("POST /reservations - Canteen not found: canteen_id=%d", req.CanteenID)
			handlers.RespondNotFound(w, msgCanteenNotFound)

		case errors.Is(err, createReservation.ErrStudentNotFound):
			h.logger.Warn("POST /reservations - Student not found: student_id=%d", studentID)
			handlers.RespondNotFound(w, msgStudentNotFound)

		case errors.Is(err, createReservation.ErrBookingInPast):
			h.logger.Warn("POST /reservations - Booking in past: student_id=%d, date=%s, time=%s",
				studentID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgBookingInPast)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /reservations - Invalid time slot: canteen_id=%d, date=%s, time=%s",
				req.CanteenID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrSlotFullyBooked):
			h.logger.Warn("POST /reservations - Slot fully booked: canteen_id=%d, date=%s, time=%s",
				req.CanteenID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotFullyBooked)

		case errors.Is(err, createReservation.ErrStudentAlreadyBooked):
			h.logger.Warn("POST /reservations - Student already booked: student_id=%d, date=%s, time=%s",
				studentID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgStudentAlreadyBooked)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: student_id=%d, canteen_id=%d, error=%v",
				studentID, req.CanteenID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, student_id=%d, canteen_id=%d",
		result.ID, studentID, req.CanteenID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
