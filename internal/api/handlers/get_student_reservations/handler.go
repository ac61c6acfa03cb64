package get_student_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Canteen-BookingService/internal/api/handlers"
	"github.com/m04kA/Canteen-BookingService/internal/api/middleware"
	"github.com/m04kA/Canteen-BookingService/internal/service/reservations"
)

const (
	msgInvalidStudentID = "некорректный ID студента"
	msgUnauthorized     = "требуется аутентификация"
	msgForbidden        = "доступ запрещен"
	msgInvalidPeriod    = "некорректный период, ожидаются startDate и endDate в формате YYYY-MM-DD"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/students/{studentId}/reservations?startDate=...&endDate=...
// Студент видит только собственные бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.StudentIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /students/{studentId}/reservations - Missing student identity in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	// Извлекаем studentId из URL
	vars := mux.Vars(r)
	studentIDStr := vars["studentId"]

	studentID, err := strconv.ParseInt(studentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /students/{studentId}/reservations - Invalid student ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudentID)
		return
	}

	if studentID != requesterID {
		h.logger.Warn("GET /students/{studentId}/reservations - Access denied: student_id=%d, requester_id=%d",
			studentID, requesterID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	// Обе границы периода обязательны
	query := r.URL.Query()
	serviceReq := reservations.GetByStudentRequest{
		StudentID: studentID,
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
	}

	result, err := h.service.GetByStudent(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /students/{studentId}/reservations - Invalid period: student_id=%d, error=%v",
				studentID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /students/{studentId}/reservations - Failed to get reservations: student_id=%d, error=%v",
				studentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /students/{studentId}/reservations - Reservations retrieved successfully: student_id=%d, count=%d",
		studentID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
