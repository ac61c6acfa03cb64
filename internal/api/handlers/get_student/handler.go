package get_student

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Canteen-BookingService/internal/api/handlers"
	"github.com/m04kA/Canteen-BookingService/internal/api/middleware"
	"github.com/m04kA/Canteen-BookingService/internal/service/students"
)

const (
	msgInvalidStudentID = "некорректный ID студента"
	msgUnauthorized     = "требуется аутентификация"
	msgForbidden        = "доступ запрещен"
	msgStudentNotFound  = "студент не найден"
)

type Handler struct {
	service StudentService
	logger  Logger
}

func NewHandler(service StudentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/students/{studentId}
// Студент видит только собственный профиль
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.StudentIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /students/{studentId} - Missing student identity in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	// Извлекаем studentId из URL
	vars := mux.Vars(r)
	studentIDStr := vars["studentId"]

	studentID, err := strconv.ParseInt(studentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /students/{studentId} - Invalid student ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudentID)
		return
	}

	if studentID != requesterID {
		h.logger.Warn("GET /students/{studentId} - Access denied: student_id=%d, requester_id=%d",
			studentID, requesterID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.GetByID(r.Context(), studentID)
	if err != nil {
		switch {
		case errors.Is(err, students.ErrInvalidInput):
			h.logger.Warn("GET /students/{studentId} - Invalid student ID: student_id=%d, error=%v",
				studentID, err)
			handlers.RespondBadRequest(w, msgInvalidStudentID)

		case errors.Is(err, students.ErrStudentNotFound):
			h.logger.Warn("GET /students/{studentId} - Student not found: student_id=%d", studentID)
			handlers.RespondNotFound(w, msgStudentNotFound)

		default:
			h.logger.Error("GET /students/{studentId} - Failed to get student: student_id=%d, error=%v",
				studentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /students/{studentId} - Student retrieved successfully: student_id=%d", studentID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
