package register_student

import (
	"errors"
	"net/http"

	"github.com/m04kA/Canteen-BookingService/internal/api/handlers"
	"github.com/m04kA/Canteen-BookingService/internal/service/students"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные студента"
	msgEmailTaken         = "email уже зарегистрирован"
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

// Handle POST /api/v1/students
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterStudentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /students - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, students.ErrInvalidInput):
			h.logger.Warn("POST /students - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, students.ErrEmailTaken):
			h.logger.Warn("POST /students - Email already taken: email=%s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)

		default:
			h.logger.Error("POST /students - Failed to register student: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /students - Student registered successfully: student_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
