package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/Canteen-BookingService/internal/api/handlers"
)

const (
	// HeaderStudentID заголовок с идентификатором студента
	// Аутентификацию выполняет внешний шлюз, сервис доверяет заголовку
	HeaderStudentID = "X-Student-ID"

	msgMissingStudentID = "отсутствует заголовок X-Student-ID"
	msgInvalidStudentID = "некорректный идентификатор студента"
)

type studentIDKey struct{}

// Logger - контракт логгера
type Logger interface {
	Warn(format string, args ...any)
}

// Auth извлекает идентификатор студента из заголовка и кладет его в контекст
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(HeaderStudentID)
			if raw == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, HeaderStudentID)
				handlers.RespondError(w, http.StatusUnauthorized, msgMissingStudentID)
				return
			}

			studentID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || studentID <= 0 {
				logger.Warn("%s %s - Invalid %s header: %q", r.Method, r.URL.Path, HeaderStudentID, raw)
				handlers.RespondError(w, http.StatusUnauthorized, msgInvalidStudentID)
				return
			}

			ctx := context.WithValue(r.Context(), studentIDKey{}, studentID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// StudentIDFromContext возвращает идентификатор студента из контекста запроса
func StudentIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(studentIDKey{}).(int64)
	return id, ok
}
