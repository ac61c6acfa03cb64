package get_student

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Canteen-BookingService/internal/api/middleware"
	"github.com/m04kA/Canteen-BookingService/internal/service/students"
)

type stubService struct {
	students map[int64]*students.Student
}

func (s *stubService) GetByID(ctx context.Context, id int64) (*students.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: student id must be positive", students.ErrInvalidInput)
	}
	student, ok := s.students[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", students.ErrStudentNotFound, id)
	}
	return student, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestRouter(svc StudentService) *mux.Router {
	h := NewHandler(svc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth(nopLogger{}))
	protected.HandleFunc("/students/{studentId}", h.Handle).Methods(http.MethodGet)
	return r
}

func doRequest(t *testing.T, r *mux.Router, path string, studentID string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if studentID != "" {
		req.Header.Set(middleware.HeaderStudentID, studentID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleOwnProfile(t *testing.T) {
	svc := &stubService{students: map[int64]*students.Student{
		101: {ID: 101, Name: "Анна Иванова", Email: "anna@university.edu", IsAdmin: false},
	}}
	r := newTestRouter(svc)

	rec := doRequest(t, r, "/api/v1/students/101", "101")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StudentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "Анна Иванова", resp.Name)
	assert.Equal(t, "anna@university.edu", resp.Email)
	assert.False(t, resp.IsAdmin)
}

func TestHandleForeignProfileForbidden(t *testing.T) {
	svc := &stubService{students: map[int64]*students.Student{
		101: {ID: 101, Name: "Анна Иванова", Email: "anna@university.edu"},
	}}
	r := newTestRouter(svc)

	rec := doRequest(t, r, "/api/v1/students/101", "102")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleMissingAuthHeader(t *testing.T) {
	r := newTestRouter(&stubService{})

	rec := doRequest(t, r, "/api/v1/students/101", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleStudentNotFound(t *testing.T) {
	r := newTestRouter(&stubService{students: map[int64]*students.Student{}})

	rec := doRequest(t, r, "/api/v1/students/777", "777")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleInvalidStudentID(t *testing.T) {
	r := newTestRouter(&stubService{})

	rec := doRequest(t, r, "/api/v1/students/abc", "5")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
