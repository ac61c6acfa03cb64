package reservation

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/Canteen-BookingService/internal/domain"
	"github.com/m04kA/Canteen-BookingService/pkg/types"
)

// Все значения в хэше хранятся строками - это стабильное внешнее
// представление записи. Кодирование и декодирование сосредоточены здесь,
// остальной код работает только с типизированными значениями

const (
	fieldID          = "id"
	fieldStudentID   = "studentId"
	fieldCanteenID   = "canteenId"
	fieldDate        = "date"
	fieldTime        = "time"
	fieldDuration    = "duration"
	fieldStatus      = "status"
	fieldCreatedAt   = "createdAt"
	fieldCancelledAt = "cancelledAt"
)

// encodeReservation кодирует бронирование в поля хэша
func encodeReservation(res *domain.Reservation) map[string]interface{} {
	fields := map[string]interface{}{
		fieldID:        strconv.FormatInt(res.ID, 10),
		fieldStudentID: strconv.FormatInt(res.StudentID, 10),
		fieldCanteenID: strconv.FormatInt(res.CanteenID, 10),
		fieldDate:      res.Date.Format(domain.DateFormat),
		fieldTime:      res.StartTime.String(),
		fieldDuration:  strconv.Itoa(res.DurationMinutes),
		fieldStatus:    string(res.Status),
		fieldCreatedAt: res.CreatedAt.UTC().Format(time.RFC3339),
	}

	if res.CancelledAt != nil {
		fields[fieldCancelledAt] = res.CancelledAt.UTC().Format(time.RFC3339)
	}

	return fields
}

// decodeReservation восстанавливает бронирование из полей хэша
func decodeReservation(fields map[string]string) (*domain.Reservation, error) {
	id, err := strconv.ParseInt(fields[fieldID], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: field %s=%q: %v", ErrDecodeRecord, fieldID, fields[fieldID], err)
	}

	studentID, err := strconv.ParseInt(fields[fieldStudentID], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: field %s=%q: %v", ErrDecodeRecord, fieldStudentID, fields[fieldStudentID], err)
	}

	canteenID, err := strconv.ParseInt(fields[fieldCanteenID], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: field %s=%q: %v", ErrDecodeRecord, fieldCanteenID, fields[fieldCanteenID], err)
	}

	date, err := time.Parse(domain.DateFormat, fields[fieldDate])
	if err != nil {
		return nil, fmt.Errorf("%w: field %s=%q: %v", ErrDecodeRecord, fieldDate, fields[fieldDate], err)
	}

	startTime, err := types.NewTimeStringFromString(fields[fieldTime])
	if err != nil {
		return nil, fmt.Errorf("%w: field %s=%q: %v", ErrDecodeRecord, fieldTime, fields[fieldTime], err)
	}

	duration, err := strconv.Atoi(fields[fieldDuration])
	if err != nil {
		return nil, fmt.Errorf("%w: field %s=%q: %v", ErrDecodeRecord, fieldDuration, fields[fieldDuration], err)
	}

	status := domain.ReservationStatus(fields[fieldStatus])
	if status != domain.StatusActive && status != domain.StatusCancelled {
		return nil, fmt.Errorf("%w: unknown status %q", ErrDecodeRecord, fields[fieldStatus])
	}

	createdAt, err := time.Parse(time.RFC3339, fields[fieldCreatedAt])
	if err != nil {
		return nil, fmt.Errorf("%w: field %s=%q: %v", ErrDecodeRecord, fieldCreatedAt, fields[fieldCreatedAt], err)
	}

	var cancelledAt *time.Time
	if raw, ok := fields[fieldCancelledAt]; ok && raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: field %s=%q: %v", ErrDecodeRecord, fieldCancelledAt, raw, err)
		}
		cancelledAt = &t
	}

	return &domain.Reservation{
		ID:              id,
		StudentID:       studentID,
		CanteenID:       canteenID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: duration,
		Status:          status,
		CreatedAt:       createdAt,
		CancelledAt:     cancelledAt,
	}, nil
}
