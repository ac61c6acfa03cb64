package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrExecCommand возвращается при ошибке выполнения команды Redis
	ErrExecCommand = errors.New("reservation.repository: failed to execute command")

	// ErrDecodeRecord возвращается, когда запись бронирования не декодируется
	ErrDecodeRecord = errors.New("reservation.repository: failed to decode record")
)
