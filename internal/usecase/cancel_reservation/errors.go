package cancel_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrInternal возвращается при инфраструктурных ошибках хранилища
	ErrInternal = errors.New("cancel_reservation: internal error")
)
