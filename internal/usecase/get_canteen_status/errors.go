package get_canteen_status

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_canteen_status: invalid input data")

	// ErrInternal возвращается при инфраструктурных ошибках хранилища
	ErrInternal = errors.New("get_canteen_status: internal error")
)
