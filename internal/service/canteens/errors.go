package canteens

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("canteens service: invalid input data")

	// ErrCanteenNotFound возвращается, если столовая не найдена
	ErrCanteenNotFound = errors.New("canteens service: canteen not found")

	// ErrPermissionDenied возвращается, если операция доступна только администратору
	ErrPermissionDenied = errors.New("canteens service: permission denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("canteens service: internal error")
)
