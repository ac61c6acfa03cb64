package students

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("students service: invalid input data")

	// ErrStudentNotFound возвращается, если студент не найден
	ErrStudentNotFound = errors.New("students service: student not found")

	// ErrEmailTaken возвращается, если email уже зарегистрирован
	ErrEmailTaken = errors.New("students service: email already registered")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("students service: internal error")
)
