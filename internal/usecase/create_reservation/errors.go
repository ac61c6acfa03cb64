package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrCanteenNotFound возвращается, когда столовая не найдена
	ErrCanteenNotFound = errors.New("create_reservation: canteen not found")

	// ErrStudentNotFound возвращается, когда студент не найден
	ErrStudentNotFound = errors.New("create_reservation: student not found")

	// ErrBookingInPast возвращается, когда дата и время брони уже прошли
	ErrBookingInPast = errors.New("create_reservation: booking time is in the past")

	// ErrInvalidTimeSlot возвращается, когда слот не попадает целиком
	// в один период работы столовой
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrSlotFullyBooked возвращается, когда хотя бы один затронутый тик
	// уже занят до вместимости столовой
	ErrSlotFullyBooked = errors.New("create_reservation: slot is fully booked")

	// ErrStudentAlreadyBooked возвращается, когда студент уже держит
	// активную бронь на какой-либо из затронутых тиков - в любой столовой
	ErrStudentAlreadyBooked = errors.New("create_reservation: student already booked this time")

	// ErrInternal возвращается при инфраструктурных ошибках хранилища
	// Вызывающая сторона может повторить запрос
	ErrInternal = errors.New("create_reservation: internal error")
)
