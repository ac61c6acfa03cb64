package student

import "errors"

var (
	// ErrStudentNotFound возвращается, когда студент не найден
	ErrStudentNotFound = errors.New("student.repository: student not found")

	// ErrEmailTaken возвращается, когда email уже занят другим студентом
	ErrEmailTaken = errors.New("student.repository: email already taken")

	// ErrExecCommand возвращается при ошибке выполнения команды Redis
	ErrExecCommand = errors.New("student.repository: failed to execute command")

	// ErrDecodeRecord возвращается, когда запись студента не декодируется
	ErrDecodeRecord = errors.New("student.repository: failed to decode record")
)
