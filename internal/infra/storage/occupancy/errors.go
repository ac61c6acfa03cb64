package occupancy

import "errors"

var (
	// ErrExecCommand возвращается при ошибке выполнения команды Redis
	ErrExecCommand = errors.New("occupancy.repository: failed to execute command")

	// ErrParseValue возвращается, когда значение счётчика не парсится в число
	ErrParseValue = errors.New("occupancy.repository: failed to parse counter value")
)
