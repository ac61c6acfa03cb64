package canteen

import "errors"

var (
	// ErrCanteenNotFound возвращается, когда столовая не найдена
	ErrCanteenNotFound = errors.New("canteen.repository: canteen not found")

	// ErrExecCommand возвращается при ошибке выполнения команды Redis
	ErrExecCommand = errors.New("canteen.repository: failed to execute command")

	// ErrDecodeRecord возвращается, когда запись столовой не декодируется
	ErrDecodeRecord = errors.New("canteen.repository: failed to decode record")
)
