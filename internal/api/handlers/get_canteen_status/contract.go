package get_canteen_status

import (
	"context"

	getCanteenStatus "github.com/m04kA/Canteen-BookingService/internal/usecase/get_canteen_status"
)

type GetCanteenStatusUseCase interface {
	Execute(ctx context.Context, req *getCanteenStatus.Request) (*getCanteenStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
