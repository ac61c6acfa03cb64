package get_all_canteens_status

import (
	"context"

	getCanteenStatus "github.com/m04kA/Canteen-BookingService/internal/usecase/get_canteen_status"
)

type GetCanteenStatusUseCase interface {
	ExecuteAll(ctx context.Context, req *getCanteenStatus.AllRequest) (*getCanteenStatus.AllResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
