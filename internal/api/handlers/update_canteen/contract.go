package update_canteen

import (
	"context"

	"github.com/m04kA/Canteen-BookingService/internal/service/canteens"
)

type CanteenService interface {
	Update(ctx context.Context, id int64, req canteens.SaveRequest) (*canteens.Canteen, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
