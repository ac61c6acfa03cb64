package create_canteen

import (
	"context"

	"github.com/m04kA/Canteen-BookingService/internal/service/canteens"
)

type CanteenService interface {
	Create(ctx context.Context, req canteens.SaveRequest) (*canteens.Canteen, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
