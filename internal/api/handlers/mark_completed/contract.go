package mark_completed

import (
	"context"

	markCompleted "github.com/m04kA/SMC-AppointmentDesk/internal/usecase/mark_completed"
)

type MarkCompletedUseCase interface {
	Execute(ctx context.Context, req *markCompleted.Request) (*markCompleted.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
