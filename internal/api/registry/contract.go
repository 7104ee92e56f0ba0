package registry

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/internal/registry"
)

// AppointmentRegistry интерфейс сервиса записей
type AppointmentRegistry interface {
	List(ctx context.Context, date time.Time) ([]domain.Appointment, error)
	Validate(ctx context.Context, date time.Time, slotID string) (*registry.Validation, error)
	Create(ctx context.Context, req *registry.CreateRequest) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
