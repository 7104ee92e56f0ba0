package registry

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
)

// Repository интерфейс хранилища записей
type Repository interface {
	ListByDate(ctx context.Context, date time.Time) ([]domain.Appointment, error)
	CountBySlot(ctx context.Context, date time.Time, slotID string) (int, error)
	Create(ctx context.Context, a *domain.Appointment) error
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Catalog интерфейс каталога слотов
type Catalog interface {
	Lookup(slotID string) (domain.SlotDefinition, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
