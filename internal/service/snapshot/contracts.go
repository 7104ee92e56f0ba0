package snapshot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/internal/integrations/appointmentservice"
)

// Catalog интерфейс каталога слотов
type Catalog interface {
	Lookup(slotID string) (domain.SlotDefinition, error)
	All() []domain.SlotDefinition
}

// Store интерфейс кэша записей
type Store interface {
	AppointmentsFor(slotID string) []domain.Appointment
	Date() time.Time
	Count() int
}

// ValidationClient интерфейс авторитетной проверки слота
type ValidationClient interface {
	ValidateSlotWithGracefulDegradation(ctx context.Context, date time.Time, slotID string) (*appointmentservice.ValidateResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
