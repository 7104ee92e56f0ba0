package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/internal/integrations/appointmentservice"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/resync"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/selection"
)

// Catalog интерфейс каталога слотов
type Catalog interface {
	Lookup(slotID string) (domain.SlotDefinition, error)
}

// AppointmentServiceClient интерфейс клиента для сервиса записей
type AppointmentServiceClient interface {
	CreateAppointment(ctx context.Context, req *appointmentservice.CreateRequest) (*appointmentservice.Appointment, error)
}

// Selection интерфейс состояния выбора
type Selection interface {
	Current() selection.Selection
	IsSelectedDate(date time.Time) bool
}

// Syncer интерфейс синхронизации кэша и снимка
type Syncer interface {
	Resync(ctx context.Context, date time.Time) (*resync.Result, error)
}

// SubmissionGuard защита от повторной отправки формы
type SubmissionGuard interface {
	TryAcquire(key string) (release func(), ok bool)
}

// Metrics интерфейс для метрик записи
type Metrics interface {
	ObserveBooking(slot, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) ObserveBooking(string, string) {}
