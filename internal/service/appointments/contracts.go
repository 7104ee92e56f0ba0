package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/integrations/appointmentservice"
)

// AppointmentServiceClient интерфейс клиента для сервиса записей
type AppointmentServiceClient interface {
	ListAppointments(ctx context.Context, date time.Time) ([]appointmentservice.Appointment, error)
}

// DateFilter сообщает, какая дата сейчас выбрана на стойке
type DateFilter interface {
	IsSelectedDate(date time.Time) bool
}

// Metrics интерфейс для метрик обновления кэша
type Metrics interface {
	ObserveRefresh(outcome string)
	IncStaleResponse(channel string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) ObserveRefresh(string)   {}
func (noopMetrics) IncStaleResponse(string) {}
