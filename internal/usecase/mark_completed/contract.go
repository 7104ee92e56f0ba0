package mark_completed

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/resync"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/selection"
)

// AppointmentServiceClient интерфейс клиента для сервиса записей
type AppointmentServiceClient interface {
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

// Selection интерфейс состояния выбора
type Selection interface {
	Current() selection.Selection
}

// Syncer интерфейс синхронизации кэша и снимка
type Syncer interface {
	Resync(ctx context.Context, date time.Time) (*resync.Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
