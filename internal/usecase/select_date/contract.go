package select_date

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/service/resync"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/selection"
)

// Selection интерфейс состояния выбора
type Selection interface {
	SelectDate(date time.Time) selection.Selection
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
