package resync

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/selection"
	"github.com/m04kA/SMC-AppointmentDesk/pkg/sequence"
)

// Store интерфейс кэша записей
type Store interface {
	Refresh(ctx context.Context, date time.Time) error
}

// Calculator интерфейс калькулятора снимков
type Calculator interface {
	Compute(ctx context.Context, date time.Time, slotID string) (*domain.SlotSnapshot, error)
	Overview() *domain.DayOverview
}

// Selection интерфейс состояния выбора
type Selection interface {
	BeginSnapshot() (sequence.Token, selection.Selection, bool)
	PublishSnapshot(token sequence.Token, snap *domain.SlotSnapshot) bool
	InvalidateSnapshot()
	IsSelectedDate(date time.Time) bool
}

// Metrics интерфейс для метрик
type Metrics interface {
	IncStaleResponse(channel string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) IncStaleResponse(string) {}
