package select_slot

import (
	"context"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/selection"
)

// Catalog интерфейс каталога слотов
type Catalog interface {
	Lookup(slotID string) (domain.SlotDefinition, error)
}

// Selection интерфейс состояния выбора
type Selection interface {
	SelectSlot(slotID string) selection.Selection
}

// Syncer интерфейс пересчета снимка
type Syncer interface {
	RefreshSnapshot(ctx context.Context) (*domain.SlotSnapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
