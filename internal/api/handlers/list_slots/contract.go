package list_slots

import "github.com/m04kA/SMC-AppointmentDesk/internal/domain"

type Catalog interface {
	All() []domain.SlotDefinition
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
