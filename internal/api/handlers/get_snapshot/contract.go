package get_snapshot

import "github.com/m04kA/SMC-AppointmentDesk/internal/domain"

type SnapshotSource interface {
	Snapshot() *domain.SlotSnapshot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
