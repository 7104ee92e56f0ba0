package mark_completed

import "github.com/m04kA/SMC-AppointmentDesk/internal/domain"

// Request модель запроса на завершение приема
type Request struct {
	AppointmentID string
}

// Response модель ответа после завершения приема
type Response struct {
	AppointmentID string
	Status        domain.AppointmentStatus
	// Synced false, если после изменения статуса не удалось обновить кэш
	Synced   bool
	Overview *domain.DayOverview
	Snapshot *domain.SlotSnapshot
}
