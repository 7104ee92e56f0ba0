package select_slot

import (
	"github.com/m04kA/SMC-AppointmentDesk/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	selectSlot "github.com/m04kA/SMC-AppointmentDesk/internal/usecase/select_slot"
)

// SelectSlotRequest HTTP request model
// Пустой slotId снимает выбор
type SelectSlotRequest struct {
	SlotID string `json:"slotId"`
}

// SelectionResponse HTTP response model
type SelectionResponse struct {
	Date     string                 `json:"date"`
	SlotID   string                 `json:"slotId,omitempty"`
	Snapshot *handlers.SnapshotView `json:"snapshot,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *selectSlot.Response) *SelectionResponse {
	return &SelectionResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		SlotID:   resp.SlotID,
		Snapshot: handlers.NewSnapshotView(resp.Snapshot),
	}
}
