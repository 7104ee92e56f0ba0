package mark_completed

import (
	"github.com/m04kA/SMC-AppointmentDesk/internal/api/handlers"
	markCompleted "github.com/m04kA/SMC-AppointmentDesk/internal/usecase/mark_completed"
)

// MarkCompletedResponse HTTP response model
type MarkCompletedResponse struct {
	ID       string                 `json:"id"`
	Status   string                 `json:"status"`
	Synced   bool                   `json:"synced"`
	Overview *handlers.OverviewView `json:"overview,omitempty"`
	Snapshot *handlers.SnapshotView `json:"snapshot,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *markCompleted.Response) *MarkCompletedResponse {
	return &MarkCompletedResponse{
		ID:       resp.AppointmentID,
		Status:   string(resp.Status),
		Synced:   resp.Synced,
		Overview: handlers.NewOverviewView(resp.Overview),
		Snapshot: handlers.NewSnapshotView(resp.Snapshot),
	}
}
