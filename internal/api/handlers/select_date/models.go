package select_date

import (
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	selectDate "github.com/m04kA/SMC-AppointmentDesk/internal/usecase/select_date"
)

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Date string `json:"date"` // "2025-10-15"
}

// SelectionResponse HTTP response model
type SelectionResponse struct {
	Date     string                 `json:"date"`
	SlotID   string                 `json:"slotId,omitempty"`
	Overview *handlers.OverviewView `json:"overview"`
	Snapshot *handlers.SnapshotView `json:"snapshot,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectDateRequest) ToUseCaseRequest() (*selectDate.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}
	return &selectDate.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *selectDate.Response) *SelectionResponse {
	return &SelectionResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		SlotID:   resp.SlotID,
		Overview: handlers.NewOverviewView(resp.Overview),
		Snapshot: handlers.NewSnapshotView(resp.Snapshot),
	}
}
