package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	createAppointment "github.com/m04kA/SMC-AppointmentDesk/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
// date и slotId необязательны: по умолчанию берется текущий выбор
type CreateAppointmentRequest struct {
	Date        string `json:"date,omitempty"` // "2025-10-15"
	SlotID      string `json:"slotId,omitempty"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	ServiceType string `json:"serviceType"`
	FormID      string `json:"formId"`
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	Appointment *handlers.AppointmentView `json:"appointment,omitempty"`
	Synced      bool                      `json:"synced"`
	Overview    *handlers.OverviewView    `json:"overview,omitempty"`
	Snapshot    *handlers.SnapshotView    `json:"snapshot,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	req := &createAppointment.Request{
		SlotID:      r.SlotID,
		Name:        r.Name,
		Phone:       r.Phone,
		ServiceType: r.ServiceType,
		FormID:      r.FormID,
	}

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	result := &CreateAppointmentResponse{
		Synced:   resp.Synced,
		Overview: handlers.NewOverviewView(resp.Overview),
		Snapshot: handlers.NewSnapshotView(resp.Snapshot),
	}
	if resp.Created != nil {
		view := handlers.NewAppointmentView(*resp.Created)
		result.Appointment = &view
	}
	return result
}
