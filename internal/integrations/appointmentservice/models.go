package appointmentservice

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
)

// ID идентификатор записи
// Сервис может отдавать его строкой или числом, храним всегда строкой
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// Appointment модель записи из сервиса записей
type Appointment struct {
	ID              ID      `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	ServiceType     string  `json:"service_type"`
	AppointmentDate string  `json:"appointment_date"` // "2025-10-15" или ISO 8601 с временем
	TimeSlot        string  `json:"time_slot"`
	Status          string  `json:"status"`
	GivenTime       *string `json:"given_time,omitempty"`
	EstimatedTime   *string `json:"estimated_time,omitempty"`
}

// ToDomain конвертирует запись в domain модель
// Если дату разобрать не удалось, используется fallbackDate (дата, за которую запрашивался список)
func (a *Appointment) ToDomain(fallbackDate time.Time) domain.Appointment {
	date := fallbackDate
	if len(a.AppointmentDate) >= len(domain.DateFormat) {
		if parsed, err := time.Parse(domain.DateFormat, a.AppointmentDate[:len(domain.DateFormat)]); err == nil {
			date = parsed
		}
	}

	return domain.Appointment{
		ID:            string(a.ID),
		Name:          a.Name,
		Phone:         a.Phone,
		ServiceType:   domain.ServiceType(a.ServiceType),
		Date:          date,
		SlotID:        a.TimeSlot,
		Status:        domain.AppointmentStatus(a.Status),
		GivenTime:     a.GivenTime,
		EstimatedTime: a.EstimatedTime,
	}
}

// ListResponse ответ GET /admin/appointments
type ListResponse struct {
	Appointments []Appointment `json:"appointments"`
}

// ValidateRequest тело POST /appointments/validate
type ValidateRequest struct {
	AppointmentDate string `json:"appointment_date"`
	TimeSlot        string `json:"time_slot"`
}

// ValidateResponse ответ POST /appointments/validate
type ValidateResponse struct {
	Valid         bool    `json:"valid"`
	EstimatedTime *string `json:"estimated_time,omitempty"`
}

// CreateRequest тело POST /appointments
type CreateRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	ServiceType     string `json:"service_type"`
	AppointmentDate string `json:"appointment_date"`
	TimeSlot        string `json:"time_slot"`
}

// UpdateStatusRequest тело POST /admin/update-status
type UpdateStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ErrorResponse модель ошибки от сервиса записей
type ErrorResponse struct {
	Message string `json:"message"`
}
