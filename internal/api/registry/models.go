package registry

import (
	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/internal/integrations/appointmentservice"
)

// Модели запросов и ответов совпадают с теми, что читает клиент стойки

// fromDomain конвертирует запись в модель ответа
func fromDomain(a domain.Appointment) appointmentservice.Appointment {
	return appointmentservice.Appointment{
		ID:              appointmentservice.ID(a.ID),
		Name:            a.Name,
		Phone:           a.Phone,
		ServiceType:     string(a.ServiceType),
		AppointmentDate: a.Date.Format(domain.DateFormat),
		TimeSlot:        a.SlotID,
		Status:          string(a.Status),
		GivenTime:       a.GivenTime,
		EstimatedTime:   a.EstimatedTime,
	}
}

// StatusUpdatedResponse ответ на смену статуса
type StatusUpdatedResponse struct {
	Message string `json:"message"`
}
