package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending AppointmentStatus = "pending"
	// StatusConfirmed приходит от сервиса записей, но ни одна операция стойки его не устанавливает
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
)

// IsValid returns true if the status is known to the appointment service
func (s AppointmentStatus) IsValid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// ServiceType represents the kind of visit
type ServiceType string

const (
	ServiceConsultation ServiceType = "Consultation"
	ServiceFollowUp     ServiceType = "Follow-up"
	ServiceCheckup      ServiceType = "Checkup"
	ServiceTreatment    ServiceType = "Treatment"
)

// IsValid returns true if the service type is one of ServiceTypes
func (t ServiceType) IsValid() bool {
	for _, known := range ServiceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Appointment represents a patient booked into a slot on a date
type Appointment struct {
	ID            string
	Name          string
	Phone         string
	ServiceType   ServiceType
	Date          time.Time
	SlotID        string
	Status        AppointmentStatus
	GivenTime     *string // время, назначенное администратором
	EstimatedTime *string // расчетное время, выданное сервисом записей при создании
}

// IsPending returns true if the patient is still waiting
func (a *Appointment) IsPending() bool {
	return a.Status == StatusPending
}

// IsCompleted returns true if the patient has been served
func (a *Appointment) IsCompleted() bool {
	return a.Status == StatusCompleted
}

// DisplayTime возвращает назначенное время, иначе расчетное, иначе NotAssignedTime
func (a *Appointment) DisplayTime() string {
	if a.GivenTime != nil && *a.GivenTime != "" {
		return *a.GivenTime
	}
	if a.EstimatedTime != nil && *a.EstimatedTime != "" {
		return *a.EstimatedTime
	}
	return NotAssignedTime
}

// Patient данные пациента для новой записи
type Patient struct {
	Name        string
	Phone       string
	ServiceType ServiceType
}
