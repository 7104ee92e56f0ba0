package domain

// Time format constants
const (
	DateFormat          = "2006-01-02" // YYYY-MM-DD
	EstimatedTimeFormat = "3:04 PM"    // формат времени приема, который отдает сервис записей
)

// NotAssignedTime выводится, когда у записи нет ни назначенного, ни расчетного времени
const NotAssignedTime = "Not assigned"

// Patient input validation constants
const (
	MaxNameLength  = 100
	MaxPhoneLength = 20
)

// ServiceTypes список типов приема в порядке отображения
var ServiceTypes = []ServiceType{
	ServiceConsultation,
	ServiceFollowUp,
	ServiceCheckup,
	ServiceTreatment,
}

// Statuses все статусы записи, которые знает сервис записей
var Statuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
