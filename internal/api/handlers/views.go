package handlers

import (
	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
)

// SlotView описание слота
type SlotView struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Duration    string `json:"duration"`
	Capacity    int    `json:"capacity"`
}

// AppointmentView запись пациента
type AppointmentView struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	ServiceType   string  `json:"serviceType"`
	Date          string  `json:"date"`
	SlotID        string  `json:"slotId"`
	Status        string  `json:"status"`
	GivenTime     *string `json:"givenTime,omitempty"`
	EstimatedTime *string `json:"estimatedTime,omitempty"`
	DisplayTime   string  `json:"displayTime"`
}

// SnapshotView снимок слота
type SnapshotView struct {
	Date              string            `json:"date"`
	SlotID            string            `json:"slotId"`
	DisplayName       string            `json:"displayName"`
	Duration          string            `json:"duration"`
	Booked            int               `json:"booked"`
	Available         int               `json:"available"`
	Capacity          int               `json:"capacity"`
	OccupancyRate     float64           `json:"occupancyRate"`
	ValidFromServer   bool              `json:"validFromServer"`
	EstimatedNextTime *string           `json:"estimatedNextTime,omitempty"`
	Degraded          bool              `json:"degraded"`
	NotLoaded         bool              `json:"notLoaded"`
	Appointments      []AppointmentView `json:"appointments"`
}

// SlotSummaryView строка сводки по слоту
type SlotSummaryView struct {
	Slot      SlotView `json:"slot"`
	Booked    int      `json:"booked"`
	Pending   int      `json:"pending"`
	Completed int      `json:"completed"`
	Available int      `json:"available"`
}

// OverviewView сводка по дню
type OverviewView struct {
	Date  string            `json:"date"`
	Total int               `json:"total"`
	Slots []SlotSummaryView `json:"slots"`
}

func NewSlotView(s domain.SlotDefinition) SlotView {
	return SlotView{
		ID:          s.ID,
		DisplayName: s.DisplayName,
		Duration:    s.Duration,
		Capacity:    s.Capacity,
	}
}

func NewAppointmentView(a domain.Appointment) AppointmentView {
	return AppointmentView{
		ID:            a.ID,
		Name:          a.Name,
		Phone:         a.Phone,
		ServiceType:   string(a.ServiceType),
		Date:          a.Date.Format(domain.DateFormat),
		SlotID:        a.SlotID,
		Status:        string(a.Status),
		GivenTime:     a.GivenTime,
		EstimatedTime: a.EstimatedTime,
		DisplayTime:   a.DisplayTime(),
	}
}

// NewSnapshotView возвращает nil для nil снимка
func NewSnapshotView(s *domain.SlotSnapshot) *SnapshotView {
	if s == nil {
		return nil
	}

	view := &SnapshotView{
		Date:              s.Date.Format(domain.DateFormat),
		SlotID:            s.SlotID,
		DisplayName:       s.DisplayName,
		Duration:          s.Duration,
		Booked:            s.Booked,
		Available:         s.Available,
		Capacity:          s.Capacity,
		OccupancyRate:     s.OccupancyRate(),
		ValidFromServer:   s.ValidFromServer,
		EstimatedNextTime: s.EstimatedNextTime,
		Degraded:          s.Degraded,
		NotLoaded:         s.NotLoaded,
		Appointments:      make([]AppointmentView, 0, len(s.Appointments)),
	}
	for _, a := range s.Appointments {
		view.Appointments = append(view.Appointments, NewAppointmentView(a))
	}
	return view
}

// NewOverviewView возвращает nil для nil сводки
func NewOverviewView(o *domain.DayOverview) *OverviewView {
	if o == nil {
		return nil
	}

	view := &OverviewView{
		Date:  o.Date.Format(domain.DateFormat),
		Total: o.Total,
		Slots: make([]SlotSummaryView, 0, len(o.Slots)),
	}
	for _, s := range o.Slots {
		view.Slots = append(view.Slots, SlotSummaryView{
			Slot:      NewSlotView(s.Slot),
			Booked:    s.Booked,
			Pending:   s.Pending,
			Completed: s.Completed,
			Available: s.Available,
		})
	}
	return view
}
