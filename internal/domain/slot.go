package domain

import "time"

// SlotDefinition represents a fixed, capacity-bounded time window of the day
// ID is the slot label and is passed to the appointment service as time_slot
type SlotDefinition struct {
	ID              string // "10:30 AM - 11:30 AM"
	Capacity        int
	DisplayName     string // "Morning Slot 1"
	Duration        string // "1 hour"
	StartMinutes    int    // начало слота в минутах от полуночи
	DurationMinutes int
}

// EstimatedTimeFor возвращает расчетное время приема для пациента с номером position (с нуля)
// Слот делится на равные части по числу мест. Для position >= Capacity время не определено.
func (s SlotDefinition) EstimatedTimeFor(position int) (string, bool) {
	if position < 0 || position >= s.Capacity || s.Capacity <= 0 {
		return "", false
	}

	perPatient := s.DurationMinutes / s.Capacity
	minutes := s.StartMinutes + position*perPatient

	t := time.Date(2000, time.January, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return t.Format(EstimatedTimeFormat), true
}

// AvailableSpots returns capacity - booked, never negative
func AvailableSpots(capacity, booked int) int {
	available := capacity - booked
	if available < 0 {
		return 0
	}
	return available
}

// SlotSnapshot derived view of one slot on one date
// Booked/Available/Capacity считаются по локальному кэшу и служат только для отображения.
// ValidFromServer/EstimatedNextTime получены от сервиса записей и решают, можно ли записать нового пациента.
type SlotSnapshot struct {
	Date         time.Time
	SlotID       string
	DisplayName  string
	Duration     string
	Booked       int
	Available    int
	Capacity     int
	Appointments []Appointment

	ValidFromServer   bool
	EstimatedNextTime *string
	// Degraded true, если сервис записей не ответил на проверку слота
	Degraded bool
	// NotLoaded true, если кэш загружен за другую дату: Booked и Appointments пусты
	NotLoaded bool
}

// IsFull returns true if the slot has no available spots according to the local cache
func (s *SlotSnapshot) IsFull() bool {
	return s.Available <= 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *SlotSnapshot) OccupancyRate() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Booked) / float64(s.Capacity) * 100
}

// SlotSummary per-slot line of the day overview
type SlotSummary struct {
	Slot      SlotDefinition
	Booked    int
	Pending   int
	Completed int
	Available int
}

// DayOverview summary of all slots for the cached date
type DayOverview struct {
	Date  time.Time
	Slots []SlotSummary
	Total int
}
