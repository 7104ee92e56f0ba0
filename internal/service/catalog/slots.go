package catalog

import "github.com/m04kA/SMC-AppointmentDesk/internal/domain"

// Метки слотов совпадают со значениями time_slot у сервиса записей
const (
	SlotMorning1 = "10:30 AM - 11:30 AM"
	SlotMorning2 = "11:30 AM - 12:30 PM"
	SlotMorning3 = "12:30 PM - 1:30 PM"
	SlotMorning4 = "1:30 PM - 2:00 PM"
	SlotEvening1 = "4:30 PM - 5:30 PM"
	SlotEvening2 = "5:30 PM - 6:00 PM"
)

var defaultSlots = []domain.SlotDefinition{
	{ID: SlotMorning1, Capacity: 4, DisplayName: "Morning Slot 1", Duration: "1 hour", StartMinutes: 10*60 + 30, DurationMinutes: 60},
	{ID: SlotMorning2, Capacity: 4, DisplayName: "Morning Slot 2", Duration: "1 hour", StartMinutes: 11*60 + 30, DurationMinutes: 60},
	{ID: SlotMorning3, Capacity: 4, DisplayName: "Morning Slot 3", Duration: "1 hour", StartMinutes: 12*60 + 30, DurationMinutes: 60},
	{ID: SlotMorning4, Capacity: 2, DisplayName: "Morning Slot 4", Duration: "30 minutes", StartMinutes: 13*60 + 30, DurationMinutes: 30},
	{ID: SlotEvening1, Capacity: 4, DisplayName: "Evening Slot 1", Duration: "1 hour", StartMinutes: 16*60 + 30, DurationMinutes: 60},
	{ID: SlotEvening2, Capacity: 2, DisplayName: "Evening Slot 2", Duration: "30 minutes", StartMinutes: 17*60 + 30, DurationMinutes: 30},
}
