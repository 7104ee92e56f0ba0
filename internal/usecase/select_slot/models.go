package select_slot

import (
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
)

// Request модель запроса на выбор слота
type Request struct {
	SlotID string // Пустая строка снимает выбор
}

// Response состояние выбора после смены слота
type Response struct {
	Date     time.Time
	SlotID   string
	Snapshot *domain.SlotSnapshot // nil, если выбор снят
}
