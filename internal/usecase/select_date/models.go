package select_date

import (
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
)

// Request модель запроса на смену даты
type Request struct {
	Date time.Time // Дата (время суток игнорируется)
}

// Response состояние экрана после смены даты
type Response struct {
	Date     time.Time
	SlotID   string               // Выбранный слот, пусто если не выбран
	Overview *domain.DayOverview  // Сводка по слотам
	Snapshot *domain.SlotSnapshot // Снимок выбранного слота (nil, если слот не выбран)
}
