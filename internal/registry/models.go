package registry

import (
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
)

// CreateRequest данные новой записи
type CreateRequest struct {
	Name        string
	Phone       string
	ServiceType domain.ServiceType
	Date        time.Time
	SlotID      string
}

// Validation результат проверки слота
type Validation struct {
	Valid         bool
	EstimatedTime *string // время приема следующего пациента, nil если мест нет
}
