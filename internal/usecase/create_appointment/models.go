package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	Date        time.Time // Дата; нулевая означает выбранную дату
	SlotID      string    // Слот; пустой означает выбранный слот
	Name        string    // Имя пациента
	Phone       string    // Телефон пациента
	ServiceType string    // Тип приема; пустой означает Consultation
	FormID      string    // Экземпляр формы, с которой отправлена запись
}

// Response модель ответа после создания записи
type Response struct {
	// Created запись из ответа сервиса; nil, если тело ответа не распознано
	Created *domain.Appointment
	// Synced false, если после создания не удалось обновить кэш или дата уже не выбрана
	Synced   bool
	Overview *domain.DayOverview
	Snapshot *domain.SlotSnapshot
}
