package create_appointment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
)

// normalizeRequest обрезает пробелы и подставляет тип приема по умолчанию
func normalizeRequest(req *Request) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.ServiceType = strings.TrimSpace(req.ServiceType)
	req.SlotID = strings.TrimSpace(req.SlotID)
	if req.ServiceType == "" {
		req.ServiceType = string(domain.ServiceConsultation)
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone must be at most %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.SlotID == "" {
		return fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.ServiceType(req.ServiceType).IsValid() {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.ServiceType)
	}

	return nil
}

// submissionKey ключ защиты от повторной отправки: дата, слот и экземпляр формы
func submissionKey(req *Request) string {
	return req.Date.Format(domain.DateFormat) + "|" + req.SlotID + "|" + req.FormID
}
