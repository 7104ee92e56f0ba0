// Package appointmentservicetest содержит in-memory реализацию сервиса записей для тестов
package appointmentservicetest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/internal/integrations/appointmentservice"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/catalog"
)

const (
	OpList     = "list"
	OpValidate = "validate"
	OpCreate   = "create"
	OpUpdate   = "update"
)

// Fake сервис записей в памяти
// Проверяет вместимость слотов так же, как настоящий сервис, и считает вызовы по операциям.
type Fake struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	records []appointmentservice.Appointment
	nextID  int
	calls   map[string]int

	// Ошибки, которые вернет соответствующая операция (если не nil)
	ListErr     error
	ValidateErr error
	CreateErr   error
	UpdateErr   error

	// ForceValid подменяет ответ проверки слота
	ForceValid *bool

	// BeforeList вызывается перед ответом на список (вне блокировки), позволяет придержать ответ
	BeforeList func(date time.Time)
}

// NewFake создает пустой сервис с каталогом по умолчанию
func NewFake() *Fake {
	return &Fake{
		catalog: catalog.Default(),
		calls:   make(map[string]int),
	}
}

// Add добавляет запись напрямую, минуя проверку вместимости, и возвращает ее ID
func (f *Fake) Add(date time.Time, slotID, name string, status domain.AppointmentStatus) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	id := "apt-" + strconv.Itoa(f.nextID)
	f.records = append(f.records, appointmentservice.Appointment{
		ID:              appointmentservice.ID(id),
		Name:            name,
		Phone:           "+10000000" + strconv.Itoa(f.nextID),
		ServiceType:     string(domain.ServiceConsultation),
		AppointmentDate: date.Format(domain.DateFormat),
		TimeSlot:        slotID,
		Status:          string(status),
	})
	return id
}

// Calls возвращает количество вызовов операции
func (f *Fake) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[op]
}

// Record возвращает запись по ID
func (f *Fake) Record(id string) (appointmentservice.Appointment, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, r := range f.records {
		if string(r.ID) == id {
			return r, true
		}
	}
	return appointmentservice.Appointment{}, false
}

func (f *Fake) ListAppointments(ctx context.Context, date time.Time) ([]appointmentservice.Appointment, error) {
	f.mu.Lock()
	f.calls[OpList]++
	hook := f.BeforeList
	f.mu.Unlock()

	if hook != nil {
		hook(date)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ListErr != nil {
		return nil, f.ListErr
	}

	day := date.Format(domain.DateFormat)
	result := make([]appointmentservice.Appointment, 0)
	for _, r := range f.records {
		if r.AppointmentDate == day {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *Fake) ValidateSlot(ctx context.Context, date time.Time, slotID string) (*appointmentservice.ValidateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[OpValidate]++
	if f.ValidateErr != nil {
		return nil, f.ValidateErr
	}

	slot, err := f.catalog.Lookup(slotID)
	if err != nil {
		return &appointmentservice.ValidateResponse{Valid: false}, nil
	}

	booked := f.countLocked(date, slotID)
	resp := &appointmentservice.ValidateResponse{Valid: booked < slot.Capacity}
	if estimate, ok := slot.EstimatedTimeFor(booked); ok {
		resp.EstimatedTime = &estimate
	}
	if f.ForceValid != nil {
		resp.Valid = *f.ForceValid
	}
	return resp, nil
}

func (f *Fake) ValidateSlotWithGracefulDegradation(ctx context.Context, date time.Time, slotID string) (*appointmentservice.ValidateResponse, error) {
	resp, err := f.ValidateSlot(ctx, date, slotID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appointmentservice.ErrServiceDegraded, err)
	}
	return resp, nil
}

func (f *Fake) CreateAppointment(ctx context.Context, req *appointmentservice.CreateRequest) (*appointmentservice.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[OpCreate]++
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}

	slot, err := f.catalog.Lookup(req.TimeSlot)
	if err != nil {
		return nil, &appointmentservice.RejectedError{StatusCode: http.StatusBadRequest, Message: "Invalid time slot"}
	}

	date, err := time.Parse(domain.DateFormat, req.AppointmentDate)
	if err != nil {
		return nil, &appointmentservice.RejectedError{StatusCode: http.StatusBadRequest, Message: "Invalid date"}
	}

	booked := f.countLocked(date, req.TimeSlot)
	if booked >= slot.Capacity {
		return nil, &appointmentservice.RejectedError{StatusCode: http.StatusConflict, Message: "Slot is full"}
	}

	f.nextID++
	created := appointmentservice.Appointment{
		ID:              appointmentservice.ID("apt-" + strconv.Itoa(f.nextID)),
		Name:            req.Name,
		Phone:           req.Phone,
		ServiceType:     req.ServiceType,
		AppointmentDate: req.AppointmentDate,
		TimeSlot:        req.TimeSlot,
		Status:          string(domain.StatusPending),
	}
	if estimate, ok := slot.EstimatedTimeFor(booked); ok {
		created.EstimatedTime = &estimate
	}

	f.records = append(f.records, created)
	return &created, nil
}

func (f *Fake) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[OpUpdate]++
	if f.UpdateErr != nil {
		return f.UpdateErr
	}

	for i := range f.records {
		if string(f.records[i].ID) == id {
			f.records[i].Status = string(status)
			return nil
		}
	}
	return &appointmentservice.RejectedError{StatusCode: http.StatusNotFound, Message: "Appointment not found"}
}

func (f *Fake) countLocked(date time.Time, slotID string) int {
	day := date.Format(domain.DateFormat)
	count := 0
	for _, r := range f.records {
		if r.AppointmentDate == day && r.TimeSlot == slotID {
			count++
		}
	}
	return count
}
