package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentDesk/internal/infra/storage/appointment"
)

// Service сервис записей: хранит записи и авторитетно проверяет вместимость слотов
type Service struct {
	repo      Repository
	txManager TransactionManager
	catalog   Catalog
	logger    Logger
	newID     func() string
}

// NewService создает новый экземпляр сервиса записей
func NewService(repo Repository, txManager TransactionManager, catalog Catalog, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		catalog:   catalog,
		logger:    logger,
		newID:     uuid.NewString,
	}
}

// List возвращает все записи на дату
func (s *Service) List(ctx context.Context, date time.Time) ([]domain.Appointment, error) {
	list, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("List: date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}
	return list, nil
}

// Validate проверяет, примет ли слот еще одну запись, и считает время приема
// Для слота, которого нет в каталоге, возвращается Valid=false
func (s *Service) Validate(ctx context.Context, date time.Time, slotID string) (*Validation, error) {
	slot, err := s.catalog.Lookup(slotID)
	if err != nil {
		s.logger.Warn("Validate: %v", err)
		return &Validation{Valid: false}, nil
	}

	booked, err := s.repo.CountBySlot(ctx, date, slotID)
	if err != nil {
		s.logger.Error("Validate: date=%s slot=%q: %v", date.Format(domain.DateFormat), slotID, err)
		return nil, fmt.Errorf("%w: failed to count appointments: %v", ErrInternal, err)
	}

	result := &Validation{Valid: booked < slot.Capacity}
	if estimate, ok := slot.EstimatedTimeFor(booked); ok {
		result.EstimatedTime = &estimate
	}
	return result, nil
}

// Create создает запись в статусе pending
// Подсчет и вставка выполняются в одной сериализуемой транзакции, поэтому две стойки
// не могут одновременно занять последнее место.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.Appointment, error) {
	// 1. Валидация входных данных
	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Слот из каталога
	slot, err := s.catalog.Lookup(req.SlotID)
	if err != nil {
		s.logger.Warn("Create: %v", err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, req.SlotID)
	}

	created := &domain.Appointment{
		ID:          s.newID(),
		Name:        req.Name,
		Phone:       req.Phone,
		ServiceType: req.ServiceType,
		Date:        req.Date,
		SlotID:      slot.ID,
		Status:      domain.StatusPending,
	}

	// 3. Проверка вместимости и вставка
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		booked, err := s.repo.CountBySlot(ctx, req.Date, slot.ID)
		if err != nil {
			return err
		}
		if booked >= slot.Capacity {
			return ErrSlotFull
		}

		created.EstimatedTime = nil
		if estimate, ok := slot.EstimatedTimeFor(booked); ok {
			created.EstimatedTime = &estimate
		}

		return s.repo.Create(ctx, created)
	})
	if err != nil {
		if errors.Is(err, ErrSlotFull) {
			s.logger.Warn("Create: slot %q on %s is full", slot.ID, req.Date.Format(domain.DateFormat))
			return nil, err
		}
		s.logger.Error("Create: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	s.logger.Info("Create: id=%s slot=%q date=%s estimated=%s",
		created.ID, slot.ID, req.Date.Format(domain.DateFormat), created.DisplayTime())
	return created, nil
}

// UpdateStatus меняет статус записи
// Повторная установка того же статуса не считается ошибкой
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
			return fmt.Errorf("%w: id=%s", ErrAppointmentNotFound, id)
		}
		s.logger.Error("UpdateStatus: id=%s: %v", id, err)
		return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: id=%s status=%s", id, status)
	return nil
}
