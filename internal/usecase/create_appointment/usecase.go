package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/internal/integrations/appointmentservice"
)

const (
	outcomeCreated  = "created"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// UseCase use case для создания записи
type UseCase struct {
	catalog   Catalog
	client    AppointmentServiceClient
	selection Selection
	syncer    Syncer
	guard     SubmissionGuard
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog Catalog,
	client AppointmentServiceClient,
	selection Selection,
	syncer Syncer,
	guard SubmissionGuard,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &UseCase{
		catalog:   catalog,
		client:    client,
		selection: selection,
		syncer:    syncer,
		guard:     guard,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute создает запись в сервисе и перечитывает кэш
//
// Кэш не меняется локально: ID и расчетное время новой записи становятся известны
// только после обновления списка. При отказе сервиса обновление не выполняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Дата и слот по умолчанию берутся из текущего выбора
	current := uc.selection.Current()
	if req.Date.IsZero() {
		req.Date = current.Date
	}
	if req.SlotID == "" {
		req.SlotID = current.SlotID
	}
	normalizeRequest(req)

	uc.logger.Info("CreateAppointment: date=%s, slot=%q, service=%s, form=%q",
		req.Date.Format(domain.DateFormat), req.SlotID, req.ServiceType, req.FormID)

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 3. Слот должен быть в каталоге
	if _, err := uc.catalog.Lookup(req.SlotID); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	// 4. Пока отправка формы не завершилась, повторная отклоняется без запроса в сервис
	release, ok := uc.guard.TryAcquire(submissionKey(req))
	if !ok {
		uc.logger.Warn("CreateAppointment: submission for slot %q form %q is already in flight", req.SlotID, req.FormID)
		return nil, ErrSubmissionInFlight
	}
	defer release()

	// 5. Создаем запись
	created, err := uc.client.CreateAppointment(ctx, &appointmentservice.CreateRequest{
		Name:            req.Name,
		Phone:           req.Phone,
		ServiceType:     req.ServiceType,
		AppointmentDate: req.Date.Format(domain.DateFormat),
		TimeSlot:        req.SlotID,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointmentservice.ErrRejected):
			uc.metrics.ObserveBooking(req.SlotID, outcomeRejected)
			uc.logger.Warn("CreateAppointment: rejected by appointment service: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrBookingRejected, err)
		case errors.Is(err, appointmentservice.ErrUnavailable):
			uc.metrics.ObserveBooking(req.SlotID, outcomeFailed)
			uc.logger.Error("CreateAppointment: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrNetworkFailure, err)
		default:
			uc.metrics.ObserveBooking(req.SlotID, outcomeFailed)
			uc.logger.Error("CreateAppointment: %v", err)
			return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
	}

	uc.metrics.ObserveBooking(req.SlotID, outcomeCreated)

	resp := &Response{}
	if created != nil {
		record := created.ToDomain(req.Date)
		resp.Created = &record
		uc.logger.Info("CreateAppointment: created id=%s", record.ID)
	}

	// 6. Перечитываем кэш, если дата все еще выбрана
	if !uc.selection.IsSelectedDate(req.Date) {
		uc.logger.Info("CreateAppointment: date %s is no longer selected, skipping refresh",
			req.Date.Format(domain.DateFormat))
		return resp, nil
	}

	// Запись уже создана: ошибка обновления не превращает результат в отказ
	result, err := uc.syncer.Resync(ctx, req.Date)
	if err != nil {
		uc.logger.Warn("CreateAppointment: created, but refresh failed: %v", err)
		return resp, nil
	}

	resp.Synced = true
	resp.Overview = result.Overview
	resp.Snapshot = result.Snapshot

	return resp, nil
}
