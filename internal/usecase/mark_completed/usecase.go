package mark_completed

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
)

// UseCase use case для отметки приема как завершенного
type UseCase struct {
	client    AppointmentServiceClient
	selection Selection
	syncer    Syncer
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client AppointmentServiceClient, selection Selection, syncer Syncer, logger Logger) *UseCase {
	return &UseCase{
		client:    client,
		selection: selection,
		syncer:    syncer,
		logger:    logger,
	}
}

// Execute переводит запись в статус completed
// Локальной проверки текущего статуса нет: повторный вызов уходит в сервис как есть.
// При ошибке кэш не меняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	id := strings.TrimSpace(req.AppointmentID)
	uc.logger.Info("MarkCompleted: id=%q", id)

	// 1. Валидация входных данных
	if id == "" {
		uc.logger.Warn("MarkCompleted: validation failed: empty appointment id")
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}

	// 2. Меняем статус в сервисе
	if err := uc.client.UpdateStatus(ctx, id, domain.StatusCompleted); err != nil {
		uc.logger.Error("MarkCompleted: id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: id=%s: %w", ErrUpdateFailed, id, err)
	}

	resp := &Response{
		AppointmentID: id,
		Status:        domain.StatusCompleted,
	}

	// 3. Перечитываем выбранную дату
	date := uc.selection.Current().Date
	result, err := uc.syncer.Resync(ctx, date)
	if err != nil {
		uc.logger.Warn("MarkCompleted: status updated, but refresh failed: %v", err)
		return resp, nil
	}

	resp.Synced = true
	resp.Overview = result.Overview
	resp.Snapshot = result.Snapshot

	return resp, nil
}
