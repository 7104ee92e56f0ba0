package select_date

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/appointments"
)

// UseCase use case для смены выбранной даты
type UseCase struct {
	selection Selection
	syncer    Syncer
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(selection Selection, syncer Syncer, logger Logger) *UseCase {
	return &UseCase{
		selection: selection,
		syncer:    syncer,
		logger:    logger,
	}
}

// Execute меняет дату, дожидается загрузки записей и пересчитывает снимок выбранного слота
// Если пока шла загрузка дату сменили еще раз, возвращается sequence.ErrSuperseded.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SelectDate: validation failed: %v", err)
		return nil, err
	}

	// 2. Меняем выбор, незавершенные расчеты для старой даты становятся неактуальными
	current := uc.selection.SelectDate(req.Date)
	uc.logger.Info("SelectDate: date=%s, slot=%q", current.Date.Format(domain.DateFormat), current.SlotID)

	// 3. Загружаем записи и пересчитываем снимок
	result, err := uc.syncer.Resync(ctx, current.Date)
	if err != nil {
		if errors.Is(err, appointments.ErrRefreshFailed) {
			uc.logger.Error("SelectDate: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
		}
		uc.logger.Warn("SelectDate: %v", err)
		return nil, err
	}

	return &Response{
		Date:     current.Date,
		SlotID:   current.SlotID,
		Overview: result.Overview,
		Snapshot: result.Snapshot,
	}, nil
}
