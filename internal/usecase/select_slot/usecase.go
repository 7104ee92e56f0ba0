package select_slot

import (
	"context"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
)

// UseCase use case для выбора слота
type UseCase struct {
	catalog   Catalog
	selection Selection
	syncer    Syncer
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog Catalog, selection Selection, syncer Syncer, logger Logger) *UseCase {
	return &UseCase{
		catalog:   catalog,
		selection: selection,
		syncer:    syncer,
		logger:    logger,
	}
}

// Execute выбирает слот и рассчитывает его снимок по текущему кэшу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Неизвестный слот не меняет выбор
	if req.SlotID != "" {
		if _, err := uc.catalog.Lookup(req.SlotID); err != nil {
			uc.logger.Warn("SelectSlot: %v", err)
			return nil, err
		}
	}

	// 2. Меняем выбор
	current := uc.selection.SelectSlot(req.SlotID)
	uc.logger.Info("SelectSlot: date=%s, slot=%q", current.Date.Format(domain.DateFormat), current.SlotID)

	resp := &Response{
		Date:   current.Date,
		SlotID: current.SlotID,
	}
	if !current.HasSlot() {
		return resp, nil
	}

	// 3. Снимок выбранного слота
	snap, err := uc.syncer.RefreshSnapshot(ctx)
	if err != nil {
		uc.logger.Warn("SelectSlot: %v", err)
		return nil, err
	}
	resp.Snapshot = snap

	return resp, nil
}
