package resync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/pkg/sequence"
)

const staleChannel = "snapshot"

// Result состояние экрана после синхронизации
type Result struct {
	Overview *domain.DayOverview
	// Snapshot nil, если слот не выбран, дата не выбрана или расчет вытеснен более новым
	Snapshot *domain.SlotSnapshot
}

// Syncer обновляет кэш и пересчитывает снимок выбранного слота
// Последовательность: дождаться Refresh, затем пересчитать снимок, если выбран слот.
type Syncer struct {
	store     Store
	calc      Calculator
	selection Selection
	metrics   Metrics
	logger    Logger
}

// NewSyncer создает новый экземпляр Syncer
func NewSyncer(store Store, calc Calculator, selection Selection, metrics Metrics, logger Logger) *Syncer {
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &Syncer{
		store:     store,
		calc:      calc,
		selection: selection,
		metrics:   metrics,
		logger:    logger,
	}
}

// Resync загружает записи на дату и пересчитывает снимок
// Ошибка Refresh (в том числе sequence.ErrSuperseded) возвращается как есть. Если обновление выбранной
// даты не удалось, опубликованный снимок снимается: кэш уже очищен и снимок ему не соответствует.
func (s *Syncer) Resync(ctx context.Context, date time.Time) (*Result, error) {
	// 1. Полная перезагрузка кэша
	if err := s.store.Refresh(ctx, date); err != nil {
		if !errors.Is(err, sequence.ErrSuperseded) && s.selection.IsSelectedDate(date) {
			s.selection.InvalidateSnapshot()
		}
		return nil, err
	}

	result := &Result{Overview: s.calc.Overview()}

	// 2. Снимок нужен только для выбранной даты
	if !s.selection.IsSelectedDate(date) {
		return result, nil
	}

	snap, err := s.RefreshSnapshot(ctx)
	if err != nil && !errors.Is(err, sequence.ErrSuperseded) {
		return result, err
	}
	result.Snapshot = snap

	return result, nil
}

// RefreshSnapshot пересчитывает снимок для текущего выбора и публикует его
// Если слот не выбран, возвращает nil без ошибки. Если за время расчета выбор изменился,
// снимок отбрасывается и возвращается sequence.ErrSuperseded.
func (s *Syncer) RefreshSnapshot(ctx context.Context) (*domain.SlotSnapshot, error) {
	token, current, ok := s.selection.BeginSnapshot()
	if !ok {
		return nil, nil
	}

	snap, err := s.calc.Compute(ctx, current.Date, current.SlotID)
	if err != nil {
		return nil, err
	}

	if !s.selection.PublishSnapshot(token, snap) {
		s.metrics.IncStaleResponse(staleChannel)
		s.logger.Warn("RefreshSnapshot: discarded stale snapshot for date=%s slot=%q (seq=%d)",
			current.Date.Format(domain.DateFormat), current.SlotID, token.Seq)
		return nil, fmt.Errorf("%w: snapshot for date=%s slot=%q",
			sequence.ErrSuperseded, current.Date.Format(domain.DateFormat), current.SlotID)
	}

	return snap, nil
}
