package appointments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/pkg/sequence"
)

const staleChannel = "refresh"

// Store кэш записей выбранной даты
// Содержимое заменяется только целиком, по завершении актуального Refresh. Других способов изменить кэш нет.
type Store struct {
	client  AppointmentServiceClient
	tracker sequence.Tracker
	filter  DateFilter
	metrics Metrics
	logger  Logger

	mu      sync.RWMutex
	date    time.Time
	records []domain.Appointment
}

// NewStore создает пустой кэш записей
func NewStore(client AppointmentServiceClient, metrics Metrics, logger Logger) *Store {
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &Store{
		client:  client,
		metrics: metrics,
		logger:  logger,
		records: []domain.Appointment{},
	}
}

// WithDateFilter ограничивает кэш выбранной датой
// Refresh для невыбранной даты не обращается к сервису, а ответ применяется, только если дата все еще
// выбрана и для нее не было более нового Refresh. Обновления других дат такой ответ не вытесняют.
func (s *Store) WithDateFilter(filter DateFilter) *Store {
	s.filter = filter
	return s
}

// Refresh заменяет весь кэш списком записей сервиса на дату
//
// Каждый вызов получает новый токен. Ответ применяется только если после него не было более нового
// Refresh; иначе он отбрасывается и возвращается sequence.ErrSuperseded. С фильтром дат (WithDateFilter)
// "более новым" считается только Refresh той же даты.
// Если сервис не ответил, кэш очищается (старые данные не показываются как актуальные) и ошибка
// возвращается вызывающему.
func (s *Store) Refresh(ctx context.Context, date time.Time) error {
	day := date.Format(domain.DateFormat)

	if s.filter != nil && !s.filter.IsSelectedDate(date) {
		s.metrics.IncStaleResponse(staleChannel)
		s.logger.Warn("Refresh: date=%s is no longer selected, skipped", day)
		return fmt.Errorf("%w: refresh for unselected date=%s", sequence.ErrSuperseded, day)
	}

	token := s.tracker.Issue(sequence.Key{Date: day})

	list, err := s.client.ListAppointments(ctx, date)

	records := make([]domain.Appointment, 0, len(list))
	if err == nil {
		for i := range list {
			records = append(records, list[i].ToDomain(date))
		}
	}

	apply := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.date = date
		s.records = records
	}

	var applied bool
	if s.filter != nil {
		applied = s.tracker.ApplyIfLatestFor(token, func() bool { return s.filter.IsSelectedDate(date) }, apply)
	} else {
		applied = s.tracker.ApplyIfCurrent(token, apply)
	}

	if !applied {
		s.metrics.IncStaleResponse(staleChannel)
		s.logger.Warn("Refresh: discarded stale response for date=%s (seq=%d)", day, token.Seq)
		return fmt.Errorf("%w: refresh for date=%s", sequence.ErrSuperseded, day)
	}

	if err != nil {
		s.metrics.ObserveRefresh("failed")
		s.logger.Error("Refresh: failed to list appointments for date=%s, cache cleared: %v", day, err)
		return fmt.Errorf("%w: date=%s: %w", ErrRefreshFailed, day, err)
	}

	s.metrics.ObserveRefresh("ok")
	s.logger.Info("Refresh: cached %d appointments for date=%s", len(records), day)
	return nil
}

// Date возвращает дату, за которую загружен кэш
func (s *Store) Date() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.date
}

// AppointmentsFor возвращает записи слота в порядке ответа сервиса
func (s *Store) AppointmentsFor(slotID string) []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Appointment, 0)
	for _, a := range s.records {
		if a.SlotID == slotID {
			result = append(result, a)
		}
	}
	return result
}

// All возвращает копию всего кэша
func (s *Store) All() []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Appointment, len(s.records))
	copy(result, s.records)
	return result
}

// Count возвращает количество записей в кэше
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
