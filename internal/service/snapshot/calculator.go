package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
)

// Calculator собирает снимок слота из кэша записей и ответа сервиса
type Calculator struct {
	catalog Catalog
	store   Store
	client  ValidationClient
	logger  Logger
}

// NewCalculator создает новый экземпляр калькулятора
func NewCalculator(catalog Catalog, store Store, client ValidationClient, logger Logger) *Calculator {
	return &Calculator{
		catalog: catalog,
		store:   store,
		client:  client,
		logger:  logger,
	}
}

// Compute вычисляет снимок слота на дату
//
// Booked/Available берутся из кэша и служат только для отображения. Valid/EstimatedNextTime
// приходят от сервиса записей. Если сервис не ответил, возвращается снимок с Degraded=true
// и ValidFromServer=false, ошибки при этом нет.
func (c *Calculator) Compute(ctx context.Context, date time.Time, slotID string) (*domain.SlotSnapshot, error) {
	// 1. Описание слота из каталога
	slot, err := c.catalog.Lookup(slotID)
	if err != nil {
		c.logger.Warn("Compute: %v", err)
		return nil, err
	}

	// 2. Локальные счетчики, только если кэш загружен за эту же дату
	appointments := []domain.Appointment{}
	loaded := sameDay(c.store.Date(), date)
	if loaded {
		appointments = c.store.AppointmentsFor(slotID)
	} else {
		c.logger.Warn("Compute: cache holds date=%s, not %s; slot %q shown without local counts",
			c.store.Date().Format(domain.DateFormat), date.Format(domain.DateFormat), slotID)
	}
	booked := len(appointments)

	snap := &domain.SlotSnapshot{
		Date:         date,
		SlotID:       slot.ID,
		DisplayName:  slot.DisplayName,
		Duration:     slot.Duration,
		Booked:       booked,
		Available:    domain.AvailableSpots(slot.Capacity, booked),
		Capacity:     slot.Capacity,
		Appointments: appointments,
		NotLoaded:    !loaded,
	}

	// 3. Авторитетная проверка
	validation, err := c.client.ValidateSlotWithGracefulDegradation(ctx, date, slotID)
	if err != nil {
		c.logger.Warn("Compute: slot %q on %s shown from local data only: %v",
			slotID, date.Format(domain.DateFormat), err)
		snap.Degraded = true
		return snap, nil
	}

	// 4. Решение о записи берется только из ответа сервиса
	snap.ValidFromServer = validation.Valid
	if validation.EstimatedTime != nil {
		estimate := *validation.EstimatedTime
		snap.EstimatedNextTime = &estimate
	}

	c.logger.Info("Compute: date=%s %s", date.Format(domain.DateFormat), describe(snap))
	return snap, nil
}

// Overview возвращает сводку по всем слотам для даты, загруженной в кэш
func (c *Calculator) Overview() *domain.DayOverview {
	slots := c.catalog.All()

	overview := &domain.DayOverview{
		Date:  c.store.Date(),
		Slots: make([]domain.SlotSummary, 0, len(slots)),
	}

	for _, slot := range slots {
		summary := domain.SlotSummary{Slot: slot}
		for _, a := range c.store.AppointmentsFor(slot.ID) {
			summary.Booked++
			switch {
			case a.IsPending():
				summary.Pending++
			case a.IsCompleted():
				summary.Completed++
			}
		}
		summary.Available = domain.AvailableSpots(slot.Capacity, summary.Booked)

		overview.Slots = append(overview.Slots, summary)
		overview.Total += summary.Booked
	}

	if overview.Total != c.store.Count() {
		// записи с неизвестным слотом в сводку не попадают
		c.logger.Warn("Overview: %d of %d cached appointments reference unknown slots",
			c.store.Count()-overview.Total, c.store.Count())
	}

	return overview
}

func sameDay(a, b time.Time) bool {
	return a.Format(domain.DateFormat) == b.Format(domain.DateFormat)
}

// describe краткое описание снимка для логов
func describe(s *domain.SlotSnapshot) string {
	return fmt.Sprintf("slot=%q booked=%d/%d valid=%t degraded=%t", s.SlotID, s.Booked, s.Capacity, s.ValidFromServer, s.Degraded)
}
