package selection

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/pkg/sequence"
)

// State явное состояние экрана: выбранная дата, выбранный слот и последний примененный снимок
// Смена даты или слота делает неактуальными все незавершенные расчеты снимка.
type State struct {
	tracker sequence.Tracker

	mu       sync.RWMutex
	date     time.Time
	slotID   string
	snapshot *domain.SlotSnapshot
}

// Selection копия текущего выбора
type Selection struct {
	Date   time.Time
	SlotID string
}

// HasSlot возвращает true, если выбран слот
func (s Selection) HasSlot() bool {
	return s.SlotID != ""
}

// New создает состояние с выбранной датой и без выбранного слота
func New(initialDate time.Time) *State {
	return &State{date: truncateDay(initialDate)}
}

// SelectDate меняет дату
// Слот остается выбранным, снимок сбрасывается до следующего расчета.
func (s *State) SelectDate(date time.Time) Selection {
	s.mu.Lock()
	s.date = truncateDay(date)
	s.snapshot = nil
	current := Selection{Date: s.date, SlotID: s.slotID}
	s.mu.Unlock()

	s.invalidate(current)
	return current
}

// SelectSlot меняет выбранный слот; пустой slotID снимает выбор
func (s *State) SelectSlot(slotID string) Selection {
	s.mu.Lock()
	s.slotID = slotID
	s.snapshot = nil
	current := Selection{Date: s.date, SlotID: s.slotID}
	s.mu.Unlock()

	s.invalidate(current)
	return current
}

// Current возвращает текущий выбор
func (s *State) Current() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Selection{Date: s.date, SlotID: s.slotID}
}

// IsSelectedDate проверяет, что дата совпадает с выбранной
func (s *State) IsSelectedDate(date time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.date.Equal(truncateDay(date))
}

// BeginSnapshot выдает токен на расчет снимка для текущего выбора
// ok=false, если слот не выбран.
func (s *State) BeginSnapshot() (sequence.Token, Selection, bool) {
	current := s.Current()
	if !current.HasSlot() {
		return sequence.Token{}, current, false
	}
	return s.tracker.Issue(keyOf(current)), current, true
}

// PublishSnapshot применяет снимок, если за время расчета не было нового выбора или расчета
func (s *State) PublishSnapshot(token sequence.Token, snap *domain.SlotSnapshot) bool {
	return s.tracker.ApplyIfCurrent(token, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.snapshot = snap
	})
}

// InvalidateSnapshot снимает опубликованный снимок и отменяет незавершенные расчеты
// Выбор не меняется.
func (s *State) InvalidateSnapshot() {
	s.invalidate(s.Current())
}

// Snapshot возвращает последний примененный снимок или nil
func (s *State) Snapshot() *domain.SlotSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot
}

// invalidate выдает новый токен и сбрасывает снимок под ним
// Снимок, опубликованный по старому токену между сменой выбора и выдачей токена, тоже сбрасывается.
func (s *State) invalidate(current Selection) {
	token := s.tracker.Issue(keyOf(current))
	s.tracker.ApplyIfCurrent(token, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.snapshot = nil
	})
}

func keyOf(sel Selection) sequence.Key {
	return sequence.Key{Date: sel.Date.Format(domain.DateFormat), SlotID: sel.SlotID}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
