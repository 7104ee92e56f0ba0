package catalog

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
)

// Catalog статический каталог слотов
// Неизменяем после создания, поэтому безопасен для конкурентного чтения
type Catalog struct {
	slots []domain.SlotDefinition
	index map[string]int
}

// New создает каталог из списка слотов
// Порядок слотов сохраняется и используется как порядок отображения
func New(slots []domain.SlotDefinition) (*Catalog, error) {
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrInvalidCatalog)
	}

	c := &Catalog{
		slots: make([]domain.SlotDefinition, len(slots)),
		index: make(map[string]int, len(slots)),
	}

	for i, slot := range slots {
		if slot.ID == "" {
			return nil, fmt.Errorf("%w: slot #%d has empty id", ErrInvalidCatalog, i)
		}
		if slot.Capacity <= 0 {
			return nil, fmt.Errorf("%w: slot %q capacity must be positive", ErrInvalidCatalog, slot.ID)
		}
		if _, dup := c.index[slot.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate slot %q", ErrInvalidCatalog, slot.ID)
		}

		c.slots[i] = slot
		c.index[slot.ID] = i
	}

	return c, nil
}

// Default возвращает каталог из шести слотов рабочего дня
func Default() *Catalog {
	c, err := New(defaultSlots)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup возвращает описание слота по ID
// Для неизвестного ID возвращает ErrUnknownSlot, значения по умолчанию не подставляются
func (c *Catalog) Lookup(slotID string) (domain.SlotDefinition, error) {
	i, ok := c.index[slotID]
	if !ok {
		return domain.SlotDefinition{}, fmt.Errorf("%w: %q", ErrUnknownSlot, slotID)
	}
	return c.slots[i], nil
}

// All возвращает копию списка слотов в порядке отображения
func (c *Catalog) All() []domain.SlotDefinition {
	result := make([]domain.SlotDefinition, len(c.slots))
	copy(result, c.slots)
	return result
}
