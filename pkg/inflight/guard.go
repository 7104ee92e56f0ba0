package inflight

import "sync"

// Guard не допускает повторного запуска операции с тем же ключом, пока первая не завершилась
type Guard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// New создает новый Guard
func New() *Guard {
	return &Guard{active: make(map[string]struct{})}
}

// TryAcquire занимает ключ
// Если ключ уже занят, возвращает ok=false. Иначе возвращает release, который нужно вызвать
// после завершения операции (успех, отказ или ошибка). Повторный вызов release безопасен.
func (g *Guard) TryAcquire(key string) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[key]; busy {
		return nil, false
	}
	g.active[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.active, key)
			g.mu.Unlock()
		})
	}, true
}

// InFlight возвращает true, если операция с ключом сейчас выполняется
func (g *Guard) InFlight(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, busy := g.active[key]
	return busy
}
