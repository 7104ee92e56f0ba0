package sequence

import (
	"errors"
	"sync"
)

// ErrSuperseded возвращается, когда результат запроса отброшен,
// потому что после него был выпущен более новый запрос
var ErrSuperseded = errors.New("sequence: response superseded by a newer request")

// Key ключ выборки, к которой относится запрос (дата + слот)
type Key struct {
	Date   string
	SlotID string
}

// Token монотонно возрастающий номер запроса
type Token struct {
	Seq uint64
	Key Key
}

// Tracker выдает токены и решает, можно ли применить ответ
// Актуален только последний выданный токен: ответы на все более ранние запросы отбрасываются.
// Нулевое значение готово к использованию.
type Tracker struct {
	mu     sync.Mutex
	last   Token
	latest map[Key]uint64
}

// Issue выдает новый токен для ключа и делает все ранее выданные токены неактуальными
func (t *Tracker) Issue(key Key) Token {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.last = Token{Seq: t.last.Seq + 1, Key: key}
	if t.latest == nil {
		t.latest = make(map[Key]uint64)
	}
	t.latest[key] = t.last.Seq
	return t.last
}

// IsCurrent проверяет, что токен последний из выданных
func (t *Tracker) IsCurrent(token Token) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return token.Seq != 0 && token == t.last
}

// ApplyIfCurrent выполняет apply только если токен актуален
// Проверка и apply выполняются под одной блокировкой, поэтому Issue не может вклиниться между ними.
func (t *Tracker) ApplyIfCurrent(token Token, apply func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if token.Seq == 0 || token != t.last {
		return false
	}
	apply()
	return true
}

// ApplyIfLatestFor выполняет apply, если токен последний для своего ключа и accept() вернул true
// Токены других ключей его не вытесняют. accept вызывается под той же блокировкой, что и apply.
func (t *Tracker) ApplyIfLatestFor(token Token, accept func() bool, apply func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if token.Seq == 0 || t.latest[token.Key] != token.Seq {
		return false
	}
	if accept != nil && !accept() {
		return false
	}
	apply()
	return true
}
