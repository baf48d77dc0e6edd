package keyboard

import (
	"strings"
	"sync"

	"support-nav-bot/internal/database"

	"golang.org/x/text/unicode/norm"
)

// Normalize - привести текст кнопки к виду для сравнения.
// Тексты, совпавшие после нормализации, считаются одной кнопкой.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(text)))
}

// Updates - действия кнопок, показанных за одну отрисовку
type Updates map[string]database.NavAction

func (u Updates) add(label string, action database.NavAction) {
	u[Normalize(label)] = action
}

// Index - общая для всех пользователей таблица "текст кнопки -> действие".
// Тексты кнопок глобальны, поэтому при совпадении нормализованного текста
// побеждает последняя записанная отрисовка.
type Index struct {
	lock    sync.RWMutex
	actions map[string]database.NavAction
}

func NewIndex() *Index {
	return &Index{actions: make(map[string]database.NavAction)}
}

// Merge - добавить действия отрисованной клавиатуры, существующие записи перезаписываются
func (i *Index) Merge(updates Updates) {
	if len(updates) == 0 {
		return
	}

	i.lock.Lock()
	defer i.lock.Unlock()

	for label, action := range updates {
		i.actions[label] = action
	}
}

// Resolve - найти действие по тексту сообщения пользователя
func (i *Index) Resolve(text string) (database.NavAction, bool) {
	i.lock.RLock()
	defer i.lock.RUnlock()

	action, ok := i.actions[Normalize(text)]
	return action, ok
}

func (i *Index) Len() int {
	i.lock.RLock()
	defer i.lock.RUnlock()
	return len(i.actions)
}
