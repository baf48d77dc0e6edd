package bot

import "sync"

type (
	userLocks struct {
		mu    sync.Mutex
		locks map[int64]*userLock
	}

	userLock struct {
		sync.Mutex
		// сколько обработчиков держат или ждут блокировку
		refs int
	}
)

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[int64]*userLock)}
}

// Lock - дождаться своей очереди на обработку сообщения пользователя.
// Возвращает функцию освобождения.
func (l *userLocks) Lock(userID int64) func() {
	l.mu.Lock()
	lock, ok := l.locks[userID]
	if !ok {
		lock = &userLock{}
		l.locks[userID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.Lock()

	return func() {
		lock.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, userID)
		}
		l.mu.Unlock()
	}
}

func (l *userLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
