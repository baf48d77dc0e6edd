package bot

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserLocksSerializeSameUser(t *testing.T) {
	locks := newUserLocks()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		active  int
		maxSeen int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock(7)
			defer unlock()

			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Zero(t, locks.len())
}

func TestUserLocksIndependentUsers(t *testing.T) {
	locks := newUserLocks()

	unlockA := locks.Lock(1)
	// второй пользователь не ждет первого
	unlockB := locks.Lock(2)
	assert.Equal(t, 2, locks.len())

	unlockB()
	unlockA()
	assert.Zero(t, locks.len())
}
