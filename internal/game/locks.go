package game

import (
	"sync"

	"github.com/google/uuid"
)

// keyedMutex hands out one mutex per game ID and forgets it once nobody
// holds or waits for it.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*refLock
}

type refLock struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[uuid.UUID]*refLock)}
}

// Lock blocks until id is free and returns the matching unlock.
func (k *keyedMutex) Lock(id uuid.UUID) (unlock func()) {
	k.mu.Lock()
	l, ok := k.locks[id]
	if !ok {
		l = &refLock{}
		k.locks[id] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
