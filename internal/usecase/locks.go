package usecase

import (
	"sort"
	"sync"
)

// keyedMutex serializes work per entity id. Balance and capacity updates are
// read-modify-write over two storage round trips, so concurrent bookings
// against the same passenger or activity would otherwise lose updates.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*entityLock
}

type entityLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*entityLock)}
}

// Lock acquires the locks for every key and returns the release function.
// Keys are deduplicated and taken in sorted order so two calls can never
// deadlock on each other.
func (k *keyedMutex) Lock(keys ...string) func() {
	uniq := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if !seen[key] {
			seen[key] = true
			uniq = append(uniq, key)
		}
	}
	sort.Strings(uniq)

	acquired := make([]*entityLock, 0, len(uniq))
	for _, key := range uniq {
		k.mu.Lock()
		l, ok := k.locks[key]
		if !ok {
			l = &entityLock{}
			k.locks[key] = l
		}
		l.refs++
		k.mu.Unlock()

		l.mu.Lock()
		acquired = append(acquired, l)
	}

	return func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i].mu.Unlock()
		}
		k.mu.Lock()
		for _, key := range uniq {
			l := k.locks[key]
			l.refs--
			if l.refs == 0 {
				delete(k.locks, key)
			}
		}
		k.mu.Unlock()
	}
}
