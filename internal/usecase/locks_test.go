package usecase

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	km := newKeyedMutex()

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("passenger-1")
			counter++
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestKeyedMutexDuplicateKeys(t *testing.T) {
	km := newKeyedMutex()

	// Duplicate keys in one call must not self-deadlock.
	unlock := km.Lock("a", "a", "a")
	unlock()
}

func TestKeyedMutexOpposingOrder(t *testing.T) {
	km := newKeyedMutex()

	// Two goroutines naming the same keys in opposite order must not
	// deadlock; the test hangs if ordering is broken.
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock := km.Lock("a", "b")
			unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := km.Lock("b", "a")
			unlock()
		}()
	}
	wg.Wait()
}

func TestKeyedMutexCleansUpIdleLocks(t *testing.T) {
	km := newKeyedMutex()

	unlock := km.Lock("a", "b")
	unlock()

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.locks)
}
