package clinic

import (
	"sync"
	"testing"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	locks := newKeyedMutex()
	const goroutines = 32

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locks.Lock("patient:p1")
			defer locks.Unlock("patient:p1")
			counter++
		}()
	}
	wg.Wait()

	if counter != goroutines {
		t.Errorf("counter = %d, want %d", counter, goroutines)
	}
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	locks := newKeyedMutex()

	locks.Lock("patient:p1")
	defer locks.Unlock("patient:p1")

	// A different key must not block while p1 is held.
	done := make(chan struct{})
	go func() {
		locks.Lock("patient:p2")
		locks.Unlock("patient:p2")
		close(done)
	}()
	<-done
}

func TestKeyedMutexReleasesEntries(t *testing.T) {
	locks := newKeyedMutex()

	locks.Lock("patient:p1")
	locks.Unlock("patient:p1")

	locks.mu.Lock()
	defer locks.mu.Unlock()
	if len(locks.entries) != 0 {
		t.Errorf("entries not cleaned up: %d remaining", len(locks.entries))
	}
}
