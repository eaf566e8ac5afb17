package services

import (
	"sync"
	"testing"
)

func TestKeyLocksSerializesSameKey(t *testing.T) {
	locks := NewKeyLocks()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("same-key")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Errorf("counter = %d, want 100", counter)
	}
}

func TestLockPairOppositeOrderDoesNotDeadlock(t *testing.T) {
	locks := NewKeyLocks()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock := locks.LockPair("alpha", "beta")
			unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := locks.LockPair("beta", "alpha")
			unlock()
		}()
	}
	wg.Wait()
}

func TestLockPairSameKey(t *testing.T) {
	locks := NewKeyLocks()
	unlock := locks.LockPair("only", "only")
	unlock()
	// Re-acquire to prove the first release left no stripe held.
	unlock = locks.Lock("only")
	unlock()
}
