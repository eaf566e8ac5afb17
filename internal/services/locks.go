package services

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// KeyLocks serializes read-modify-write cycles on the same record key
// within this process. The store exposes no conditional writes, so
// concurrent writers in other processes remain unguarded; this narrows
// the window for a single instance only.
type KeyLocks struct {
	stripes [lockStripes]sync.Mutex
}

// NewKeyLocks creates a striped lock set shared across services.
func NewKeyLocks() *KeyLocks {
	return &KeyLocks{}
}

// Lock acquires the stripe for key and returns its unlock func.
func (l *KeyLocks) Lock(key string) func() {
	mu := &l.stripes[stripe(key)]
	mu.Lock()
	return mu.Unlock
}

// LockPair acquires the stripes for both keys in index order, so two
// callers touching the same records in opposite roles cannot deadlock.
func (l *KeyLocks) LockPair(a, b string) func() {
	i, j := stripe(a), stripe(b)
	if i > j {
		i, j = j, i
	}
	l.stripes[i].Lock()
	if j != i {
		l.stripes[j].Lock()
	}
	return func() {
		if j != i {
			l.stripes[j].Unlock()
		}
		l.stripes[i].Unlock()
	}
}

func stripe(key string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return h.Sum32() % lockStripes
}
