package keylock

import (
	"sort"
	"sync"
)

// KeyLock provides mutual exclusion keyed by arbitrary strings. It serializes
// check-then-write sequences that touch the same resource (a room or instructor
// on a given weekday, a section's roster) without blocking unrelated requests.
type KeyLock struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New creates a new KeyLock
func New() *KeyLock {
	return &KeyLock{
		locks: make(map[string]*entry),
	}
}

// Lock acquires the mutex for the given key, creating it on first use.
func (k *KeyLock) Lock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the mutex for the given key. Entries are removed once no
// goroutine holds or waits on them, so the map does not grow unbounded.
func (k *KeyLock) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		k.mu.Unlock()
		panic("keylock: unlock of unheld key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}

// LockAll acquires every distinct key in sorted order, so overlapping key
// sets from concurrent callers never deadlock.
func (k *KeyLock) LockAll(keys ...string) {
	for _, key := range normalize(keys) {
		k.Lock(key)
	}
}

// UnlockAll releases every distinct key in reverse acquisition order.
func (k *KeyLock) UnlockAll(keys ...string) {
	ordered := normalize(keys)
	for i := len(ordered) - 1; i >= 0; i-- {
		k.Unlock(ordered[i])
	}
}

func normalize(keys []string) []string {
	ordered := make([]string, len(keys))
	copy(ordered, keys)
	sort.Strings(ordered)
	out := ordered[:0]
	for i, key := range ordered {
		if i == 0 || key != ordered[i-1] {
			out = append(out, key)
		}
	}
	return out
}
