package service

import "sync"

// keyedMutex serializes work per key. The reservation path locks on the
// wishlist ID so concurrent updates to one wishlist apply one at a time
// while different wishlists proceed in parallel. Locks are never
// removed; the key space is small (one per wishlist).
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for key and returns its unlock func.
func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
