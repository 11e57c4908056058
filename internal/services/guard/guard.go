// Package guard serializes game transitions so that at most one action per
// game commits at a time.
package guard

import "sync"

// Guard hands out one exclusive lock per key (a room code). Every game
// transition performs all of its decision reads and all of its writes while
// holding the key's lock, so two concurrent actions on the same game behave
// as if one fully completed before the other began. Actions on different
// keys proceed in parallel.
//
// This is an in-process discipline sized for a single-instance deployment;
// a multi-instance deployment would back it with storage-level transactions.
type Guard struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an empty Guard
func New() *Guard {
	return &Guard{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the exclusive lock for key, blocking until it is free, and
// returns the function that releases it.
func (g *Guard) Lock(key string) (unlock func()) {
	g.mu.Lock()
	lock, ok := g.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		g.locks[key] = lock
	}
	g.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
