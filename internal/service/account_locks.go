package service

import "sync"

// accountLocks is a lazily-grown table of per-identifier mutexes. Holding an
// identifier's lock serializes all ledger mutations on that account, which is
// what lets the funds check and the debit leg of a transfer behave as one
// atomic step even though they are separate store calls.
//
// Entries are never removed: accounts cannot be deleted, so the table is
// bounded by the number of accounts ever created in this process.
type accountLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// get returns the mutex for the given identifier, creating it on first use.
func (l *accountLocks) get(identifier string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[identifier]
	if !ok {
		m = &sync.Mutex{}
		l.locks[identifier] = m
	}
	return m
}

// lock acquires the mutex for a single identifier.
func (l *accountLocks) lock(identifier string) {
	l.get(identifier).Lock()
}

// unlock releases the mutex for a single identifier.
func (l *accountLocks) unlock(identifier string) {
	l.get(identifier).Unlock()
}

// lockPair acquires the mutexes for two distinct identifiers in
// lexicographic order. The fixed order means two transfers crossing in
// opposite directions (A to B concurrent with B to A) always contend on the
// same first lock instead of deadlocking.
func (l *accountLocks) lockPair(a, b string) {
	if a > b {
		a, b = b, a
	}
	l.get(a).Lock()
	l.get(b).Lock()
}

// unlockPair releases the mutexes acquired by lockPair.
func (l *accountLocks) unlockPair(a, b string) {
	if a > b {
		a, b = b, a
	}
	l.get(b).Unlock()
	l.get(a).Unlock()
}
