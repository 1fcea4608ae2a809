package ledger

import "sync"

// lockTable serializes mutations per (user, chat) key. Distinct keys get
// distinct mutexes and never contend with each other.
type lockTable struct {
	mu    sync.Mutex
	locks map[lockKey]*sync.Mutex
}

type lockKey struct {
	userID int64
	chatID int64
}

func newLockTable() *lockTable {
	return &lockTable{
		locks: make(map[lockKey]*sync.Mutex),
	}
}

// acquire locks the mutex for the key, creating it on first use, and
// returns the matching unlock func. Key mutexes are kept for the process
// lifetime; the set of active (user, chat) pairs is small and bounded by
// real chat membership.
func (t *lockTable) acquire(userID, chatID int64) func() {
	key := lockKey{userID: userID, chatID: chatID}

	t.mu.Lock()
	l, ok := t.locks[key]
	if !ok {
		l = &sync.Mutex{}
		t.locks[key] = l
	}
	t.mu.Unlock()

	l.Lock()
	return l.Unlock
}
