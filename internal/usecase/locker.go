package usecase

import "sync"

// gameLocker serializes actions per game: one mutex per game ID, so the
// load-validate-mutate-commit span of an action never interleaves with
// another action on the same game. Distinct games proceed in parallel.
type gameLocker struct {
	mu    sync.Mutex
	games map[string]*sync.Mutex
}

func newGameLocker() *gameLocker {
	return &gameLocker{
		games: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the lock for gameID and returns the release func. Release
// must run on every exit path, including error paths.
func (that *gameLocker) Lock(gameID string) func() {
	that.mu.Lock()
	lock, ok := that.games[gameID]
	if !ok {
		lock = &sync.Mutex{}
		that.games[gameID] = lock
	}
	that.mu.Unlock()

	lock.Lock()

	return lock.Unlock
}
