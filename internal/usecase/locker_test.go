package usecase

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameLocker(t *testing.T) {
	t.Run("Serializes critical sections per game", func(t *testing.T) {
		locker := newGameLocker()

		const workers = 50
		var counter int

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				unlock := locker.Lock("game-1")
				defer unlock()

				counter++
			}()
		}
		wg.Wait()

		assert.Equal(t, workers, counter)
	})

	t.Run("Distinct games do not block each other", func(t *testing.T) {
		locker := newGameLocker()

		unlock1 := locker.Lock("game-1")
		defer unlock1()

		// acquiring another game's lock must not deadlock here
		unlock2 := locker.Lock("game-2")
		unlock2()
	})
}
