package debounce_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/debounce"
)

func TestDebounce(t *testing.T) {
	t.Run("a burst of calls collapses into one invocation", func(t *testing.T) {
		var calls atomic.Int32
		debounced := debounce.New(func() { calls.Add(1) }, 30*time.Millisecond)

		for i := 0; i < 10; i++ {
			debounced()
		}

		assert.Eventually(t, func() bool {
			return calls.Load() == 1
		}, time.Second, 5*time.Millisecond)

		// Nothing else fires afterwards.
		time.Sleep(100 * time.Millisecond)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("trailing edge only, no leading call", func(t *testing.T) {
		var calls atomic.Int32
		debounced := debounce.New(func() { calls.Add(1) }, 50*time.Millisecond)

		debounced()
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("each call postpones the pending invocation", func(t *testing.T) {
		var calls atomic.Int32
		debounced := debounce.New(func() { calls.Add(1) }, 150*time.Millisecond)

		debounced()
		time.Sleep(50 * time.Millisecond)
		debounced() // reset the clock before the first timer fires

		// Past the original deadline but before the rescheduled one.
		time.Sleep(120 * time.Millisecond)
		assert.Equal(t, int32(0), calls.Load())

		assert.Eventually(t, func() bool {
			return calls.Load() == 1
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("separate wrappers do not interfere", func(t *testing.T) {
		var first, second atomic.Int32
		a := debounce.New(func() { first.Add(1) }, 20*time.Millisecond)
		b := debounce.New(func() { second.Add(1) }, 20*time.Millisecond)

		a()
		b()

		assert.Eventually(t, func() bool {
			return first.Load() == 1 && second.Load() == 1
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("safe under concurrent callers", func(t *testing.T) {
		var calls atomic.Int32
		debounced := debounce.New(func() { calls.Add(1) }, 30*time.Millisecond)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				debounced()
			}()
		}
		wg.Wait()

		assert.Eventually(t, func() bool {
			return calls.Load() == 1
		}, time.Second, 5*time.Millisecond)
	})
}
