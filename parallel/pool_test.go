package parallel

import (
	"sync/atomic"
	"testing"
)

func TestPoolRunsEveryJob(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{0, 1, 4} {
		pool := Start(workers)

		var n atomic.Int64
		for i := 1; i <= 100; i++ {
			pool.Do(func() { n.Add(int64(i)) })
		}
		pool.Wait(true)

		if got := n.Load(); got != 5050 {
			t.Fatalf("workers=%d: sum = %d, want 5050", workers, got)
		}
	}
}
