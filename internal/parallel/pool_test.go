package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// Pool Creation Tests
// =============================================================================

func TestPool_Create(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewPool(%d).Workers() = %d, want %d (GOMAXPROCS)", n, got, want)
		}
		pool.Close()
	}
}

// =============================================================================
// Run Tests
// =============================================================================

func TestPool_Run(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var mu sync.Mutex
	seen := make(map[int]bool)

	tasks := make([]func(), 50)
	for i := range tasks {
		tasks[i] = func() {
			mu.Lock()
			seen[i] = true
			mu.Unlock()
		}
	}
	pool.Run(tasks)

	for i := range tasks {
		if !seen[i] {
			t.Errorf("task %d did not run", i)
		}
	}
}

func TestPool_RunEmpty(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	pool.Run(nil)
	pool.Run([]func(){})
}

func TestPool_RunUneven(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	// Mimics a triangular enumeration: early rows are much heavier.
	var total atomic.Int64
	tasks := make([]func(), 40)
	for i := range tasks {
		tasks[i] = func() {
			if i < 4 {
				time.Sleep(5 * time.Millisecond)
			}
			total.Add(int64(i))
		}
	}
	pool.Run(tasks)

	if got, want := total.Load(), int64(40*39/2); got != want {
		t.Errorf("sum = %d, want %d", got, want)
	}
}

func TestPool_Concurrent(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var counter atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tasks := make([]func(), 25)
			for i := range tasks {
				tasks[i] = func() { counter.Add(1) }
			}
			pool.Run(tasks)
		}()
	}
	wg.Wait()

	if counter.Load() != 200 {
		t.Errorf("counter = %d, want 200", counter.Load())
	}
}

// =============================================================================
// Close Tests
// =============================================================================

func TestPool_CloseIdempotent(t *testing.T) {
	pool := NewPool(4)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after close")
	}
}

func TestPool_RunAfterClose(t *testing.T) {
	pool := NewPool(4)
	pool.Close()

	var executed atomic.Bool
	pool.Run([]func(){func() { executed.Store(true) }})

	if executed.Load() {
		t.Error("task executed on closed pool")
	}
}

func TestPool_RunRacingClose(t *testing.T) {
	for range 20 {
		pool := NewPool(4)

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 10 {
					tasks := make([]func(), 16)
					for i := range tasks {
						tasks[i] = func() {}
					}
					pool.Run(tasks)
				}
			}()
		}
		pool.Close()

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("Run did not return after a concurrent Close")
		}
	}
}

func TestPool_NoGoroutineLeak(t *testing.T) {
	runtime.GC()
	time.Sleep(50 * time.Millisecond)
	baseline := runtime.NumGoroutine()

	for range 5 {
		pool := NewPool(4)
		tasks := make([]func(), 100)
		for j := range tasks {
			tasks[j] = func() {}
		}
		pool.Run(tasks)
		pool.Close()
	}

	runtime.GC()
	time.Sleep(100 * time.Millisecond)

	if final := runtime.NumGoroutine(); final > baseline+2 {
		t.Errorf("goroutine count: baseline=%d, final=%d (leak detected)", baseline, final)
	}
}
