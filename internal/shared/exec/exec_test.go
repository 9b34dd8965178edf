package exec

import (
	"sync"
	"testing"
)

func TestSerialOrdering(t *testing.T) {
	s := NewSerial()

	const n = 200
	var mu sync.Mutex
	var got []int

	for i := 0; i < n; i++ {
		i := i
		s.Execute(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		})
	}

	s.Stop()

	if len(got) != n {
		t.Fatalf("Expected %d tasks to run, got %d", n, len(got))
	}
	for i := 0; i < n; i++ {
		if got[i] != i {
			t.Fatalf("Tasks ran out of order at %d: got %d", i, got[i])
		}
	}
}

func TestSerialStopDrains(t *testing.T) {
	s := NewSerial()

	var mu sync.Mutex
	count := 0
	for i := 0; i < 50; i++ {
		s.Execute(func() {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}

	s.Stop()

	if count != 50 {
		t.Errorf("Stop should drain pending tasks: ran %d of 50", count)
	}
}

func TestSerialExecuteAfterStop(t *testing.T) {
	s := NewSerial()
	s.Stop()

	ran := false
	s.Execute(func() { ran = true })

	if ran {
		t.Error("Tasks submitted after Stop should be dropped")
	}
	if s.Pending() != 0 {
		t.Errorf("Queue should stay empty after Stop, got %d", s.Pending())
	}
}

func TestSerialStopIdempotent(t *testing.T) {
	s := NewSerial()
	s.Execute(func() {})
	s.Stop()
	s.Stop()
}

func TestSerialConcurrentSubmit(t *testing.T) {
	s := NewSerial()

	const goroutines = 20
	const perGoroutine = 50

	var wg sync.WaitGroup
	var mu sync.Mutex
	count := 0

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				s.Execute(func() {
					mu.Lock()
					count++
					mu.Unlock()
				})
			}
		}()
	}

	wg.Wait()
	s.Stop()

	if count != goroutines*perGoroutine {
		t.Errorf("Expected %d tasks, ran %d", goroutines*perGoroutine, count)
	}
}

func TestDirect(t *testing.T) {
	var d Direct

	ran := false
	d.Execute(func() { ran = true })

	if !ran {
		t.Error("Direct should run the task inline")
	}
}
