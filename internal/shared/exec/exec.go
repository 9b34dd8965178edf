package exec

import "sync"

// Executor runs tasks submitted from other goroutines. Discovery and target
// listeners supply one at registration; all their callbacks are dispatched
// through it, never on the goroutine holding domain locks.
type Executor interface {
	Execute(task func())
}

// Direct runs tasks inline on the calling goroutine. Only safe where the
// caller tolerates reentrancy (tests, fire-and-forget recorders).
type Direct struct{}

// Execute runs the task immediately
func (Direct) Execute(task func()) {
	task()
}

// Serial runs tasks one at a time, in submission order, on a single worker
// goroutine. Execute never blocks; the queue grows as needed, so enqueueing
// under a lock is safe.
type Serial struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []func()
	stopped bool
	done    chan struct{}
}

// NewSerial creates a serial executor and starts its worker
func NewSerial() *Serial {
	s := &Serial{done: make(chan struct{})}
	s.cond = sync.NewCond(&s.mu)
	go s.run()
	return s
}

// Execute enqueues a task. Tasks submitted after Stop are dropped.
func (s *Serial) Execute(task func()) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.queue = append(s.queue, task)
	s.mu.Unlock()
	s.cond.Signal()
}

// Stop drains the pending queue, stops the worker, and waits for it to exit.
// Safe to call more than once.
func (s *Serial) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		<-s.done
		return
	}
	s.stopped = true
	s.mu.Unlock()
	s.cond.Signal()
	<-s.done
}

// Pending reports the number of queued tasks
func (s *Serial) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

func (s *Serial) run() {
	defer close(s.done)
	for {
		s.mu.Lock()
		for len(s.queue) == 0 && !s.stopped {
			s.cond.Wait()
		}
		if len(s.queue) == 0 {
			s.mu.Unlock()
			return
		}
		task := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		task()
	}
}
