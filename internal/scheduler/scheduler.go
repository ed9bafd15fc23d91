package scheduler

import (
	"context"
	"sync"
	"time"
)

// Task is a function scheduled to run once after a delay
type Task struct {
	scope  string
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// Cancel stops the task if it has not started. A started task sees its
// context cancelled.
func (t *Task) Cancel() {
	t.cancel()
}

// Done is closed once the task has run or was cancelled
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Context is the context handed to the task function
func (t *Task) Context() context.Context {
	return t.ctx
}

// Scheduler runs delayed tasks grouped by scope. Cancelling a scope cancels
// every pending task in it.
type Scheduler struct {
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	tasks  map[string]map[*Task]struct{}
	wg     sync.WaitGroup
}

func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
		tasks:  make(map[string]map[*Task]struct{}),
	}
}

// Schedule runs fn after delay unless the task, its scope or the scheduler
// is cancelled first
func (s *Scheduler) Schedule(scope string, delay time.Duration, fn func(ctx context.Context)) *Task {
	ctx, cancel := context.WithCancel(s.ctx)
	task := &Task{scope: scope, ctx: ctx, cancel: cancel, done: make(chan struct{})}

	s.mu.Lock()
	if s.tasks[scope] == nil {
		s.tasks[scope] = make(map[*Task]struct{})
	}
	s.tasks[scope][task] = struct{}{}
	s.wg.Add(1)
	s.mu.Unlock()

	go s.run(task, delay, fn)
	return task
}

func (s *Scheduler) run(task *Task, delay time.Duration, fn func(ctx context.Context)) {
	defer s.wg.Done()
	defer close(task.done)
	defer s.forget(task)
	defer task.cancel()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		fn(task.ctx)
	case <-task.ctx.Done():
	}
}

func (s *Scheduler) forget(task *Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tasks[task.scope], task)
	if len(s.tasks[task.scope]) == 0 {
		delete(s.tasks, task.scope)
	}
}

// CancelScope cancels every pending task of scope
func (s *Scheduler) CancelScope(scope string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for task := range s.tasks[scope] {
		task.cancel()
	}
}

// CancelAll cancels every pending task but keeps the scheduler usable
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tasks := range s.tasks {
		for task := range tasks {
			task.cancel()
		}
	}
}

// Pending reports how many tasks of scope have not finished
func (s *Scheduler) Pending(scope string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tasks[scope])
}

// Close cancels everything and waits for running tasks to return
func (s *Scheduler) Close() error {
	s.cancel()
	s.wg.Wait()
	return nil
}
