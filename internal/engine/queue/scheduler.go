// Package queue implements the process-wide work queue: a
// priority-ordered, concurrency-bounded scheduler whose units of work
// coalesce on their queue key.
package queue

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/claudeye/claudeye/internal/core/domain"
	"github.com/claudeye/claudeye/internal/core/ports"
	"github.com/claudeye/claudeye/internal/metrics"
)

const (
	maxCompleted  = 100
	maxErrors     = 50
	alertDebounce = 2 * time.Second
)

// Task is one unit of queued work.
type Task func(ctx context.Context) (any, error)

// Request describes one enqueue call.
type Request struct {
	Kind       domain.ItemKind
	Project    string
	SessionKey string
	ItemName   string
	Priority   int
	// Force chains a fresh execution behind any in-flight one for the
	// same key instead of coalescing with it.
	Force bool
	Task  Task
}

// Future is the settled-once handle returned by Enqueue. Concurrent
// requests coalescing on one key share a Future.
type Future struct {
	done  chan struct{}
	value any
	err   error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func settledFuture(err error) *Future {
	f := newFuture()
	f.err = err
	close(f.done)
	return f
}

// Wait blocks until the task settles or ctx is cancelled.
func (f *Future) Wait(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Done exposes the settle channel for select-based callers.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// execution is one scheduled run of a key. Forced refreshes chain as
// next pointers; only the head is ever pending or running.
type execution struct {
	req      Request
	fut      *Future
	next     *execution
	priority int
	addedAt  time.Time
	running  bool
	started  time.Time
}

// Scheduler is the process-wide work queue. All state is guarded by a
// single mutex; tasks run on their own goroutines and report back under
// the lock.
type Scheduler struct {
	concurrency int
	historyTTL  time.Duration
	logger      ports.Logger
	tracer      ports.Tracer

	ctx    context.Context
	cancel context.CancelFunc

	mu                sync.Mutex
	pending           []*execution
	inflight          map[string]*execution
	completed         []domain.CompletedEntry
	errors            []domain.QueueError
	active            int
	stopped           bool
	idleWaiters       []chan struct{}
	scannedAt         time.Time
	backgroundRunning bool

	alertFn     func(project, sessionKey string)
	alertDelay  time.Duration
	alertTimers map[string]*time.Timer

	now func() time.Time
}

// NewScheduler creates a scheduler running at most concurrency tasks at
// once. historyTTL bounds how long completed entries are retained.
func NewScheduler(concurrency int, historyTTL time.Duration, logger ports.Logger, tracer ports.Tracer) *Scheduler {
	if concurrency < 1 {
		concurrency = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		concurrency: concurrency,
		historyTTL:  historyTTL,
		logger:      logger,
		tracer:      tracer,
		ctx:         ctx,
		cancel:      cancel,
		inflight:    make(map[string]*execution),
		alertDelay:  alertDebounce,
		alertTimers: make(map[string]*time.Timer),
		now:         time.Now,
	}
}

// SetAlertFunc installs the debounced per-session settle callback.
// Must be called before the first Enqueue.
func (s *Scheduler) SetAlertFunc(fn func(project, sessionKey string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alertFn = fn
}

// Enqueue submits one unit of work and returns its Future. A request
// whose key is already in flight coalesces: it shares the existing
// Future, upgrading the pending priority when the new request is more
// urgent. A Force request instead chains a fresh execution behind the
// current one.
func (s *Scheduler) Enqueue(req Request) *Future {
	key := domain.QueueKey(req.Kind, req.Project, req.SessionKey, req.ItemName)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return settledFuture(domain.ErrSchedulerStopped)
	}

	if cur, ok := s.inflight[key]; ok {
		tail := cur
		for tail.next != nil {
			tail = tail.next
		}
		if req.Force {
			chained := &execution{req: req, fut: newFuture(), priority: req.Priority, addedAt: s.now()}
			tail.next = chained
			return chained.fut
		}
		if !cur.running && req.Priority < cur.priority {
			cur.priority = req.Priority
			s.resortPending()
		}
		return tail.fut
	}

	exec := &execution{req: req, fut: newFuture(), priority: req.Priority, addedAt: s.now()}
	s.inflight[key] = exec
	s.insertPending(exec)
	s.dispatch()
	return exec.fut
}

// Status returns a read-only snapshot of the queue.
func (s *Scheduler) Status() domain.QueueStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := domain.QueueStatus{
		Pending:           make([]domain.PendingEntry, 0, len(s.pending)),
		Processing:        []domain.ProcessingEntry{},
		Completed:         append([]domain.CompletedEntry(nil), s.completed...),
		RecentErrors:      append([]domain.QueueError(nil), s.errors...),
		ScannedAt:         s.scannedAt,
		BackgroundRunning: s.backgroundRunning,
	}
	for _, exec := range s.pending {
		status.Pending = append(status.Pending, domain.PendingEntry{
			Key:        s.keyOf(exec),
			Kind:       exec.req.Kind,
			Project:    exec.req.Project,
			SessionKey: exec.req.SessionKey,
			ItemName:   exec.req.ItemName,
			Priority:   exec.priority,
			AddedAt:    exec.addedAt,
		})
	}
	for _, exec := range s.inflight {
		if !exec.running {
			continue
		}
		status.Processing = append(status.Processing, domain.ProcessingEntry{
			Key:        s.keyOf(exec),
			Kind:       exec.req.Kind,
			Project:    exec.req.Project,
			SessionKey: exec.req.SessionKey,
			ItemName:   exec.req.ItemName,
			Priority:   exec.priority,
			StartedAt:  exec.started,
		})
	}
	sort.Slice(status.Processing, func(i, j int) bool {
		return status.Processing[i].StartedAt.Before(status.Processing[j].StartedAt)
	})
	return status
}

// SetScanInfo records the background scanner's state for status
// snapshots.
func (s *Scheduler) SetScanInfo(scannedAt time.Time, running bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !scannedAt.IsZero() {
		s.scannedAt = scannedAt
	}
	s.backgroundRunning = running
}

// Drain blocks until the queue is idle (nothing pending or running) or
// ctx is cancelled.
func (s *Scheduler) Drain(ctx context.Context) error {
	s.mu.Lock()
	if s.idle() {
		s.mu.Unlock()
		return nil
	}
	ch := make(chan struct{})
	s.idleWaiters = append(s.idleWaiters, ch)
	s.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop rejects new work, fails all queued (not yet running) work, and
// cancels the context of running tasks. Idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true

	for _, exec := range s.pending {
		delete(s.inflight, s.keyOf(exec))
		for e := exec; e != nil; e = e.next {
			e.fut.err = domain.ErrSchedulerStopped
			close(e.fut.done)
		}
	}
	s.pending = nil
	metrics.QueuePending.Set(0)

	for _, timer := range s.alertTimers {
		timer.Stop()
	}
	s.alertTimers = make(map[string]*time.Timer)
	s.notifyIfIdle()
	s.mu.Unlock()

	s.cancel()
}

// keyOf rebuilds the queue key of an execution.
func (s *Scheduler) keyOf(exec *execution) string {
	return domain.QueueKey(exec.req.Kind, exec.req.Project, exec.req.SessionKey, exec.req.ItemName)
}

// insertPending inserts exec keeping pending sorted by (priority,
// addedAt). Lock must be held.
func (s *Scheduler) insertPending(exec *execution) {
	i := sort.Search(len(s.pending), func(i int) bool {
		p := s.pending[i]
		if p.priority != exec.priority {
			return p.priority > exec.priority
		}
		return p.addedAt.After(exec.addedAt)
	})
	s.pending = append(s.pending, nil)
	copy(s.pending[i+1:], s.pending[i:])
	s.pending[i] = exec
	metrics.QueuePending.Set(float64(len(s.pending)))
}

// resortPending restores pending order after a priority upgrade.
// Stable, so equal priorities keep their arrival order. Lock must be
// held.
func (s *Scheduler) resortPending() {
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].priority != s.pending[j].priority {
			return s.pending[i].priority < s.pending[j].priority
		}
		return s.pending[i].addedAt.Before(s.pending[j].addedAt)
	})
}

// dispatch starts pending executions while slots are free. Lock must be
// held.
func (s *Scheduler) dispatch() {
	for len(s.pending) > 0 && s.active < s.concurrency {
		exec := s.pending[0]
		s.pending = s.pending[1:]
		exec.running = true
		exec.started = s.now()
		s.active++
		metrics.QueuePending.Set(float64(len(s.pending)))
		metrics.QueueProcessing.Set(float64(s.active))
		go s.run(exec)
	}
}

// run executes one task and settles its future.
func (s *Scheduler) run(exec *execution) {
	key := s.keyOf(exec)
	ctx, span := s.tracer.Start(s.ctx, "queue.task")
	span.SetAttribute("key", key)

	start := s.now()
	value, err := exec.req.Task(ctx)
	duration := s.now().Sub(start)

	metrics.TaskDuration.WithLabelValues(string(exec.req.Kind)).Observe(duration.Seconds())
	if err != nil {
		metrics.TaskErrors.WithLabelValues(string(exec.req.Kind)).Inc()
		span.RecordError(err)
		s.logger.Error(err)
	}
	span.End()

	s.mu.Lock()
	s.active--
	metrics.QueueProcessing.Set(float64(s.active))

	s.recordCompleted(exec, err, duration)
	if err != nil {
		s.recordError(key, err)
	}

	switch {
	case exec.next != nil && s.stopped:
		delete(s.inflight, key)
		for e := exec.next; e != nil; e = e.next {
			e.fut.err = domain.ErrSchedulerStopped
			close(e.fut.done)
		}
	case exec.next != nil:
		s.inflight[key] = exec.next
		s.insertPending(exec.next)
	default:
		delete(s.inflight, key)
	}

	exec.fut.value = value
	exec.fut.err = err
	close(exec.fut.done)

	if err == nil {
		s.scheduleAlert(exec.req.Project, exec.req.SessionKey)
	}
	s.dispatch()
	s.notifyIfIdle()
	s.mu.Unlock()
}

// recordCompleted appends to the bounded completed history. Lock must
// be held.
func (s *Scheduler) recordCompleted(exec *execution, err error, duration time.Duration) {
	entry := domain.CompletedEntry{
		Key:         s.keyOf(exec),
		Kind:        exec.req.Kind,
		Project:     exec.req.Project,
		SessionKey:  exec.req.SessionKey,
		ItemName:    exec.req.ItemName,
		Success:     err == nil,
		Duration:    duration,
		DurationMs:  duration.Milliseconds(),
		CompletedAt: s.now(),
	}
	if err != nil {
		entry.Error = err.Error()
	}
	s.completed = append(s.completed, entry)

	cutoff := s.now().Add(-s.historyTTL)
	first := 0
	for first < len(s.completed) && s.completed[first].CompletedAt.Before(cutoff) {
		first++
	}
	if over := len(s.completed) - first - maxCompleted; over > 0 {
		first += over
	}
	s.completed = s.completed[first:]
}

// recordError appends to the bounded error log. Lock must be held.
func (s *Scheduler) recordError(key string, err error) {
	s.errors = append(s.errors, domain.QueueError{
		At:      s.now(),
		Key:     key,
		Message: err.Error(),
	})
	if over := len(s.errors) - maxErrors; over > 0 {
		s.errors = s.errors[over:]
	}
}

// scheduleAlert (re)arms the debounced callback for one session after a
// successful settle, so a burst of task completions produces a single
// alert. Lock must be held.
func (s *Scheduler) scheduleAlert(project, sessionKey string) {
	if s.alertFn == nil || s.stopped {
		return
	}
	id := project + "/" + sessionKey
	if timer, ok := s.alertTimers[id]; ok {
		timer.Stop()
	}
	s.alertTimers[id] = time.AfterFunc(s.alertDelay, func() {
		s.mu.Lock()
		delete(s.alertTimers, id)
		fn := s.alertFn
		stopped := s.stopped
		s.mu.Unlock()
		if fn != nil && !stopped {
			fn(project, sessionKey)
		}
	})
}

// idle reports whether nothing is pending or running. Lock must be held.
func (s *Scheduler) idle() bool {
	return s.active == 0 && len(s.pending) == 0
}

// notifyIfIdle releases Drain waiters once idle. Lock must be held.
func (s *Scheduler) notifyIfIdle() {
	if !s.idle() {
		return
	}
	for _, ch := range s.idleWaiters {
		close(ch)
	}
	s.idleWaiters = nil
}
