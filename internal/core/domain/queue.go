package domain

import "time"

// Queue priorities. Numerically lower runs first.
const (
	// PriorityInteractive is used for requests a user is waiting on.
	PriorityInteractive = 0
	// PriorityRefresh is used for forced refreshes and alert re-checks.
	PriorityRefresh = 5
	// PriorityBackground is used by the background scanner.
	PriorityBackground = 10
)

// QueueKey is the coalescing identity of one unit of work: concurrent
// requests with the same key share a single execution.
func QueueKey(kind ItemKind, project, sessionKey, itemName string) string {
	return string(kind) + ":" + project + "/" + sessionKey + "/" + itemName
}

// PendingEntry describes one queued unit of work waiting for a
// concurrency slot.
type PendingEntry struct {
	Key        string    `json:"key"`
	Kind       ItemKind  `json:"kind"`
	Project    string    `json:"project"`
	SessionKey string    `json:"sessionKey"`
	ItemName   string    `json:"itemName"`
	Priority   int       `json:"priority"`
	AddedAt    time.Time `json:"addedAt"`
}

// ProcessingEntry is the observability snapshot of one running task.
type ProcessingEntry struct {
	Key        string    `json:"key"`
	Kind       ItemKind  `json:"kind"`
	Project    string    `json:"project"`
	SessionKey string    `json:"sessionKey"`
	ItemName   string    `json:"itemName"`
	Priority   int       `json:"priority"`
	StartedAt  time.Time `json:"startedAt"`
}

// CompletedEntry records one settled task in the bounded history.
type CompletedEntry struct {
	Key         string        `json:"key"`
	Kind        ItemKind      `json:"kind"`
	Project     string        `json:"project"`
	SessionKey  string        `json:"sessionKey"`
	ItemName    string        `json:"itemName"`
	Success     bool          `json:"success"`
	Error       string        `json:"error,omitempty"`
	Duration    time.Duration `json:"-"`
	DurationMs  int64         `json:"durationMs"`
	CompletedAt time.Time     `json:"completedAt"`
}

// QueueError is one entry in the scheduler's bounded error log.
type QueueError struct {
	At      time.Time `json:"at"`
	Key     string    `json:"key"`
	Message string    `json:"message"`
}

// QueueStatus is a read-only snapshot of the scheduler for
// observability panels. Building it never mutates scheduler state.
type QueueStatus struct {
	Pending           []PendingEntry    `json:"pending"`
	Processing        []ProcessingEntry `json:"processing"`
	Completed         []CompletedEntry  `json:"completed"`
	RecentErrors      []QueueError      `json:"recentErrors"`
	ScannedAt         time.Time         `json:"scannedAt"`
	BackgroundRunning bool              `json:"backgroundRunning"`
}
