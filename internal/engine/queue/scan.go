package queue

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/claudeye/claudeye/internal/core/domain"
	"github.com/claudeye/claudeye/internal/core/ports"
)

// scanParallelism bounds concurrent project listing during a scan. The
// scan only enqueues; the scheduler bounds actual execution.
const scanParallelism = 4

// TaskBuilder produces the task closure for one registered item. The
// runner implements it.
type TaskBuilder interface {
	ItemTask(kind domain.ItemKind, project, sessionKey, itemName string) func(context.Context) (any, error)
}

// Processor periodically walks the projects root and enqueues
// background work for every registered eval and enrichment whose result
// is not already cached. Actions and filters are never scanned: actions
// carry side effects and filters are cheap interactive queries, so both
// run only on explicit request.
type Processor struct {
	scheduler   *Scheduler
	registry    ports.Registry
	transcripts ports.TranscriptLoader
	cache       ports.ResultCache
	builder     TaskBuilder
	logger      ports.Logger
	interval    time.Duration
	maxSessions int

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewProcessor creates a background scan processor. maxSessions caps
// the transcripts considered per scan; 0 means unlimited.
func NewProcessor(
	scheduler *Scheduler,
	registry ports.Registry,
	transcripts ports.TranscriptLoader,
	cache ports.ResultCache,
	builder TaskBuilder,
	logger ports.Logger,
	interval time.Duration,
	maxSessions int,
) *Processor {
	return &Processor{
		scheduler:   scheduler,
		registry:    registry,
		transcripts: transcripts,
		cache:       cache,
		builder:     builder,
		logger:      logger,
		interval:    interval,
		maxSessions: maxSessions,
	}
}

// Start launches the periodic scan loop. Idempotent.
func (p *Processor) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)
		p.runScan(ctx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.runScan(ctx)
			}
		}
	}()
}

// Stop halts the scan loop and waits for an in-progress scan to end.
// Idempotent.
func (p *Processor) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// runScan wraps Scan with status bookkeeping.
func (p *Processor) runScan(ctx context.Context) {
	p.scheduler.SetScanInfo(time.Time{}, true)
	if err := p.Scan(ctx); err != nil && ctx.Err() == nil {
		p.logger.Error(err)
	}
	p.scheduler.SetScanInfo(time.Now(), false)
}

// Scan walks every project once and enqueues background tasks for the
// uncached items of all discovered transcripts.
func (p *Processor) Scan(ctx context.Context) error {
	projects, err := p.transcripts.ListProjects()
	if err != nil {
		return err
	}

	var budget atomic.Int64
	if p.maxSessions > 0 {
		budget.Store(int64(p.maxSessions))
	} else {
		budget.Store(int64(^uint64(0) >> 1))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(scanParallelism)
	for _, project := range projects {
		g.Go(func() error {
			return p.scanProject(ctx, project, &budget)
		})
	}
	return g.Wait()
}

// scanProject enqueues the sessions of one project until the scan
// budget runs out.
func (p *Processor) scanProject(ctx context.Context, project string, budget *atomic.Int64) error {
	sessions, err := p.transcripts.ListSessions(project)
	if err != nil {
		return err
	}

	for _, sessionID := range sessions {
		if err := ctx.Err(); err != nil {
			return err
		}
		if budget.Add(-1) < 0 {
			return nil
		}
		p.enqueueTranscript(ctx, project, domain.SessionKey(sessionID, ""), domain.ScopeSession,
			p.transcripts.HashSessionFile(project, sessionID))

		agents, err := p.transcripts.ListSubagents(project, sessionID)
		if err != nil {
			p.logger.Error(err)
			continue
		}
		for _, agentID := range agents {
			if budget.Add(-1) < 0 {
				return nil
			}
			p.enqueueTranscript(ctx, project, domain.SessionKey(sessionID, agentID), domain.ScopeSubagent,
				p.transcripts.HashSubagentFile(project, sessionID, agentID))
		}
	}
	return nil
}

// scannedKinds are the item families the background scan covers.
var scannedKinds = []domain.ItemKind{domain.KindEvals, domain.KindEnrichments}

// enqueueTranscript enqueues the uncached applicable items for one
// transcript at background priority. A valid per-item cache entry means
// there is nothing to do for that item until the transcript or its
// function changes.
func (p *Processor) enqueueTranscript(ctx context.Context, project, sessionKey string, scope domain.Scope, contentHash string) {
	for _, kind := range scannedKinds {
		for _, item := range p.registry.Items(kind, scope, "") {
			if p.cache.GetPerItem(ctx, kind, project, sessionKey, item.Name, item.CodeHash, contentHash) != nil {
				continue
			}
			p.scheduler.Enqueue(Request{
				Kind:       kind,
				Project:    project,
				SessionKey: sessionKey,
				ItemName:   item.Name,
				Priority:   domain.PriorityBackground,
				Task:       p.builder.ItemTask(kind, project, sessionKey, item.Name),
			})
		}
	}
}
