// Package runner executes registered items against transcripts,
// consulting the result cache on both the whole-result and per-item
// paths.
package runner

import (
	"context"
	"encoding/json"

	"go.trai.ch/zerr"

	"github.com/claudeye/claudeye/internal/core/domain"
	"github.com/claudeye/claudeye/internal/core/ports"
	"github.com/claudeye/claudeye/internal/engine/harness"
)

// Runner binds the registry, the transcript loader and the result
// cache into the two execution paths: whole-session batches and
// single-item tasks.
type Runner struct {
	registry    ports.Registry
	transcripts ports.TranscriptLoader
	cache       ports.ResultCache
	logger      ports.Logger
	tracer      ports.Tracer
}

// New creates a Runner.
func New(registry ports.Registry, transcripts ports.TranscriptLoader, cache ports.ResultCache, logger ports.Logger, tracer ports.Tracer) *Runner {
	return &Runner{
		registry:    registry,
		transcripts: transcripts,
		cache:       cache,
		logger:      logger,
		tracer:      tracer,
	}
}

// RunSession executes every registered item of one kind that applies to
// the transcript, returning the kind-specific summary. A valid cached
// whole-result short-circuits execution entirely.
func (r *Runner) RunSession(ctx context.Context, kind domain.ItemKind, project, sessionKey string) (any, error) {
	ctx, span := r.tracer.Start(ctx, "runner.RunSession")
	defer span.End()
	span.SetAttribute("kind", string(kind))
	span.SetAttribute("session", project+"/"+sessionKey)

	if !kind.Valid() {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownKind, "cannot run batch"), "kind", string(kind))
	}

	names := r.registry.Names(kind)
	if cached := r.cache.GetWholeResult(ctx, kind, project, sessionKey, names, ""); cached != nil {
		if summary, err := decodeSummary(kind, cached.Value); err == nil {
			return summary, nil
		}
		// Undecodable entries fall through to recompute.
		r.logger.Warn("discarding undecodable cache entry for " + domain.WholeResultKey(kind, project, sessionKey))
	}

	log, err := r.loadTranscript(ctx, project, sessionKey)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	scope := log.Scope()
	items := r.registry.Items(kind, scope, log.SubagentType)
	outcomes := harness.Run(ctx, log.Context(), r.registry.GlobalCondition(scope), items)
	summary := summarize(kind, outcomes)

	r.cache.SetWholeResult(ctx, kind, project, sessionKey, summary, names, "")
	return summary, nil
}

// RunItem executes a single registered item against the transcript,
// returning its kind-specific result. Item failures are embedded in the
// result; the error return is reserved for infrastructure failures.
func (r *Runner) RunItem(ctx context.Context, kind domain.ItemKind, project, sessionKey, itemName string) (any, error) {
	ctx, span := r.tracer.Start(ctx, "runner.RunItem")
	defer span.End()
	span.SetAttribute("kind", string(kind))
	span.SetAttribute("item", itemName)

	item, ok := r.registry.Item(kind, itemName)
	if !ok {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrItemNotFound, "cannot run item"), "kind", string(kind)), "item", itemName)
	}

	contentHash := r.contentHash(project, sessionKey)
	if cached := r.cache.GetPerItem(ctx, kind, project, sessionKey, itemName, item.CodeHash, contentHash); cached != nil {
		if result, err := decodeResult(kind, cached.Value); err == nil {
			return result, nil
		}
		r.logger.Warn("discarding undecodable cache entry for " + domain.PerItemKey(kind, project, sessionKey, itemName, item.CodeHash))
	}

	log, err := r.loadTranscript(ctx, project, sessionKey)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	result := resultFor(kind, harness.RunOne(ctx, log.Context(), item))
	r.cache.SetPerItem(ctx, kind, project, sessionKey, itemName, item.CodeHash, contentHash, result)
	return result, nil
}

// ItemTask returns a closure executing one item, shaped for queue
// submission.
func (r *Runner) ItemTask(kind domain.ItemKind, project, sessionKey, itemName string) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		return r.RunItem(ctx, kind, project, sessionKey, itemName)
	}
}

// SessionTask returns a closure executing a whole-session batch, shaped
// for queue submission.
func (r *Runner) SessionTask(kind domain.ItemKind, project, sessionKey string) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		return r.RunSession(ctx, kind, project, sessionKey)
	}
}

// loadTranscript resolves a composite session key into a parsed log.
func (r *Runner) loadTranscript(ctx context.Context, project, sessionKey string) (*domain.SessionLog, error) {
	sessionID, agentID := domain.ParseSessionKey(sessionKey)
	if agentID != "" {
		return r.transcripts.LoadSubagent(ctx, project, sessionID, agentID)
	}
	return r.transcripts.LoadSession(ctx, project, sessionID)
}

// contentHash resolves the transcript content hash for a composite
// session key.
func (r *Runner) contentHash(project, sessionKey string) string {
	sessionID, agentID := domain.ParseSessionKey(sessionKey)
	if agentID != "" {
		return r.transcripts.HashSubagentFile(project, sessionID, agentID)
	}
	return r.transcripts.HashSessionFile(project, sessionID)
}

// decodeSummary unmarshals a cached whole-result value into the
// summary type of its kind.
func decodeSummary(kind domain.ItemKind, raw json.RawMessage) (any, error) {
	switch kind {
	case domain.KindEvals:
		var s domain.EvalSummary
		return &s, json.Unmarshal(raw, &s)
	case domain.KindEnrichments:
		var s domain.EnrichmentSummary
		return &s, json.Unmarshal(raw, &s)
	case domain.KindActions:
		var s domain.ActionSummary
		return &s, json.Unmarshal(raw, &s)
	default:
		var s domain.FilterSummary
		return &s, json.Unmarshal(raw, &s)
	}
}

// decodeResult unmarshals a cached per-item value into the result type
// of its kind.
func decodeResult(kind domain.ItemKind, raw json.RawMessage) (any, error) {
	switch kind {
	case domain.KindEvals:
		var r domain.EvalResult
		return &r, json.Unmarshal(raw, &r)
	case domain.KindEnrichments:
		var r domain.EnrichmentResult
		return &r, json.Unmarshal(raw, &r)
	case domain.KindActions:
		var r domain.ActionResult
		return &r, json.Unmarshal(raw, &r)
	default:
		var r domain.FilterResult
		return &r, json.Unmarshal(raw, &r)
	}
}
