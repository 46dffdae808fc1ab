package runner_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/claudeye/claudeye/internal/adapters/logger"
	"github.com/claudeye/claudeye/internal/adapters/telemetry"
	"github.com/claudeye/claudeye/internal/core/domain"
	"github.com/claudeye/claudeye/internal/core/ports/mocks"
	"github.com/claudeye/claudeye/internal/engine/runner"
)

type runnerTestMocks struct {
	registry    *mocks.MockRegistry
	transcripts *mocks.MockTranscriptLoader
	cache       *mocks.MockResultCache
}

func setupRunner(t *testing.T) (*runner.Runner, runnerTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := runnerTestMocks{
		registry:    mocks.NewMockRegistry(ctrl),
		transcripts: mocks.NewMockTranscriptLoader(ctrl),
		cache:       mocks.NewMockResultCache(ctrl),
	}
	log := logger.New()
	log.SetOutput(io.Discard)
	return runner.New(m.registry, m.transcripts, m.cache, log, telemetry.NewNoopTracer()), m
}

func sessionLog() *domain.SessionLog {
	return &domain.SessionLog{
		ProjectName: "proj",
		SessionID:   "sid",
		Entries:     []map[string]any{{"type": "user"}},
	}
}

func evalItem(name string, fn domain.ItemFunc) domain.RegisteredItem {
	return domain.RegisteredItem{
		Name:     name,
		Kind:     domain.KindEvals,
		Scope:    domain.ScopeSession,
		CodeHash: "code-" + name,
		Fn:       fn,
	}
}

func cachedEntry(t *testing.T, value any) *domain.CacheEntry {
	t.Helper()
	raw, err := json.Marshal(value)
	require.NoError(t, err)
	return &domain.CacheEntry{Value: raw}
}

func TestRunSession_SummarizesVerdicts(t *testing.T) {
	r, m := setupRunner(t)
	ctx := context.Background()

	items := []domain.RegisteredItem{
		evalItem("EvalBoolPass", func(context.Context, map[string]any) (any, error) {
			return true, nil
		}),
		evalItem("EvalBoolFail", func(context.Context, map[string]any) (any, error) {
			return false, nil
		}),
		evalItem("EvalMapVerdict", func(context.Context, map[string]any) (any, error) {
			return map[string]any{"pass": false, "reason": "too short"}, nil
		}),
		evalItem("EvalDetailOnly", func(context.Context, map[string]any) (any, error) {
			return "some detail", nil
		}),
		evalItem("EvalErrors", func(context.Context, map[string]any) (any, error) {
			return nil, errors.New("boom")
		}),
	}

	names := []string{"EvalBoolFail", "EvalBoolPass", "EvalDetailOnly", "EvalErrors", "EvalMapVerdict"}
	m.registry.EXPECT().Names(domain.KindEvals).Return(names)
	m.cache.EXPECT().GetWholeResult(ctx, domain.KindEvals, "proj", "sid", names, "").Return(nil)
	m.transcripts.EXPECT().LoadSession(ctx, "proj", "sid").Return(sessionLog(), nil)
	m.registry.EXPECT().Items(domain.KindEvals, domain.ScopeSession, "").Return(items)
	m.registry.EXPECT().GlobalCondition(domain.ScopeSession).Return(nil)
	m.cache.EXPECT().SetWholeResult(ctx, domain.KindEvals, "proj", "sid", gomock.Any(), names, "")

	got, err := r.RunSession(ctx, domain.KindEvals, "proj", "sid")
	require.NoError(t, err)

	summary, ok := got.(*domain.EvalSummary)
	require.True(t, ok)
	assert.Equal(t, 2, summary.Passed, "bare true and detail-only both pass")
	assert.Equal(t, 2, summary.Failed, "bare false and a failing pass verdict")
	assert.Equal(t, 1, summary.Errors)
	assert.Zero(t, summary.Skipped)
	require.Len(t, summary.Results, 5)
}

func TestRunSession_CacheHitShortCircuits(t *testing.T) {
	r, m := setupRunner(t)
	ctx := context.Background()

	cached := cachedEntry(t, &domain.EvalSummary{Passed: 3})
	m.registry.EXPECT().Names(domain.KindEvals).Return([]string{"EvalA"})
	m.cache.EXPECT().GetWholeResult(ctx, domain.KindEvals, "proj", "sid", []string{"EvalA"}, "").Return(cached)

	// No transcript load, no execution, no write-back.
	got, err := r.RunSession(ctx, domain.KindEvals, "proj", "sid")
	require.NoError(t, err)

	summary, ok := got.(*domain.EvalSummary)
	require.True(t, ok)
	assert.Equal(t, 3, summary.Passed)
}

func TestRunSession_UndecodableCacheEntryRecomputes(t *testing.T) {
	r, m := setupRunner(t)
	ctx := context.Background()

	m.registry.EXPECT().Names(domain.KindEvals).Return(nil)
	m.cache.EXPECT().GetWholeResult(ctx, domain.KindEvals, "proj", "sid", nil, "").
		Return(&domain.CacheEntry{Value: json.RawMessage(`[not a summary`)})
	m.transcripts.EXPECT().LoadSession(ctx, "proj", "sid").Return(sessionLog(), nil)
	m.registry.EXPECT().Items(domain.KindEvals, domain.ScopeSession, "").Return(nil)
	m.registry.EXPECT().GlobalCondition(domain.ScopeSession).Return(nil)
	m.cache.EXPECT().SetWholeResult(ctx, domain.KindEvals, "proj", "sid", gomock.Any(), nil, "")

	_, err := r.RunSession(ctx, domain.KindEvals, "proj", "sid")
	require.NoError(t, err)
}

func TestRunSession_SubagentKeyLoadsSubagent(t *testing.T) {
	r, m := setupRunner(t)
	ctx := context.Background()
	key := domain.SessionKey("sid", "a1")

	log := &domain.SessionLog{
		ProjectName:  "proj",
		SessionID:    "sid",
		AgentID:      "a1",
		SubagentType: "researcher",
	}

	m.registry.EXPECT().Names(domain.KindFilters).Return(nil)
	m.cache.EXPECT().GetWholeResult(ctx, domain.KindFilters, "proj", key, nil, "").Return(nil)
	m.transcripts.EXPECT().LoadSubagent(ctx, "proj", "sid", "a1").Return(log, nil)
	m.registry.EXPECT().Items(domain.KindFilters, domain.ScopeSubagent, "researcher").Return(nil)
	m.registry.EXPECT().GlobalCondition(domain.ScopeSubagent).Return(nil)
	m.cache.EXPECT().SetWholeResult(ctx, domain.KindFilters, "proj", key, gomock.Any(), nil, "")

	_, err := r.RunSession(ctx, domain.KindFilters, "proj", key)
	require.NoError(t, err)
}

func TestRunSession_UnknownKind(t *testing.T) {
	r, _ := setupRunner(t)

	_, err := r.RunSession(context.Background(), domain.ItemKind("bogus"), "proj", "sid")
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestRunSession_TranscriptErrorPropagates(t *testing.T) {
	r, m := setupRunner(t)
	ctx := context.Background()

	m.registry.EXPECT().Names(domain.KindEvals).Return(nil)
	m.cache.EXPECT().GetWholeResult(ctx, domain.KindEvals, "proj", "sid", nil, "").Return(nil)
	m.transcripts.EXPECT().LoadSession(ctx, "proj", "sid").Return(nil, domain.ErrSessionNotFound)

	_, err := r.RunSession(ctx, domain.KindEvals, "proj", "sid")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRunItem_ExecutesAndCaches(t *testing.T) {
	r, m := setupRunner(t)
	ctx := context.Background()

	item := evalItem("EvalA", func(_ context.Context, session map[string]any) (any, error) {
		entries, _ := session["entries"].([]map[string]any)
		return len(entries) > 0, nil
	})

	m.registry.EXPECT().Item(domain.KindEvals, "EvalA").Return(item, true)
	m.transcripts.EXPECT().HashSessionFile("proj", "sid").Return("content1")
	m.cache.EXPECT().GetPerItem(ctx, domain.KindEvals, "proj", "sid", "EvalA", "code-EvalA", "content1").Return(nil)
	m.transcripts.EXPECT().LoadSession(ctx, "proj", "sid").Return(sessionLog(), nil)
	m.cache.EXPECT().SetPerItem(ctx, domain.KindEvals, "proj", "sid", "EvalA", "code-EvalA", "content1", gomock.Any())

	got, err := r.RunItem(ctx, domain.KindEvals, "proj", "sid", "EvalA")
	require.NoError(t, err)

	result, ok := got.(domain.EvalResult)
	require.True(t, ok)
	assert.True(t, result.Passed)
	assert.Empty(t, result.Error)
}

func TestRunItem_CacheHit(t *testing.T) {
	r, m := setupRunner(t)
	ctx := context.Background()

	item := evalItem("EvalA", nil)
	m.registry.EXPECT().Item(domain.KindEvals, "EvalA").Return(item, true)
	m.transcripts.EXPECT().HashSessionFile("proj", "sid").Return("content1")
	m.cache.EXPECT().GetPerItem(ctx, domain.KindEvals, "proj", "sid", "EvalA", "code-EvalA", "content1").
		Return(cachedEntry(t, domain.EvalResult{Name: "EvalA", Passed: true}))

	got, err := r.RunItem(ctx, domain.KindEvals, "proj", "sid", "EvalA")
	require.NoError(t, err)

	result, ok := got.(*domain.EvalResult)
	require.True(t, ok)
	assert.True(t, result.Passed)
}

func TestRunItem_ItemErrorEmbeddedNotReturned(t *testing.T) {
	r, m := setupRunner(t)
	ctx := context.Background()

	item := evalItem("EvalA", func(context.Context, map[string]any) (any, error) {
		return nil, errors.New("operator bug")
	})

	m.registry.EXPECT().Item(domain.KindEvals, "EvalA").Return(item, true)
	m.transcripts.EXPECT().HashSessionFile("proj", "sid").Return("content1")
	m.cache.EXPECT().GetPerItem(ctx, domain.KindEvals, "proj", "sid", "EvalA", "code-EvalA", "content1").Return(nil)
	m.transcripts.EXPECT().LoadSession(ctx, "proj", "sid").Return(sessionLog(), nil)
	m.cache.EXPECT().SetPerItem(ctx, domain.KindEvals, "proj", "sid", "EvalA", "code-EvalA", "content1", gomock.Any())

	got, err := r.RunItem(ctx, domain.KindEvals, "proj", "sid", "EvalA")
	require.NoError(t, err, "item failures are results, not errors")

	result, ok := got.(domain.EvalResult)
	require.True(t, ok)
	assert.Contains(t, result.Error, "operator bug")
	assert.False(t, result.Passed)
}

func TestRunItem_UnknownItem(t *testing.T) {
	r, m := setupRunner(t)

	m.registry.EXPECT().Item(domain.KindEvals, "EvalMissing").Return(domain.RegisteredItem{}, false)

	_, err := r.RunItem(context.Background(), domain.KindEvals, "proj", "sid", "EvalMissing")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestRunItem_FilterMatchInterpretation(t *testing.T) {
	r, m := setupRunner(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		value   any
		matched bool
	}{
		{"FilterTrue", true, true},
		{"FilterFalse", false, false},
		{"FilterValue", map[string]any{"found": 3}, true},
		{"FilterNil", nil, false},
	}

	for _, tc := range cases {
		item := domain.RegisteredItem{
			Name:     tc.name,
			Kind:     domain.KindFilters,
			Scope:    domain.ScopeSession,
			CodeHash: "code",
			Fn: func(context.Context, map[string]any) (any, error) {
				return tc.value, nil
			},
		}
		m.registry.EXPECT().Item(domain.KindFilters, tc.name).Return(item, true)
		m.transcripts.EXPECT().HashSessionFile("proj", "sid").Return("content1")
		m.cache.EXPECT().GetPerItem(ctx, domain.KindFilters, "proj", "sid", tc.name, "code", "content1").Return(nil)
		m.transcripts.EXPECT().LoadSession(ctx, "proj", "sid").Return(sessionLog(), nil)
		m.cache.EXPECT().SetPerItem(ctx, domain.KindFilters, "proj", "sid", tc.name, "code", "content1", gomock.Any())

		got, err := r.RunItem(ctx, domain.KindFilters, "proj", "sid", tc.name)
		require.NoError(t, err, tc.name)

		result, ok := got.(domain.FilterResult)
		require.True(t, ok, tc.name)
		assert.Equal(t, tc.matched, result.Matched, tc.name)
	}
}

func TestRunSession_GlobalConditionSkipsAll(t *testing.T) {
	r, m := setupRunner(t)
	ctx := context.Background()

	items := []domain.RegisteredItem{
		evalItem("EvalA", func(context.Context, map[string]any) (any, error) {
			t.Fatal("must not run")
			return nil, nil
		}),
	}

	m.registry.EXPECT().Names(domain.KindEvals).Return([]string{"EvalA"})
	m.cache.EXPECT().GetWholeResult(ctx, domain.KindEvals, "proj", "sid", []string{"EvalA"}, "").Return(nil)
	m.transcripts.EXPECT().LoadSession(ctx, "proj", "sid").Return(sessionLog(), nil)
	m.registry.EXPECT().Items(domain.KindEvals, domain.ScopeSession, "").Return(items)
	m.registry.EXPECT().GlobalCondition(domain.ScopeSession).
		Return(domain.ConditionFunc(func(map[string]any) (bool, error) { return false, nil }))
	m.cache.EXPECT().SetWholeResult(ctx, domain.KindEvals, "proj", "sid", gomock.Any(), []string{"EvalA"}, "")

	got, err := r.RunSession(ctx, domain.KindEvals, "proj", "sid")
	require.NoError(t, err)

	summary, ok := got.(*domain.EvalSummary)
	require.True(t, ok)
	assert.Equal(t, 1, summary.Skipped)
	assert.Zero(t, summary.Passed+summary.Failed+summary.Errors)
}
