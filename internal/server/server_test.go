package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"

	"github.com/claudeye/claudeye/internal/adapters/logger"
	"github.com/claudeye/claudeye/internal/adapters/telemetry"
	"github.com/claudeye/claudeye/internal/core/domain"
	"github.com/claudeye/claudeye/internal/core/ports/mocks"
	"github.com/claudeye/claudeye/internal/engine/queue"
	"github.com/claudeye/claudeye/internal/engine/runner"
	"github.com/claudeye/claudeye/internal/server"
)

type serverTestMocks struct {
	registry    *mocks.MockRegistry
	transcripts *mocks.MockTranscriptLoader
	cache       *mocks.MockResultCache
}

func setupServer(t *testing.T) (http.Handler, serverTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := serverTestMocks{
		registry:    mocks.NewMockRegistry(ctrl),
		transcripts: mocks.NewMockTranscriptLoader(ctrl),
		cache:       mocks.NewMockResultCache(ctrl),
	}

	log := logger.New()
	log.SetOutput(io.Discard)
	tracer := telemetry.NewNoopTracer()

	sched := queue.NewScheduler(2, time.Hour, log, tracer)
	t.Cleanup(sched.Stop)

	r := runner.New(m.registry, m.transcripts, m.cache, log, tracer)
	srv := server.New(":0", sched, r, m.registry, m.cache, log)
	return srv.Routes(), m
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	handler, _ := setupServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	handler, _ := setupServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestStatus(t *testing.T) {
	handler, m := setupServer(t)

	m.registry.EXPECT().Names(domain.KindEvals).Return([]string{"EvalA"})
	m.registry.EXPECT().Names(domain.KindEnrichments).Return(nil)
	m.registry.EXPECT().Names(domain.KindActions).Return(nil)
	m.registry.EXPECT().Names(domain.KindFilters).Return([]string{"FilterB"})
	m.cache.EXPECT().Enabled().Return(true)

	rec := doJSON(t, handler, http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Registered   map[string][]string `json:"registered"`
		CacheEnabled bool                `json:"cacheEnabled"`
		Queue        domain.QueueStatus  `json:"queue"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"EvalA"}, body.Registered["evals"])
	assert.True(t, body.CacheEnabled)
	assert.Empty(t, body.Queue.Pending)
}

func TestRun_SingleItem(t *testing.T) {
	handler, m := setupServer(t)

	item := domain.RegisteredItem{Name: "EvalA", Kind: domain.KindEvals, CodeHash: "code1"}
	m.registry.EXPECT().Item(domain.KindEvals, "EvalA").Return(item, true).Times(2)
	m.transcripts.EXPECT().HashSessionFile("proj", "sid").Return("content1")

	raw, err := json.Marshal(domain.EvalResult{Name: "EvalA", Passed: true})
	require.NoError(t, err)
	m.cache.EXPECT().
		GetPerItem(gomock.Any(), domain.KindEvals, "proj", "sid", "EvalA", "code1", "content1").
		Return(&domain.CacheEntry{Value: raw})

	rec := doJSON(t, handler, http.MethodPost, "/api/run",
		`{"project":"proj","session":"sid","kind":"evals","item":"EvalA"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Result domain.EvalResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Result.Passed)
}

func TestRun_WholeBatchForSubagent(t *testing.T) {
	handler, m := setupServer(t)
	key := domain.SessionKey("sid", "a1")

	raw, err := json.Marshal(domain.EvalSummary{Passed: 2})
	require.NoError(t, err)
	m.registry.EXPECT().Names(domain.KindEvals).Return([]string{"EvalA"})
	m.cache.EXPECT().
		GetWholeResult(gomock.Any(), domain.KindEvals, "proj", key, []string{"EvalA"}, "").
		Return(&domain.CacheEntry{Value: raw})

	rec := doJSON(t, handler, http.MethodPost, "/api/run",
		`{"project":"proj","session":"sid","agent":"a1","kind":"evals"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Result domain.EvalSummary `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Result.Passed)
}

func TestRun_ValidationErrors(t *testing.T) {
	handler, m := setupServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/run", `{"project":"proj"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "session and kind are required")

	rec = doJSON(t, handler, http.MethodPost, "/api/run",
		`{"project":"proj","session":"sid","kind":"bogus"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	m.registry.EXPECT().Item(domain.KindEvals, "EvalMissing").Return(domain.RegisteredItem{}, false)
	rec = doJSON(t, handler, http.MethodPost, "/api/run",
		`{"project":"proj","session":"sid","kind":"evals","item":"EvalMissing"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResults_MissingSession(t *testing.T) {
	handler, m := setupServer(t)

	m.registry.EXPECT().Names(gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().GetWholeResult(gomock.Any(), gomock.Any(), "proj", "sid", nil, "").Return(nil).AnyTimes()
	m.transcripts.EXPECT().LoadSession(gomock.Any(), "proj", "sid").Return(nil, domain.ErrSessionNotFound)

	rec := doJSON(t, handler, http.MethodGet, "/api/results/proj/sid", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResults_WrappedLoaderErrorStillMapsTo404(t *testing.T) {
	handler, m := setupServer(t)

	// The loader reports missing transcripts wrapped with context; the
	// sentinel must survive the chain for status mapping.
	loaderErr := zerr.With(zerr.Wrap(domain.ErrSessionNotFound, "no transcript file"), "path", "/tmp/x")
	m.registry.EXPECT().Names(gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().GetWholeResult(gomock.Any(), gomock.Any(), "proj", "sid", nil, "").Return(nil).AnyTimes()
	m.transcripts.EXPECT().LoadSession(gomock.Any(), "proj", "sid").Return(nil, loaderErr)

	rec := doJSON(t, handler, http.MethodGet, "/api/results/proj/sid", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResults_AllKindsFromCache(t *testing.T) {
	handler, m := setupServer(t)

	summaries := map[domain.ItemKind]any{
		domain.KindEvals:       domain.EvalSummary{Passed: 1},
		domain.KindEnrichments: domain.EnrichmentSummary{},
		domain.KindActions:     domain.ActionSummary{},
		domain.KindFilters:     domain.FilterSummary{Matched: 1},
	}
	for kind, summary := range summaries {
		raw, err := json.Marshal(summary)
		require.NoError(t, err)
		m.registry.EXPECT().Names(kind).Return(nil)
		m.cache.EXPECT().
			GetWholeResult(gomock.Any(), kind, "proj", "sid", nil, "").
			Return(&domain.CacheEntry{Value: raw})
	}

	rec := doJSON(t, handler, http.MethodGet, "/api/results/proj/sid", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 4)

	var evals domain.EvalSummary
	require.NoError(t, json.Unmarshal(body["evals"], &evals))
	assert.Equal(t, 1, evals.Passed)
}

func TestCacheClear_All(t *testing.T) {
	handler, m := setupServer(t)

	m.cache.EXPECT().ClearAll(gomock.Any()).Return(nil)

	rec := doJSON(t, handler, http.MethodPost, "/api/cache/clear", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cleared":"all"}`, rec.Body.String())
}

func TestCacheClear_Project(t *testing.T) {
	handler, m := setupServer(t)

	m.cache.EXPECT().InvalidateProject(gomock.Any(), domain.KindEvals, "proj").Return(nil)

	rec := doJSON(t, handler, http.MethodPost, "/api/cache/clear",
		`{"project":"proj","kind":"evals"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cleared":"evals/proj/"}`, rec.Body.String())
}

func TestCacheClear_BadKind(t *testing.T) {
	handler, _ := setupServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/cache/clear",
		`{"project":"proj","kind":"bogus"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
