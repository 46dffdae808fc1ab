package evals_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claudeye/claudeye/internal/adapters/evals"
	"github.com/claudeye/claudeye/internal/adapters/fs"
	"github.com/claudeye/claudeye/internal/adapters/logger"
	"github.com/claudeye/claudeye/internal/core/domain"
	"github.com/claudeye/claudeye/internal/core/ports"
)

const testModule = `package checks

func When(session map[string]any) bool {
	return session["project"] != "ignored"
}

func EvalHasEntries(session map[string]any) bool {
	entries, _ := session["entries"].([]map[string]any)
	return len(entries) > 0
}

func EvalHasEntriesWhen(session map[string]any) bool {
	return session["sessionId"] != ""
}

func EnrichEntryCount(session map[string]any) (any, error) {
	entries, _ := session["entries"].([]map[string]any)
	return len(entries), nil
}

func ActionTag(session map[string]any) any {
	return "tagged"
}

func FilterNamed(session map[string]any) bool {
	return session["project"] == "wanted"
}

func EvalSubagentDepth(session map[string]any) bool {
	return true
}

func Scopes() map[string]string {
	return map[string]string{
		"FilterNamed":           "both",
		"EvalSubagentDepth": "subagent:researcher",
	}
}
`

func writeModule(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "checks.go")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func newRegistry(t *testing.T, modulePath string) *evals.Registry {
	t.Helper()
	hasher, err := fs.NewHasher(t.TempDir(), modulePath)
	require.NoError(t, err)
	log := logger.New()
	log.SetOutput(io.Discard)

	r, err := evals.NewRegistry(modulePath, hasher, log)
	require.NoError(t, err)
	return r
}

func TestRegistry_ClassifiesByPrefix(t *testing.T) {
	r := newRegistry(t, writeModule(t, testModule))

	assert.Equal(t, []string{"EvalHasEntries", "EvalSubagentDepth"}, r.Names(domain.KindEvals))
	assert.Equal(t, []string{"EnrichEntryCount"}, r.Names(domain.KindEnrichments))
	assert.Equal(t, []string{"ActionTag"}, r.Names(domain.KindActions))
	assert.Equal(t, []string{"FilterNamed"}, r.Names(domain.KindFilters))
}

func TestRegistry_ItemFunctions(t *testing.T) {
	r := newRegistry(t, writeModule(t, testModule))

	item, ok := r.Item(domain.KindEvals, "EvalHasEntries")
	require.True(t, ok)
	assert.NotEmpty(t, item.CodeHash)
	require.NotNil(t, item.Fn)
	require.NotNil(t, item.Condition, "per-item When is bound")

	verdict, err := item.Fn(context.Background(), map[string]any{
		"entries": []map[string]any{{"type": "user"}},
	})
	require.NoError(t, err)
	assert.Equal(t, true, verdict)

	verdict, err = item.Fn(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, false, verdict)

	pass, err := item.Condition(map[string]any{"sessionId": "sid"})
	require.NoError(t, err)
	assert.True(t, pass)
}

func TestRegistry_GlobalCondition(t *testing.T) {
	r := newRegistry(t, writeModule(t, testModule))

	cond := r.GlobalCondition(domain.ScopeSession)
	require.NotNil(t, cond)

	pass, err := cond(map[string]any{"project": "proj"})
	require.NoError(t, err)
	assert.True(t, pass)

	pass, err = cond(map[string]any{"project": "ignored"})
	require.NoError(t, err)
	assert.False(t, pass)

	assert.Nil(t, r.GlobalCondition(domain.ScopeSubagent), "no WhenSubagent declared")
}

func TestRegistry_Scopes(t *testing.T) {
	r := newRegistry(t, writeModule(t, testModule))

	// "both" filters apply to sessions and subagents alike.
	assert.Len(t, r.Items(domain.KindFilters, domain.ScopeSession, ""), 1)
	assert.Len(t, r.Items(domain.KindFilters, domain.ScopeSubagent, ""), 1)

	// A subagent-typed item is excluded from sessions and from other
	// subagent types, but included when the type matches or is unknown.
	subItems := func(subagentType string) []string {
		var names []string
		for _, item := range r.Items(domain.KindEvals, domain.ScopeSubagent, subagentType) {
			names = append(names, item.Name)
		}
		return names
	}
	assert.NotContains(t, r.Names(domain.KindEvals), "missing")
	assert.Contains(t, subItems("researcher"), "EvalSubagentDepth")
	assert.Contains(t, subItems(""), "EvalSubagentDepth")
	assert.NotContains(t, subItems("coder"), "EvalSubagentDepth")

	for _, item := range r.Items(domain.KindEvals, domain.ScopeSession, "") {
		assert.NotEqual(t, "EvalSubagentDepth", item.Name)
	}
}

func TestRegistry_DistinctCodeHashes(t *testing.T) {
	r := newRegistry(t, writeModule(t, testModule))

	a, ok := r.Item(domain.KindEvals, "EvalHasEntries")
	require.True(t, ok)
	b, ok := r.Item(domain.KindEnrichments, "EnrichEntryCount")
	require.True(t, ok)
	assert.NotEqual(t, a.CodeHash, b.CodeHash)
}

func TestRegistry_Reload(t *testing.T) {
	path := writeModule(t, testModule)
	r := newRegistry(t, path)

	before, ok := r.Item(domain.KindEvals, "EvalHasEntries")
	require.True(t, ok)

	updated := testModule + `
func EvalAlwaysTrue(session map[string]any) bool { return true }
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))
	require.NoError(t, r.Reload())

	assert.Equal(t, []string{"EvalAlwaysTrue", "EvalHasEntries", "EvalSubagentDepth"}, r.Names(domain.KindEvals))

	// Untouched functions keep their code hash across reloads.
	after, ok := r.Item(domain.KindEvals, "EvalHasEntries")
	require.True(t, ok)
	assert.Equal(t, before.CodeHash, after.CodeHash)
}

func TestRegistry_BadSignature(t *testing.T) {
	path := writeModule(t, `package checks

func EvalWrongShape(a, b string) bool { return true }
`)
	hasher, err := fs.NewHasher(t.TempDir(), path)
	require.NoError(t, err)
	log := logger.New()
	log.SetOutput(io.Discard)

	_, err = evals.NewRegistry(path, hasher, log)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadFunctionSignature)
}

func TestRegistry_EmptyModulePath(t *testing.T) {
	hasher, err := fs.NewHasher(t.TempDir(), "")
	require.NoError(t, err)
	log := logger.New()
	log.SetOutput(io.Discard)

	r, err := evals.NewRegistry("", hasher, log)
	require.NoError(t, err)
	assert.Empty(t, r.Names(domain.KindEvals))
	assert.Nil(t, r.GlobalCondition(domain.ScopeSession))

	var _ ports.Registry = r
}
