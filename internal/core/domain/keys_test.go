package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/claudeye/claudeye/internal/core/domain"
)

func TestSessionKey_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		agentID   string
		want      string
	}{
		{"session only", "0199a3a4-1111-7000-8000-000000000001", "", "0199a3a4-1111-7000-8000-000000000001"},
		{"subagent", "0199a3a4-1111-7000-8000-000000000001", "a1b2", "0199a3a4-1111-7000-8000-000000000001/agent-a1b2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := domain.SessionKey(tt.sessionID, tt.agentID)
			assert.Equal(t, tt.want, key)

			sessionID, agentID := domain.ParseSessionKey(key)
			assert.Equal(t, tt.sessionID, sessionID)
			assert.Equal(t, tt.agentID, agentID)
		})
	}
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "evals/proj/sid", domain.WholeResultKey(domain.KindEvals, "proj", "sid"))
	assert.Equal(t,
		"filters/proj/sid/items/FilterX-abc123",
		domain.PerItemKey(domain.KindFilters, "proj", "sid", "FilterX", "abc123"))
	assert.Equal(t, "evals/proj/", domain.ProjectPrefix(domain.KindEvals, "proj"))
	assert.Equal(t, "actions:proj/sid/ActionY", domain.QueueKey(domain.KindActions, "proj", "sid", "ActionY"))
}

func TestItemKind_Valid(t *testing.T) {
	for _, k := range []domain.ItemKind{domain.KindEvals, domain.KindEnrichments, domain.KindActions, domain.KindFilters} {
		assert.True(t, k.Valid())
	}
	assert.False(t, domain.ItemKind("checks").Valid())
	assert.False(t, domain.ItemKind("").Valid())
}

func TestScope_Includes(t *testing.T) {
	assert.True(t, domain.ScopeBoth.Includes(domain.ScopeSession))
	assert.True(t, domain.ScopeBoth.Includes(domain.ScopeSubagent))
	assert.True(t, domain.ScopeSession.Includes(domain.ScopeSession))
	assert.False(t, domain.ScopeSession.Includes(domain.ScopeSubagent))
	assert.False(t, domain.ScopeSubagent.Includes(domain.ScopeSession))
}

func TestSessionLog_Scope(t *testing.T) {
	session := &domain.SessionLog{SessionID: "sid"}
	assert.Equal(t, domain.ScopeSession, session.Scope())

	subagent := &domain.SessionLog{SessionID: "sid", AgentID: "a1"}
	assert.Equal(t, domain.ScopeSubagent, subagent.Scope())
}

func TestSessionLog_Context(t *testing.T) {
	log := &domain.SessionLog{
		ProjectName:  "proj",
		SessionID:    "sid",
		AgentID:      "a1",
		SubagentType: "researcher",
		Entries:      []map[string]any{{"type": "user"}},
		RawLines:     []string{`{"type":"user"}`},
	}
	ctx := log.Context()
	assert.Equal(t, "proj", ctx["project"])
	assert.Equal(t, "sid", ctx["sessionId"])
	assert.Equal(t, "a1", ctx["agentId"])
	assert.Equal(t, "researcher", ctx["subagentType"])
	assert.Len(t, ctx["entries"], 1)
}
