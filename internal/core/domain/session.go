package domain

import "strings"

const agentKeyPrefix = "agent-"

// SessionLog is one parsed transcript, either a top-level session or a
// subagent transcript.
type SessionLog struct {
	// ProjectName is the directory name of the project the session
	// belongs to.
	ProjectName string
	// SessionID is the UUID of the parent session.
	SessionID string
	// AgentID is non-empty for subagent transcripts.
	AgentID string
	// SubagentType is the declared type of the subagent, when known.
	SubagentType string
	// Entries are the parsed JSONL records, in file order.
	Entries []map[string]any
	// RawLines are the unparsed lines, in file order.
	RawLines []string
	// ParseErrors counts lines that failed to parse and were skipped.
	ParseErrors int
}

// SessionKey returns the cache key segment for this transcript:
// the session ID, or "{sessionID}/agent-{agentID}" for subagents.
func (l *SessionLog) SessionKey() string {
	return SessionKey(l.SessionID, l.AgentID)
}

// Scope returns the transcript's scope: ScopeSubagent when the log is a
// subagent transcript, ScopeSession otherwise.
func (l *SessionLog) Scope() Scope {
	if l.AgentID != "" {
		return ScopeSubagent
	}
	return ScopeSession
}

// Context builds the shared map handed to user-registered functions.
func (l *SessionLog) Context() map[string]any {
	return map[string]any{
		"project":      l.ProjectName,
		"sessionId":    l.SessionID,
		"agentId":      l.AgentID,
		"subagentType": l.SubagentType,
		"entries":      l.Entries,
		"rawLines":     l.RawLines,
	}
}

// SessionKey builds the composite session key for a session or one of
// its subagents. Subagents get their own cache namespace under the
// parent session.
func SessionKey(sessionID, agentID string) string {
	if agentID == "" {
		return sessionID
	}
	return sessionID + "/" + agentKeyPrefix + agentID
}

// ParseSessionKey splits a composite session key back into the session
// ID and the optional agent ID.
func ParseSessionKey(key string) (sessionID, agentID string) {
	sessionID, rest, ok := strings.Cut(key, "/")
	if !ok {
		return key, ""
	}
	return sessionID, strings.TrimPrefix(rest, agentKeyPrefix)
}
