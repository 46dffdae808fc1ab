package ports

import (
	"context"

	"github.com/claudeye/claudeye/internal/core/domain"
)

// TranscriptLoader discovers and parses session transcripts under the
// projects root, and hashes their files for cache validation.
//
//go:generate mockgen -source=transcripts.go -destination=mocks/mock_transcripts.go -package=mocks
type TranscriptLoader interface {
	// ListProjects returns the project directory names under the root.
	ListProjects() ([]string, error)

	// ListSessions returns the session IDs of one project.
	ListSessions(project string) ([]string, error)

	// ListSubagents returns the agent IDs of one session's subagent
	// transcripts. A session without a subagent directory has none.
	ListSubagents(project, sessionID string) ([]string, error)

	// LoadSession parses one session transcript into entries plus raw
	// lines. Malformed lines are skipped, not fatal.
	LoadSession(ctx context.Context, project, sessionID string) (*domain.SessionLog, error)

	// LoadSubagent parses one subagent transcript.
	LoadSubagent(ctx context.Context, project, sessionID, agentID string) (*domain.SessionLog, error)

	// HashSessionFile returns the content hash of a session transcript,
	// or "" when the file is unreadable.
	HashSessionFile(project, sessionID string) string

	// HashSubagentFile returns the content hash of a subagent transcript,
	// or "" when the file is unreadable.
	HashSubagentFile(project, sessionID, agentID string) string
}
