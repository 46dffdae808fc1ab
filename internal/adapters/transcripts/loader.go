// Package transcripts discovers and parses session transcripts under
// the projects root.
package transcripts

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.trai.ch/zerr"

	"github.com/claudeye/claudeye/internal/core/domain"
	"github.com/claudeye/claudeye/internal/core/ports"
)

var _ ports.TranscriptLoader = (*Loader)(nil)

const (
	transcriptExt   = ".jsonl"
	agentFilePrefix = "agent-"
)

// Transcript lines can carry full tool outputs; allow generously sized
// lines before the scanner gives up.
const maxLineBytes = 8 * 1024 * 1024

// Loader reads the on-disk transcript layout:
//
//	<root>/<project>/<sessionID>.jsonl
//	<root>/<project>/<sessionID>/agent-<agentID>.jsonl
type Loader struct {
	root   string
	hasher ports.Hasher
	logger ports.Logger
}

// NewLoader creates a Loader over the given projects root.
func NewLoader(root string, hasher ports.Hasher, logger ports.Logger) *Loader {
	return &Loader{root: root, hasher: hasher, logger: logger}
}

// ListProjects returns the project directory names under the root,
// sorted by name.
func (l *Loader) ListProjects() ([]string, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrProjectNotFound, err.Error()), "root", l.root)
	}

	var projects []string
	for _, e := range entries {
		if e.IsDir() {
			projects = append(projects, e.Name())
		}
	}
	return projects, nil
}

// ListSessions returns the session IDs of one project. Files whose name
// is not a UUID are ignored.
func (l *Loader) ListSessions(project string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(l.root, project))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrProjectNotFound, "no such project directory"), "project", project)
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrProjectNotFound, err.Error()), "project", project)
	}

	var sessions []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), transcriptExt) {
			continue
		}
		id := strings.TrimSuffix(e.Name(), transcriptExt)
		if _, err := uuid.Parse(id); err != nil {
			continue
		}
		sessions = append(sessions, id)
	}
	return sessions, nil
}

// ListSubagents returns the agent IDs of one session's subagent
// transcripts.
func (l *Loader) ListSubagents(project, sessionID string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(l.root, project, sessionID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrSessionNotFound, err.Error()), "session", sessionID)
	}

	var agents []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, agentFilePrefix) || !strings.HasSuffix(name, transcriptExt) {
			continue
		}
		agents = append(agents, strings.TrimSuffix(strings.TrimPrefix(name, agentFilePrefix), transcriptExt))
	}
	return agents, nil
}

// LoadSession parses one session transcript.
func (l *Loader) LoadSession(ctx context.Context, project, sessionID string) (*domain.SessionLog, error) {
	log := &domain.SessionLog{ProjectName: project, SessionID: sessionID}
	if err := l.parseFile(ctx, l.sessionPath(project, sessionID), log); err != nil {
		return nil, err
	}
	return log, nil
}

// LoadSubagent parses one subagent transcript.
func (l *Loader) LoadSubagent(ctx context.Context, project, sessionID, agentID string) (*domain.SessionLog, error) {
	log := &domain.SessionLog{ProjectName: project, SessionID: sessionID, AgentID: agentID}
	if err := l.parseFile(ctx, l.subagentPath(project, sessionID, agentID), log); err != nil {
		return nil, err
	}
	return log, nil
}

// HashSessionFile returns the content hash of a session transcript, or
// "" when the file is unreadable.
func (l *Loader) HashSessionFile(project, sessionID string) string {
	return l.hasher.HashFile(l.sessionPath(project, sessionID))
}

// HashSubagentFile returns the content hash of a subagent transcript,
// or "" when the file is unreadable.
func (l *Loader) HashSubagentFile(project, sessionID, agentID string) string {
	return l.hasher.HashFile(l.subagentPath(project, sessionID, agentID))
}

func (l *Loader) sessionPath(project, sessionID string) string {
	return filepath.Join(l.root, project, sessionID+transcriptExt)
}

func (l *Loader) subagentPath(project, sessionID, agentID string) string {
	return filepath.Join(l.root, project, sessionID, agentFilePrefix+agentID+transcriptExt)
}

// parseFile reads a JSONL transcript into log. Malformed lines are
// counted and skipped, never fatal.
func (l *Loader) parseFile(ctx context.Context, path string, log *domain.SessionLog) error {
	f, err := os.Open(path) //nolint:gosec // Path is built from validated segments under the root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(domain.ErrSessionNotFound, "no transcript file"), "path", path)
		}
		return zerr.With(zerr.Wrap(domain.ErrTranscriptReadFailed, err.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		log.RawLines = append(log.RawLines, line)

		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			log.ParseErrors++
			continue
		}
		log.Entries = append(log.Entries, entry)

		if log.SubagentType == "" && log.AgentID != "" {
			if t, ok := entry["subagentType"].(string); ok {
				log.SubagentType = t
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrTranscriptReadFailed, err.Error()), "path", path)
	}
	return nil
}
