// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/claudeye/claudeye/internal/adapters/cachestore"
	_ "github.com/claudeye/claudeye/internal/adapters/config"
	_ "github.com/claudeye/claudeye/internal/adapters/evals"
	_ "github.com/claudeye/claudeye/internal/adapters/fs"
	_ "github.com/claudeye/claudeye/internal/adapters/logger"
	_ "github.com/claudeye/claudeye/internal/adapters/telemetry"
	_ "github.com/claudeye/claudeye/internal/adapters/transcripts"
	_ "github.com/claudeye/claudeye/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "github.com/claudeye/claudeye/internal/app"
	_ "github.com/claudeye/claudeye/internal/cache"
	_ "github.com/claudeye/claudeye/internal/engine/queue"
	_ "github.com/claudeye/claudeye/internal/engine/runner"
	_ "github.com/claudeye/claudeye/internal/server"
)
