// Package app implements the application layer for claudeye.
package app

import (
	"context"

	"github.com/claudeye/claudeye/internal/adapters/config"
	"github.com/claudeye/claudeye/internal/adapters/telemetry"
	"github.com/claudeye/claudeye/internal/adapters/watcher"
	"github.com/claudeye/claudeye/internal/core/domain"
	"github.com/claudeye/claudeye/internal/core/ports"
	"github.com/claudeye/claudeye/internal/engine/queue"
	"github.com/claudeye/claudeye/internal/engine/runner"
	"github.com/claudeye/claudeye/internal/server"
)

// App wires the engine components into the operations the CLI exposes.
type App struct {
	cfg       *config.Config
	logger    ports.Logger
	registry  ports.Registry
	runner    *runner.Runner
	scheduler *queue.Scheduler
	processor *queue.Processor
	watcher   *watcher.ModuleWatcher
	cache     ports.ResultCache
	store     ports.CacheStore
	server    *server.Server
}

// New creates an App instance.
func New(
	cfg *config.Config,
	logger ports.Logger,
	registry ports.Registry,
	r *runner.Runner,
	scheduler *queue.Scheduler,
	processor *queue.Processor,
	w *watcher.ModuleWatcher,
	cache ports.ResultCache,
	store ports.CacheStore,
	srv *server.Server,
) *App {
	return &App{
		cfg:       cfg,
		logger:    logger,
		registry:  registry,
		runner:    r,
		scheduler: scheduler,
		processor: processor,
		watcher:   w,
		cache:     cache,
		store:     store,
		server:    srv,
	}
}

// Serve runs the long-lived mode: background scanner, evals module
// watcher and HTTP API, until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	otelShutdown := telemetry.Setup()
	defer func() { _ = otelShutdown(context.Background()) }()
	defer func() { _ = a.store.Close() }()
	defer a.scheduler.Stop()

	a.scheduler.SetAlertFunc(func(project, sessionKey string) {
		a.logger.Info("results updated for " + project + "/" + sessionKey)
	})

	if err := a.watcher.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	a.processor.Start(ctx)
	defer a.processor.Stop()

	a.logger.Info("listening on " + a.cfg.ListenAddr)
	return a.server.Start(ctx)
}

// RunOnce executes one kind for one transcript at interactive priority
// and waits for the result. itemName selects a single item; empty runs
// the whole batch.
func (a *App) RunOnce(ctx context.Context, kind domain.ItemKind, project, sessionKey, itemName string, force bool) (any, error) {
	defer a.scheduler.Stop()
	defer func() { _ = a.store.Close() }()

	var task queue.Task
	name := itemName
	if name == "" {
		name = "*"
		task = a.runner.SessionTask(kind, project, sessionKey)
	} else {
		task = a.runner.ItemTask(kind, project, sessionKey, name)
	}

	fut := a.scheduler.Enqueue(queue.Request{
		Kind:       kind,
		Project:    project,
		SessionKey: sessionKey,
		ItemName:   name,
		Priority:   domain.PriorityInteractive,
		Force:      force,
		Task:       task,
	})
	return fut.Wait(ctx)
}

// Clean drops the entire result cache.
func (a *App) Clean(ctx context.Context) error {
	defer func() { _ = a.store.Close() }()

	a.logger.Info("clearing result cache...")
	if err := a.cache.ClearAll(ctx); err != nil {
		return err
	}
	a.logger.Info("result cache cleared")
	return nil
}

// ListenAddr exposes the configured API address for the status command.
func (a *App) ListenAddr() string {
	return a.cfg.ListenAddr
}
