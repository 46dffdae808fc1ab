// Package server exposes the HTTP API: queue status, interactive runs,
// result retrieval, cache management and Prometheus metrics.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/claudeye/claudeye/internal/core/domain"
	"github.com/claudeye/claudeye/internal/core/ports"
	"github.com/claudeye/claudeye/internal/engine/queue"
	"github.com/claudeye/claudeye/internal/engine/runner"
)

const shutdownTimeout = 5 * time.Second

// Server is the HTTP API front end.
type Server struct {
	addr      string
	scheduler *queue.Scheduler
	runner    *runner.Runner
	registry  ports.Registry
	cache     ports.ResultCache
	logger    ports.Logger

	httpServer *http.Server
}

// New creates the API server.
func New(addr string, scheduler *queue.Scheduler, r *runner.Runner, registry ports.Registry, cache ports.ResultCache, logger ports.Logger) *Server {
	s := &Server{
		addr:      addr,
		scheduler: scheduler,
		runner:    r,
		registry:  registry,
		cache:     cache,
		logger:    logger,
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Routes builds the gin handler tree.
func (s *Server) Routes() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/status", s.handleStatus)
		api.POST("/run", s.handleRun)
		api.GET("/results/:project/:session", s.handleResults)
		api.POST("/cache/clear", s.handleCacheClear)
	}
	return router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleStatus reports the queue snapshot, the registered item names
// and the cache switch.
func (s *Server) handleStatus(c *gin.Context) {
	registered := make(map[string][]string, 4)
	for _, kind := range allKinds() {
		registered[string(kind)] = s.registry.Names(kind)
	}
	c.JSON(http.StatusOK, gin.H{
		"queue":        s.scheduler.Status(),
		"registered":   registered,
		"cacheEnabled": s.cache.Enabled(),
	})
}

type runRequest struct {
	Project string `json:"project" binding:"required"`
	Session string `json:"session" binding:"required"`
	Agent   string `json:"agent"`
	Kind    string `json:"kind" binding:"required"`
	Item    string `json:"item"`
	Force   bool   `json:"force"`
}

// handleRun enqueues an interactive run and waits for its result. With
// an item it runs that single item; without, the whole batch of the
// kind.
func (s *Server) handleRun(c *gin.Context) {
	var req runRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	kind := domain.ItemKind(req.Kind)
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrUnknownKind.Error()})
		return
	}

	sessionKey := domain.SessionKey(req.Session, req.Agent)
	itemName := req.Item
	var task queue.Task
	if itemName == "" {
		itemName = "*"
		task = s.runner.SessionTask(kind, req.Project, sessionKey)
	} else {
		if _, ok := s.registry.Item(kind, itemName); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrItemNotFound.Error()})
			return
		}
		task = s.runner.ItemTask(kind, req.Project, sessionKey, itemName)
	}

	fut := s.scheduler.Enqueue(queue.Request{
		Kind:       kind,
		Project:    req.Project,
		SessionKey: sessionKey,
		ItemName:   itemName,
		Priority:   domain.PriorityInteractive,
		Force:      req.Force,
		Task:       task,
	})
	value, err := fut.Wait(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": value})
}

// handleResults returns the results of every kind for one transcript.
// The cache makes repeated reads cheap; uncached kinds are computed on
// the spot.
func (s *Server) handleResults(c *gin.Context) {
	project := c.Param("project")
	sessionKey := domain.SessionKey(c.Param("session"), c.Query("agent"))

	results := make(map[string]any, 4)
	for _, kind := range allKinds() {
		summary, err := s.runner.RunSession(c.Request.Context(), kind, project, sessionKey)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		results[string(kind)] = summary
	}
	c.JSON(http.StatusOK, results)
}

type cacheClearRequest struct {
	Project string `json:"project"`
	Kind    string `json:"kind"`
}

// handleCacheClear drops the whole cache, or one project's entries
// under one kind when both are given.
func (s *Server) handleCacheClear(c *gin.Context) {
	// An empty or absent body means "clear everything".
	var req cacheClearRequest
	_ = c.ShouldBindJSON(&req)

	if req.Project != "" && req.Kind != "" {
		kind := domain.ItemKind(req.Kind)
		if !kind.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrUnknownKind.Error()})
			return
		}
		if err := s.cache.InvalidateProject(c.Request.Context(), kind, req.Project); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cleared": domain.ProjectPrefix(kind, req.Project)})
		return
	}

	if err := s.cache.ClearAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": "all"})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSchedulerStopped):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func allKinds() []domain.ItemKind {
	return []domain.ItemKind{domain.KindEvals, domain.KindEnrichments, domain.KindActions, domain.KindFilters}
}
