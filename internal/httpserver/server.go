// Package httpserver exposes analysis results and run history over a small
// JSON API.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/aarelaponin/archi-reports/internal/model"
	"github.com/aarelaponin/archi-reports/internal/store"
	"github.com/gin-gonic/gin"
)

// HistoryStore is the narrow store contract required by the HTTP API.
type HistoryStore interface {
	ListRuns(limit int) ([]store.Run, error)
	LatestRun() (store.Run, error)
	RunResult(runID int64) (model.AnalysisResult, error)
	TotalRunCount() (int64, error)
}

// Server serves the latest analysis result and, when a store is attached,
// the recorded run history.
type Server struct {
	addr      string
	result    model.AnalysisResult
	history   HistoryStore
	server    *http.Server
	listener  net.Listener
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates an API server for the given result. history may be nil
// when run persistence is disabled.
func NewServer(addr string, result model.AnalysisResult, history HistoryStore) *Server {
	if addr == "" {
		addr = "127.0.0.1:3000"
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:    addr,
		result:  result,
		history: history,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/api/health", s.handleHealth)
	r.GET("/api/result", s.handleResult)
	r.GET("/api/processes", s.handleProcesses)
	r.GET("/api/components", s.handleComponents)
	r.GET("/api/runs", s.handleRuns)
	r.GET("/api/runs/:id", s.handleRun)

	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.router(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.startTime = time.Now()

	go s.server.Serve(listener)
	return nil
}

// Addr returns the bound address after Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	body := gin.H{
		"status":        "ok",
		"uptime":        time.Since(s.startTime).String(),
		"process_count": s.result.ProcessCount(),
	}
	if s.history != nil {
		count, err := s.history.TotalRunCount()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read run count"})
			return
		}
		body["run_count"] = count
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) handleResult(c *gin.Context) {
	c.JSON(http.StatusOK, s.result)
}

func (s *Server) handleProcesses(c *gin.Context) {
	switch c.Query("status") {
	case "served":
		c.JSON(http.StatusOK, gin.H{"processes": s.result.ServedProcesses})
	case "unserved":
		c.JSON(http.StatusOK, gin.H{"processes": s.result.UnservedProcesses})
	case "":
		c.JSON(http.StatusOK, gin.H{
			"served":   s.result.ServedProcesses,
			"unserved": s.result.UnservedProcesses,
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be served or unserved"})
	}
}

func (s *Server) handleComponents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"components": s.result.ComponentServices})
}

func (s *Server) handleRuns(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "run history is disabled"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	runs, err := s.history.ListRuns(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list runs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (s *Server) handleRun(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "run history is disabled"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
		return
	}

	result, err := s.history.RunResult(id)
	if err != nil {
		if errors.Is(err, store.ErrNoRuns) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load run"})
		return
	}
	if result.ProcessCount() == 0 && len(result.ComponentServices) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}
