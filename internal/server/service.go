// Package server exposes the question router and metric engine over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/theirongolddev/bizlens/internal/logging"
	"github.com/theirongolddev/bizlens/internal/query"
)

// Config controls the server runtime behavior.
type Config struct {
	Addr        string
	HistorySize int
}

// Exchange is one answered question, kept in the history ring.
type Exchange struct {
	ID        int64        `json:"id"`
	RequestID string       `json:"request_id,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
	Question  string       `json:"question"`
	Intent    query.Intent `json:"intent"`
	Answer    string       `json:"answer"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	Source          string    `json:"source"`
	Synthetic       bool      `json:"synthetic"`
	Months          int       `json:"months"`
	Questions       int64     `json:"questions"`
	HistoryCount    int       `json:"history_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service serves the HTTP API over one router. The dataset is immutable;
// the question history is the only shared mutable state.
type Service struct {
	cfg     Config
	router  *query.Router
	metrics *metrics

	mu        sync.RWMutex
	startedAt time.Time
	nextID    int64
	history   []Exchange

	nextSubID int
	subs      map[int]chan Exchange
}

// New returns a service answering through router.
func New(cfg Config, router *query.Router) *Service {
	if cfg.HistorySize < 1 {
		cfg.HistorySize = 100
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8088"
	}

	return &Service{
		cfg:       cfg,
		router:    router,
		metrics:   newMetrics(prometheus.NewRegistry()),
		startedAt: time.Now(),
		subs:      make(map[int]chan Exchange),
	}
}

// Handler returns the HTTP handler with every route and middleware wired.
func (s *Service) Handler() http.Handler {
	r := httprouter.New()
	r.GET("/healthz", s.handleHealth)
	r.GET("/v1/status", s.handleStatus)
	r.GET("/v1/ask", s.handleAsk)
	r.POST("/v1/ask", s.handleAsk)
	r.GET("/v1/intents", s.handleIntents)
	r.GET("/v1/summary", s.handleSummary)
	r.GET("/v1/months", s.handleMonths)
	r.GET("/v1/months/:month/suggestions", s.handleSuggestions)
	r.GET("/v1/quarters", s.handleQuarters)
	r.GET("/v1/quarters/:quarter", s.handleQuarter)
	r.GET("/v1/insights", s.handleInsights)
	r.GET("/v1/history", s.handleHistory)
	r.GET("/v1/stream", s.handleStream)
	r.Handler(http.MethodGet, "/metrics", s.metrics.handler())
	r.NotFound = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	return s.instrument(r)
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Service) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run over an existing listener.
func (s *Service) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		// Streams end when ctx is canceled.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logging.L.WithField("addr", ln.Addr().String()).Info("bizlens api listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}
}

// record stores an answered question and fans it out to stream subscribers.
func (s *Service) record(ex Exchange) Exchange {
	s.mu.Lock()
	s.nextID++
	ex.ID = s.nextID
	s.history = append(s.history, ex)
	if len(s.history) > s.cfg.HistorySize {
		s.history = s.history[len(s.history)-s.cfg.HistorySize:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ex:
		default:
		}
	}
	s.mu.Unlock()
	return ex
}

func (s *Service) snapshotHistory() []Exchange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Exchange, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Service) snapshotStatus() Status {
	ds := s.router.Engine().Dataset()
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		Source:          ds.Source,
		Synthetic:       ds.Synthetic,
		Months:          ds.Len(),
		Questions:       s.nextID,
		HistoryCount:    len(s.history),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) addSubscriber(ch chan Exchange) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
