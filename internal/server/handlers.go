package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/theirongolddev/bizlens/internal/logging"
	"github.com/theirongolddev/bizlens/internal/model"
	"github.com/theirongolddev/bizlens/internal/pipeline"
	"github.com/theirongolddev/bizlens/internal/query"
)

type askRequest struct {
	Question string `json:"question"`
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, s.snapshotStatus())
}

func (s *Service) handleAsk(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	question := r.URL.Query().Get("q")
	if r.Method == http.MethodPost {
		var req askRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		question = req.Question
	}
	question = strings.TrimSpace(question)
	if question == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}

	resp := s.router.Ask(question)
	s.metrics.questions.WithLabelValues(string(resp.Intent)).Inc()
	s.record(Exchange{
		RequestID: logging.RequestID(r.Context()),
		Timestamp: time.Now(),
		Question:  question,
		Intent:    resp.Intent,
		Answer:    resp.Answer,
	})
	writeJSON(w, http.StatusOK, resp)
}

func (s *Service) handleIntents(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, query.Intents())
}

func (s *Service) handleSummary(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, s.router.Engine().MonthlySummary())
}

func (s *Service) handleMonths(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	recs := s.router.Engine().Dataset().Records()
	if recs == nil {
		recs = []model.Record{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Service) handleSuggestions(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	month := ps.ByName("month")
	suggestions, err := s.router.Engine().CostOptimizationSuggestions(month)
	if errors.Is(err, pipeline.ErrNotFound) {
		writeError(w, http.StatusNotFound, "No data found for month: "+month)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"month": month, "suggestions": suggestions})
}

func (s *Service) handleQuarters(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, s.router.Engine().AllQuarters())
}

func (s *Service) handleQuarter(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	agg, err := s.router.Engine().QuarterlySummary(ps.ByName("quarter"))
	if errors.Is(err, pipeline.ErrInvalidQuarter) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, agg)
}

func (s *Service) handleInsights(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	insights := s.router.Engine().BusinessInsights()
	if insights == nil {
		insights = []string{}
	}
	writeJSON(w, http.StatusOK, insights)
}

func (s *Service) handleHistory(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, s.snapshotHistory())
}

// handleStream pushes each newly answered question as a server-sent event.
func (s *Service) handleStream(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Exchange, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	_, _ = fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ex := <-ch:
			writeSSE(w, ex)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ex Exchange) {
	data, err := json.Marshal(ex)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "id: %d\n", ex.ID)
	_, _ = fmt.Fprint(w, "event: answer\n")
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}
