package server

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/bizlens/internal/model"
	"github.com/theirongolddev/bizlens/internal/money"
	"github.com/theirongolddev/bizlens/internal/pipeline"
	"github.com/theirongolddev/bizlens/internal/query"
	"github.com/theirongolddev/bizlens/internal/source"
)

func newService(cfg Config) *Service {
	return New(cfg, query.NewRouter(pipeline.New(source.SampleDataset(), money.Default())))
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRecordRingBuffer(t *testing.T) {
	s := newService(Config{HistorySize: 2})

	s.record(Exchange{Question: "a"})
	s.record(Exchange{Question: "b"})
	s.record(Exchange{Question: "c"})

	h := s.snapshotHistory()
	require.Len(t, h, 2)
	assert.Equal(t, int64(2), h[0].ID)
	assert.Equal(t, "c", h[1].Question)
}

func TestAsk_GetAndPost(t *testing.T) {
	s := newService(Config{})
	h := s.Handler()

	rec := do(t, h, http.MethodGet, "/v1/ask?q=What+was+the+profit+in+May%3F", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	var resp query.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, query.IntentProfit, resp.Intent)
	assert.Contains(t, resp.Answer, "May-23")

	rec = do(t, h, http.MethodPost, "/v1/ask", `{"question":"hello there"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, query.HelpText, resp.Answer)

	hist := s.snapshotHistory()
	require.Len(t, hist, 2)
	assert.Equal(t, query.IntentHelp, hist[1].Intent)
	assert.NotEmpty(t, hist[0].RequestID)
}

func TestAsk_BadRequests(t *testing.T) {
	h := newService(Config{}).Handler()

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/v1/ask", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/v1/ask", "{").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/v1/ask", `{"question":"  "}`).Code)
}

func TestQuarterEndpoints(t *testing.T) {
	h := newService(Config{}).Handler()

	rec := do(t, h, http.MethodGet, "/v1/quarters/q1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var agg model.QuarterAggregate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &agg))
	assert.Equal(t, int64(1455000), agg.TotalSales)
	assert.Equal(t, int64(455000), agg.TotalProfit)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/v1/quarters/Q5", "").Code)

	rec = do(t, h, http.MethodGet, "/v1/quarters", "")
	var cmp model.QuarterComparison
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cmp))
	assert.Equal(t, model.Q4, cmp.Best)
}

func TestSuggestionsEndpoint(t *testing.T) {
	h := newService(Config{}).Handler()

	rec := do(t, h, http.MethodGet, "/v1/months/mar/suggestions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), pipeline.OptimalPerformance)

	rec = do(t, h, http.MethodGet, "/v1/months/xyz/suggestions", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No data found for month: xyz")
}

func TestSummaryInsightsMonths(t *testing.T) {
	h := newService(Config{}).Handler()

	var sum model.Summary
	require.NoError(t, json.Unmarshal(do(t, h, http.MethodGet, "/v1/summary", "").Body.Bytes(), &sum))
	assert.Equal(t, sum.TotalSales-sum.TotalExpenses, sum.TotalProfit)

	var insights []string
	require.NoError(t, json.Unmarshal(do(t, h, http.MethodGet, "/v1/insights", "").Body.Bytes(), &insights))
	assert.Len(t, insights, 6)

	var months []model.Record
	require.NoError(t, json.Unmarshal(do(t, h, http.MethodGet, "/v1/months", "").Body.Bytes(), &months))
	assert.Len(t, months, 12)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/v1/nope", "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newService(Config{}).Handler()
	do(t, h, http.MethodGet, "/v1/ask?q=total+sales", "")

	body := do(t, h, http.MethodGet, "/metrics", "").Body.String()
	assert.Contains(t, body, `bizlens_questions_total{intent="sales"} 1`)
	assert.Contains(t, body, `bizlens_questions_total{intent="help"} 0`)
	assert.Contains(t, body, "bizlens_http_request_duration_seconds")
}

func TestStatus(t *testing.T) {
	s := newService(Config{})
	h := s.Handler()
	do(t, h, http.MethodGet, "/v1/ask?q=profit", "")

	var st Status
	require.NoError(t, json.Unmarshal(do(t, h, http.MethodGet, "/v1/status", "").Body.Bytes(), &st))
	assert.Equal(t, source.SampleSource, st.Source)
	assert.True(t, st.Synthetic)
	assert.Equal(t, 12, st.Months)
	assert.Equal(t, int64(1), st.Questions)
}

func TestServe_StreamAndShutdown(t *testing.T) {
	s := newService(Config{})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	base := "http://" + ln.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get(base + "/v1/stream")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	rd := bufio.NewReader(resp.Body)
	line, err := rd.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, ": connected\n", line)

	require.Eventually(t, func() bool { return s.snapshotStatus().SubscriberCount == 1 }, time.Second, 10*time.Millisecond)

	askResp, err := http.Get(base + "/v1/ask?q=total+expenses")
	require.NoError(t, err)
	_ = askResp.Body.Close()

	var data string
	for data == "" {
		line, err := rd.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "data: ") {
			data = strings.TrimPrefix(strings.TrimSpace(line), "data: ")
		}
	}
	var ex Exchange
	require.NoError(t, json.Unmarshal([]byte(data), &ex))
	assert.Equal(t, query.IntentExpenses, ex.Intent)
	assert.Equal(t, "Total expenses: ₹4860000", ex.Answer)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
