package retrieval

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaEmbedder_Embed(t *testing.T) {
	var got []embedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/embeddings", r.URL.Path)
		var req embedRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		got = append(got, req)
		_ = json.NewEncoder(w).Encode(embedResponse{Embedding: []float64{0.5, float64(len(req.Prompt))}})
	}))
	defer srv.Close()

	emb := NewOllamaEmbedder(srv.URL+"/", "nomic-embed-text", time.Second)
	vecs, err := emb.Embed(context.Background(), []string{"a", "bbb"})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{0.5, 1}, {0.5, 3}}, vecs)
	require.Len(t, got, 2)
	assert.Equal(t, "nomic-embed-text", got[0].Model)
}

func TestOllamaEmbedder_Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"model not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewOllamaEmbedder(srv.URL, "missing", time.Second).Embed(context.Background(), []string{"x"})
	var se *StatusError
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Contains(t, se.Body, "model not found")
}

func TestOllamaEmbedder_Unreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = NewOllamaEmbedder("http://"+addr, "m", time.Second).Embed(context.Background(), []string{"x"})
	var ue *UnreachableError
	require.True(t, errors.As(err, &ue), "got %v", err)
	assert.Equal(t, "http://"+addr, ue.Host)
}
