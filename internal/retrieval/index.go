// Package retrieval finds the months most similar to a free-text query
// using embedding vectors held in memory.
package retrieval

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
)

// Embedder turns texts into vectors, one per input.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Record is one embedded document.
type Record struct {
	Month  string    `json:"month"`
	Text   string    `json:"text"`
	Vector []float32 `json:"-"`
}

// Hit is a search result.
type Hit struct {
	Record
	Score float64 `json:"score"`
}

// Index is an in-memory set of embedded documents in dataset order.
type Index struct {
	Records []Record
	Dim     int
}

// ProgressFunc is called as documents finish embedding.
type ProgressFunc func(current, total int)

// BuildOptions tunes Build.
type BuildOptions struct {
	Workers  int
	Progress ProgressFunc
}

// Build embeds every document with a bounded worker pool. The first
// embedding error cancels the remaining work and is returned.
func Build(ctx context.Context, emb Embedder, docs []Document, opts BuildOptions) (*Index, error) {
	idx := &Index{Records: make([]Record, len(docs))}
	if len(docs) == 0 {
		return idx, nil
	}

	numWorkers := opts.Workers
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	if numWorkers > len(docs) {
		numWorkers = len(docs)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	work := make(chan int, len(docs))
	for i := range docs {
		work <- i
	}
	close(work)

	var (
		wg        sync.WaitGroup
		processed atomic.Int64
		errOnce   sync.Once
		firstErr  error
	)
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for i := range work {
				if ctx.Err() != nil {
					return
				}
				vecs, err := emb.Embed(ctx, []string{docs[i].Text})
				if err == nil && len(vecs) != 1 {
					err = fmt.Errorf("embedder returned %d vectors for 1 input", len(vecs))
				}
				if err != nil {
					errOnce.Do(func() {
						firstErr = fmt.Errorf("embedding %s: %w", docs[i].Month, err)
						cancel()
					})
					return
				}
				idx.Records[i] = Record{Month: docs[i].Month, Text: docs[i].Text, Vector: vecs[0]}
				n := processed.Add(1)
				if opts.Progress != nil {
					opts.Progress(int(n), len(docs))
				}
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if int(processed.Load()) != len(docs) {
		return nil, context.Cause(ctx)
	}
	idx.Dim = len(idx.Records[0].Vector)
	return idx, nil
}

// Search returns up to topK records scoring at least minScore, best first.
// Ties keep dataset order.
func (idx *Index) Search(query []float32, topK int, minScore float64) []Hit {
	hits := make([]Hit, 0, len(idx.Records))
	for _, r := range idx.Records {
		s := CosineSim(query, r.Vector)
		if s >= minScore {
			hits = append(hits, Hit{Record: r, Score: s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if topK > 0 && len(hits) > topK {
		hits = hits[:topK]
	}
	return hits
}

// Query embeds text and searches idx with it.
func (idx *Index) Query(ctx context.Context, emb Embedder, text string, topK int, minScore float64) ([]Hit, error) {
	vecs, err := emb.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vecs) != 1 {
		return nil, fmt.Errorf("embedder returned %d vectors for 1 input", len(vecs))
	}
	return idx.Search(vecs[0], topK, minScore), nil
}

// CosineSim is the cosine similarity of a and b, 0 when the dimensions
// differ or either vector is zero.
func CosineSim(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		fa, fb := float64(a[i]), float64(b[i])
		dot += fa * fb
		na += fa * fa
		nb += fb * fb
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
