package retrieval

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/bizlens/internal/money"
	"github.com/theirongolddev/bizlens/internal/source"
)

// fakeEmbedder puts weight on one dimension per vocabulary term found in
// the text.
type fakeEmbedder struct {
	vocab []string
	calls atomic.Int64
	fail  string
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	f.calls.Add(1)
	out := make([][]float32, len(texts))
	for i, t := range texts {
		lt := strings.ToLower(t)
		if f.fail != "" && strings.Contains(lt, f.fail) {
			return nil, errors.New("boom")
		}
		v := make([]float32, len(f.vocab))
		for d, w := range f.vocab {
			if strings.Contains(lt, w) {
				v[d] = 1
			}
		}
		out[i] = v
	}
	return out, nil
}

var monthVocab = []string{"jan-23", "feb-23", "mar-23", "apr-23", "may-23", "jun-23", "jul-23", "aug-23", "sep-23", "oct-23", "nov-23", "dec-23"}

func TestDocuments_Sample(t *testing.T) {
	docs := Documents(source.SampleDataset(), money.Default())
	require.Len(t, docs, 12)
	assert.Equal(t, "May-23", docs[4].Month)
	assert.Contains(t, docs[4].Text, "Month: May-23. Quarter: Q2.")
	assert.Contains(t, docs[4].Text, "profit ₹235000")
	assert.Contains(t, docs[4].Text, "Marketing Spend ₹42000.")
	assert.Contains(t, docs[4].Text, "Customer retention 90.2%.")
}

func TestBuildAndQuery(t *testing.T) {
	emb := &fakeEmbedder{vocab: monthVocab}
	docs := Documents(source.SampleDataset(), money.Default())

	var last atomic.Int64
	idx, err := Build(context.Background(), emb, docs, BuildOptions{
		Workers:  4,
		Progress: func(cur, _ int) { last.Store(int64(cur)) },
	})
	require.NoError(t, err)
	assert.Equal(t, len(monthVocab), idx.Dim)
	assert.Equal(t, int64(12), emb.calls.Load())
	assert.Equal(t, int64(12), last.Load())
	assert.Equal(t, "Jan-23", idx.Records[0].Month, "records keep dataset order")

	hits, err := idx.Query(context.Background(), emb, "how did May-23 go", 3, 0.5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "May-23", hits[0].Month)
	assert.InDelta(t, 1.0, hits[0].Score, 1e-9)
}

func TestBuild_PropagatesError(t *testing.T) {
	emb := &fakeEmbedder{vocab: monthVocab, fail: "jul-23"}
	_, err := Build(context.Background(), emb, Documents(source.SampleDataset(), money.Default()), BuildOptions{Workers: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Jul-23")
}

func TestBuild_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Build(ctx, &fakeEmbedder{vocab: monthVocab}, Documents(source.SampleDataset(), money.Default()), BuildOptions{Workers: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearch_TopKAndTies(t *testing.T) {
	idx := &Index{Records: []Record{
		{Month: "a", Vector: []float32{1, 0}},
		{Month: "b", Vector: []float32{1, 0}},
		{Month: "c", Vector: []float32{0, 1}},
	}}
	hits := idx.Search([]float32{1, 0}, 2, 0)
	require.Len(t, hits, 2)
	assert.Equal(t, "a", hits[0].Month)
	assert.Equal(t, "b", hits[1].Month)

	assert.Empty(t, idx.Search([]float32{1, 0}, 0, 1.5))
}

func TestCosineSim(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSim([]float32{2, 0}, []float32{5, 0}), 1e-9)
	assert.Zero(t, CosineSim([]float32{1}, []float32{1, 0}))
	assert.Zero(t, CosineSim([]float32{0, 0}, []float32{1, 0}))
}
