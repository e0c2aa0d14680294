package search

import (
	"math"
	"testing"

	"github.com/poiesic/melodex/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical nonzero vector scores 1", func(t *testing.T) {
		v := []float32{0.3, 0.5, 0.2}
		score, err := CosineSimilarity(v, v)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, score, 1e-9)
	})

	t.Run("orthogonal vectors score 0", func(t *testing.T) {
		score, err := CosineSimilarity([]float32{1, 0}, []float32{0, 1})
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
	})

	t.Run("zero magnitude scores 0, never NaN", func(t *testing.T) {
		score, err := CosineSimilarity([]float32{0, 0}, []float32{1, 1})
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
		assert.False(t, math.IsNaN(score))

		score, err = CosineSimilarity([]float32{1, 1}, []float32{0, 0})
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
	})

	t.Run("opposite vectors score -1", func(t *testing.T) {
		score, err := CosineSimilarity([]float32{1, 0}, []float32{-1, 0})
		require.NoError(t, err)
		assert.InDelta(t, -1.0, score, 1e-9)
	})

	t.Run("dimension mismatch is an error", func(t *testing.T) {
		_, err := CosineSimilarity([]float32{1, 0}, []float32{1, 0, 0})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})
}

func rankCorpus() []*core.MediaRecord {
	return []*core.MediaRecord{
		{SourceKey: "a", Embedding: []float32{1, 0}},
		{SourceKey: "b", Embedding: []float32{0, 1}},
		{SourceKey: "c", Embedding: []float32{1, 1}},
	}
}

func TestRank(t *testing.T) {
	t.Run("ranked scenario", func(t *testing.T) {
		results, err := Rank([]float32{1, 0}, rankCorpus(), 2)
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.Equal(t, "a", results[0].Record.SourceKey)
		assert.InDelta(t, 1.0, results[0].Score, 1e-9)

		assert.Equal(t, "c", results[1].Record.SourceKey)
		assert.InDelta(t, 0.7071, results[1].Score, 1e-3)
	})

	t.Run("k larger than corpus", func(t *testing.T) {
		results, err := Rank([]float32{1, 0}, rankCorpus(), 10)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("k zero yields empty", func(t *testing.T) {
		results, err := Rank([]float32{1, 0}, rankCorpus(), 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("negative k yields empty", func(t *testing.T) {
		results, err := Rank([]float32{1, 0}, rankCorpus(), -1)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("empty corpus", func(t *testing.T) {
		results, err := Rank([]float32{1, 0}, nil, 5)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("sorted non-increasing", func(t *testing.T) {
		results, err := Rank([]float32{0.7, 0.3}, rankCorpus(), 3)
		require.NoError(t, err)
		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
		}
	})

	t.Run("ties preserve corpus order", func(t *testing.T) {
		corpus := []*core.MediaRecord{
			{SourceKey: "first", Embedding: []float32{2, 0}},
			{SourceKey: "second", Embedding: []float32{3, 0}},
			{SourceKey: "third", Embedding: []float32{1, 0}},
		}
		results, err := Rank([]float32{1, 0}, corpus, 3)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "first", results[0].Record.SourceKey)
		assert.Equal(t, "second", results[1].Record.SourceKey)
		assert.Equal(t, "third", results[2].Record.SourceKey)
	})

	t.Run("mismatched record dimension aborts ranking", func(t *testing.T) {
		corpus := []*core.MediaRecord{
			{SourceKey: "ok", Embedding: []float32{1, 0}},
			{SourceKey: "bad", Embedding: []float32{1, 0, 0}},
		}
		_, err := Rank([]float32{1, 0}, corpus, 5)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("zero embedding record ranks last with score 0", func(t *testing.T) {
		corpus := []*core.MediaRecord{
			{SourceKey: "zero", Embedding: []float32{0, 0}},
			{SourceKey: "hit", Embedding: []float32{1, 0}},
		}
		results, err := Rank([]float32{1, 0}, corpus, 2)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "hit", results[0].Record.SourceKey)
		assert.Equal(t, 0.0, results[1].Score)
		assert.False(t, math.IsNaN(results[1].Score))
	})
}
