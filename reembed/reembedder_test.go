package reembed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/melodex/ai/mock"
	"github.com/poiesic/melodex/core"
	"github.com/poiesic/melodex/storage"
	"github.com/poiesic/melodex/storage/badger"
)

func newTestRepository(t *testing.T) storage.MediaRepository {
	t.Helper()
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })
	return repo
}

func seedRecords(t *testing.T, repo storage.MediaRepository, n, dimension int) []*core.MediaRecord {
	t.Helper()
	ctx := context.Background()

	records := make([]*core.MediaRecord, 0, n)
	for i := 0; i < n; i++ {
		embedding := make([]float32, dimension)
		embedding[0] = 1
		record, err := repo.AddMediaRecord(ctx, &core.MediaRecord{
			SourceKey: fmt.Sprintf("https://cdn.example.com/tracks/%d.flac", i),
			BlobId:    fmt.Sprintf("blob-%d", i),
			Summary:   fmt.Sprintf("summary %d", i),
			Keywords:  []string{"keyword"},
			Embedding: embedding,
		})
		require.NoError(t, err)
		records = append(records, record)
	}
	return records
}

func testConfig() *Config {
	return &Config{
		BatchSize:      3,
		ReportInterval: 5,
		MaxRetries:     2,
		RetryDelay:     time.Millisecond,
		PoolSize:       2,
	}
}

func TestReembedder_Run(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	seedRecords(t, repo, 10, 4)

	embedder := mock.NewMockEmbedder()
	embedder.Dimension = 8

	var out bytes.Buffer
	reembedder := NewReembedder(repo, embedder, testConfig(), &out)
	require.NoError(t, reembedder.Run(ctx))

	all, err := repo.AllMediaRecords(ctx)
	require.NoError(t, err)
	require.Len(t, all, 10)
	for _, record := range all {
		assert.Len(t, record.Embedding, 8, "record %d should carry the new dimension", record.Id)
	}
	assert.Contains(t, out.String(), "Reembedding complete")
}

func TestReembedder_Run_EmptyCorpus(t *testing.T) {
	repo := newTestRepository(t)

	var out bytes.Buffer
	reembedder := NewReembedder(repo, mock.NewMockEmbedder(), testConfig(), &out)
	require.NoError(t, reembedder.Run(context.Background()))
	assert.Contains(t, out.String(), "No records found")
}

func TestReembedder_Run_EmbedderFailure(t *testing.T) {
	repo := newTestRepository(t)
	seedRecords(t, repo, 5, 4)

	boom := errors.New("model unavailable")
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, boom
	}

	var out bytes.Buffer
	reembedder := NewReembedder(repo, embedder, testConfig(), &out)
	err := reembedder.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	// Failed run must leave the stored embeddings untouched.
	all, err := repo.AllMediaRecords(context.Background())
	require.NoError(t, err)
	for _, record := range all {
		assert.Len(t, record.Embedding, 4)
	}
}

func TestReembedder_Run_ContextCanceled(t *testing.T) {
	repo := newTestRepository(t)
	seedRecords(t, repo, 5, 4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	reembedder := NewReembedder(repo, mock.NewMockEmbedder(), testConfig(), &out)
	err := reembedder.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatchProcessor_Process(t *testing.T) {
	ctx := context.Background()

	t.Run("updates embeddings from recomposed text", func(t *testing.T) {
		repo := newTestRepository(t)
		records := seedRecords(t, repo, 2, 4)

		var embeddedTexts []string
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			embeddedTexts = texts
			out := make([][]float32, len(texts))
			for i := range out {
				out[i] = []float32{1, 2}
			}
			return out, nil
		}

		processor := NewBatchProcessor(repo, embedder, 1, time.Millisecond)
		require.NoError(t, processor.Process(ctx, records))

		require.Len(t, embeddedTexts, 2)
		assert.Equal(t, records[0].EmbeddingText(), embeddedTexts[0])

		stored, err := repo.GetMediaRecord(ctx, records[0].Id)
		require.NoError(t, err)
		assert.Equal(t, []float32{1, 2}, stored.Embedding)
	})

	t.Run("rejects mismatched dimensions within a run", func(t *testing.T) {
		repo := newTestRepository(t)
		records := seedRecords(t, repo, 2, 4)

		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return [][]float32{{1, 2}, {1, 2, 3}}, nil
		}

		processor := NewBatchProcessor(repo, embedder, 1, time.Millisecond)
		err := processor.Process(ctx, records)
		assert.ErrorIs(t, err, ErrDimensionDrift)
	})

	t.Run("rejects count mismatch", func(t *testing.T) {
		repo := newTestRepository(t)
		records := seedRecords(t, repo, 2, 4)

		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return [][]float32{{1, 2}}, nil
		}

		processor := NewBatchProcessor(repo, embedder, 1, time.Millisecond)
		err := processor.Process(ctx, records)
		assert.ErrorContains(t, err, "embedding count mismatch")
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		repo := newTestRepository(t)
		processor := NewBatchProcessor(repo, mock.NewMockEmbedder(), 1, time.Millisecond)
		assert.NoError(t, processor.Process(ctx, nil))
	})
}
