package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/melodex/core"
	"github.com/poiesic/melodex/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) storage.MediaRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func testRecord(sourceKey string) *core.MediaRecord {
	return &core.MediaRecord{
		SourceKey:   sourceKey,
		BlobId:      "9ee0a3c8-8e5c-4f3e-bb1d-111111111111",
		Filename:    "track.mp3",
		Language:    "English",
		LanguageIso: "en",
		Summary:     "a song",
		Keywords:    []string{"rain"},
		Moods:       []string{"calm"},
		Themes:      []string{"weather"},
		Flags:       []byte(`{}`),
		Embedding:   []float32{0.1, 0.2, 0.3},
	}
}

func TestMediaRepository_AddAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	record := testRecord("https://example.com/tracks/1.mp3")
	added, err := repo.AddMediaRecord(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, core.IDFromSourceKey(record.SourceKey), added.Id)
	assert.False(t, added.CreatedAt.IsZero())

	got, err := repo.GetMediaRecord(ctx, added.Id)
	require.NoError(t, err)
	assert.Equal(t, record.SourceKey, got.SourceKey)
	assert.Equal(t, record.BlobId, got.BlobId)
	assert.Equal(t, record.Keywords, got.Keywords)
	assert.Equal(t, record.Embedding, got.Embedding)

	bySource, err := repo.GetMediaRecordBySourceKey(ctx, record.SourceKey)
	require.NoError(t, err)
	assert.Equal(t, got.Id, bySource.Id)
}

func TestMediaRepository_Exists(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	t.Run("absent key is false, not an error", func(t *testing.T) {
		exists, err := repo.Exists(ctx, "https://example.com/absent.mp3")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("present after add", func(t *testing.T) {
		record := testRecord("https://example.com/tracks/2.mp3")
		_, err := repo.AddMediaRecord(ctx, record)
		require.NoError(t, err)

		exists, err := repo.Exists(ctx, record.SourceKey)
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestMediaRepository_DuplicateKey(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	record := testRecord("https://example.com/tracks/3.mp3")
	_, err := repo.AddMediaRecord(ctx, record)
	require.NoError(t, err)

	_, err = repo.AddMediaRecord(ctx, testRecord(record.SourceKey))
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	all, err := repo.AllMediaRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "duplicate insert must not grow the corpus")
}

func TestMediaRepository_UpdateMediaRecords(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	t.Run("updates embedding", func(t *testing.T) {
		record := testRecord("https://example.com/tracks/4.mp3")
		added, err := repo.AddMediaRecord(ctx, record)
		require.NoError(t, err)

		added.Embedding = []float32{0.9, 0.8, 0.7, 0.6}
		_, err = repo.UpdateMediaRecords(ctx, added)
		require.NoError(t, err)

		got, err := repo.GetMediaRecord(ctx, added.Id)
		require.NoError(t, err)
		assert.Equal(t, []float32{0.9, 0.8, 0.7, 0.6}, got.Embedding)
	})

	t.Run("unknown record", func(t *testing.T) {
		missing := testRecord("https://example.com/tracks/missing.mp3")
		missing.Id = core.IDFromSourceKey(missing.SourceKey)
		_, err := repo.UpdateMediaRecords(ctx, missing)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestMediaRepository_AllMediaRecords(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	all, err := repo.AllMediaRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	keys := []string{
		"https://example.com/tracks/a.mp3",
		"https://example.com/tracks/b.mp3",
		"https://example.com/tracks/c.mp3",
	}
	for _, key := range keys {
		_, err := repo.AddMediaRecord(ctx, testRecord(key))
		require.NoError(t, err)
	}

	all, err = repo.AllMediaRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(keys))
}

func TestMediaRepository_GetMediaRecord_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetMediaRecord(context.Background(), core.ID(12345))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMediaRecord_CreatedAtPreserved(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	record := testRecord("https://example.com/tracks/ts.mp3")
	record.CreatedAt = created

	added, err := repo.AddMediaRecord(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, created, added.CreatedAt)

	got, err := repo.GetMediaRecord(ctx, added.Id)
	require.NoError(t, err)
	assert.Equal(t, created.UnixMicro(), got.CreatedAt.UnixMicro())
}
