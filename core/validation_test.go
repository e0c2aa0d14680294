package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() *MediaRecord {
	return &MediaRecord{
		SourceKey: "https://example.com/tracks/1.mp3",
		BlobId:    "5f0c54f0-53a1-4c3f-9e30-7f2d3f4a1d11",
		Filename:  "1.mp3",
		Summary:   "a song",
		Embedding: []float32{0.1, 0.2, 0.3},
		CreatedAt: time.Now().UTC(),
	}
}

func TestValidateMediaRecord(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		require.NoError(t, ValidateMediaRecord(validRecord(), 3))
	})

	t.Run("zero dimension skips dimension check", func(t *testing.T) {
		require.NoError(t, ValidateMediaRecord(validRecord(), 0))
	})

	t.Run("nil record", func(t *testing.T) {
		err := ValidateMediaRecord(nil, 3)
		assert.ErrorIs(t, err, ErrInvalidMediaRecord)
	})

	t.Run("empty source key", func(t *testing.T) {
		record := validRecord()
		record.SourceKey = ""
		err := ValidateMediaRecord(record, 3)
		assert.ErrorIs(t, err, ErrEmptySourceKey)
	})

	t.Run("empty blob id", func(t *testing.T) {
		record := validRecord()
		record.BlobId = ""
		err := ValidateMediaRecord(record, 3)
		assert.ErrorIs(t, err, ErrEmptyBlobId)
	})

	t.Run("empty embedding", func(t *testing.T) {
		record := validRecord()
		record.Embedding = nil
		err := ValidateMediaRecord(record, 3)
		assert.ErrorIs(t, err, ErrEmptyEmbedding)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		record := validRecord()
		err := ValidateMediaRecord(record, 4)
		assert.ErrorIs(t, err, ErrEmbeddingDimension)
		assert.ErrorIs(t, err, ErrInvalidMediaRecord)
	})
}
