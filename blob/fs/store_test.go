package fs

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/poiesic/melodex/blob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	payload := []byte("\x00\x01binary audio payload\xff\xfe")

	id, err := store.Upload(ctx, "track.mp3", payload)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	_, err = uuid.Parse(id)
	require.NoError(t, err, "blob id must be a uuid")

	var sink bytes.Buffer
	require.NoError(t, store.Download(ctx, id, &sink))
	assert.Equal(t, payload, sink.Bytes(), "downloaded bytes must be byte-for-byte identical")
}

func TestStore_Upload(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("distinct ids for identical payloads", func(t *testing.T) {
		a, err := store.Upload(ctx, "a.mp3", []byte("same"))
		require.NoError(t, err)
		b, err := store.Upload(ctx, "a.mp3", []byte("same"))
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("empty payload rejected", func(t *testing.T) {
		_, err := store.Upload(ctx, "empty.mp3", nil)
		assert.ErrorIs(t, err, blob.ErrEmptyPayload)
	})
}

func TestStore_Download(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		var sink bytes.Buffer
		err := store.Download(ctx, uuid.New().String(), &sink)
		assert.ErrorIs(t, err, blob.ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		var sink bytes.Buffer
		err := store.Download(ctx, "not-a-uuid", &sink)
		assert.ErrorIs(t, err, blob.ErrInvalidID)
	})
}

func TestNewStore_RequiresRoot(t *testing.T) {
	_, err := NewStore("")
	assert.Error(t, err)
}
