package melodex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLibrary(t *testing.T) {
	t.Run("create new library", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_library")
		library, err := NewLibrary(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, library)
		defer library.Close()

		assert.NotNil(t, library.MediaRepository())
		assert.NotNil(t, library.BlobStore())
		assert.NotNil(t, library.backend)
		assert.NotNil(t, library.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// A file where the database directory should be
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		library, err := NewLibrary(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, library)
	})
}

func TestLibrary_Close(t *testing.T) {
	library, err := NewLibrary(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, library)

	err = library.Close()
	assert.NoError(t, err)
}

func TestLibrary_FactoryMethods(t *testing.T) {
	library, err := NewLibrary(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, library)
	defer library.Close()

	t.Run("can create ingestion pipeline", func(t *testing.T) {
		pipeline, err := library.NewIngestionPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
	})

	t.Run("can create searcher", func(t *testing.T) {
		searcher, err := library.NewSearcher()
		require.NoError(t, err)
		require.NotNil(t, searcher)
	})
}
