package skillsift

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	t.Run("create new catalog", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		catalog, err := NewCatalog(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, catalog)
		defer catalog.Close()

		assert.NotNil(t, catalog.Repository())
		assert.NotNil(t, catalog.backend)
		assert.NotNil(t, catalog.provider)
		assert.NotNil(t, catalog.logger)
	})

	t.Run("in-memory catalog", func(t *testing.T) {
		catalog, err := NewCatalog("", WithInMemoryStorage())
		require.NoError(t, err)
		defer catalog.Close()
		assert.NotNil(t, catalog.Repository())
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// A file where the database directory should be
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		require.NoError(t, os.WriteFile(tmpFile, []byte("x"), 0644))

		catalog, err := NewCatalog(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, catalog)
	})
}

func TestCatalog_Close(t *testing.T) {
	catalog, err := NewCatalog("", WithInMemoryStorage())
	require.NoError(t, err)

	assert.NoError(t, catalog.Close())
}

func TestCatalog_FactoryMethods(t *testing.T) {
	catalog, err := NewCatalog("", WithInMemoryStorage())
	require.NoError(t, err)
	defer catalog.Close()

	t.Run("can create searcher", func(t *testing.T) {
		searcher, err := catalog.NewSearcher()
		require.NoError(t, err)
		require.NotNil(t, searcher)
	})

	t.Run("can create ingestion pipeline", func(t *testing.T) {
		pipeline, err := catalog.NewIngestionPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})
}
