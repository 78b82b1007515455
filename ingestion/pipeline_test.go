package ingestion

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsift/skillsift/ai/mock"
	"github.com/skillsift/skillsift/core"
	"github.com/skillsift/skillsift/storage/badger"
)

func TestNewPipeline(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	provider := mock.NewMockProvider()

	t.Run("valid configuration", func(t *testing.T) {
		pipeline, err := NewPipeline(repo, provider)
		require.NoError(t, err)
		defer pipeline.Release()
		assert.NotNil(t, pipeline)
	})

	t.Run("with pool size", func(t *testing.T) {
		pipeline, err := NewPipeline(repo, provider, WithPoolSize(4))
		require.NoError(t, err)
		defer pipeline.Release()
		assert.NotNil(t, pipeline)
	})

	t.Run("pool size below one clamps", func(t *testing.T) {
		pipeline, err := NewPipeline(repo, provider, WithPoolSize(0))
		require.NoError(t, err)
		defer pipeline.Release()
		assert.NotNil(t, pipeline)
	})

	t.Run("nil repository", func(t *testing.T) {
		_, err := NewPipeline(nil, provider)
		assert.Equal(t, ErrRepositoryRequired, err)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewPipeline(repo, nil)
		assert.Equal(t, ErrAIProviderRequired, err)
	})
}

func TestIngest(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	pipeline, err := NewPipeline(repo, mock.NewMockProvider(), WithPoolSize(2))
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()

	raws := []*RawRecord{
		{
			Title:            "Verify Numerical Reasoning",
			URL:              "https://example.com/verify-numerical",
			Description:      "Measures numerical reasoning ability.",
			JobLevels:        "Entry-Level, Graduate",
			Languages:        "English (USA)",
			AssessmentLength: "18 minutes",
		},
		{
			Title:            "Coding Simulation",
			URL:              "https://example.com/coding-sim",
			Description:      "Hands-on coding exercise.",
			JobLevels:        "Mid-Professional",
			Languages:        "English",
			AssessmentLength: "45",
		},
	}

	stored, err := pipeline.Ingest(ctx, raws)
	require.NoError(t, err)
	assert.Equal(t, 2, stored)

	count, err := repo.CountAssessments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	id := core.IDFromContent("Verify Numerical Reasoning|https://example.com/verify-numerical")
	record, err := repo.GetAssessment(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Entry-Level", "Graduate"}, record.JobLevels)
	assert.Equal(t, []string{"english"}, record.Languages)
	assert.Equal(t, 18, record.DurationMinutes)
	assert.NotEmpty(t, record.Vector)
}

func TestIngestSkipsInvalid(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	pipeline, err := NewPipeline(repo, mock.NewMockProvider())
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()

	raws := []*RawRecord{
		{Title: "", URL: "https://example.com/untitled", Description: "no title"},
		{Title: "Kept", URL: "https://example.com/kept", Description: "valid record"},
	}

	stored, err := pipeline.Ingest(ctx, raws)
	require.NoError(t, err)
	assert.Equal(t, 1, stored)

	count, err := repo.CountAssessments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestIngestEmbeddingFailure(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	provider := mock.NewMockProvider()
	mockProvider := provider.(*mock.MockProvider)
	mockProvider.GetMockEmbedder().EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("embedding service down")
	}

	pipeline, err := NewPipeline(repo, provider)
	require.NoError(t, err)
	defer pipeline.Release()

	raws := []*RawRecord{{Title: "t", URL: "https://example.com/t", Description: "d"}}
	_, err = pipeline.Ingest(context.Background(), raws)
	assert.Error(t, err)

	count, err := repo.CountAssessments(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestIngestVectorCountMismatch(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	provider := mock.NewMockProvider()
	mockProvider := provider.(*mock.MockProvider)
	mockProvider.GetMockEmbedder().EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		// One vector short of the batch.
		vectors := make([][]float32, 0, len(texts)-1)
		for _, text := range texts[:len(texts)-1] {
			vectors = append(vectors, mock.DeterministicVector(text, 384))
		}
		return vectors, nil
	}

	pipeline, err := NewPipeline(repo, provider)
	require.NoError(t, err)
	defer pipeline.Release()

	raws := []*RawRecord{
		{Title: "First", URL: "https://example.com/first", Description: "first description"},
		{Title: "Second", URL: "https://example.com/second", Description: "second description"},
	}
	_, err = pipeline.Ingest(context.Background(), raws)
	assert.ErrorIs(t, err, ErrVectorCountMismatch)

	// Nothing may be stored without its vector.
	count, err := repo.CountAssessments(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestIngestEmptyBatch(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	pipeline, err := NewPipeline(repo, mock.NewMockProvider())
	require.NoError(t, err)
	defer pipeline.Release()

	stored, err := pipeline.Ingest(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, stored)
}

func TestIngestIsIdempotent(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	pipeline, err := NewPipeline(repo, mock.NewMockProvider())
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()
	raws := []*RawRecord{{Title: "Same", URL: "https://example.com/same", Description: "d"}}

	for i := 0; i < 2; i++ {
		_, err := pipeline.Ingest(ctx, raws)
		require.NoError(t, err)
	}

	count, err := repo.CountAssessments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDecodeRawRecords(t *testing.T) {
	payload := `[
		{"Title": "A", "URL": "https://example.com/a", "Description": "desc",
		 "Job Levels": "Entry-Level", "Languages": "English",
		 "Assessment Length": "30 minutes", "Remote Support": "Yes"}
	]`

	records, err := DecodeRawRecords(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "A", records[0].Title)
	assert.Equal(t, "Entry-Level", records[0].JobLevels)
	assert.Equal(t, "Yes", records[0].RemoteSupport)

	_, err = DecodeRawRecords(strings.NewReader("not json"))
	assert.Error(t, err)
}

func TestIngestFile(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	pipeline, err := NewPipeline(repo, mock.NewMockProvider())
	require.NoError(t, err)
	defer pipeline.Release()

	path := filepath.Join(t.TempDir(), "catalog.json")
	payload := `[{"Title": "From File", "URL": "https://example.com/file", "Description": "d"}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	stored, err := pipeline.IngestFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, stored)

	_, err = pipeline.IngestFile(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
