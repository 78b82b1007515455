package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/skillsift/skillsift/ai"
	"github.com/skillsift/skillsift/core"
	"github.com/skillsift/skillsift/storage"
)

// Pipeline orchestrates catalog ingestion: concurrent metadata
// normalization, batch embedding of descriptions, and a single upsert.
type Pipeline struct {
	repository storage.AssessmentRepository
	embedder   ai.Embedder
	normalizer *Normalizer
	pool       *ants.Pool
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent normalization.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	repository storage.AssessmentRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository: repository,
		embedder:   provider.Embedder(),
		pool:       pool,
		logger:     slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	p.normalizer = NewNormalizer(provider.FieldExtractor(), p.logger)

	return p, nil
}

// IngestFile loads a scraped catalog file and ingests its records.
// Returns the number of records stored.
func (p *Pipeline) IngestFile(ctx context.Context, path string) (int, error) {
	records, err := LoadRawRecords(path)
	if err != nil {
		return 0, err
	}
	return p.Ingest(ctx, records)
}

// Ingest normalizes, embeds and stores a batch of scraped records.
// Normalization runs concurrently on the worker pool; each field extractor
// degrades to heuristics on model failure, so per-record work never fails.
// Records that fail validation are logged and skipped. Returns the number
// of records stored.
func (p *Pipeline) Ingest(ctx context.Context, raws []*RawRecord) (int, error) {
	if len(raws) == 0 {
		return 0, nil
	}

	// Normalize concurrently; results keep input order.
	normalized := make([]*core.AssessmentRecord, len(raws))
	var wg sync.WaitGroup
	for i, raw := range raws {
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			normalized[i] = p.normalizer.Normalize(ctx, raw)
		})
		if err != nil {
			// Pool rejected the task; normalize inline.
			normalized[i] = p.normalizer.Normalize(ctx, raw)
			wg.Done()
		}
	}
	wg.Wait()

	// Drop records that do not validate.
	kept := make([]*core.AssessmentRecord, 0, len(normalized))
	for _, record := range normalized {
		if err := core.ValidateAssessmentRecord(record); err != nil {
			p.logger.Warn("skipping invalid record", "title", record.Title, "url", record.URL, "err", err)
			continue
		}
		kept = append(kept, record)
	}
	if len(kept) == 0 {
		return 0, nil
	}

	// Batch-embed descriptions.
	texts := make([]string, len(kept))
	for i, record := range kept {
		texts[i] = record.Description
	}
	vectors, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return 0, err
	}
	if len(vectors) != len(kept) {
		return 0, fmt.Errorf("%w: got %d for %d records", ErrVectorCountMismatch, len(vectors), len(kept))
	}
	for i, record := range kept {
		record.Vector = vectors[i]
	}

	if _, err := p.repository.UpsertAssessments(ctx, kept...); err != nil {
		return 0, err
	}

	p.logger.Info("ingested catalog records", "received", len(raws), "stored", len(kept))
	return len(kept), nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
