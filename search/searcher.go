package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skillsift/skillsift/ai"
	"github.com/skillsift/skillsift/core"
	"github.com/skillsift/skillsift/storage"
)

// Searcher coordinates a retrieval request: filter extraction, query
// embedding, the filtered similarity search, and reconciliation of the raw
// candidates into match results.
type Searcher struct {
	repository storage.AssessmentRepository
	embedder   ai.Embedder
	extractor  ai.FilterExtractor
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	repository storage.AssessmentRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Searcher, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &Searcher{
		repository: repository,
		embedder:   provider.Embedder(),
		extractor:  provider.FilterExtractor(),
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search finds assessments relevant to the query text.
// Returns up to topK results in the storage engine's ranking order.
func (s *Searcher) Search(ctx context.Context, query string, topK int) ([]*core.MatchResult, error) {
	return s.SearchWithMonitor(ctx, query, topK, nil)
}

// SearchWithMonitor runs a search with stage callbacks.
// The pipeline is: extract filter, embed query, build predicates, one
// similarity query, then the authoritative job-level post-filter. Filter
// extraction failure degrades to unfiltered semantic search; embedding or
// storage failure is fatal to the request.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, topK int, monitor SearchMonitor) ([]*core.MatchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	// 1. Extract structured filters from the query text.
	// The extractor degrades to an empty filter internally, but guard
	// against implementations that surface errors anyway.
	queryFilter, err := s.extractor.ExtractFilter(ctx, query)
	if err != nil {
		s.logger.Warn("filter extraction failed, continuing unfiltered", "query", query, "err", err)
		queryFilter = &core.QueryFilter{}
	}
	if queryFilter == nil {
		queryFilter = &core.QueryFilter{}
	}
	monitor.AfterFilterExtraction(queryFilter)

	// 2. Embed the query. No embedding, no search.
	embedding, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
	}

	// 3. Build the predicate tree. Nil means unfiltered.
	filter := BuildFilter(queryFilter)

	// 4. One ranked similarity query.
	candidates, err := s.repository.QuerySimilar(ctx, embedding, filter, topK)
	if err != nil {
		s.logger.Error("error querying for similar assessments", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrStorageQueryFailed, err)
	}
	monitor.AfterVectorSearch(candidates)

	// 5.-6. Post-filter on job levels and reshape. Order is preserved.
	requested := normalizeLevels(queryFilter.JobLevels)
	results := make([]*core.MatchResult, 0, len(candidates))
	for _, candidate := range candidates {
		storedLevels := core.CoerceToStringList(candidate.Metadata[storage.FieldJobLevels])
		if len(requested) > 0 && !levelsIntersect(normalizeLevels(storedLevels), requested) {
			monitor.CandidateDropped(titleOf(candidate), storedLevels)
			continue
		}
		results = append(results, reshapeCandidate(candidate, storedLevels))
	}

	monitor.Finish(results)
	return results, nil
}

// normalizeLevels normalizes a list of job levels, dropping empties.
func normalizeLevels(levels []string) []string {
	out := make([]string, 0, len(levels))
	for _, level := range levels {
		if n := core.NormalizeJobLevel(level); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// levelsIntersect reports whether any stored level equals any requested
// level. Both sides are already normalized.
func levelsIntersect(stored, requested []string) bool {
	for _, s := range stored {
		for _, r := range requested {
			if s == r {
				return true
			}
		}
	}
	return false
}

// reshapeCandidate converts one raw storage candidate into a MatchResult,
// reading every metadata field through the core coercions. storedLevels is
// the already-parsed job level list so the post-filter and the result agree.
func reshapeCandidate(candidate *storage.Candidate, storedLevels []string) *core.MatchResult {
	md := candidate.Metadata

	languages := core.CoerceToStringList(md[storage.FieldLanguages])

	result := &core.MatchResult{
		Title:           titleOf(candidate),
		URL:             stringField(md[storage.FieldURL]),
		Description:     candidate.Text,
		JobLevels:       storedLevels,
		Languages:       languages,
		DurationMinutes: core.CoerceInt(md[storage.FieldDuration], 0),
		AssessmentType:  stringField(md[storage.FieldAssessmentType]),
		AdaptiveSupport: core.CoerceBool(md[storage.FieldAdaptive]),
		RemoteSupport:   core.CoerceBool(md[storage.FieldRemote]),
		SimilarityScore: candidate.Score,
	}
	return result
}

func titleOf(candidate *storage.Candidate) string {
	return stringField(candidate.Metadata[storage.FieldTitle])
}

func stringField(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
