package ai

import (
	"context"

	"github.com/skillsift/skillsift/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// FilterExtractor turns a free-text query into a structured, partial
// QueryFilter. Implementations must be thread-safe and stateless between
// calls.
//
// The contract is strict: a field absent from the query must be absent from
// the filter (not null, not empty), and extraction failure must never abort
// the caller's query. When the model call fails or returns unparseable
// output, implementations log and return an empty filter, degrading the
// search to pure semantic similarity.
type FilterExtractor interface {
	ExtractFilter(ctx context.Context, query string) (*core.QueryFilter, error)
}

// FieldExtractor extracts typed metadata values from the raw free-text fields
// of scraped catalog records. Implementations must be thread-safe.
//
// Every method must tolerate a failed or empty model response without
// returning an error: each has a deterministic regex/split-based fallback or
// passes the raw input through. The model call is the least reliable
// dependency in the pipeline; the fallbacks are mandatory, not optional.
type FieldExtractor interface {
	// ExtractMinutes extracts a duration in minutes. Falls back to the first
	// run of digits in the text; 0 when nothing can be extracted.
	ExtractMinutes(ctx context.Context, text string) int

	// ExtractLanguages extracts lowercase bare language names with regional
	// parenthetical suffixes stripped. Falls back to comma splitting.
	ExtractLanguages(ctx context.Context, text string) []string

	// ExtractJobLevels extracts job level names. Falls back to comma splitting.
	ExtractJobLevels(ctx context.Context, text string) []string

	// ExtractAssessmentType extracts a single type string; raw text on failure.
	ExtractAssessmentType(ctx context.Context, text string) string

	// ExtractSupportFlag extracts a boolean support flag ("0"/"1" from the
	// model). The label distinguishes adaptive from remote support in the
	// prompt. Returns the raw text when the model output cannot be read.
	ExtractSupportFlag(ctx context.Context, label, text string) string
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Embedder,
// FilterExtractor and FieldExtractor instances, ensuring they share
// configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// FilterExtractor returns the query metadata extraction service.
	FilterExtractor() FilterExtractor

	// FieldExtractor returns the ingestion metadata extraction service.
	FieldExtractor() FieldExtractor

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
