package storage

import (
	"context"

	"github.com/skillsift/skillsift/core"
)

// Candidate is one ranked hit from a similarity query: the raw stored shape.
// Metadata values come back exactly as stored (list fields are JSON-encoded
// strings, numbers may be floats after the envelope round trip), so readers
// must parse tolerantly via the core coercion helpers.
type Candidate struct {
	Metadata map[string]any
	Text     string
	Score    float32
}

// Repository provides common storage operations shared across repositories.
// Implementations must be thread-safe: one long-lived repository handle is
// shared by every in-flight search pipeline.
type Repository interface {
	// QuerySimilar finds stored assessments similar to the given vector,
	// restricted to records satisfying the predicate filter. A nil filter
	// performs an unfiltered semantic search. Results are ordered by
	// similarity score (highest first), at most topK of them.
	QuerySimilar(ctx context.Context, vector []float32, filter *Filter, topK int) ([]*Candidate, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// AssessmentRepository provides operations for managing assessment records.
type AssessmentRepository interface {
	Repository

	// UpsertAssessments stores one or more assessment records. IDs are
	// derived from record identity (title+url), so re-ingesting a record
	// replaces the stored copy. Sets InsertedAt/UpdatedAt timestamps.
	UpsertAssessments(ctx context.Context, records ...*core.AssessmentRecord) ([]*core.AssessmentRecord, error)

	// GetAssessment retrieves a single assessment record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetAssessment(ctx context.Context, id core.ID) (*core.AssessmentRecord, error)

	// GetAssessments retrieves multiple assessment records by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetAssessments(ctx context.Context, ids ...core.ID) ([]*core.AssessmentRecord, error)

	// DeleteAssessments removes assessment records by their IDs.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteAssessments(ctx context.Context, ids ...core.ID) error

	// CountAssessments returns the number of stored assessment records.
	CountAssessments(ctx context.Context) (int, error)
}
