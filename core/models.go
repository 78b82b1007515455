package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored catalog entries.
// It is derived from record content so re-ingesting the same
// assessment overwrites the previous copy.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// AssessmentRecord represents one catalog entry: an assessment product with a
// free-text description and structured metadata extracted at ingestion time.
// Records are immutable after ingestion; re-ingesting the same title+url
// replaces the stored copy.
type AssessmentRecord struct {
	Id              ID
	Title           string
	URL             string
	Description     string
	JobLevels       []string  // always list-shaped, never a bare scalar
	Languages       []string  // lowercase, regional suffixes stripped
	DurationMinutes int       // >= 0, 0 when unextractable
	AssessmentType  string    // optional
	AdaptiveSupport *bool     // optional
	RemoteSupport   *bool     // optional
	Vector          []float32 // embedding of Description (populated by the pipeline)
	InsertedAt      time.Time
	UpdatedAt       time.Time
}

// Identity returns the content string record IDs are derived from.
// Identity is title+url; there is no synthetic key.
func (r *AssessmentRecord) Identity() string {
	return r.Title + "|" + r.URL
}

// QueryFilter holds the structured metadata predicates extracted from a
// free-text query. Every field is optional: a nil/empty field means
// "do not filter on this field". Constructed once per query and discarded.
type QueryFilter struct {
	JobLevels       []string `json:"job_levels,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	MinDuration     *int     `json:"min_duration,omitempty"`
	MaxDuration     *int     `json:"max_duration,omitempty"`
	AssessmentType  *string  `json:"assessment_type,omitempty"`
	AdaptiveSupport *bool    `json:"adaptive_support,omitempty"`
	RemoteSupport   *bool    `json:"remote_support,omitempty"`
}

// IsEmpty reports whether no field carries a filter value.
// Absent and empty collapse to "no filter" at build time.
func (f *QueryFilter) IsEmpty() bool {
	if f == nil {
		return true
	}
	return len(f.JobLevels) == 0 &&
		len(f.Languages) == 0 &&
		f.MinDuration == nil &&
		f.MaxDuration == nil &&
		f.AssessmentType == nil &&
		f.AdaptiveSupport == nil &&
		f.RemoteSupport == nil
}

// MatchResult is the reconciled output of a search: the stored fields of one
// assessment plus the similarity score reported by the storage engine.
// List fields are always parsed, never serialized strings.
type MatchResult struct {
	Title           string
	URL             string
	Description     string
	JobLevels       []string
	Languages       []string
	DurationMinutes int
	AssessmentType  string
	AdaptiveSupport *bool
	RemoteSupport   *bool
	SimilarityScore float32
}
