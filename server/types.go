package server

import "github.com/skillsift/skillsift/core"

// QueryRequest is the body of POST /v1/assessments/query.
type QueryRequest struct {
	Query string `json:"query" binding:"required"`
	TopK  int    `json:"top_k"`
}

// AssessmentResult is the canonical wire shape for one ranked match.
// It unifies the basic and extended-metadata response variants: the
// similarity score and the extended fields are always both present,
// optional booleans serialized as null when unknown.
type AssessmentResult struct {
	Title           string   `json:"title"`
	URL             string   `json:"url"`
	Description     string   `json:"description"`
	JobLevels       []string `json:"job_levels"`
	Languages       []string `json:"languages"`
	DurationMinutes int      `json:"duration_minutes"`
	AssessmentType  string   `json:"assessment_type,omitempty"`
	AdaptiveSupport *bool    `json:"adaptive_support"`
	RemoteSupport   *bool    `json:"remote_support"`
	SimilarityScore float32  `json:"similarity_score"`
}

// QueryResponse is the body returned by POST /v1/assessments/query.
type QueryResponse struct {
	Query        string             `json:"query"`
	Results      []AssessmentResult `json:"results"`
	TotalResults int                `json:"total_results"`
}

// IngestResponse is the body returned by POST /v1/assessments.
type IngestResponse struct {
	Received int `json:"received"`
	Stored   int `json:"stored"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// resultFromMatch converts a core match into its wire shape.
// List fields are never null on the wire, always at least empty arrays.
func resultFromMatch(match *core.MatchResult) AssessmentResult {
	jobLevels := match.JobLevels
	if jobLevels == nil {
		jobLevels = []string{}
	}
	languages := match.Languages
	if languages == nil {
		languages = []string{}
	}
	return AssessmentResult{
		Title:           match.Title,
		URL:             match.URL,
		Description:     match.Description,
		JobLevels:       jobLevels,
		Languages:       languages,
		DurationMinutes: match.DurationMinutes,
		AssessmentType:  match.AssessmentType,
		AdaptiveSupport: match.AdaptiveSupport,
		RemoteSupport:   match.RemoteSupport,
		SimilarityScore: match.SimilarityScore,
	}
}
