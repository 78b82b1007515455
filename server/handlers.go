package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillsift/skillsift/core"
	"github.com/skillsift/skillsift/ingestion"
)

const defaultTopK = 10

// Searcher is the retrieval surface the query handler depends on.
type Searcher interface {
	Search(ctx context.Context, query string, topK int) ([]*core.MatchResult, error)
}

// Ingestor is the ingestion surface the catalog handler depends on.
type Ingestor interface {
	Ingest(ctx context.Context, raws []*ingestion.RawRecord) (int, error)
}

// Counter reports how many assessments are stored; used by the
// readiness check to prove the storage handle is live.
type Counter interface {
	CountAssessments(ctx context.Context) (int, error)
}

// Handlers holds the HTTP handlers and their collaborators.
type Handlers struct {
	searcher Searcher
	ingestor Ingestor
	counter  Counter
	logger   *slog.Logger
}

// NewHandlers creates the handler set.
func NewHandlers(searcher Searcher, ingestor Ingestor, counter Counter, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		searcher: searcher,
		ingestor: ingestor,
		counter:  counter,
		logger:   logger,
	}
}

// HandleQuery handles POST /v1/assessments/query.
// Metadata-extraction failures degrade inside the searcher; only embedding
// or storage failures surface here, as an opaque retrieval error.
func (h *Handlers) HandleQuery(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "query is required",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	topK := req.TopK
	if topK <= 0 {
		topK = defaultTopK
	}

	results, err := h.searcher.Search(c.Request.Context(), req.Query, topK)
	if err != nil {
		h.logger.Error("retrieval failed", "query", req.Query, "err", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "retrieval failed",
			Code:  "RETRIEVAL_FAILED",
		})
		return
	}

	response := QueryResponse{
		Query:        req.Query,
		Results:      make([]AssessmentResult, 0, len(results)),
		TotalResults: len(results),
	}
	for _, match := range results {
		response.Results = append(response.Results, resultFromMatch(match))
	}

	c.JSON(http.StatusOK, response)
}

// HandleIngest handles POST /v1/assessments.
// The body is a JSON array of scraped catalog records.
func (h *Handlers) HandleIngest(c *gin.Context) {
	var raws []*ingestion.RawRecord
	if err := c.ShouldBindJSON(&raws); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "body must be a JSON array of catalog records",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	stored, err := h.ingestor.Ingest(c.Request.Context(), raws)
	if err != nil {
		h.logger.Error("ingestion failed", "received", len(raws), "err", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "ingestion failed",
			Code:  "INGEST_FAILED",
		})
		return
	}

	c.JSON(http.StatusOK, IngestResponse{
		Received: len(raws),
		Stored:   stored,
	})
}

// HandleHealth handles GET /v1/assessments/health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleReady handles GET /v1/assessments/ready.
// Ready means the storage handle answers a trivial query.
func (h *Handlers) HandleReady(c *gin.Context) {
	count, err := h.counter.CountAssessments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "storage not reachable",
			Code:  "NOT_READY",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "assessments": count})
}
