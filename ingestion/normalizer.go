package ingestion

import (
	"context"
	"log/slog"

	"github.com/skillsift/skillsift/ai"
	"github.com/skillsift/skillsift/core"
)

// Normalizer turns scraped free-text fields into the structured metadata
// stored alongside each assessment. Every extraction path tolerates a
// failed language-model call by falling back to deterministic heuristics
// inside the field extractor, so Normalize never fails on bad input.
type Normalizer struct {
	extractor ai.FieldExtractor
	logger    *slog.Logger
}

// NewNormalizer creates a normalizer backed by the given field extractor.
func NewNormalizer(extractor ai.FieldExtractor, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{
		extractor: extractor,
		logger:    logger,
	}
}

// ExtractField extracts a structured value from one raw field, dispatched
// by the scraped field name. Unrecognized field names pass the raw value
// through unchanged.
func (n *Normalizer) ExtractField(ctx context.Context, fieldName, rawText string) any {
	switch fieldName {
	case FieldAssessmentLength:
		return n.extractor.ExtractMinutes(ctx, rawText)
	case FieldLanguages:
		return n.extractor.ExtractLanguages(ctx, rawText)
	case FieldJobLevels:
		return n.extractor.ExtractJobLevels(ctx, rawText)
	case FieldAssessmentType:
		return n.extractor.ExtractAssessmentType(ctx, rawText)
	case FieldRemoteSupport:
		return n.extractor.ExtractSupportFlag(ctx, "remote support", rawText)
	case FieldAdaptiveSupport:
		return n.extractor.ExtractSupportFlag(ctx, "adaptive support", rawText)
	}
	return rawText
}

// Normalize converts one scraped record into a stored-shape assessment
// record. The embedding vector is left empty for the pipeline to fill in.
func (n *Normalizer) Normalize(ctx context.Context, raw *RawRecord) *core.AssessmentRecord {
	record := &core.AssessmentRecord{
		Title:           raw.Title,
		URL:             raw.URL,
		Description:     raw.Description,
		JobLevels:       n.extractor.ExtractJobLevels(ctx, raw.JobLevels),
		Languages:       n.extractor.ExtractLanguages(ctx, raw.Languages),
		DurationMinutes: n.extractor.ExtractMinutes(ctx, raw.AssessmentLength),
	}

	if raw.AssessmentType != "" {
		record.AssessmentType = n.extractor.ExtractAssessmentType(ctx, raw.AssessmentType)
	}
	if raw.RemoteSupport != "" {
		flag := n.extractor.ExtractSupportFlag(ctx, "remote support", raw.RemoteSupport)
		record.RemoteSupport = core.CoerceBool(flag)
	}
	if raw.AdaptiveSupport != "" {
		flag := n.extractor.ExtractSupportFlag(ctx, "adaptive support", raw.AdaptiveSupport)
		record.AdaptiveSupport = core.CoerceBool(flag)
	}

	return record
}
