package ingestion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillsift/skillsift/ai/mock"
)

func TestExtractFieldDispatch(t *testing.T) {
	normalizer := NewNormalizer(mock.NewMockFieldExtractor(), nil)
	ctx := context.Background()

	t.Run("assessment length yields minutes", func(t *testing.T) {
		assert.Equal(t, 45, normalizer.ExtractField(ctx, FieldAssessmentLength, "Approximately 45 minutes"))
	})

	t.Run("languages yields lowercase list without regions", func(t *testing.T) {
		got := normalizer.ExtractField(ctx, FieldLanguages, "English (USA), French")
		assert.Equal(t, []string{"english", "french"}, got)
	})

	t.Run("job levels yields list", func(t *testing.T) {
		got := normalizer.ExtractField(ctx, FieldJobLevels, "Entry-Level, Graduate")
		assert.Equal(t, []string{"Entry-Level", "Graduate"}, got)
	})

	t.Run("assessment type passes model output", func(t *testing.T) {
		assert.Equal(t, "Competencies", normalizer.ExtractField(ctx, FieldAssessmentType, " Competencies "))
	})

	t.Run("support flags yield 0/1 strings", func(t *testing.T) {
		assert.Equal(t, "1", normalizer.ExtractField(ctx, FieldRemoteSupport, "Yes"))
		assert.Equal(t, "0", normalizer.ExtractField(ctx, FieldAdaptiveSupport, "No"))
	})

	t.Run("unknown field passes through unchanged", func(t *testing.T) {
		assert.Equal(t, "whatever", normalizer.ExtractField(ctx, "Downloads", "whatever"))
	})
}

func TestNormalize(t *testing.T) {
	normalizer := NewNormalizer(mock.NewMockFieldExtractor(), nil)
	ctx := context.Background()

	t.Run("full record", func(t *testing.T) {
		raw := &RawRecord{
			Title:            "Verify Numerical Reasoning",
			URL:              "https://example.com/verify-numerical",
			Description:      "Measures numerical reasoning.",
			JobLevels:        "Entry-Level, Graduate",
			Languages:        "English (USA), French",
			AssessmentLength: "max 18 minutes",
			AssessmentType:   "Ability & Aptitude",
			RemoteSupport:    "Yes",
			AdaptiveSupport:  "No",
		}

		record := normalizer.Normalize(ctx, raw)
		assert.Equal(t, raw.Title, record.Title)
		assert.Equal(t, raw.URL, record.URL)
		assert.Equal(t, raw.Description, record.Description)
		assert.Equal(t, []string{"Entry-Level", "Graduate"}, record.JobLevels)
		assert.Equal(t, []string{"english", "french"}, record.Languages)
		assert.Equal(t, 18, record.DurationMinutes)
		assert.Equal(t, "Ability & Aptitude", record.AssessmentType)
		require.NotNil(t, record.RemoteSupport)
		assert.True(t, *record.RemoteSupport)
		require.NotNil(t, record.AdaptiveSupport)
		assert.False(t, *record.AdaptiveSupport)
		assert.Empty(t, record.Vector)
	})

	t.Run("absent optional fields stay unset", func(t *testing.T) {
		raw := &RawRecord{
			Title:       "Minimal",
			URL:         "https://example.com/minimal",
			Description: "bare record",
		}

		record := normalizer.Normalize(ctx, raw)
		assert.Empty(t, record.AssessmentType)
		assert.Nil(t, record.RemoteSupport)
		assert.Nil(t, record.AdaptiveSupport)
		assert.Equal(t, 0, record.DurationMinutes)
		assert.Empty(t, record.JobLevels)
		assert.Empty(t, record.Languages)
	})

	t.Run("unparseable support flag stays unset", func(t *testing.T) {
		raw := &RawRecord{
			Title:         "Odd Flags",
			URL:           "https://example.com/odd",
			Description:   "flags the model could not read",
			RemoteSupport: "ask your administrator",
		}

		record := normalizer.Normalize(ctx, raw)
		assert.Nil(t, record.RemoteSupport)
	})
}
