package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAssessmentRecord(t *testing.T) {
	valid := func() *AssessmentRecord {
		return &AssessmentRecord{
			Title:           "Verify Numerical Ability",
			URL:             "https://example.com/verify-numerical",
			Description:     "Measures numerical reasoning.",
			JobLevels:       []string{"graduate", "professional"},
			Languages:       []string{"english"},
			DurationMinutes: 18,
		}
	}

	t.Run("valid record", func(t *testing.T) {
		assert.NoError(t, ValidateAssessmentRecord(valid()))
	})

	t.Run("nil record", func(t *testing.T) {
		err := ValidateAssessmentRecord(nil)
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})

	t.Run("empty title", func(t *testing.T) {
		record := valid()
		record.Title = ""
		err := ValidateAssessmentRecord(record)
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("empty url", func(t *testing.T) {
		record := valid()
		record.URL = ""
		err := ValidateAssessmentRecord(record)
		assert.ErrorIs(t, err, ErrEmptyURL)
	})

	t.Run("negative duration", func(t *testing.T) {
		record := valid()
		record.DurationMinutes = -5
		err := ValidateAssessmentRecord(record)
		assert.ErrorIs(t, err, ErrNegativeDuration)
	})

	t.Run("zero duration is valid", func(t *testing.T) {
		record := valid()
		record.DurationMinutes = 0
		assert.NoError(t, ValidateAssessmentRecord(record))
	})
}
