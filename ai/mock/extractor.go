package mock

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/skillsift/skillsift/core"
)

// MockFilterExtractor is a test double for ai.FilterExtractor.
// It allows custom behavior injection via function fields.
type MockFilterExtractor struct {
	// ExtractFilterFunc is called by ExtractFilter if set.
	// If nil, returns an empty filter (pure semantic search).
	ExtractFilterFunc func(ctx context.Context, query string) (*core.QueryFilter, error)

	callCount int
}

// NewMockFilterExtractor creates a mock filter extractor with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockFilterExtractor().
func NewMockFilterExtractor() *MockFilterExtractor {
	return &MockFilterExtractor{}
}

// ExtractFilter returns the injected filter or an empty one.
func (m *MockFilterExtractor) ExtractFilter(ctx context.Context, query string) (*core.QueryFilter, error) {
	m.callCount++

	if m.ExtractFilterFunc != nil {
		return m.ExtractFilterFunc(ctx, query)
	}

	return &core.QueryFilter{}, nil
}

// CallCount returns the number of times ExtractFilter was called.
func (m *MockFilterExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom function.
func (m *MockFilterExtractor) Reset() {
	m.callCount = 0
	m.ExtractFilterFunc = nil
}

// MockFieldExtractor is a test double for ai.FieldExtractor.
// Defaults reproduce the deterministic fallback heuristics of the production
// extractor, so ingestion tests exercise realistic shapes without a model.
type MockFieldExtractor struct {
	ExtractMinutesFunc        func(ctx context.Context, text string) int
	ExtractLanguagesFunc      func(ctx context.Context, text string) []string
	ExtractJobLevelsFunc      func(ctx context.Context, text string) []string
	ExtractAssessmentTypeFunc func(ctx context.Context, text string) string
	ExtractSupportFlagFunc    func(ctx context.Context, label, text string) string

	callCount int
}

var (
	mockDigitsRe      = regexp.MustCompile(`(\d+)`)
	mockParentheticRe = regexp.MustCompile(`\s*\([^)]*\)`)
)

// NewMockFieldExtractor creates a mock field extractor with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockFieldExtractor().
func NewMockFieldExtractor() *MockFieldExtractor {
	return &MockFieldExtractor{}
}

// ExtractMinutes returns the first run of digits in the text.
func (m *MockFieldExtractor) ExtractMinutes(ctx context.Context, text string) int {
	m.callCount++
	if m.ExtractMinutesFunc != nil {
		return m.ExtractMinutesFunc(ctx, text)
	}
	if match := mockDigitsRe.FindString(text); match != "" {
		if n, err := strconv.Atoi(match); err == nil {
			return n
		}
	}
	return 0
}

// ExtractLanguages splits on commas, strips parenthetical suffixes, lowercases.
func (m *MockFieldExtractor) ExtractLanguages(ctx context.Context, text string) []string {
	m.callCount++
	if m.ExtractLanguagesFunc != nil {
		return m.ExtractLanguagesFunc(ctx, text)
	}
	languages := []string{}
	for _, lang := range strings.Split(text, ",") {
		base := strings.TrimSpace(mockParentheticRe.ReplaceAllString(lang, ""))
		if base != "" {
			languages = append(languages, strings.ToLower(base))
		}
	}
	return languages
}

// ExtractJobLevels splits on commas.
func (m *MockFieldExtractor) ExtractJobLevels(ctx context.Context, text string) []string {
	m.callCount++
	if m.ExtractJobLevelsFunc != nil {
		return m.ExtractJobLevelsFunc(ctx, text)
	}
	levels := []string{}
	for _, level := range strings.Split(text, ",") {
		if trimmed := strings.TrimSpace(level); trimmed != "" {
			levels = append(levels, trimmed)
		}
	}
	return levels
}

// ExtractAssessmentType passes the raw text through.
func (m *MockFieldExtractor) ExtractAssessmentType(ctx context.Context, text string) string {
	m.callCount++
	if m.ExtractAssessmentTypeFunc != nil {
		return m.ExtractAssessmentTypeFunc(ctx, text)
	}
	return strings.TrimSpace(text)
}

// ExtractSupportFlag maps yes-flavored text to "1", no-flavored to "0",
// and passes anything else through.
func (m *MockFieldExtractor) ExtractSupportFlag(ctx context.Context, label, text string) string {
	m.callCount++
	if m.ExtractSupportFlagFunc != nil {
		return m.ExtractSupportFlagFunc(ctx, label, text)
	}
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "yes", "true", "1":
		return "1"
	case "no", "false", "0":
		return "0"
	}
	return text
}

// CallCount returns the number of times any method was called.
func (m *MockFieldExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockFieldExtractor) Reset() {
	m.callCount = 0
	m.ExtractMinutesFunc = nil
	m.ExtractLanguagesFunc = nil
	m.ExtractJobLevelsFunc = nil
	m.ExtractAssessmentTypeFunc = nil
	m.ExtractSupportFlagFunc = nil
}
