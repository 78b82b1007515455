// Copyright 2025 Skillsift Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/skillsift/skillsift/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// FieldExtractor implements ai.FieldExtractor using OpenAI-compatible chat APIs.
//
// Every extraction path pairs the model call with a deterministic fallback;
// a dead or misbehaving model degrades the metadata, never the ingestion.
type FieldExtractor struct {
	client llms.Model
	logger *slog.Logger
}

var (
	digitsRe      = regexp.MustCompile(`(\d+)`)
	parentheticRe = regexp.MustCompile(`\s*\([^)]*\)`)
)

// newFieldExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newFieldExtractor(config *ai.Config) (*FieldExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ExtractorHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.ExtractorModel),
	)
	if err != nil {
		return nil, err
	}

	return &FieldExtractor{
		client: client,
		logger: slog.Default().With("component", "openai-field-extractor"),
	}, nil
}

// NewFieldExtractor creates a new ingestion field extractor using the
// provided configuration.
//
// Returns ai.FieldExtractor interface to enforce abstraction.
func NewFieldExtractor(config *ai.Config) (ai.FieldExtractor, error) {
	return newFieldExtractor(config)
}

// callModel makes a temperature-zero call and returns the trimmed response
// text, or "" when the call fails.
func (e *FieldExtractor) callModel(ctx context.Context, prompt string) string {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart("You are a helpful assistant that extracts structured data.")},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(prompt)},
		},
	}

	response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		e.logger.Warn("model call failed, using fallback", "err", err)
		return ""
	}
	if len(response.Choices) < 1 {
		return ""
	}
	return strings.TrimSpace(response.Choices[0].Content)
}

// ExtractMinutes extracts a duration in minutes from assessment length text.
// Falls back to the first run of digits in the raw text; 0 when neither path
// yields a number.
func (e *FieldExtractor) ExtractMinutes(ctx context.Context, text string) int {
	response := e.callModel(ctx, fmt.Sprintf(minutesPromptTemplate, text))

	if n, err := strconv.Atoi(stripCodeFences(response)); err == nil && n >= 0 {
		return n
	}
	return fallbackMinutes(text)
}

// ExtractLanguages extracts lowercase bare language names with regional
// parenthetical suffixes stripped. Falls back to comma splitting when the
// model output is not a JSON array.
func (e *FieldExtractor) ExtractLanguages(ctx context.Context, text string) []string {
	response := e.callModel(ctx, fmt.Sprintf(languagesPromptTemplate, text))

	var languages []string
	if err := json.Unmarshal([]byte(stripCodeFences(response)), &languages); err != nil {
		return fallbackLanguages(text)
	}
	for i, lang := range languages {
		languages[i] = strings.ToLower(strings.TrimSpace(lang))
	}
	return languages
}

// ExtractJobLevels extracts job level names. Falls back to comma splitting.
func (e *FieldExtractor) ExtractJobLevels(ctx context.Context, text string) []string {
	response := e.callModel(ctx, fmt.Sprintf(jobLevelsPromptTemplate, text))

	var levels []string
	if err := json.Unmarshal([]byte(stripCodeFences(response)), &levels); err != nil {
		return fallbackSplit(text)
	}
	return levels
}

// ExtractAssessmentType extracts a single type string; the raw text passes
// through when the model call fails.
func (e *FieldExtractor) ExtractAssessmentType(ctx context.Context, text string) string {
	response := e.callModel(ctx, fmt.Sprintf(assessmentTypePromptTemplate, text))
	if response == "" {
		return text
	}
	return strings.Trim(stripCodeFences(response), `"`)
}

// ExtractSupportFlag extracts a boolean support flag as a "0"/"1" string.
// The label names the flag in the prompt ("adaptive support" or
// "remote support"). Raw text passes through when the model call fails.
func (e *FieldExtractor) ExtractSupportFlag(ctx context.Context, label, text string) string {
	prompt := fmt.Sprintf(supportFlagPromptTemplate, label, label, label, label, text, label)
	response := e.callModel(ctx, prompt)
	if response == "" {
		return text
	}
	return response
}

// fallbackMinutes extracts the first run of digits from the text.
func fallbackMinutes(text string) int {
	match := digitsRe.FindString(text)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return n
}

// fallbackLanguages splits on commas and strips parenthetical region
// suffixes, lowercasing each name.
func fallbackLanguages(text string) []string {
	languages := []string{}
	for _, lang := range strings.Split(text, ",") {
		base := strings.TrimSpace(parentheticRe.ReplaceAllString(strings.TrimSpace(lang), ""))
		if base != "" {
			languages = append(languages, strings.ToLower(base))
		}
	}
	return languages
}

// fallbackSplit splits on commas and trims whitespace.
func fallbackSplit(text string) []string {
	parts := []string{}
	for _, part := range strings.Split(text, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
