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
	"strconv"
	"strings"

	"github.com/skillsift/skillsift/ai"
	"github.com/skillsift/skillsift/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// FilterExtractor implements ai.FilterExtractor using OpenAI-compatible chat APIs.
//
// The extractor never fails a query: any model error or unparseable response
// degrades to an empty filter, which callers treat as pure semantic search.
type FilterExtractor struct {
	client llms.Model
	logger *slog.Logger
}

// filterPayload mirrors the JSON object the model is asked to emit. Field
// keys missing from the response stay nil, which is the "no filter" signal;
// the flexible scalar types absorb the 0/1 and quoted-number variance models
// produce at temperature zero.
type filterPayload struct {
	JobLevels       []string  `json:"job_levels"`
	Languages       []string  `json:"languages"`
	MinDuration     *flexInt  `json:"min_duration"`
	MaxDuration     *flexInt  `json:"max_duration"`
	AssessmentType  *string   `json:"assessment_type"`
	AdaptiveSupport *flexBool `json:"adaptive_support"`
	RemoteSupport   *flexBool `json:"remote_support"`
}

// flexInt unmarshals from a JSON number or a quoted number.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		return fmt.Errorf("not an integer: %s", data)
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not an integer: %s", data)
	}
	*f = flexInt(int(n))
	return nil
}

// flexBool unmarshals from true/false, 0/1, or their quoted forms.
type flexBool bool

func (f *flexBool) UnmarshalJSON(data []byte) error {
	switch strings.Trim(strings.TrimSpace(string(data)), `"`) {
	case "true", "1":
		*f = true
	case "false", "0":
		*f = false
	default:
		return fmt.Errorf("not a boolean: %s", data)
	}
	return nil
}

// newFilterExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newFilterExtractor(config *ai.Config) (*FilterExtractor, error) {
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

	return &FilterExtractor{
		client: client,
		logger: slog.Default().With("component", "openai-filter-extractor"),
	}, nil
}

// NewFilterExtractor creates a new query filter extractor using the provided
// configuration.
//
// Returns ai.FilterExtractor interface to enforce abstraction.
func NewFilterExtractor(config *ai.Config) (ai.FilterExtractor, error) {
	return newFilterExtractor(config)
}

// ExtractFilter extracts structured metadata predicates from a free-text
// query via a temperature-zero model call. A failed call or unusable output
// returns an empty filter and a nil error; extraction failure is logged,
// never surfaced.
func (e *FilterExtractor) ExtractFilter(ctx context.Context, query string) (*core.QueryFilter, error) {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(filterSystemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf(filterPromptTemplate, query))},
		},
	}

	response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		e.logger.Warn("filter extraction degraded to empty filter", "query", query, "err", err)
		return &core.QueryFilter{}, nil
	}

	if len(response.Choices) < 1 {
		e.logger.Debug("no choices returned from model", "query", query)
		return &core.QueryFilter{}, nil
	}

	filter, err := parseFilterResponse(response.Choices[0].Content)
	if err != nil {
		e.logger.Warn("unparseable filter response, degrading to empty filter",
			"query", query,
			"response", response.Choices[0].Content,
			"err", err)
		return &core.QueryFilter{}, nil
	}

	return filter, nil
}

// parseFilterResponse parses the model's response into a QueryFilter.
// Strict JSON parse first; if that fails, retry on the first balanced {...}
// span in the text.
func parseFilterResponse(text string) (*core.QueryFilter, error) {
	text = stripCodeFences(text)

	var payload filterPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		span, ok := extractJSONObject(text)
		if !ok {
			return nil, err
		}
		if spanErr := json.Unmarshal([]byte(span), &payload); spanErr != nil {
			return nil, spanErr
		}
	}

	return payload.toQueryFilter(), nil
}

func (p *filterPayload) toQueryFilter() *core.QueryFilter {
	filter := &core.QueryFilter{
		JobLevels: dropEmpty(p.JobLevels),
		Languages: dropEmpty(p.Languages),
	}

	if p.MinDuration != nil {
		min := int(*p.MinDuration)
		filter.MinDuration = &min
	}
	if p.MaxDuration != nil {
		max := int(*p.MaxDuration)
		filter.MaxDuration = &max
	}
	if p.AssessmentType != nil && strings.TrimSpace(*p.AssessmentType) != "" {
		t := strings.TrimSpace(*p.AssessmentType)
		filter.AssessmentType = &t
	}
	if p.AdaptiveSupport != nil {
		b := bool(*p.AdaptiveSupport)
		filter.AdaptiveSupport = &b
	}
	if p.RemoteSupport != nil {
		b := bool(*p.RemoteSupport)
		filter.RemoteSupport = &b
	}

	return filter
}

// dropEmpty removes empty and whitespace-only entries, preserving order.
func dropEmpty(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
