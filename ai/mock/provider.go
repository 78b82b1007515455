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

package mock

import "github.com/skillsift/skillsift/ai"

// MockProvider is a test double for ai.AIProvider.
// It aggregates mock embedder and extractor instances.
type MockProvider struct {
	embedder        *MockEmbedder
	filterExtractor *MockFilterExtractor
	fieldExtractor  *MockFieldExtractor
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.AIProvider interface for consistency with production
// constructors. Use the GetMock* accessors for test assertions.
func NewMockProvider() ai.AIProvider {
	return &MockProvider{
		embedder:        NewMockEmbedder(),
		filterExtractor: NewMockFilterExtractor(),
		fieldExtractor:  NewMockFieldExtractor(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
// This allows full control over the behavior of each service.
func NewMockProviderWithServices(embedder *MockEmbedder, filterExtractor *MockFilterExtractor, fieldExtractor *MockFieldExtractor) ai.AIProvider {
	return &MockProvider{
		embedder:        embedder,
		filterExtractor: filterExtractor,
		fieldExtractor:  fieldExtractor,
	}
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// FilterExtractor returns the mock filter extractor.
func (p *MockProvider) FilterExtractor() ai.FilterExtractor {
	return p.filterExtractor
}

// FieldExtractor returns the mock field extractor.
func (p *MockProvider) FieldExtractor() ai.FieldExtractor {
	return p.fieldExtractor
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder returns the underlying mock embedder for test assertions.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockFilterExtractor returns the underlying mock filter extractor for
// test assertions.
func (p *MockProvider) GetMockFilterExtractor() *MockFilterExtractor {
	return p.filterExtractor
}

// GetMockFieldExtractor returns the underlying mock field extractor for
// test assertions.
func (p *MockProvider) GetMockFieldExtractor() *MockFieldExtractor {
	return p.fieldExtractor
}
