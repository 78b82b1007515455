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

// Package ai provides abstractions for the AI services used in Skillsift.
//
// The package defines interfaces for text embeddings and for the two
// language-model-backed extraction paths: query-time filter extraction and
// ingestion-time field extraction. Business logic depends on these
// abstractions rather than concrete model clients.
//
// # Design Principles
//
// Three key interfaces, aggregated by a fourth:
//
//   - Embedder: generates vector embeddings from text
//   - FilterExtractor: turns a free-text query into a partial QueryFilter
//   - FieldExtractor: extracts typed metadata from scraped catalog fields
//   - AIProvider: aggregates the services for convenient initialization
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//     via langchaingo
//   - ai/mock: test doubles for unit testing without external dependencies
//
// Public constructors in ai/openai return interface types to enforce
// abstraction; mock constructors return concrete types so tests can inject
// behavior and assert on call counts.
//
// # Reliability Contract
//
// The language model is the least reliable dependency in the pipeline.
// Extraction implementations degrade deterministically instead of failing:
// the filter extractor returns an empty filter on unusable model output, and
// every field extraction path has a regex/split fallback. Only the embedder
// propagates errors, since a search cannot proceed without a query vector.
package ai
