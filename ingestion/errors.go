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

package ingestion

import "errors"

var (
	// ErrRepositoryRequired is returned when an assessment repository is not provided.
	ErrRepositoryRequired = errors.New("assessment repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrVectorCountMismatch is returned when the embedder produces a
	// different number of vectors than texts submitted. Storing records
	// without vectors would make them invisible to similarity queries.
	ErrVectorCountMismatch = errors.New("embedder returned wrong number of vectors")
)
