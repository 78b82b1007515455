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

// Package search provides filtered semantic search over the assessment catalog.
//
// The Searcher type implements a single-pass retrieval pipeline:
//   - Structured filter extraction from the free-text query
//   - Query embedding and one ranked similarity search
//   - An authoritative job-level post-filter over the ranked candidates
//
// Filter extraction is best-effort: when it fails, the search degrades to
// pure semantic retrieval rather than failing the request.
package search
