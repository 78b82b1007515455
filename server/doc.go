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

// Package server exposes the catalog over HTTP:
//
//	POST /v1/assessments/query - ranked semantic search with metadata filters
//	POST /v1/assessments       - ingest scraped catalog records
//	GET  /v1/assessments/health
//	GET  /v1/assessments/ready
package server
