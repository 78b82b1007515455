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

package core

import "fmt"

// ValidateAssessmentRecord validates an AssessmentRecord according to domain rules.
//
// Validation rules:
//   - Title and URL must not be empty (they form the record identity)
//   - DurationMinutes must not be negative
//
// NOT validated (populated by the pipeline):
//   - Vector (can be empty until the embedding step runs)
//   - JobLevels/Languages (can be empty; they must only be list-shaped,
//     which the type already guarantees)
func ValidateAssessmentRecord(record *AssessmentRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	if record.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyTitle)
	}

	if record.URL == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyURL)
	}

	if record.DurationMinutes < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrNegativeDuration)
	}

	return nil
}
