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

package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/skillsift/skillsift/core"
)

// StoredAssessment is the persisted shape of an assessment record: the
// description text, a metadata map, and the embedding vector.
//
// Invariant: job_levels and languages are written into Metadata as
// JSON-encoded strings, never bare lists, so every reader parses list fields
// the same way regardless of where the value came from.
type StoredAssessment struct {
	Text       string         `json:"text"`
	Metadata   map[string]any `json:"metadata"`
	Vector     []float32      `json:"vector,omitempty"`
	InsertedAt time.Time      `json:"inserted_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// EncodeAssessment converts a domain record into its stored shape.
// Optional fields (assessment type, support flags) are present in the
// metadata only when the record carries them; support flags are stored as
// "0"/"1" strings, matching what the ingestion extractor produces.
func EncodeAssessment(record *core.AssessmentRecord) (*StoredAssessment, error) {
	jobLevels, err := json.Marshal(record.JobLevels)
	if err != nil {
		return nil, fmt.Errorf("%w: job levels: %v", ErrSerializationFailed, err)
	}
	languages, err := json.Marshal(record.Languages)
	if err != nil {
		return nil, fmt.Errorf("%w: languages: %v", ErrSerializationFailed, err)
	}

	metadata := map[string]any{
		FieldTitle:     record.Title,
		FieldURL:       record.URL,
		FieldJobLevels: string(jobLevels),
		FieldLanguages: string(languages),
		FieldDuration:  record.DurationMinutes,
	}
	if record.AssessmentType != "" {
		metadata[FieldAssessmentType] = record.AssessmentType
	}
	if record.AdaptiveSupport != nil {
		metadata[FieldAdaptive] = boolFlag(*record.AdaptiveSupport)
	}
	if record.RemoteSupport != nil {
		metadata[FieldRemote] = boolFlag(*record.RemoteSupport)
	}

	return &StoredAssessment{
		Text:       record.Description,
		Metadata:   metadata,
		Vector:     record.Vector,
		InsertedAt: record.InsertedAt,
		UpdatedAt:  record.UpdatedAt,
	}, nil
}

// DecodeAssessment converts a stored shape back into a domain record,
// parsing the metadata tolerantly. Malformed list fields decode to whatever
// core.CoerceToStringList salvages; a missing duration decodes to 0.
func DecodeAssessment(id core.ID, stored *StoredAssessment) *core.AssessmentRecord {
	md := stored.Metadata
	record := &core.AssessmentRecord{
		Id:              id,
		Title:           stringValue(md[FieldTitle]),
		URL:             stringValue(md[FieldURL]),
		Description:     stored.Text,
		JobLevels:       core.CoerceToStringList(md[FieldJobLevels]),
		Languages:       core.CoerceToStringList(md[FieldLanguages]),
		DurationMinutes: core.CoerceInt(md[FieldDuration], 0),
		AssessmentType:  stringValue(md[FieldAssessmentType]),
		AdaptiveSupport: core.CoerceBool(md[FieldAdaptive]),
		RemoteSupport:   core.CoerceBool(md[FieldRemote]),
		Vector:          stored.Vector,
		InsertedAt:      stored.InsertedAt,
		UpdatedAt:       stored.UpdatedAt,
	}
	return record
}

// MarshalStored serializes a StoredAssessment envelope to bytes.
func MarshalStored(stored *StoredAssessment) ([]byte, error) {
	data, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalStored deserializes a StoredAssessment envelope from bytes.
func UnmarshalStored(data []byte) (*StoredAssessment, error) {
	var stored StoredAssessment
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerializationFailed, err)
	}
	return &stored, nil
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
