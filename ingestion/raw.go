package ingestion

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Raw field names as they appear in scraped catalog files. The normalizer
// dispatches on these names; anything else passes through unchanged.
const (
	FieldTitle            = "Title"
	FieldURL              = "URL"
	FieldDescription      = "Description"
	FieldJobLevels        = "Job Levels"
	FieldLanguages        = "Languages"
	FieldAssessmentLength = "Assessment Length"
	FieldAssessmentType   = "Assessment Type"
	FieldRemoteSupport    = "Remote Support"
	FieldAdaptiveSupport  = "Adaptive Support"
)

// RawRecord is one scraped catalog entry, fields still free text.
type RawRecord struct {
	Title            string `json:"Title"`
	URL              string `json:"URL"`
	Description      string `json:"Description"`
	JobLevels        string `json:"Job Levels"`
	Languages        string `json:"Languages"`
	AssessmentLength string `json:"Assessment Length"`
	AssessmentType   string `json:"Assessment Type"`
	RemoteSupport    string `json:"Remote Support"`
	AdaptiveSupport  string `json:"Adaptive Support"`
}

// LoadRawRecords reads a JSON array of scraped records from a file.
func LoadRawRecords(path string) ([]*RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	return DecodeRawRecords(f)
}

// DecodeRawRecords reads a JSON array of scraped records from a reader.
func DecodeRawRecords(r io.Reader) ([]*RawRecord, error) {
	var records []*RawRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding catalog records: %w", err)
	}
	return records, nil
}
