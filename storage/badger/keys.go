package badger

import (
	"fmt"

	"github.com/skillsift/skillsift/core"
)

// Key prefixes for different data types
const (
	assessmentRecordPrefix = "asmrec"
)

// makeAssessmentKey generates a key for an assessment record by ID.
func makeAssessmentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", assessmentRecordPrefix, id))
}

// assessmentScanPrefix returns the iterator prefix covering all
// assessment record keys.
func assessmentScanPrefix() []byte {
	return []byte(assessmentRecordPrefix + ":")
}
