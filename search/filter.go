package search

import (
	"strings"

	"github.com/skillsift/skillsift/core"
	"github.com/skillsift/skillsift/storage"
)

// BuildFilter converts an extracted QueryFilter into a storage predicate
// tree: an AND of per-field clauses, where multi-valued fields become
// OR-groups of "contains" predicates. Returns nil when no predicates were
// built, signaling an unfiltered semantic search to the storage layer.
func BuildFilter(qf *core.QueryFilter) *storage.Filter {
	if qf.IsEmpty() {
		return nil
	}

	filter := storage.NewFilter()

	if len(qf.JobLevels) > 0 {
		predicates := make([]storage.Predicate, 0, len(qf.JobLevels))
		for _, level := range qf.JobLevels {
			normalized := core.NormalizeJobLevel(level)
			if normalized == "" {
				continue
			}
			predicates = append(predicates, storage.Contains(storage.FieldJobLevels, normalized))
		}
		filter.And(storage.OrClause(predicates...))
	}

	if len(qf.Languages) > 0 {
		predicates := make([]storage.Predicate, 0, len(qf.Languages))
		for _, lang := range qf.Languages {
			lang = strings.ToLower(strings.TrimSpace(lang))
			if lang == "" {
				continue
			}
			predicates = append(predicates, storage.Contains(storage.FieldLanguages, lang))
		}
		filter.And(storage.OrClause(predicates...))
	}

	if qf.MinDuration != nil {
		filter.And(storage.OrClause(storage.GTE(storage.FieldDuration, *qf.MinDuration)))
	}
	if qf.MaxDuration != nil {
		filter.And(storage.OrClause(storage.LTE(storage.FieldDuration, *qf.MaxDuration)))
	}

	if qf.AssessmentType != nil {
		filter.And(storage.OrClause(storage.Eq(storage.FieldAssessmentType, *qf.AssessmentType)))
	}
	if qf.AdaptiveSupport != nil {
		filter.And(storage.OrClause(storage.Eq(storage.FieldAdaptive, *qf.AdaptiveSupport)))
	}
	if qf.RemoteSupport != nil {
		filter.And(storage.OrClause(storage.Eq(storage.FieldRemote, *qf.RemoteSupport)))
	}

	if filter.IsEmpty() {
		return nil
	}
	return filter
}
