package badger

import (
	"strings"

	"github.com/skillsift/skillsift/core"
	"github.com/skillsift/skillsift/storage"
)

// matchesFilter evaluates the predicate filter against one record's raw
// metadata. The filter is an AND of clauses; each clause is an OR of
// predicates. Metadata shapes vary between records (JSON-string lists,
// bare lists, widened floats), so every predicate reads its field through
// the core coercion helpers.
func matchesFilter(metadata map[string]any, filter *storage.Filter) bool {
	if filter.IsEmpty() {
		return true
	}
	for _, clause := range filter.Clauses {
		if !matchesClause(metadata, clause) {
			return false
		}
	}
	return true
}

func matchesClause(metadata map[string]any, clause storage.Clause) bool {
	for _, pred := range clause.Predicates {
		if matchesPredicate(metadata, pred) {
			return true
		}
	}
	return false
}

func matchesPredicate(metadata map[string]any, pred storage.Predicate) bool {
	value, ok := metadata[pred.Field]
	if !ok {
		return false
	}

	switch pred.Op {
	case storage.OpContains:
		want, ok := pred.Value.(string)
		if !ok {
			return false
		}
		// Job levels fold hyphens as well as case, so stored "Entry-Level"
		// matches a requested "entry level". Other list fields compare
		// case-insensitively.
		if pred.Field == storage.FieldJobLevels {
			wantNorm := core.NormalizeJobLevel(want)
			for _, member := range core.CoerceToStringList(value) {
				if core.NormalizeJobLevel(member) == wantNorm {
					return true
				}
			}
			return false
		}
		for _, member := range core.CoerceToStringList(value) {
			if strings.EqualFold(member, want) {
				return true
			}
		}
		return false

	case storage.OpEq:
		switch want := pred.Value.(type) {
		case string:
			have, ok := value.(string)
			return ok && strings.EqualFold(have, want)
		case bool:
			have := core.CoerceBool(value)
			return have != nil && *have == want
		case int:
			return core.CoerceInt(value, want-1) == want
		default:
			return false
		}

	case storage.OpGTE:
		want, ok := asInt(pred.Value)
		if !ok {
			return false
		}
		// Records with an uncoercible duration never satisfy range bounds.
		have := core.CoerceInt(value, -1)
		return have >= 0 && have >= want

	case storage.OpLTE:
		want, ok := asInt(pred.Value)
		if !ok {
			return false
		}
		have := core.CoerceInt(value, -1)
		return have >= 0 && have <= want
	}

	return false
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
