package badger

import (
	"testing"

	"github.com/skillsift/skillsift/storage"
)

func TestMatchesFilter(t *testing.T) {
	metadata := map[string]any{
		storage.FieldTitle:          "Verify Numerical",
		storage.FieldJobLevels:      `["entry level","graduate"]`,
		storage.FieldLanguages:      []any{"english", "french"},
		storage.FieldDuration:       float64(45),
		storage.FieldAssessmentType: "cognitive",
		storage.FieldRemote:         "1",
	}

	cases := []struct {
		name   string
		filter *storage.Filter
		want   bool
	}{
		{"nil filter matches", nil, true},
		{"empty filter matches", storage.NewFilter(), true},
		{
			"contains on JSON string list",
			storage.NewFilter().And(storage.OrClause(storage.Contains(storage.FieldJobLevels, "graduate"))),
			true,
		},
		{
			"contains is case insensitive",
			storage.NewFilter().And(storage.OrClause(storage.Contains(storage.FieldJobLevels, "Entry Level"))),
			true,
		},
		{
			"contains folds hyphens in requested job level",
			storage.NewFilter().And(storage.OrClause(storage.Contains(storage.FieldJobLevels, "Entry-Level"))),
			true,
		},
		{
			"contains on bare list",
			storage.NewFilter().And(storage.OrClause(storage.Contains(storage.FieldLanguages, "french"))),
			true,
		},
		{
			"contains misses",
			storage.NewFilter().And(storage.OrClause(storage.Contains(storage.FieldJobLevels, "executive"))),
			false,
		},
		{
			"or clause needs one match",
			storage.NewFilter().And(storage.OrClause(
				storage.Contains(storage.FieldJobLevels, "executive"),
				storage.Contains(storage.FieldJobLevels, "graduate"),
			)),
			true,
		},
		{
			"and of clauses needs all",
			storage.NewFilter().
				And(storage.OrClause(storage.Contains(storage.FieldJobLevels, "graduate"))).
				And(storage.OrClause(storage.Contains(storage.FieldLanguages, "german"))),
			false,
		},
		{
			"duration range both bounds",
			storage.NewFilter().
				And(storage.OrClause(storage.GTE(storage.FieldDuration, 30))).
				And(storage.OrClause(storage.LTE(storage.FieldDuration, 60))),
			true,
		},
		{
			"duration below lower bound",
			storage.NewFilter().And(storage.OrClause(storage.GTE(storage.FieldDuration, 60))),
			false,
		},
		{
			"eq string case insensitive",
			storage.NewFilter().And(storage.OrClause(storage.Eq(storage.FieldAssessmentType, "Cognitive"))),
			true,
		},
		{
			"eq bool against 0/1 string",
			storage.NewFilter().And(storage.OrClause(storage.Eq(storage.FieldRemote, true))),
			true,
		},
		{
			"missing field never matches",
			storage.NewFilter().And(storage.OrClause(storage.Eq(storage.FieldAdaptive, true))),
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := matchesFilter(metadata, tc.filter)
			if got != tc.want {
				t.Fatalf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestMatchesPredicateTolerance(t *testing.T) {
	t.Run("malformed list salvaged as raw member", func(t *testing.T) {
		metadata := map[string]any{storage.FieldJobLevels: `["entry level"`}
		f := storage.NewFilter().And(storage.OrClause(storage.Contains(storage.FieldJobLevels, `["entry level"`)))
		if !matchesFilter(metadata, f) {
			t.Fatal("Expected raw value to survive as a single member")
		}
	})

	t.Run("hyphenated stored job level matches spaced request", func(t *testing.T) {
		metadata := map[string]any{storage.FieldJobLevels: `["Entry-Level"]`}
		f := storage.NewFilter().And(storage.OrClause(storage.Contains(storage.FieldJobLevels, "entry level")))
		if !matchesFilter(metadata, f) {
			t.Fatal("Expected stored hyphenated level to match spaced request")
		}
	})

	t.Run("hyphen folding does not apply to languages", func(t *testing.T) {
		metadata := map[string]any{storage.FieldLanguages: `["mandarin-simplified"]`}
		f := storage.NewFilter().And(storage.OrClause(storage.Contains(storage.FieldLanguages, "mandarin simplified")))
		if matchesFilter(metadata, f) {
			t.Fatal("Expected language members to compare without hyphen folding")
		}
	})

	t.Run("scalar string treated as one-element list", func(t *testing.T) {
		metadata := map[string]any{storage.FieldLanguages: "english"}
		f := storage.NewFilter().And(storage.OrClause(storage.Contains(storage.FieldLanguages, "english")))
		if !matchesFilter(metadata, f) {
			t.Fatal("Expected scalar to match as single member")
		}
	})

	t.Run("uncoercible duration fails range", func(t *testing.T) {
		metadata := map[string]any{storage.FieldDuration: "soon"}
		f := storage.NewFilter().And(storage.OrClause(storage.GTE(storage.FieldDuration, 0)))
		if matchesFilter(metadata, f) {
			t.Fatal("Expected uncoercible duration to fail range predicate")
		}
	})
}
