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

// Metadata field keys shared between serialization, filtering, and search.
const (
	FieldTitle          = "title"
	FieldURL            = "url"
	FieldJobLevels      = "job_levels"
	FieldLanguages      = "languages"
	FieldDuration       = "duration_minutes"
	FieldAssessmentType = "assessment_type"
	FieldAdaptive       = "adaptive_support"
	FieldRemote         = "remote_support"
)

// Operator identifies a predicate comparison.
type Operator int

const (
	// OpContains matches when a list-shaped metadata value contains the
	// predicate value (case-insensitive element equality).
	OpContains Operator = iota + 1
	// OpEq matches scalar equality (case-insensitive for strings, tolerant
	// for booleans).
	OpEq
	// OpGTE matches numeric greater-or-equal.
	OpGTE
	// OpLTE matches numeric less-or-equal.
	OpLTE
)

// Predicate is a single comparison over one metadata field.
type Predicate struct {
	Field string
	Op    Operator
	Value any
}

// Clause is an OR-group of predicates over one field. A record satisfies a
// clause when any of its predicates match.
type Clause struct {
	Predicates []Predicate
}

// Filter is a predicate tree: an AND of clauses. A record satisfies the
// filter when every clause matches. A nil *Filter means "no filtering";
// callers must treat nil and an empty clause list identically.
type Filter struct {
	Clauses []Clause
}

// NewFilter returns an empty filter ready for And chaining.
func NewFilter() *Filter {
	return &Filter{}
}

// Contains builds a list-membership predicate.
func Contains(field string, value any) Predicate {
	return Predicate{Field: field, Op: OpContains, Value: value}
}

// Eq builds an equality predicate.
func Eq(field string, value any) Predicate {
	return Predicate{Field: field, Op: OpEq, Value: value}
}

// GTE builds a numeric greater-or-equal predicate.
func GTE(field string, value any) Predicate {
	return Predicate{Field: field, Op: OpGTE, Value: value}
}

// LTE builds a numeric less-or-equal predicate.
func LTE(field string, value any) Predicate {
	return Predicate{Field: field, Op: OpLTE, Value: value}
}

// OrClause groups predicates into an OR clause.
func OrClause(predicates ...Predicate) Clause {
	return Clause{Predicates: predicates}
}

// And appends a clause to the filter and returns it for chaining.
// Clauses without predicates are dropped so they cannot veto every record.
func (f *Filter) And(clause Clause) *Filter {
	if len(clause.Predicates) == 0 {
		return f
	}
	f.Clauses = append(f.Clauses, clause)
	return f
}

// IsEmpty reports whether the filter carries no predicates.
func (f *Filter) IsEmpty() bool {
	if f == nil {
		return true
	}
	for _, clause := range f.Clauses {
		if len(clause.Predicates) > 0 {
			return false
		}
	}
	return true
}
