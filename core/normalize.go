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

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NormalizeJobLevel canonicalizes a job-level string for comparison:
// lowercase, hyphens folded to spaces, runs of whitespace collapsed.
// Hyphen folding makes a query-side "entry-level" match a stored
// "entry level". Empty input normalizes to "".
func NormalizeJobLevel(level string) string {
	if level == "" {
		return ""
	}
	level = strings.ToLower(level)
	level = strings.ReplaceAll(level, "-", " ")
	return strings.Join(strings.Fields(level), " ")
}

// CoerceToStringList coerces a metadata value of unknown shape into a string
// list. Stored list fields are serialized as JSON-encoded strings, but values
// read back may be real lists, bare scalars, or malformed strings; ingestion
// and query time must read them identically, so both go through here.
//
// Rules: a list-shaped value is returned element-for-element; a string is
// parsed as strict JSON, with a list result kept, a scalar result wrapped,
// and a parse failure wrapping the raw string; nil or empty input yields an
// empty list. Any other scalar is wrapped as its string form.
func CoerceToStringList(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case []string:
		return v
	case []any:
		return stringify(v)
	case string:
		if v == "" {
			return []string{}
		}
		var parsed any
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			return []string{v}
		}
		if list, ok := parsed.([]any); ok {
			return stringify(list)
		}
		return stringify([]any{parsed})
	default:
		return stringify([]any{v})
	}
}

func stringify(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		switch s := v.(type) {
		case string:
			out = append(out, s)
		case nil:
			// drop nulls inside lists
		default:
			out = append(out, fmt.Sprint(s))
		}
	}
	return out
}

// CoerceInt coerces a metadata value to an integer, tolerating the numeric
// shapes a JSON round trip can produce. Returns the fallback when the value
// does not coerce.
func CoerceInt(value any, fallback int) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		if f, err := v.Float64(); err == nil {
			return int(f)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return int(f)
		}
	}
	return fallback
}

// CoerceBool coerces a metadata value to a boolean, accepting true/false,
// 0/1 in numeric or string form, and yes/no. Returns nil when the value does
// not coerce, preserving the distinction between false and absent.
func CoerceBool(value any) *bool {
	switch v := value.(type) {
	case bool:
		return &v
	case float64:
		b := v != 0
		return &b
	case int:
		b := v != 0
		return &b
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes":
			b := true
			return &b
		case "0", "false", "no":
			b := false
			return &b
		}
	}
	return nil
}
