// Package validation decides whether a candidate record may be persisted.
// Each record type declares a RuleSet: required fields, normalizers, numeric
// ranges, enums and store-wide unique fields. Apply runs every check and
// reports all failures of a kind at once rather than stopping at the first.
package validation

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/studentrecords/backend/internal/pkg/apperrors"
)

// Normalizer rewrites a raw string value before validation and uniqueness checks
type Normalizer func(string) string

// Built-in normalizers
var (
	Trim      Normalizer = strings.TrimSpace
	Lowercase Normalizer = strings.ToLower
)

// ExistenceChecker answers whether a record with the given field value is
// already stored. Implemented by repositories; the rule engine only reads.
type ExistenceChecker interface {
	Exists(ctx context.Context, field, value string) (bool, error)
}

// ExistsFunc adapts a function to the ExistenceChecker interface
type ExistsFunc func(ctx context.Context, field, value string) (bool, error)

// Exists implements ExistenceChecker
func (f ExistsFunc) Exists(ctx context.Context, field, value string) (bool, error) {
	return f(ctx, field, value)
}

// Rule describes the constraints on a single field of a candidate record.
type Rule struct {
	Field       string
	Required    bool
	Normalizers []Normalizer
	// Min/Max bound integer fields; both zero disables the range check
	Min, Max int
	// Enum restricts the value to an exact member of the list
	Enum []string
	// Unique requires no existing record to hold the same normalized value
	Unique bool
}

// RuleSet is the declarative rule table for one record type.
type RuleSet struct {
	// Resource names the record type in duplicate errors ("Student", "Admin")
	Resource string
	Rules    []Rule
}

// Apply checks candidate against every rule. It returns the normalized
// candidate on success. Failures come back as *apperrors.ValidationError
// (all missing fields listed, then all malformed values listed) or
// *apperrors.DuplicateError for the first uniqueness collision. Apply never
// writes; uniqueness checks are read-only queries through store.
func (rs *RuleSet) Apply(ctx context.Context, candidate map[string]any, store ExistenceChecker) (map[string]any, error) {
	normalized := make(map[string]any, len(candidate))
	for k, v := range candidate {
		normalized[k] = v
	}

	var missing []string
	for _, rule := range rs.Rules {
		if rule.Required && isEmpty(normalized[rule.Field]) {
			missing = append(missing, rule.Field)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewMissingFieldsError(missing)
	}

	var problems []string
	for _, rule := range rs.Rules {
		value, ok := normalized[rule.Field]
		if !ok || isEmpty(value) {
			continue
		}

		if s, isString := value.(string); isString {
			for _, n := range rule.Normalizers {
				s = n(s)
			}
			normalized[rule.Field] = s
			value = s
		}

		if rule.Min != 0 || rule.Max != 0 {
			n, err := toInt(value)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s must be a number", rule.Field))
				continue
			}
			normalized[rule.Field] = n
			if n < rule.Min || n > rule.Max {
				problems = append(problems, fmt.Sprintf("%s must be between %d and %d", rule.Field, rule.Min, rule.Max))
				continue
			}
		}

		if len(rule.Enum) > 0 {
			s := fmt.Sprintf("%v", normalized[rule.Field])
			if !contains(rule.Enum, s) {
				problems = append(problems, fmt.Sprintf("%s is not a valid %s", s, rule.Field))
			}
		}
	}
	if len(problems) > 0 {
		return nil, &apperrors.ValidationError{Problems: problems}
	}

	for _, rule := range rs.Rules {
		if !rule.Unique {
			continue
		}
		s, ok := normalized[rule.Field].(string)
		if !ok || s == "" {
			continue
		}
		exists, err := store.Exists(ctx, rule.Field, s)
		if err != nil {
			return nil, fmt.Errorf("uniqueness check for %s: %w", rule.Field, err)
		}
		if exists {
			return nil, &apperrors.DuplicateError{Resource: rs.Resource, Field: rule.Field}
		}
	}

	return normalized, nil
}

// isEmpty treats absent values, empty/blank strings and zero numbers as missing
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case int:
		return t == 0
	case int64:
		return t == 0
	case float64:
		return t == 0
	}
	return false
}

func toInt(v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case float64:
		return int(t), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(t))
	}
	return 0, fmt.Errorf("not a number: %v", v)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
