package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// varValidator evaluates single-value tags. validator.Validate is safe for
// concurrent use, so one instance serves every RuleSet.
var varValidator = validator.New(validator.WithRequiredStructEnabled())

// Failure is one field-level rule violation.
type Failure struct {
	Field   string
	Message string
}

// Failures is the ordered result of RuleSet.Validate: grouped by field in
// declaration order, and within a field in check declaration order.
type Failures []Failure

// ByField regroups failures into the field-to-messages mapping used by the
// structured error response.
func (fs Failures) ByField() map[string][]string {
	if len(fs) == 0 {
		return nil
	}

	out := make(map[string][]string)
	for _, f := range fs {
		out[f.Field] = append(out[f.Field], f.Message)
	}
	return out
}

// Check is a single (predicate, message) pair. The predicate is a
// go-playground/validator tag evaluated against one field value.
type Check struct {
	tag     string
	message string
}

// Required fails when the value is empty. String values are trimmed before
// evaluation, so whitespace-only input counts as empty.
func Required(message string) Check {
	return Check{tag: "required", message: message}
}

// MaxLen fails when a string is longer than n. Empty values pass; pair it
// with Required when the field is mandatory.
func MaxLen(n int, message string) Check {
	return Check{tag: fmt.Sprintf("omitempty,max=%d", n), message: message}
}

// Email fails when a non-empty string is not a syntactically valid address.
func Email(message string) Check {
	return Check{tag: "omitempty,email", message: message}
}

// Positive fails unless the numeric value is strictly greater than zero.
func Positive(message string) Check {
	return Check{tag: "gt=0", message: message}
}

// NotNegative fails unless the numeric value is greater than or equal to zero.
func NotNegative(message string) Check {
	return Check{tag: "gte=0", message: message}
}

type rule[T any] struct {
	field  string
	value  func(T) any
	checks []Check
}

// RuleSet is an ordered, data-driven validation table for one entity type.
//
// Declaring a new field or entity means extending a table, not editing
// control flow. Validate is a pure function of the candidate plus the table.
type RuleSet[T any] struct {
	rules []rule[T]
}

// NewRuleSet returns an empty rule table for T.
func NewRuleSet[T any]() *RuleSet[T] {
	return &RuleSet[T]{}
}

// Field appends checks for one field. Order of Field calls fixes the output
// grouping order; order of checks fixes the order within the field.
func (rs *RuleSet[T]) Field(name string, value func(T) any, checks ...Check) *RuleSet[T] {
	rs.rules = append(rs.rules, rule[T]{field: name, value: value, checks: checks})
	return rs
}

// Validate evaluates every check of every rule independently and returns all
// failures. It never short-circuits: a candidate with three invalid fields
// yields entries for all three in one call. An empty result means valid.
func (rs *RuleSet[T]) Validate(candidate T) Failures {
	var out Failures

	for _, r := range rs.rules {
		value := r.value(candidate)
		if s, ok := value.(string); ok {
			value = strings.TrimSpace(s)
		}

		for _, c := range r.checks {
			if err := varValidator.Var(value, c.tag); err != nil {
				out = append(out, Failure{Field: r.field, Message: c.message})
			}
		}
	}

	return out
}
