package model

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// AnswerSet maps wizard field names (lower_snake_case) to their values.
// The engine treats it as opaque except for fields named in conditions and
// placeholders.
type AnswerSet map[string]Value

// Lookup returns the value for a field. Absent and explicitly-null fields
// both report false.
func (a AnswerSet) Lookup(field string) (Value, bool) {
	v, ok := a[field]
	if !ok || !v.IsValid() {
		return Value{}, false
	}
	return v, true
}

// Fields returns the field names in sorted order, for deterministic iteration
func (a AnswerSet) Fields() []string {
	fields := make([]string, 0, len(a))
	for f := range a {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// ParseAnswers decodes a YAML document of field: value pairs
func ParseAnswers(data []byte) (AnswerSet, error) {
	var answers AnswerSet
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}
	return answers, nil
}

// AnswersFromAny converts an untyped map (JSON decode output) to an AnswerSet
func AnswersFromAny(raw map[string]any) (AnswerSet, error) {
	answers := make(AnswerSet, len(raw))
	for field, x := range raw {
		v, err := FromAny(x)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		answers[field] = v
	}
	return answers, nil
}
