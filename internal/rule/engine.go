// Package rule implements the deterministic clause-selection engine.
//
// Given an answer set and a rule set, the engine decides which clause ids are
// selected and in what canonical order. Identical inputs always produce the
// identical selection and the identical execution log sequence.
package rule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/artiklo/legato/internal/model"
)

// Engine evaluates rule sets against answer sets. It is stateless and safe
// for concurrent use.
type Engine struct{}

// NewEngine creates a rule engine
func NewEngine() *Engine { return &Engine{} }

// ConditionError reports a condition that could not be evaluated. It is
// contained per-rule: the rule logs a failed zero-clause entry and the run
// continues.
type ConditionError struct {
	Field    string
	Operator model.Operator
}

func (e *ConditionError) Error() string {
	return fmt.Sprintf("condition on %q: unknown operator %q", e.Field, e.Operator)
}

// Execution is one entry of the rule execution log
type Execution struct {
	RuleID   string        `json:"rule_id" yaml:"rule_id"`
	Matched  bool          `json:"condition_result" yaml:"condition_result"`
	Clauses  []string      `json:"selected_clauses" yaml:"selected_clauses"`
	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
	Note     string        `json:"note,omitempty" yaml:"note,omitempty"`
}

// Result is the outcome of processing a rule set
type Result struct {
	SelectedClauses []string    `json:"selected_clauses" yaml:"selected_clauses"`
	Log             []Execution `json:"execution_log" yaml:"execution_log"`
}

// EvaluateCondition evaluates a single condition against the answers.
// A missing or null field is always false. Numeric operators coerce both
// sides; a side that does not coerce makes the comparison false rather than
// an error. Only an unrecognized operator is an error.
func (e *Engine) EvaluateCondition(cond model.Condition, answers model.AnswerSet) (bool, error) {
	field, ok := answers.Lookup(cond.Field)
	if !ok {
		return false, nil
	}

	switch cond.Operator {
	case model.OpGreater:
		a, okA := field.Number()
		b, okB := cond.Value.Number()
		return okA && okB && a > b, nil
	case model.OpLess:
		a, okA := field.Number()
		b, okB := cond.Value.Number()
		return okA && okB && a < b, nil
	case model.OpEqual:
		return field.Equal(cond.Value), nil
	case model.OpNotEqual:
		return !field.Equal(cond.Value), nil
	case model.OpIncludes:
		return includes(field, cond.Value), nil
	case model.OpExcludes:
		return !includes(field, cond.Value), nil
	default:
		return false, &ConditionError{Field: cond.Field, Operator: cond.Operator}
	}
}

// includes implements the dual membership/substring semantics. List fields
// test membership (any-of when the operand is itself a list); scalar fields
// test substring containment of the stringified operand.
func includes(field, operand model.Value) bool {
	if field.IsList() {
		if operand.IsList() {
			for _, el := range operand.List() {
				if field.Contains(el) {
					return true
				}
			}
			return false
		}
		return field.Contains(operand)
	}
	return strings.Contains(field.String(), operand.String())
}

// EvaluateConditions is pure AND: every condition must hold
func (e *Engine) EvaluateConditions(conditions []model.Condition, answers model.AnswerSet) (bool, error) {
	for _, cond := range conditions {
		ok, err := e.EvaluateCondition(cond, answers)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// ProcessRules evaluates every rule in ascending priority order and unions
// the contributed clause ids. The selection keeps first-contribution order,
// so the result is fully determined by (answers, ruleSet).
func (e *Engine) ProcessRules(answers model.AnswerSet, ruleSet *model.RuleSet) (*Result, error) {
	if ruleSet == nil {
		return nil, fmt.Errorf("nil rule set")
	}

	sorted := make([]model.Rule, len(ruleSet.Rules))
	copy(sorted, ruleSet.Rules)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Priority < sorted[j].Priority })

	result := &Result{}
	seen := make(map[string]struct{})

	for _, r := range sorted {
		start := time.Now()

		matched, err := e.EvaluateConditions(r.Conditions, answers)
		if err != nil {
			result.Log = append(result.Log, Execution{
				RuleID:   r.ID,
				Matched:  false,
				Clauses:  []string{},
				Duration: time.Since(start),
				Note:     fmt.Sprintf("evaluation failed: %v", err),
			})
			continue
		}

		var contributed []string
		if matched {
			contributed = r.ThenClauses
		} else {
			contributed = r.ElseClauses
		}
		for _, id := range contributed {
			if _, dup := seen[id]; !dup {
				seen[id] = struct{}{}
				result.SelectedClauses = append(result.SelectedClauses, id)
			}
		}

		result.Log = append(result.Log, Execution{
			RuleID:   r.ID,
			Matched:  matched,
			Clauses:  append([]string(nil), contributed...),
			Duration: time.Since(start),
			Note:     fmt.Sprintf("evaluated %d conditions", len(r.Conditions)),
		})
	}

	return result, nil
}

// TestOutcome is the dry-run result for a single rule
type TestOutcome struct {
	Matched bool
	Clauses []string
	Details string
}

// TestRule evaluates one rule in isolation with per-condition detail,
// for authoring and the rules test command.
func (e *Engine) TestRule(r model.Rule, answers model.AnswerSet) TestOutcome {
	matched, err := e.EvaluateConditions(r.Conditions, answers)
	if err != nil {
		return TestOutcome{Details: fmt.Sprintf("error: %v", err)}
	}

	details := make([]string, len(r.Conditions))
	for i, cond := range r.Conditions {
		ok, condErr := e.EvaluateCondition(cond, answers)
		if condErr != nil {
			details[i] = fmt.Sprintf("%s %s %s = error", cond.Field, cond.Operator, cond.Value)
			continue
		}
		details[i] = fmt.Sprintf("%s %s %s = %t", cond.Field, cond.Operator, cond.Value, ok)
	}

	clauses := r.ThenClauses
	if !matched {
		clauses = r.ElseClauses
	}
	return TestOutcome{
		Matched: matched,
		Clauses: append([]string(nil), clauses...),
		Details: strings.Join(details, ", "),
	}
}
