package rule

import (
	"fmt"

	"github.com/artiklo/legato/internal/model"
)

// Validation is the outcome of a rule-set authoring check
type Validation struct {
	Valid  bool     `json:"is_valid" yaml:"is_valid"`
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// ValidateRuleSet checks a rule set at authoring/import time. Generation
// assumes rule sets have passed this.
func (e *Engine) ValidateRuleSet(ruleSet *model.RuleSet) Validation {
	var errs []string

	if ruleSet == nil {
		return Validation{Errors: []string{"rule set is nil"}}
	}
	if ruleSet.DocumentType == "" {
		errs = append(errs, "document type is required")
	}
	if len(ruleSet.Rules) == 0 {
		errs = append(errs, "at least one rule is required")
	}

	for i, r := range ruleSet.Rules {
		name := r.ID
		if name == "" {
			errs = append(errs, fmt.Sprintf("rule %d: rule_id is required", i))
			name = fmt.Sprintf("#%d", i)
		}
		if len(r.Conditions) == 0 {
			errs = append(errs, fmt.Sprintf("rule %s: at least one condition is required", name))
		}
		if len(r.ThenClauses) == 0 {
			errs = append(errs, fmt.Sprintf("rule %s: then_clauses cannot be empty", name))
		}
		for j, cond := range r.Conditions {
			if cond.Field == "" {
				errs = append(errs, fmt.Sprintf("rule %s, condition %d: field is required", name, j))
			}
			if !cond.Operator.Valid() {
				errs = append(errs, fmt.Sprintf("rule %s, condition %d: invalid operator %q", name, j, cond.Operator))
			}
			if !cond.Value.IsValid() {
				errs = append(errs, fmt.Sprintf("rule %s, condition %d: value is required", name, j))
			}
		}
	}

	return Validation{Valid: len(errs) == 0, Errors: errs}
}
