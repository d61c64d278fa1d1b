package model

// Operator is the closed set of condition operators
type Operator string

const (
	OpGreater  Operator = ">"
	OpLess     Operator = "<"
	OpEqual    Operator = "=="
	OpNotEqual Operator = "!="
	OpIncludes Operator = "includes"
	OpExcludes Operator = "excludes"
)

// Valid reports whether the operator is recognized
func (op Operator) Valid() bool {
	switch op {
	case OpGreater, OpLess, OpEqual, OpNotEqual, OpIncludes, OpExcludes:
		return true
	}
	return false
}

// Condition compares one answer field against a fixed operand
type Condition struct {
	Field    string   `yaml:"field" json:"field"`
	Operator Operator `yaml:"operator" json:"operator"`
	Value    Value    `yaml:"value" json:"value"`
}

// Rule maps an AND-combined condition list to clause ids. When the conditions
// hold, ThenClauses join the selection; otherwise ElseClauses (if any) do.
// Priority orders evaluation (and therefore the execution log), not the final
// selection, which is a set union across all rules.
type Rule struct {
	ID          string      `yaml:"rule_id" json:"rule_id"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Conditions  []Condition `yaml:"condition" json:"condition"`
	ThenClauses []string    `yaml:"then_clauses" json:"then_clauses"`
	ElseClauses []string    `yaml:"else_clauses,omitempty" json:"else_clauses,omitempty"`
	Priority    int         `yaml:"priority" json:"priority"`
}

// RuleSetMetadata records authorship of a rule set
type RuleSetMetadata struct {
	CreatedBy string `yaml:"created_by,omitempty" json:"created_by,omitempty"`
	CreatedAt string `yaml:"created_at,omitempty" json:"created_at,omitempty"`
	Version   string `yaml:"version,omitempty" json:"version,omitempty"`
}

// RuleSet is the deterministic selection policy for one document type
type RuleSet struct {
	DocumentType string           `yaml:"document_type" json:"document_type"`
	Rules        []Rule           `yaml:"rules" json:"rules"`
	Metadata     *RuleSetMetadata `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}
