package model

import "time"

// Category is the closed set of clause categories
type Category string

const (
	CategoryRentGeneral     Category = "KIRA_GENEL"
	CategoryRentIncrease    Category = "KIRA_ARTIRIM"
	CategoryRentObjection   Category = "KIRA_ITIRAZ"
	CategoryRentTermination Category = "KIRA_FESIH"

	CategoryPaymentGeneral Category = "ODEME_GENEL"
	CategoryPaymentPlan    Category = "ODEME_TAKSIT"
	CategoryPaymentDelay   Category = "ODEME_GECIKME"

	CategoryGeneralTerms Category = "GENEL_SARTLAR"
	CategorySignature    Category = "IMZA_BEYAN"
	CategoryDates        Category = "TARIH_ZAMAN"

	CategoryEmployment            Category = "IS_SOZLESME"
	CategoryEmploymentTermination Category = "IS_FESIH"
)

// Valid reports whether the category is one of the closed set
func (c Category) Valid() bool {
	switch c {
	case CategoryRentGeneral, CategoryRentIncrease, CategoryRentObjection,
		CategoryRentTermination, CategoryPaymentGeneral, CategoryPaymentPlan,
		CategoryPaymentDelay, CategoryGeneralTerms, CategorySignature,
		CategoryDates, CategoryEmployment, CategoryEmploymentTermination:
		return true
	}
	return false
}

// UsageContext names a document type a clause may appear in
type UsageContext string

const (
	ContextRentDisputePetition UsageContext = "KIRA_ITIRAZ_DILEKCE"
	ContextRentContract        UsageContext = "KIRA_SOZLESME"
	ContextEmploymentContract  UsageContext = "IS_SOZLESME"
	ContextGeneralPetition     UsageContext = "GENEL_DILEKCE"
)

// Valid reports whether the usage context is one of the closed set
func (u UsageContext) Valid() bool {
	switch u {
	case ContextRentDisputePetition, ContextRentContract,
		ContextEmploymentContract, ContextGeneralPetition:
		return true
	}
	return false
}

// Clause is one versioned, legally-authored fragment of document text.
// The id string (e.g. "HEADER_RENT_DISPUTE_TR_v1") is the addressing key;
// version chains are kept through Supersedes and the Active flag, and at most
// one clause per lineage is active at a time. Records are read-only during
// assembly.
type Clause struct {
	ID          string   `yaml:"clause_id" json:"clause_id"`
	Name        string   `yaml:"clause_name" json:"clause_name"`
	Category    Category `yaml:"clause_category" json:"clause_category"`
	Body        string   `yaml:"clause_text" json:"clause_text"`
	Description string   `yaml:"clause_description,omitempty" json:"clause_description,omitempty"`

	Jurisdiction    string   `yaml:"jurisdiction" json:"jurisdiction"`
	LegalBasis      []string `yaml:"legal_basis" json:"legal_basis"`
	LegalReferences []string `yaml:"legal_references,omitempty" json:"legal_references,omitempty"`

	Version    string `yaml:"version" json:"version"`
	Active     bool   `yaml:"is_active" json:"is_active"`
	Supersedes string `yaml:"supersedes,omitempty" json:"supersedes,omitempty"`

	CreatedBy  string `yaml:"created_by" json:"created_by"`
	ReviewedBy string `yaml:"reviewed_by,omitempty" json:"reviewed_by,omitempty"`
	ApprovedBy string `yaml:"approved_by,omitempty" json:"approved_by,omitempty"`

	CreatedAt time.Time `yaml:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time `yaml:"updated_at,omitempty" json:"updated_at,omitempty"`

	UsageContexts     []UsageContext `yaml:"usage_context" json:"usage_context"`
	RequiredVariables []string       `yaml:"required_variables" json:"required_variables"`
	OptionalVariables []string       `yaml:"optional_variables,omitempty" json:"optional_variables,omitempty"`

	DisplayConditions []Condition `yaml:"display_conditions,omitempty" json:"display_conditions,omitempty"`
	DependencyClauses []string    `yaml:"dependency_clauses,omitempty" json:"dependency_clauses,omitempty"`
}

// UsedIn reports whether the clause is approved for the given document type
func (c *Clause) UsedIn(ctx UsageContext) bool {
	for _, u := range c.UsageContexts {
		if u == ctx {
			return true
		}
	}
	return false
}

// ClausePatch carries the mutable fields of an update. Nil pointers leave the
// stored field untouched; slices replace wholesale when non-nil.
type ClausePatch struct {
	Name              *string        `yaml:"clause_name,omitempty"`
	Category          *Category      `yaml:"clause_category,omitempty"`
	Body              *string        `yaml:"clause_text,omitempty"`
	Description       *string        `yaml:"clause_description,omitempty"`
	LegalBasis        []string       `yaml:"legal_basis,omitempty"`
	LegalReferences   []string       `yaml:"legal_references,omitempty"`
	Version           *string        `yaml:"version,omitempty"`
	Active            *bool          `yaml:"is_active,omitempty"`
	Supersedes        *string        `yaml:"supersedes,omitempty"`
	ReviewedBy        *string        `yaml:"reviewed_by,omitempty"`
	ApprovedBy        *string        `yaml:"approved_by,omitempty"`
	UsageContexts     []UsageContext `yaml:"usage_context,omitempty"`
	RequiredVariables []string       `yaml:"required_variables,omitempty"`
	OptionalVariables []string       `yaml:"optional_variables,omitempty"`
	DisplayConditions []Condition    `yaml:"display_conditions,omitempty"`
	DependencyClauses []string       `yaml:"dependency_clauses,omitempty"`
}

// SearchParams filters a repository search. The zero value matches every
// active clause; ActiveOnly must be disabled explicitly for history queries.
type SearchParams struct {
	Category        Category
	UsageContext    UsageContext
	TextQuery       string
	LegalBasis      []string
	IncludeInactive bool
}
