package model

import "time"

// LogStatus classifies one diagnostic entry
type LogStatus string

const (
	StatusSuccess LogStatus = "success"
	StatusWarning LogStatus = "warning"
	StatusError   LogStatus = "error"
)

// AssemblyLogEntry is one step of the assembly trace. The trace is the single
// source of truth for diagnosing a generation run; nothing is swallowed
// without an entry here.
type AssemblyLogEntry struct {
	Step     string        `json:"step" yaml:"step"`
	ClauseID string        `json:"clause_id,omitempty" yaml:"clause_id,omitempty"`
	Status   LogStatus     `json:"status" yaml:"status"`
	Message  string        `json:"message" yaml:"message"`
	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// DocumentMetadata describes one assembled document
type DocumentMetadata struct {
	DocumentType      string    `json:"document_type" yaml:"document_type"`
	GeneratedAt       time.Time `json:"generated_at" yaml:"generated_at"`
	ClauseCount       int       `json:"clause_count" yaml:"clause_count"`
	TotalCharacters   int       `json:"total_characters" yaml:"total_characters"`
	LegalReferences   []string  `json:"legal_references" yaml:"legal_references"`
	RequiredVariables []string  `json:"required_variables" yaml:"required_variables"`
	MissingVariables  []string  `json:"missing_variables" yaml:"missing_variables"`
	AssemblyVersion   string    `json:"assembly_version" yaml:"assembly_version"`
}

// AssemblyResult is the complete outcome of one assembly run. Per-item
// problems (missing clause, missing variable, unresolved token) surface as
// warnings in the log and still yield a usable document; Success is false
// only for rule-engine failure or an unexpected fault.
type AssemblyResult struct {
	Success      bool               `json:"success" yaml:"success"`
	DocumentText string             `json:"document_text" yaml:"document_text"`
	Metadata     DocumentMetadata   `json:"document_metadata" yaml:"document_metadata"`
	Log          []AssemblyLogEntry `json:"assembly_log" yaml:"assembly_log"`
	Error        string             `json:"error,omitempty" yaml:"error,omitempty"`
}

// Warnings counts warning entries in the assembly log
func (r *AssemblyResult) Warnings() int { return r.countStatus(StatusWarning) }

// Errors counts error entries in the assembly log
func (r *AssemblyResult) Errors() int { return r.countStatus(StatusError) }

func (r *AssemblyResult) countStatus(status LogStatus) int {
	n := 0
	for _, entry := range r.Log {
		if entry.Status == status {
			n++
		}
	}
	return n
}

// GenerationStep is one step of the facade-level trace
type GenerationStep struct {
	Step      string        `json:"step" yaml:"step"`
	Status    LogStatus     `json:"status" yaml:"status"`
	Message   string        `json:"message" yaml:"message"`
	Timestamp time.Time     `json:"timestamp" yaml:"timestamp"`
	Duration  time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// AnswerValidation reports answer-set completeness for a document type
type AnswerValidation struct {
	Valid         bool     `json:"is_valid" yaml:"is_valid"`
	MissingFields []string `json:"missing_fields" yaml:"missing_fields"`
	Warnings      []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// DocumentStats are simple size measures of the rendered text
type DocumentStats struct {
	Characters int `json:"characters" yaml:"characters"`
	Words      int `json:"words" yaml:"words"`
	Lines      int `json:"lines" yaml:"lines"`
	Paragraphs int `json:"paragraphs" yaml:"paragraphs"`
}

// GeneratedDocument is the externally visible document produced by the facade
type GeneratedDocument struct {
	Title    string           `json:"title" yaml:"title"`
	Content  string           `json:"content" yaml:"content"`
	Preview  string           `json:"preview" yaml:"preview"`
	Metadata DocumentMetadata `json:"metadata" yaml:"metadata"`

	WordCount      int `json:"word_count" yaml:"word_count"`
	EstimatedPages int `json:"estimated_pages" yaml:"estimated_pages"`
	QualityScore   int `json:"quality_score" yaml:"quality_score"`
}

// PerformanceStats breaks down where generation time went
type PerformanceStats struct {
	Total          time.Duration `json:"total_ns" yaml:"total_ns"`
	Assembly       time.Duration `json:"assembly_ns" yaml:"assembly_ns"`
	PostProcessing time.Duration `json:"post_processing_ns" yaml:"post_processing_ns"`
}

// GenerationReport is the complete outcome of one facade generation run
type GenerationReport struct {
	Success     bool              `json:"success" yaml:"success"`
	SessionID   string            `json:"session_id" yaml:"session_id"`
	Document    GeneratedDocument `json:"document" yaml:"document"`
	Log         []GenerationStep  `json:"generation_log" yaml:"generation_log"`
	Validation  *AnswerValidation `json:"validation_results,omitempty" yaml:"validation_results,omitempty"`
	Assembly    *AssemblyResult   `json:"assembly,omitempty" yaml:"assembly,omitempty"`
	Performance PerformanceStats  `json:"performance_stats" yaml:"performance_stats"`
	Error       string            `json:"error,omitempty" yaml:"error,omitempty"`
}
