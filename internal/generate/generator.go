// Package generate is the outward-facing document generation facade. It picks
// the rule set for a document type, validates answers, drives assembly,
// post-processes the text and scores the outcome.
package generate

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artiklo/legato/internal/assembly"
	"github.com/artiklo/legato/internal/clause"
	"github.com/artiklo/legato/internal/library"
	"github.com/artiklo/legato/internal/model"
)

// Short document type names accepted in requests
const (
	DocTypeRentDispute     = "kira_itiraz"
	DocTypeEmployment      = "is_sozlesme"
	DocTypeGeneralPetition = "genel_dilekce"
)

const wordsPerPage = 250

// AnswerValidator checks an answer set for one document type
type AnswerValidator func(model.AnswerSet) model.AnswerValidation

// documentType bundles everything the facade knows about one document type
type documentType struct {
	ruleSet   *model.RuleSet
	usage     model.UsageContext
	validator AnswerValidator
}

// Request asks for one document
type Request struct {
	DocumentType string          `yaml:"document_type" json:"document_type"`
	Answers      model.AnswerSet `yaml:"answers" json:"answers"`
	UserID       string          `yaml:"user_id,omitempty" json:"user_id,omitempty"`
	SessionID    string          `yaml:"session_id,omitempty" json:"session_id,omitempty"`
}

// Generator turns requests into finished documents
type Generator struct {
	repo      clause.Repository
	assembler *assembly.Assembler
	types     map[string]documentType
	now       func() time.Time
}

// NewGenerator creates a facade with the built-in document types registered
func NewGenerator(repo clause.Repository, assembler *assembly.Assembler) *Generator {
	g := &Generator{
		repo:      repo,
		assembler: assembler,
		types:     make(map[string]documentType),
		now:       time.Now,
	}
	g.Register(DocTypeRentDispute, library.RentDisputeRuleSet(), model.ContextRentDisputePetition, library.ValidateRentDisputeAnswers)
	return g
}

// Register makes a document type available for generation. A nil validator
// accepts any non-empty answer set.
func (g *Generator) Register(name string, ruleSet *model.RuleSet, usage model.UsageContext, validator AnswerValidator) {
	g.types[name] = documentType{ruleSet: ruleSet, usage: usage, validator: validator}
}

// DocumentTypes lists the registered short names
func (g *Generator) DocumentTypes() []string {
	names := make([]string, 0, len(g.types))
	for name := range g.types {
		names = append(names, name)
	}
	return names
}

// RuleSetFor returns the rule set registered under a document type
func (g *Generator) RuleSetFor(name string) (*model.RuleSet, bool) {
	dt, ok := g.types[name]
	if !ok {
		return nil, false
	}
	return dt.ruleSet, true
}

// ValidateAnswers runs the registered validator for a document type
func (g *Generator) ValidateAnswers(name string, answers model.AnswerSet) model.AnswerValidation {
	dt, ok := g.types[name]
	if ok && dt.validator != nil {
		return dt.validator(answers)
	}
	if len(answers) == 0 {
		return model.AnswerValidation{MissingFields: []string{"answers"}, Warnings: []string{}}
	}
	return model.AnswerValidation{Valid: true, MissingFields: []string{}, Warnings: []string{}}
}

// Generate runs the full pipeline for one request. Answer problems degrade
// into validation warnings; an unknown document type or a failed assembly
// yields an error report with the log intact.
func (g *Generator) Generate(ctx context.Context, req Request) (report *model.GenerationReport) {
	start := g.now()
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	var log []model.GenerationStep

	defer func() {
		if r := recover(); r != nil {
			log = g.logStep(log, "error", model.StatusError, fmt.Sprintf("unexpected failure: %v", r), start)
			report = g.errorReport(sessionID, log, fmt.Sprintf("unexpected failure: %v", r))
		}
	}()

	log = g.logStep(log, "initialization", model.StatusSuccess, "document generation started", start)

	dt, ok := g.types[req.DocumentType]
	if !ok {
		log = g.logStep(log, "rule_set_selection", model.StatusError,
			fmt.Sprintf("unsupported document type: %s", req.DocumentType), start)
		return g.errorReport(sessionID, log, fmt.Sprintf("unsupported document type: %s", req.DocumentType))
	}

	// 1. Answer validation
	stepStart := g.now()
	validation := g.ValidateAnswers(req.DocumentType, req.Answers)
	status := model.StatusSuccess
	if !validation.Valid {
		status = model.StatusWarning
	}
	log = g.logStep(log, "validation", status,
		fmt.Sprintf("validation completed, %d missing fields", len(validation.MissingFields)), stepStart)

	// 2. Rule set selection
	stepStart = g.now()
	log = g.logStep(log, "rule_set_selection", model.StatusSuccess,
		fmt.Sprintf("rule set loaded, %d rules", len(dt.ruleSet.Rules)), stepStart)

	// 3. Make sure the clause library is populated
	stepStart = g.now()
	if err := g.ensureSeeded(ctx, dt.usage); err != nil {
		log = g.logStep(log, "database_check", model.StatusWarning,
			fmt.Sprintf("clause store check failed: %v", err), stepStart)
	} else {
		log = g.logStep(log, "database_check", model.StatusSuccess, "clause store ready", stepStart)
	}

	// 4. Assembly. The wizard never asks for the document type, so the rule
	// conditions see it as an injected answer.
	assemblyStart := g.now()
	answers := make(model.AnswerSet, len(req.Answers)+1)
	for field, val := range req.Answers {
		answers[field] = val
	}
	answers["document_type"] = model.String(req.DocumentType)

	assemblyResult := g.assembler.AssembleDocument(ctx, answers, dt.ruleSet)
	assemblyTime := g.now().Sub(assemblyStart)
	if !assemblyResult.Success {
		log = g.logStep(log, "assembly", model.StatusError, assemblyResult.Error, assemblyStart)
		rep := g.errorReport(sessionID, log, assemblyResult.Error)
		rep.Validation = &validation
		rep.Assembly = assemblyResult
		return rep
	}
	log = g.logStep(log, "assembly", model.StatusSuccess,
		fmt.Sprintf("document assembled, %d clauses", assemblyResult.Metadata.ClauseCount), assemblyStart)

	// 5. Post-processing and scoring
	postStart := g.now()
	content := PostProcess(assemblyResult.DocumentText)
	quality := Score(assemblyResult)
	stats := assembly.Stats(content)
	log = g.logStep(log, "post_processing", model.StatusSuccess,
		fmt.Sprintf("post-processing completed, quality score %d/100", quality), postStart)
	postTime := g.now().Sub(postStart)

	total := g.now().Sub(start)
	log = g.logStep(log, "completion", model.StatusSuccess,
		fmt.Sprintf("generation completed in %v", total), start)

	metadata := assemblyResult.Metadata
	metadata.TotalCharacters = stats.Characters

	return &model.GenerationReport{
		Success:   true,
		SessionID: sessionID,
		Document: model.GeneratedDocument{
			Title:          Title(req.DocumentType, req.Answers),
			Content:        content,
			Preview:        assembly.Preview(content, 400),
			Metadata:       metadata,
			WordCount:      stats.Words,
			EstimatedPages: estimatePages(stats.Words),
			QualityScore:   quality,
		},
		Log:        log,
		Validation: &validation,
		Assembly:   assemblyResult,
		Performance: model.PerformanceStats{
			Total:          total,
			Assembly:       assemblyTime,
			PostProcessing: postTime,
		},
	}
}

// ensureSeeded imports the built-in library when the store has no clauses for
// the usage context yet. A pre-populated store is left alone, and contexts the
// library has no clauses for never trigger an import attempt.
func (g *Generator) ensureSeeded(ctx context.Context, usage model.UsageContext) error {
	if !library.Covers(usage) {
		return nil
	}
	existing, err := g.repo.GetByUsageContext(ctx, usage)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	_, err = library.Seed(ctx, g.repo)
	return err
}

var (
	blankRunPattern     = regexp.MustCompile(`\n\s*\n\s*\n`)
	leadingSpacePattern = regexp.MustCompile(`(?m)^[ \t]+`)
)

// PostProcess normalizes assembled text: runs of blank lines collapse to one
// blank line, line-leading whitespace is stripped, the result is trimmed.
func PostProcess(text string) string {
	text = blankRunPattern.ReplaceAllString(text, "\n\n")
	text = leadingSpacePattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Title builds a human-readable document title from the answers
func Title(documentType string, answers model.AnswerSet) string {
	switch documentType {
	case DocTypeRentDispute:
		plaintiff := "Kiracı"
		if v, ok := answers.Lookup("kiraci_ad_soyad"); ok && v.String() != "" {
			plaintiff = v.String()
		}
		property := "Taşınmaz"
		if v, ok := answers.Lookup("mulk_il_ilce"); ok && v.String() != "" {
			property = v.String()
		}
		return fmt.Sprintf("%s - Kira Artırım İtirazı (%s)", plaintiff, property)
	default:
		return fmt.Sprintf("Hukuki Belge - %s", documentType)
	}
}

func estimatePages(words int) int {
	if words <= 0 {
		return 0
	}
	return (words + wordsPerPage - 1) / wordsPerPage
}

func (g *Generator) logStep(log []model.GenerationStep, step string, status model.LogStatus, message string, since time.Time) []model.GenerationStep {
	now := g.now()
	return append(log, model.GenerationStep{
		Step:      step,
		Status:    status,
		Message:   message,
		Timestamp: now,
		Duration:  now.Sub(since),
	})
}

func (g *Generator) errorReport(sessionID string, log []model.GenerationStep, msg string) *model.GenerationReport {
	return &model.GenerationReport{
		Success:   false,
		SessionID: sessionID,
		Document: model.GeneratedDocument{
			Title: "Hata",
			Metadata: model.DocumentMetadata{
				DocumentType:      "error",
				GeneratedAt:       g.now().UTC(),
				LegalReferences:   []string{},
				RequiredVariables: []string{},
				MissingVariables:  []string{},
				AssemblyVersion:   assembly.Version,
			},
		},
		Log:   log,
		Error: msg,
	}
}
