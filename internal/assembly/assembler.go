// Package assembly builds final document text from selected clauses.
//
// The assembler orchestrates the rule engine and the clause repository:
// select, order, fetch, resolve placeholders, concatenate. Per-item problems
// (missing clause, missing variable, unresolved token) degrade gracefully
// into log warnings; only rule-engine failure, store transport failure or an
// unexpected fault abort the run.
package assembly

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/artiklo/legato/internal/clause"
	"github.com/artiklo/legato/internal/model"
	"github.com/artiklo/legato/internal/rule"
	"github.com/artiklo/legato/internal/worker"
)

// Version tags every generated document via the SISTEM_VERSIYONU placeholder
// and the assembly metadata.
const Version = "1.0.0"

// System placeholders injected into every document, never caller-supplied.
const (
	PlaceholderDate    = "DILEKCE_TARIHI"
	PlaceholderVersion = "SISTEM_VERSIYONU"
)

const dateLayout = "02.01.2006" // tr-TR short date

// Assembler combines rule engine and repository into documents
type Assembler struct {
	repo   clause.Repository
	engine *rule.Engine

	// FetchConcurrency is the fan-out width for clause fetching.
	// 1 fetches sequentially; ordering is reimposed either way.
	FetchConcurrency int

	now func() time.Time
}

// NewAssembler creates an assembler over the given repository and engine
func NewAssembler(repo clause.Repository, engine *rule.Engine) *Assembler {
	return &Assembler{
		repo:             repo,
		engine:           engine,
		FetchConcurrency: 1,
		now:              time.Now,
	}
}

// AssembleDocument runs the full pipeline for one answer set. The returned
// result always carries the complete log up to wherever the run ended.
func (a *Assembler) AssembleDocument(ctx context.Context, answers model.AnswerSet, ruleSet *model.RuleSet) (result *model.AssemblyResult) {
	start := a.now()
	var log []model.AssemblyLogEntry

	defer func() {
		// The containment boundary of last resort: any fault that escapes the
		// per-stage handling still yields a fully-logged error result.
		if r := recover(); r != nil {
			log = appendLog(log, "assembly", model.StatusError, fmt.Sprintf("unexpected failure: %v", r), a.now().Sub(start))
			result = a.errorResult(log, fmt.Sprintf("unexpected failure: %v", r))
		}
	}()

	log = appendLog(log, "initialization", model.StatusSuccess, "document assembly started", 0)

	// 1. Rule processing
	stageStart := a.now()
	ruleResult, err := a.engine.ProcessRules(answers, ruleSet)
	if err != nil {
		log = appendLog(log, "rule_processing", model.StatusError, fmt.Sprintf("rule processing failed: %v", err), a.now().Sub(stageStart))
		return a.errorResult(log, fmt.Sprintf("rule processing failed: %v", err))
	}
	log = appendLog(log, "rule_processing", model.StatusSuccess,
		fmt.Sprintf("selected %d clauses from %d rules", len(ruleResult.SelectedClauses), len(ruleSet.Rules)), a.now().Sub(stageStart))

	// 2. Clause ordering
	stageStart = a.now()
	orderedIDs := a.engine.OrderClauses(ruleResult.SelectedClauses)
	log = appendLog(log, "clause_ordering", model.StatusSuccess, "clauses ordered", a.now().Sub(stageStart))

	// 3. Clause fetching
	stageStart = a.now()
	clauses, fetchLog, err := a.fetchClauses(ctx, orderedIDs)
	log = append(log, fetchLog...)
	if err != nil {
		log = appendLog(log, "clause_fetching", model.StatusError, fmt.Sprintf("clause fetching failed: %v", err), a.now().Sub(stageStart))
		return a.errorResult(log, fmt.Sprintf("clause fetching failed: %v", err))
	}
	log = appendLog(log, "clause_fetching", model.StatusSuccess,
		fmt.Sprintf("fetched %d of %d clauses", len(clauses), len(orderedIDs)), a.now().Sub(stageStart))

	// 4.+5. Placeholder map and analysis
	stageStart = a.now()
	placeholders := a.BuildPlaceholderMap(answers)
	requiredVars, missingVars := analyzePlaceholders(clauses, placeholders)
	if len(missingVars) > 0 {
		log = appendLog(log, "placeholder_analysis", model.StatusWarning,
			fmt.Sprintf("missing %d variables: %s", len(missingVars), strings.Join(missingVars, ", ")), a.now().Sub(stageStart))
	} else {
		log = appendLog(log, "placeholder_analysis", model.StatusSuccess, "all required variables available", a.now().Sub(stageStart))
	}

	// 6.+7. Substitution and final assembly
	stageStart = a.now()
	texts, substLog := a.substituteClauses(clauses, placeholders)
	log = append(log, substLog...)
	documentText := joinClauses(texts)
	log = appendLog(log, "document_assembly", model.StatusSuccess,
		fmt.Sprintf("document assembled (%d chars)", len(documentText)), a.now().Sub(stageStart))

	// 8. Metadata
	metadata := buildMetadata(ruleSet.DocumentType, clauses, documentText, requiredVars, missingVars, a.now())

	log = appendLog(log, "completion", model.StatusSuccess,
		fmt.Sprintf("assembly completed in %v", a.now().Sub(start)), a.now().Sub(start))

	return &model.AssemblyResult{
		Success:      true,
		DocumentText: documentText,
		Metadata:     metadata,
		Log:          log,
	}
}

// fetchClauses resolves ordered ids against the repository. Missing ids are
// logged as warnings and omitted; transport failures are fatal. When
// FetchConcurrency exceeds 1 the lookups fan out over a worker pool and the
// input order is reimposed afterwards.
func (a *Assembler) fetchClauses(ctx context.Context, ids []string) ([]*model.Clause, []model.AssemblyLogEntry, error) {
	fetched := make(map[string]*model.Clause, len(ids))
	failures := make(map[string]error)

	if a.FetchConcurrency > 1 && len(ids) > 1 {
		pool := worker.NewPool(a.FetchConcurrency)
		pool.Start()
		for _, id := range ids {
			pool.Submit(&fetchJob{repo: a.repo, id: id, ctx: ctx})
		}
		for _, res := range pool.Wait() {
			fr := res.(*fetchResult)
			if fr.err != nil {
				failures[fr.id] = fr.err
				continue
			}
			fetched[fr.id] = fr.clause
		}
	} else {
		for _, id := range ids {
			c, err := a.repo.GetByID(ctx, id)
			if err != nil {
				failures[id] = err
				continue
			}
			fetched[id] = c
		}
	}

	var clauses []*model.Clause
	var log []model.AssemblyLogEntry
	for _, id := range ids {
		if c, ok := fetched[id]; ok {
			clauses = append(clauses, c)
			continue
		}
		err := failures[id]
		if errors.Is(err, clause.ErrNotFound) {
			log = append(log, model.AssemblyLogEntry{
				Step:     "clause_fetching",
				ClauseID: id,
				Status:   model.StatusWarning,
				Message:  fmt.Sprintf("clause not found: %s", id),
			})
			continue
		}
		return nil, log, fmt.Errorf("fetch %s: %w", id, err)
	}
	return clauses, log, nil
}

type fetchJob struct {
	repo clause.Repository
	id   string
	ctx  context.Context
}

func (j *fetchJob) Execute(context.Context) worker.Result {
	c, err := j.repo.GetByID(j.ctx, j.id)
	return &fetchResult{id: j.id, clause: c, err: err}
}

type fetchResult struct {
	id     string
	clause *model.Clause
	err    error
}

func (r *fetchResult) GetError() error { return r.err }

func (a *Assembler) errorResult(log []model.AssemblyLogEntry, msg string) *model.AssemblyResult {
	return &model.AssemblyResult{
		Success:      false,
		DocumentText: "",
		Metadata: model.DocumentMetadata{
			DocumentType:      "error",
			GeneratedAt:       a.now().UTC(),
			LegalReferences:   []string{},
			RequiredVariables: []string{},
			MissingVariables:  []string{},
			AssemblyVersion:   Version,
		},
		Log:   log,
		Error: msg,
	}
}

func appendLog(log []model.AssemblyLogEntry, step string, status model.LogStatus, message string, duration time.Duration) []model.AssemblyLogEntry {
	return append(log, model.AssemblyLogEntry{
		Step:     step,
		Status:   status,
		Message:  message,
		Duration: duration,
	})
}

func buildMetadata(documentType string, clauses []*model.Clause, documentText string, requiredVars, missingVars []string, now time.Time) model.DocumentMetadata {
	var refs []string
	seen := make(map[string]struct{})
	add := func(ref string) {
		if _, dup := seen[ref]; !dup {
			seen[ref] = struct{}{}
			refs = append(refs, ref)
		}
	}
	for _, c := range clauses {
		for _, ref := range c.LegalBasis {
			add(ref)
		}
		for _, ref := range c.LegalReferences {
			add(ref)
		}
	}
	if refs == nil {
		refs = []string{}
	}

	return model.DocumentMetadata{
		DocumentType:      documentType,
		GeneratedAt:       now.UTC(),
		ClauseCount:       len(clauses),
		TotalCharacters:   len(documentText),
		LegalReferences:   refs,
		RequiredVariables: requiredVars,
		MissingVariables:  missingVars,
		AssemblyVersion:   Version,
	}
}
