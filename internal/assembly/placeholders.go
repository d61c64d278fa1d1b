package assembly

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/artiklo/legato/internal/model"
)

// placeholderPattern matches any {TOKEN} left in a clause body after
// substitution, whether or not the token is a known variable.
var placeholderPattern = regexp.MustCompile(`\{[^}]+\}`)

// BuildPlaceholderMap turns an answer set into substitution values. Keys are
// upper-cased field names; lists render comma-separated. The current date and
// the engine version are always present and cannot be overridden by answers
// processed before them.
func (a *Assembler) BuildPlaceholderMap(answers model.AnswerSet) map[string]string {
	placeholders := make(map[string]string, len(answers)+2)
	for _, field := range answers.Fields() {
		placeholders[strings.ToUpper(field)] = answers[field].Render()
	}
	placeholders[PlaceholderDate] = a.now().Format(dateLayout)
	placeholders[PlaceholderVersion] = Version
	return placeholders
}

// analyzePlaceholders unions the required variables of the given clauses and
// reports which ones have no usable value. A variable present with an empty
// string counts as missing; system placeholders never do. Both slices keep
// first-occurrence order over the clause list.
func analyzePlaceholders(clauses []*model.Clause, placeholders map[string]string) (required, missing []string) {
	required = []string{}
	missing = []string{}
	seen := make(map[string]struct{})

	for _, c := range clauses {
		for _, name := range c.RequiredVariables {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			required = append(required, name)

			key := strings.ToUpper(name)
			if key == PlaceholderDate || key == PlaceholderVersion {
				continue
			}
			if placeholders[key] == "" {
				missing = append(missing, name)
			}
		}
	}
	return required, missing
}

// substituteClauses resolves placeholders in every clause body. Blank bodies
// are dropped. Tokens with no value stay verbatim and are counted as a
// warning per clause.
func (a *Assembler) substituteClauses(clauses []*model.Clause, placeholders map[string]string) ([]string, []model.AssemblyLogEntry) {
	var texts []string
	var log []model.AssemblyLogEntry

	for _, c := range clauses {
		text := c.Body
		for name, value := range placeholders {
			if value == "" {
				continue
			}
			text = strings.ReplaceAll(text, "{"+name+"}", value)
		}

		if unresolved := placeholderPattern.FindAllString(text, -1); len(unresolved) > 0 {
			log = append(log, model.AssemblyLogEntry{
				Step:     "placeholder_substitution",
				ClauseID: c.ID,
				Status:   model.StatusWarning,
				Message:  fmt.Sprintf("%d unresolved placeholders: %s", len(unresolved), strings.Join(unresolved, ", ")),
			})
		} else {
			log = append(log, model.AssemblyLogEntry{
				Step:     "placeholder_substitution",
				ClauseID: c.ID,
				Status:   model.StatusSuccess,
				Message:  "clause processed",
			})
		}

		if strings.TrimSpace(text) == "" {
			continue
		}
		texts = append(texts, text)
	}
	return texts, log
}

// joinClauses concatenates clause texts with blank lines between them
func joinClauses(texts []string) string {
	return strings.TrimSpace(strings.Join(texts, "\n\n"))
}
