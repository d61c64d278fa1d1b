package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/artiklo/legato/internal/clause"
	"github.com/artiklo/legato/internal/library"
	"github.com/artiklo/legato/internal/model"
	"github.com/artiklo/legato/internal/rule"
)

var (
	rulesFile  string
	testRuleID string
)

// rulesCmd represents the rules command group
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Validate and dry-run rule sets",
	Long: `Author-time tooling for rule sets.

'validate' checks structure: ids, operators, condition values and non-empty
clause lists. 'test' dry-runs a rule set (or a single rule) against an answer
file and shows which rules matched and what they contributed, without
assembling a document.`,
}

var rulesValidateCmd = &cobra.Command{
	Use:   "validate [ruleset.yaml]",
	Short: "Validate a rule set (built-in set when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRulesValidate,
}

var rulesTestCmd = &cobra.Command{
	Use:   "test <answers.yaml>",
	Short: "Dry-run rule evaluation against an answer file",
	Args:  cobra.ExactArgs(1),
	RunE:  runRulesTest,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesValidateCmd)
	rulesCmd.AddCommand(rulesTestCmd)

	rulesTestCmd.Flags().StringVar(&rulesFile, "rules", "", "rule set YAML file (default: built-in rent dispute set)")
	rulesTestCmd.Flags().StringVar(&testRuleID, "rule", "", "test a single rule id instead of the whole set")
}

func loadRuleSet(path string) (*model.RuleSet, error) {
	if path == "" {
		return library.RentDisputeRuleSet(), nil
	}
	return clause.LoadRuleSet(path)
}

func runRulesValidate(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	ruleSet, err := loadRuleSet(path)
	if err != nil {
		return err
	}

	validation := rule.NewEngine().ValidateRuleSet(ruleSet)
	if validation.Valid {
		fmt.Printf("✓ Rule set %q is valid (%d rules)\n", ruleSet.DocumentType, len(ruleSet.Rules))
		return nil
	}

	fmt.Fprintf(os.Stderr, "Rule set %q has %d problems:\n", ruleSet.DocumentType, len(validation.Errors))
	for _, e := range validation.Errors {
		fmt.Fprintf(os.Stderr, "  ✗ %s\n", e)
	}
	return fmt.Errorf("rule set validation failed")
}

func runRulesTest(cmd *cobra.Command, args []string) error {
	ruleSet, err := loadRuleSet(rulesFile)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read answers: %w", err)
	}
	answers, err := model.ParseAnswers(data)
	if err != nil {
		return err
	}
	// Rule conditions may test the document type even though the wizard
	// never asks for it.
	if _, ok := answers["document_type"]; !ok {
		answers["document_type"] = model.String("kira_itiraz")
	}

	engine := rule.NewEngine()

	if testRuleID != "" {
		for _, r := range ruleSet.Rules {
			if r.ID != testRuleID {
				continue
			}
			outcome := engine.TestRule(r, answers)
			fmt.Printf("Rule %s: matched=%t\n", r.ID, outcome.Matched)
			fmt.Printf("  Conditions: %s\n", outcome.Details)
			fmt.Printf("  Contributes: %v\n", outcome.Clauses)
			return nil
		}
		return fmt.Errorf("rule %q not found in rule set %q", testRuleID, ruleSet.DocumentType)
	}

	result, err := engine.ProcessRules(answers, ruleSet)
	if err != nil {
		return fmt.Errorf("process rules: %w", err)
	}

	for _, exec := range result.Log {
		mark := "✗"
		if exec.Matched {
			mark = "✓"
		}
		fmt.Printf("%s %-28s %v\n", mark, exec.RuleID, exec.Clauses)
		if exec.Note != "" && verbose {
			fmt.Printf("    %s\n", exec.Note)
		}
	}

	ordered := engine.OrderClauses(result.SelectedClauses)
	fmt.Printf("\nSelected %d clauses (document order):\n", len(ordered))
	for i, id := range ordered {
		fmt.Printf("  %2d. %s\n", i+1, id)
	}
	return nil
}
