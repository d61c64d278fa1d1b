package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/artiklo/legato/internal/generate"
	"github.com/artiklo/legato/internal/model"
)

var (
	docType    string
	outText    string
	outJSON    string
	storeDir   string
	genTimeout time.Duration
	noCache    bool
	includeLog bool
	fetchConc  int
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <answers.yaml>",
	Short: "Generate a document from a wizard answer file",
	Long: `Generate assembles one legal document:
- Validate the answers for the document type
- Evaluate the rule set and select clauses
- Order clauses, substitute placeholders, concatenate
- Score the result and write text/JSON outputs

The run is deterministic: the same answers always yield the same document.

Example:
  legato generate answers.yaml
  legato generate answers.yaml --type kira_itiraz --text petition.txt
  legato generate answers.yaml --json report.json --include-log`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&docType, "type", generate.DocTypeRentDispute, "document type")
	generateCmd.Flags().StringVar(&outText, "text", "document.txt", "output text path")
	generateCmd.Flags().StringVar(&outJSON, "json", "", "output JSON report path (optional)")
	generateCmd.Flags().StringVar(&storeDir, "store-dir", "", "clause library directory (default: built-in library in memory)")
	generateCmd.Flags().DurationVar(&genTimeout, "timeout", 30*time.Second, "overall generation timeout")
	generateCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the clause read-through cache")
	generateCmd.Flags().BoolVar(&includeLog, "include-log", false, "include the full generation and assembly traces in JSON output")
	generateCmd.Flags().IntVar(&fetchConc, "fetch-concurrency", 0, "parallel clause fetches (0 = config default)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	answersPath := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), genTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Answers: %s\n", answersPath)
		fmt.Fprintf(os.Stderr, "Document type: %s\n", docType)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	// Build configuration from flags
	cfg := buildConfig()
	cfg.Store.Dir = storeDir
	cfg.Store.CacheEnabled = !noCache
	if fetchConc > 0 {
		cfg.Assembly.FetchConcurrency = fetchConc
	}

	gen, _, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(answersPath)
	if err != nil {
		return fmt.Errorf("read answers: %w", err)
	}
	answers, err := model.ParseAnswers(data)
	if err != nil {
		return err
	}

	report := gen.Generate(ctx, generate.Request{
		DocumentType: docType,
		Answers:      answers,
	})
	if !report.Success {
		return fmt.Errorf("generation failed: %s", report.Error)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Selected %d clauses\n", report.Document.Metadata.ClauseCount)
		fmt.Fprintf(os.Stderr, "✓ Assembled %d words (~%d pages)\n", report.Document.WordCount, report.Document.EstimatedPages)
		fmt.Fprintf(os.Stderr, "✓ Quality score: %d/100\n", report.Document.QualityScore)
		fmt.Fprintln(os.Stderr)
	}

	renderer := generate.NewRenderer(includeLog)
	if outText != "" {
		if err := renderer.RenderText(report, outText); err != nil {
			return fmt.Errorf("render text: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote text: %s\n", outText)
		}
	}
	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", outJSON)
		}
	}

	renderer.RenderSummary(report)
	return nil
}
