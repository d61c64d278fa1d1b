package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/artiklo/legato/internal/generate"
	"github.com/artiklo/legato/internal/model"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	ratePerSec   float64
	rateBurst    int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <answers-dir>",
	Short: "Generate documents for a directory of answer files in parallel",
	Long: `Batch generates many documents concurrently:
- Read every *.yaml answer file in the directory
- Generate documents in parallel with configurable worker count
- Rate-limit generation per document type
- Write a text document and JSON report per answer file

Example:
  legato batch ./answers
  legato batch ./answers --concurrency 8 --output-dir ./petitions
  legato batch ./answers --type kira_itiraz --rate 10`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./legato-documents", "output directory for documents")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().Float64Var(&ratePerSec, "rate", 0, "generations per second per document type (0 = config default)")
	batchCmd.Flags().IntVar(&rateBurst, "burst", 0, "rate limiter burst size (0 = config default)")

	batchCmd.Flags().StringVar(&docType, "type", generate.DocTypeRentDispute, "document type for all answer files")
	batchCmd.Flags().StringVar(&storeDir, "store-dir", "", "clause library directory (default: built-in library in memory)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the clause read-through cache")
	batchCmd.Flags().BoolVar(&includeLog, "include-log", false, "include the full traces in JSON reports")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Legato Batch Generation\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Answers dir:  %s\n", dir)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	// Build configuration
	cfg := buildConfig()
	cfg.Store.Dir = storeDir
	cfg.Store.CacheEnabled = !noCache
	cfg.Batch.Concurrency = concurrency
	if ratePerSec > 0 {
		cfg.Batch.RatePerSecond = ratePerSec
	}
	if rateBurst > 0 {
		cfg.Batch.Burst = rateBurst
	}

	gen, _, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "⚙️  Reading answer files...\n")
	items, err := loadBatchItems(dir)
	if err != nil {
		return fmt.Errorf("load answer files: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Loaded %d answer files\n", len(items))
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "⚙️  Generating with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	processor := generate.NewBatchProcessor(gen, cfg.Batch.Concurrency, cfg.Batch.RatePerSecond, cfg.Batch.Burst)
	outcomes := processor.Process(ctx, items)

	successCount := 0
	failureCount := 0
	renderer := generate.NewRenderer(includeLog)

	for _, outcome := range outcomes {
		if !outcome.Report.Success {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %s\n", outcome.Name, outcome.Report.Error)
			continue
		}

		successCount++

		textPath := filepath.Join(outputDir, outcome.Name+".txt")
		jsonPath := filepath.Join(outputDir, outcome.Name+".json")
		if err := renderer.RenderText(outcome.Report, textPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write text: %v\n", outcome.Name, err)
			continue
		}
		if err := renderer.RenderJSON(outcome.Report, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", outcome.Name, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s (quality: %d/100)\n", outcome.Name, outcome.Report.Document.QualityScore)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d documents\n", len(outcomes))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// loadBatchItems reads every *.yaml answer file in a directory. Items are
// named by file basename and returned in sorted order for stable output.
func loadBatchItems(dir string) ([]generate.BatchItem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var items []generate.BatchItem
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		answers, err := model.ParseAnswers(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		base := strings.TrimSuffix(strings.TrimSuffix(name, ".yml"), ".yaml")
		items = append(items, generate.BatchItem{
			Name: base,
			Request: generate.Request{
				DocumentType: docType,
				Answers:      answers,
			},
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}
