package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/artiklo/legato/internal/clause"
	"github.com/artiklo/legato/internal/library"
	"github.com/artiklo/legato/internal/model"
)

var (
	clauseCategory string
	clauseContext  string
	clauseQuery    string
	showInactive   bool
)

// clausesCmd represents the clauses command group
var clausesCmd = &cobra.Command{
	Use:   "clauses",
	Short: "Inspect and maintain the clause library",
	Long: `Manage the versioned clause library.

Clauses are never hard-deleted: deactivating flips the active flag and the
full version history stays queryable. All listing commands show active
clauses unless --inactive is given.`,
}

var clausesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clauses, optionally filtered by category or usage context",
	RunE:  runClausesList,
}

var clausesShowCmd = &cobra.Command{
	Use:   "show <clause-id>",
	Short: "Show one clause in full, including its text and variables",
	Args:  cobra.ExactArgs(1),
	RunE:  runClausesShow,
}

var clausesVersionsCmd = &cobra.Command{
	Use:   "versions <id-prefix>",
	Short: "Show the version history of a clause lineage",
	Args:  cobra.ExactArgs(1),
	RunE:  runClausesVersions,
}

var clausesImportCmd = &cobra.Command{
	Use:   "import <clauses.yaml>",
	Short: "Bulk-import clause records from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runClausesImport,
}

var clausesSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Import the built-in clause library",
	RunE:  runClausesSeed,
}

var clausesDeactivateCmd = &cobra.Command{
	Use:   "deactivate <clause-id>",
	Short: "Deactivate a clause (soft delete, history preserved)",
	Args:  cobra.ExactArgs(1),
	RunE:  runClausesDeactivate,
}

func init() {
	rootCmd.AddCommand(clausesCmd)
	clausesCmd.AddCommand(clausesListCmd)
	clausesCmd.AddCommand(clausesShowCmd)
	clausesCmd.AddCommand(clausesVersionsCmd)
	clausesCmd.AddCommand(clausesImportCmd)
	clausesCmd.AddCommand(clausesSeedCmd)
	clausesCmd.AddCommand(clausesDeactivateCmd)

	clausesCmd.PersistentFlags().StringVar(&storeDir, "store-dir", "", "clause library directory")

	clausesListCmd.Flags().StringVar(&clauseCategory, "category", "", "filter by clause category")
	clausesListCmd.Flags().StringVar(&clauseContext, "context", "", "filter by usage context")
	clausesListCmd.Flags().StringVar(&clauseQuery, "search", "", "free-text search over name, text and description")
	clausesListCmd.Flags().BoolVar(&showInactive, "inactive", false, "include deactivated clauses")
}

// clauseRepo builds the repository for maintenance commands. The cache is
// skipped: these are one-shot reads and writes.
func clauseRepo() (clause.Repository, error) {
	cfg := buildConfig()
	cfg.Store.Dir = storeDir
	cfg.Store.CacheEnabled = false
	return newRepository(cfg)
}

func runClausesList(cmd *cobra.Command, args []string) error {
	repo, err := clauseRepo()
	if err != nil {
		return err
	}
	ctx := context.Background()

	clauses, err := repo.Search(ctx, model.SearchParams{
		Category:        model.Category(clauseCategory),
		UsageContext:    model.UsageContext(clauseContext),
		TextQuery:       clauseQuery,
		IncludeInactive: showInactive,
	})
	if err != nil {
		return fmt.Errorf("search clauses: %w", err)
	}

	if len(clauses) == 0 {
		fmt.Println("No clauses found. Run 'legato clauses seed' to import the built-in library.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tVERSION\tACTIVE\tNAME")
	for _, c := range clauses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", c.ID, c.Category, c.Version, c.Active, c.Name)
	}
	return w.Flush()
}

func runClausesShow(cmd *cobra.Command, args []string) error {
	repo, err := clauseRepo()
	if err != nil {
		return err
	}

	c, err := repo.GetByID(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("get clause: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal clause: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

func runClausesVersions(cmd *cobra.Command, args []string) error {
	repo, err := clauseRepo()
	if err != nil {
		return err
	}

	versions, err := repo.Versions(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("clause versions: %w", err)
	}
	if len(versions) == 0 {
		fmt.Printf("No versions found for %q\n", args[0])
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVERSION\tACTIVE\tSUPERSEDES\tUPDATED")
	for _, c := range versions {
		updated := ""
		if !c.UpdatedAt.IsZero() {
			updated = c.UpdatedAt.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\t%s\n", c.ID, c.Version, c.Active, c.Supersedes, updated)
	}
	return w.Flush()
}

func runClausesImport(cmd *cobra.Command, args []string) error {
	repo, err := clauseRepo()
	if err != nil {
		return err
	}

	clauses, err := clause.LoadClauses(args[0])
	if err != nil {
		return err
	}

	count, err := repo.BulkImport(context.Background(), clauses)
	if err != nil {
		return fmt.Errorf("import failed after %d clauses: %w", count, err)
	}
	fmt.Printf("✓ Imported %d clauses\n", count)
	return nil
}

func runClausesSeed(cmd *cobra.Command, args []string) error {
	repo, err := clauseRepo()
	if err != nil {
		return err
	}

	count, err := library.Seed(context.Background(), repo)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Seeded %d clauses\n", count)
	return nil
}

func runClausesDeactivate(cmd *cobra.Command, args []string) error {
	repo, err := clauseRepo()
	if err != nil {
		return err
	}

	if err := repo.Deactivate(context.Background(), args[0]); err != nil {
		return fmt.Errorf("deactivate clause: %w", err)
	}
	fmt.Printf("✓ Deactivated %s\n", args[0])
	return nil
}
