package generate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/artiklo/legato/internal/model"
)

// Renderer writes generation reports to files and prints summaries
type Renderer struct {
	includeLog bool
}

// NewRenderer creates a renderer. With includeLog the JSON output carries the
// full generation and assembly traces; without it only the document.
func NewRenderer(includeLog bool) *Renderer {
	return &Renderer{includeLog: includeLog}
}

// RenderText writes the document content to a plain text file
func (r *Renderer) RenderText(report *model.GenerationReport, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(report.Document.Content+"\n"), 0644); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	return nil
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.GenerationReport, path string) error {
	out := *report
	if !r.includeLog {
		out.Log = nil
		out.Assembly = nil
	}

	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// RenderSummary prints a short human-readable summary to stdout
func (r *Renderer) RenderSummary(report *model.GenerationReport) {
	fmt.Println()
	fmt.Printf("%s\n", report.Document.Title)
	fmt.Printf("%s\n", strings.Repeat("─", len([]rune(report.Document.Title))))
	fmt.Printf("Quality score:   %d/100\n", report.Document.QualityScore)
	fmt.Printf("Clauses:         %d\n", report.Document.Metadata.ClauseCount)
	fmt.Printf("Words:           %d (~%d pages)\n", report.Document.WordCount, report.Document.EstimatedPages)
	fmt.Printf("Legal basis:     %s\n", strings.Join(report.Document.Metadata.LegalReferences, ", "))
	if len(report.Document.Metadata.MissingVariables) > 0 {
		fmt.Printf("Missing values:  %s\n", strings.Join(report.Document.Metadata.MissingVariables, ", "))
	}
	if report.Validation != nil && len(report.Validation.Warnings) > 0 {
		for _, w := range report.Validation.Warnings {
			fmt.Printf("Warning:         %s\n", w)
		}
	}
	fmt.Println()
}
