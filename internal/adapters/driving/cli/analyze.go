package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docrank-cli/internal/core/domain"
	"github.com/custodia-labs/docrank-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docrank-cli/internal/logger"
	"github.com/custodia-labs/docrank-cli/internal/profile"
)

var (
	analyzeTemplate   string
	analyzeRole       string
	analyzeExperience string
	analyzeDomain     string
	analyzeGoals      []string
	analyzeKeywords   []string
	analyzePrefs      []string
	analyzeJob        string
	analyzeFocus      []string
	analyzeTopK       int
	analyzeTopN       int
	analyzeJSON       bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Rank document sections for a persona and job",
	Long: `Reads the given documents, scores every section and sub-section
against the persona and job-to-be-done, and prints the ranked results.
Unreadable or unsupported files are skipped and reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeTemplate, "template", "", "persona template to start from (see 'docrank templates')")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "persona role, e.g. \"Data Scientist\"")
	analyzeCmd.Flags().StringVar(&analyzeExperience, "experience", "", "persona experience level (junior, senior, lead)")
	analyzeCmd.Flags().StringVar(&analyzeDomain, "domain", "", "persona subject domain, e.g. \"Healthcare\"")
	analyzeCmd.Flags().StringSliceVar(&analyzeGoals, "goal", nil, "persona goal (repeatable)")
	analyzeCmd.Flags().StringSliceVar(&analyzeKeywords, "keyword", nil, "explicit persona keyword (repeatable)")
	analyzeCmd.Flags().StringSliceVar(&analyzePrefs, "prefer", nil, "persona context preference (repeatable)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "job-to-be-done description (required)")
	analyzeCmd.Flags().StringSliceVar(&analyzeFocus, "focus", nil, "job focus area (repeatable)")
	analyzeCmd.Flags().IntVarP(&analyzeTopK, "top-k", "k", 0, "number of ranked sections and sub-sections to return")
	analyzeCmd.Flags().IntVarP(&analyzeTopN, "top-n", "n", 0, "number of top sections eligible for sub-section ranking")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output results as JSON")
	_ = analyzeCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}
	if parserRegistry == nil {
		return errors.New("parser registry not configured")
	}

	persona, err := buildPersona()
	if err != nil {
		return err
	}

	docs := loadDocuments(cmd.Context(), args)
	if len(docs) == 0 {
		return errors.New("no readable documents")
	}

	req := driving.AnalysisRequest{
		Documents: docs,
		Persona:   persona,
		Job: domain.JobToBeDone{
			Description: analyzeJob,
			FocusAreas:  analyzeFocus,
		},
		TopK: analyzeTopK,
		TopN: analyzeTopN,
	}

	result, err := analysisService.Analyse(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeJSON {
		return outputAnalysisJSON(cmd, result)
	}
	return outputAnalysisTable(cmd, result)
}

// buildPersona assembles the persona from the template (if any) with
// flag overrides applied on top.
func buildPersona() (domain.Persona, error) {
	var persona domain.Persona
	if analyzeTemplate != "" {
		p, ok := profile.Template(analyzeTemplate)
		if !ok {
			return domain.Persona{}, fmt.Errorf("unknown persona template %q", analyzeTemplate)
		}
		persona = p
	}

	if analyzeRole != "" {
		persona.Role = analyzeRole
	}
	if analyzeExperience != "" {
		persona.ExperienceLevel = analyzeExperience
	}
	if analyzeDomain != "" {
		persona.Domain = analyzeDomain
	}
	persona.Goals = append(persona.Goals, analyzeGoals...)
	persona.Keywords = append(persona.Keywords, analyzeKeywords...)
	persona.ContextPreferences = append(persona.ContextPreferences, analyzePrefs...)

	return persona, nil
}

// loadDocuments reads and parses each file, skipping failures so one
// bad file never aborts the run.
func loadDocuments(ctx context.Context, paths []string) []domain.Document {
	docs := make([]domain.Document, 0, len(paths))
	for _, path := range paths {
		parser, ok := parserRegistry.ParserFor(path)
		if !ok {
			logger.Error("Skipping %q: %v", path, domain.ErrUnsupportedFormat)
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("Skipping %q: %v", path, err)
			continue
		}

		doc, err := parser.Parse(ctx, path, data)
		if err != nil {
			logger.Error("Skipping %q: %v", path, err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs
}

// JSON output shapes. Kept separate from the domain types so the
// output schema stays stable.
type analysisJSON struct {
	Sections    []sectionJSON    `json:"sections"`
	SubSections []subSectionJSON `json:"subsections"`
	Metrics     metricsJSON      `json:"metrics"`
}

type sectionJSON struct {
	Rank     int                `json:"rank"`
	Score    float64            `json:"score"`
	Document string             `json:"document"`
	Title    string             `json:"title"`
	Content  string             `json:"content"`
	Signals  map[string]float64 `json:"signals"`
}

type subSectionJSON struct {
	Rank    int                `json:"rank"`
	Score   float64            `json:"score"`
	Parent  int                `json:"parent_section"`
	Content string             `json:"content"`
	Signals map[string]float64 `json:"signals"`
}

type metricsJSON struct {
	DocumentsRequested int    `json:"documents_requested"`
	DocumentsProcessed int    `json:"documents_processed"`
	DocumentsSkipped   int    `json:"documents_skipped"`
	SectionsAnalysed   int    `json:"sections_analysed"`
	Elapsed            string `json:"elapsed"`
	WithinTimeBudget   bool   `json:"within_time_budget"`
	WithinMemoryBudget bool   `json:"within_memory_budget"`
}

func outputAnalysisJSON(cmd *cobra.Command, result domain.AnalysisResult) error {
	out := analysisJSON{
		Sections:    make([]sectionJSON, 0, len(result.Sections)),
		SubSections: make([]subSectionJSON, 0, len(result.SubSections)),
		Metrics: metricsJSON{
			DocumentsRequested: result.Metrics.DocumentsRequested,
			DocumentsProcessed: result.Metrics.DocumentsProcessed,
			DocumentsSkipped:   result.Metrics.DocumentsSkipped,
			SectionsAnalysed:   result.Metrics.SectionsAnalysed,
			Elapsed:            result.Metrics.Elapsed.Round(time.Millisecond).String(),
			WithinTimeBudget:   result.Metrics.WithinTimeBudget,
			WithinMemoryBudget: result.Metrics.WithinMemoryBudget,
		},
	}

	for _, s := range result.Sections {
		out.Sections = append(out.Sections, sectionJSON{
			Rank:     s.Rank,
			Score:    s.Score,
			Document: s.Section.DocumentName,
			Title:    s.Section.Title,
			Content:  s.Section.Content,
			Signals:  s.Signals,
		})
	}
	for _, s := range result.SubSections {
		out.SubSections = append(out.SubSections, subSectionJSON{
			Rank:    s.Rank,
			Score:   s.Score,
			Parent:  s.SubSection.ParentSectionID,
			Content: s.SubSection.Content,
			Signals: s.Signals,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAnalysisTable(cmd *cobra.Command, result domain.AnalysisResult) error {
	if len(result.Sections) == 0 {
		cmd.Println("No sections ranked.")
		return nil
	}

	cmd.Println("Sections:")
	cmd.Println()
	for _, s := range result.Sections {
		cmd.Printf("  [%d] %s (%.3f)\n", s.Rank, s.Section.Title, s.Score)
		cmd.Printf("      Document: %s\n", s.Section.DocumentName)
		cmd.Printf("      %s\n", snippet(s.Section.Content))
		cmd.Println()
	}

	if len(result.SubSections) > 0 {
		cmd.Println("Sub-sections:")
		cmd.Println()
		for _, s := range result.SubSections {
			cmd.Printf("  [%d] section %d (%.3f)\n", s.Rank, s.SubSection.ParentSectionID, s.Score)
			cmd.Printf("      %s\n", snippet(s.SubSection.Content))
			cmd.Println()
		}
	}

	m := result.Metrics
	cmd.Printf("Analysed %d sections from %d/%d documents in %s\n",
		m.SectionsAnalysed, m.DocumentsProcessed, m.DocumentsRequested,
		m.Elapsed.Round(time.Millisecond))
	return nil
}

// snippet truncates content for table display.
func snippet(content string) string {
	const max = 120
	if len(content) <= max {
		return content
	}
	return content[:max] + "..."
}
