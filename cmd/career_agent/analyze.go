package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-insights/internal/analysis"
	"github.com/jonathan/career-insights/internal/config"
	"github.com/jonathan/career-insights/internal/llm"
	"github.com/jonathan/career-insights/internal/observability"
	"github.com/jonathan/career-insights/internal/roster"
	"github.com/jonathan/career-insights/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one career analysis end-to-end",
	Long: `Resolves the employee profile (from a roster file or manual flags), scores
readiness, generates career insights through the configured LLM, and — when
the run is HR-approved — exports the report as PDF and/or DOCX.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath     string
	analyzeRoster         string
	analyzeEmployeeID     string
	analyzeName           string
	analyzeRole           string
	analyzeTargetRole     string
	analyzeExperience     string
	analyzeSkills         string
	analyzeCertifications string
	analyzeConfidence     string
	analyzeResponsibility string
	analyzeApproval       string
	analyzeFormat         string
	analyzeOutputDir      string
	analyzeAPIKey         string
	analyzeVerbose        bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeRoster, "roster", "r", "", "Path to roster CSV/XLSX file")
	analyzeCmd.Flags().StringVar(&analyzeEmployeeID, "employee-id", "", "Employee ID to select from the roster")
	analyzeCmd.Flags().StringVarP(&analyzeName, "name", "n", "", "Employee name (manual entry, or roster lookup by name)")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "Current role (manual entry)")
	analyzeCmd.Flags().StringVar(&analyzeTargetRole, "target-role", "", "Target role (manual entry)")
	analyzeCmd.Flags().StringVar(&analyzeExperience, "experience", "", "Experience in years (manual entry)")
	analyzeCmd.Flags().StringVar(&analyzeSkills, "skills", "", "Comma-separated skills (manual entry)")
	analyzeCmd.Flags().StringVar(&analyzeCertifications, "certifications", "", "Certifications (manual entry)")

	analyzeCmd.Flags().StringVar(&analyzeConfidence, "confidence", string(types.ConfidenceWorking), "Self-assessed confidence level")
	analyzeCmd.Flags().StringVar(&analyzeResponsibility, "responsibility", string(types.ResponsibilityIndependent), "Self-assessed responsibility level")

	analyzeCmd.Flags().StringVar(&analyzeApproval, "approval", string(types.StatusDraft), "Approval status (HR reviewers only; export requires Approved)")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "pdf", "Export format: pdf, docx, or both")
	analyzeCmd.Flags().StringVarP(&analyzeOutputDir, "output", "o", ".", "Directory for exported reports")

	// API key can be passed as a flag, or read from the provider env var
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "LLM API key (optional, defaults to GROQ_API_KEY / GEMINI_API_KEY)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadAnalyzeConfig(cmd)
	if err != nil {
		return err
	}

	profile, err := resolveProfile(cfg)
	if err != nil {
		return err
	}

	assessment := types.SelfAssessment{
		Confidence:     types.ConfidenceLevel(analyzeConfidence),
		Responsibility: types.ResponsibilityLevel(analyzeResponsibility),
	}
	if !assessment.Confidence.Valid() {
		return fmt.Errorf("unknown confidence level: %s", analyzeConfidence)
	}
	if !assessment.Responsibility.Valid() {
		return fmt.Errorf("unknown responsibility level: %s", analyzeResponsibility)
	}

	approval := types.ApprovalStatus(analyzeApproval)
	if !approval.Valid() {
		return fmt.Errorf("unknown approval status: %s", analyzeApproval)
	}

	apiKey := cfg.ResolveAPIKey()
	if apiKey == "" {
		return fmt.Errorf("LLM API key is required (set GROQ_API_KEY or GEMINI_API_KEY, or use --api-key)")
	}

	client, err := llm.NewClient(ctx, cfg.LLMConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintProfile(&profile)
	}

	result, err := analysis.Run(ctx, client, analysis.Options{
		Profile:    profile,
		Assessment: assessment,
		Approval:   approval,
		Weights:    cfg.ScoringWeights(),
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	printer.PrintResult(result)

	if result.Approval != types.StatusApproved {
		fmt.Fprintln(os.Stdout, "Report download requires HR approval; run again with --approval Approved once reviewed.")
		return nil
	}

	return exportReports(result, cfg.OutputDir)
}

// loadAnalyzeConfig merges the optional config file with explicit flags.
// Command-line arguments take priority over config file values.
func loadAnalyzeConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg config.Config
	if analyzeConfigPath != "" {
		loaded, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		cfg = *loaded

		if analyzeVerbose {
			fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	if cmd.Flags().Changed("roster") {
		cfg.Roster = analyzeRoster
	}
	if cmd.Flags().Changed("employee-id") {
		cfg.EmployeeID = analyzeEmployeeID
	}
	if cmd.Flags().Changed("name") {
		cfg.Name = analyzeName
	}
	if cmd.Flags().Changed("role") {
		cfg.Role = analyzeRole
	}
	if cmd.Flags().Changed("target-role") {
		cfg.TargetRole = analyzeTargetRole
	}
	if cmd.Flags().Changed("experience") {
		cfg.Experience = analyzeExperience
	}
	if cmd.Flags().Changed("skills") {
		cfg.Skills = analyzeSkills
	}
	if cmd.Flags().Changed("certifications") {
		cfg.Certifications = analyzeCertifications
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = analyzeOutputDir
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	return &cfg, nil
}

// resolveProfile selects the roster path when a roster file is configured
// and falls back to manual entry when the roster lookup cannot identify the
// employee.
func resolveProfile(cfg *config.Config) (types.EmployeeProfile, error) {
	manual := roster.ManualFields{
		EmployeeID:     cfg.EmployeeID,
		Name:           cfg.Name,
		Role:           cfg.Role,
		TargetRole:     cfg.TargetRole,
		Experience:     cfg.Experience,
		Skills:         cfg.Skills,
		Certifications: cfg.Certifications,
	}

	if cfg.Roster == "" {
		return roster.ResolveManual(manual), nil
	}

	file, err := os.Open(cfg.Roster)
	if err != nil {
		return types.EmployeeProfile{}, fmt.Errorf("failed to open roster: %w", err)
	}
	defer func() { _ = file.Close() }()

	var loaded *roster.Roster
	if strings.EqualFold(filepath.Ext(cfg.Roster), ".xlsx") {
		loaded, err = roster.LoadXLSX(file)
	} else {
		loaded, err = roster.LoadCSV(file)
	}
	if err != nil {
		return types.EmployeeProfile{}, err
	}

	var rec roster.Record
	if cfg.EmployeeID != "" {
		rec, err = loaded.FindByID(cfg.EmployeeID)
	} else {
		rec, err = loaded.FindByName(cfg.Name)
	}
	if err != nil {
		// Manual flags let the caller proceed without the roster row.
		if cfg.Role != "" {
			fmt.Fprintf(os.Stderr, "Roster lookup failed (%v); using manual entry\n", err)
			return roster.ResolveManual(manual), nil
		}
		return types.EmployeeProfile{}, err
	}

	return roster.ResolveRecord(rec), nil
}

// exportReports writes the approved report artifacts into outputDir
func exportReports(result *analysis.Result, outputDir string) error {
	base := result.Profile.EmployeeID
	if base == "" {
		base = strings.ReplaceAll(result.Profile.Name, " ", "_")
	}
	if base == "" {
		base = "employee"
	}

	formats := strings.ToLower(analyzeFormat)
	wantPDF := formats == "pdf" || formats == "both"
	wantDOCX := formats == "docx" || formats == "both"
	if !wantPDF && !wantDOCX {
		return fmt.Errorf("unknown export format: %s", analyzeFormat)
	}

	if wantPDF {
		path := filepath.Join(outputDir, base+"_Career_Report.pdf")
		if err := writeArtifact(path, result.ExportPDF); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	}
	if wantDOCX {
		path := filepath.Join(outputDir, base+"_Career_Report.docx")
		if err := writeArtifact(path, result.ExportDOCX); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	}

	return nil
}

func writeArtifact(path string, render func(w io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render(file); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return err
	}
	return file.Close()
}
