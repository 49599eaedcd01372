// Package analysis orchestrates one career analysis run: resolve the
// profile, classify and score, compose the prompt, call the model, sanitize
// and segment the response. Each run is synchronous and owns its inputs; the
// model call is the only suspension point.
package analysis

import (
	"context"
	"io"

	"github.com/jonathan/career-insights/internal/insights"
	"github.com/jonathan/career-insights/internal/llm"
	"github.com/jonathan/career-insights/internal/prompts"
	"github.com/jonathan/career-insights/internal/report"
	"github.com/jonathan/career-insights/internal/scoring"
	"github.com/jonathan/career-insights/internal/types"
)

// Options configures one analysis run
type Options struct {
	Profile    types.EmployeeProfile
	Assessment types.SelfAssessment
	Approval   types.ApprovalStatus
	Weights    scoring.Weights
}

// Result is the complete outcome of one analysis run. It is request-scoped
// state: the caller carries it explicitly from the analysis step to the
// export step instead of relying on ambient globals.
type Result struct {
	Profile    types.EmployeeProfile
	Assessment types.SelfAssessment
	Approval   types.ApprovalStatus
	Category   scoring.RoleCategory
	Indicators types.ReadinessIndicators
	Labels     report.IndicatorLabels
	Insights   types.InsightDocument
	RawText    string
}

// Run executes one analysis. The LLM call failure is terminal: no insights
// means no result and no report.
func Run(ctx context.Context, client llm.Client, opts Options) (*Result, error) {
	category := scoring.ClassifyRole(opts.Profile.CurrentRole)
	indicators := scoring.Compute(opts.Weights, category, opts.Profile.Skills, opts.Profile.ExperienceYears)

	prompt := prompts.Compose(opts.Profile, opts.Assessment, indicators)

	raw, err := client.Generate(ctx, prompts.SystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	sanitized := insights.StripScoreNumbers(raw)
	doc := insights.Segment(sanitized)

	approval := opts.Approval
	if !approval.Valid() {
		approval = types.StatusDraft
	}

	return &Result{
		Profile:    opts.Profile,
		Assessment: opts.Assessment,
		Approval:   approval,
		Category:   category,
		Indicators: indicators,
		Labels:     report.Labels(indicators),
		Insights:   doc,
		RawText:    sanitized,
	}, nil
}

// ExportPDF assembles and renders the run as a PDF. It fails with an
// ApprovalError unless the run is Approved.
func (r *Result) ExportPDF(w io.Writer) error {
	doc, err := r.assemble()
	if err != nil {
		return err
	}
	return report.RenderPDF(doc, w)
}

// ExportDOCX assembles and renders the run as a DOCX. It fails with an
// ApprovalError unless the run is Approved.
func (r *Result) ExportDOCX(w io.Writer) error {
	doc, err := r.assemble()
	if err != nil {
		return err
	}
	return report.RenderDOCX(doc, w)
}

func (r *Result) assemble() (*report.Document, error) {
	readinessChart, err := report.ReadinessChart(r.Indicators)
	if err != nil {
		return nil, err
	}
	coverageChart, err := report.SkillCoverageChart(r.Category, r.Profile.Skills)
	if err != nil {
		return nil, err
	}

	charts := []report.ChartImage{readinessChart, coverageChart}
	return report.Assemble(r.Profile, r.Labels, r.Approval, r.Insights, charts)
}
