package report

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/jonathan/career-insights/internal/scoring"
	"github.com/jonathan/career-insights/internal/types"
)

// ChartImage is one rendered chart ready for embedding
type ChartImage struct {
	Name string
	PNG  []byte
}

// ReadinessChart renders the "Career Positioning Overview" bar chart:
// career readiness next to promotion trajectory on a fixed 0-100 axis.
// The chart is a supportive visual inside the report and is the one place
// the indicators are shown graphically rather than as labels.
func ReadinessChart(ind types.ReadinessIndicators) (ChartImage, error) {
	graph := chart.BarChart{
		Title:    "Career Positioning Overview",
		Height:   400,
		Width:    640,
		BarWidth: 80,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Bars: []chart.Value{
			{Value: float64(ind.CareerReadiness), Label: "Career Readiness"},
			{Value: float64(ind.PromotionIndicator), Label: "Promotion Trajectory"},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return ChartImage{}, &RenderError{Format: "png", Message: "readiness chart", Cause: err}
	}

	return ChartImage{Name: "Career Positioning Overview", PNG: buf.Bytes()}, nil
}

// SkillCoverageChart renders declared-skill coverage against the role
// category's core keywords: matched skills next to the remaining declared
// skills. Categories without core keywords (GENERIC) chart declared skills
// only.
func SkillCoverageChart(category scoring.RoleCategory, skills []string) (ChartImage, error) {
	matched := scoring.SkillMatchCount(category, skills)
	declared := len(skills)
	other := declared - matched
	if other < 0 {
		other = 0
	}

	axisMax := float64(declared)
	if axisMax < 1 {
		axisMax = 1
	}

	graph := chart.BarChart{
		Title:    "Skill Coverage Snapshot",
		Height:   400,
		Width:    640,
		BarWidth: 80,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: axisMax},
		},
		Bars: []chart.Value{
			{Value: float64(matched), Label: "Role-Core Skills"},
			{Value: float64(other), Label: "Additional Skills"},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return ChartImage{}, &RenderError{Format: "png", Message: "skill coverage chart", Cause: err}
	}

	return ChartImage{Name: "Skill Coverage Snapshot", PNG: buf.Bytes()}, nil
}
