package report

import "github.com/jonathan/career-insights/internal/types"

// Readiness indicators never appear as raw numbers in a report. These
// functions map them to the qualitative labels that are rendered instead.

// ReadinessLabel maps the career readiness indicator to a trajectory label
func ReadinessLabel(readiness int) string {
	switch {
	case readiness >= 85:
		return "Advanced Readiness"
	case readiness >= 75:
		return "Progressing Well"
	case readiness >= 65:
		return "Developing Readiness"
	default:
		return "Foundational Stage"
	}
}

// PromotionLabel maps the promotion indicator to an outlook label
func PromotionLabel(promotion int) string {
	switch {
	case promotion >= 75:
		return "Strategic Review Recommended"
	case promotion >= 60:
		return "Emerging Candidacy"
	default:
		return "Continued Development"
	}
}

// PeerLabel maps the peer percentile to a positioning band label
func PeerLabel(percentile int) string {
	switch {
	case percentile >= 90:
		return "Leading Peer Band"
	case percentile >= 75:
		return "Upper Peer Band"
	default:
		return "Developing Peer Band"
	}
}

// IndicatorLabels bundles the three qualitative labels for one run
type IndicatorLabels struct {
	Readiness string `json:"readiness"`
	Promotion string `json:"promotion"`
	Peer      string `json:"peer"`
}

// Labels derives the qualitative labels from the computed indicators
func Labels(ind types.ReadinessIndicators) IndicatorLabels {
	return IndicatorLabels{
		Readiness: ReadinessLabel(ind.CareerReadiness),
		Promotion: PromotionLabel(ind.PromotionIndicator),
		Peer:      PeerLabel(ind.PeerPercentile),
	}
}
