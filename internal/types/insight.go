package types

// Section is one titled block of model-generated insight text
type Section struct {
	Title string   `json:"title"`
	Body  []string `json:"body"`
}

// InsightDocument is the ordered sequence of sections parsed from one model
// response. Order is exactly as returned by the model; titles are kept
// verbatim and never validated against the mandated heading list.
type InsightDocument struct {
	Sections []Section `json:"sections"`
}

// Empty reports whether the document contains no sections
func (d InsightDocument) Empty() bool {
	return len(d.Sections) == 0
}

// ReadinessIndicators holds the three internal numeric indicators computed
// per analysis run. They are internal context only: every user-visible
// surface renders them as qualitative labels, never as raw numbers.
type ReadinessIndicators struct {
	CareerReadiness    int `json:"career_readiness"`
	PromotionIndicator int `json:"promotion_indicator"`
	PeerPercentile     int `json:"peer_percentile"`
}
