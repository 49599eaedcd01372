package insights

import "regexp"

// The prompt forbids the model from restating the internal indicators as
// numbers, but that instruction is advisory only. Before segmentation the
// response is run through a post-filter that strips bare integers adjacent
// to score-like words, so an ignored instruction cannot leak raw indicator
// values into the report.
var (
	// "readiness: 85", "promotion indicator of 72", "score is 90"
	trailingScore = regexp.MustCompile(`(?i)\b((?:readiness|promotion|score|indicator|percentile|rating|benchmark)(?:\s+\w+){0,2}?)(\s*[:=]\s*|\s+(?:of|is|at)\s+)(\d{1,3})\b`)
	// "top 85%", "85% readiness", "85 percentile"
	percentFigure = regexp.MustCompile(`(?i)\b(\d{1,3})\s*(%|percent|percentile)`)
)

const redaction = "[internal]"

// StripScoreNumbers removes bare integers that sit next to score-like words.
// Ordinary numbers (years, dates, roadmap ranges) are left alone.
func StripScoreNumbers(raw string) string {
	out := trailingScore.ReplaceAllString(raw, "$1$2"+redaction)
	out = percentFigure.ReplaceAllString(out, redaction+" $2")
	return out
}
