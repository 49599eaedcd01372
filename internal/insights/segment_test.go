package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment_TwoSections(t *testing.T) {
	doc := Segment("### Alpha\nline1\n\n### Beta\nline2")

	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "Alpha", doc.Sections[0].Title)
	assert.Equal(t, []string{"line1"}, doc.Sections[0].Body)
	assert.Equal(t, "Beta", doc.Sections[1].Title)
	assert.Equal(t, []string{"line2"}, doc.Sections[1].Body)
}

func TestSegment_NoDelimiter(t *testing.T) {
	doc := Segment("The employee demonstrates steady growth.\nContinued exposure is advised.")

	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "", doc.Sections[0].Title)
	assert.Len(t, doc.Sections[0].Body, 2)
}

func TestSegment_BlankLinesDropped(t *testing.T) {
	doc := Segment("### Overview\n\nfirst\n\n\nsecond\n")

	require.Len(t, doc.Sections, 1)
	assert.Equal(t, []string{"first", "second"}, doc.Sections[0].Body)
}

func TestSegment_WhitespaceFragmentsDiscarded(t *testing.T) {
	doc := Segment("###   \n\n### Real Section\ncontent\n###\n")

	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Real Section", doc.Sections[0].Title)
}

func TestSegment_OrderPreservedTitlesVerbatim(t *testing.T) {
	// Titles outside the mandated list pass through untouched; the
	// segmenter trusts the model without verifying.
	doc := Segment("### Zeta\nz\n### Alpha\na\n### Zeta\nagain")

	require.Len(t, doc.Sections, 3)
	assert.Equal(t, "Zeta", doc.Sections[0].Title)
	assert.Equal(t, "Alpha", doc.Sections[1].Title)
	assert.Equal(t, "Zeta", doc.Sections[2].Title)
}

func TestSegment_Empty(t *testing.T) {
	assert.True(t, Segment("").Empty())
	assert.True(t, Segment("   \n\n  ").Empty())
}

func TestSegment_TitleOnlySection(t *testing.T) {
	doc := Segment("### Promotion Readiness Statement\n")

	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Promotion Readiness Statement", doc.Sections[0].Title)
	assert.Empty(t, doc.Sections[0].Body)
}

func TestStripScoreNumbers_ThenSegment(t *testing.T) {
	raw := "### Peer Benchmark Summary\nThe employee ranks in the top 85% of peers.\n"

	doc := Segment(StripScoreNumbers(raw))

	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Peer Benchmark Summary", doc.Sections[0].Title)
	assert.NotContains(t, doc.Sections[0].Body[0], "85")
}
