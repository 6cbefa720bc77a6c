package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundlens/internal/analysis"
)

func testSections() []SectionChart {
	industryMetrics := []analysis.IndustryMetric{
		{Industry: "AI", Value: 300},
		{Industry: "Software", Value: 200},
		{Industry: analysis.OtherBucket, Value: 0},
	}
	pairMetrics := []analysis.InvestorIndustryMetric{
		{Investor: "X", Industry: "AI", Value: 2},
		{Investor: "Y", Industry: "AI", Value: 1},
	}

	return []SectionChart{
		{
			Section: SectionDealsByIndustry,
			Chart: RankedBar(industryMetrics[:2], BarStyle{
				Title:   "Number of Deals by Industry (Top 10, 2025)",
				Width:   "1000px",
				Height:  "600px",
				Palette: Viridis,
			}),
		},
		{
			Section: SectionFundingByIndustry,
			Chart: FundingTreemap(industryMetrics, TreemapStyle{
				Title:   "Money Invested by Industry (Top 20 + Other, 2025)",
				Width:   "1000px",
				Height:  "700px",
				Palette: Blues,
			}),
		},
		{
			Section: SectionTopInvestorDeals,
			Chart: GroupedBar(pairMetrics, []string{"X", "Y"}, []string{"AI"}, GroupedBarStyle{
				Title:      "Industry-wise Deal Distribution for Top 5 Investors (2025)",
				Width:      "1600px",
				Height:     "900px",
				ShowLabels: true,
			}),
		},
	}
}

func TestRenderDashboard(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, RenderDashboard(&buf, testSections()))
	out := buf.String()

	assert.Contains(t, out, "<title>"+PageTitle+"</title>")
	assert.Contains(t, out, "<h1>"+PageTitle+"</h1>")
	assert.Contains(t, out, PageSubtitle)

	// Every section header and insight block made it into the page.
	for _, s := range testSections() {
		assert.Contains(t, out, "<h2>"+s.Section.Title+"</h2>")
		assert.Contains(t, out, s.Section.Insight)
	}

	// Chart titles survive embedding in the echarts option blobs.
	assert.Contains(t, out, "Number of Deals by Industry (Top 10, 2025)")
	assert.Contains(t, out, "Money Invested by Industry (Top 20 + Other, 2025)")
}

func TestRenderDashboard_SectionOrdering(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, RenderDashboard(&buf, testSections()))
	out := buf.String()

	sections := testSections()
	for i := 0; i < len(sections)-1; i++ {
		header := "<h2>" + sections[i].Section.Title + "</h2>"
		next := "<h2>" + sections[i+1].Section.Title + "</h2>"

		hIdx := strings.Index(out, header)
		iIdx := strings.Index(out, sections[i].Section.Insight)
		nIdx := strings.Index(out, next)
		require.GreaterOrEqual(t, hIdx, 0)
		require.GreaterOrEqual(t, iIdx, 0)
		require.GreaterOrEqual(t, nIdx, 0)

		// Header precedes its insight, which precedes the next header.
		assert.Less(t, hIdx, iIdx)
		assert.Less(t, iIdx, nIdx)
	}

	// The last insight lands before the closing body tag.
	last := sections[len(sections)-1].Section.Insight
	assert.Less(t, strings.Index(out, last), strings.Index(out, "</body>"))
}

func TestRenderDashboard_InjectsCSS(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, RenderDashboard(&buf, testSections()))
	out := buf.String()

	assert.Contains(t, out, ".page-header")
	assert.Contains(t, out, ".insight")
	assert.Less(t, strings.Index(out, ".page-header"), strings.Index(out, "</head>"))
}

func TestInsightList(t *testing.T) {
	got := insightList("first", "second")
	assert.Equal(t, `<div class="insight"><strong>Insights</strong><ul><li>first</li><li>second</li></ul></div>`, got)
}
