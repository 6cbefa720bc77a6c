package chart

// PageTitle is the dashboard's browser and header title.
const PageTitle = "Startup Funding Rounds Analysis 2025"

// PageSubtitle sits under the header.
const PageSubtitle = "Interactive visualization of deals, funding, and investor activity by industry."

// Section pairs a dashboard section's header text and narrative insight
// block with its rendered chart position. The insight text is fixed
// editorial copy about the 2025 dataset, never recomputed.
type Section struct {
	Title   string
	Insight string
}

// The six dashboard sections, in page order.
var (
	SectionDealsByIndustry = Section{
		Title: "1. Number of Deals by Industry",
		Insight: insightList(
			"Artificial Intelligence (AI) leads by a wide margin (~446 deals).",
			"Software (~351 deals) is the second strongest sector.",
			"SaaS (179) and Information Technology (166) form a strong second tier.",
			"Traditional sectors like Manufacturing (48) and FinTech (45) are lower in deal count.",
			"AI dominates deal activity; investors favor scalable software-driven businesses.",
		),
	}
	SectionFundingByIndustry = Section{
		Title: "2. Money Invested by Industry",
		Insight: insightList(
			"AI: ~$369M, largest single block; \"Other\": ~$346M, indicating long-tail diversification.",
			"Software: ~$244M, Information Technology: ~$191M, Generative AI: ~$93M, SaaS: ~$78M.",
			"AI dominates both volume and capital; capital spreads into emerging niches.",
			"Generative AI raises large amounts per deal, reflecting high investor conviction.",
		),
	}
	SectionTopInvestorDeals = Section{
		Title: "3. Industry-wise Deals by Top 5 Investors",
		Insight: insightList(
			"Y Combinator dominates deal count across almost all industries, especially AI, Software, SaaS, IT.",
			"Techstars is diversified at lower scale; Plug and Play is more selective.",
			"Pioneer Fund and Team Ignite focus on early-stage AI + Software.",
			"AI is the common overlap sector for all top investors.",
		),
	}
	SectionTopInvestorFunding = Section{
		Title: "4. Money Invested by Top 5 Investors",
		Insight: insightList(
			"YC deploys ~$200M+, 2-3x more than the other four combined.",
			"YC leads in AI (~$69M) and Generative AI (~$52M), diversifying broadly.",
			"Overall AI dominance persists even with YC's broad portfolio.",
		),
	}
	SectionExcludingYC = Section{
		Title: "5. Top Investors (Excluding YC)",
		Insight: insightList(
			"Pioneer Fund leads (~$82-85M), far ahead of peers.",
			"AI captures 80-90% of capital from Pioneer and Team Ignite, showing strong sector focus.",
			"Smaller investors (Plug and Play, Techstars) are diversified but deploy much less.",
			"AI boom is broad-based, not just YC-driven.",
		),
	}
	SectionAverageFunding = Section{
		Title: "6. Average Pre-Seed Funding per Deal by Industry",
		Insight: insightList(
			"Generative AI tops at ~$1.37M per deal, nearly 4x B2B (~$354K).",
			"High averages in GenAI and Information Technology reflect premium valuations.",
			"Manufacturing ranks high (~$923K), likely due to capital needs.",
			"SaaS, B2B, and Health Care have lower averages, indicating tighter discipline.",
			"Capital is polarizing toward \"hot\" technical sectors early on.",
		),
	}
)

func insightList(items ...string) string {
	out := `<div class="insight"><strong>Insights</strong><ul>`
	for _, item := range items {
		out += "<li>" + item + "</li>"
	}
	return out + `</ul></div>`
}
