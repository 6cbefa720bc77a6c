package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"fundlens/internal/analysis"
	"fundlens/internal/chart"
	"fundlens/internal/dataset"
)

// DashboardService computes the funding dashboard's six analyses from the
// loaded dataset and renders them as a page or a JSON payload.
type DashboardService struct {
	store  *dataset.Store
	logger *slog.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(store *dataset.Store, logger *slog.Logger) *DashboardService {
	return &DashboardService{
		store:  store,
		logger: logger.With(slog.String("service", "dashboard")),
	}
}

// Analyses holds the results of all six dashboard aggregations.
type Analyses struct {
	DealsByIndustry   []analysis.IndustryMetric `json:"deals_by_industry"`
	FundingByIndustry []analysis.IndustryMetric `json:"funding_by_industry"`

	TopInvestors  []string `json:"top_investors"`
	TopIndustries []string `json:"top_industries"`

	InvestorDeals   []analysis.InvestorIndustryMetric `json:"investor_deals"`
	InvestorFunding []analysis.InvestorIndustryMetric `json:"investor_funding"`

	TopInvestorsExcludingYC    []string                          `json:"top_investors_excluding_yc"`
	InvestorFundingExcludingYC []analysis.InvestorIndustryMetric `json:"investor_funding_excluding_yc"`

	AverageFundingByIndustry []analysis.IndustryMetric `json:"average_funding_by_industry"`
}

// GetAnalyses loads the dataset (memoized) and runs the six aggregations.
// The two money-free analyses never fail; the rest surface integrity errors.
func (s *DashboardService) GetAnalyses(ctx context.Context) (*Analyses, error) {
	rounds, err := s.store.Rounds()
	if err != nil {
		s.logger.ErrorContext(ctx, "dataset load failed", "error", err)
		return nil, err
	}

	industryRows := dataset.ExpandIndustries(rounds)
	deals := dataset.ExpandDeals(rounds)

	topInvestors := analysis.TopInvestors(deals, analysis.DefaultTopInvestors)
	topIndustries := analysis.TopIndustriesDealView(deals, analysis.DefaultTopIndustries)
	avgIndustries := analysis.TopIndustriesIndustryView(industryRows, analysis.DefaultTopIndustries)

	result := &Analyses{
		TopInvestors:  topInvestors.Labels(),
		TopIndustries: topIndustries.Labels(),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result.DealsByIndustry = analysis.DealsByIndustry(industryRows, analysis.DefaultTopIndustries)
		return nil
	})
	g.Go(func() error {
		metrics, err := analysis.FundingByIndustry(industryRows, analysis.TreemapTopN)
		if err != nil {
			return fmt.Errorf("funding by industry: %w", err)
		}
		result.FundingByIndustry = metrics
		return nil
	})
	g.Go(func() error {
		result.InvestorDeals = analysis.InvestorIndustryDeals(deals, topInvestors, topIndustries)
		return nil
	})
	g.Go(func() error {
		metrics, err := analysis.InvestorIndustryFunding(deals, topInvestors, topIndustries)
		if err != nil {
			return fmt.Errorf("investor funding: %w", err)
		}
		result.InvestorFunding = metrics
		return nil
	})
	g.Go(func() error {
		reranked, metrics, err := analysis.InvestorIndustryFundingExcluding(
			deals, topInvestors, topIndustries,
			analysis.DefaultExcludedInvestors, analysis.DefaultTopInvestors)
		if err != nil {
			return fmt.Errorf("investor funding excluding: %w", err)
		}
		result.TopInvestorsExcludingYC = reranked.Labels()
		result.InvestorFundingExcludingYC = metrics
		return nil
	})
	g.Go(func() error {
		metrics, err := analysis.AverageFundingByIndustry(industryRows, avgIndustries)
		if err != nil {
			return fmt.Errorf("average funding by industry: %w", err)
		}
		result.AverageFundingByIndustry = metrics
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "analysis failed", "error", err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "analyses computed",
		"rounds", len(rounds),
		"industry_rows", len(industryRows),
		"deal_rows", len(deals),
	)
	return result, nil
}

// RenderDashboard runs the analyses and writes the assembled HTML page to w.
func (s *DashboardService) RenderDashboard(ctx context.Context, w io.Writer) error {
	a, err := s.GetAnalyses(ctx)
	if err != nil {
		return err
	}
	return chart.RenderDashboard(w, buildSections(a))
}

// buildSections maps the analysis results onto the six dashboard sections.
func buildSections(a *Analyses) []chart.SectionChart {
	return []chart.SectionChart{
		{
			Section: chart.SectionDealsByIndustry,
			Chart: chart.RankedBar(a.DealsByIndustry, chart.BarStyle{
				Title:     "Number of Deals by Industry (Top 10, 2025)",
				XAxisName: "Industry",
				YAxisName: "Number of Deals",
				Width:     "1000px",
				Height:    "600px",
				Palette:   chart.Viridis,
			}),
		},
		{
			Section: chart.SectionFundingByIndustry,
			Chart: chart.FundingTreemap(a.FundingByIndustry, chart.TreemapStyle{
				Title:   "Money Invested by Industry (Top 20 + Other, 2025)",
				Width:   "1000px",
				Height:  "700px",
				Palette: chart.Blues,
			}),
		},
		{
			Section: chart.SectionTopInvestorDeals,
			Chart: chart.GroupedBar(a.InvestorDeals, a.TopInvestors, a.TopIndustries, chart.GroupedBarStyle{
				Title:      "Industry-wise Deal Distribution for Top 5 Investors (2025)",
				XAxisName:  "Investor",
				YAxisName:  "Number of Deals",
				Width:      "1600px",
				Height:     "900px",
				ShowLabels: true,
			}),
		},
		{
			Section: chart.SectionTopInvestorFunding,
			Chart: chart.GroupedBar(a.InvestorFunding, a.TopInvestors, a.TopIndustries, chart.GroupedBarStyle{
				Title:       "Money Invested by Top 5 Investors across Top 10 Industries (2025)",
				XAxisName:   "Investor",
				YAxisName:   "Money Invested (USD)",
				Width:       "1600px",
				Height:      "900px",
				ValuePrefix: "$",
			}),
		},
		{
			Section: chart.SectionExcludingYC,
			Chart: chart.GroupedBar(a.InvestorFundingExcludingYC, a.TopInvestorsExcludingYC, a.TopIndustries, chart.GroupedBarStyle{
				Title:       "Money Invested by Top Investors across Industries (Excluding Y Combinator, 2025)",
				XAxisName:   "Investor",
				YAxisName:   "Money Invested (USD)",
				Width:       "1600px",
				Height:      "900px",
				ValuePrefix: "$",
			}),
		},
		{
			Section: chart.SectionAverageFunding,
			Chart: chart.RankedBar(a.AverageFundingByIndustry, chart.BarStyle{
				Title:       "Average Pre-Seed Funding per Deal by Industry (Top 10, 2025)",
				XAxisName:   "Industry",
				YAxisName:   "Average Money Raised (USD)",
				Width:       "1600px",
				Height:      "900px",
				Palette:     chart.Viridis,
				ValuePrefix: "$",
			}),
		},
	}
}
