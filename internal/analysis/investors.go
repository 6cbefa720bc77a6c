package analysis

import (
	"fundlens/internal/dataset"
)

// moneyShare attributes a deal's raised amount evenly across its listed
// investor count: with N co-investors each is credited 1/N of the round, so
// the same dollar is never counted fully against every investor. A zero
// count is treated as one investor.
func moneyShare(d dataset.DealRow) float64 {
	n := d.InvestorCount
	if n == 0 {
		n = 1
	}
	return d.MoneyRaised / float64(n)
}

func restrict(deals []dataset.DealRow, investors, industries TopSet) []dataset.DealRow {
	out := make([]dataset.DealRow, 0, len(deals))
	for _, d := range deals {
		if investors.Contains(d.Investor) && industries.Contains(d.Industry) {
			out = append(out, d)
		}
	}
	return out
}

type investorIndustry struct {
	investor string
	industry string
}

// pairMetrics aggregates the restricted deal rows per (investor, industry)
// pair with the given measure, emitting rows in ranking order (investors
// outer, industries inner) and skipping pairs with no deals.
func pairMetrics(deals []dataset.DealRow, investors, industries TopSet, measure func([]dataset.DealRow) float64) []InvestorIndustryMetric {
	groups := dataset.GroupBy(deals, func(d dataset.DealRow) investorIndustry {
		return investorIndustry{investor: d.Investor, industry: d.Industry}
	})

	metrics := make([]InvestorIndustryMetric, 0, groups.Len())
	for _, investor := range investors.Labels() {
		for _, industry := range industries.Labels() {
			rows := groups.Rows(investorIndustry{investor: investor, industry: industry})
			if len(rows) == 0 {
				continue
			}
			metrics = append(metrics, InvestorIndustryMetric{
				Investor: investor,
				Industry: industry,
				Value:    measure(rows),
			})
		}
	}
	return metrics
}

// InvestorIndustryDeals counts distinct organizations per (investor, industry)
// pair, restricted to the given top investors and industries.
func InvestorIndustryDeals(deals []dataset.DealRow, investors, industries TopSet) []InvestorIndustryMetric {
	restricted := restrict(deals, investors, industries)
	return pairMetrics(restricted, investors, industries, func(rows []dataset.DealRow) float64 {
		return float64(dataset.DistinctCount(rows, func(d dataset.DealRow) string { return d.Organization }))
	})
}

// InvestorIndustryFunding sums per-investor attributed money per
// (investor, industry) pair, restricted to the given top sets.
func InvestorIndustryFunding(deals []dataset.DealRow, investors, industries TopSet) ([]InvestorIndustryMetric, error) {
	restricted := restrict(deals, investors, industries)
	for _, d := range restricted {
		if err := checkMoney(d.Organization, d.MoneyRaised); err != nil {
			return nil, err
		}
	}
	return pairMetrics(restricted, investors, industries, sumShares), nil
}

func sumShares(rows []dataset.DealRow) float64 {
	var total float64
	for _, d := range rows {
		total += moneyShare(d)
	}
	return total
}

// InvestorIndustryFundingExcluding removes the excluded investors from the
// already-restricted funding frame, re-ranks the remaining investors by
// distinct organization count, and aggregates attributed money for the new
// top topN against the same industry set. The returned TopSet is the
// recomputed investor ranking; it can never contain an excluded investor.
func InvestorIndustryFundingExcluding(deals []dataset.DealRow, investors, industries TopSet, excluded []string, topN int) (TopSet, []InvestorIndustryMetric, error) {
	drop := make(map[string]struct{}, len(excluded))
	for _, name := range excluded {
		drop[name] = struct{}{}
	}

	restricted := restrict(deals, investors, industries)
	remainder := make([]dataset.DealRow, 0, len(restricted))
	for _, d := range restricted {
		if _, gone := drop[d.Investor]; gone {
			continue
		}
		remainder = append(remainder, d)
	}

	for _, d := range remainder {
		if err := checkMoney(d.Organization, d.MoneyRaised); err != nil {
			return TopSet{}, nil, err
		}
	}

	reranked := TopInvestors(remainder, topN)
	metrics := pairMetrics(restrict(remainder, reranked, industries), reranked, industries, sumShares)
	return reranked, metrics, nil
}
