package analysis

import (
	"sort"

	"fundlens/internal/dataset"
)

// The dashboard ranks categories by distinct organization count, not by row
// count, so a deal listing five investors still counts its organization once
// per category. Two industry rankings exist on purpose: the investor analyses
// rank industries over the fully exploded deal view, while the average-funding
// analysis ranks them over the industry-only view. They can and do disagree;
// keep them separate.

type labelCount struct {
	label string
	count int
}

func topByDistinctOrgs[T any](rows []T, label func(T) string, org func(T) string, n int) TopSet {
	groups := dataset.GroupBy(rows, label)
	ranked := make([]labelCount, 0, groups.Len())
	for _, k := range groups.Keys() {
		if k == "" {
			// Blank means "no category listed", never a real category.
			continue
		}
		ranked = append(ranked, labelCount{
			label: k,
			count: dataset.DistinctCount(groups.Rows(k), org),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	labels := make([]string, len(ranked))
	for i, lc := range ranked {
		labels[i] = lc.label
	}
	return NewTopSet(labels)
}

// TopInvestors ranks investors over the deal view by distinct organization
// count and keeps the top n.
func TopInvestors(deals []dataset.DealRow, n int) TopSet {
	return topByDistinctOrgs(deals,
		func(d dataset.DealRow) string { return d.Investor },
		func(d dataset.DealRow) string { return d.Organization },
		n)
}

// TopIndustriesDealView ranks industries over the deal view. This is the
// restriction set the top-investor analyses share.
func TopIndustriesDealView(deals []dataset.DealRow, n int) TopSet {
	return topByDistinctOrgs(deals,
		func(d dataset.DealRow) string { return d.Industry },
		func(d dataset.DealRow) string { return d.Organization },
		n)
}

// TopIndustriesIndustryView ranks industries over the industry-only view.
// Used by the average-funding analysis, which never explodes investors.
func TopIndustriesIndustryView(rows []dataset.IndustryRow, n int) TopSet {
	return topByDistinctOrgs(rows,
		func(r dataset.IndustryRow) string { return r.Industry },
		func(r dataset.IndustryRow) string { return r.Organization },
		n)
}
