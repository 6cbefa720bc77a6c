package analysis

import (
	"sort"

	"fundlens/internal/dataset"
)

// DealsByIndustry counts deals (exploded rows) per industry, excluding rows
// with no industry listed, and keeps the topN busiest industries. Ties keep
// first-seen order, so reruns over the same table rank identically.
func DealsByIndustry(rows []dataset.IndustryRow, topN int) []IndustryMetric {
	groups := dataset.GroupBy(rows, func(r dataset.IndustryRow) string { return r.Industry })

	metrics := make([]IndustryMetric, 0, groups.Len())
	for _, industry := range groups.Keys() {
		if industry == "" {
			continue
		}
		metrics = append(metrics, IndustryMetric{
			Industry: industry,
			Value:    float64(len(groups.Rows(industry))),
		})
	}
	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].Value > metrics[j].Value
	})
	if topN < len(metrics) {
		metrics = metrics[:topN]
	}
	return metrics
}

// FundingByIndustry sums money raised per industry and truncates to the topN
// biggest, folding the remainder into a single trailing "Other" row so the
// treemap total still equals the full sum.
func FundingByIndustry(rows []dataset.IndustryRow, topN int) ([]IndustryMetric, error) {
	for _, r := range rows {
		if err := checkMoney(r.Organization, r.MoneyRaised); err != nil {
			return nil, err
		}
	}

	groups := dataset.GroupBy(rows, func(r dataset.IndustryRow) string { return r.Industry })

	metrics := make([]IndustryMetric, 0, groups.Len())
	for _, industry := range groups.Keys() {
		var total float64
		for _, r := range groups.Rows(industry) {
			total += r.MoneyRaised
		}
		metrics = append(metrics, IndustryMetric{Industry: industry, Value: total})
	}
	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].Value > metrics[j].Value
	})

	var other float64
	if topN < len(metrics) {
		for _, m := range metrics[topN:] {
			other += m.Value
		}
		metrics = metrics[:topN]
	}
	metrics = append(metrics, IndustryMetric{Industry: OtherBucket, Value: other})
	return metrics, nil
}

// AverageFundingByIndustry computes the mean money raised per deal for the
// industries in the given top set, sorted descending by mean.
func AverageFundingByIndustry(rows []dataset.IndustryRow, industries TopSet) ([]IndustryMetric, error) {
	groups := dataset.GroupBy(rows, func(r dataset.IndustryRow) string { return r.Industry })

	metrics := make([]IndustryMetric, 0, industries.Len())
	for _, industry := range groups.Keys() {
		if !industries.Contains(industry) {
			continue
		}
		group := groups.Rows(industry)
		var total float64
		for _, r := range group {
			if err := checkMoney(r.Organization, r.MoneyRaised); err != nil {
				return nil, err
			}
			total += r.MoneyRaised
		}
		metrics = append(metrics, IndustryMetric{
			Industry: industry,
			Value:    total / float64(len(group)),
		})
	}
	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].Value > metrics[j].Value
	})
	return metrics, nil
}
