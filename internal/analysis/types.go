// Package analysis implements the funding-round aggregations behind the
// dashboard: deal counts and money totals by industry, deal counts and
// attributed money for the top investors, and average round size. Every
// analysis is a pure function from an exploded dataset view to metric rows;
// nothing here renders or mutates shared state.
package analysis

// Default truncation sizes, matching the dashboard's fixed cuts.
const (
	DefaultTopInvestors  = 5
	DefaultTopIndustries = 10
	TreemapTopN          = 80
)

// OtherBucket is the label of the synthetic row holding everything a top-N
// truncation cut off.
const OtherBucket = "Other"

// DefaultExcludedInvestors is the exclusion list for the
// excluding-the-dominant-investor analysis.
var DefaultExcludedInvestors = []string{"Y Combinator"}

// IndustryMetric is one ranked row of a per-industry aggregate.
type IndustryMetric struct {
	Industry string  `json:"industry"`
	Value    float64 `json:"value"`
}

// InvestorIndustryMetric is one row of a per-(investor, industry) aggregate.
type InvestorIndustryMetric struct {
	Investor string  `json:"investor"`
	Industry string  `json:"industry"`
	Value    float64 `json:"value"`
}

// TopSet is an immutable, ordered set of category labels selected by a
// ranking. The order is the ranking order; membership tests drive the
// restriction filters in the investor analyses.
type TopSet struct {
	labels []string
	member map[string]struct{}
}

// NewTopSet builds a TopSet from ranked labels, first occurrence winning.
func NewTopSet(labels []string) TopSet {
	t := TopSet{member: make(map[string]struct{}, len(labels))}
	for _, l := range labels {
		if _, ok := t.member[l]; ok {
			continue
		}
		t.member[l] = struct{}{}
		t.labels = append(t.labels, l)
	}
	return t
}

// Labels returns the labels in ranking order.
func (t TopSet) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

// Contains reports whether label is in the set.
func (t TopSet) Contains(label string) bool {
	_, ok := t.member[label]
	return ok
}

// Len returns the number of labels in the set.
func (t TopSet) Len() int {
	return len(t.labels)
}
