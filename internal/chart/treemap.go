package chart

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"fundlens/internal/analysis"
)

// TreemapStyle carries the presentation knobs for the funding treemap.
type TreemapStyle struct {
	Title   string
	Width   string
	Height  string
	Palette []string
}

// FundingTreemap renders industry funding totals as a treemap, tiles sized
// and colored by money raised. The ranked rows already carry the trailing
// "Other" bucket, so the tiles sum to the full dataset total.
func FundingTreemap(metrics []analysis.IndustryMetric, style TreemapStyle) *charts.TreeMap {
	nodes := make([]opts.TreeMapNode, len(metrics))
	var max float64
	for i, m := range metrics {
		nodes[i] = opts.TreeMapNode{
			Name:  m.Industry,
			Value: int(math.Round(m.Value)),
		}
		if m.Value > max {
			max = m.Value
		}
	}

	tm := charts.NewTreeMap()
	tm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: style.Title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Formatter: "{b}: ${c}",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show: opts.Bool(false),
			Min:  0,
			Max:  float32(max),
			InRange: &opts.VisualMapInRange{
				Color: style.Palette,
			},
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  style.Width,
			Height: style.Height,
		}),
	)

	tm.AddSeries("Funding", nodes,
		charts.WithTreeMapOpts(opts.TreeMapChart{
			Roam:       opts.Bool(false),
			UpperLabel: &opts.UpperLabel{Show: opts.Bool(false)},
		}),
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {c}",
		}),
	)
	return tm
}
