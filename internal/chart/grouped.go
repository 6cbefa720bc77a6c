package chart

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"fundlens/internal/analysis"
)

// GroupedBarStyle carries the presentation knobs for the investor-by-industry
// grouped bar charts.
type GroupedBarStyle struct {
	Title       string
	XAxisName   string
	YAxisName   string
	LegendName  string
	Width       string
	Height      string
	ValuePrefix string
	ShowLabels  bool
}

type pairKey struct {
	investor string
	industry string
}

// GroupedBar renders per-(investor, industry) metrics as grouped bars: one
// x category per investor, one series per industry, both in ranking order.
// Pairs with no data render as gaps so every investor keeps the same series
// layout.
func GroupedBar(metrics []analysis.InvestorIndustryMetric, investors, industries []string, style GroupedBarStyle) *charts.Bar {
	byPair := make(map[pairKey]float64, len(metrics))
	for _, m := range metrics {
		byPair[pairKey{investor: m.Investor, industry: m.Industry}] = m.Value
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: style.Title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "30",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: style.XAxisName,
			Type: "category",
			AxisLabel: &opts.AxisLabel{
				Interval: "0",
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: style.YAxisName,
			Type: "value",
			AxisLabel: &opts.AxisLabel{
				Formatter: opts.FuncOpts("function (v) { return '" + style.ValuePrefix + "' + v; }"),
			},
		}),
		charts.WithGridOpts(opts.Grid{
			Left:   "8%",
			Right:  "8%",
			Bottom: "12%",
			Top:    "100",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  style.Width,
			Height: style.Height,
		}),
	)

	bar.SetXAxis(investors)
	for _, industry := range industries {
		data := make([]opts.BarData, len(investors))
		for i, investor := range investors {
			if v, ok := byPair[pairKey{investor: investor, industry: industry}]; ok {
				data[i] = opts.BarData{Value: v}
			} else {
				data[i] = opts.BarData{Value: nil}
			}
		}
		seriesOpts := []charts.SeriesOpts{
			charts.WithBarChartOpts(opts.BarChart{
				BarGap:         "10%",
				BarCategoryGap: "25%",
			}),
		}
		if style.ShowLabels {
			seriesOpts = append(seriesOpts, charts.WithLabelOpts(opts.Label{
				Show:     opts.Bool(true),
				Position: "top",
			}))
		}
		bar.AddSeries(industry, data, seriesOpts...)
	}
	return bar
}
