// Package chart maps analysis metric rows onto go-echarts charts and
// assembles them into the dashboard page. It holds presentation only;
// numbers arrive already aggregated.
package chart

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"fundlens/internal/analysis"
)

// BarStyle carries the fixed presentation knobs for a single-series ranked
// bar chart.
type BarStyle struct {
	Title       string
	XAxisName   string
	YAxisName   string
	Width       string
	Height      string
	Palette     []string
	ValuePrefix string
}

// RankedBar renders industry metrics as a bar chart in ranking order, each
// bar colored by its value over the style's palette.
func RankedBar(metrics []analysis.IndustryMetric, style BarStyle) *charts.Bar {
	values := make([]float64, len(metrics))
	for i, m := range metrics {
		values[i] = m.Value
	}
	colors := valueColors(values, style.Palette)

	labels := make([]string, len(metrics))
	data := make([]opts.BarData, len(metrics))
	for i, m := range metrics {
		labels[i] = m.Industry
		data[i] = opts.BarData{
			Value:     m.Value,
			ItemStyle: &opts.ItemStyle{Color: colors[i]},
		}
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
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: style.XAxisName,
			Type: "category",
			AxisLabel: &opts.AxisLabel{
				Rotate:       45,
				Interval:     "0",
				ShowMinLabel: opts.Bool(true),
				ShowMaxLabel: opts.Bool(true),
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
			Left:   "10%",
			Right:  "10%",
			Bottom: "20%",
			Top:    "80",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  style.Width,
			Height: style.Height,
		}),
	)

	bar.SetXAxis(labels)
	bar.AddSeries("Value", data,
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "top",
		}),
		charts.WithBarChartOpts(opts.BarChart{
			BarGap: "10%",
		}),
	)
	return bar
}
