package outwriter

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/huangsam/tracktides/internal/contract"
	"github.com/huangsam/tracktides/schema"
)

const (
	chartHeight = "420px"
	lineWidth   = 2
)

// writeChartHTML renders every chart view as an interactive line chart on one page.
func writeChartHTML(w io.Writer, board schema.ChartBoard, cfg *contract.Config) error {
	page := components.NewPage()
	page.PageTitle = "tracktides"
	for _, view := range board.Charts {
		page.AddCharts(buildLineChart(view, cfg))
	}
	return page.Render(w)
}

// buildLineChart plots the visible slice with the computed Y range so the
// browser does not rescale the axis on its own.
func buildLineChart(view schema.ChartView, cfg *contract.Config) *charts.Line {
	loc := cfg.Loc()
	labels := make([]string, len(view.Visible))
	values := make([]opts.LineData, len(view.Visible))
	for i, p := range view.Visible {
		labels[i] = view.Range.PointText(p.Date.In(loc))
		values[i] = opts.LineData{Value: p.Value}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    readoutHeadline(view, cfg.Precision),
			Subtitle: view.Title + " · " + readoutSubtitle(view, loc),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: view.Range.Label()}),
		charts.WithYAxisOpts(opts.YAxis{Name: view.Unit, Min: view.YRange.Lo, Max: view.YRange.Hi}),
	)
	line.SetXAxis(labels)
	line.AddSeries(view.Title, values,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		charts.WithLineStyleOpts(opts.LineStyle{Width: lineWidth}),
	)
	return line
}
