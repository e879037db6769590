package charts

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/motion.report/internal/frames"
	"github.com/banshee-data/motion.report/internal/metrics"
	"github.com/banshee-data/motion.report/internal/report"
)

func (e Exporter) initOpts(title string) opts.Initialization {
	return opts.Initialization{PageTitle: title, Width: "100%", Height: "480px", AssetsHost: e.AssetsHost}
}

func (e Exporter) gaitChart(g *metrics.GaitMetrics) *charts.Bar {
	joints := g.Joints()
	x := make([]string, len(joints))
	rom := make([]opts.BarData, len(joints))
	mean := make([]opts.BarData, len(joints))
	sd := make([]opts.BarData, len(joints))
	for i, j := range joints {
		x[i] = j.Name
		rom[i] = opts.BarData{Value: j.RangeOfMotion}
		mean[i] = opts.BarData{Value: j.Mean}
		sd[i] = opts.BarData{Value: j.StdDev}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(e.initOpts("Gait")),
		charts.WithTitleOpts(opts.Title{Title: "Gait", Subtitle: "range of motion, mean and standard deviation (deg)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(x).
		AddSeries("RangeOfMotion", rom).
		AddSeries("Mean", mean).
		AddSeries("StdDev", sd)
	return bar
}

func (e Exporter) footChart(f *metrics.FootMetrics) *charts.Bar {
	labels, left, right := f.ZoneAverages()
	toBars := func(vs []float64) []opts.BarData {
		out := make([]opts.BarData, len(vs))
		for i, v := range vs {
			out[i] = opts.BarData{Value: v}
		}
		return out
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(e.initOpts("Foot pressure")),
		charts.WithTitleOpts(opts.Title{
			Title:    "Foot pressure zones",
			Subtitle: fmt.Sprintf("placement left=%s right=%s", f.LeftFootPlacementOrder, f.RightFootPlacementOrder),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("Left", toBars(left), charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"})).
		AddSeries("Right", toBars(right), charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))
	return bar
}

// anglesChart plots range of motion per body-angle channel in channel table
// order. Channels missing from stats are skipped.
func (e Exporter) anglesChart(stats map[string]metrics.AngleStat) *charts.Bar {
	var x []string
	var y []opts.BarData
	for _, ch := range frames.BodyAngleChannels {
		s, ok := stats[ch.Name]
		if !ok {
			continue
		}
		x = append(x, ch.Name)
		y = append(y, opts.BarData{Value: s.RangeOfMotion})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(e.initOpts("Body angles")),
		charts.WithTitleOpts(opts.Title{Title: "Body angle range of motion", Subtitle: fmt.Sprintf("channels=%d", len(x))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(x).AddSeries("RangeOfMotion", y)
	return bar
}

// pressureLine plots the per-frame zone averages of both feet.
func (e Exporter) pressureLine(seq []frames.BalanceMatFrame) *charts.Line {
	x := make([]int, len(seq))
	for i := range x {
		x[i] = i
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(e.initOpts("Pressure over time")),
		charts.WithTitleOpts(opts.Title{Title: "Pressure zones over time", Subtitle: fmt.Sprintf("frames=%d", len(seq))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Frame", NameLocation: "middle", NameGap: 25}),
	)
	line.SetXAxis(x)

	ss := pressureSeries(seq)
	colors := generateColors(len(ss))
	for i, s := range ss {
		data := make([]opts.LineData, len(s.ys))
		for j, v := range s.ys {
			data[j] = opts.LineData{Value: v}
		}
		line.AddSeries(s.name, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: hexColor(colors[i])}))
	}
	return line
}

// renderDashboard builds one HTML page with a chart per available section.
// Sections absent from r are left out.
func (e Exporter) renderDashboard(title string, r *report.Report, balance []frames.BalanceMatFrame) ([]byte, error) {
	page := components.NewPage()
	page.PageTitle = title
	if e.AssetsHost != "" {
		page.SetAssetsHost(e.AssetsHost)
	}

	if len(r.Stats) > 0 {
		page.AddCharts(e.anglesChart(r.Stats))
	}
	if r.GaitMetrics != nil {
		page.AddCharts(e.gaitChart(r.GaitMetrics))
	}
	if r.FootMetrics != nil {
		page.AddCharts(e.footChart(r.FootMetrics))
	}
	if len(balance) > 0 {
		page.AddCharts(e.pressureLine(balance))
	}

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return nil, fmt.Errorf("render dashboard: %w", err)
	}
	return buf.Bytes(), nil
}
