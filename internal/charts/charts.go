// Package charts renders the computed statistics as interactive HTML
// charts. It consumes plain data points; building them from session
// tables is the caller's job.
package charts

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/soloqlab/lol-insights/internal/stats"
)

// ChartConfig holds configuration for charts.
type ChartConfig struct {
	Title      string // Chart title
	Subtitle   string // Chart subtitle
	SeriesName string // Name of the main series
	Width      string // Chart width (e.g., "900px")
	Height     string // Chart height (e.g., "500px")
	Theme      string // Chart theme
	ShowLegend bool   // Show legend
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		SeriesName: "Win Rate",
		Width:      "900px",
		Height:     "500px",
		Theme:      "light",
		ShowLegend: true,
	}
}

// DataPoint represents a single data point in a bar chart.
type DataPoint struct {
	Label string
	Value float64
}

// RankPoint is one game on the rank-over-time chart.
type RankPoint struct {
	Label   string
	Rank    int
	Outcome stats.Outcome
}

// HeatmapCell is one defined cell of a heatmap. Cells with no data are
// simply absent and render blank.
type HeatmapCell struct {
	X     int
	Y     int
	Value float64
}

// HeatmapData holds a sparse heatmap with categorical axes.
type HeatmapData struct {
	XLabels []string
	YLabels []string
	Cells   []HeatmapCell
}

func globalOptions(config ChartConfig) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(config.ShowLegend),
		}),
	}
}

type renderer interface {
	Render(w io.Writer) error
}

func renderTo(r renderer, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := r.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// RenderBarChart creates an interactive bar chart HTML file.
func RenderBarChart(data []DataPoint, config ChartConfig, outputPath string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(config)...)

	xLabels := make([]string, len(data))
	yData := make([]opts.BarData, len(data))
	for i, point := range data {
		xLabels[i] = point.Label
		yData[i] = opts.BarData{Value: point.Value}
	}

	bar.SetXAxis(xLabels).
		AddSeries(config.SeriesName, yData).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)

	return renderTo(bar, outputPath)
}

// RenderRankChart creates a rank-over-time line chart with win and
// loss games overlaid as scatter points.
func RenderRankChart(points []RankPoint, config ChartConfig, outputPath string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions(config)...)

	xLabels := make([]string, len(points))
	rankData := make([]opts.LineData, len(points))
	winData := make([]opts.ScatterData, len(points))
	lossData := make([]opts.ScatterData, len(points))
	for i, p := range points {
		xLabels[i] = p.Label
		rankData[i] = opts.LineData{Value: p.Rank}
		// nil values render as gaps, so each scatter series only
		// shows the games with that outcome.
		winData[i] = opts.ScatterData{Value: nil}
		lossData[i] = opts.ScatterData{Value: nil}
		switch p.Outcome {
		case stats.OutcomeWin:
			winData[i] = opts.ScatterData{Value: p.Rank}
		case stats.OutcomeLoss:
			lossData[i] = opts.ScatterData{Value: p.Rank}
		}
	}

	line.SetXAxis(xLabels).
		AddSeries(config.SeriesName, rankData).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{
				Smooth: opts.Bool(false),
			}),
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)

	scatter := charts.NewScatter()
	scatter.SetXAxis(xLabels)
	scatter.AddSeries("Win", winData, charts.WithItemStyleOpts(opts.ItemStyle{Color: "#27ae60"}))
	scatter.AddSeries("Loss", lossData, charts.WithItemStyleOpts(opts.ItemStyle{Color: "#c0392b"}))

	line.Overlap(scatter)

	return renderTo(line, outputPath)
}

// RenderHeatmap creates a heatmap HTML file. Values are win rates in
// percent; absent cells stay blank rather than reading as 0%.
func RenderHeatmap(data HeatmapData, config ChartConfig, outputPath string) error {
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(append(globalOptions(config),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Data:      data.XLabels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      data.YLabels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        100,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#c0392b", "#f5f5dc", "#27ae60"},
			},
		}),
	)...)

	cells := make([]opts.HeatMapData, len(data.Cells))
	for i, c := range data.Cells {
		cells[i] = opts.HeatMapData{Value: [3]interface{}{c.X, c.Y, c.Value}}
	}

	hm.AddSeries(config.SeriesName, cells).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(true),
			}),
		)

	return renderTo(hm, outputPath)
}

// OpenInBrowser opens the given file path in the default web browser.
func OpenInBrowser(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", absPath)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", absPath)
	case "linux":
		cmd = exec.Command("xdg-open", absPath)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
