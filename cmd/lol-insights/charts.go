package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/soloqlab/lol-insights/internal/analysis"
	"github.com/soloqlab/lol-insights/internal/charts"
	"github.com/soloqlab/lol-insights/internal/config"
	"github.com/soloqlab/lol-insights/internal/stats"
)

// runChartsCommand renders every statistical view as an interactive
// HTML chart in the configured output directory.
func runChartsCommand(session *analysis.Session, cfg *config.Config) error {
	outDir := cfg.Charts.OutputDir
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create chart directory: %w", err)
	}

	files := []struct {
		name   string
		render func(path string) error
	}{
		{"rank.html", func(path string) error { return renderRankChart(session, path) }},
		{"daily.html", func(path string) error { return renderDailyChart(session, path) }},
		{"sequence.html", func(path string) error { return renderSequenceChart(session, path) }},
		{"states.html", func(path string) error { return renderStatesChart(session, path) }},
		{"volume.html", func(path string) error { return renderVolumeChart(session, path) }},
	}

	for _, file := range files {
		path := filepath.Join(outDir, file.name)
		if err := file.render(path); err != nil {
			return fmt.Errorf("render %s: %w", file.name, err)
		}
		fmt.Printf("Wrote %s\n", path)
		if cfg.Charts.OpenBrowser {
			if err := charts.OpenInBrowser(path); err != nil {
				fmt.Printf("Could not open %s: %v\n", path, err)
			}
		}
	}

	return nil
}

func renderRankChart(session *analysis.Session, path string) error {
	rows := session.Rows()
	points := make([]charts.RankPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, charts.RankPoint{
			Label:   row.Timestamp.Format("2006-01-02 15:04"),
			Rank:    row.Rank,
			Outcome: row.Outcome,
		})
	}

	cfg := charts.DefaultChartConfig()
	cfg.Title = "Rank Over Time"
	cfg.Subtitle = "LP after each ranked game"
	cfg.SeriesName = "Rank"
	return charts.RenderRankChart(points, cfg, path)
}

func renderDailyChart(session *analysis.Session, path string) error {
	daily := session.Daily()
	data := make([]charts.DataPoint, 0, len(daily))
	for _, day := range daily {
		data = append(data, charts.DataPoint{
			Label: day.Date.String(),
			Value: day.WinRate * 100,
		})
	}

	cfg := charts.DefaultChartConfig()
	cfg.Title = "Daily Win Rate"
	cfg.Subtitle = "Win rate per calendar day (%)"
	cfg.SeriesName = "Win Rate"
	return charts.RenderBarChart(data, cfg, path)
}

func renderSequenceChart(session *analysis.Session, path string) error {
	sequence := session.Sequence()
	data := make([]charts.DataPoint, 0, len(sequence))
	for _, seq := range sequence {
		data = append(data, charts.DataPoint{
			Label: fmt.Sprintf("Game %d", seq.GameNr),
			Value: seq.WinRate * 100,
		})
	}

	cfg := charts.DefaultChartConfig()
	cfg.Title = "Win Rate by Game Number"
	cfg.Subtitle = "Pooled over all days (%)"
	cfg.SeriesName = "Win Rate"
	return charts.RenderBarChart(data, cfg, path)
}

func renderStatesChart(session *analysis.Session, path string) error {
	matrix := session.Matrix()
	keys := matrix.RowKeys()

	data := charts.HeatmapData{
		XLabels: []string{"After a Loss", "After a Win"},
		YLabels: make([]string, 0, len(keys)),
	}
	for y, key := range keys {
		data.YLabels = append(data.YLabels, historyLabel(key))
		for x, recent := range []stats.Outcome{stats.OutcomeLoss, stats.OutcomeWin} {
			if rate, ok := matrix.Cell(key, recent); ok {
				data.Cells = append(data.Cells, charts.HeatmapCell{
					X:     x,
					Y:     y,
					Value: rate * 100,
				})
			}
		}
	}

	cfg := charts.DefaultChartConfig()
	cfg.Title = "Win Rate After Recent Results"
	cfg.Subtitle = fmt.Sprintf("Conditioned on the last %d games (%%)", matrix.HistoryLength())
	cfg.SeriesName = "Win Rate"
	return charts.RenderHeatmap(data, cfg, path)
}

func renderVolumeChart(session *analysis.Session, path string) error {
	volume := session.Volume()
	data := make([]charts.DataPoint, 0, len(volume))
	for _, vol := range volume {
		data = append(data, charts.DataPoint{
			Label: fmt.Sprintf("%d games", vol.GamesPerDay),
			Value: vol.WinRate * 100,
		})
	}

	cfg := charts.DefaultChartConfig()
	cfg.Title = "Win Rate by Daily Volume"
	cfg.Subtitle = "Average of daily win rates (%)"
	cfg.SeriesName = "Win Rate"
	return charts.RenderBarChart(data, cfg, path)
}
