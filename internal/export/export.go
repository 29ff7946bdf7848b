// Package export writes the computed statistics tables to JSON or CSV
// files for downstream tooling.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/soloqlab/lol-insights/internal/analysis"
	"github.com/soloqlab/lol-insights/internal/stats"
)

// Format represents the export format.
type Format string

const (
	// FormatCSV represents CSV export format.
	FormatCSV Format = "csv"
	// FormatJSON represents JSON export format.
	FormatJSON Format = "json"
)

// Options holds configuration for export operations.
type Options struct {
	Format     Format
	OutputDir  string
	PrettyJSON bool
}

// DailyRow is one exported daily stat.
type DailyRow struct {
	Date      string  `json:"date"`
	WinRate   float64 `json:"win_rate"`
	GameCount int     `json:"game_count"`
}

// SequenceRow is one exported position-in-day stat.
type SequenceRow struct {
	GameNr    int     `json:"game_nr"`
	WinRate   float64 `json:"win_rate"`
	GameCount int     `json:"game_count"`
}

// StateRow is one exported state-matrix row. A nil rate means the
// combination was never observed; it is omitted from JSON and left
// empty in CSV, never written as zero.
type StateRow struct {
	History  string   `json:"history"`
	LossRate *float64 `json:"loss,omitempty"`
	WinRate  *float64 `json:"win,omitempty"`
}

// VolumeRow is one exported volume stat.
type VolumeRow struct {
	GamesPerDay int     `json:"games_per_day"`
	WinRate     float64 `json:"win_rate"`
}

// Tables bundles the exportable views of one session.
type Tables struct {
	Summary  analysis.Summary `json:"summary"`
	Daily    []DailyRow       `json:"daily"`
	Sequence []SequenceRow    `json:"sequence"`
	States   []StateRow       `json:"states"`
	Volume   []VolumeRow      `json:"volume"`
}

// BuildTables converts a finished session into export rows.
func BuildTables(session *analysis.Session) Tables {
	t := Tables{Summary: session.Summary()}

	for _, d := range session.Daily() {
		t.Daily = append(t.Daily, DailyRow{
			Date:      d.Date.String(),
			WinRate:   d.WinRate,
			GameCount: d.GameCount,
		})
	}
	for _, s := range session.Sequence() {
		t.Sequence = append(t.Sequence, SequenceRow{
			GameNr:    s.GameNr,
			WinRate:   s.WinRate,
			GameCount: s.GameCount,
		})
	}

	matrix := session.Matrix()
	for _, key := range matrix.RowKeys() {
		row := StateRow{History: historyLabel(key)}
		if rate, ok := matrix.Cell(key, stats.OutcomeLoss); ok {
			row.LossRate = &rate
		}
		if rate, ok := matrix.Cell(key, stats.OutcomeWin); ok {
			row.WinRate = &rate
		}
		t.States = append(t.States, row)
	}

	for _, v := range session.Volume() {
		t.Volume = append(t.Volume, VolumeRow{
			GamesPerDay: v.GamesPerDay,
			WinRate:     v.WinRate,
		})
	}
	return t
}

func historyLabel(key stats.LagTuple) string {
	if key.Len == 0 {
		return "no prior history"
	}
	return key.Label()
}

// Exporter writes session tables to disk.
type Exporter struct {
	opts Options
}

// NewExporter creates a new Exporter with the given options.
func NewExporter(opts Options) *Exporter {
	return &Exporter{opts: opts}
}

// Export writes every table in the configured format and returns the
// written file paths.
func (e *Exporter) Export(tables Tables) ([]string, error) {
	if err := os.MkdirAll(e.opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	switch e.opts.Format {
	case FormatJSON:
		path := filepath.Join(e.opts.OutputDir, "stats.json")
		if err := e.writeJSON(path, tables); err != nil {
			return nil, err
		}
		return []string{path}, nil
	case FormatCSV:
		return e.writeCSVs(tables)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", e.opts.Format)
	}
}

func (e *Exporter) writeJSON(path string, tables Tables) error {
	var data []byte
	var err error
	if e.opts.PrettyJSON {
		data, err = json.MarshalIndent(tables, "", "  ")
	} else {
		data, err = json.Marshal(tables)
	}
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (e *Exporter) writeCSVs(tables Tables) ([]string, error) {
	files := map[string][][]string{
		"daily.csv":    dailyCSV(tables.Daily),
		"sequence.csv": sequenceCSV(tables.Sequence),
		"states.csv":   statesCSV(tables.States),
		"volume.csv":   volumeCSV(tables.Volume),
	}

	paths := make([]string, 0, len(files))
	for name, rows := range files {
		path := filepath.Join(e.opts.OutputDir, name)
		if err := writeCSV(path, rows); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func dailyCSV(rows []DailyRow) [][]string {
	out := [][]string{{"date", "win_rate", "game_count"}}
	for _, r := range rows {
		out = append(out, []string{r.Date, formatRate(r.WinRate), strconv.Itoa(r.GameCount)})
	}
	return out
}

func sequenceCSV(rows []SequenceRow) [][]string {
	out := [][]string{{"game_nr", "win_rate", "game_count"}}
	for _, r := range rows {
		out = append(out, []string{strconv.Itoa(r.GameNr), formatRate(r.WinRate), strconv.Itoa(r.GameCount)})
	}
	return out
}

func statesCSV(rows []StateRow) [][]string {
	out := [][]string{{"history", "loss", "win"}}
	for _, r := range rows {
		out = append(out, []string{r.History, formatOptRate(r.LossRate), formatOptRate(r.WinRate)})
	}
	return out
}

func volumeCSV(rows []VolumeRow) [][]string {
	out := [][]string{{"games_per_day", "win_rate"}}
	for _, r := range rows {
		out = append(out, []string{strconv.Itoa(r.GamesPerDay), formatRate(r.WinRate)})
	}
	return out
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 6, 64)
}

func formatOptRate(rate *float64) string {
	if rate == nil {
		return ""
	}
	return formatRate(*rate)
}
