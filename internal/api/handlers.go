package api

import (
	"errors"
	"net/http"

	"github.com/soloqlab/lol-insights/internal/analysis"
	"github.com/soloqlab/lol-insights/internal/export"
	"github.com/soloqlab/lol-insights/internal/stats"
)

// handleSummary returns the session's headline numbers.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.session.Summary())
}

// handleDaily returns the daily win-rate table, optionally filtered to
// one calendar date via ?date=YYYY-MM-DD.
func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := stats.ParseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		stat, err := s.session.DailyFor(date)
		if err != nil {
			if errors.Is(err, analysis.ErrNoData) {
				writeError(w, http.StatusNotFound, err)
				return
			}
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeSuccess(w, dailyRow(stat))
		return
	}

	rows := make([]export.DailyRow, 0, len(s.session.Daily()))
	for _, d := range s.session.Daily() {
		rows = append(rows, dailyRow(d))
	}
	writeSuccess(w, rows)
}

// handleSequence returns the win-rate table by position-in-day.
func (s *Server) handleSequence(w http.ResponseWriter, r *http.Request) {
	rows := make([]export.SequenceRow, 0, len(s.session.Sequence()))
	for _, seq := range s.session.Sequence() {
		rows = append(rows, export.SequenceRow{
			GameNr:    seq.GameNr,
			WinRate:   seq.WinRate,
			GameCount: seq.GameCount,
		})
	}
	writeSuccess(w, rows)
}

// statesResponse is the dense state matrix in wire form.
type statesResponse struct {
	HistoryLength int               `json:"history_length"`
	Columns       []string          `json:"columns"`
	Rows          []export.StateRow `json:"rows"`
}

// handleStates returns the state matrix. Cells with no observations
// are omitted so that clients cannot mistake them for a 0% win rate.
func (s *Server) handleStates(w http.ResponseWriter, r *http.Request) {
	matrix := s.session.Matrix()
	rows := make([]export.StateRow, 0, matrix.Len())
	for _, key := range matrix.RowKeys() {
		row := export.StateRow{History: key.Label()}
		if key.Len == 0 {
			row.History = "no prior history"
		}
		if rate, ok := matrix.Cell(key, stats.OutcomeLoss); ok {
			row.LossRate = &rate
		}
		if rate, ok := matrix.Cell(key, stats.OutcomeWin); ok {
			row.WinRate = &rate
		}
		rows = append(rows, row)
	}
	writeSuccess(w, statesResponse{
		HistoryLength: matrix.HistoryLength(),
		Columns:       []string{stats.OutcomeLoss.String(), stats.OutcomeWin.String()},
		Rows:          rows,
	})
}

// handleVolume returns the win-rate table by daily game volume.
func (s *Server) handleVolume(w http.ResponseWriter, r *http.Request) {
	rows := make([]export.VolumeRow, 0, len(s.session.Volume()))
	for _, v := range s.session.Volume() {
		rows = append(rows, export.VolumeRow{
			GamesPerDay: v.GamesPerDay,
			WinRate:     v.WinRate,
		})
	}
	writeSuccess(w, rows)
}

func dailyRow(d stats.DailyStat) export.DailyRow {
	return export.DailyRow{
		Date:      d.Date.String(),
		WinRate:   d.WinRate,
		GameCount: d.GameCount,
	}
}
