// Package analysis owns one batch analysis run: it loads a match
// export, normalizes it into rows, derives the grouping features and
// computes the four statistical views. A Session is built once and
// read many times; nothing mutates it after Run returns.
package analysis

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/soloqlab/lol-insights/internal/matchlog"
	"github.com/soloqlab/lol-insights/internal/stats"
)

// ErrNoData is returned by lookups for a key with no matching rows.
var ErrNoData = errors.New("no data")

// ErrNotRun is returned by accessors before Run has completed.
var ErrNotRun = errors.New("session has not been run")

// Config holds the parameters of one analysis session.
type Config struct {
	// SourcePath is the match export file to analyze.
	SourcePath string
	// HistoryLength is the number of prior games whose outcomes define
	// a lag-state.
	HistoryLength int
}

// Session runs the pipeline and exposes the computed tables.
type Session struct {
	cfg Config
	log *zap.Logger
	ran bool

	rows    []stats.Row
	derived []stats.DerivedRow
	report  stats.NormalizeReport

	daily       []stats.DailyStat
	dailyByDate map[stats.Date]stats.DailyStat
	sequence    []stats.SequenceStat
	states      map[stats.LagTuple]stats.StateProb
	matrix      *stats.StateMatrix
	volume      []stats.VolumeStat
	streaks     stats.StreakStats
}

// New validates the configuration and prepares a session. Run must be
// called before any table accessor.
func New(cfg Config, logger *zap.Logger) (*Session, error) {
	if cfg.SourcePath == "" {
		return nil, errors.New("source path is required")
	}
	if cfg.HistoryLength < 1 || cfg.HistoryLength > stats.MaxHistoryLength {
		return nil, fmt.Errorf("history length must be in [1, %d], got %d",
			stats.MaxHistoryLength, cfg.HistoryLength)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{cfg: cfg, log: logger}, nil
}

// Run executes the whole pipeline: load, normalize, derive, aggregate.
// It is single-threaded and batch; the record set is fully loaded and
// normalized before any aggregation runs.
func (s *Session) Run() error {
	started := time.Now()

	records, err := matchlog.ReadFile(s.cfg.SourcePath)
	if err != nil {
		return fmt.Errorf("load match export: %w", err)
	}
	s.log.Info("match export loaded",
		zap.String("path", s.cfg.SourcePath),
		zap.Int("records", len(records)))

	s.rows, s.report = stats.Normalize(records)
	if s.report.UnknownOutcomes > 0 {
		s.log.Warn("records with unrecognized result labels retained as unknown",
			zap.Int("count", s.report.UnknownOutcomes))
	}
	if s.report.MissingTimestamps > 0 {
		s.log.Warn("records without a timestamp dropped",
			zap.Int("count", s.report.MissingTimestamps))
	}

	s.derived, err = stats.BuildDerived(s.rows, s.cfg.HistoryLength)
	if err != nil {
		return err
	}

	s.daily = stats.Daily(s.derived)
	s.dailyByDate = make(map[stats.Date]stats.DailyStat, len(s.daily))
	for _, d := range s.daily {
		s.dailyByDate[d.Date] = d
	}
	s.sequence = stats.Sequence(s.derived)
	s.states = stats.LagStates(s.derived)
	s.matrix = stats.Reshape(s.states, s.cfg.HistoryLength)
	s.volume = stats.Volume(s.daily)
	s.streaks = stats.Streaks(s.rows)

	s.ran = true
	s.log.Info("analysis complete",
		zap.Int("rows", s.report.Retained),
		zap.Int("rank_filtered", s.report.RankFiltered),
		zap.Int("days", len(s.daily)),
		zap.Int("states", len(s.states)),
		zap.Duration("elapsed", time.Since(started)))
	return nil
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Report returns the normalization report.
func (s *Session) Report() stats.NormalizeReport {
	return s.report
}

// Rows returns the normalized, chronologically sorted rows.
func (s *Session) Rows() []stats.Row {
	return s.rows
}

// Derived returns the rows with their derived features.
func (s *Session) Derived() []stats.DerivedRow {
	return s.derived
}

// Daily returns the per-date win rate table, sorted by date.
func (s *Session) Daily() []stats.DailyStat {
	return s.daily
}

// DailyFor looks up the daily stat for one calendar date. It returns
// ErrNoData when no games were recorded on that date.
func (s *Session) DailyFor(date stats.Date) (stats.DailyStat, error) {
	if !s.ran {
		return stats.DailyStat{}, ErrNotRun
	}
	d, ok := s.dailyByDate[date]
	if !ok {
		return stats.DailyStat{}, fmt.Errorf("date %s: %w", date, ErrNoData)
	}
	return d, nil
}

// Sequence returns the win rate table by position-in-day.
func (s *Session) Sequence() []stats.SequenceStat {
	return s.sequence
}

// States returns the sparse conditional win probability table.
func (s *Session) States() map[stats.LagTuple]stats.StateProb {
	return s.states
}

// Matrix returns the dense state matrix.
func (s *Session) Matrix() *stats.StateMatrix {
	return s.matrix
}

// Volume returns the win rate table by daily game volume.
func (s *Session) Volume() []stats.VolumeStat {
	return s.volume
}

// Streaks returns the win/loss streak statistics.
func (s *Session) Streaks() stats.StreakStats {
	return s.streaks
}

// Summary condenses the session into headline numbers.
type Summary struct {
	Games         int        `json:"games"`
	Wins          int        `json:"wins"`
	Losses        int        `json:"losses"`
	Unknown       int        `json:"unknown"`
	WinRate       float64    `json:"win_rate"`
	Days          int        `json:"days"`
	HistoryLength int        `json:"history_length"`
	FirstGame     *time.Time `json:"first_game,omitempty"`
	LastGame      *time.Time `json:"last_game,omitempty"`
}

// Summary returns headline numbers for the whole session.
func (s *Session) Summary() Summary {
	sum := Summary{Days: len(s.daily), HistoryLength: s.cfg.HistoryLength}
	for _, row := range s.rows {
		switch row.Outcome {
		case stats.OutcomeWin:
			sum.Wins++
		case stats.OutcomeLoss:
			sum.Losses++
		default:
			sum.Unknown++
		}
	}
	sum.Games = len(s.rows)
	if sum.Wins+sum.Losses > 0 {
		sum.WinRate = float64(sum.Wins) / float64(sum.Wins+sum.Losses)
	}
	if len(s.rows) > 0 {
		first := s.rows[0].Timestamp
		last := s.rows[len(s.rows)-1].Timestamp
		sum.FirstGame = &first
		sum.LastGame = &last
	}
	return sum
}
