package stats

import (
	"fmt"
	"time"
)

// MaxHistoryLength bounds the configurable lag history. The lag-state
// key is a fixed-width array, so the bound is fixed at compile time.
const MaxHistoryLength = 10

// Outcome is the result of a single ranked game.
type Outcome int8

const (
	// OutcomeLoss represents a lost game.
	OutcomeLoss Outcome = 0
	// OutcomeWin represents a won game.
	OutcomeWin Outcome = 1
	// OutcomeUnknown marks a result label outside the win/loss
	// vocabulary. Unknown rows keep their chronological position but
	// never count toward a win rate, and a lag slot holding an unknown
	// or missing outcome is treated as undefined.
	OutcomeUnknown Outcome = -1
)

// Known reports whether the outcome is a win or a loss.
func (o Outcome) Known() bool {
	return o == OutcomeWin || o == OutcomeLoss
}

// String returns the lowercase outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// Letter returns the single-letter label used in history strings.
func (o Outcome) Letter() string {
	switch o {
	case OutcomeWin:
		return "W"
	case OutcomeLoss:
		return "L"
	default:
		return "?"
	}
}

// Date is a calendar date. It is comparable and safe to use as a map
// key, unlike time.Time.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the UTC calendar date of the given instant. Timestamps
// are stored in UTC and no timezone conversion is performed.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Row is a normalized game record. Rows are totally ordered by
// Timestamp ascending with a stable tie-break on input order, and every
// retained row has Rank != 0.
type Row struct {
	Timestamp time.Time
	Outcome   Outcome
	Rank      int
	Date      Date
}

// DerivedRow is a Row extended with the per-row features the
// aggregations group on.
type DerivedRow struct {
	Row

	// GameNr is the 1-based position of the row within its date.
	GameNr int
	// DayCount is the total number of rows sharing the row's date.
	DayCount int
	// LPDiff is the rank delta from the previous row in full
	// chronological order; nil for the first row.
	LPDiff *int
	// Lags holds lag_1..lag_N: the outcome of the row k positions
	// earlier in the full chronological sequence. Slots without that
	// much prior history hold OutcomeUnknown.
	Lags []Outcome
}

// LagTuple returns the full lag-state key for the row. ok is false when
// any of the row's lags is undefined; such rows belong to no bucket.
func (r DerivedRow) LagTuple() (LagTuple, bool) {
	return NewLagTuple(r.Lags)
}

// DailyStat is the win rate and game count of one calendar date.
type DailyStat struct {
	Date      Date
	WinRate   float64
	GameCount int
}

// SequenceStat is the win rate across all games sharing a position-in-
// day (first game of any day, second game, and so on).
type SequenceStat struct {
	GameNr    int
	WinRate   float64
	GameCount int
}

// StateProb is the empirical win probability conditioned on one exact
// lag-state. Games counts the rows the mean was taken over.
type StateProb struct {
	WinRate float64
	Games   int
}

// VolumeStat is the mean of the daily win rates of all days on which
// exactly GamesPerDay games were played. Days are the unit of
// averaging: this is a mean of per-day means, never a pooled mean.
type VolumeStat struct {
	GamesPerDay int
	WinRate     float64
}
