package stats

import (
	"sort"
	"time"

	"github.com/soloqlab/lol-insights/internal/matchlog"
)

// NormalizeReport summarizes what normalization kept and dropped.
type NormalizeReport struct {
	// Input is the number of raw records seen.
	Input int
	// Retained is the number of rows that survived filtering.
	Retained int
	// UnknownOutcomes counts records whose result label was outside
	// the win/loss vocabulary. Those rows are retained with
	// OutcomeUnknown, not coerced to a loss.
	UnknownOutcomes int
	// MissingTimestamps counts records dropped for lacking a usable
	// startedAt value; a row without an instant has no place in the
	// chronological sequence.
	MissingTimestamps int
	// RankFiltered counts rows removed by the rank filter.
	RankFiltered int
}

// Normalize converts raw match records into typed rows: outcome mapped
// through the WON/LOST vocabulary, rank extracted fail-soft from
// lp.after.value, timestamp converted to a UTC instant.
//
// Rows whose rank is exactly 0 are filtered out afterwards. This drops
// both rows where rank extraction failed and any legitimate rank-0
// value; the two cases are not distinguishable in the export format.
// The survivors are sorted by timestamp ascending, stably, so equal
// timestamps keep their input order.
func Normalize(records []matchlog.MatchRecord) ([]Row, NormalizeReport) {
	report := NormalizeReport{Input: len(records)}

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		ts, ok := rec.StartedAt()
		if !ok {
			report.MissingTimestamps++
			continue
		}

		outcome := OutcomeUnknown
		switch label, _ := rec.Result(); label {
		case matchlog.ResultWin:
			outcome = OutcomeWin
		case matchlog.ResultLoss:
			outcome = OutcomeLoss
		default:
			report.UnknownOutcomes++
		}

		rows = append(rows, Row{
			Timestamp: time.Unix(ts, 0).UTC(),
			Outcome:   outcome,
			Rank:      rec.RankAfter(),
		})
	}

	kept := rows[:0]
	for _, row := range rows {
		if row.Rank == 0 {
			report.RankFiltered++
			continue
		}
		kept = append(kept, row)
	}
	rows = kept

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Timestamp.Before(rows[j].Timestamp)
	})

	for i := range rows {
		rows[i].Date = DateOf(rows[i].Timestamp)
	}

	report.Retained = len(rows)
	return rows, report
}
