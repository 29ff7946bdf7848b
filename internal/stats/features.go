package stats

import "fmt"

// BuildDerived computes the per-row features the aggregations group
// on: position within the day, daily volume, rank delta, and the
// historyLength lagged outcomes. rows must already be normalized and
// sorted chronologically.
//
// historyLength must be between 1 and MaxHistoryLength; the lag-state
// key is a fixed-width tuple, so the bound is enforced here rather
// than at grouping time.
func BuildDerived(rows []Row, historyLength int) ([]DerivedRow, error) {
	if historyLength < 1 || historyLength > MaxHistoryLength {
		return nil, fmt.Errorf("history length must be in [1, %d], got %d", MaxHistoryLength, historyLength)
	}

	dayCounts := make(map[Date]int, len(rows))
	for _, row := range rows {
		dayCounts[row.Date]++
	}

	derived := make([]DerivedRow, len(rows))
	gameNr := make(map[Date]int, len(dayCounts))
	for i, row := range rows {
		gameNr[row.Date]++

		d := DerivedRow{
			Row:      row,
			GameNr:   gameNr[row.Date],
			DayCount: dayCounts[row.Date],
			Lags:     make([]Outcome, historyLength),
		}

		// Rank delta runs over the full chronological order, not per
		// day. The first row has no predecessor.
		if i > 0 {
			diff := row.Rank - rows[i-1].Rank
			d.LPDiff = &diff
		}

		// lag_k is the outcome k positions back in the full sequence;
		// undefined until k prior rows exist.
		for k := 1; k <= historyLength; k++ {
			if i-k >= 0 {
				d.Lags[k-1] = rows[i-k].Outcome
			} else {
				d.Lags[k-1] = OutcomeUnknown
			}
		}

		derived[i] = d
	}

	return derived, nil
}
