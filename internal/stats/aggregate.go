package stats

import "sort"

// meanCounter accumulates a mean over known outcomes.
type meanCounter struct {
	wins  int
	games int
}

func (c *meanCounter) add(o Outcome) {
	if !o.Known() {
		return
	}
	c.games++
	if o == OutcomeWin {
		c.wins++
	}
}

func (c meanCounter) rate() float64 {
	return float64(c.wins) / float64(c.games)
}

// Daily groups rows by calendar date and reduces the outcome to a win
// rate and game count per date, sorted ascending. Rows with an unknown
// outcome keep their position in the sequence but contribute to
// neither the rate nor the count; a date with no known outcomes is
// omitted.
func Daily(rows []DerivedRow) []DailyStat {
	byDate := make(map[Date]*meanCounter)
	for _, row := range rows {
		c, ok := byDate[row.Date]
		if !ok {
			c = &meanCounter{}
			byDate[row.Date] = c
		}
		c.add(row.Outcome)
	}

	stats := make([]DailyStat, 0, len(byDate))
	for date, c := range byDate {
		if c.games == 0 {
			continue
		}
		stats = append(stats, DailyStat{Date: date, WinRate: c.rate(), GameCount: c.games})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Date.Before(stats[j].Date) })
	return stats
}

// Sequence groups rows by their position within the day and reduces
// the outcome to a win rate and count per position, sorted ascending.
func Sequence(rows []DerivedRow) []SequenceStat {
	byNr := make(map[int]*meanCounter)
	for _, row := range rows {
		c, ok := byNr[row.GameNr]
		if !ok {
			c = &meanCounter{}
			byNr[row.GameNr] = c
		}
		c.add(row.Outcome)
	}

	stats := make([]SequenceStat, 0, len(byNr))
	for nr, c := range byNr {
		if c.games == 0 {
			continue
		}
		stats = append(stats, SequenceStat{GameNr: nr, WinRate: c.rate(), GameCount: c.games})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].GameNr < stats[j].GameNr })
	return stats
}

// LagStates groups rows by their full lag tuple and reduces the
// outcome to a conditional win probability per state. A row belongs to
// exactly one bucket when all of its lags are defined, and to none
// otherwise; states observed only with unknown outcomes stay absent.
func LagStates(rows []DerivedRow) map[LagTuple]StateProb {
	byState := make(map[LagTuple]*meanCounter)
	for _, row := range rows {
		key, ok := row.LagTuple()
		if !ok {
			continue
		}
		c, found := byState[key]
		if !found {
			c = &meanCounter{}
			byState[key] = c
		}
		c.add(row.Outcome)
	}

	probs := make(map[LagTuple]StateProb, len(byState))
	for key, c := range byState {
		if c.games == 0 {
			continue
		}
		probs[key] = StateProb{WinRate: c.rate(), Games: c.games}
	}
	return probs
}

// Volume groups the already-aggregated daily stats by their game count
// and averages the daily win rates, sorted by volume ascending. The
// input rates are per-day means, so the result is a mean of means:
// every day weighs the same regardless of how many games it holds.
func Volume(daily []DailyStat) []VolumeStat {
	type acc struct {
		sum  float64
		days int
	}
	byCount := make(map[int]*acc)
	for _, d := range daily {
		a, ok := byCount[d.GameCount]
		if !ok {
			a = &acc{}
			byCount[d.GameCount] = a
		}
		a.sum += d.WinRate
		a.days++
	}

	stats := make([]VolumeStat, 0, len(byCount))
	for count, a := range byCount {
		stats = append(stats, VolumeStat{GamesPerDay: count, WinRate: a.sum / float64(a.days)})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].GamesPerDay < stats[j].GamesPerDay })
	return stats
}
