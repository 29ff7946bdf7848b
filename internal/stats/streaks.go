package stats

import "fmt"

// StreakStats summarizes win/loss streaks over the chronological row
// sequence.
type StreakStats struct {
	// CurrentStreak is positive for an active win streak, negative for
	// an active loss streak, zero for neither.
	CurrentStreak     int
	LongestWinStreak  int
	LongestLossStreak int
}

// Streaks calculates streak statistics. rows must be ordered oldest to
// newest. An unknown outcome breaks any running streak.
func Streaks(rows []Row) StreakStats {
	var stats StreakStats
	currentWinStreak := 0
	currentLossStreak := 0

	for _, row := range rows {
		switch row.Outcome {
		case OutcomeWin:
			currentWinStreak++
			currentLossStreak = 0
			if currentWinStreak > stats.LongestWinStreak {
				stats.LongestWinStreak = currentWinStreak
			}

		case OutcomeLoss:
			currentLossStreak++
			currentWinStreak = 0
			if currentLossStreak > stats.LongestLossStreak {
				stats.LongestLossStreak = currentLossStreak
			}

		default:
			currentWinStreak = 0
			currentLossStreak = 0
		}
	}

	if currentWinStreak > 0 {
		stats.CurrentStreak = currentWinStreak
	} else if currentLossStreak > 0 {
		stats.CurrentStreak = -currentLossStreak
	}

	return stats
}

// FormatCurrentStreak returns a human-readable string for the current streak.
func FormatCurrentStreak(streak int) string {
	if streak == 0 {
		return "No active streak"
	}
	if streak > 0 {
		if streak == 1 {
			return "1 win streak"
		}
		return fmt.Sprintf("%d win streak", streak)
	}
	absStreak := -streak
	if absStreak == 1 {
		return "1 loss streak"
	}
	return fmt.Sprintf("%d loss streak", absStreak)
}
