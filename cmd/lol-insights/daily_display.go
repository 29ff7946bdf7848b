package main

import (
	"errors"
	"fmt"

	"github.com/soloqlab/lol-insights/internal/analysis"
	"github.com/soloqlab/lol-insights/internal/stats"
)

// displayDailyStats displays the win rate and game count per calendar
// day. When date is non-empty only that day is shown.
func displayDailyStats(session *analysis.Session, date string) {
	if date != "" {
		displayDailyStatsForDate(session, date)
		return
	}

	daily := session.Daily()
	if len(daily) == 0 {
		fmt.Println("No daily statistics available.")
		return
	}

	fmt.Println("Daily Win Rate")
	fmt.Println("==============")
	fmt.Println()
	fmt.Printf("%-12s %8s %10s\n", "Date", "Games", "Win Rate")

	for _, day := range daily {
		fmt.Printf("%-12s %8d %9.1f%%\n", day.Date, day.GameCount, day.WinRate*100)
	}

	fmt.Println()
}

// displayDailyStatsForDate displays the stats of a single day.
func displayDailyStatsForDate(session *analysis.Session, date string) {
	parsed, err := stats.ParseDate(date)
	if err != nil {
		fmt.Printf("Invalid date: %s. Must be YYYY-MM-DD\n", date)
		return
	}

	day, err := session.DailyFor(parsed)
	if err != nil {
		if errors.Is(err, analysis.ErrNoData) {
			fmt.Printf("No games recorded on %s.\n", parsed)
			return
		}
		fmt.Printf("Error retrieving daily stats: %v\n", err)
		return
	}

	fmt.Printf("Daily Win Rate - %s\n", day.Date)
	fmt.Println("===========================")
	fmt.Println()
	fmt.Printf("Games: %d\n", day.GameCount)
	fmt.Printf("Win rate: %.1f%%\n", day.WinRate*100)
	fmt.Println()
}
