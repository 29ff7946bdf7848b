package main

import (
	"fmt"

	"github.com/soloqlab/lol-insights/internal/analysis"
	"github.com/soloqlab/lol-insights/internal/stats"
)

// displaySummary displays high level totals for the analyzed match history.
func displaySummary(session *analysis.Session) {
	summary := session.Summary()
	if summary.Games == 0 {
		fmt.Println("No ranked games available.")
		return
	}

	fmt.Println("\nMatch History Summary")
	fmt.Println("=====================")
	fmt.Println()

	fmt.Printf("Ranked games: %d\n", summary.Games)
	fmt.Printf("Record: %dW - %dL", summary.Wins, summary.Losses)
	if summary.Unknown > 0 {
		fmt.Printf(" (%d with unknown outcome)", summary.Unknown)
	}
	fmt.Println()
	fmt.Printf("Win rate: %.1f%%\n", summary.WinRate*100)
	fmt.Printf("Days played: %d\n", summary.Days)
	if summary.FirstGame != nil && summary.LastGame != nil {
		fmt.Printf("Period: %s to %s\n",
			summary.FirstGame.Format("2006-01-02"),
			summary.LastGame.Format("2006-01-02"))
	}

	streaks := session.Streaks()
	fmt.Printf("Current streak: %s\n", stats.FormatCurrentStreak(streaks.CurrentStreak))
	if streaks.LongestWinStreak > 0 {
		fmt.Printf("Longest win streak: %d\n", streaks.LongestWinStreak)
	}
	if streaks.LongestLossStreak > 0 {
		fmt.Printf("Longest loss streak: %d\n", streaks.LongestLossStreak)
	}

	report := session.Report()
	if report.MissingTimestamps > 0 {
		fmt.Printf("Skipped %d record(s) without a start time.\n", report.MissingTimestamps)
	}
	if report.RankFiltered > 0 {
		fmt.Printf("Filtered %d record(s) without rank information.\n", report.RankFiltered)
	}

	fmt.Println()
}
