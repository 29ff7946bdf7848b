package main

import (
	"fmt"

	"github.com/soloqlab/lol-insights/internal/analysis"
)

// displayVolumeStats displays the average daily win rate grouped by
// how many games were played that day.
func displayVolumeStats(session *analysis.Session) {
	volume := session.Volume()
	if len(volume) == 0 {
		fmt.Println("No volume statistics available.")
		return
	}

	fmt.Println("Win Rate by Daily Volume")
	fmt.Println("========================")
	fmt.Println()
	fmt.Printf("%-12s %14s\n", "Games/Day", "Avg Win Rate")

	for _, vol := range volume {
		fmt.Printf("%-12d %13.1f%%\n", vol.GamesPerDay, vol.WinRate*100)
	}

	fmt.Println()
}
