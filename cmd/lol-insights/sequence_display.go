package main

import (
	"fmt"

	"github.com/soloqlab/lol-insights/internal/analysis"
)

// displaySequenceStats displays the win rate by position within the
// day: all first games of a day pooled together, all second games, and
// so on.
func displaySequenceStats(session *analysis.Session) {
	sequence := session.Sequence()
	if len(sequence) == 0 {
		fmt.Println("No sequence statistics available.")
		return
	}

	fmt.Println("Win Rate by Game Number")
	fmt.Println("=======================")
	fmt.Println()
	fmt.Printf("%-10s %8s %10s\n", "Game #", "Games", "Win Rate")

	for _, seq := range sequence {
		fmt.Printf("%-10d %8d %9.1f%%\n", seq.GameNr, seq.GameCount, seq.WinRate*100)
	}

	fmt.Println()
}
