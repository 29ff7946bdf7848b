package main

import (
	"fmt"

	"github.com/soloqlab/lol-insights/internal/analysis"
	"github.com/soloqlab/lol-insights/internal/stats"
)

// displayStateMatrix displays the win probability conditioned on the
// outcomes of the previous games. Columns split on the most recent
// result, rows on the older history.
func displayStateMatrix(session *analysis.Session) {
	matrix := session.Matrix()
	if matrix.Len() == 0 {
		fmt.Println("No state statistics available.")
		return
	}

	fmt.Printf("Win Rate After Recent Results (last %d games)\n", matrix.HistoryLength())
	fmt.Println("=============================================")
	fmt.Println()
	fmt.Printf("%-20s %14s %14s\n", "Earlier History", "After a Loss", "After a Win")

	for _, key := range matrix.RowKeys() {
		fmt.Printf("%-20s %14s %14s\n",
			historyLabel(key),
			formatCell(matrix, key, stats.OutcomeLoss),
			formatCell(matrix, key, stats.OutcomeWin))
	}

	fmt.Println()
}

// historyLabel names a matrix row for display.
func historyLabel(key stats.LagTuple) string {
	label := key.Label()
	if label == "" {
		return "(no prior history)"
	}
	return label
}

// formatCell formats one matrix cell, or a dash when the combination
// never occurred.
func formatCell(matrix *stats.StateMatrix, key stats.LagTuple, recent stats.Outcome) string {
	rate, ok := matrix.Cell(key, recent)
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", rate*100)
}
