package stats

import "sort"

// StateMatrix is the dense reshaping of the lag-state probabilities.
// Columns select the most recent outcome (loss, then win); rows are
// keyed by the remaining history tuple, lag_2..lag_N in order, most
// recent first. With a history length of 1 the matrix has the single
// empty-history row.
//
// Cells are nil when no games were observed for that (history,
// outcome) combination. No data is never the same as a 0% win rate.
type StateMatrix struct {
	historyLength int
	cells         map[LagTuple][2]*float64
}

// Reshape converts the sparse lag-state table for the given history
// length into a dense two-column matrix. States whose tuple length
// does not match historyLength are ignored.
func Reshape(states map[LagTuple]StateProb, historyLength int) *StateMatrix {
	m := &StateMatrix{
		historyLength: historyLength,
		cells:         make(map[LagTuple][2]*float64),
	}
	for key, prob := range states {
		if key.Len != historyLength {
			continue
		}
		rate := prob.WinRate
		row := m.cells[key.Suffix()]
		row[key.At(0)] = &rate
		m.cells[key.Suffix()] = row
	}
	return m
}

// HistoryLength returns the configured lag history length N.
func (m *StateMatrix) HistoryLength() int {
	return m.historyLength
}

// RowKeys returns every observed history tuple, sorted ascending with
// losses before wins.
func (m *StateMatrix) RowKeys() []LagTuple {
	keys := make([]LagTuple, 0, len(m.cells))
	for key := range m.cells {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// Cell returns the win rate for the given history and most recent
// outcome. ok is false when the combination was never observed.
func (m *StateMatrix) Cell(history LagTuple, recent Outcome) (float64, bool) {
	if !recent.Known() {
		return 0, false
	}
	row, found := m.cells[history]
	if !found || row[recent] == nil {
		return 0, false
	}
	return *row[recent], true
}

// Len returns the number of history rows.
func (m *StateMatrix) Len() int {
	return len(m.cells)
}
