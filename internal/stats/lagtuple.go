package stats

import "strings"

// LagTuple is a fixed-width grouping key over lag outcomes. Len is the
// number of meaningful slots; unused slots always hold OutcomeUnknown
// so that equal tuples compare equal as map keys.
type LagTuple struct {
	Len  int
	Lags [MaxHistoryLength]Outcome
}

// NewLagTuple builds a key from the given lag values, most recent
// first. ok is false when any value is not a win or a loss: a tuple
// with undefined history identifies no state.
func NewLagTuple(lags []Outcome) (LagTuple, bool) {
	if len(lags) > MaxHistoryLength {
		return LagTuple{}, false
	}
	t := LagTuple{Len: len(lags)}
	for i := range t.Lags {
		t.Lags[i] = OutcomeUnknown
	}
	for i, o := range lags {
		if !o.Known() {
			return LagTuple{}, false
		}
		t.Lags[i] = o
	}
	return t, true
}

// At returns the k-th lag value (0-based, most recent first).
func (t LagTuple) At(k int) Outcome {
	return t.Lags[k]
}

// Suffix returns the tuple with the most recent lag removed, i.e. the
// history before the most recent game. For a single-lag tuple the
// result is the empty tuple ("no prior history").
func (t LagTuple) Suffix() LagTuple {
	if t.Len == 0 {
		return t
	}
	s, _ := NewLagTuple(t.Lags[1:t.Len])
	return s
}

// Less orders tuples by their lag values in key order, losses before
// wins. Tuples of different lengths never meet in one table.
func (t LagTuple) Less(other LagTuple) bool {
	for i := 0; i < t.Len && i < other.Len; i++ {
		if t.Lags[i] != other.Lags[i] {
			return t.Lags[i] < other.Lags[i]
		}
	}
	return t.Len < other.Len
}

// Label renders the tuple as a W/L history string, most recent first.
// The empty tuple renders as the empty string.
func (t LagTuple) Label() string {
	parts := make([]string, t.Len)
	for i := 0; i < t.Len; i++ {
		parts[i] = t.Lags[i].Letter()
	}
	return strings.Join(parts, "-")
}
