package matchlog

// Result labels used by the match history export.
const (
	ResultWin  = "WON"
	ResultLoss = "LOST"
)

// MatchRecord is one raw match entry from the export file. The export
// schema is loose, so the record stays an opaque map and fields are
// pulled out with fail-soft accessors. Records are ephemeral: they are
// discarded once normalized into stats rows.
type MatchRecord map[string]any

// Result returns the outcome label, if present.
func (r MatchRecord) Result() (string, bool) {
	s, ok := r["result"].(string)
	return s, ok
}

// StartedAt returns the match start time in epoch seconds, if present.
func (r MatchRecord) StartedAt() (int64, bool) {
	switch v := r["startedAt"].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}

// RankAfter returns the nested lp.after.value rank, or 0 when any part
// of the path is missing or has the wrong type. A genuine rank of 0 is
// indistinguishable from an absent rank; the normalizer filters both.
func (r MatchRecord) RankAfter() int {
	lp, ok := r["lp"].(map[string]any)
	if !ok {
		return 0
	}
	after, ok := lp["after"].(map[string]any)
	if !ok {
		return 0
	}
	value, ok := after["value"].(float64)
	if !ok {
		return 0
	}
	return int(value)
}
