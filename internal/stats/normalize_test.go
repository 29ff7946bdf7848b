package stats

import (
	"testing"
	"time"

	"github.com/soloqlab/lol-insights/internal/matchlog"
)

func record(result string, startedAt int64, rank int) matchlog.MatchRecord {
	rec := matchlog.MatchRecord{
		"result":    result,
		"startedAt": float64(startedAt),
	}
	if rank != 0 {
		rec["lp"] = map[string]any{"after": map[string]any{"value": float64(rank)}}
	}
	return rec
}

func TestNormalize(t *testing.T) {
	base := int64(1717243200) // 2024-06-01 12:00:00 UTC

	tests := []struct {
		name         string
		records      []matchlog.MatchRecord
		wantOutcomes []Outcome
		wantReport   NormalizeReport
	}{
		{
			name:       "Empty input",
			records:    nil,
			wantReport: NormalizeReport{},
		},
		{
			name: "Win and loss labels",
			records: []matchlog.MatchRecord{
				record("WON", base, 100),
				record("LOST", base+600, 95),
			},
			wantOutcomes: []Outcome{OutcomeWin, OutcomeLoss},
			wantReport:   NormalizeReport{Input: 2, Retained: 2},
		},
		{
			name: "Unknown label retained as unknown",
			records: []matchlog.MatchRecord{
				record("WON", base, 100),
				record("REMAKE", base+600, 100),
				record("LOST", base+1200, 95),
			},
			wantOutcomes: []Outcome{OutcomeWin, OutcomeUnknown, OutcomeLoss},
			wantReport:   NormalizeReport{Input: 3, Retained: 3, UnknownOutcomes: 1},
		},
		{
			name: "Rank zero filtered",
			records: []matchlog.MatchRecord{
				record("WON", base, 100),
				record("LOST", base+600, 0),
				record("WON", base+1200, 110),
			},
			wantOutcomes: []Outcome{OutcomeWin, OutcomeWin},
			wantReport:   NormalizeReport{Input: 3, Retained: 2, RankFiltered: 1},
		},
		{
			name: "Missing rank path filtered",
			records: []matchlog.MatchRecord{
				{"result": "WON", "startedAt": float64(base)},
				record("LOST", base+600, 95),
			},
			wantOutcomes: []Outcome{OutcomeLoss},
			wantReport:   NormalizeReport{Input: 2, Retained: 1, RankFiltered: 1},
		},
		{
			name: "Missing timestamp dropped",
			records: []matchlog.MatchRecord{
				{"result": "WON", "lp": map[string]any{"after": map[string]any{"value": float64(80)}}},
				record("LOST", base, 95),
			},
			wantOutcomes: []Outcome{OutcomeLoss},
			wantReport:   NormalizeReport{Input: 2, Retained: 1, MissingTimestamps: 1},
		},
		{
			name: "Out of order input sorted chronologically",
			records: []matchlog.MatchRecord{
				record("LOST", base+1200, 95),
				record("WON", base, 100),
				record("WON", base+600, 105),
			},
			wantOutcomes: []Outcome{OutcomeWin, OutcomeWin, OutcomeLoss},
			wantReport:   NormalizeReport{Input: 3, Retained: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, report := Normalize(tt.records)

			if report != tt.wantReport {
				t.Errorf("report = %+v, want %+v", report, tt.wantReport)
			}
			if len(rows) != len(tt.wantOutcomes) {
				t.Fatalf("got %d rows, want %d", len(rows), len(tt.wantOutcomes))
			}
			for i, want := range tt.wantOutcomes {
				if rows[i].Outcome != want {
					t.Errorf("rows[%d].Outcome = %v, want %v", i, rows[i].Outcome, want)
				}
			}
			for i := 1; i < len(rows); i++ {
				if rows[i].Timestamp.Before(rows[i-1].Timestamp) {
					t.Errorf("rows not sorted: rows[%d] before rows[%d]", i, i-1)
				}
			}
		})
	}
}

func TestNormalizeStableSort(t *testing.T) {
	base := int64(1717243200)

	// Two games with the same start time keep their input order.
	records := []matchlog.MatchRecord{
		record("WON", base, 100),
		record("LOST", base, 95),
	}

	rows, _ := Normalize(records)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Outcome != OutcomeWin || rows[1].Outcome != OutcomeLoss {
		t.Errorf("equal timestamps reordered: got %v, %v", rows[0].Outcome, rows[1].Outcome)
	}
}

func TestNormalizeDates(t *testing.T) {
	// 2024-06-01 23:30 UTC and 2024-06-02 00:30 UTC fall on different
	// UTC dates even though they are an hour apart.
	late := time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC).Unix()
	early := time.Date(2024, 6, 2, 0, 30, 0, 0, time.UTC).Unix()

	rows, _ := Normalize([]matchlog.MatchRecord{
		record("WON", late, 100),
		record("LOST", early, 95),
	})
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	want := []Date{
		{Year: 2024, Month: time.June, Day: 1},
		{Year: 2024, Month: time.June, Day: 2},
	}
	for i, w := range want {
		if rows[i].Date != w {
			t.Errorf("rows[%d].Date = %v, want %v", i, rows[i].Date, w)
		}
	}
}
