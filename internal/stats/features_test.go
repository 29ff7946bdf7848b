package stats

import (
	"testing"
	"time"
)

// makeRows builds normalized rows from (date, outcome, rank) triples,
// spaced ten minutes apart within each date.
func makeRows(t *testing.T, specs []struct {
	date    string
	outcome Outcome
	rank    int
}) []Row {
	t.Helper()
	rows := make([]Row, len(specs))
	perDate := make(map[string]int)
	for i, s := range specs {
		date, err := ParseDate(s.date)
		if err != nil {
			t.Fatalf("bad date %q: %v", s.date, err)
		}
		offset := time.Duration(perDate[s.date]) * 10 * time.Minute
		perDate[s.date]++
		rows[i] = Row{
			Timestamp: date.Time().Add(12*time.Hour + offset),
			Outcome:   s.outcome,
			Rank:      s.rank,
			Date:      date,
		}
	}
	return rows
}

func TestBuildDerived(t *testing.T) {
	rows := makeRows(t, []struct {
		date    string
		outcome Outcome
		rank    int
	}{
		{"2024-06-01", OutcomeWin, 100},
		{"2024-06-01", OutcomeLoss, 95},
		{"2024-06-01", OutcomeWin, 105},
		{"2024-06-02", OutcomeLoss, 98},
		{"2024-06-02", OutcomeWin, 108},
	})

	derived, err := BuildDerived(rows, 2)
	if err != nil {
		t.Fatalf("BuildDerived() error = %v", err)
	}
	if len(derived) != 5 {
		t.Fatalf("got %d derived rows, want 5", len(derived))
	}

	wantGameNr := []int{1, 2, 3, 1, 2}
	wantDayCount := []int{3, 3, 3, 2, 2}
	for i := range derived {
		if derived[i].GameNr != wantGameNr[i] {
			t.Errorf("derived[%d].GameNr = %d, want %d", i, derived[i].GameNr, wantGameNr[i])
		}
		if derived[i].DayCount != wantDayCount[i] {
			t.Errorf("derived[%d].DayCount = %d, want %d", i, derived[i].DayCount, wantDayCount[i])
		}
	}

	// Rank delta spans day boundaries.
	if derived[0].LPDiff != nil {
		t.Errorf("derived[0].LPDiff = %d, want nil", *derived[0].LPDiff)
	}
	wantDiff := []int{-5, 10, -7, 10}
	for i := 1; i < len(derived); i++ {
		if derived[i].LPDiff == nil {
			t.Fatalf("derived[%d].LPDiff = nil, want %d", i, wantDiff[i-1])
		}
		if *derived[i].LPDiff != wantDiff[i-1] {
			t.Errorf("derived[%d].LPDiff = %d, want %d", i, *derived[i].LPDiff, wantDiff[i-1])
		}
	}

	// Lags span day boundaries too: lag_1 of the first game of June 2
	// is the last game of June 1.
	wantLags := [][]Outcome{
		{OutcomeUnknown, OutcomeUnknown},
		{OutcomeWin, OutcomeUnknown},
		{OutcomeLoss, OutcomeWin},
		{OutcomeWin, OutcomeLoss},
		{OutcomeLoss, OutcomeWin},
	}
	for i, want := range wantLags {
		if len(derived[i].Lags) != len(want) {
			t.Fatalf("derived[%d] has %d lags, want %d", i, len(derived[i].Lags), len(want))
		}
		for k, o := range want {
			if derived[i].Lags[k] != o {
				t.Errorf("derived[%d].Lags[%d] = %v, want %v", i, k, derived[i].Lags[k], o)
			}
		}
	}
}

func TestBuildDerivedHistoryBounds(t *testing.T) {
	rows := makeRows(t, []struct {
		date    string
		outcome Outcome
		rank    int
	}{
		{"2024-06-01", OutcomeWin, 100},
	})

	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"Too small", 0, true},
		{"Minimum", 1, false},
		{"Maximum", MaxHistoryLength, false},
		{"Too large", MaxHistoryLength + 1, true},
		{"Negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildDerived(rows, tt.length)
			if (err != nil) != tt.wantErr {
				t.Errorf("BuildDerived(N=%d) error = %v, wantErr %v", tt.length, err, tt.wantErr)
			}
		})
	}
}

func TestDerivedRowLagTuple(t *testing.T) {
	tests := []struct {
		name   string
		lags   []Outcome
		wantOK bool
	}{
		{"All defined", []Outcome{OutcomeWin, OutcomeLoss}, true},
		{"Leading undefined", []Outcome{OutcomeUnknown, OutcomeWin}, false},
		{"Trailing undefined", []Outcome{OutcomeWin, OutcomeUnknown}, false},
		{"Single defined", []Outcome{OutcomeLoss}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := DerivedRow{Lags: tt.lags}
			_, ok := row.LagTuple()
			if ok != tt.wantOK {
				t.Errorf("LagTuple() ok = %v, want %v", ok, tt.wantOK)
			}
		})
	}
}
