package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soloqlab/lol-insights/internal/analysis"
)

func testSession(t *testing.T) *analysis.Session {
	t.Helper()

	day1 := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC).Unix()
	day2 := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC).Unix()
	entry := func(result string, ts int64, rank int) string {
		return fmt.Sprintf(`{"result": %q, "startedAt": %d, "lp": {"after": {"value": %d}}}`, result, ts, rank)
	}
	content := fmt.Sprintf(`{"items": [%s, %s, %s, %s]}`,
		entry("WON", day1, 100),
		entry("LOST", day1+600, 95),
		entry("WON", day2, 105),
		entry("WON", day2+600, 115),
	)

	path := filepath.Join(t.TempDir(), "matches.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	session, err := analysis.New(analysis.Config{SourcePath: path, HistoryLength: 1}, nil)
	require.NoError(t, err)
	require.NoError(t, session.Run())
	return session
}

func testServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(DefaultConfig(), testSession(t), nil)
}

func doGet(t *testing.T, server *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	rec := doGet(t, testServer(t), "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestSummaryEndpoint(t *testing.T) {
	rec := doGet(t, testServer(t), "/api/v1/stats/summary")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data struct {
			Games   int     `json:"games"`
			Wins    int     `json:"wins"`
			WinRate float64 `json:"win_rate"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 4, body.Data.Games)
	assert.Equal(t, 3, body.Data.Wins)
	assert.InDelta(t, 0.75, body.Data.WinRate, 1e-9)
}

func TestDailyEndpoint(t *testing.T) {
	rec := doGet(t, testServer(t), "/api/v1/stats/daily")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []struct {
			Date      string  `json:"date"`
			WinRate   float64 `json:"win_rate"`
			GameCount int     `json:"game_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "2024-06-01", body.Data[0].Date)
	assert.InDelta(t, 0.5, body.Data[0].WinRate, 1e-9)
	assert.Equal(t, 2, body.Data[1].GameCount)
}

func TestDailyEndpointWithDate(t *testing.T) {
	server := testServer(t)

	tests := []struct {
		name     string
		query    string
		wantCode int
	}{
		{"Existing date", "?date=2024-06-01", http.StatusOK},
		{"Date without games", "?date=2024-07-01", http.StatusNotFound},
		{"Malformed date", "?date=yesterday", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, server, "/api/v1/stats/daily"+tt.query)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestSequenceEndpoint(t *testing.T) {
	rec := doGet(t, testServer(t), "/api/v1/stats/sequence")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []struct {
			GameNr  int     `json:"game_nr"`
			WinRate float64 `json:"win_rate"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, 1, body.Data[0].GameNr)
	assert.InDelta(t, 1.0, body.Data[0].WinRate, 1e-9)
}

func TestStatesEndpoint(t *testing.T) {
	rec := doGet(t, testServer(t), "/api/v1/stats/states")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data struct {
			HistoryLength int      `json:"history_length"`
			Columns       []string `json:"columns"`
			Rows          []struct {
				History  string   `json:"history"`
				LossRate *float64 `json:"loss,omitempty"`
				WinRate  *float64 `json:"win,omitempty"`
			} `json:"rows"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 1, body.Data.HistoryLength)
	assert.Equal(t, []string{"loss", "win"}, body.Data.Columns)
	require.Len(t, body.Data.Rows, 1)

	// Sequence W L W W: after a loss -> W (100%), after a win -> L, W (50%).
	row := body.Data.Rows[0]
	assert.Equal(t, "no prior history", row.History)
	require.NotNil(t, row.LossRate)
	assert.InDelta(t, 1.0, *row.LossRate, 1e-9)
	require.NotNil(t, row.WinRate)
	assert.InDelta(t, 0.5, *row.WinRate, 1e-9)
}

func TestVolumeEndpoint(t *testing.T) {
	rec := doGet(t, testServer(t), "/api/v1/stats/volume")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []struct {
			GamesPerDay int     `json:"games_per_day"`
			WinRate     float64 `json:"win_rate"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, 2, body.Data[0].GamesPerDay)
	assert.InDelta(t, 0.75, body.Data[0].WinRate, 1e-9)
}

func TestUnknownRoute(t *testing.T) {
	rec := doGet(t, testServer(t), "/api/v1/stats/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
