package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mlb-inning-times/internal/config"
	"mlb-inning-times/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `{
  "allPlays": [
    {"result": {"event": "Strikeout"}, "about": {"atBatIndex": 0, "halfInning": "top", "isTopInning": true, "inning": 1,
      "startTime": "2024-04-01T17:10:32.123Z", "endTime": "2024-04-01T17:12:01.456Z", "isComplete": true}},
    {"about": {"atBatIndex": 1, "halfInning": "top", "inning": 1, "startTime": "2024-04-01T17:12:05.000Z"}},
    {"about": null},
    {}
  ]
}`

func newTestClient(t *testing.T, h http.HandlerFunc) (*StatsAPIClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.StatsAPIBaseURL = srv.URL + "/api/v1/"
	return NewStatsAPIClient(cfg), srv
}

func TestGetPlayByPlay_DecodesPlays(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	})

	resp, err := client.GetPlayByPlay(context.Background(), "745123")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/game/745123/playByPlay", gotPath)

	plays := resp.Plays()
	require.Len(t, plays, 4)

	require.NotNil(t, plays[0].Inning)
	assert.Equal(t, 1, *plays[0].Inning)
	assert.Equal(t, "top", *plays[0].HalfInning)
	assert.Equal(t, "2024-04-01T17:10:32.123Z", *plays[0].StartTime)
	assert.Equal(t, "2024-04-01T17:12:01.456Z", *plays[0].EndTime)

	assert.Nil(t, plays[1].EndTime)
	assert.Equal(t, 0, countSet(plays[2]))
	assert.Equal(t, 0, countSet(plays[3]))
	assert.Equal(t, "Strikeout", resp.AllPlays[0].Result.Event)
	assert.Zero(t, resp.Undecodable())
}

func countSet(p domain.Play) int {
	n := 0
	if p.Inning != nil {
		n++
	}
	if p.HalfInning != nil {
		n++
	}
	if p.StartTime != nil {
		n++
	}
	if p.EndTime != nil {
		n++
	}
	return n
}

func TestGetPlayByPlay_NonSuccessStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := client.GetPlayByPlay(context.Background(), "1")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestGetPlayByPlay_MalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>maintenance</html>`},
		{"truncated", `{"allPlays": [{"about": {"inning": 1`},
		{"allPlays not a list", `{"allPlays": "none"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetPlayByPlay(context.Background(), "1")
			assert.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}

func TestGetPlayByPlay_BadlyTypedPlayIsSkipped(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"allPlays": [
			{"about": {"inning": 1, "halfInning": "top", "startTime": "T1", "endTime": "T2"}},
			{"about": {"inning": "2", "halfInning": "top", "startTime": "T3", "endTime": "T4"}},
			{"about": {"inning": 1, "halfInning": "bottom", "startTime": "T5", "endTime": "T6"}, "result": {"event": 7}},
			"garbage"
		]}`))
	})

	resp, err := client.GetPlayByPlay(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Undecodable())

	plays := resp.Plays()
	require.Len(t, plays, 4)
	assert.Equal(t, 4, countSet(plays[0]))
	assert.Equal(t, 0, countSet(plays[1]))
	assert.Equal(t, 4, countSet(plays[2]))
	assert.Equal(t, "bottom", *plays[2].HalfInning)
	assert.Equal(t, 0, countSet(plays[3]))
}

func TestGetPlayByPlay_MissingAllPlays(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"copyright": "x"}`))
	})

	resp, err := client.GetPlayByPlay(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, resp.Plays())
}

func TestGetPlayByPlay_ContextCanceled(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(samplePayload))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.GetPlayByPlay(ctx, "1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetPlayByPlay_DeadlineExceeded(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(samplePayload))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := client.GetPlayByPlay(ctx, "1")
	assert.Error(t, err)
}

func TestPlayByPlayURL_EscapesIdentifier(t *testing.T) {
	cfg := config.Default()
	client := NewStatsAPIClient(cfg)
	assert.Equal(t, "https://statsapi.mlb.com/api/v1/game/a%2Fb/playByPlay", client.PlayByPlayURL("a/b"))
}
