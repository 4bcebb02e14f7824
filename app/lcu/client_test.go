package lcu

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "riot", user)
		assert.Equal(t, "hunter2", pass)

		switch r.URL.Path {
		case "/lol-summoner/v1/current-summoner":
			w.Write([]byte(`{"displayName":"Faker","summonerLevel":512,"profileIconId":29}`))
		case "/lol-ranked/v1/current-ranked-stats":
			w.Write([]byte(`{"queues":[{"queueType":"RANKED_SOLO_5x5","tier":"CHALLENGER","division":"I","leaguePoints":1337,"wins":200,"losses":100}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(Auth{Port: 1, Password: "hunter2", Protocol: "https"})
	c.BaseURL = srv.URL

	summoner, err := c.GetCurrentSummoner()
	require.NoError(t, err)
	assert.Equal(t, "Faker", summoner.DisplayName)
	assert.Equal(t, 512, summoner.SummonerLevel)

	stats, err := c.GetRankedStats()
	require.NoError(t, err)
	solo, ok := stats.SoloQueue()
	require.True(t, ok)
	assert.Equal(t, "CHALLENGER", solo.Tier)
	assert.Equal(t, 1337, solo.LeaguePoints)
}

func TestClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"not logged in"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(Auth{Port: 1, Password: "pw", Protocol: "https"})
	c.BaseURL = srv.URL

	_, err := c.GetChatMe()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}
