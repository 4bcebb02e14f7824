package ddragon

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/versions.json", r.URL.Path)
		w.Write([]byte(`["14.17.1","14.16.1","14.15.1"]`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	version, err := c.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, "14.17.1", version)
}

func TestChampionMap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cdn/14.17.1/data/en_US/champion.json", r.URL.Path)
		w.Write([]byte(`{"data":{
			"MonkeyKing":{"key":"62","name":"Wukong"},
			"Yasuo":{"key":"157","name":"Yasuo"}
		}}`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	champs, err := c.ChampionMap("14.17.1")
	require.NoError(t, err)
	assert.Equal(t, Champion{ID: "MonkeyKing", Name: "Wukong"}, champs[62])
	assert.Equal(t, Champion{ID: "Yasuo", Name: "Yasuo"}, champs[157])
}

func TestIconURLs(t *testing.T) {
	c := NewClient()
	assert.Equal(t,
		"https://ddragon.leagueoflegends.com/cdn/14.17.1/img/profileicon/29.png",
		c.ProfileIconURL("14.17.1", 29))
	assert.Equal(t,
		"https://ddragon.leagueoflegends.com/cdn/14.17.1/img/champion/MonkeyKing.png",
		c.ChampionIconURL("14.17.1", "MonkeyKing"))
}

func TestRankEmblemURL(t *testing.T) {
	assert.Contains(t, RankEmblemURL("GOLD"), "emblem-gold.png")
	assert.Contains(t, RankEmblemURL("gold"), "emblem-gold.png")
	// Unknown tiers clamp to iron rather than produce a 404ing URL.
	assert.Contains(t, RankEmblemURL("UNRANKED"), "emblem-iron.png")
	assert.Contains(t, RankEmblemURL(""), "emblem-iron.png")
}
