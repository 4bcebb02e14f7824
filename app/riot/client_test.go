package riot

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformToRegional(t *testing.T) {
	assert.Equal(t, "americas", PlatformToRegional("NA1"))
	assert.Equal(t, "europe", PlatformToRegional("EUN1"))
	assert.Equal(t, "asia", PlatformToRegional("KR"))
	assert.Equal(t, "sea", PlatformToRegional("VN2"))
	// Unknown platforms fall back to europe.
	assert.Equal(t, "europe", PlatformToRegional("XX9"))
}

func TestPlatformFromLCURegion(t *testing.T) {
	assert.Equal(t, "EUW1", PlatformFromLCURegion("EUW"))
	assert.Equal(t, "EUW1", PlatformFromLCURegion("euw"))
	assert.Equal(t, "LA2", PlatformFromLCURegion("LAS"))
	assert.Equal(t, "", PlatformFromLCURegion("ATLANTIS"))
}

func TestAccountByRiotID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "RGAPI-test", r.Header.Get("X-Riot-Token"))
		assert.Equal(t, "/riot/account/v1/accounts/by-riot-id/Hide%20on%20bush/KR1", r.URL.EscapedPath())
		w.Write([]byte(`{"puuid":"abc-123","gameName":"Hide on bush","tagLine":"KR1"}`))
	}))
	defer srv.Close()

	c := NewClient("RGAPI-test")
	c.BaseURL = srv.URL

	acct, err := c.AccountByRiotID("asia", "Hide on bush", "KR1")
	require.NoError(t, err)
	assert.Equal(t, "abc-123", acct.PUUID)
	assert.Equal(t, "Hide on bush", acct.GameName)
}

func TestSummonerByPUUID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lol/summoner/v4/summoners/by-puuid/abc-123", r.URL.Path)
		w.Write([]byte(`{"id":"summ-1","puuid":"abc-123","profileIconId":4568,"summonerLevel":312}`))
	}))
	defer srv.Close()

	c := NewClient("RGAPI-test")
	c.BaseURL = srv.URL

	summ, err := c.SummonerByPUUID("euw1", "abc-123")
	require.NoError(t, err)
	assert.Equal(t, "summ-1", summ.ID)
	assert.Equal(t, 4568, summ.ProfileIconID)
	assert.Equal(t, 312, summ.SummonerLevel)
}

func TestLeagueEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lol/league/v4/entries/by-summoner/summ-1", r.URL.Path)
		w.Write([]byte(`[{"queueType":"RANKED_SOLO_5x5","tier":"GOLD","rank":"II","leaguePoints":54,"wins":40,"losses":35}]`))
	}))
	defer srv.Close()

	c := NewClient("RGAPI-test")
	c.BaseURL = srv.URL

	entries, err := c.LeagueEntries("euw1", "summ-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "GOLD", entries[0].Tier)
	assert.Equal(t, 54, entries[0].LeaguePoints)
}

func TestMatchIDsByPUUID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "420", r.URL.Query().Get("queue"))
		assert.Equal(t, "10", r.URL.Query().Get("count"))
		w.Write([]byte(`["EUW1_1","EUW1_2"]`))
	}))
	defer srv.Close()

	c := NewClient("RGAPI-test")
	c.BaseURL = srv.URL

	ids, err := c.MatchIDsByPUUID("europe", "abc-123", RankedSoloQueueID, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"EUW1_1", "EUW1_2"}, ids)
}

func TestMatchByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"metadata": {"matchId": "EUW1_1"},
			"info": {
				"gameDuration": 1860,
				"participants": [
					{"puuid":"abc-123","championId":157,"win":true,"kills":7,"deaths":2,"assists":9,
					 "totalMinionsKilled":180,"neutralMinionsKilled":24,"visionScore":21}
				]
			}
		}`))
	}))
	defer srv.Close()

	c := NewClient("RGAPI-test")
	c.BaseURL = srv.URL

	match, err := c.MatchByID("europe", "EUW1_1")
	require.NoError(t, err)
	assert.Equal(t, "EUW1_1", match.Metadata.MatchID)
	require.Len(t, match.Info.Participants, 1)
	assert.Equal(t, 157, match.Info.Participants[0].ChampionID)
	assert.True(t, match.Info.Participants[0].Win)
}

func TestAPIErrorIncludesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"status":{"message":"Forbidden","status_code":403}}`))
	}))
	defer srv.Close()

	c := NewClient("RGAPI-revoked")
	c.BaseURL = srv.URL

	_, err := c.SummonerByName("euw1", "someone")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "Forbidden")
}
