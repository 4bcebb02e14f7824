package riot

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client calls the Riot Games API with a personal API key.
type Client struct {
	apiKey string
	hc     *http.Client

	// BaseURL overrides the https://<route>.api.riotgames.com host when set.
	// Used by tests; empty in production.
	BaseURL string
}

// NewClient returns a Client using the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		hc:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Account is the account-v1 response for a Riot ID lookup.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner is the summoner-v4 response.
type Summoner struct {
	ID            string `json:"id"`
	PUUID         string `json:"puuid"`
	Name          string `json:"name"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
}

// LeagueEntry is one queue's entry from league-v4.
type LeagueEntry struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// Match is the match-v5 payload, trimmed to the fields the dashboard uses.
type Match struct {
	Metadata struct {
		MatchID string `json:"matchId"`
	} `json:"metadata"`
	Info struct {
		GameDuration int64         `json:"gameDuration"`
		Participants []Participant `json:"participants"`
	} `json:"info"`
}

// Participant is one player's line in a match.
type Participant struct {
	PUUID                string `json:"puuid"`
	ChampionID           int    `json:"championId"`
	Win                  bool   `json:"win"`
	Kills                int    `json:"kills"`
	Deaths               int    `json:"deaths"`
	Assists              int    `json:"assists"`
	TotalMinionsKilled   int    `json:"totalMinionsKilled"`
	NeutralMinionsKilled int    `json:"neutralMinionsKilled"`
	VisionScore          int    `json:"visionScore"`
}

// APIError carries the status and error body Riot returned.
type APIError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("riot api %d for %s: %s", e.StatusCode, e.URL, e.Body)
}

// routeURL builds the host for a platform or regional route.
func (c *Client) routeURL(route string) string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return fmt.Sprintf("https://%s.api.riotgames.com", strings.ToLower(route))
}

// get performs an authenticated GET and decodes the JSON response into out.
func (c *Client) get(rawURL string, out any) error {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Include Riot's error JSON in the returned error when present.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, URL: rawURL, Body: strings.TrimSpace(string(body))}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// AccountByRiotID resolves a gameName#tagLine pair to an account on the
// given regional cluster.
func (c *Client) AccountByRiotID(regional, gameName, tagLine string) (Account, error) {
	var out Account
	u := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.routeURL(regional), url.PathEscape(gameName), url.PathEscape(tagLine))
	err := c.get(u, &out)
	return out, err
}

// SummonerByPUUID fetches the summoner on a platform by PUUID.
func (c *Client) SummonerByPUUID(platform, puuid string) (Summoner, error) {
	var out Summoner
	u := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s", c.routeURL(platform), puuid)
	err := c.get(u, &out)
	return out, err
}

// SummonerByName fetches the summoner on a platform by display name.
func (c *Client) SummonerByName(platform, name string) (Summoner, error) {
	var out Summoner
	u := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-name/%s", c.routeURL(platform), url.PathEscape(name))
	err := c.get(u, &out)
	return out, err
}

// LeagueEntries fetches all ranked queue entries for a summoner.
func (c *Client) LeagueEntries(platform, summonerID string) ([]LeagueEntry, error) {
	var out []LeagueEntry
	u := fmt.Sprintf("%s/lol/league/v4/entries/by-summoner/%s", c.routeURL(platform), summonerID)
	err := c.get(u, &out)
	return out, err
}

// RankedSoloQueueID is the Riot queue id for Ranked Solo/Duo.
const RankedSoloQueueID = 420

// MatchIDsByPUUID lists recent match ids for a player, filtered by queue.
func (c *Client) MatchIDsByPUUID(regional, puuid string, queue, count int) ([]string, error) {
	var out []string
	u := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?queue=%d&count=%d",
		c.routeURL(regional), puuid, queue, count)
	err := c.get(u, &out)
	return out, err
}

// MatchByID fetches a full match by id.
func (c *Client) MatchByID(regional, matchID string) (Match, error) {
	var out Match
	u := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.routeURL(regional), matchID)
	err := c.get(u, &out)
	return out, err
}
