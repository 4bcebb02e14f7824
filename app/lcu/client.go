package lcu

import (
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the client's loopback API using the lockfile credentials.
type Client struct {
	auth Auth
	hc   *http.Client

	// BaseURL overrides auth.BaseURL() when set; used by tests.
	BaseURL string
}

// NewClient builds a Client for the given lockfile auth. The client API
// serves a self-signed certificate, so verification is disabled for this
// loopback connection only.
func NewClient(auth Auth) *Client {
	return &Client{
		auth: auth,
		hc: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}
}

// CurrentSummoner is the /lol-summoner/v1/current-summoner payload.
type CurrentSummoner struct {
	DisplayName   string `json:"displayName"`
	SummonerLevel int    `json:"summonerLevel"`
	ProfileIconID int    `json:"profileIconId"`
}

// ChatMe is the /lol-chat/v1/me payload; it carries the Riot ID once the
// player is logged in. Older client builds use tagLine instead of gameTag.
type ChatMe struct {
	GameName string `json:"gameName"`
	GameTag  string `json:"gameTag"`
	TagLine  string `json:"tagLine"`
}

// Tag returns whichever tag field the client populated.
func (m ChatMe) Tag() string {
	if m.GameTag != "" {
		return m.GameTag
	}
	return m.TagLine
}

// RiotID returns the display form gameName#tag, or "" if incomplete.
func (m ChatMe) RiotID() string {
	if m.GameName == "" || m.Tag() == "" {
		return ""
	}
	return m.GameName + "#" + m.Tag()
}

// RegionLocale is the /riotclient/region-locale payload.
type RegionLocale struct {
	Region string `json:"region"`
	Locale string `json:"locale"`
}

// RankedQueue is one queue inside the current-ranked-stats payload.
type RankedQueue struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Division     string `json:"division"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// RankedStats is the /lol-ranked/v1/current-ranked-stats payload. Depending
// on the client build the queues arrive as a list or a map.
type RankedStats struct {
	Queues   []RankedQueue          `json:"queues"`
	QueueMap map[string]RankedQueue `json:"queueMap"`
}

// SoloQueue picks the Ranked Solo/Duo entry out of the payload.
func (s RankedStats) SoloQueue() (RankedQueue, bool) {
	for _, q := range s.Queues {
		if q.QueueType == "RANKED_SOLO_5x5" {
			return q, true
		}
	}
	for _, q := range s.QueueMap {
		if q.QueueType == "RANKED_SOLO_5x5" {
			return q, true
		}
	}
	return RankedQueue{}, false
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return c.auth.BaseURL()
}

// get performs an authenticated GET against the client API.
func (c *Client) get(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL()+path, nil)
	if err != nil {
		return err
	}
	token := base64.StdEncoding.EncodeToString([]byte("riot:" + c.auth.Password))
	req.Header.Set("Authorization", "Basic "+token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("lcu %s for %s: %s", resp.Status, path, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// GetCurrentSummoner fetches the logged-in summoner, if any.
func (c *Client) GetCurrentSummoner() (CurrentSummoner, error) {
	var out CurrentSummoner
	err := c.get("/lol-summoner/v1/current-summoner", &out)
	return out, err
}

// GetRegionLocale fetches the client's region and locale.
func (c *Client) GetRegionLocale() (RegionLocale, error) {
	var out RegionLocale
	err := c.get("/riotclient/region-locale", &out)
	return out, err
}

// GetChatMe fetches the logged-in player's Riot ID info.
func (c *Client) GetChatMe() (ChatMe, error) {
	var out ChatMe
	err := c.get("/lol-chat/v1/me", &out)
	return out, err
}

// GetRankedStats fetches ranked stats for the logged-in player straight from
// the client, including Solo/Duo tier, division, LP and win/loss counts.
func (c *Client) GetRankedStats() (RankedStats, error) {
	var out RankedStats
	err := c.get("/lol-ranked/v1/current-ranked-stats", &out)
	return out, err
}
