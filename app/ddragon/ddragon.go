package ddragon

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://ddragon.leagueoflegends.com"
	// Rank emblems come from CommunityDragon; Data Dragon stopped shipping
	// them in a stable location.
	defaultEmblemBase = "https://raw.communitydragon.org/latest/plugins/rcp-fe-lol-static-assets/global/default/images/ranked-emblem"
)

// Champion is one entry of the champion id map.
type Champion struct {
	// ID is the Data Dragon identifier used in asset paths, e.g. "MonkeyKing".
	ID string
	// Name is the display name, e.g. "Wukong".
	Name string
}

// Client fetches static data from Data Dragon.
type Client struct {
	hc *http.Client

	// BaseURL overrides the Data Dragon origin; used by tests.
	BaseURL string
}

// NewClient returns a Data Dragon client.
func NewClient() *Client {
	return &Client{hc: &http.Client{Timeout: 10 * time.Second}}
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultBaseURL
}

// LatestVersion returns the newest patch version.
func (c *Client) LatestVersion() (string, error) {
	resp, err := c.hc.Get(c.baseURL() + "/api/versions.json")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ddragon versions: %s", resp.Status)
	}

	var versions []string
	if err := json.NewDecoder(resp.Body).Decode(&versions); err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("ddragon returned no versions")
	}
	return versions[0], nil
}

// championFile mirrors the champion.json layout: data maps the asset id to
// the champion record, whose numeric key arrives as a string.
type championFile struct {
	Data map[string]struct {
		Key  string `json:"key"`
		Name string `json:"name"`
	} `json:"data"`
}

// ChampionMap returns championKey -> champion for the given patch version.
func (c *Client) ChampionMap(version string) (map[int]Champion, error) {
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/champion.json", c.baseURL(), version)
	resp, err := c.hc.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ddragon champions: %s", resp.Status)
	}

	var file championFile
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return nil, err
	}

	out := make(map[int]Champion, len(file.Data))
	for id, champ := range file.Data {
		key, err := strconv.Atoi(champ.Key)
		if err != nil {
			continue
		}
		out[key] = Champion{ID: id, Name: champ.Name}
	}
	return out, nil
}

// ProfileIconURL builds the URL for a profile icon.
func (c *Client) ProfileIconURL(version string, iconID int) string {
	return fmt.Sprintf("%s/cdn/%s/img/profileicon/%d.png", c.baseURL(), version, iconID)
}

// ChampionIconURL builds the URL for a champion square icon.
func (c *Client) ChampionIconURL(version, championID string) string {
	return fmt.Sprintf("%s/cdn/%s/img/champion/%s.png", c.baseURL(), version, championID)
}

var knownTiers = map[string]bool{
	"IRON": true, "BRONZE": true, "SILVER": true, "GOLD": true,
	"PLATINUM": true, "EMERALD": true, "DIAMOND": true,
	"MASTER": true, "GRANDMASTER": true, "CHALLENGER": true,
}

// RankEmblemURL returns the CommunityDragon emblem for a tier, clamping
// unknown or unranked tiers to Iron so the URL always resolves.
func RankEmblemURL(tier string) string {
	t := strings.ToUpper(strings.TrimSpace(tier))
	if !knownTiers[t] {
		t = "IRON"
	}
	return fmt.Sprintf("%s/emblem-%s.png", defaultEmblemBase, strings.ToLower(t))
}
