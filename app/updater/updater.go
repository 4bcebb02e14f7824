package updater

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

const defaultAPIBase = "https://api.github.com"

// UpdateInfo describes a newer release found on GitHub.
type UpdateInfo struct {
	LatestVersion string // e.g. "1.2.0"
	AssetName     string // e.g. "Despectus-Setup.exe"
	AssetURL      string // browser download URL
	PageURL       string // release page
}

// Client checks GitHub releases for a newer version.
type Client struct {
	owner string
	repo  string
	hc    *http.Client

	// APIBase overrides the GitHub API origin; used by tests.
	APIBase string
}

// NewClient returns an update checker for owner/repo.
func NewClient(owner, repo string) *Client {
	return &Client{
		owner: owner,
		repo:  repo,
		hc:    &http.Client{Timeout: 10 * time.Second},
	}
}

type releaseAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

type release struct {
	TagName string         `json:"tag_name"`
	HTMLURL string         `json:"html_url"`
	Assets  []releaseAsset `json:"assets"`
}

// IsNewer reports whether latest is a strictly newer semver than current.
// Tags may carry a leading "v"; unparseable versions are never newer.
func IsNewer(latest, current string) bool {
	lv, err := semver.NewVersion(strings.TrimSpace(latest))
	if err != nil {
		return false
	}
	cv, err := semver.NewVersion(strings.TrimSpace(current))
	if err != nil {
		return false
	}
	return lv.GreaterThan(cv)
}

func (c *Client) apiBase() string {
	if c.APIBase != "" {
		return c.APIBase
	}
	return defaultAPIBase
}

// fetchLatestRelease gets the latest release metadata from GitHub.
func (c *Client) fetchLatestRelease() (release, error) {
	var rel release
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.apiBase(), c.owner, c.repo)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return rel, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "Despectus-Updater")

	resp, err := c.hc.Do(req)
	if err != nil {
		return rel, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return rel, fmt.Errorf("github releases: %s", resp.Status)
	}

	err = json.NewDecoder(resp.Body).Decode(&rel)
	return rel, err
}

// pickAsset chooses the release asset to offer: an installer named *Setup*
// when present, otherwise the first asset.
func pickAsset(assets []releaseAsset) (releaseAsset, bool) {
	var candidates []releaseAsset
	for _, a := range assets {
		if a.Name != "" && a.BrowserDownloadURL != "" {
			candidates = append(candidates, a)
		}
	}
	if len(candidates) == 0 {
		return releaseAsset{}, false
	}
	for _, a := range candidates {
		if strings.Contains(strings.ToLower(a.Name), "setup") {
			return a, true
		}
	}
	return candidates[0], true
}

// Check returns update info when a release newer than current exists.
// The boolean is false when already up to date.
func (c *Client) Check(current string) (*UpdateInfo, bool, error) {
	rel, err := c.fetchLatestRelease()
	if err != nil {
		return nil, false, err
	}

	latest := strings.TrimPrefix(strings.TrimSpace(rel.TagName), "v")
	if latest == "" || !IsNewer(latest, strings.TrimPrefix(current, "v")) {
		return nil, false, nil
	}

	info := &UpdateInfo{LatestVersion: latest, PageURL: rel.HTMLURL}
	if asset, ok := pickAsset(rel.Assets); ok {
		info.AssetName = asset.Name
		info.AssetURL = asset.BrowserDownloadURL
	}
	return info, true, nil
}
