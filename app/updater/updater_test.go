package updater

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNewer(t *testing.T) {
	assert.True(t, IsNewer("1.2.0", "1.1.9"))
	assert.True(t, IsNewer("v2.0.0", "1.9.9"))
	assert.False(t, IsNewer("1.2.0", "1.2.0"))
	assert.False(t, IsNewer("1.1.0", "1.2.0"))
	assert.False(t, IsNewer("not-a-version", "1.0.0"))
	assert.False(t, IsNewer("1.0.0", "garbage"))
}

func TestPickAsset(t *testing.T) {
	t.Run("prefers setup installer", func(t *testing.T) {
		asset, ok := pickAsset([]releaseAsset{
			{Name: "despectus-linux-amd64", BrowserDownloadURL: "https://example.com/a"},
			{Name: "Despectus-Setup.exe", BrowserDownloadURL: "https://example.com/b"},
		})
		require.True(t, ok)
		assert.Equal(t, "Despectus-Setup.exe", asset.Name)
	})

	t.Run("falls back to first asset", func(t *testing.T) {
		asset, ok := pickAsset([]releaseAsset{
			{Name: "despectus-linux-amd64", BrowserDownloadURL: "https://example.com/a"},
			{Name: "despectus-darwin-arm64", BrowserDownloadURL: "https://example.com/b"},
		})
		require.True(t, ok)
		assert.Equal(t, "despectus-linux-amd64", asset.Name)
	})

	t.Run("no usable assets", func(t *testing.T) {
		_, ok := pickAsset(nil)
		assert.False(t, ok)
		_, ok = pickAsset([]releaseAsset{{Name: "broken"}})
		assert.False(t, ok)
	})
}

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/despectus/despectus/releases/latest", r.URL.Path)
		w.Write([]byte(`{
			"tag_name": "v1.2.0",
			"html_url": "https://github.com/despectus/despectus/releases/tag/v1.2.0",
			"assets": [
				{"name": "Despectus-Setup.exe", "browser_download_url": "https://example.com/setup.exe"}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient("despectus", "despectus")
	c.APIBase = srv.URL

	t.Run("newer release found", func(t *testing.T) {
		info, ok, err := c.Check("v1.1.0")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "1.2.0", info.LatestVersion)
		assert.Equal(t, "Despectus-Setup.exe", info.AssetName)
		assert.Contains(t, info.PageURL, "/releases/tag/v1.2.0")
	})

	t.Run("already up to date", func(t *testing.T) {
		_, ok, err := c.Check("v1.2.0")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
