package config

// Settings represents user settings stored on disk.
// The API key is the only required field; everything else has a default.
type Settings struct {
	APIKey         string
	AvgLPPerWin    int
	RefreshSeconds int
}

// Defaults applied when a field is absent from the config file.
const (
	DefaultAvgLPPerWin    = 22
	DefaultRefreshSeconds = 300
)

// Config file keys.
const (
	KeyAPIKey         = "RIOT_API_KEY"
	KeyAvgLPPerWin    = "AVG_LP_PER_WIN"
	KeyRefreshSeconds = "REFRESH_SECONDS"
)

// DefaultSettings returns a Settings with every preference at its default
// and no API key.
func DefaultSettings() Settings {
	return Settings{
		AvgLPPerWin:    DefaultAvgLPPerWin,
		RefreshSeconds: DefaultRefreshSeconds,
	}
}
