package app

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/despectus/despectus/app/ddragon"
	"github.com/despectus/despectus/app/stats"
	"github.com/despectus/despectus/app/updater"
	config "github.com/despectus/despectus/internal"
)

// Screen indicates which screen is currently shown.
type Screen int

const (
	ScreenKeyPrompt Screen = iota
	ScreenDashboard
	ScreenSettings
)

// Profile is the logged-in player's identity as shown in the header.
type Profile struct {
	DisplayName string
	RiotID      string
	Level       int
	IconURL     string
}

// Model is the primary application state shared by all screens.
type Model struct {
	CurrentScreen  Screen
	Version        string
	TerminalWidth  int
	TerminalHeight int

	Settings   config.Settings
	ConfigPath string

	// StatusMessage is the one-line connection/progress report at the
	// bottom of the dashboard.
	StatusMessage string
	Refreshing    bool

	// AutoTickGen identifies the live auto-refresh tick chain; ticks from
	// superseded chains are dropped on arrival.
	AutoTickGen int

	// Static data fetched once at startup.
	DDragonVersion string
	Champs         map[int]ddragon.Champion

	// Current refresh results.
	Platform       string
	Profile        Profile
	Ranked         *stats.RankedSnapshot
	NextRank       string
	EstGamesToNext int
	RankEmblem     string
	Matches        []stats.MatchRow
	Summary        *stats.Summary
	LastRiotID     string

	// Key prompt state.
	KeyInput       textinput.Model
	KeyPromptError string

	// Settings screen state.
	SettingsIndex int

	MatchPaginator paginator.Model
	Spinner        spinner.Model

	Update *updater.UpdateInfo
}

var theme = catppuccin.Mocha

// Shared styles used across screens.
var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Text().Hex)).MarginTop(1)
	SubtitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Subtext1().Hex))
	HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Peach().Hex))
	ChoiceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Overlay2().Hex))
	HelpStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(theme.Overlay0().Hex))
	PathStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Overlay1().Hex))
	ErrorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Red().Hex))
	WinStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Green().Hex))
	LossStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Red().Hex))
	PanelStyle     = lipgloss.NewStyle().Padding(1, 2).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(theme.Surface2().Hex))
)

// tierColors maps ranked tiers onto the palette.
var tierColors = map[string]string{
	"IRON":        theme.Overlay0().Hex,
	"BRONZE":      theme.Maroon().Hex,
	"SILVER":      theme.Subtext0().Hex,
	"GOLD":        theme.Yellow().Hex,
	"PLATINUM":    theme.Teal().Hex,
	"EMERALD":     theme.Green().Hex,
	"DIAMOND":     theme.Sapphire().Hex,
	"MASTER":      theme.Mauve().Hex,
	"GRANDMASTER": theme.Red().Hex,
	"CHALLENGER":  theme.Sky().Hex,
}

// TierStyle returns a bold style in the tier's color, defaulting to the
// muted choice color for unranked or unknown tiers.
func TierStyle(tier string) lipgloss.Style {
	if hex, ok := tierColors[tier]; ok {
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hex))
	}
	return ChoiceStyle
}
