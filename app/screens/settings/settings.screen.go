package settings

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/despectus/despectus/app"
	sharedScreens "github.com/despectus/despectus/app/screens/shared"
	"github.com/despectus/despectus/app/stats"
	config "github.com/despectus/despectus/internal"
)

// Options: Avg LP per Win, Refresh interval, Update API key, Back
const numOptions = 4

// adjustAvgLP changes the Avg LP per Win preference and persists it.
func adjustAvgLP(m app.Model, store *config.Store, delta int) app.Model {
	next := m.Settings.AvgLPPerWin + delta
	if next < 1 || next > 100 {
		return m
	}
	if err := store.Set(config.KeyAvgLPPerWin, strconv.Itoa(next)); err != nil {
		m.StatusMessage = "Could not save setting: " + err.Error()
		return m
	}
	m.Settings.AvgLPPerWin = next
	// Re-derive the climb estimate without hitting the network.
	if m.Ranked != nil {
		m.EstGamesToNext = stats.GamesToNextDivision(next)
	}
	return m
}

// adjustRefresh changes the auto-refresh interval and persists it.
func adjustRefresh(m app.Model, store *config.Store, delta int) app.Model {
	next := m.Settings.RefreshSeconds + delta
	if next < 30 || next > 3600 {
		return m
	}
	if err := store.Set(config.KeyRefreshSeconds, strconv.Itoa(next)); err != nil {
		m.StatusMessage = "Could not save setting: " + err.Error()
		return m
	}
	m.Settings.RefreshSeconds = next
	return m
}

// UpdateScreenSettings handles input on the Settings screen.
func UpdateScreenSettings(m app.Model, msg tea.KeyMsg, store *config.Store) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		m.SettingsIndex = (m.SettingsIndex + numOptions - 1) % numOptions

	case "down", "j":
		m.SettingsIndex = (m.SettingsIndex + 1) % numOptions

	case "left", "h":
		switch m.SettingsIndex {
		case 0:
			m = adjustAvgLP(m, store, -1)
		case 1:
			m = adjustRefresh(m, store, -30)
		}

	case "right", "l":
		switch m.SettingsIndex {
		case 0:
			m = adjustAvgLP(m, store, +1)
		case 1:
			m = adjustRefresh(m, store, +30)
		}

	case "enter":
		switch m.SettingsIndex {
		case 2: // Update API key
			m.CurrentScreen = app.ScreenKeyPrompt
			m.SettingsIndex = 0
			return m, m.KeyInput.Focus()
		case 3: // Back
			m.CurrentScreen = app.ScreenDashboard
			m.SettingsIndex = 0
			return m, nil
		}

	case "esc", "b":
		m.CurrentScreen = app.ScreenDashboard
		m.SettingsIndex = 0
		return m, nil
	}

	return m, nil
}

// ViewScreenSettings renders the interactive settings screen.
func ViewScreenSettings(m app.Model) string {
	leftHeader := app.TitleStyle.Render("Settings")

	navItems := []string{
		fmt.Sprintf("Avg LP per Win: %d", m.Settings.AvgLPPerWin),
		fmt.Sprintf("Auto refresh: %ds", m.Settings.RefreshSeconds),
		"Update API Key",
		"Back",
	}

	var leftBuilder strings.Builder
	for i, item := range navItems {
		if i == m.SettingsIndex {
			leftBuilder.WriteString(app.HighlightStyle.Render("> "+item) + "\n")
		} else {
			leftBuilder.WriteString(app.ChoiceStyle.Render("  "+item) + "\n")
		}
	}

	leftPanelWidth := sharedScreens.ComputeLeftPanelWidth(m.TerminalWidth)
	leftPanel := app.PanelStyle.Width(leftPanelWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, leftHeader, leftBuilder.String()))

	var preview string
	switch m.SettingsIndex {
	case 0:
		preview = "How many LP a win earns you on average.\n\n" +
			fmt.Sprintf("At %d LP per win a division takes about %d wins.",
				m.Settings.AvgLPPerWin, stats.GamesToNextDivision(m.Settings.AvgLPPerWin))
	case 1:
		preview = "How often the dashboard refreshes on its own.\n\n" +
			"Short intervals burn through the personal API rate limit faster."
	case 2:
		preview = "Replace the stored Riot API key.\n\n" +
			"Stored in " + app.PathStyle.Render(m.ConfigPath)
	case 3:
		preview = "Return to the dashboard."
	}
	rightPanel := app.PanelStyle.Render(sharedScreens.WrapText(preview, 48))

	panes := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, " ", rightPanel)
	footer := sharedScreens.Footer("↑/↓ select", "←/→ adjust", "Enter choose", "Esc back")
	view := lipgloss.JoinVertical(lipgloss.Left, panes, footer)
	return sharedScreens.Place(m.TerminalWidth, m.TerminalHeight, view)
}
