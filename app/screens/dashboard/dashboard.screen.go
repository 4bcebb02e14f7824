package dashboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/despectus/despectus/app"
	sharedScreens "github.com/despectus/despectus/app/screens/shared"
)

// MatchesPerPage is how many recent matches one dashboard page shows.
const MatchesPerPage = 5

// StartRefresh flips the model into its refreshing state and returns the
// commands that run the refresh pass.
func StartRefresh(m app.Model) (app.Model, tea.Cmd) {
	if m.Refreshing || m.DDragonVersion == "" {
		return m, nil
	}
	m.Refreshing = true
	return m, tea.Batch(
		m.Spinner.Tick,
		RefreshCmd(m.Settings, m.DDragonVersion, m.Champs),
	)
}

// ApplyRefreshResult folds a finished refresh pass into the model. Early
// failures only update the status line so stale data stays visible.
func ApplyRefreshResult(m app.Model, msg RefreshResultMsg) app.Model {
	m.Refreshing = false
	m.StatusMessage = msg.Status

	if msg.Platform == "" {
		return m
	}

	m.Platform = msg.Platform
	m.Profile = msg.Profile
	m.Ranked = msg.Ranked
	m.NextRank = msg.NextRank
	m.EstGamesToNext = msg.EstGames
	m.RankEmblem = msg.Emblem
	if msg.RiotID != "" {
		m.LastRiotID = msg.RiotID
	}
	if msg.Matches != nil {
		m.Matches = msg.Matches
		m.Summary = msg.Summary
		if len(m.Matches) > 0 {
			m.MatchPaginator.SetTotalPages(len(m.Matches))
		}
		m.MatchPaginator.Page = 0
	}
	return m
}

// UpdateScreenDashboard handles key events on the dashboard.
func UpdateScreenDashboard(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "r":
		return StartRefresh(m)

	case "s":
		m.CurrentScreen = app.ScreenSettings
		m.SettingsIndex = 0
		return m, nil

	case "K":
		m.CurrentScreen = app.ScreenKeyPrompt
		return m, m.KeyInput.Focus()

	case "left", "h":
		m.MatchPaginator.PrevPage()
		return m, nil

	case "right", "l":
		m.MatchPaginator.NextPage()
		return m, nil
	}
	return m, nil
}

// renderProfile renders the identity block at the top of the left panel.
func renderProfile(m app.Model) string {
	var b strings.Builder
	if m.Profile.DisplayName == "" {
		b.WriteString(app.ChoiceStyle.Render("Waiting for the League Client...") + "\n")
		return b.String()
	}
	b.WriteString(app.SubtitleStyle.Render(m.Profile.DisplayName) + "\n")
	b.WriteString(app.PathStyle.Render(m.Profile.RiotID) + "\n")
	b.WriteString(fmt.Sprintf("Level %d", m.Profile.Level) + "\n")
	return b.String()
}

// renderRanked renders the solo queue standing.
func renderRanked(m app.Model) string {
	var b strings.Builder
	b.WriteString(app.SubtitleStyle.Render("Ranked Solo/Duo") + "\n\n")

	if m.Ranked == nil {
		b.WriteString(app.ChoiceStyle.Render("Unranked") + "\n")
		return b.String()
	}

	r := m.Ranked
	rankLine := fmt.Sprintf("%s %s • %d LP", r.Tier, r.Rank, r.LP)
	b.WriteString(app.TierStyle(r.Tier).Render(rankLine) + "\n")
	b.WriteString(fmt.Sprintf("%dW %dL (%.1f%% over %d games)\n", r.Wins, r.Losses, r.Winrate(), r.Games()))

	if m.NextRank != "" && m.EstGamesToNext > 0 {
		b.WriteString(fmt.Sprintf("Next: %s (~%d wins at %d LP each)\n",
			m.NextRank, m.EstGamesToNext, m.Settings.AvgLPPerWin))
	}
	return b.String()
}

// renderMatches renders the paginated recent-match list.
func renderMatches(m app.Model) string {
	var b strings.Builder
	b.WriteString(app.SubtitleStyle.Render("Recent Ranked Games") + "\n\n")

	if len(m.Matches) == 0 {
		if m.Settings.APIKey == "" {
			b.WriteString(app.ChoiceStyle.Render("Add a Riot API key (press K) to load match history.") + "\n")
		} else {
			b.WriteString(app.ChoiceStyle.Render("No recent ranked games found.") + "\n")
		}
		return b.String()
	}

	start, end := m.MatchPaginator.GetSliceBounds(len(m.Matches))
	for _, row := range m.Matches[start:end] {
		result := app.LossStyle.Render("L")
		if row.Win {
			result = app.WinStyle.Render("W")
		}
		b.WriteString(fmt.Sprintf("%s  %-14s %-8s %3d CS  %2dm  %.1f cs/m\n",
			result, row.ChampionName, row.KDAString(), row.CS, row.DurationMin, row.CSPerMin()))
	}

	if m.MatchPaginator.TotalPages > 1 {
		b.WriteString("\n" + m.MatchPaginator.View() + "\n")
	}
	return b.String()
}

// renderSummary renders the recent-form aggregates.
func renderSummary(m app.Model) string {
	if m.Summary == nil {
		return ""
	}
	s := m.Summary

	var b strings.Builder
	b.WriteString("\n" + app.SubtitleStyle.Render(fmt.Sprintf("Last %d Games", s.Wins+s.Losses)) + "\n\n")
	b.WriteString(fmt.Sprintf("%dW %dL • %.0f%% winrate\n", s.Wins, s.Losses, s.Winrate))
	b.WriteString(fmt.Sprintf("Avg KDA %.2f (best %.2f) • Avg CS %.0f • Avg length %.0fm\n",
		s.AvgKDA, s.BestKDA, s.AvgCS, s.AvgDuration))

	if len(s.TopChamps) > 0 {
		var parts []string
		for _, c := range s.TopChamps {
			parts = append(parts, fmt.Sprintf("%s ×%d", c.Name, c.Count))
		}
		b.WriteString("Most played: " + app.HighlightStyle.Render(strings.Join(parts, ", ")) + "\n")
	}
	return b.String()
}

// ViewScreenDashboard renders the main dashboard layout.
func ViewScreenDashboard(m app.Model) string {
	header := sharedScreens.AccountHeader(m.LastRiotID)
	title := app.TitleStyle.Render("Despectus")

	leftWidth := sharedScreens.ComputeLeftPanelWidth(m.TerminalWidth)
	left := app.PanelStyle.Width(leftWidth).Render(renderProfile(m) + "\n" + renderRanked(m))

	rightWidth := sharedScreens.ComputeRightPanelWidth(m.TerminalWidth, leftWidth, 1)
	if rightWidth < 40 {
		rightWidth = 40
	}
	rightBody := sharedScreens.TruncateLines(renderMatches(m)+renderSummary(m), m.TerminalHeight-6)
	right := app.PanelStyle.Width(rightWidth).Render(rightBody)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	status := m.StatusMessage
	if m.Refreshing {
		status = m.Spinner.View() + " Refreshing..."
	}
	statusLine := app.PathStyle.Render(status)

	if m.Update != nil {
		statusLine += "\n" + app.HighlightStyle.Render(
			fmt.Sprintf("Update available: v%s → %s", m.Update.LatestVersion, m.Update.PageURL))
	}

	footer := sharedScreens.Footer("r refresh", "←/→ pages", "s settings", "K api key", "q quit")
	view := lipgloss.JoinVertical(lipgloss.Left, header, title, panes, statusLine, footer)
	return sharedScreens.Place(m.TerminalWidth, m.TerminalHeight, view)
}
