package keyprompt

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/despectus/despectus/app"
	sharedScreens "github.com/despectus/despectus/app/screens/shared"
	config "github.com/despectus/despectus/internal"
)

// KeySavedMsg is emitted once a valid API key has been persisted, so the
// root model can kick off the first refresh.
type KeySavedMsg struct {
	Settings config.Settings
}

// NewKeyInput builds the masked text input used by this screen.
func NewKeyInput() textinput.Model {
	t := textinput.New()
	t.Placeholder = "RGAPI-..."
	t.CharLimit = 64
	t.Width = 48
	t.EchoMode = textinput.EchoPassword
	t.EchoCharacter = '•'
	t.Focus()
	return t
}

// UpdateScreenKeyPrompt handles key events for the API key prompt.
func UpdateScreenKeyPrompt(m app.Model, msg tea.KeyMsg, store *config.Store) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		// Back out only if a key already exists; first run stays here.
		if m.Settings.APIKey != "" {
			m.CurrentScreen = app.ScreenDashboard
			m.KeyPromptError = ""
			m.KeyInput.Reset()
		}
		return m, nil

	case "ctrl+v":
		if pasted, err := clipboard.ReadAll(); err == nil {
			m.KeyInput.SetValue(strings.TrimSpace(pasted))
		}
		return m, nil

	case "enter":
		settings, err := store.SaveAPIKey(m.KeyInput.Value())
		if err != nil {
			if errors.Is(err, config.ErrInvalidKey) {
				m.KeyPromptError = "That doesn't look like a Riot API key. Paste the RGAPI-… value from the developer portal."
			} else {
				m.KeyPromptError = "Could not save the key: " + err.Error()
			}
			return m, nil
		}
		m.Settings = settings
		m.KeyPromptError = ""
		m.KeyInput.Reset()
		m.CurrentScreen = app.ScreenDashboard
		return m, func() tea.Msg { return KeySavedMsg{Settings: settings} }
	}

	var cmd tea.Cmd
	m.KeyInput, cmd = m.KeyInput.Update(msg)
	return m, cmd
}

// ViewScreenKeyPrompt renders the blocking first-run prompt.
func ViewScreenKeyPrompt(m app.Model) string {
	title := app.TitleStyle.Render("Riot API Key Required")

	body := "\nDespectus needs a personal Riot API key to fetch your match history.\n" +
		"Grab one at " + app.PathStyle.Render("https://developer.riotgames.com") + "\n\n" +
		"The key is stored in " + app.PathStyle.Render(m.ConfigPath) + "\n\n" +
		m.KeyInput.View() + "\n"

	if m.KeyPromptError != "" {
		body += "\n" + app.ErrorStyle.Render(m.KeyPromptError) + "\n"
	}

	footer := sharedScreens.Footer("Enter save", "ctrl+v paste", "ctrl+c quit")
	if m.Settings.APIKey != "" {
		footer = sharedScreens.Footer("Enter save", "ctrl+v paste", "Esc back", "ctrl+c quit")
	}

	panel := lipgloss.NewStyle().Padding(1, 2).Margin(1).Render(title + "\n" + body + "\n" + footer)
	return sharedScreens.Place(m.TerminalWidth, m.TerminalHeight, panel)
}
