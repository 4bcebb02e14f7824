package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/despectus/despectus/app"
	"github.com/despectus/despectus/app/cli"
	commands "github.com/despectus/despectus/app/commands/args"
	"github.com/despectus/despectus/app/ddragon"
	"github.com/despectus/despectus/app/screens/dashboard"
	"github.com/despectus/despectus/app/screens/keyprompt"
	"github.com/despectus/despectus/app/screens/settings"
	config "github.com/despectus/despectus/internal"
)

// Version is set via linker flags during release builds.
var Version = "v0.0.0-dev"

// ProgramModel wraps app.Model so the Update logic lives in one place.
// The store rides along because the key prompt and settings screens
// persist changes immediately.
type ProgramModel struct {
	M     app.Model
	Store *config.Store
}

// commandRegistryCheckerBridge implements cli.CommandRegistryChecker using
// the commands package. This avoids a direct import cycle.
type commandRegistryCheckerBridge struct{}

func (b commandRegistryCheckerBridge) CommandExists(name string) bool {
	return commands.CommandExists(name)
}

// Init kicks off the startup fetches: static Data Dragon data, the release
// check, and the account-swap watcher loop.
func (pm ProgramModel) Init() tea.Cmd {
	return tea.Batch(
		dashboard.FetchStaticDataCmd(ddragon.NewClient()),
		dashboard.CheckUpdateCmd(pm.M.Version),
		dashboard.WatchTickCmd(),
	)
}

// Update handles incoming Msgs (both from commands and user interaction).
func (pm ProgramModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typedMsg := msg.(type) {

	case tea.WindowSizeMsg:
		pm.M.TerminalWidth = typedMsg.Width
		pm.M.TerminalHeight = typedMsg.Height
		return pm, nil

	case dashboard.StaticDataMsg:
		if typedMsg.Err != nil {
			pm.M.StatusMessage = fmt.Sprintf("Could not load Data Dragon data: %v", typedMsg.Err)
			return pm, nil
		}
		pm.M.DDragonVersion = typedMsg.Version
		pm.M.Champs = typedMsg.Champs
		if pm.M.CurrentScreen == app.ScreenKeyPrompt {
			// The first refresh runs once the key is saved.
			return pm, nil
		}
		var cmd tea.Cmd
		pm.M, cmd = dashboard.StartRefresh(pm.M)
		return pm, cmd

	case dashboard.RefreshResultMsg:
		pm.M = dashboard.ApplyRefreshResult(pm.M, typedMsg)
		// Bump the generation so the pending tick (if any) dies and a
		// manual refresh never leaves two chains running.
		pm.M.AutoTickGen++
		return pm, dashboard.AutoRefreshTickCmd(pm.M.Settings.RefreshSeconds, pm.M.AutoTickGen)

	case dashboard.AutoRefreshTickMsg:
		if typedMsg.Gen != pm.M.AutoTickGen {
			return pm, nil
		}
		var cmd tea.Cmd
		pm.M, cmd = dashboard.StartRefresh(pm.M)
		return pm, cmd

	case dashboard.WatchTickMsg:
		return pm, tea.Batch(
			dashboard.CheckAccountSwapCmd(pm.M.LastRiotID),
			dashboard.WatchTickCmd(),
		)

	case dashboard.AccountSwappedMsg:
		pm.M.StatusMessage = "Account changed, refreshing..."
		var cmd tea.Cmd
		pm.M, cmd = dashboard.StartRefresh(pm.M)
		return pm, cmd

	case dashboard.UpdateCheckMsg:
		pm.M.Update = typedMsg.Info
		return pm, nil

	case keyprompt.KeySavedMsg:
		pm.M.Settings = typedMsg.Settings
		var cmd tea.Cmd
		pm.M, cmd = dashboard.StartRefresh(pm.M)
		return pm, cmd

	case spinner.TickMsg:
		if !pm.M.Refreshing {
			return pm, nil
		}
		var cmd tea.Cmd
		pm.M.Spinner, cmd = pm.M.Spinner.Update(typedMsg)
		return pm, cmd

	case tea.KeyMsg:
		switch pm.M.CurrentScreen {
		case app.ScreenKeyPrompt:
			updatedM, cmd := keyprompt.UpdateScreenKeyPrompt(pm.M, typedMsg, pm.Store)
			pm.M = updatedM
			return pm, cmd
		case app.ScreenDashboard:
			updatedM, cmd := dashboard.UpdateScreenDashboard(pm.M, typedMsg)
			pm.M = updatedM
			return pm, cmd
		case app.ScreenSettings:
			updatedM, cmd := settings.UpdateScreenSettings(pm.M, typedMsg, pm.Store)
			pm.M = updatedM
			return pm, cmd
		default:
			return pm, nil
		}
	}

	// For non-key messages or screens we didn't switch on, just return unchanged.
	return pm, nil
}

// View selects which screen's View function to call based on CurrentScreen.
func (pm ProgramModel) View() string {
	switch pm.M.CurrentScreen {
	case app.ScreenKeyPrompt:
		return keyprompt.ViewScreenKeyPrompt(pm.M)
	case app.ScreenDashboard:
		return dashboard.ViewScreenDashboard(pm.M)
	case app.ScreenSettings:
		return settings.ViewScreenSettings(pm.M)
	}
	return ""
}

func main() {
	args := os.Args[1:]

	registryChecker := commandRegistryCheckerBridge{}

	// --- Direct Command Execution Handling ---
	if len(args) > 0 {
		parsedArgs := cli.ParseCommandLineArgs(args, registryChecker)

		if len(parsedArgs.Errors) > 0 {
			fmt.Println("Error parsing arguments:")
			for _, err := range parsedArgs.Errors {
				fmt.Printf("  - %v\n", err)
			}
			os.Exit(1)
		}

		// --version takes precedence over everything else.
		if parsedArgs.VersionRequested {
			fmt.Printf("Despectus %s\n", Version)
			os.Exit(0)
		}

		if parsedArgs.CommandName != "" {
			if parsedArgs.HelpRequested {
				displayCommandHelp(parsedArgs.CommandName)
				os.Exit(0)
			}
			executeAndExit(parsedArgs)
		} else {
			if parsedArgs.HelpRequested {
				displayGeneralHelp()
				os.Exit(0)
			}
			fmt.Println("Error: Invalid arguments or flags provided without a command name.")
			fmt.Println("Run `despectus --help` for usage.")
			os.Exit(1)
		}
	}

	// --- Interactive Mode ---
	store, err := config.DefaultStore()
	if err != nil {
		fmt.Printf("Error locating config directory: %v\n", err)
		os.Exit(1)
	}
	settingsLoaded, loadErr := store.Load()

	// An absent, unreadable, or keyless config file all route through the
	// key prompt; valid settings go straight to the dashboard.
	initialScreen := app.ScreenDashboard
	if loadErr != nil || settingsLoaded.APIKey == "" {
		initialScreen = app.ScreenKeyPrompt
	}

	matchPaginator := paginator.New()
	matchPaginator.Type = paginator.Dots
	matchPaginator.PerPage = dashboard.MatchesPerPage
	matchPaginator.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("#cba6f7")).Render("•")
	matchPaginator.InactiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("•")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#cba6f7"))

	initialModel := app.Model{
		CurrentScreen:  initialScreen,
		Version:        Version,
		Settings:       settingsLoaded,
		ConfigPath:     store.Path(),
		StatusMessage:  "Looking for the League Client...",
		KeyInput:       keyprompt.NewKeyInput(),
		MatchPaginator: matchPaginator,
		Spinner:        sp,
	}

	// Set default terminal dimensions so panels are anchored on first render.
	if initialModel.TerminalHeight == 0 {
		initialModel.TerminalHeight = 24
	}
	if initialModel.TerminalWidth == 0 {
		initialModel.TerminalWidth = 80
	}

	p := tea.NewProgram(
		ProgramModel{M: initialModel, Store: store},
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}

// displayGeneralHelp prints the top-level help message.
func displayGeneralHelp() {
	fmt.Println("Despectus - Help")
	fmt.Println("Usage: despectus [command] [variables...] [--flags...]")
	fmt.Println("Run without arguments to open the interactive dashboard.")

	allCmds := commands.GetAllCommands()
	if len(allCmds) > 0 {
		fmt.Println("\nAvailable Commands:")
		for _, cmd := range allCmds {
			fmt.Printf("  %-15s %s\n", cmd.Name(), cmd.Description())
		}
		fmt.Println("\nRun 'despectus [command] --help' for more information on a specific command.")
	}
	fmt.Println("\nGlobal Flags: --help, -h, --version")
}

// displayCommandHelp displays detailed help for a specific command.
func displayCommandHelp(commandName string) {
	cmd, found := commands.GetCommand(commandName)
	if !found {
		fmt.Printf("Error: Unknown command '%s'\n", commandName)
		displayGeneralHelp()
		return
	}

	fmt.Printf("Usage: despectus %s %s\n\n", cmd.Name(), cmd.Usage())
	fmt.Printf("  %s\n", cmd.Description())

	expectedArgs := cmd.ExpectedArgs()
	if len(expectedArgs) > 0 {
		fmt.Println("\nArguments:")
		for _, arg := range expectedArgs {
			required := ""
			if arg.Required {
				required = " (required)"
			}
			fmt.Printf("  %-15s %s%s\n", arg.Name, arg.Description, required)
		}
	}

	expectedFlags := cmd.ExpectedFlags()
	if len(expectedFlags) > 0 {
		fmt.Println("\nFlags:")
		for _, flag := range expectedFlags {
			flagUsage := "--" + flag.Name
			if flag.ShortName != "" {
				flagUsage += ", -" + flag.ShortName
			}
			if flag.HasValue {
				flagUsage += " <value>"
			}
			required := ""
			if flag.Required {
				required = " (required)"
			}
			fmt.Printf("  %-15s %s%s\n", flagUsage, flag.Description, required)
		}
	}
	fmt.Println("\nGlobal Flags: --help, -h, --version")
}

// executeAndExit runs a direct command and exits with its status.
func executeAndExit(parsedArgs cli.CommandArgs) {
	cmd, found := commands.GetCommand(parsedArgs.CommandName)
	if !found {
		fmt.Printf("Error: Unknown command '%s'\n", parsedArgs.CommandName)
		os.Exit(1)
	}
	if err := cmd.Execute(parsedArgs); err != nil {
		fmt.Printf("Error executing command '%s': %v\n", parsedArgs.CommandName, err)
		os.Exit(1)
	}
	os.Exit(0)
}
