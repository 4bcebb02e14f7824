package args

import (
	"fmt"
	"sort"

	"github.com/despectus/despectus/app/cli"
	config "github.com/despectus/despectus/internal"
)

// ArgDef is an alias for cli.ArgDef.
type ArgDef = cli.ArgDef

// FlagDef is an alias for cli.FlagDef.
type FlagDef = cli.FlagDef

// Command represents a CLI command that can be executed directly,
// without entering the interactive dashboard.
type Command interface {
	// Name returns the command's name (e.g., "config get").
	Name() string
	// Description returns a brief help description for the command.
	Description() string
	// Execute runs the command logic with the parsed arguments.
	Execute(args cli.CommandArgs) error
	// Usage returns a brief usage string (e.g., "<key> [options]").
	Usage() string
	// ExpectedArgs returns definitions for expected positional arguments.
	ExpectedArgs() []ArgDef
	// ExpectedFlags returns definitions for expected flags.
	ExpectedFlags() []FlagDef
}

// commandRegistry holds all registered CLI commands, keyed by name.
var commandRegistry = make(map[string]Command)

// RegisterCommand adds a command to the registry. Each command file calls
// this from its init() function.
func RegisterCommand(cmd Command) {
	if _, exists := commandRegistry[cmd.Name()]; exists {
		panic(fmt.Sprintf("Command already registered: %s", cmd.Name()))
	}
	commandRegistry[cmd.Name()] = cmd
}

// GetCommand retrieves a command from the registry by its name.
func GetCommand(name string) (Command, bool) {
	cmd, found := commandRegistry[name]
	return cmd, found
}

// CommandExists checks if a command with the given name is registered.
func CommandExists(name string) bool {
	_, found := commandRegistry[name]
	return found
}

// GetAllCommands returns all registered commands sorted by name,
// for consistent help output.
func GetAllCommands() []Command {
	cmds := make([]Command, 0, len(commandRegistry))
	for _, cmd := range commandRegistry {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// storeFromArgs opens the config store, honoring the --path override
// shared by all config commands.
func storeFromArgs(args cli.CommandArgs) (*config.Store, error) {
	if path, ok := args.Flags["path"]; ok && path != "" {
		return config.NewStore(path), nil
	}
	return config.DefaultStore()
}

// pathFlag is the flag definition shared by all config commands.
func pathFlag() FlagDef {
	return FlagDef{Name: "path", ShortName: "p", Description: "Use a specific config file instead of the default location.", HasValue: true, Required: false}
}
