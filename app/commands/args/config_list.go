package args

import (
	"fmt"
	"sort"
	"strings"

	"github.com/despectus/despectus/app/cli"
	config "github.com/despectus/despectus/internal"
)

// ConfigListCommand defines the command to list configuration values.
type ConfigListCommand struct{}

func init() {
	RegisterCommand(&ConfigListCommand{})
}

func (c *ConfigListCommand) Name() string {
	return "config list"
}

func (c *ConfigListCommand) Description() string {
	return "Lists all configuration keys and values."
}

func (c *ConfigListCommand) Usage() string {
	return "[--show-key] [--path <file>]"
}

func (c *ConfigListCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

func (c *ConfigListCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{
		{Name: "show-key", Description: "Print the Riot API key in full instead of masking it.", HasValue: false, Required: false},
		pathFlag(),
	}
}

func (c *ConfigListCommand) Execute(args cli.CommandArgs) error {
	store, err := storeFromArgs(args)
	if err != nil {
		return err
	}
	env, err := store.All()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := env[name]
		if name == config.KeyAPIKey && !args.BoolFlags["show-key"] {
			value = maskKey(value)
		}
		fmt.Printf("%s=%s\n", name, value)
	}
	return nil
}

// maskKey hides all but the leading characters of an API key so config
// listings are safe to paste into bug reports.
func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:8] + strings.Repeat("*", len(key)-8)
}
