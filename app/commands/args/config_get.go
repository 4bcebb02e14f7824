package args

import (
	"fmt"

	"github.com/despectus/despectus/app/cli"
)

// ConfigGetCommand defines the command to get a configuration value.
type ConfigGetCommand struct{}

func init() {
	RegisterCommand(&ConfigGetCommand{})
}

func (c *ConfigGetCommand) Name() string {
	return "config get"
}

func (c *ConfigGetCommand) Description() string {
	return "Gets the value of a specific configuration key."
}

func (c *ConfigGetCommand) Usage() string {
	return "<key> [--path <file>]"
}

func (c *ConfigGetCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "key", Description: "The configuration key to get (e.g., AVG_LP_PER_WIN).", Required: true},
	}
}

func (c *ConfigGetCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{pathFlag()}
}

func (c *ConfigGetCommand) Execute(args cli.CommandArgs) error {
	if len(args.Variables) < 1 {
		return fmt.Errorf("missing required argument: key")
	}
	key := args.Variables[0]

	store, err := storeFromArgs(args)
	if err != nil {
		return err
	}
	value, err := store.Get(key)
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}
