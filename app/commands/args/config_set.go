package args

import (
	"fmt"

	"github.com/despectus/despectus/app/cli"
)

// ConfigSetCommand defines the command to set a configuration value.
type ConfigSetCommand struct{}

func init() {
	RegisterCommand(&ConfigSetCommand{})
}

func (c *ConfigSetCommand) Name() string {
	return "config set"
}

func (c *ConfigSetCommand) Description() string {
	return "Sets a configuration key to a specific value."
}

func (c *ConfigSetCommand) Usage() string {
	return "<key> <value> [--path <file>]"
}

func (c *ConfigSetCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "key", Description: "The configuration key to set.", Required: true},
		{Name: "value", Description: "The value to assign to the key.", Required: true},
	}
}

func (c *ConfigSetCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{pathFlag()}
}

func (c *ConfigSetCommand) Execute(args cli.CommandArgs) error {
	if len(args.Variables) < 2 {
		return fmt.Errorf("missing required arguments: key and value")
	}
	key := args.Variables[0]
	value := args.Variables[1]

	store, err := storeFromArgs(args)
	if err != nil {
		return err
	}
	if err := store.Set(key, value); err != nil {
		return err
	}
	fmt.Printf("%s updated in %s\n", key, store.Path())
	return nil
}
