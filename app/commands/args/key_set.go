package args

import (
	"fmt"

	"github.com/despectus/despectus/app/cli"
)

// KeySetCommand defines the command to store the Riot API key.
type KeySetCommand struct{}

func init() {
	RegisterCommand(&KeySetCommand{})
}

func (c *KeySetCommand) Name() string {
	return "key set"
}

func (c *KeySetCommand) Description() string {
	return "Validates and stores the Riot API key."
}

func (c *KeySetCommand) Usage() string {
	return "<api-key> [--path <file>]"
}

func (c *KeySetCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "api-key", Description: "The development key from developer.riotgames.com (RGAPI-...).", Required: true},
	}
}

func (c *KeySetCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{pathFlag()}
}

func (c *KeySetCommand) Execute(args cli.CommandArgs) error {
	if len(args.Variables) < 1 {
		return fmt.Errorf("missing required argument: api-key")
	}

	store, err := storeFromArgs(args)
	if err != nil {
		return err
	}
	if _, err := store.SaveAPIKey(args.Variables[0]); err != nil {
		return err
	}
	fmt.Printf("API key saved to %s\n", store.Path())
	return nil
}
