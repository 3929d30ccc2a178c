package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/helixlauncher/helix/internals/commands"
	"github.com/helixlauncher/helix/internals/globals"
	"github.com/jwalton/gchalk"
	"github.com/spf13/cobra"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "get [key]",
		Short: "Gets a global config value. Prints all values without a key",
		Args:  cobra.MaximumNArgs(1),
	}, &getRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type getRunner struct{}

func (i *getRunner) RunE(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		keys := make([]string, 0, len(entries))
		for key := range entries {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("  %s: %v %s\n", key, globals.Config.Get(key), gchalk.Gray("# "+entries[key].help))
		}
		return nil
	}

	key := strings.ToLower(args[0])
	if _, ok := entries[key]; !ok {
		return unknownKey(key)
	}

	fmt.Println("Printing config entry:")
	fmt.Printf("  %s: %v\n", key, globals.Config.Get(key))

	return nil
}

func unknownKey(key string) error {
	return &commands.CliError{
		Text:        fmt.Sprintf("config key \"%s\" does not exist", key),
		Suggestions: []string{"Run `helix config get` to list all keys"},
	}
}
