package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/helixlauncher/helix/internals/commands"
	"github.com/helixlauncher/helix/internals/globals"
	"github.com/jwalton/gchalk"
	"github.com/spf13/cobra"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Sets a global config value",
		Args:  cobra.ExactArgs(2),
	}, &setRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type setRunner struct{}

func (i *setRunner) RunE(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(args[0])
	entry, ok := entries[key]
	if !ok {
		return unknownKey(key)
	}

	newValue, err := parseValue(entry.kind, args[1])
	if err != nil {
		return &commands.CliError{Err: err, Text: fmt.Sprintf("invalid value for %s: %s", key, err)}
	}

	cfg := globals.Config
	previousValue := cfg.Get(key)
	previousStringValue := fmt.Sprintf("%v", previousValue)
	if previousValue == nil {
		previousStringValue = "(unset)"
	}
	cfg.Set(key, newValue)

	fmt.Printf(
		"Changing config entry:\n  %s: %s → %v\n",
		key,
		gchalk.Strikethrough(previousStringValue),
		gchalk.Bold(fmt.Sprintf("%v", newValue)),
	)

	return cfg.Save()
}

func parseValue(kind int, value string) (interface{}, error) {
	switch kind {
	case configKindString, configKindPath:
		if value == "" {
			return nil, fmt.Errorf("value can not be empty")
		}
		return value, nil
	case configKindURL:
		u, err := url.Parse(value)
		if err != nil {
			return nil, err
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, fmt.Errorf("only http and https urls are supported")
		}
		return value, nil
	case configKindFloat:
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, err
		}
		if num < 0 {
			return nil, fmt.Errorf("value can not be negative")
		}
		return num, nil
	default:
		return nil, fmt.Errorf("what? uncovered config values type")
	}
}
