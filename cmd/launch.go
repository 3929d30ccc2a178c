package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/helixlauncher/helix/internals/commands"
	"github.com/helixlauncher/helix/internals/globals"
	"github.com/helixlauncher/helix/internals/instances"
	"github.com/helixlauncher/helix/internals/launcher"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	runner := &launchRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "launch <instance>",
		Short: "Launch a minecraft instance",
		Long: `
Merges the components of the instance, downloads missing libraries and assets
and starts Minecraft. <instance> is the instance directory name or a path to it.
	`,
		Aliases: []string{"run", "start", "play"},
		Args:    cobra.ExactArgs(1),
	}, runner)

	cmd.Flags().StringVarP(&runner.world, "world", "w", "", "Start directly into this world")
	cmd.Flags().StringVarP(&runner.account, "account", "a", "", "Account (username or uuid) to launch with. Defaults to the selected account")
	cmd.Flags().BoolVar(&runner.demo, "demo", false, "Launch without an account in demo mode")
	cmd.Flags().BoolVar(&runner.dryRun, "dry-run", false, "Only prepare the launch and print the command")
	cmd.Flags().StringVarP(&runner.output, "output", "o", "yaml", "Output format of --dry-run (yaml or json)")
	cmd.Flags().BoolVar(&runner.nonInteractive, "non-interactive", false, "Do not show spinners")

	runner.overwrites = launcher.CmdOverwriteFlags(cmd.Command)

	rootCmd.AddCommand(cmd.Command)
}

type launchRunner struct {
	world          string
	account        string
	demo           bool
	dryRun         bool
	output         string
	nonInteractive bool

	overwrites *launcher.OverwriteFlags
}

func (l *launchRunner) RunE(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	instance, err := loadInstance(args[0])
	if err != nil {
		return err
	}
	launcher.ApplyOverwrites(instance, l.overwrites)

	opts := instances.LaunchOptions{}.WithWorld(l.world)
	if !l.demo {
		account := globals.Accounts.Selected()
		if l.account != "" {
			if account, err = globals.Accounts.Get(l.account); err != nil {
				return err
			}
		}
		opts = opts.WithAccount(account)
	}

	cli := launcher.New(globals.Config, instance)
	cli.Options = opts
	cli.NonInteractive = cli.NonInteractive || l.nonInteractive || l.dryRun
	if l.dryRun {
		// keep stdout clean for the printed command
		cli.Out = os.Stderr
	}

	prepared, err := cli.Prepare(ctx)
	if err != nil {
		return err
	}

	if l.dryRun {
		return writePrepared(os.Stdout, prepared, l.output)
	}

	// the game handles ctrl-c itself
	cancel()
	return cli.Run(context.Background())
}

// loadInstance loads an instance by its directory name or path
func loadInstance(nameOrPath string) (*instances.Instance, error) {
	if filepath.IsAbs(nameOrPath) || nameOrPath == "." || nameOrPath == ".." {
		return instances.Load(nameOrPath)
	}
	instance, err := instances.Load(filepath.Join(globals.Config.InstancesDir(), nameOrPath))
	if err == nil {
		return instance, nil
	}
	// maybe a relative path
	if local, localErr := instances.Load(nameOrPath); localErr == nil {
		return local, nil
	}
	return nil, err
}

func writePrepared(w io.Writer, prepared *instances.PreparedLaunch, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(prepared)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(prepared); err != nil {
			return err
		}
		return enc.Close()
	default:
		return &commands.CliError{
			Text:        fmt.Sprintf("unknown output format %q", format),
			Suggestions: []string{"Use --output yaml or --output json"},
		}
	}
}
