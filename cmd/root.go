package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/helixlauncher/helix/cmd/config"
	helixconfig "github.com/helixlauncher/helix/internals/config"
	"github.com/helixlauncher/helix/internals/credentials"
	"github.com/helixlauncher/helix/internals/globals"
	"github.com/helixlauncher/helix/internals/ownhttp"
	"github.com/jwalton/gchalk"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version is set by main
	Version = "dev"
	// Commit is set by main
	Commit string
)

var (
	basePath      string
	verbose       bool
	disableColors bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "helix",
	Short: "Helix launches Minecraft instances.",
	Long:  "Merge components, download libraries and assets and launch Minecraft",

	Example: `
  helix instances create "My World" --minecraft 1.20.1
  helix launch my-world
  helix launch my-world --dry-run --output yaml`,
	SilenceUsage: true,
}

var completionCmd = &cobra.Command{
	Use:   "completion",
	Args:  cobra.MaximumNArgs(1),
	Short: "Output shell completion code for bash",
	Long: `To load completion run

. <(helix completion)

You can add that line to your ~/.bashrc or ~/.profile to
persist completion in your shell.
`,
	Run: func(cmd *cobra.Command, args []string) {
		rootCmd.GenBashCompletion(os.Stdout)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = Version
	if Commit != "" {
		rootCmd.Version += " (" + Commit + ")"
	}
	ownhttp.Version = Version

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogging, initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&basePath, "home", "", "data directory (default is $HELIX_HOME or the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs")
	rootCmd.PersistentFlags().BoolVarP(&disableColors, "no-color", "", false, "disable color output")

	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(config.SubCmd)
}

func initLogging() {
	if disableColors || os.Getenv("CI") != "" {
		gchalk.SetLevel(gchalk.LevelNone)
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    disableColors,
	})
}

// initConfig reads the config and account store from the data directory
func initConfig() {
	if basePath == "" {
		var err error
		if basePath, err = helixconfig.DefaultBasePath(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	cfg, err := helixconfig.Load(basePath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	log.Debug().Str("file", filepath.Join(basePath, helixconfig.FileName)).Msg("using config file")

	accounts, err := credentials.Load(filepath.Join(basePath, credentials.FileName))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	globals.Config = cfg
	globals.Accounts = accounts
}
