// Package commands contains helpers shared by all cli commands
package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type Command struct {
	*cobra.Command
	runner Runner
}

type Runner interface {
	RunE(cmd *cobra.Command, args []string) error
}

// New wraps cmd so errors returned by run are rendered as error boxes
func New(cmd *cobra.Command, run Runner) *Command {
	build := &Command{
		cmd,
		run,
	}
	build.Command.Run = func(cmd *cobra.Command, args []string) {
		err := run.RunE(cmd, args)
		if err == nil {
			return
		}
		log.Debug().Err(err).Str("command", cmd.Name()).Msg("command failed")
		fmt.Println(Render(err))
		os.Exit(1)
	}

	return build
}

// Render returns the user facing output for err
func Render(err error) string {
	var asCliErr *CliError
	if errors.As(FromError(err), &asCliErr) {
		return asCliErr.RichError() + "\n"
	}
	return ErrorBox(err.Error(), "")
}
