// Package launcher prepares and runs instances with CLI output
package launcher

import (
	"io"
	"os"
	"os/exec"

	"github.com/helixlauncher/helix/internals/components"
	"github.com/helixlauncher/helix/internals/config"
	"github.com/helixlauncher/helix/internals/instances"
	"github.com/mattn/go-isatty"
)

// Launcher can launch helix instances with CLI output
type Launcher struct {
	// Config is the global launcher config
	Config *config.Config

	// Instance is the instance to be launched
	Instance *instances.Instance

	// Options are passed to the launch composer
	Options instances.LaunchOptions

	// Out receives the progress output of Prepare
	Out io.Writer

	// NonInteractive disables spinners. Defaults to true if stdout is not a terminal
	NonInteractive bool

	// Merged is set after calling `Prepare`
	Merged *components.Merged

	// Prepared is the launch command. It is set after calling `Prepare`
	Prepared *instances.PreparedLaunch

	// Cmd is the running game process. It is set during `Run`
	Cmd *exec.Cmd
}

// New returns a Launcher for instance
func New(cfg *config.Config, instance *instances.Instance) *Launcher {
	return &Launcher{
		Config:         cfg,
		Instance:       instance,
		Out:            os.Stdout,
		NonInteractive: !isTerminal(os.Stdout.Fd()),
	}
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
