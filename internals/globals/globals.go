// Package globals holds state shared by all cli commands. It is set up by
// the root command before any subcommand runs.
package globals

import (
	"github.com/helixlauncher/helix/internals/config"
	"github.com/helixlauncher/helix/internals/credentials"
)

var (
	// Config is the loaded launcher config
	Config *config.Config
	// Accounts is the loaded account store
	Accounts *credentials.Store
)
