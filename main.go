package main

import (
	"net/http"

	"github.com/helixlauncher/helix/cmd"
	"github.com/helixlauncher/helix/internals/ownhttp"
)

// set by goreleaser
var (
	version string
	commit  string
)

func main() {
	// replace default http client
	http.DefaultClient = ownhttp.New()

	if version != "" {
		cmd.Version = version
	}
	cmd.Commit = commit
	cmd.Execute()
}
