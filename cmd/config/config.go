package config

import (
	"github.com/helixlauncher/helix/internals/config"
	"github.com/spf13/cobra"
)

const (
	configKindString = iota
	configKindPath
	configKindURL
	configKindFloat
)

type configEntry struct {
	kind int
	help string
}

var entries = map[string]configEntry{
	config.KeyInstancesDir:       {configKindPath, "directory containing all instances"},
	config.KeyLibrariesDir:       {configKindPath, "shared library cache"},
	config.KeyAssetsDir:          {configKindPath, "shared asset pool"},
	config.KeyMetaURL:            {configKindURL, "meta server serving component metadata"},
	config.KeyResourcesURL:       {configKindURL, "server serving asset objects"},
	config.KeyDownloadsPerSecond: {configKindFloat, "download rate limit, 0 is unlimited"},
	config.KeyJavaPath:           {configKindString, "java executable used if an instance sets none"},
}

var SubCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global config options",
}
