// Package config holds the launcher wide settings, stored as config.helix.json
// in the data directory.
package config

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/helixlauncher/helix/internals/cache"
	"github.com/helixlauncher/helix/internals/meta"
	"github.com/helixlauncher/helix/internals/minecraft"
	"github.com/helixlauncher/helix/internals/ownhttp"
	"github.com/helixlauncher/helix/internals/pack"
	"github.com/spf13/viper"
)

// FileName is the name of the config file inside the data directory
const FileName = "config.helix.json"

const (
	KeyInstancesDir       = "instances_dir"
	KeyLibrariesDir       = "libraries_dir"
	KeyAssetsDir          = "assets_dir"
	KeyMetaURL            = "meta_url"
	KeyResourcesURL       = "resources_url"
	KeyDownloadsPerSecond = "downloads_per_second"
	KeyJavaPath           = "java_path"
)

// Config is the launcher configuration. Relative directories are resolved
// against the base path.
type Config struct {
	v        *viper.Viper
	basePath string

	clientOnce sync.Once
	client     *http.Client
}

// New returns a config with default values rooted at basePath. Nothing is read from disk.
func New(basePath string) *Config {
	v := viper.New()
	v.SetDefault(KeyInstancesDir, "instances")
	v.SetDefault(KeyLibrariesDir, "libraries")
	v.SetDefault(KeyAssetsDir, "assets")
	v.SetDefault(KeyMetaURL, meta.DefaultMetaURL)
	v.SetDefault(KeyResourcesURL, minecraft.DefaultResourcesURL)
	v.SetDefault(KeyDownloadsPerSecond, 0)
	v.SetDefault(KeyJavaPath, "java")

	v.SetEnvPrefix("helix")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(filepath.Join(basePath, FileName))
	v.SetConfigType("json")

	return &Config{v: v, basePath: basePath}
}

// Load reads the config in basePath. A missing config file is created with
// the default values.
func Load(basePath string) (*Config, error) {
	c := New(basePath)
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, err
	}

	if _, err := os.Stat(c.v.ConfigFileUsed()); os.IsNotExist(err) {
		return c, c.Save()
	}
	if err := c.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.v.ConfigFileUsed(), err)
	}
	return c, nil
}

// DefaultBasePath returns the data directory of the launcher
func DefaultBasePath() (string, error) {
	if env := os.Getenv("HELIX_HOME"); env != "" {
		return env, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir, err = os.Getwd()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, "helix"), nil
}

// Save writes the config file
func (c *Config) Save() error {
	return c.v.WriteConfigAs(c.v.ConfigFileUsed())
}

// Get returns the raw value for key
func (c *Config) Get(key string) interface{} {
	return c.v.Get(key)
}

// Set overrides key. Call Save to persist it.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// BasePath is the data directory
func (c *Config) BasePath() string {
	return c.basePath
}

func (c *Config) path(key string) string {
	p := c.v.GetString(key)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.basePath, p)
}

// InstancesDir contains one directory per instance
func (c *Config) InstancesDir() string { return c.path(KeyInstancesDir) }

// LibrariesDir is the shared artifact cache
func (c *Config) LibrariesDir() string { return c.path(KeyLibrariesDir) }

// AssetsDir is the shared asset pool
func (c *Config) AssetsDir() string { return c.path(KeyAssetsDir) }

// MetaDir caches component metadata
func (c *Config) MetaDir() string { return filepath.Join(c.basePath, "meta") }

func (c *Config) MetaURL() string      { return c.v.GetString(KeyMetaURL) }
func (c *Config) ResourcesURL() string { return c.v.GetString(KeyResourcesURL) }

// JavaPath is used for instances that do not set their own
func (c *Config) JavaPath() string { return c.v.GetString(KeyJavaPath) }

// DownloadsPerSecond limits outgoing requests, 0 means unlimited
func (c *Config) DownloadsPerSecond() float64 { return c.v.GetFloat64(KeyDownloadsPerSecond) }

// HTTPClient returns the client shared by everything created from this config
func (c *Config) HTTPClient() *http.Client {
	c.clientOnce.Do(func() {
		if c.client == nil {
			c.client = ownhttp.NewThrottled(c.DownloadsPerSecond())
		}
	})
	return c.client
}

// SetHTTPClient replaces the http client. Must be called before HTTPClient.
func (c *Config) SetHTTPClient(client *http.Client) {
	c.client = client
}

// MetaStore returns a metadata store using the configured catalog
func (c *Config) MetaStore() *meta.Store {
	return meta.NewStore(c.HTTPClient(), c.MetaURL(), c.MetaDir())
}

// ArtifactCache returns the cache for the libraries directory
func (c *Config) ArtifactCache() *cache.Cache {
	return cache.New(c.LibrariesDir(), c.HTTPClient())
}

// Assembler returns an assembler using the shared asset pool
func (c *Config) Assembler() *pack.Assembler {
	return &pack.Assembler{
		Client:       c.HTTPClient(),
		AssetsDir:    c.AssetsDir(),
		ResourcesURL: c.ResourcesURL(),
	}
}
