// Package instances reads and writes instance directories and composes the
// command that launches them.
package instances

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/helixlauncher/helix/internals/fsutil"
	"github.com/helixlauncher/helix/internals/meta"
	"github.com/rs/zerolog/log"
	strcase "github.com/stoewer/go-strcase"
)

// ConfigFileName is the name of the instance config inside an instance directory
const ConfigFileName = "instance.helix.json"

// MinecraftComponent is the component id of the base game
const MinecraftComponent = "net.minecraft"

var (
	// ErrNotAnInstance is returned if a directory has no instance config
	ErrNotAnInstance = errors.New("path is not an instance")
	// ErrInstanceExists is returned if the directory for a new instance is taken
	ErrInstanceExists = errors.New("an instance with this name already exists")
)

// Instance is an instance directory and its config
type Instance struct {
	Path   string
	Config Config
}

// Config is the content of instance.helix.json
type Config struct {
	Name       string              `json:"name"`
	Components []meta.ComponentRef `json:"components"`
	Launch     LaunchConfig        `json:"launch"`
}

// LaunchConfig contains per instance launch overrides. Empty values fall back
// to the launcher defaults.
type LaunchConfig struct {
	Args              []string       `json:"args,omitempty"`
	JVMArgs           []string       `json:"jvm_args,omitempty"`
	PrelaunchCommand  string         `json:"prelaunch_command,omitempty"`
	PostlaunchCommand string         `json:"postlaunch_command,omitempty"`
	Allocation        *RAMAllocation `json:"allocation,omitempty"`
	JavaPath          string         `json:"javapath,omitempty"`
}

// RAMAllocation is the java heap size in MiB
type RAMAllocation struct {
	Min uint32 `json:"min"`
	Max uint32 `json:"max"`
}

// New creates a new instance directory inside instancesDir
func New(instancesDir string, name string, components []meta.ComponentRef, launch LaunchConfig) (*Instance, error) {
	dirName := fsutil.CleanName(strcase.KebabCase(name))
	if dirName == "" {
		return nil, fmt.Errorf("invalid instance name %q", name)
	}
	dir := filepath.Join(instancesDir, dirName)

	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("%s: %w", dir, ErrInstanceExists)
	}

	instance := &Instance{
		Path: dir,
		Config: Config{
			Name:       name,
			Components: components,
			Launch:     launch,
		},
	}

	// creates the instance dir as well
	if err := os.MkdirAll(instance.GameDir(), os.ModePerm); err != nil {
		return nil, err
	}
	if err := instance.Save(); err != nil {
		return nil, err
	}
	return instance, nil
}

// Load reads the instance in dir
func Load(dir string) (*Instance, error) {
	raw, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotAnInstance)
	}
	if err != nil {
		return nil, err
	}

	instance := &Instance{Path: dir}
	if err := json.Unmarshal(raw, &instance.Config); err != nil {
		return nil, fmt.Errorf("reading %s: %w", ConfigFileName, err)
	}
	return instance, nil
}

// List returns all instances in instancesDir. Directories that are not an
// instance are skipped.
func List(instancesDir string) ([]*Instance, error) {
	entries, err := os.ReadDir(instancesDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var instances []*Instance
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		instance, err := Load(filepath.Join(instancesDir, entry.Name()))
		if errors.Is(err, ErrNotAnInstance) {
			log.Debug().Str("dir", entry.Name()).Msg("skipping directory without instance config")
			continue
		}
		if err != nil {
			return nil, err
		}
		instances = append(instances, instance)
	}
	return instances, nil
}

// Save writes the instance config
func (i *Instance) Save() error {
	raw, err := json.MarshalIndent(i.Config, "", "  ")
	if err != nil {
		return err
	}
	return fsutil.WriteFile(filepath.Join(i.Path, ConfigFileName), raw)
}

// GameDir is the .minecraft directory the game runs in
func (i *Instance) GameDir() string {
	return filepath.Join(i.Path, ".minecraft")
}

// NativesDir is where native libraries are extracted to
func (i *Instance) NativesDir() string {
	return filepath.Join(i.Path, "natives")
}

// ComponentVersion returns the version of component id, or "" if the instance does not use it
func (i *Instance) ComponentVersion(id string) string {
	for _, c := range i.Config.Components {
		if c.ID == id {
			return c.Version
		}
	}
	return ""
}
