package meta

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Platform restricts an entry to certain operating systems and architectures.
// Empty fields match everything.
type Platform struct {
	Arch string   `json:"arch,omitempty"`
	OS   []string `json:"os,omitempty"`
}

// AppliesFor reports whether the platform filter matches the given os and arch.
// Names are in metadata form (osx, x86_64, …), see minecraft.CurrentOS.
func (p Platform) AppliesFor(os string, arch string) bool {
	if p.Arch != "" && p.Arch != arch {
		return false
	}
	if len(p.OS) == 0 {
		return true
	}
	for _, name := range p.OS {
		if name == os {
			return true
		}
	}
	return false
}

// Trait is a capability flag a component set may support
type Trait string

const (
	TraitSupportsQuickPlayWorld   Trait = "SupportsQuickPlayWorld"
	TraitSupportsQuickPlayServer  Trait = "SupportsQuickPlayServer"
	TraitSupportsCustomResolution Trait = "SupportsCustomResolution"
	TraitMacStartOnFirstThread    Trait = "MacStartOnFirstThread"
)

// Feature gates a conditional game argument
type Feature string

const (
	FeatureDemo             Feature = "Demo"
	FeatureQuickPlayWorld   Feature = "QuickPlayWorld"
	FeatureQuickPlayServer  Feature = "QuickPlayServer"
	FeatureCustomResolution Feature = "CustomResolution"
)

// Argument is a game argument. Arguments without a Feature are always passed.
type Argument struct {
	Value   string  `json:"value"`
	Feature Feature `json:"feature,omitempty"`
}

// Conditional reports whether this argument depends on a feature
func (a Argument) Conditional() bool {
	return a.Feature != ""
}

// UnmarshalJSON accepts a plain string or {"value", "feature"}
func (a *Argument) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err == nil {
		*a = Argument{Value: value}
		return nil
	}

	type plain Argument
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("argument is neither a string nor an object: %w", err)
	}
	*a = Argument(obj)
	return nil
}

// ClasspathEntry is an artifact on the classpath, optionally restricted to a platform
type ClasspathEntry struct {
	Name     ArtifactID `json:"name"`
	Platform *Platform  `json:"platform,omitempty"`
}

// AppliesFor reports whether the entry should be used on os/arch
func (c ClasspathEntry) AppliesFor(os string, arch string) bool {
	if c.Platform == nil {
		return true
	}
	return c.Platform.AppliesFor(os, arch)
}

// UnmarshalJSON accepts a plain artifact id or {"name", "platform"}
func (c *ClasspathEntry) UnmarshalJSON(data []byte) error {
	var name ArtifactID
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if err := name.UnmarshalText([]byte(str)); err != nil {
			return err
		}
		*c = ClasspathEntry{Name: name}
		return nil
	}

	type plain ClasspathEntry
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("classpath entry is neither a string nor an object: %w", err)
	}
	*c = ClasspathEntry(obj)
	return nil
}

// Native is an archive of native libraries to extract before launching
type Native struct {
	Name       ArtifactID `json:"name"`
	Platform   Platform   `json:"platform"`
	Exclusions []string   `json:"exclusions,omitempty"`
}

// Assets points to an asset index
type Assets struct {
	ID             string `json:"id"`
	URL            string `json:"url"`
	Size           int64  `json:"size"`
	SHA1           string `json:"sha1"`
	MapToResources bool   `json:"map_to_resources,omitempty"`
	Virtual        bool   `json:"virtual,omitempty"`
}

// Download returns the index file as a downloadable artifact
func (a Assets) Download() Download {
	return Download{URL: a.URL, Size: a.Size, Hash: Hash{Algorithm: SHA1, Hex: a.SHA1}}
}

// Component is the metadata of a single component version
type Component struct {
	ID            string           `json:"id,omitempty"`
	Version       string           `json:"version,omitempty"`
	Traits        []Trait          `json:"traits,omitempty"`
	Natives       []Native         `json:"natives,omitempty"`
	Jarmods       []ArtifactID     `json:"jarmods,omitempty"`
	Classpath     []ClasspathEntry `json:"classpath,omitempty"`
	Downloads     []DownloadEntry  `json:"downloads,omitempty"`
	GameJar       *ArtifactID      `json:"game_jar,omitempty"`
	Assets        *Assets          `json:"assets,omitempty"`
	MainClass     string           `json:"main_class,omitempty"`
	GameArguments []Argument       `json:"game_arguments,omitempty"`
}

// ComponentRef points to a component version in the metadata catalog
type ComponentRef struct {
	ID      string `json:"id"`
	Version string `json:"version"`
}

func (c ComponentRef) String() string {
	return c.ID + "@" + c.Version
}

// IndexEntry is one available version of a component
type IndexEntry struct {
	Version     string `json:"version"`
	Type        string `json:"type,omitempty"`
	ReleaseTime string `json:"release_time,omitempty"`
}

// Index lists the versions of a component, in catalog order
type Index []IndexEntry

// Contains reports whether version is listed
func (i Index) Contains(version string) bool {
	for _, entry := range i {
		if entry.Version == version {
			return true
		}
	}
	return false
}

// Latest returns the highest stable version that parses as semver. If no
// version parses, the first entry is returned. Returns nil for an empty index.
func (i Index) Latest() *IndexEntry {
	if len(i) == 0 {
		return nil
	}

	var best *IndexEntry
	var bestVersion *semver.Version
	for n := range i {
		v, err := semver.NewVersion(i[n].Version)
		if err != nil || v.Prerelease() != "" {
			continue
		}
		if bestVersion == nil || v.GreaterThan(bestVersion) {
			best = &i[n]
			bestVersion = v
		}
	}

	if best == nil {
		return &i[0]
	}
	return best
}
