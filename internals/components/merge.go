// Package components merges the metadata of an ordered list of components
// into the single view needed to launch them.
package components

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/helixlauncher/helix/internals/meta"
	"github.com/helixlauncher/helix/internals/minecraft"
)

// ErrMissingArtifact is returned when an artifact is referenced by a component
// but no component defines where to get it from. This is a metadata bug.
var ErrMissingArtifact = errors.New("artifact is referenced but has no download")

// MetaSource returns component metadata. Implemented by *meta.Store.
type MetaSource interface {
	GetComponentMeta(ctx context.Context, id string, version string) (*meta.Component, error)
}

// Native is a native archive that applies to the current platform
type Native struct {
	Name       meta.ArtifactID
	Exclusions []string
}

// Merged is the combined view of all components of an instance
type Merged struct {
	Classpath []meta.ArtifactID
	Natives   []Native
	Traits    map[meta.Trait]struct{}
	Artifacts map[meta.ArtifactID]meta.Artifact
	GameJar   *meta.ArtifactID
	Jarmods   []meta.ArtifactID
	Assets    *meta.Assets
	MainClass string
	Arguments []meta.Argument
	// Components is the merged list, in merge order
	Components []meta.ComponentRef
}

// HasTrait reports whether any component declared trait
func (m *Merged) HasTrait(trait meta.Trait) bool {
	_, ok := m.Traits[trait]
	return ok
}

// SortedTraits returns all traits in alphabetical order
func (m *Merged) SortedTraits() []meta.Trait {
	traits := make([]meta.Trait, 0, len(m.Traits))
	for t := range m.Traits {
		traits = append(traits, t)
	}
	sort.Slice(traits, func(i, j int) bool { return traits[i] < traits[j] })
	return traits
}

// Artifact returns the source of id, or an error wrapping ErrMissingArtifact
func (m *Merged) Artifact(id meta.ArtifactID) (meta.Artifact, error) {
	artifact, ok := m.Artifacts[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrMissingArtifact)
	}
	return artifact, nil
}

// RequiredArtifacts returns every artifact id needed to launch: the game jar,
// jarmods, classpath and natives. Each id is returned once.
func (m *Merged) RequiredArtifacts() ([]meta.ArtifactID, error) {
	var ids []meta.ArtifactID
	seen := make(map[meta.ArtifactID]bool)
	add := func(id meta.ArtifactID) error {
		if seen[id] {
			return nil
		}
		seen[id] = true
		if _, err := m.Artifact(id); err != nil {
			return err
		}
		ids = append(ids, id)
		return nil
	}

	if m.GameJar != nil {
		if err := add(*m.GameJar); err != nil {
			return nil, err
		}
	}
	for _, id := range m.Jarmods {
		if err := add(id); err != nil {
			return nil, err
		}
	}
	for _, id := range m.Classpath {
		if err := add(id); err != nil {
			return nil, err
		}
	}
	for _, native := range m.Natives {
		if err := add(native.Name); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

// Merge fetches and merges the given components for the running platform.
// Earlier components take precedence over later ones.
func Merge(ctx context.Context, src MetaSource, refs []meta.ComponentRef) (*Merged, error) {
	return MergeFor(ctx, src, refs, minecraft.CurrentOS(), minecraft.CurrentArch())
}

// MergeFor is like Merge but filters natives and classpath entries for os/arch
func MergeFor(ctx context.Context, src MetaSource, refs []meta.ComponentRef, os string, arch string) (*Merged, error) {
	merged := &Merged{
		Traits:     make(map[meta.Trait]struct{}),
		Artifacts:  make(map[meta.ArtifactID]meta.Artifact),
		Components: append([]meta.ComponentRef(nil), refs...),
	}
	classpath := newArtifactSet()
	jarmods := newArtifactSet()

	for _, ref := range refs {
		component, err := src.GetComponentMeta(ctx, ref.ID, ref.Version)
		if err != nil {
			return nil, err
		}

		for _, trait := range component.Traits {
			merged.Traits[trait] = struct{}{}
		}

		for _, native := range component.Natives {
			if native.Platform.AppliesFor(os, arch) {
				merged.Natives = append(merged.Natives, Native{Name: native.Name, Exclusions: native.Exclusions})
			}
		}

		// jarmods of components after the game jar would patch a jar that is replaced anyway
		if merged.GameJar == nil {
			for _, jarmod := range component.Jarmods {
				jarmods.Add(jarmod)
			}
		}

		for _, entry := range component.Classpath {
			if !entry.AppliesFor(os, arch) {
				continue
			}
			classpath.Add(entry.Name)
		}

		for _, download := range component.Downloads {
			if _, ok := merged.Artifacts[download.Name]; !ok {
				merged.Artifacts[download.Name] = download.Artifact()
			}
		}

		if merged.GameJar == nil && component.GameJar != nil {
			gameJar := *component.GameJar
			merged.GameJar = &gameJar
		}
		if merged.Assets == nil && component.Assets != nil {
			assets := *component.Assets
			merged.Assets = &assets
		}
		if merged.MainClass == "" && component.MainClass != "" {
			merged.MainClass = component.MainClass
		}

		merged.Arguments = append(merged.Arguments, component.GameArguments...)
	}

	merged.Classpath = classpath.Slice()
	merged.Jarmods = jarmods.Slice()
	return merged, nil
}
