package pack

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/helixlauncher/helix/internals/components"
	"github.com/helixlauncher/helix/internals/meta"
	"github.com/rs/zerolog/log"
)

// ErrNoGameJar is returned when no component defines a game jar
var ErrNoGameJar = errors.New("no component provides a game jar")

// Assembler prepares the files of an instance
type Assembler struct {
	Client *http.Client
	// AssetsDir is the shared asset pool (contains indexes/ and objects/)
	AssetsDir string
	// ResourcesURL is the asset CDN, defaults to minecraft.DefaultResourcesURL
	ResourcesURL string
	// OnProgress receives the completed percentage of asset downloads
	OnProgress func(p int)
}

// Assembly is the result of Assemble
type Assembly struct {
	// GameJar is the jar to put first on the classpath
	GameJar string
	// Classpath contains the paths of the merged classpath, in order
	Classpath  []string
	NativesDir string
	// Assets is nil if no component declares assets
	Assets *Assets
}

// Assemble builds the game jar, extracts natives into nativesDir and unpacks
// the assets. paths must contain the resolved path of every required artifact.
func (a *Assembler) Assemble(ctx context.Context, merged *components.Merged, paths map[meta.ArtifactID]string, gameDir string, nativesDir string) (*Assembly, error) {
	lookup := func(id meta.ArtifactID) (string, error) {
		p, ok := paths[id]
		if !ok {
			return "", fmt.Errorf("%s was not resolved: %w", id, components.ErrMissingArtifact)
		}
		return p, nil
	}

	assembly := &Assembly{NativesDir: nativesDir}

	gameJar, err := a.gameJar(merged, gameDir, lookup)
	if err != nil {
		return nil, err
	}
	assembly.GameJar = gameJar

	for _, id := range merged.Classpath {
		p, err := lookup(id)
		if err != nil {
			return nil, err
		}
		assembly.Classpath = append(assembly.Classpath, p)
	}

	if err := os.MkdirAll(nativesDir, os.ModePerm); err != nil {
		return nil, err
	}
	for _, native := range merged.Natives {
		p, err := lookup(native.Name)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("native", native.Name.String()).Msg("extracting natives")
		if err := ExtractNatives(p, nativesDir, native.Exclusions); err != nil {
			return nil, fmt.Errorf("extracting %s: %w", native.Name, err)
		}
	}

	if merged.Assets != nil {
		assets, err := a.UnpackAssets(ctx, merged.Assets, gameDir)
		if err != nil {
			return nil, err
		}
		assembly.Assets = assets
	}

	return assembly, nil
}

// gameJar returns the path of the game jar. With jarmods the game jar is
// replaced by <game dir>/bin/minecraft.jar built from the jarmods alone.
func (a *Assembler) gameJar(merged *components.Merged, gameDir string, lookup func(meta.ArtifactID) (string, error)) (string, error) {
	if len(merged.Jarmods) == 0 {
		if merged.GameJar == nil {
			return "", ErrNoGameJar
		}
		return lookup(*merged.GameJar)
	}

	layers := make([]string, 0, len(merged.Jarmods))
	for _, id := range merged.Jarmods {
		p, err := lookup(id)
		if err != nil {
			return "", err
		}
		layers = append(layers, p)
	}

	target := filepath.Join(gameDir, "bin", "minecraft.jar")
	log.Debug().Int("jarmods", len(merged.Jarmods)).Str("target", target).Msg("merging jarmods")
	if err := MergeJars(target, layers); err != nil {
		return "", err
	}
	return target, nil
}
