package instances

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/helixlauncher/helix/internals/components"
	"github.com/helixlauncher/helix/internals/config"
	"github.com/helixlauncher/helix/internals/credentials"
	"github.com/helixlauncher/helix/internals/meta"
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
)

// ErrNoMainClass is returned if no component defines a main class
var ErrNoMainClass = errors.New("no component provides a main class")

// UnsupportedFeatureError is returned if a launch option is not supported by the components of an instance
type UnsupportedFeatureError struct {
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("%s is not supported by this instance", e.Feature)
}

// LaunchOptions are options for launching
type LaunchOptions struct {
	// World is a save to start directly into
	World string
	// Account to launch with. Launches in demo mode if nil
	Account *credentials.Account
	// OnProgress receives the download progress of the "libraries" and "assets" stages
	OnProgress func(stage string, p int)
}

// WithWorld returns a copy of o that starts into world
func (o LaunchOptions) WithWorld(world string) LaunchOptions {
	o.World = world
	return o
}

// WithAccount returns a copy of o that launches with account
func (o LaunchOptions) WithAccount(account *credentials.Account) LaunchOptions {
	o.Account = account
	return o
}

// identity returns the username, uuid and token to launch with
func (o LaunchOptions) identity() (string, string, string) {
	if o.Account != nil {
		return o.Account.Username, o.Account.UUID, o.Account.Token
	}
	return "Player", uuid.Nil.String(), ""
}

// featureEnabled reports whether a conditional argument for feature should be passed
func (o LaunchOptions) featureEnabled(feature meta.Feature) bool {
	switch feature {
	case meta.FeatureDemo:
		return o.Account == nil
	case meta.FeatureQuickPlayWorld:
		return o.World != ""
	default:
		return false
	}
}

func (o LaunchOptions) progress(stage string) func(p int) {
	if o.OnProgress == nil {
		return nil
	}
	return func(p int) { o.OnProgress(stage, p) }
}

// gameArguments filters the merged arguments by their features
func gameArguments(merged *components.Merged, opts LaunchOptions) []string {
	args := make([]string, 0, len(merged.Arguments))
	for _, arg := range merged.Arguments {
		if arg.Conditional() && !opts.featureEnabled(arg.Feature) {
			continue
		}
		args = append(args, arg.Value)
	}
	return args
}

// jvmArguments returns the arguments passed to java before the classpath
func (i *Instance) jvmArguments() []string {
	args := []string{
		// predictable String.toUpperCase/toLowerCase for mods that forget to pass a locale
		"-Duser.language=en",
		"-Djava.library.path=" + i.NativesDir(),
	}

	if alloc := i.Config.Launch.Allocation; alloc != nil {
		args = append(args,
			fmt.Sprintf("-Xms%dM", alloc.Min),
			fmt.Sprintf("-Xmx%dM", alloc.Max),
		)
		sysMemMiB := memory.TotalMemory() / 1024 / 1024
		if sysMemMiB != 0 && uint64(alloc.Max) > sysMemMiB {
			log.Warn().Uint32("max", alloc.Max).Uint64("system", sysMemMiB).Msg("allocated more memory than the system has")
		}
	}

	return append(args, i.Config.Launch.JVMArgs...)
}

// Compose downloads and prepares everything needed to launch instance with
// the merged components and returns the launch command.
func Compose(ctx context.Context, cfg *config.Config, instance *Instance, merged *components.Merged, opts LaunchOptions) (*PreparedLaunch, error) {
	if opts.World != "" && !merged.HasTrait(meta.TraitSupportsQuickPlayWorld) {
		return nil, &UnsupportedFeatureError{Feature: "Launching into world"}
	}
	if merged.MainClass == "" {
		return nil, ErrNoMainClass
	}

	javaPath := instance.Config.Launch.JavaPath
	if javaPath == "" {
		javaPath = cfg.JavaPath()
	}
	// fallback to local java if nothing was set
	if javaPath == "" {
		javaPath = "java"
	}

	gameDir := instance.GameDir()
	args := gameArguments(merged, opts)
	args = append(args, instance.Config.Launch.Args...)

	username, userUUID, token := opts.identity()
	props := map[string]string{
		"user.name":         username,
		"user.uuid":         userUUID,
		"user.token":        token,
		"user.type":         "msa",
		"instance.game_dir": gameDir,
	}
	if version := instance.ComponentVersion(MinecraftComponent); version != "" {
		props["instance.minecraft_version"] = version
	}
	if opts.World != "" {
		props["launch.world"] = opts.World
	}

	artifacts := cfg.ArtifactCache()
	artifacts.OnProgress = opts.progress("libraries")
	paths, err := artifacts.ResolveAll(ctx, merged)
	if err != nil {
		return nil, err
	}

	assembler := cfg.Assembler()
	assembler.OnProgress = opts.progress("assets")
	assembly, err := assembler.Assemble(ctx, merged, paths, gameDir, instance.NativesDir())
	if err != nil {
		return nil, err
	}

	classpath := append([]string{assembly.GameJar}, assembly.Classpath...)

	if assets := assembly.Assets; assets != nil {
		props["instance.assets_dir"] = assets.Dir
		props["instance.assets_index_name"] = assets.IndexID
		if assets.UnpackDir != "" {
			props["instance.virtual_assets_dir"] = assets.UnpackDir
		}
	}

	expanded, err := expandAll(args, props)
	if err != nil {
		return nil, err
	}

	return &PreparedLaunch{
		WorkingDirectory: gameDir,
		JavaPath:         javaPath,
		JVMArgs:          instance.jvmArguments(),
		Classpath:        classpath,
		MainClass:        merged.MainClass,
		Args:             expanded,
	}, nil
}
