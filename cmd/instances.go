package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/helixlauncher/helix/internals/commands"
	"github.com/helixlauncher/helix/internals/globals"
	"github.com/helixlauncher/helix/internals/instances"
	"github.com/helixlauncher/helix/internals/meta"
	"github.com/jwalton/gchalk"
	"github.com/spf13/cobra"
)

// loaderComponents maps the --loader flag to component ids
var loaderComponents = map[string]string{
	"fabric": "net.fabricmc.fabric-loader",
	"quilt":  "org.quiltmc.quilt-loader",
	"forge":  "net.minecraftforge.forge",
}

var instancesCmd = &cobra.Command{
	Use:     "instances",
	Short:   "Manage instances",
	Aliases: []string{"instance", "i"},
}

func init() {
	list := commands.New(&cobra.Command{
		Use:     "list",
		Short:   "Lists all instances",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
	}, &instancesListRunner{})

	createRunner := &instancesCreateRunner{}
	create := commands.New(&cobra.Command{
		Use:   "create <name>",
		Short: "Creates a new instance",
		Example: `
  helix instances create "Vanilla"
  helix instances create "Modded" --minecraft 1.20.1 --loader fabric`,
		Args: cobra.ExactArgs(1),
	}, createRunner)
	create.Flags().StringVarP(&createRunner.minecraft, "minecraft", "m", "", "Minecraft version (default is the latest release)")
	create.Flags().StringVarP(&createRunner.loader, "loader", "l", "", "Mod loader to use (fabric, quilt or forge)")
	create.Flags().StringVar(&createRunner.loaderVersion, "loader-version", "", "Version of the mod loader (default is the latest)")

	instancesCmd.AddCommand(list.Command, create.Command)
	rootCmd.AddCommand(instancesCmd)
}

type instancesListRunner struct{}

func (i *instancesListRunner) RunE(cmd *cobra.Command, args []string) error {
	list, err := instances.List(globals.Config.InstancesDir())
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println(gchalk.Gray("No instances yet. Create one with `helix instances create <name>`"))
		return nil
	}

	for _, instance := range list {
		refs := make([]string, len(instance.Config.Components))
		for i, c := range instance.Config.Components {
			refs[i] = c.String()
		}
		fmt.Printf("%s %s\n", gchalk.Bold(instance.Config.Name), gchalk.Gray(instance.Path))
		fmt.Printf("  %s\n", strings.Join(refs, ", "))
	}
	return nil
}

type instancesCreateRunner struct {
	minecraft     string
	loader        string
	loaderVersion string
}

func (i *instancesCreateRunner) RunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	mcVersion, err := resolveVersion(ctx, instances.MinecraftComponent, i.minecraft)
	if err != nil {
		return err
	}
	minecraft := meta.ComponentRef{ID: instances.MinecraftComponent, Version: mcVersion}
	var loader *meta.ComponentRef

	if i.loader != "" {
		loaderID, ok := loaderComponents[strings.ToLower(i.loader)]
		if !ok {
			return &commands.CliError{
				Text:        fmt.Sprintf("unknown loader %q", i.loader),
				Suggestions: []string{"Use fabric, quilt or forge"},
			}
		}
		loaderVersion, err := resolveVersion(ctx, loaderID, i.loaderVersion)
		if err != nil {
			return err
		}
		loader = &meta.ComponentRef{ID: loaderID, Version: loaderVersion}
	}

	instance, err := instances.New(globals.Config.InstancesDir(), args[0], instanceComponents(minecraft, loader), instances.LaunchConfig{})
	if err != nil {
		return err
	}

	fmt.Printf("Created %s in %s\n", gchalk.Bold(instance.Config.Name), instance.Path)
	return nil
}

// instanceComponents orders the loader before minecraft, so its main class
// and library versions win the merge
func instanceComponents(minecraft meta.ComponentRef, loader *meta.ComponentRef) []meta.ComponentRef {
	if loader == nil {
		return []meta.ComponentRef{minecraft}
	}
	return []meta.ComponentRef{*loader, minecraft}
}

// resolveVersion returns version if the component has it, or the latest
// version if version is empty
func resolveVersion(ctx context.Context, id string, version string) (string, error) {
	store := globals.Config.MetaStore()
	if version != "" {
		exists, err := store.VersionExists(ctx, id, version)
		if err != nil {
			return "", err
		}
		if !exists {
			return "", &commands.CliError{
				Text:        fmt.Sprintf("%s has no version %s", id, version),
				Suggestions: []string{"Run `helix versions " + id + "` to see all versions"},
			}
		}
		return version, nil
	}

	index, err := store.GetComponentIndex(ctx, id)
	if err != nil {
		return "", err
	}
	latest := index.Latest()
	if latest == nil {
		return "", &commands.CliError{Text: id + " has no versions"}
	}
	return latest.Version, nil
}
