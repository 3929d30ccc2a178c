package cmd

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/helixlauncher/helix/internals/commands"
	"github.com/helixlauncher/helix/internals/globals"
	"github.com/helixlauncher/helix/internals/meta"
	"github.com/jwalton/gchalk"
	"github.com/spf13/cobra"
)

func init() {
	runner := &versionsRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "versions <component> [version]",
		Short: "Lists the versions of a component",
		Long: `
Lists all versions of a component known to the meta server. If a version
is given, only checks if that version exists.
	`,
		Example: `
  helix versions net.minecraft --latest
  helix versions net.fabricmc.fabric-loader --constraint ">=0.14"
  helix versions net.minecraft 1.20.1`,
		Args: cobra.RangeArgs(1, 2),
	}, runner)

	cmd.Flags().BoolVar(&runner.latest, "latest", false, "Only print the latest stable version")
	cmd.Flags().StringVarP(&runner.constraint, "constraint", "c", "", "Only list versions matching this semver constraint")

	rootCmd.AddCommand(cmd.Command)
}

type versionsRunner struct {
	latest     bool
	constraint string
}

func (v *versionsRunner) RunE(cmd *cobra.Command, args []string) error {
	store := globals.Config.MetaStore()
	id := args[0]

	if len(args) == 2 {
		exists, err := store.VersionExists(cmd.Context(), id, args[1])
		if err != nil {
			return err
		}
		if !exists {
			return &commands.CliError{
				Text:        fmt.Sprintf("%s has no version %s", id, args[1]),
				Suggestions: []string{"Run `helix versions " + id + "` to see all versions"},
			}
		}
		fmt.Printf("%s %s exists\n", id, args[1])
		return nil
	}

	index, err := store.GetComponentIndex(cmd.Context(), id)
	if err != nil {
		return err
	}

	if v.latest {
		latest := index.Latest()
		if latest == nil {
			return &commands.CliError{Text: id + " has no versions"}
		}
		fmt.Println(latest.Version)
		return nil
	}

	entries, err := filterIndex(index, v.constraint)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%s %s %s\n", e.Version, gchalk.Gray(e.Type), gchalk.Gray(e.ReleaseTime))
	}
	return nil
}

// filterIndex returns the entries matching constraint. Versions that are not
// semver never match a constraint.
func filterIndex(index meta.Index, constraint string) ([]meta.IndexEntry, error) {
	if constraint == "" {
		return index, nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, &commands.CliError{
			Err:  err,
			Text: fmt.Sprintf("invalid constraint %q: %s", constraint, err),
		}
	}

	var matching []meta.IndexEntry
	for _, e := range index {
		version, err := semver.NewVersion(e.Version)
		if err != nil {
			continue
		}
		if c.Check(version) {
			matching = append(matching, e)
		}
	}
	return matching, nil
}
