package launcher

import (
	"github.com/helixlauncher/helix/internals/instances"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// OverwriteFlags are cli flags used to overwrite launch behavior
type OverwriteFlags struct {
	Java string
	Ram  uint32
	Args []string
}

// CmdOverwriteFlags registers the overwrite flags on cmd
func CmdOverwriteFlags(cmd *cobra.Command) *OverwriteFlags {
	flags := OverwriteFlags{}
	cmd.Flags().StringVar(&flags.Java, "java", "", "Overwrite the java executable")
	cmd.Flags().Uint32Var(&flags.Ram, "ram", 0, "Overwrite the maximum amount of RAM in MiB to use")
	cmd.Flags().StringArrayVar(&flags.Args, "arg", nil, "Additional game argument (can be repeated)")

	return &flags
}

// ApplyOverwrites changes the launch config of instance for this launch only.
// The instance config is not saved.
func ApplyOverwrites(instance *instances.Instance, o *OverwriteFlags) {
	launch := &instance.Config.Launch
	if o.Java != "" {
		launch.JavaPath = o.Java
	}
	if o.Ram != 0 {
		alloc := instances.RAMAllocation{Min: o.Ram, Max: o.Ram}
		if launch.Allocation != nil && launch.Allocation.Min < o.Ram {
			alloc.Min = launch.Allocation.Min
		}
		launch.Allocation = &alloc
		log.Debug().Uint32("ram", o.Ram).Msg("ram overwritten")
	}
	launch.Args = append(launch.Args, o.Args...)
}
