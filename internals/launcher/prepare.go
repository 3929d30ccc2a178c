package launcher

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/helixlauncher/helix/internals/components"
	"github.com/helixlauncher/helix/internals/instances"
	"github.com/jwalton/gchalk"
	"github.com/rs/zerolog/log"
)

// Prepare merges the components of the instance and downloads everything
// needed to launch it. The result is stored in l.Prepared.
func (l *Launcher) Prepare(ctx context.Context) (*instances.PreparedLaunch, error) {
	if l.Out == nil {
		l.Out = os.Stdout
	}
	l.printIntro()

	merged, err := l.prepareComponents(ctx)
	if err != nil {
		return nil, err
	}
	l.Merged = merged

	prepared, err := l.prepareFiles(ctx)
	if err != nil {
		return nil, err
	}
	l.Prepared = prepared

	l.printOutro()
	return prepared, nil
}

// prepareComponents fetches the metadata of all components and merges them
func (l *Launcher) prepareComponents(ctx context.Context) (*components.Merged, error) {
	fmt.Fprintln(l.Out, pipeText.Render(gchalk.BgGray("Components")))

	s := newMaybeSpinner(!l.NonInteractive, l.Out)
	s.Start("Fetching metadata …")
	merged, err := components.Merge(ctx, l.Config.MetaStore(), l.Instance.Config.Components)
	s.Stop()
	if err != nil {
		return nil, err
	}

	for _, ref := range merged.Components {
		fmt.Fprintf(l.Out, "│ %s %s\n", ref.ID, gchalk.Gray(ref.Version))
	}
	if traits := merged.SortedTraits(); len(traits) != 0 {
		names := make([]string, len(traits))
		for i, t := range traits {
			names[i] = string(t)
		}
		fmt.Fprintf(l.Out, "│ %s\n", gchalk.Gray("traits: "+strings.Join(names, ", ")))
	}
	fmt.Fprintln(l.Out, "│")

	return merged, nil
}

// prepareFiles downloads libraries and assets and composes the launch command
func (l *Launcher) prepareFiles(ctx context.Context) (*instances.PreparedLaunch, error) {
	fmt.Fprintln(l.Out, pipeText.Render(gchalk.BgGray("Files")))

	s := newMaybeSpinner(!l.NonInteractive, l.Out)
	s.Start("Checking libraries …")
	defer s.Stop()

	opts := l.Options
	opts.OnProgress = func(stage string, p int) {
		// without a spinner only print a line every 25%
		if !s.Spin && p%25 != 0 {
			return
		}
		s.Update(fmt.Sprintf("Downloading %s %d%%", stage, p))
	}

	prepared, err := instances.Compose(ctx, l.Config, l.Instance, l.Merged, opts)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("main_class", prepared.MainClass).
		Int("classpath", len(prepared.Classpath)).
		Msg("launch prepared")

	return prepared, nil
}

var pipeText = lipgloss.NewStyle().
	Border(lipgloss.Border{Left: "│"}, false).
	BorderLeft(true).
	Padding(0, 1)

func (l *Launcher) printIntro() {
	title := lipgloss.NewStyle().
		Border(lipgloss.Border{Left: "┃"}, false).
		BorderLeft(true).
		Background(lipgloss.Color("#FFF")).
		Foreground(lipgloss.Color("#000")).
		Padding(0, 1).
		Render(l.Instance.Config.Name)

	fmt.Fprintln(l.Out, title)
	fmt.Fprintln(l.Out, "│")
	fmt.Fprintln(l.Out, "│ Directory: "+l.Instance.Path)
	if l.Options.Account != nil {
		fmt.Fprintln(l.Out, "│ Account: "+l.Options.Account.Username)
	} else {
		fmt.Fprintln(l.Out, "│ Account: "+gchalk.Gray("none (demo mode)"))
	}
	if l.Options.World != "" {
		fmt.Fprintln(l.Out, "│ World: "+l.Options.World)
	}
	fmt.Fprintln(l.Out, "│")
}

func (l *Launcher) printOutro() {
	fmt.Fprintf(l.Out, "│ %s\n", gchalk.Gray("java: "+l.Prepared.JavaPath))
	fmt.Fprintf(l.Out, "│ %s\n", gchalk.Gray(fmt.Sprintf("%d classpath entries", len(l.Prepared.Classpath))))
}
