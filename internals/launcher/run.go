package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/helixlauncher/helix/internals/commands"
	"github.com/jwalton/gchalk"
	"github.com/rs/zerolog/log"
)

// ErrNotPrepared is returned by Run if Prepare was not called before
var ErrNotPrepared = errors.New("launch was not prepared")

// Run starts the prepared game and blocks until it is stopped.
// The prelaunch command of the instance runs before the game, the postlaunch
// command after it exited (also if it crashed).
func (l *Launcher) Run(ctx context.Context) error {
	if l.Prepared == nil {
		return ErrNotPrepared
	}
	launch := l.Instance.Config.Launch

	if err := l.hook(ctx, "prelaunch", launch.PrelaunchCommand); err != nil {
		return err
	}

	fmt.Println("│")
	fmt.Println(
		lipgloss.JoinHorizontal(
			0.5,
			gchalk.Hex("#7a563b")("│"+"\n"+"┕"),
			commands.StyleGrass.Render(commands.Emoji("⛏  ")+"Launching Minecraft"),
		),
	)

	cmd, err := l.Prepared.Launch(true)
	if err != nil {
		return err
	}
	l.Cmd = cmd

	// the game does not need anything we allocated while preparing
	runtime.GC()
	waitErr := cmd.Wait()

	if err := l.hook(ctx, "postlaunch", launch.PostlaunchCommand); err != nil {
		log.Warn().Err(err).Msg("postlaunch command failed")
	}

	// 130 is a stop via ctrl-c
	code := cmd.ProcessState.ExitCode()
	if code == 0 || code == 130 {
		fmt.Printf("\nMinecraft was stopped normally (exit code %d).\n", code)
		return nil
	}

	if waitErr != nil {
		l.printCrashInfo(os.Stdout, code)
		return fmt.Errorf("minecraft crashed: %w", waitErr)
	}
	return nil
}

// hook runs a user configured shell command inside the game directory
func (l *Launcher) hook(ctx context.Context, name string, command string) error {
	if command == "" {
		return nil
	}
	log.Debug().Str("hook", name).Str("command", command).Msg("running hook")

	cmd := shellCommand(ctx, command)
	cmd.Dir = l.Instance.GameDir()
	cmd.Env = append(os.Environ(),
		"INST_NAME="+l.Instance.Config.Name,
		"INST_DIR="+l.Instance.Path,
		"INST_MC_DIR="+l.Instance.GameDir(),
		"INST_JAVA="+l.Prepared.JavaPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s command %q: %w", name, command, err)
	}
	return nil
}

func shellCommand(ctx context.Context, command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd", "/C", command)
	}
	return exec.CommandContext(ctx, "sh", "-c", command)
}
