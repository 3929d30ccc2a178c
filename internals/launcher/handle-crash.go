package launcher

import (
	"fmt"
	"io"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/pbnjay/memory"
)

// printCrashInfo outputs some debug info after the game exited with an error
func (l *Launcher) printCrashInfo(w io.Writer, exitCode int) {
	fmt.Fprintln(w, "--------------------")
	fmt.Fprintln(w, "Minecraft crashed :(")
	fmt.Fprintln(w, "Here is some debug info")
	fmt.Fprintln(w, "[system]")
	fmt.Fprintf(w, "  OS: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "  CPUs: %d\n", runtime.NumCPU())
	if total := memory.TotalMemory(); total != 0 {
		fmt.Fprintf(w, "  memory: %s\n", humanize.IBytes(total))
	}
	fmt.Fprintln(w, "[instance]")
	fmt.Fprintf(w, "  name: %s\n", l.Instance.Config.Name)
	for _, c := range l.Instance.Config.Components {
		fmt.Fprintf(w, "  component: %s\n", c)
	}
	fmt.Fprintln(w, "[launch]")
	fmt.Fprintf(w, "  java: %s\n", l.Prepared.JavaPath)
	fmt.Fprintf(w, "  main class: %s\n", l.Prepared.MainClass)
	fmt.Fprintf(w, "  exit code: %d\n", exitCode)
}
