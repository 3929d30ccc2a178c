package instances

import (
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// PreparedLaunch is everything needed to start the game. It is not modified
// after Compose returns it.
type PreparedLaunch struct {
	WorkingDirectory string   `json:"working_directory" yaml:"working_directory"`
	JavaPath         string   `json:"java_path" yaml:"java_path"`
	JVMArgs          []string `json:"jvm_args" yaml:"jvm_args"`
	Classpath        []string `json:"classpath" yaml:"classpath"`
	MainClass        string   `json:"main_class" yaml:"main_class"`
	Args             []string `json:"args" yaml:"args"`
}

// cpSeparator returns the classpath separator for the current os
func cpSeparator() string {
	if runtime.GOOS == "windows" {
		return ";"
	}
	return ":"
}

// ClasspathString joins the classpath with the platform separator
func (p *PreparedLaunch) ClasspathString() string {
	return strings.Join(p.Classpath, cpSeparator())
}

// CommandArgs returns all arguments passed to java
func (p *PreparedLaunch) CommandArgs() []string {
	args := make([]string, 0, len(p.JVMArgs)+len(p.Args)+3)
	args = append(args, p.JVMArgs...)
	args = append(args, "-classpath", p.ClasspathString(), p.MainClass)
	args = append(args, p.Args...)
	return args
}

// Command returns a cmd ready to start the game. Stdin is always closed.
// Without inheritStdio the caller is expected to set up Stdout and Stderr.
func (p *PreparedLaunch) Command(inheritStdio bool) *exec.Cmd {
	cmd := exec.Command(p.JavaPath, p.CommandArgs()...)
	// Set the process directory to our minecraft dir
	cmd.Dir = p.WorkingDirectory
	// some things may rely on PWD
	cmd.Env = append(os.Environ(), "PWD="+p.WorkingDirectory)
	cmd.Stdin = nil
	if inheritStdio {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	return cmd
}

// Launch starts the game and returns the running process. Call Wait on it.
func (p *PreparedLaunch) Launch(inheritStdio bool) (*exec.Cmd, error) {
	cmd := p.Command(inheritStdio)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// LaunchWith starts the game writing its output to stdout and stderr
func (p *PreparedLaunch) LaunchWith(stdout io.Writer, stderr io.Writer) (*exec.Cmd, error) {
	cmd := p.Command(false)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd, nil
}
